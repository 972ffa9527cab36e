package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Hans010101/Crypto-Trading/internal/model"
	"github.com/Hans010101/Crypto-Trading/internal/service"
	serviceMocks "github.com/Hans010101/Crypto-Trading/internal/service/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	app := fiber.New()
	app.Get("/health", HealthCheck(db))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "SERVICE_UNAVAILABLE", body.Error.Code)
	})

	t.Run("no database configured", func(t *testing.T) {
		appNoDB := fiber.New()
		appNoDB.Get("/health", HealthCheck(nil))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := appNoDB.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMarketTickers(t *testing.T) {
	mockSvc := new(serviceMocks.MockMarketService)
	app := fiber.New()
	app.Get("/api/binance/tickers", MarketTickers(mockSvc))

	board := model.TickerBoard{
		Main: []model.TickerRow{
			{Rank: 1, Symbol: "BTC/USDT", Price: 64000, Change24h: 3.5, Volume24h: 2.5e8},
		},
		Other:        []model.TickerRow{},
		TotalVolume:  2.5e8,
		VolumeChange: 10.0,
	}
	mockSvc.On("Tickers", mock.Anything).Return(board).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/binance/tickers", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result tickersResponse
	json.NewDecoder(resp.Body).Decode(&result)
	assert.Equal(t, "Binance", result.Exchange)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "BTC/USDT", result.Data[0].Symbol)
	assert.NotNil(t, result.Other)
	assert.Empty(t, result.Other)
	assert.Equal(t, 2.5e8, result.TotalVolume)
	assert.Equal(t, 10.0, result.VolumeChange)
	assert.Greater(t, result.TS, int64(0))
	mockSvc.AssertExpectations(t)
}

func TestFundingBoard(t *testing.T) {
	mockSvc := new(serviceMocks.MockMarketService)
	app := fiber.New()
	app.Get("/api/binance/funding", FundingBoard(mockSvc))

	rows := []model.FundingRow{
		{Rank: 1, Symbol: "LOWUSDT", FundingRate: -0.0075},
		{Rank: 2, Symbol: "ETHUSDT", FundingRate: 0.0005},
	}
	mockSvc.On("Funding", mock.Anything).Return(rows).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/binance/funding", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result fundingResponse
	json.NewDecoder(resp.Body).Decode(&result)
	assert.Equal(t, "Binance", result.Exchange)
	require.Len(t, result.Data, 2)
	assert.Equal(t, "LOWUSDT", result.Data[0].Symbol)
	assert.Greater(t, result.TS, int64(0))
	mockSvc.AssertExpectations(t)
}

func TestMajorPrices(t *testing.T) {
	mockSvc := new(serviceMocks.MockMarketService)
	app := fiber.New()
	app.Get("/api/binance/btc_eth", MajorPrices(mockSvc))

	prices := model.MajorPrices{
		BTC: model.PriceChange{Price: 64000, Change: 3.5},
		ETH: model.PriceChange{Price: 3200, Change: -1.2},
	}
	mockSvc.On("MajorPrices", mock.Anything).Return(prices).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/binance/btc_eth", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result model.MajorPrices
	json.NewDecoder(resp.Body).Decode(&result)
	assert.Equal(t, 64000.0, result.BTC.Price)
	assert.Equal(t, -1.2, result.ETH.Change)
	mockSvc.AssertExpectations(t)
}

func TestFearGreed(t *testing.T) {
	mockSvc := new(serviceMocks.MockMarketService)
	app := fiber.New()
	app.Get("/api/market/fng", FearGreed(mockSvc))

	idx := model.FearGreed{Value: 39, Classification: "Fear", Change24h: -13.33}
	mockSvc.On("FearGreed", mock.Anything).Return(idx).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/market/fng", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result model.FearGreed
	json.NewDecoder(resp.Body).Decode(&result)
	assert.Equal(t, 39, result.Value)
	assert.Equal(t, "Fear", result.Classification)
	mockSvc.AssertExpectations(t)
}

func TestAnalysis(t *testing.T) {
	mockSvc := new(serviceMocks.MockMarketService)
	app := fiber.New()
	app.Get("/api/ai/analysis", Analysis(mockSvc))

	t.Run("success", func(t *testing.T) {
		mockSvc.On("Analysis", mock.Anything, "BTCUSDT").Return("<div>report</div>").Once()

		req := httptest.NewRequest(http.MethodGet, "/api/ai/analysis?symbol=BTCUSDT", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result analysisResponse
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, "<div>report</div>", result.Analysis)
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing symbol", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/ai/analysis", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "SYMBOL_REQUIRED", res.Error.Code)
	})
}

func TestGridBacktest(t *testing.T) {
	mockSvc := new(serviceMocks.MockGridService)
	app := fiber.New()
	app.Get("/api/grid/backtest", GridBacktest(mockSvc))

	rows := []model.BacktestRow{
		{Rank: 1, Symbol: "BTC/USDT", Price: 64000, Volatility: 4.2, LongAPR: 102.9, ShortAPR: -2.1},
	}
	mockSvc.On("Backtest", mock.Anything).Return(rows).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/grid/backtest", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result backtestResponse
	json.NewDecoder(resp.Body).Decode(&result)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "BTC/USDT", result.Data[0].Symbol)
	mockSvc.AssertExpectations(t)
}

func TestGridConfigs(t *testing.T) {
	mockSvc := new(serviceMocks.MockGridService)
	app := fiber.New()
	app.Get("/api/grid/configs", GridConfigs(mockSvc))

	configs := []model.GridConfig{
		{Filename: "btc_follow.yaml", Exchange: "Binance", Symbol: "BTC/USDT", Mode: "FOLLOW (移动)", Direction: "long", Investment: "30 格 × 20", Status: "stopped"},
	}
	mockSvc.On("Configs").Return(configs).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/grid/configs", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result configsResponse
	json.NewDecoder(resp.Body).Decode(&result)
	require.Len(t, result.Configs, 1)
	assert.Equal(t, "FOLLOW (移动)", result.Configs[0].Mode)
	mockSvc.AssertExpectations(t)
}

func TestSystemEndpoints(t *testing.T) {
	app := fiber.New()
	app.Get("/api/system/info", SystemInfo())
	app.Get("/api/wash/status", WashStatus())
	app.Get("/api/arbitrage/opportunities", ArbitrageOpportunities())
	app.Get("/api/scanner/events", ScannerEvents())

	t.Run("system info", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/system/info", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var info model.SystemInfo
		json.NewDecoder(resp.Body).Decode(&info)
		assert.Equal(t, "2.0", info.Version)
		assert.Len(t, info.Modules, 5)
		assert.Len(t, info.Exchanges, 9)
	})

	t.Run("wash status", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/wash/status", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result washResponse
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Len(t, result.Data, 7)
	})

	t.Run("arbitrage opportunities", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/arbitrage/opportunities", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result arbitrageResponse
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Len(t, result.Data, 6)
	})

	t.Run("scanner events", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/scanner/events", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result scannerResponse
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Len(t, result.Data, 7)
	})
}

func TestListAlerts(t *testing.T) {
	mockSvc := new(serviceMocks.MockAlertService)
	app := fiber.New()
	app.Get("/api/alerts/list", ListAlerts(mockSvc))

	alerts := []model.Alert{
		{ID: 1, Pair: "DOGE/USDT", Condition: "涨破 (Price >)", Target: "$0.500", Status: "Active"},
	}
	mockSvc.On("List", mock.Anything).Return(alerts).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/alerts/list", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result alertsResponse
	json.NewDecoder(resp.Body).Decode(&result)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "DOGE/USDT", result.Data[0].Pair)
	mockSvc.AssertExpectations(t)
}

func TestCreateAlert(t *testing.T) {
	mockSvc := new(serviceMocks.MockAlertService)
	app := fiber.New()
	app.Post("/api/alerts", CreateAlert(mockSvc))

	t.Run("success", func(t *testing.T) {
		in := service.AlertCreateInput{Pair: "BTC/USDT", Condition: "涨破 (Price >)", Target: "$70,000", Notify: "Telegram"}
		stored := &model.Alert{ID: 8, Pair: "BTC/USDT", Condition: "涨破 (Price >)", Target: "$70,000", Notify: "Telegram", Status: "Active"}
		mockSvc.On("Create", mock.Anything, in).Return(stored, nil).Once()

		body := strings.NewReader(`{"pair":"BTC/USDT","condition":"涨破 (Price >)","target":"$70,000","notify":"Telegram"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/alerts", body)
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var result model.Alert
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, int64(8), result.ID)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid body", func(t *testing.T) {
		body := strings.NewReader(`{"pair":`)
		req := httptest.NewRequest(http.MethodPost, "/api/alerts", body)
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "INVALID_BODY", res.Error.Code)
	})

	t.Run("missing pair", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, mock.Anything).Return(nil, service.ErrPairRequired).Once()

		body := strings.NewReader(`{"condition":"涨破 (Price >)","target":"$1"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/alerts", body)
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "PAIR_REQUIRED", res.Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("read only", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, mock.Anything).Return(nil, service.ErrAlertsReadOnly).Once()

		body := strings.NewReader(`{"pair":"BTC/USDT","condition":"涨破 (Price >)","target":"$1"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/alerts", body)
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "ALERTS_READONLY", res.Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("insert failed")).Once()

		body := strings.NewReader(`{"pair":"BTC/USDT","condition":"涨破 (Price >)","target":"$1"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/alerts", body)
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestDeleteAlert(t *testing.T) {
	mockSvc := new(serviceMocks.MockAlertService)
	app := fiber.New()
	app.Delete("/api/alerts/:id", DeleteAlert(mockSvc))

	t.Run("success", func(t *testing.T) {
		mockSvc.On("Delete", mock.Anything, int64(3)).Return(nil).Once()

		req := httptest.NewRequest(http.MethodDelete, "/api/alerts/3", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/api/alerts/abc", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "INVALID_ID", res.Error.Code)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.On("Delete", mock.Anything, int64(99)).Return(service.ErrAlertNotFound).Once()

		req := httptest.NewRequest(http.MethodDelete, "/api/alerts/99", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "NOT_FOUND", res.Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("read only", func(t *testing.T) {
		mockSvc.On("Delete", mock.Anything, int64(5)).Return(service.ErrAlertsReadOnly).Once()

		req := httptest.NewRequest(http.MethodDelete, "/api/alerts/5", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "ALERTS_READONLY", res.Error.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestIndex(t *testing.T) {
	app := fiber.New()
	app.Get("/", Index())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
}

func TestErrorHandler(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("upstream exploded") })
	app.Get("/busy", func(c *fiber.Ctx) error { return fiber.ErrServiceUnavailable })

	cases := []struct {
		name   string
		method string
		path   string
		status int
		code   string
	}{
		{"unknown route", http.MethodGet, "/nope", http.StatusNotFound, "NOT_FOUND"},
		{"method mismatch", http.MethodPost, "/ok", http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED"},
		{"dependency down", http.MethodGet, "/busy", http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE"},
		{"unexpected error", http.MethodGet, "/boom", http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			resp, _ := app.Test(req)

			assert.Equal(t, tc.status, resp.StatusCode)

			var res errorPayload
			json.NewDecoder(resp.Body).Decode(&res)
			assert.Equal(t, tc.code, res.Error.Code)
		})
	}

	// The raw error text must never leak into the body
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	resp, _ := app.Test(req)
	var res errorPayload
	json.NewDecoder(resp.Body).Decode(&res)
	assert.NotContains(t, res.Error.Message, "exploded")
}

func TestRegisterRoutes(t *testing.T) {
	market := new(serviceMocks.MockMarketService)
	grid := new(serviceMocks.MockGridService)
	alerts := new(serviceMocks.MockAlertService)

	market.On("FearGreed", mock.Anything).Return(model.FearGreed{Value: 50, Classification: "Neutral"})
	grid.On("Configs").Return([]model.GridConfig{})

	app := fiber.New()
	RegisterRoutes(app, nil, market, grid, alerts)

	// Health skips the DB ping when running without a database
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, _ := app.Test(req)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/api/market/fng", nil)
	resp, _ = app.Test(req)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/api/grid/configs", nil)
	resp, _ = app.Test(req)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
