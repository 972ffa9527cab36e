package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/Hans010101/Crypto-Trading/internal/service"
	"github.com/Hans010101/Crypto-Trading/internal/web"
)

// Index serves the embedded single-page dashboard.
//
// @Summary Dashboard UI
// @Tags web
// @Produce html
// @Success 200 {string} string
// @Router / [get]
func Index() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Type("html", "utf-8")
		return c.Send(web.Dashboard)
	}
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers stay thin; everything stateful lives in the injected services.
func RegisterRoutes(app *fiber.App, db *sql.DB, market service.MarketService, grid service.GridService, alerts service.AlertService) {
	app.Get("/", Index())

	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api")

	api.Get("/binance/tickers", MarketTickers(market))
	api.Get("/binance/funding", FundingBoard(market))
	api.Get("/binance/btc_eth", MajorPrices(market))
	api.Get("/market/fng", FearGreed(market))
	api.Get("/ai/analysis", Analysis(market))

	api.Get("/grid/backtest", GridBacktest(grid))
	api.Get("/grid/configs", GridConfigs(grid))

	api.Get("/system/info", SystemInfo())
	api.Get("/wash/status", WashStatus())
	api.Get("/arbitrage/opportunities", ArbitrageOpportunities())
	api.Get("/scanner/events", ScannerEvents())

	api.Get("/alerts/list", ListAlerts(alerts))
	api.Post("/alerts", CreateAlert(alerts))
	api.Delete("/alerts/:id", DeleteAlert(alerts))
}
