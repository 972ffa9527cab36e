package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Hans010101/Crypto-Trading/internal/model"
	"github.com/Hans010101/Crypto-Trading/internal/service"
)

// tickersResponse is the market board payload polled by the dashboard.
type tickersResponse struct {
	Exchange     string            `json:"exchange"`
	Data         []model.TickerRow `json:"data"`
	Other        []model.TickerRow `json:"other"`
	TotalVolume  float64           `json:"total_volume"`
	VolumeChange float64           `json:"volume_change"`
	TS           int64             `json:"ts"`
}

type fundingResponse struct {
	Exchange string             `json:"exchange"`
	Data     []model.FundingRow `json:"data"`
	TS       int64              `json:"ts"`
}

type analysisResponse struct {
	Analysis string `json:"analysis"`
}

// MarketTickers returns the ranked USDT perpetual board.
//
// @Summary Market ticker board
// @Description Ranked USDT perpetual contracts with funding and positioning data.
// @Tags market
// @Produce json
// @Success 200 {object} tickersResponse
// @Router /api/binance/tickers [get]
func MarketTickers(svc service.MarketService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		board := svc.Tickers(c.UserContext())
		return c.JSON(tickersResponse{
			Exchange:     "Binance",
			Data:         board.Main,
			Other:        board.Other,
			TotalVolume:  board.TotalVolume,
			VolumeChange: board.VolumeChange,
			TS:           time.Now().UnixMilli(),
		})
	}
}

// FundingBoard returns the contracts with the largest absolute funding rates.
//
// @Summary Funding rate leaderboard
// @Tags market
// @Produce json
// @Success 200 {object} fundingResponse
// @Router /api/binance/funding [get]
func FundingBoard(svc service.MarketService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fundingResponse{
			Exchange: "Binance",
			Data:     svc.Funding(c.UserContext()),
			TS:       time.Now().UnixMilli(),
		})
	}
}

// MajorPrices returns the headline BTC and ETH quotes.
//
// @Summary BTC/ETH headline prices
// @Tags market
// @Produce json
// @Success 200 {object} model.MajorPrices
// @Router /api/binance/btc_eth [get]
func MajorPrices(svc service.MarketService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.MajorPrices(c.UserContext()))
	}
}

// FearGreed returns the current Fear & Greed index.
//
// @Summary Fear & Greed index
// @Tags market
// @Produce json
// @Success 200 {object} model.FearGreed
// @Router /api/market/fng [get]
func FearGreed(svc service.MarketService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.FearGreed(c.UserContext()))
	}
}

// Analysis renders the commentary for one contract.
//
// @Summary Contract analysis
// @Description HTML commentary built from the latest cached board row.
// @Tags market
// @Produce json
// @Param symbol query string true "contract symbol, e.g. BTCUSDT or BTC/USDT"
// @Success 200 {object} analysisResponse
// @Failure 400 {object} errorPayload
// @Router /api/ai/analysis [get]
func Analysis(svc service.MarketService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		symbol := c.Query("symbol")
		if symbol == "" {
			return writeError(c, fiber.StatusBadRequest, "SYMBOL_REQUIRED", "symbol is required")
		}
		return c.JSON(analysisResponse{Analysis: svc.Analysis(c.UserContext(), symbol)})
	}
}
