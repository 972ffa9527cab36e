package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Hans010101/Crypto-Trading/internal/model"
	"github.com/Hans010101/Crypto-Trading/internal/system"
)

type washResponse struct {
	Data []model.WashJob `json:"data"`
}

type arbitrageResponse struct {
	Data []model.ArbitrageOpportunity `json:"data"`
}

type scannerResponse struct {
	Data []model.ScannerEvent `json:"data"`
}

// SystemInfo returns the static platform catalog.
//
// @Summary Platform catalog
// @Tags system
// @Produce json
// @Success 200 {object} model.SystemInfo
// @Router /api/system/info [get]
func SystemInfo() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(system.Info())
	}
}

// WashStatus returns the sample wash-trading job board.
//
// @Summary Wash-trading job board
// @Tags system
// @Produce json
// @Success 200 {object} washResponse
// @Router /api/wash/status [get]
func WashStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(washResponse{Data: system.WashJobs()})
	}
}

// ArbitrageOpportunities returns the sample arbitrage board.
//
// @Summary Arbitrage opportunities
// @Tags system
// @Produce json
// @Success 200 {object} arbitrageResponse
// @Router /api/arbitrage/opportunities [get]
func ArbitrageOpportunities() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(arbitrageResponse{Data: system.ArbitrageOpportunities()})
	}
}

// ScannerEvents returns the sample volatility scanner feed.
//
// @Summary Volatility scanner events
// @Tags system
// @Produce json
// @Success 200 {object} scannerResponse
// @Router /api/scanner/events [get]
func ScannerEvents() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(scannerResponse{Data: system.ScannerEvents()})
	}
}
