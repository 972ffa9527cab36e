package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Hans010101/Crypto-Trading/internal/model"
	"github.com/Hans010101/Crypto-Trading/internal/service"
)

type backtestResponse struct {
	Data []model.BacktestRow `json:"data"`
}

type configsResponse struct {
	Configs []model.GridConfig `json:"configs"`
}

// GridBacktest returns the simulated grid yields for the watchlist coins.
//
// @Summary Grid backtest estimates
// @Tags grid
// @Produce json
// @Success 200 {object} backtestResponse
// @Router /api/grid/backtest [get]
func GridBacktest(svc service.GridService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(backtestResponse{Data: svc.Backtest(c.UserContext())})
	}
}

// GridConfigs lists the grid bots configured on disk.
//
// @Summary Grid bot configurations
// @Tags grid
// @Produce json
// @Success 200 {object} configsResponse
// @Router /api/grid/configs [get]
func GridConfigs(svc service.GridService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(configsResponse{Configs: svc.Configs()})
	}
}
