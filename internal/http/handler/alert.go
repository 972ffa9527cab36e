package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Hans010101/Crypto-Trading/internal/model"
	"github.com/Hans010101/Crypto-Trading/internal/service"
)

type alertsResponse struct {
	Data []model.Alert `json:"data"`
}

// ListAlerts returns the configured price alerts.
//
// @Summary List price alerts
// @Description Stored alerts, or the built-in sample set when no database is configured.
// @Tags alerts
// @Produce json
// @Success 200 {object} alertsResponse
// @Router /api/alerts/list [get]
func ListAlerts(svc service.AlertService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(alertsResponse{Data: svc.List(c.UserContext())})
	}
}

// CreateAlert stores a new price alert.
//
// @Summary Create price alert
// @Tags alerts
// @Accept json
// @Produce json
// @Param alert body service.AlertCreateInput true "alert fields"
// @Success 201 {object} model.Alert
// @Failure 400 {object} errorPayload
// @Failure 503 {object} errorPayload
// @Router /api/alerts [post]
func CreateAlert(svc service.AlertService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.AlertCreateInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		alert, err := svc.Create(c.UserContext(), in)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrPairRequired):
				return writeError(c, fiber.StatusBadRequest, "PAIR_REQUIRED", "pair is required")
			case errors.Is(err, service.ErrConditionRequired):
				return writeError(c, fiber.StatusBadRequest, "CONDITION_REQUIRED", "condition is required")
			case errors.Is(err, service.ErrTargetRequired):
				return writeError(c, fiber.StatusBadRequest, "TARGET_REQUIRED", "target is required")
			case errors.Is(err, service.ErrAlertsReadOnly):
				return writeError(c, fiber.StatusServiceUnavailable, "ALERTS_READONLY", "alert persistence is not configured")
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}
		return c.Status(fiber.StatusCreated).JSON(alert)
	}
}

// DeleteAlert removes an alert by ID.
//
// @Summary Delete price alert
// @Tags alerts
// @Param id path int true "alert ID"
// @Success 204
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Failure 503 {object} errorPayload
// @Router /api/alerts/{id} [delete]
func DeleteAlert(svc service.AlertService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseInt(c.Params("id"), 10, 64)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		if err := svc.Delete(c.UserContext(), id); err != nil {
			switch {
			case errors.Is(err, service.ErrAlertNotFound):
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "alert not found")
			case errors.Is(err, service.ErrAlertsReadOnly):
				return writeError(c, fiber.StatusServiceUnavailable, "ALERTS_READONLY", "alert persistence is not configured")
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
