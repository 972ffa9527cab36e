// Package repository contains the data access layer abstractions;
// implementations live in subpackages (postgres, mocks).
package repository

import (
	"context"
	"errors"

	"github.com/Hans010101/Crypto-Trading/internal/model"
)

// ErrAlertNotFound is returned when an alert ID does not exist.
var ErrAlertNotFound = errors.New("alert not found")

// AlertRepository defines data access for price alerts using SQL queries only.
// No business logic here, strictly persistence operations.
type AlertRepository interface {
	// Create inserts a new alert record. The caller provides display fields
	// and CreatedAt; the database assigns the ID.
	Create(ctx context.Context, alert *model.Alert) (*model.Alert, error)

	// List returns all alerts in creation order.
	List(ctx context.Context) ([]model.Alert, error)

	// Delete removes an alert by ID. It returns ErrAlertNotFound when no
	// row matches.
	Delete(ctx context.Context, id int64) error
}
