package postgres

import (
	"context"
	"database/sql"

	"github.com/Hans010101/Crypto-Trading/internal/model"
	"github.com/Hans010101/Crypto-Trading/internal/repository"
)

// AlertPostgres is a PostgreSQL implementation of repository.AlertRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type AlertPostgres struct {
	db *sql.DB
}

// NewAlertPostgres creates a new AlertPostgres repository.
func NewAlertPostgres(db *sql.DB) *AlertPostgres {
	return &AlertPostgres{db: db}
}

var _ repository.AlertRepository = (*AlertPostgres)(nil)

// Create inserts a new alert row and returns the stored record with its
// database-assigned ID.
func (r *AlertPostgres) Create(ctx context.Context, alert *model.Alert) (*model.Alert, error) {
	const q = `
		INSERT INTO alerts (pair, condition, target_value, distance, notify, status, color, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, pair, condition, target_value, distance, notify, status, color, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		alert.Pair,
		alert.Condition,
		alert.Target,
		alert.Distance,
		alert.Notify,
		alert.Status,
		alert.Color,
		alert.CreatedAt,
	)
	var out model.Alert
	if err := row.Scan(
		&out.ID,
		&out.Pair,
		&out.Condition,
		&out.Target,
		&out.Distance,
		&out.Notify,
		&out.Status,
		&out.Color,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns every alert row, oldest first, so the panel keeps a stable
// ordering as alerts are added.
func (r *AlertPostgres) List(ctx context.Context) ([]model.Alert, error) {
	const q = `
		SELECT id, pair, condition, target_value, distance, notify, status, color, created_at
		FROM alerts
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Alert, 0)
	for rows.Next() {
		var a model.Alert
		if err := rows.Scan(
			&a.ID,
			&a.Pair,
			&a.Condition,
			&a.Target,
			&a.Distance,
			&a.Notify,
			&a.Status,
			&a.Color,
			&a.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Delete removes an alert by ID and reports ErrAlertNotFound when the row
// does not exist.
func (r *AlertPostgres) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM alerts WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repository.ErrAlertNotFound
	}
	return nil
}
