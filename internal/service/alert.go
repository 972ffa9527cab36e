package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Hans010101/Crypto-Trading/internal/model"
	"github.com/Hans010101/Crypto-Trading/internal/repository"
	"github.com/Hans010101/Crypto-Trading/internal/system"
)

var (
	ErrAlertsReadOnly    = errors.New("alert persistence is not configured")
	ErrAlertNotFound     = errors.New("alert not found")
	ErrPairRequired      = errors.New("pair is required")
	ErrConditionRequired = errors.New("condition is required")
	ErrTargetRequired    = errors.New("target is required")
)

// AlertCreateInput carries the user-supplied fields of a new alert.
type AlertCreateInput struct {
	Pair      string `json:"pair"`
	Condition string `json:"condition"`
	Target    string `json:"target"`
	Notify    string `json:"notify"`
}

// AlertService manages price alerts. Without a configured database the
// panel serves a built-in sample set and mutations are rejected.
type AlertService interface {
	// List returns all alerts. It degrades to the sample set when the
	// store is unavailable, so the panel always renders.
	List(ctx context.Context) []model.Alert

	// Create validates and stores a new alert.
	Create(ctx context.Context, in AlertCreateInput) (*model.Alert, error)

	// Delete removes an alert by ID.
	Delete(ctx context.Context, id int64) error
}

type alertService struct {
	repo repository.AlertRepository
}

// NewAlertService constructs an AlertService. Pass a nil repository to
// run in sample/read-only mode.
func NewAlertService(repo repository.AlertRepository) AlertService {
	return &alertService{repo: repo}
}

func (s *alertService) List(ctx context.Context) []model.Alert {
	if s.repo == nil {
		return system.SampleAlerts()
	}
	items, err := s.repo.List(ctx)
	if err != nil {
		log.Printf("alerts: list failed, serving samples: %v", err)
		return system.SampleAlerts()
	}
	return items
}

func (s *alertService) Create(ctx context.Context, in AlertCreateInput) (*model.Alert, error) {
	if s.repo == nil {
		return nil, ErrAlertsReadOnly
	}
	if in.Pair == "" {
		return nil, ErrPairRequired
	}
	if in.Condition == "" {
		return nil, ErrConditionRequired
	}
	if in.Target == "" {
		return nil, ErrTargetRequired
	}

	notify := in.Notify
	if notify == "" {
		notify = "App"
	}
	alert := &model.Alert{
		Pair:      in.Pair,
		Condition: in.Condition,
		Target:    in.Target,
		Distance:  "待评估 (Pending)",
		Notify:    notify,
		Status:    "Active",
		Color:     "var(--text-primary)",
		CreatedAt: time.Now().UTC(),
	}
	stored, err := s.repo.Create(ctx, alert)
	if err != nil {
		return nil, fmt.Errorf("store alert: %w", err)
	}
	return stored, nil
}

func (s *alertService) Delete(ctx context.Context, id int64) error {
	if s.repo == nil {
		return ErrAlertsReadOnly
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrAlertNotFound) {
			return ErrAlertNotFound
		}
		return fmt.Errorf("delete alert: %w", err)
	}
	return nil
}
