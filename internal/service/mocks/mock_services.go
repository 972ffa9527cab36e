package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Hans010101/Crypto-Trading/internal/model"
	"github.com/Hans010101/Crypto-Trading/internal/service"
)

type MockMarketService struct {
	mock.Mock
}

func (m *MockMarketService) Tickers(ctx context.Context) model.TickerBoard {
	args := m.Called(ctx)
	return args.Get(0).(model.TickerBoard)
}

func (m *MockMarketService) Funding(ctx context.Context) []model.FundingRow {
	args := m.Called(ctx)
	return args.Get(0).([]model.FundingRow)
}

func (m *MockMarketService) MajorPrices(ctx context.Context) model.MajorPrices {
	args := m.Called(ctx)
	return args.Get(0).(model.MajorPrices)
}

func (m *MockMarketService) FearGreed(ctx context.Context) model.FearGreed {
	args := m.Called(ctx)
	return args.Get(0).(model.FearGreed)
}

func (m *MockMarketService) Analysis(ctx context.Context, symbol string) string {
	args := m.Called(ctx, symbol)
	return args.String(0)
}

func (m *MockMarketService) Stop() {
	m.Called()
}

type MockGridService struct {
	mock.Mock
}

func (m *MockGridService) Backtest(ctx context.Context) []model.BacktestRow {
	args := m.Called(ctx)
	return args.Get(0).([]model.BacktestRow)
}

func (m *MockGridService) Configs() []model.GridConfig {
	args := m.Called()
	return args.Get(0).([]model.GridConfig)
}

type MockAlertService struct {
	mock.Mock
}

func (m *MockAlertService) List(ctx context.Context) []model.Alert {
	args := m.Called(ctx)
	return args.Get(0).([]model.Alert)
}

func (m *MockAlertService) Create(ctx context.Context, in service.AlertCreateInput) (*model.Alert, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Alert), args.Error(1)
}

func (m *MockAlertService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
