package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfo(t *testing.T) {
	info := Info()

	assert.Equal(t, "多交易所策略自动化系统", info.Name)
	assert.Equal(t, "2.0", info.Version)
	require.Len(t, info.Modules, 5)
	require.Len(t, info.Exchanges, 9)

	for _, m := range info.Modules {
		assert.NotEmpty(t, m.Name)
		assert.NotEmpty(t, m.Icon)
		assert.Len(t, m.Features, 5)
	}

	assert.Equal(t, "Binance", info.Exchanges[0].Name)
	assert.True(t, info.Exchanges[0].Spot)
	last := info.Exchanges[len(info.Exchanges)-1]
	assert.Equal(t, "Variational", last.Name)
	assert.Equal(t, "limited", last.Status)
}

func TestPanelRows(t *testing.T) {
	assert.Len(t, WashJobs(), 7)
	assert.Len(t, ArbitrageOpportunities(), 6)
	assert.Len(t, ScannerEvents(), 7)
	assert.Len(t, SampleAlerts(), 7)

	for _, j := range WashJobs() {
		assert.NotZero(t, j.ID)
		assert.NotEmpty(t, j.Status)
		assert.Contains(t, j.Color, "var(--")
	}
	for _, a := range SampleAlerts() {
		assert.NotZero(t, a.ID)
		assert.NotEmpty(t, a.Condition)
	}
}
