package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	config, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", config.ServerPort)
	assert.Equal(t, "development", config.Environment)
	assert.Equal(t, 3, config.Risk.WatchDays)
	assert.Equal(t, 7, config.Risk.OverdueDays)
	assert.Equal(t, 2, config.Risk.HighRiskDays)
	assert.Equal(t, 14, config.Risk.UnpaidAgingDays)
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("RISK_WATCH_DAYS", "5")
	t.Setenv("RISK_OVERDUE_DAYS", "12")

	config, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", config.ServerPort)
	assert.Equal(t, 5, config.Risk.WatchDays)
	assert.Equal(t, 12, config.Risk.OverdueDays)
}

func TestLoadFallsBackOnUnparsableInt(t *testing.T) {
	t.Setenv("RISK_WATCH_DAYS", "soon")

	config, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 3, config.Risk.WatchDays)
}

func TestLoadRejectsWatchAboveOverdue(t *testing.T) {
	t.Setenv("RISK_WATCH_DAYS", "10")
	t.Setenv("RISK_OVERDUE_DAYS", "7")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RISK_WATCH_DAYS")
}

func TestLoadRejectsNegativeThresholds(t *testing.T) {
	t.Setenv("RISK_UNPAID_AGING_DAYS", "-1")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-negative")
}
