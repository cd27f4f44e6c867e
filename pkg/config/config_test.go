package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "MES", cfg.Instrument.Symbol)
	assert.Equal(t, 0.25, cfg.Instrument.TickSize)
	assert.Equal(t, 1.25, cfg.Instrument.TickValue)
	assert.Equal(t, 5, cfg.Engine.SwingLeftBars)
	assert.Equal(t, 10, cfg.Engine.ContactExpiryBars)
	assert.Equal(t, 20, cfg.Engine.SetupExpiryBars)
	assert.Equal(t, 40, cfg.Engine.ReentrySuppressionBars)
	assert.Equal(t, 500.0, cfg.Risk.MaxAccountRisk)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("INSTRUMENT_SYMBOL", "ES")
	t.Setenv("INSTRUMENT_TICK_VALUE", "12.50")
	t.Setenv("ENGINE_REENTRY_SUPPRESSION_BARS", "60")
	t.Setenv("RISK_MAX_ACCOUNT_RISK", "1000")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "ES", cfg.Instrument.Symbol)
	assert.Equal(t, 12.50, cfg.Instrument.TickValue)
	assert.Equal(t, 60, cfg.Engine.ReentrySuppressionBars)
	assert.Equal(t, 1000.0, cfg.Risk.MaxAccountRisk)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	t.Setenv("INSTRUMENT_TICK_SIZE", "0")

	_, err := Load()
	assert.Error(t, err)
}

func TestDefaultMatchesLoad(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestValidate(t *testing.T) {
	mutate := func(fn func(*Config)) error {
		cfg := Default()
		fn(cfg)
		return cfg.Validate()
	}

	assert.NoError(t, Default().Validate())
	assert.Error(t, mutate(func(c *Config) { c.Instrument.TickSize = -1 }))
	assert.Error(t, mutate(func(c *Config) { c.Instrument.TickValue = 0 }))
	assert.Error(t, mutate(func(c *Config) { c.Engine.SwingLeftBars = 0 }))
	assert.Error(t, mutate(func(c *Config) { c.Engine.SetupExpiryBars = 0 }))
	assert.Error(t, mutate(func(c *Config) { c.Risk.MaxAccountRisk = 0 }))
}
