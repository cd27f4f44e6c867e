package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config represents the engine configuration
type Config struct {
	Instrument InstrumentConfig `env:", prefix=INSTRUMENT_"`
	Engine     EngineConfig     `env:", prefix=ENGINE_"`
	Risk       RiskConfig       `env:", prefix=RISK_"`
	Logging    LoggingConfig    `env:", prefix=LOG_"`
}

// InstrumentConfig describes the traded instrument's contract geometry
type InstrumentConfig struct {
	Symbol    string  `env:"SYMBOL, default=MES"`
	TickSize  float64 `env:"TICK_SIZE, default=0.25"`
	TickValue float64 `env:"TICK_VALUE, default=1.25"`
}

// EngineConfig holds the detection and state-machine tunables. The expiry
// and suppression bar counts are fixed constants carried over from the
// production system; override via env only for experimentation.
type EngineConfig struct {
	SwingLeftBars   int `env:"SWING_LEFT_BARS, default=5"`
	SwingRightBars  int `env:"SWING_RIGHT_BARS, default=5"`
	MaxSwingHistory int `env:"MAX_SWING_HISTORY, default=50"`

	// ContactExpiryBars retires a setup that never hooks after its touch.
	ContactExpiryBars int `env:"CONTACT_EXPIRY_BARS, default=10"`
	// SetupExpiryBars retires a confirmed setup that never goes.
	SetupExpiryBars int `env:"SETUP_EXPIRY_BARS, default=20"`
	// ReentrySuppressionBars blocks a new touch on a (direction, ratio)
	// track after that track last triggered.
	ReentrySuppressionBars int `env:"REENTRY_SUPPRESSION_BARS, default=40"`
}

// RiskConfig holds position-sizing limits
type RiskConfig struct {
	MaxAccountRisk float64 `env:"MAX_ACCOUNT_RISK, default=500"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `env:"LEVEL, default=info"`
	Format string `env:"FORMAT, default=text"`
	Output string `env:"OUTPUT, default=stdout"`
}

// Load loads configuration from a .env file (when present) and environment
// variables using go-envconfig
func Load() (*Config, error) {
	if err := LoadDotEnv(); err != nil {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	ctx := context.Background()
	var cfg Config

	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration with every field at its default value,
// without reading the environment.
func Default() *Config {
	return &Config{
		Instrument: InstrumentConfig{
			Symbol:    "MES",
			TickSize:  0.25,
			TickValue: 1.25,
		},
		Engine: EngineConfig{
			SwingLeftBars:          5,
			SwingRightBars:         5,
			MaxSwingHistory:        50,
			ContactExpiryBars:      10,
			SetupExpiryBars:        20,
			ReentrySuppressionBars: 40,
		},
		Risk: RiskConfig{
			MaxAccountRisk: 500,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stdout",
		},
	}
}

// Validate checks the configuration for values the engine cannot work with
func (c *Config) Validate() error {
	if c.Instrument.TickSize <= 0 {
		return fmt.Errorf("tick size must be positive, got %v", c.Instrument.TickSize)
	}
	if c.Instrument.TickValue <= 0 {
		return fmt.Errorf("tick value must be positive, got %v", c.Instrument.TickValue)
	}
	if c.Engine.SwingLeftBars < 1 || c.Engine.SwingRightBars < 1 {
		return fmt.Errorf("swing window must be at least 1 bar on each side")
	}
	if c.Engine.ContactExpiryBars < 1 || c.Engine.SetupExpiryBars < 1 {
		return fmt.Errorf("expiry bar counts must be positive")
	}
	if c.Risk.MaxAccountRisk <= 0 {
		return fmt.Errorf("max account risk must be positive, got %v", c.Risk.MaxAccountRisk)
	}
	return nil
}
