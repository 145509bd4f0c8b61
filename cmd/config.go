package main

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/pterm/pterm"
)

const (
	deciderCoin     = "coin"
	deciderShowdown = "showdown"

	outputTable = "table"
	outputJSON  = "json"
)

type config struct {
	InitialBalance int64  `env:"HEALTH_LEDGER_INITIAL_BALANCE" envDefault:"100"`
	Decider        string `env:"HEALTH_LEDGER_DECIDER"         envDefault:"coin"`
	Output         string `env:"HEALTH_LEDGER_OUTPUT"          envDefault:"table"`
	LogLevel       string `env:"HEALTH_LEDGER_LOG_LEVEL"       envDefault:"info"`
}

func loadConfig() (config, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.Decider = strings.ToLower(strings.TrimSpace(cfg.Decider))
	cfg.Output = strings.ToLower(strings.TrimSpace(cfg.Output))
	if err := cfg.validate(); err != nil {
		return config{}, err
	}
	return cfg, nil
}

func (c config) validate() error {
	if c.InitialBalance <= 0 {
		return fmt.Errorf("initial balance must be positive: %d", c.InitialBalance)
	}
	switch c.Decider {
	case deciderCoin, deciderShowdown:
	default:
		return fmt.Errorf("unsupported decider: %s", c.Decider)
	}
	switch c.Output {
	case outputTable, outputJSON:
	default:
		return fmt.Errorf("unsupported output: %s", c.Output)
	}
	if _, err := c.ptermLevel(); err != nil {
		return err
	}
	return nil
}

func (c config) ptermLevel() (pterm.LogLevel, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return pterm.LogLevelDebug, nil
	case "info", "":
		return pterm.LogLevelInfo, nil
	case "warn":
		return pterm.LogLevelWarn, nil
	case "error":
		return pterm.LogLevelError, nil
	default:
		return 0, fmt.Errorf("unsupported log level: %s", c.LogLevel)
	}
}
