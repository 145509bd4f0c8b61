package application

import (
	"log/slog"

	"github.com/luca-patrignani/health-ledger/domain/contest"
	"github.com/luca-patrignani/health-ledger/ledger"
)

type engineOption func(*Engine)

// WithClock sets the clock used to timestamp blocks.
func WithClock(clock ledger.Clock) engineOption {
	return func(e *Engine) {
		e.clock = clock
	}
}

// WithDecider sets how competition winners are picked.
func WithDecider(d contest.Decider) engineOption {
	return func(e *Engine) {
		e.decider = d
	}
}

// WithLogger sets the logger. Engines log nothing by default.
func WithLogger(logger *slog.Logger) engineOption {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithInitialBalance sets the balance of newly registered participants.
func WithInitialBalance(balance int64) engineOption {
	return func(e *Engine) {
		e.initialBalance = balance
	}
}
