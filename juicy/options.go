package juicy

import (
	"github.com/flitsinc/juicy/adapter"
	"github.com/flitsinc/juicy/internal/logging"
)

// config holds every knob an Option can set, following the teacher's
// llms.New/tools.NewRunner constructor shape: plain functions closing over
// a private struct instead of a long positional argument list.
type config struct {
	budget adapter.Budget
	logger *logging.Logger
}

// Option configures a Continuation or StreamContinuation at construction.
type Option func(*config)

// WithBudget bounds how many bytes a single ParseIter/StreamParseIter call
// will peek before rescheduling (spec.md §4.5). Zero (the default) means
// unbounded: a single call runs the parse to completion or to the first
// missing byte.
func WithBudget(steps int64) Option {
	return func(c *config) { c.budget = adapter.Budget{Steps: steps} }
}

// WithLogger attaches a structured debug logger; nil (the default) means
// the hot path never pays for logging.
func WithLogger(l *logging.Logger) Option {
	return func(c *config) { c.logger = l }
}

func buildConfig(opts []Option) *config {
	c := &config{}
	for _, o := range opts {
		o(c)
	}
	return c
}
