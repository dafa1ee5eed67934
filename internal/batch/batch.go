// Package batch provides the multi-journey operations built on top of the
// attribution engine: model comparison, model search over historical data,
// sequence mining, lift calculation, and summary roll-ups.
//
// Every operation has partial-failure semantics: a unit (one journey or one
// model) that errors is logged, counted, and replaced with an empty or
// zero-scored result instead of aborting its siblings. Fan-out is bounded
// and honors context cancellation, which aborts remaining units without
// touching already-computed ones.
package batch

import (
	"runtime"

	"github.com/mktlab/attrib/internal/engine"
	"github.com/mktlab/attrib/pkg/logger"
	"github.com/mktlab/attrib/pkg/metrics"
)

// Runner executes batch operations against one engine with a bounded level
// of parallelism.
type Runner struct {
	engine      *engine.Engine
	concurrency int
	logger      logger.Logger
}

// Option applies a configuration option to the Runner.
type Option func(*Runner)

// WithConcurrency caps how many units run in parallel.
func WithConcurrency(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.concurrency = n
		}
	}
}

// WithLogger sets a custom logger for the runner.
func WithLogger(l logger.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRunner creates a batch runner with default configuration.
func NewRunner(e *engine.Engine, opts ...Option) *Runner {
	r := &Runner{
		engine:      e,
		concurrency: runtime.NumCPU(),
		logger:      logger.Named("batch"),
	}
	for _, opt := range opts {
		opt(r)
	}
	metrics.UpdateBatchConcurrency(r.concurrency)
	return r
}
