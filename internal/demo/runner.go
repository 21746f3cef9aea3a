// Package demo executes the demonstration sequence of a workshop command.
// Each command declares its steps in order; the runner stamps the whole run
// with a uuid, logs step progress and stops at the first failure.
package demo

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"goworkshop/internal/logger"
)

// Step is one named unit of a demonstration sequence.
// Run receives a context carrying the run-scoped logger and run id.
type Step struct {
	Name string
	Run  func(ctx context.Context) error
}

// Runner executes steps sequentially. Steps run on the caller's goroutine;
// there is no parallelism and no retry.
type Runner struct {
	log *logger.Logger
}

// NewRunner constructs a Runner. A nil logger falls back to a no-op one.
func NewRunner(log *logger.Logger) *Runner {
	if log == nil {
		log = logger.Nop()
	}

	return &Runner{log: log}
}

// Run executes the steps in order. Every invocation gets a fresh run id,
// attached both to the log entries and to the context handed to each step.
// The first failing step aborts the sequence and its error is returned
// wrapped with the step name.
func (r *Runner) Run(ctx context.Context, steps ...Step) error {
	runID := newRunID()
	log := &logger.Logger{Logger: r.log.With().Str("run_id", runID).Logger()}

	ctx = context.WithValue(ctx, RunIDCtxKey, runID)
	ctx = log.WithContext(ctx)

	for _, step := range steps {
		log.Debug().Str("step", step.Name).Msg("step started")

		if err := step.Run(ctx); err != nil {
			log.Error().Err(err).Str("step", step.Name).Msg("step failed")
			return fmt.Errorf("step %q: %w", step.Name, err)
		}

		log.Debug().Str("step", step.Name).Msg("step finished")
	}

	return nil
}

// newRunID prefers time-ordered UUIDv7 values and falls back to v4 when v7
// generation fails.
func newRunID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
