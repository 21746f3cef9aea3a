package demo

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goworkshop/internal/logger"
)

func TestRunner_RunsStepsInOrder(t *testing.T) {
	r := NewRunner(logger.Nop())

	var order []string
	err := r.Run(context.Background(),
		Step{Name: "first", Run: func(context.Context) error {
			order = append(order, "first")
			return nil
		}},
		Step{Name: "second", Run: func(context.Context) error {
			order = append(order, "second")
			return nil
		}},
	)

	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestRunner_StopsAtFirstFailure(t *testing.T) {
	r := NewRunner(logger.Nop())

	boom := errors.New("boom")
	var reached bool
	err := r.Run(context.Background(),
		Step{Name: "breaks", Run: func(context.Context) error { return boom }},
		Step{Name: "never", Run: func(context.Context) error {
			reached = true
			return nil
		}},
	)

	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), `step "breaks"`)
	assert.False(t, reached, "steps after a failure must not run")
}

func TestRunner_AttachesRunID(t *testing.T) {
	r := NewRunner(logger.Nop())

	var runID string
	err := r.Run(context.Background(),
		Step{Name: "capture", Run: func(ctx context.Context) error {
			id, ok := RunIDFromContext(ctx)
			require.True(t, ok)
			runID = id
			return nil
		}},
	)

	require.NoError(t, err)
	_, parseErr := uuid.Parse(runID)
	assert.NoError(t, parseErr, "run id must be a valid uuid")
}

func TestRunner_NilLogger(t *testing.T) {
	r := NewRunner(nil)

	err := r.Run(context.Background(), Step{Name: "noop", Run: func(context.Context) error { return nil }})

	assert.NoError(t, err)
}

func TestRunIDFromContext_Missing(t *testing.T) {
	_, ok := RunIDFromContext(context.Background())
	assert.False(t, ok)
}
