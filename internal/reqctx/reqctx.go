// Package reqctx tags a single indexing run with an id that shows up in logs and errors.
package reqctx

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type key int

const runKey key = 0

// Run identifies one resolve-fetch-classify pass
type Run struct {
	ID        string
	Input     string
	StartTime time.Time
}

// WithRun attaches a new Run for input to ctx, along with a logger carrying its id
func WithRun(ctx context.Context, input string) context.Context {
	run := &Run{
		ID:        generateID(),
		Input:     input,
		StartTime: time.Now(),
	}
	ctx = context.WithValue(ctx, runKey, run)
	logger := log.With().Str("request_id", run.ID).Logger()
	return logger.WithContext(ctx)
}

// FromContext returns the Run stored in ctx, or a placeholder
func FromContext(ctx context.Context) *Run {
	if r, ok := ctx.Value(runKey).(*Run); ok {
		return r
	}
	return &Run{
		ID:        "unknown",
		StartTime: time.Now(),
	}
}

// Logger returns the run-scoped logger from ctx
func Logger(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

func generateID() string {
	b := make([]byte, 8)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// RunError wraps an error with the run id
type RunError struct {
	RunID string
	Err   error
}

// Error implements the error interface
func (e *RunError) Error() string {
	return fmt.Sprintf("[%s] %v", e.RunID, e.Err)
}

// Unwrap returns the underlying error
func (e *RunError) Unwrap() error {
	return e.Err
}

// NewRunError wraps err with the run id from ctx
func NewRunError(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	return &RunError{
		RunID: FromContext(ctx).ID,
		Err:   err,
	}
}
