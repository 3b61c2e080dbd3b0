// Package aitime is the time resolution service consumed by agents and
// the command line. It wraps the locale engine with configuration,
// batching, caching and structured logging.
package aitime

import (
	"context"
	"time"

	"github.com/hrygo/chronoparse/plugin/datetime/model"
)

// TimeService resolves extracted time spans.
type TimeService interface {
	// Resolve resolves one span. ok is false when no resolver accepts it;
	// err is reserved for malformed input and cancellation.
	Resolve(ctx context.Context, span model.Span, reference time.Time) (res model.FinalParseResult, ok bool, err error)

	// ResolveBatch resolves spans concurrently and returns the ones that
	// resolved, in input order.
	ResolveBatch(ctx context.Context, spans []model.Span, reference time.Time) ([]model.FinalParseResult, error)

	// ParseNaturalTime reduces a span to the concrete range it denotes.
	// A span that does not resolve is a NO_MATCH error.
	ParseNaturalTime(ctx context.Context, span model.Span, reference time.Time) (TimeRange, error)
}

// TimeRange represents a time range.
type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}
