package aitime

import (
	"context"
	"sync"
	"time"

	reserrors "github.com/hrygo/chronoparse/internal/errors"
	"github.com/hrygo/chronoparse/plugin/datetime/model"
)

// MockTimeService is a mock implementation of TimeService for testing.
// Results are canned per span text; unknown spans do not resolve.
type MockTimeService struct {
	// FixedNow replaces a zero reference when set.
	FixedNow *time.Time

	mu      sync.Mutex
	results map[string]model.FinalParseResult
	ranges  map[string]TimeRange
	calls   []string
}

// NewMockTimeService creates a new MockTimeService.
func NewMockTimeService() *MockTimeService {
	return &MockTimeService{
		results: make(map[string]model.FinalParseResult),
		ranges:  make(map[string]TimeRange),
	}
}

// SetResult makes spans with the given text resolve to res.
func (m *MockTimeService) SetResult(text string, res model.FinalParseResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results[text] = res
}

// SetRange makes ParseNaturalTime return tr for the given text.
func (m *MockTimeService) SetRange(text string, tr TimeRange) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ranges[text] = tr
}

// Calls returns the span texts seen so far, in call order.
func (m *MockTimeService) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// Resolve returns the canned result for the span text.
func (m *MockTimeService) Resolve(ctx context.Context, span model.Span, reference time.Time) (model.FinalParseResult, bool, error) {
	if err := ctx.Err(); err != nil {
		return model.FinalParseResult{}, false, reserrors.ContextCanceled(err)
	}
	if span.Text == "" {
		return model.FinalParseResult{}, false, reserrors.MalformedInput("span text is empty")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, span.Text)
	res, ok := m.results[span.Text]
	return res, ok, nil
}

// ResolveBatch resolves spans sequentially.
func (m *MockTimeService) ResolveBatch(ctx context.Context, spans []model.Span, reference time.Time) ([]model.FinalParseResult, error) {
	var out []model.FinalParseResult
	for _, span := range spans {
		res, ok, err := m.Resolve(ctx, span, reference)
		if reserrors.IsCode(err, reserrors.ErrCodeContextCanceled) {
			return nil, err
		}
		if err == nil && ok {
			out = append(out, res)
		}
	}
	return out, nil
}

// ParseNaturalTime returns the canned range for the span text.
func (m *MockTimeService) ParseNaturalTime(ctx context.Context, span model.Span, reference time.Time) (TimeRange, error) {
	if err := ctx.Err(); err != nil {
		return TimeRange{}, reserrors.ContextCanceled(err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, span.Text)
	if tr, ok := m.ranges[span.Text]; ok {
		return tr, nil
	}
	if res, ok := m.results[span.Text]; ok {
		return rangeOf(res, m.now(reference))
	}
	return TimeRange{}, reserrors.NoMatch(span.Text)
}

func (m *MockTimeService) now(reference time.Time) time.Time {
	if !reference.IsZero() {
		return reference
	}
	if m.FixedNow != nil {
		return *m.FixedNow
	}
	return time.Now()
}

var _ TimeService = (*MockTimeService)(nil)
