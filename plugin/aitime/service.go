package aitime

import (
	"context"
	"log/slog"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	reserrors "github.com/hrygo/chronoparse/internal/errors"
	"github.com/hrygo/chronoparse/internal/observability"
	"github.com/hrygo/chronoparse/internal/profile"
	"github.com/hrygo/chronoparse/plugin/datetime/locale"
	"github.com/hrygo/chronoparse/plugin/datetime/locale/english"
	"github.com/hrygo/chronoparse/plugin/datetime/model"
	"github.com/hrygo/chronoparse/plugin/datetime/parser"
	"github.com/hrygo/chronoparse/plugin/datetime/rrule"
	"github.com/hrygo/chronoparse/plugin/datetime/timex"
	"github.com/hrygo/chronoparse/plugin/datetime/timezone"
)

// Locales maps a locale name to its configuration constructor.
var Locales = map[string]func(locale.Options) *locale.Config{
	english.Name: english.New,
}

// defaultPointLength is the length given to a resolved point in time when
// a caller needs a range.
const defaultPointLength = time.Hour

type cacheKey struct {
	text     string
	start    int
	length   int
	kind     model.Kind
	metadata model.Metadata
	ref      int64
}

// Service implements TimeService on top of a locale engine. Results may be
// served from a shared cache and must be treated as read-only.
type Service struct {
	engine      *parser.Engine
	location    *time.Location
	parallelism int
	logger      *slog.Logger
	metrics     *observability.Metrics
	cache       *lru.Cache[cacheKey, model.FinalParseResult]
}

// NewService builds the service described by p.
func NewService(p *profile.Profile, logger *slog.Logger) (*Service, error) {
	if p == nil {
		return nil, reserrors.InvalidArgument("profile is required")
	}
	if err := p.Validate(); err != nil {
		return nil, reserrors.Wrap(err, reserrors.ErrCodeInvalidArgument, "invalid profile")
	}
	build, ok := Locales[p.Locale]
	if !ok {
		return nil, reserrors.InvalidArgument("unsupported locale " + p.Locale)
	}
	loc, err := timezone.ParseTimezone(p.DefaultTimezone)
	if err != nil {
		return nil, reserrors.Wrap(err, reserrors.ErrCodeInvalidArgument, "invalid default timezone")
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &Service{
		location:    loc,
		parallelism: p.Parallelism,
		logger:      logger,
		metrics:     observability.NewMetrics(),
	}
	if p.CacheSize > 0 {
		s.cache, err = lru.New[cacheKey, model.FinalParseResult](p.CacheSize)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create resolution cache")
		}
	}

	cfg := build(locale.Options{
		SplitDateAndTime: p.SplitDateAndTime,
		StrictContracts:  p.StrictContracts,
		CenturyPivot:     timex.CenturyPivot{FutureMax: p.CenturyFutureMax, PastMin: p.CenturyPastMin},
	})
	s.engine = parser.New(cfg, parser.WithViolationHook(s.onViolation))
	return s, nil
}

func (s *Service) onViolation(kind model.Kind, detail string) {
	s.metrics.RecordViolation()
	s.logger.LogAttrs(context.Background(), slog.LevelError, "resolver produced an inconsistent result",
		slog.String(observability.LogFieldKind, string(kind)),
		slog.String(observability.LogFieldErrorCode, string(reserrors.ErrCodeInvariantViolation)),
		slog.String("detail", detail),
	)
}

// Metrics returns a snapshot of the resolution counters.
func (s *Service) Metrics() *observability.MetricsSnapshot {
	return s.metrics.Snapshot()
}

// Locale returns the locale the service resolves in.
func (s *Service) Locale() string {
	return s.engine.Locale()
}

// Resolve implements TimeService.
func (s *Service) Resolve(ctx context.Context, span model.Span, reference time.Time) (model.FinalParseResult, bool, error) {
	if err := ctx.Err(); err != nil {
		return model.FinalParseResult{}, false, reserrors.ContextCanceled(err)
	}
	res, ok, err := s.resolve(span, s.reference(reference))
	if rc, found := observability.FromContext(ctx); found && err == nil {
		rc.Debug("span resolved",
			slog.String(observability.LogFieldLocale, s.Locale()),
			slog.String(observability.LogFieldText, span.Text),
			slog.String(observability.LogFieldKind, string(res.ResolvedKind)),
			slog.Bool(observability.LogFieldResolved, ok))
	}
	return res, ok, err
}

func (s *Service) reference(ref time.Time) time.Time {
	if ref.IsZero() {
		ref = time.Now()
	}
	return ref.In(s.location)
}

func (s *Service) resolve(span model.Span, ref time.Time) (model.FinalParseResult, bool, error) {
	if strings.TrimSpace(span.Text) == "" {
		return model.FinalParseResult{}, false, reserrors.MalformedInput("span text is empty")
	}
	if _, ok := s.engine.Resolver(span.Kind); !ok {
		return model.FinalParseResult{}, false, reserrors.MalformedInput("unknown span kind " + string(span.Kind))
	}

	// Attached spans carry pointers; they are not part of the key.
	cacheable := s.cache != nil && span.Attached == nil
	key := cacheKey{
		text:     span.Text,
		start:    span.Start,
		length:   span.Length,
		kind:     span.Kind,
		metadata: span.Metadata,
		ref:      ref.UnixNano(),
	}
	if cacheable {
		if res, ok := s.cache.Get(key); ok {
			s.metrics.RecordCacheHit()
			return res, true, nil
		}
	}

	start := time.Now()
	res, ok := s.engine.Resolve(span, ref)
	s.metrics.RecordResolve(string(span.Kind), ok, time.Since(start))
	if ok && cacheable {
		s.cache.Add(key, res)
	}
	return res, ok, nil
}

// ResolveBatch implements TimeService. Spans that do not resolve, or are
// malformed, are dropped; cancellation aborts the whole batch.
func (s *Service) ResolveBatch(ctx context.Context, spans []model.Span, reference time.Time) ([]model.FinalParseResult, error) {
	rc := observability.NewRequestContext(s.logger, "resolve_batch")
	ref := s.reference(reference)

	results := make([]*model.FinalParseResult, len(spans))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.parallelism)
	for i, span := range spans {
		i, span := i, span
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, ok, err := s.resolve(span, ref)
			switch {
			case err != nil:
				rc.Debug("dropped malformed span",
					slog.String(observability.LogFieldText, span.Text),
					slog.String(observability.LogFieldErrorCode, string(reserrors.CodeOf(err, reserrors.ErrCodeMalformedInput))))
			case !ok:
				rc.Debug("dropped unresolved span",
					slog.String(observability.LogFieldText, span.Text),
					slog.String(observability.LogFieldKind, string(span.Kind)))
			default:
				results[i] = &res
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		rc.Warn("batch canceled", slog.Int(observability.LogFieldSpans, len(spans)))
		return nil, reserrors.ContextCanceled(err)
	}
	if err := ctx.Err(); err != nil {
		return nil, reserrors.ContextCanceled(err)
	}

	out := make([]model.FinalParseResult, 0, len(spans))
	for _, r := range results {
		if r != nil {
			out = append(out, *r)
		}
	}
	rc.Info("batch resolved",
		slog.Int(observability.LogFieldSpans, len(spans)),
		slog.Int(observability.LogFieldResolved, len(out)),
		slog.Int64(observability.LogFieldDuration, rc.DurationMs()),
	)
	return out, nil
}

// ParseNaturalTime implements TimeService.
func (s *Service) ParseNaturalTime(ctx context.Context, span model.Span, reference time.Time) (TimeRange, error) {
	ref := s.reference(reference)
	res, ok, err := s.Resolve(ctx, span, ref)
	if err != nil {
		return TimeRange{}, err
	}
	if !ok {
		return TimeRange{}, reserrors.NoMatch(span.Text)
	}
	return rangeOf(res, ref)
}

// rangeOf reduces a result to a concrete range. Alternatives use their
// first reading; open modifiers leave one bound zero.
func rangeOf(res model.FinalParseResult, ref time.Time) (TimeRange, error) {
	v := res.Value
	if v.Kind == model.KindDateTimeAlt && len(v.SubResolutions) > 0 {
		v = v.SubResolutions[0]
	}

	var tr TimeRange
	switch fv := v.FutureValue; fv.Kind() {
	case model.ValueRange:
		start, end, _ := fv.Range()
		tr.Start = wallIn(start, ref.Location())
		if timex.IsValid(end) {
			tr.End = wallIn(end, ref.Location())
		}
	case model.ValueInstant:
		t, _ := fv.Instant()
		tr.Start = wallIn(t, ref.Location())
		if v.Kind == model.KindDate || v.Kind == model.KindHoliday {
			tr.End = tr.Start.AddDate(0, 0, 1)
		} else {
			tr.End = tr.Start.Add(defaultPointLength)
		}
	case model.ValueScalar:
		seconds, _ := fv.Scalar()
		tr.Start = ref
		tr.End = ref.Add(time.Duration(seconds * float64(time.Second)))
	case model.ValueText:
		next, err := rrule.Next(v.Timex, ref)
		if err != nil {
			return TimeRange{}, reserrors.Wrap(err, reserrors.ErrCodeMalformedInput, "set has no next occurrence")
		}
		tr.Start, tr.End = next, next.Add(defaultPointLength)
	default:
		return TimeRange{}, reserrors.MalformedInput("resolution has no value")
	}

	switch {
	case strings.Contains(v.Mod, model.ModBefore), strings.Contains(v.Mod, model.ModUntil):
		tr.Start, tr.End = time.Time{}, tr.Start
	case strings.Contains(v.Mod, model.ModAfter):
		tr.Start, tr.End = tr.End, time.Time{}
	case strings.Contains(v.Mod, model.ModSince):
		tr.End = time.Time{}
	}
	return tr, nil
}

// wallIn reads the wall clock of a resolved value in loc.
func wallIn(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
}

// Occurrences expands a resolved set into its next n occurrences at or
// after from.
func (s *Service) Occurrences(res model.FinalParseResult, from time.Time, n int) ([]time.Time, error) {
	if n <= 0 {
		return nil, reserrors.InvalidArgument("occurrence count must be positive")
	}
	if res.ResolvedKind != model.KindSet {
		return nil, reserrors.InvalidArgument("only sets have occurrences, got " + string(res.ResolvedKind))
	}
	rule, err := rrule.FromTimex(res.Timex)
	if err != nil {
		return nil, reserrors.Wrap(err, reserrors.ErrCodeMalformedInput, "set cannot be expanded")
	}
	return rrule.NewGenerator(rule, s.reference(from)).All(n), nil
}

var _ TimeService = (*Service)(nil)
