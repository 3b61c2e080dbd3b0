package parser

import (
	"time"

	"github.com/hrygo/chronoparse/plugin/datetime/locale"
	"github.com/hrygo/chronoparse/plugin/datetime/model"
)

// Engine wires the resolvers of one locale together. It is immutable
// after New and safe for concurrent use.
type Engine struct {
	cfg       *locale.Config
	merged    *MergedResolver
	resolvers map[model.Kind]Resolver
}

// Option configures an Engine.
type Option func(*contracts)

// WithViolationHook reports internal invariant violations to hook.
func WithViolationHook(hook ViolationHook) Option {
	return func(c *contracts) {
		c.hook = hook
	}
}

// New builds an engine for cfg.
func New(cfg *locale.Config, opts ...Option) *Engine {
	c := &contracts{strict: cfg.Options.StrictContracts}
	for _, opt := range opts {
		opt(c)
	}

	duration := &DurationResolver{cfg: cfg.Duration, contracts: c}
	holiday := &HolidayResolver{cfg: cfg.Holiday, contracts: c}
	date := &DateResolver{cfg: cfg.Date, duration: duration, holiday: holiday, contracts: c}
	clock := &TimeResolver{cfg: cfg.Time, contracts: c}
	timePeriod := &TimePeriodResolver{cfg: cfg.TimePeriod, time: clock, contracts: c}
	dateTime := &DateTimeResolver{cfg: cfg.DateTime, date: date, time: clock, duration: duration, contracts: c}
	datePeriod := &DatePeriodResolver{cfg: cfg.DatePeriod, date: date, duration: duration, contracts: c}
	dateTimePeriod := &DateTimePeriodResolver{
		cfg:        cfg.DateTimePeriod,
		date:       date,
		time:       clock,
		timePeriod: timePeriod,
		dateTime:   dateTime,
		duration:   duration,
		contracts:  c,
	}
	set := &SetResolver{
		cfg:            cfg.Set,
		duration:       duration,
		date:           date,
		time:           clock,
		timePeriod:     timePeriod,
		dateTime:       dateTime,
		dateTimePeriod: dateTimePeriod,
		contracts:      c,
	}
	timeZone := &TimeZoneResolver{cfg: cfg.TimeZone, contracts: c}
	alt := &DateTimeAltResolver{
		cfg:            cfg.DateTimeAlt,
		date:           date,
		time:           clock,
		dateTime:       dateTime,
		datePeriod:     datePeriod,
		timePeriod:     timePeriod,
		dateTimePeriod: dateTimePeriod,
		contracts:      c,
	}

	resolvers := map[model.Kind]Resolver{
		model.KindDate:           date,
		model.KindTime:           clock,
		model.KindDateTime:       dateTime,
		model.KindDatePeriod:     datePeriod,
		model.KindTimePeriod:     timePeriod,
		model.KindDateTimePeriod: dateTimePeriod,
		model.KindDuration:       duration,
		model.KindSet:            set,
		model.KindHoliday:        holiday,
		model.KindTimeZone:       timeZone,
		model.KindDateTimeAlt:    alt,
	}

	return &Engine{
		cfg: cfg,
		merged: &MergedResolver{
			cfg:       cfg.Merged,
			opts:      cfg.Options,
			resolvers: resolvers,
			holiday:   holiday,
			timeZone:  timeZone,
			alt:       alt,
		},
		resolvers: resolvers,
	}
}

// Resolve runs the merging resolver on span.
func (e *Engine) Resolve(span model.Span, ref time.Time) (model.FinalParseResult, bool) {
	return e.merged.Resolve(span, ref)
}

// Resolver returns the resolver of one kind.
func (e *Engine) Resolver(kind model.Kind) (Resolver, bool) {
	r, ok := e.resolvers[kind]
	return r, ok
}

// Locale returns the name of the locale the engine was built for.
func (e *Engine) Locale() string {
	return e.cfg.Name
}
