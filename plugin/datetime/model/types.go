package model

import (
	"time"
)

// Kind is the coarse entity kind an extracted span is tagged with.
type Kind string

const (
	KindDate           Kind = "date"
	KindTime           Kind = "time"
	KindDateTime       Kind = "datetime"
	KindDatePeriod     Kind = "daterange"
	KindTimePeriod     Kind = "timerange"
	KindDateTimePeriod Kind = "datetimerange"
	KindDuration       Kind = "duration"
	KindSet            Kind = "set"
	KindHoliday        Kind = "holiday"
	KindTimeZone       Kind = "timezone"
	KindDateTimeAlt    Kind = "datetimealt"
)

// Keys of the per-side resolution maps a resolver fills.
const (
	ResDate          = "date"
	ResTime          = "time"
	ResDateTime      = "datetime"
	ResStartDate     = "startDate"
	ResEndDate       = "endDate"
	ResStartTime     = "startTime"
	ResEndTime       = "endTime"
	ResStartDateTime = "startDateTime"
	ResEndDateTime   = "endDateTime"
	ResDuration      = "duration"
	ResSet           = "set"
	ResTimeZone      = "timezone"
)

// Mod strings carried by Resolution.Mod.
const (
	ModBefore = "before"
	ModAfter  = "after"
	ModSince  = "since"
	ModUntil  = "until"
	ModApprox = "approx"
	ModStart  = "start"
	ModMid    = "mid"
	ModEnd    = "end"
	ModMore   = "more"
	ModLess   = "less"
)

// Comments a resolver may attach for the merging resolver.
const (
	CommentAmPm    = "ampm"
	CommentWeekOf  = "WeekOf"
	CommentMonthOf = "MonthOf"
)

// Metadata carries the boolean hints set by extraction.
type Metadata struct {
	HasModifier               bool
	IsHoliday                 bool
	IsDurationWithAgoOrLater  bool
	PossiblyIncludesPeriodEnd bool
}

// Attached is the opaque payload some spans carry.
type Attached struct {
	// TimeZone is a nested time-zone span inside the parent span.
	TimeZone *Span
	// Context is the span an alternative expression should borrow from.
	Context *Span
}

// Span is a tagged, offset-addressed substring produced by extraction.
type Span struct {
	Text     string
	Start    int
	Length   int
	Kind     Kind
	Metadata Metadata
	Attached *Attached
}

// Trimmed returns a copy of s narrowed to [from, to) of its text.
func (s Span) Trimmed(from, to int) Span {
	out := s
	out.Text = s.Text[from:to]
	out.Start = s.Start + from
	out.Length = to - from
	return out
}

// TimeZoneInfo is a resolved time-zone reference.
type TimeZoneInfo struct {
	Value         string
	UtcOffsetMins int
	Text          string
}

// Resolution is the working result of one resolver invocation.
type Resolution struct {
	Success     bool
	Kind        Kind
	Timex       string
	FutureValue Value
	PastValue   Value
	// FutureResolution and PastResolution are the formatted sides, keyed
	// by the Res* constants.
	FutureResolution map[string]string
	PastResolution   map[string]string
	Mod              string
	Comment          string
	SubResolutions   []Resolution
	IsLunar          bool
	TimeZone         *TimeZoneInfo
	DateList         []time.Time
	// HasRangeChangingMod records that a before/after/since/until
	// modifier was reapplied by the merging resolver.
	HasRangeChangingMod bool
}

// NoMatch is the "not this kind" result.
func NoMatch() Resolution {
	return Resolution{}
}

// IsAmbiguous reports whether the future and past readings differ.
func (r Resolution) IsAmbiguous() bool {
	return !r.FutureValue.Equal(r.PastValue)
}

// DateContext carries an implied year between the clauses of a composite
// period such as "March to May 2020". Year 0 means no context.
type DateContext struct {
	Year int
}

// IsEmpty reports whether the context carries nothing.
func (c DateContext) IsEmpty() bool {
	return c.Year == 0
}

// FinalParseResult is the output of the merging resolver for one span.
type FinalParseResult struct {
	Text         string
	Start        int
	Length       int
	ResolvedKind Kind
	Timex        string
	Value        Resolution
	Dictionary   ValueSet
}
