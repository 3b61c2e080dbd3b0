// Package parser resolves tagged temporal spans into calendar values.
//
// There is one resolver per entity kind. Each runs an ordered cascade of
// strategies and reports "not this kind" as an unsuccessful resolution.
// The merging resolver strips modifiers, dispatches by kind and renders
// the final resolution dictionary.
package parser

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hrygo/chronoparse/plugin/datetime/model"
	"github.com/hrygo/chronoparse/plugin/datetime/timex"
)

// Resolver resolves the text of one span against a reference moment.
type Resolver interface {
	Resolve(text string, ref time.Time) model.Resolution
}

// ViolationHook observes internal invariant violations.
type ViolationHook func(kind model.Kind, detail string)

// strategy is one step of a resolver cascade.
type strategy func(text string, ref time.Time) model.Resolution

// firstMatch runs strategies in order and returns the first success.
func firstMatch(text string, ref time.Time, strategies ...strategy) model.Resolution {
	for _, s := range strategies {
		if res := s(text, ref); res.Success {
			return res
		}
	}
	return model.NoMatch()
}

// contracts checks the shape of every successful resolution.
type contracts struct {
	strict bool
	hook   ViolationHook
}

func (c *contracts) violation(kind model.Kind, detail string) model.Resolution {
	if c.hook != nil {
		c.hook(kind, detail)
	}
	if c.strict {
		panic(fmt.Sprintf("chronoparse: %s: %s", kind, detail))
	}
	return model.NoMatch()
}

// finish validates res for kind and fills its per-side resolution maps.
func (c *contracts) finish(kind model.Kind, res model.Resolution) model.Resolution {
	if !res.Success {
		return model.NoMatch()
	}
	res.Kind = kind
	if want, ok := valueKindOf(kind); ok {
		if res.FutureValue.Kind() != want || res.PastValue.Kind() != want {
			return c.violation(kind, fmt.Sprintf("want %s values, got %s/%s", want, res.FutureValue.Kind(), res.PastValue.Kind()))
		}
	}
	res.FutureResolution = sideResolution(kind, res.FutureValue, res.Timex)
	res.PastResolution = sideResolution(kind, res.PastValue, res.Timex)
	return res
}

func valueKindOf(kind model.Kind) (model.ValueKind, bool) {
	switch kind {
	case model.KindDate, model.KindTime, model.KindDateTime, model.KindHoliday:
		return model.ValueInstant, true
	case model.KindDatePeriod, model.KindTimePeriod, model.KindDateTimePeriod:
		return model.ValueRange, true
	case model.KindDuration, model.KindTimeZone:
		return model.ValueScalar, true
	case model.KindSet:
		return model.ValueText, true
	}
	return model.ValueNone, false
}

func sideResolution(kind model.Kind, v model.Value, tx string) map[string]string {
	out := make(map[string]string, 2)
	switch kind {
	case model.KindDate, model.KindHoliday:
		if t, ok := v.Instant(); ok && timex.IsValid(t) {
			out[model.ResDate] = t.Format(timex.DateLayout)
		}
	case model.KindTime:
		if t, ok := v.Instant(); ok {
			out[model.ResTime] = t.Format(timex.TimeLayout)
		}
	case model.KindDateTime:
		if t, ok := v.Instant(); ok && timex.IsValid(t) {
			out[model.ResDateTime] = t.Format(timex.DateTimeLayout)
		}
	case model.KindDatePeriod:
		addRange(out, v, model.ResStartDate, model.ResEndDate, timex.DateLayout)
	case model.KindTimePeriod:
		addRange(out, v, model.ResStartTime, model.ResEndTime, timex.TimeLayout)
	case model.KindDateTimePeriod:
		addRange(out, v, model.ResStartDateTime, model.ResEndDateTime, timex.DateTimeLayout)
	case model.KindDuration:
		if s, ok := v.Scalar(); ok {
			out[model.ResDuration] = timex.FormatNumber(s)
		}
	case model.KindSet:
		out[model.ResSet] = tx
	case model.KindTimeZone:
		out[model.ResTimeZone] = tx
	}
	return out
}

func addRange(out map[string]string, v model.Value, startKey, endKey, layout string) {
	start, end, ok := v.Range()
	if !ok {
		return
	}
	if timex.IsValid(start) {
		out[startKey] = start.Format(layout)
	}
	if timex.IsValid(end) {
		out[endKey] = end.Format(layout)
	}
}

// normalize lower-cases text and collapses its whitespace.
func normalize(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// pointResolution builds a point result from its two readings.
func pointResolution(tx string, future, past time.Time) model.Resolution {
	if !timex.IsValid(future) || !timex.IsValid(past) {
		return model.NoMatch()
	}
	return model.Resolution{
		Success:     true,
		Timex:       tx,
		FutureValue: model.Instant(future),
		PastValue:   model.Instant(past),
	}
}

// rangeResolution builds an interval result with identical readings.
func rangeResolution(tx string, start, end time.Time) model.Resolution {
	return dualRangeResolution(tx, start, end, start, end)
}

// dualRangeResolution builds an interval result from both readings.
func dualRangeResolution(tx string, futureStart, futureEnd, pastStart, pastEnd time.Time) model.Resolution {
	if !timex.IsValid(futureStart) || !timex.IsValid(pastStart) {
		return model.NoMatch()
	}
	return model.Resolution{
		Success:     true,
		Timex:       tx,
		FutureValue: model.Range(futureStart, futureEnd),
		PastValue:   model.Range(pastStart, pastEnd),
	}
}

// atoi parses a matched digit group; callers only pass digits.
func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return -1
	}
	return n
}

// clock splits the time of day of t.
func clock(t time.Time) (hour, minute, second int) {
	return t.Hour(), t.Minute(), t.Second()
}

// sinceMidnight is the offset of t from the start of its day.
func sinceMidnight(t time.Time) time.Duration {
	return t.Sub(timex.DateOf(t))
}

// clockDuration renders a sub-day span as PT1H30M.
func clockDuration(d time.Duration) string {
	if d <= 0 {
		return "PT0S"
	}
	var parts []timex.DurationPart
	hours := int(d / time.Hour)
	minutes := int((d % time.Hour) / time.Minute)
	seconds := int((d % time.Minute) / time.Second)
	if hours > 0 {
		parts = append(parts, timex.DurationPart{Unit: timex.Hour, Value: float64(hours)})
	}
	if minutes > 0 {
		parts = append(parts, timex.DurationPart{Unit: timex.Minute, Value: float64(minutes)})
	}
	if seconds > 0 {
		parts = append(parts, timex.DurationPart{Unit: timex.Second, Value: float64(seconds)})
	}
	return timex.CompoundDurationTimex(parts)
}

// splits returns every way of cutting text into two non-empty word runs.
func splits(text string) [][2]string {
	words := strings.Fields(text)
	out := make([][2]string, 0, len(words))
	for i := 1; i < len(words); i++ {
		out = append(out, [2]string{strings.Join(words[:i], " "), strings.Join(words[i:], " ")})
	}
	return out
}
