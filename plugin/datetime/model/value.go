// Package model holds the data types exchanged between the extraction
// collaborator, the per-kind resolvers and the merging resolver.
package model

import (
	"fmt"
	"time"
)

// ValueKind tags the variant held by a Value.
type ValueKind int

const (
	ValueNone ValueKind = iota
	ValueInstant
	ValueRange
	ValueScalar
	ValueText
)

func (k ValueKind) String() string {
	switch k {
	case ValueInstant:
		return "instant"
	case ValueRange:
		return "range"
	case ValueScalar:
		return "scalar"
	case ValueText:
		return "text"
	}
	return "none"
}

// Value is the resolved value of one side (future or past) of a Resolution.
type Value struct {
	kind   ValueKind
	start  time.Time
	end    time.Time
	scalar float64
	text   string
}

// Instant builds a point-in-time value.
func Instant(t time.Time) Value {
	return Value{kind: ValueInstant, start: t}
}

// Range builds an interval value.
func Range(start, end time.Time) Value {
	return Value{kind: ValueRange, start: start, end: end}
}

// Scalar builds a numeric value, used for durations in seconds.
func Scalar(v float64) Value {
	return Value{kind: ValueScalar, scalar: v}
}

// Text builds a textual value, used for sets.
func Text(s string) Value {
	return Value{kind: ValueText, text: s}
}

// Kind returns the variant tag.
func (v Value) Kind() ValueKind {
	return v.kind
}

// IsNone reports whether the value is unset.
func (v Value) IsNone() bool {
	return v.kind == ValueNone
}

// Instant returns the point in time of an Instant value.
func (v Value) Instant() (time.Time, bool) {
	return v.start, v.kind == ValueInstant
}

// Range returns the bounds of a Range value.
func (v Value) Range() (time.Time, time.Time, bool) {
	return v.start, v.end, v.kind == ValueRange
}

// Scalar returns the number held by a Scalar value.
func (v Value) Scalar() (float64, bool) {
	return v.scalar, v.kind == ValueScalar
}

// Text returns the string held by a Text value.
func (v Value) Text() (string, bool) {
	return v.text, v.kind == ValueText
}

// Start returns the instant or the range start, whichever the value holds.
func (v Value) Start() (time.Time, bool) {
	return v.start, v.kind == ValueInstant || v.kind == ValueRange
}

// Equal compares two values variant-wise.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case ValueInstant:
		return v.start.Equal(o.start)
	case ValueRange:
		return v.start.Equal(o.start) && v.end.Equal(o.end)
	case ValueScalar:
		return v.scalar == o.scalar
	case ValueText:
		return v.text == o.text
	}
	return true
}

func (v Value) String() string {
	switch v.kind {
	case ValueInstant:
		return v.start.Format("2006-01-02 15:04:05")
	case ValueRange:
		return fmt.Sprintf("[%s, %s)", v.start.Format("2006-01-02 15:04:05"), v.end.Format("2006-01-02 15:04:05"))
	case ValueScalar:
		return fmt.Sprintf("%g", v.scalar)
	case ValueText:
		return v.text
	}
	return "<none>"
}
