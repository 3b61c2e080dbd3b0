package timex

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Unit is a duration unit in TIMEX order, coarsest first.
type Unit string

const (
	Year        Unit = "Y"
	Month       Unit = "MON"
	Week        Unit = "W"
	Day         Unit = "D"
	BusinessDay Unit = "BD"
	Hour        Unit = "H"
	Minute      Unit = "M"
	Second      Unit = "S"
)

// unitOrder is the granularity order used to assemble compound timexes.
var unitOrder = []Unit{Year, Month, Week, BusinessDay, Day, Hour, Minute, Second}

// UnitSeconds is the seconds equivalent of each unit.
var UnitSeconds = map[Unit]float64{
	Year:        31536000,
	Month:       2592000,
	Week:        604800,
	Day:         86400,
	BusinessDay: 86400,
	Hour:        3600,
	Minute:      60,
	Second:      1,
}

// IsSubDay reports whether u belongs after the T of a duration timex.
func (u Unit) IsSubDay() bool {
	return u == Hour || u == Minute || u == Second
}

// letter is the timex letter of the unit.
func (u Unit) letter() string {
	if u == Month {
		return "M"
	}
	return string(u)
}

// DurationPart is one unit/amount pair of a duration.
type DurationPart struct {
	Unit  Unit
	Value float64
}

// FormatNumber renders v without a trailing fraction when integral.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// DurationTimex formats a single-unit duration such as P3D or PT1.5H.
func DurationTimex(value float64, unit Unit) string {
	return CompoundDurationTimex([]DurationPart{{Unit: unit, Value: value}})
}

// CompoundDurationTimex formats parts ordered by granularity, e.g. P1M3D
// or P1DT2H. Repeated units are summed.
func CompoundDurationTimex(parts []DurationPart) string {
	sums := make(map[Unit]float64, len(parts))
	for _, p := range parts {
		sums[p.Unit] += p.Value
	}
	var date, clock strings.Builder
	for _, u := range unitOrder {
		v, ok := sums[u]
		if !ok {
			continue
		}
		if u.IsSubDay() {
			clock.WriteString(FormatNumber(v) + u.letter())
		} else {
			date.WriteString(FormatNumber(v) + u.letter())
		}
	}
	out := "P" + date.String()
	if clock.Len() > 0 {
		out += "T" + clock.String()
	}
	return out
}

var durationPartPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)(BD|Y|M|W|D|H|S)`)

// ParseDurationTimex parses a duration timex into its parts in timex order.
func ParseDurationTimex(s string) ([]DurationPart, bool) {
	if !strings.HasPrefix(s, "P") || len(s) < 3 {
		return nil, false
	}
	datePart, clockPart, _ := strings.Cut(s[1:], "T")
	var parts []DurationPart
	for _, seg := range []struct {
		text  string
		clock bool
	}{{datePart, false}, {clockPart, true}} {
		consumed := 0
		for _, m := range durationPartPattern.FindAllStringSubmatchIndex(seg.text, -1) {
			if m[0] != consumed {
				return nil, false
			}
			consumed = m[1]
			v, err := strconv.ParseFloat(seg.text[m[2]:m[3]], 64)
			if err != nil {
				return nil, false
			}
			parts = append(parts, DurationPart{Unit: unitFromLetter(seg.text[m[4]:m[5]], seg.clock), Value: v})
		}
		if consumed != len(seg.text) {
			return nil, false
		}
	}
	return parts, len(parts) > 0
}

func unitFromLetter(letter string, clock bool) Unit {
	switch letter {
	case "M":
		if clock {
			return Minute
		}
		return Month
	case "BD":
		return BusinessDay
	}
	return Unit(letter)
}

// DurationSeconds sums the seconds equivalent of a duration timex.
func DurationSeconds(s string) (float64, bool) {
	parts, ok := ParseDurationTimex(s)
	if !ok {
		return 0, false
	}
	var total float64
	for _, p := range parts {
		total += p.Value * UnitSeconds[p.Unit]
	}
	return total, true
}

// HasSubDayUnit reports whether a duration timex has a clock component.
func HasSubDayUnit(s string) bool {
	return strings.Contains(s, "T")
}

// MaxBusinessDays bounds business-day walks, which visit every day.
const MaxBusinessDays = 10000

// maxCalendarDays keeps calendar steps inside the supported year range
// before they reach time.Time arithmetic.
const maxCalendarDays = 9999 * 366

// OffsetByTimex shifts start by a duration timex, forwards or backwards.
// Whole calendar units move by calendar arithmetic; fractions fall back to
// the seconds equivalent. ok is false when the result leaves years
// 1-9999 or a step cannot be represented.
func OffsetByTimex(start time.Time, duration string, forward bool) (time.Time, bool) {
	parts, ok := ParseDurationTimex(duration)
	if !ok {
		return MinDate, false
	}
	sign := 1
	if !forward {
		sign = -1
	}
	cur := start
	for _, p := range parts {
		whole, frac := math.Modf(p.Value)
		if p.Unit.IsSubDay() {
			whole, frac = 0, p.Value
		}
		if whole*UnitSeconds[p.Unit]/UnitSeconds[Day] > maxCalendarDays {
			return MinDate, false
		}
		n := sign * int(whole)
		switch p.Unit {
		case Year:
			cur = cur.AddDate(n, 0, 0)
		case Month:
			cur = cur.AddDate(0, n, 0)
		case Week:
			cur = cur.AddDate(0, 0, 7*n)
		case Day:
			cur = cur.AddDate(0, 0, n)
		case BusinessDay:
			if whole > MaxBusinessDays {
				return MinDate, false
			}
			cur, _ = AddBusinessDays(cur, n)
		}
		if frac != 0 {
			secs := frac * UnitSeconds[p.Unit]
			if secs*float64(time.Second) >= math.MaxInt64 {
				return MinDate, false
			}
			cur = cur.Add(time.Duration(float64(sign) * secs * float64(time.Second)))
		}
		if cur.Year() < 1 || cur.Year() > 9999 {
			return MinDate, false
		}
	}
	return cur, true
}
