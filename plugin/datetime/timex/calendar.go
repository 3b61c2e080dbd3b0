// Package timex provides the calendar arithmetic and TIMEX helpers shared
// by the date-time resolvers. Every function here is pure.
package timex

import (
	"time"
)

// MinDate is the sentinel returned when a calendar value cannot be built.
var MinDate = time.Time{}

// IsValid reports whether t is a real calendar value rather than MinDate.
func IsValid(t time.Time) bool {
	return !t.IsZero()
}

// Wall returns the wall clock reading of t re-expressed in UTC.
// Resolvers compute on wall clocks so the location of the reference moment
// never leaks into day arithmetic.
func Wall(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
}

// IsLeapYear reports whether year has a February 29.
func IsLeapYear(year int) bool {
	if year%4 != 0 {
		return false
	}
	if year%100 != 0 {
		return true
	}
	return year%400 == 0
}

// DaysInMonth returns the number of days of month in year, or 0 for an
// invalid month.
func DaysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	}
	return 0
}

// SafeDate builds midnight of year-month-day. Out of range components never
// panic and never roll over into the next month; they yield MinDate.
func SafeDate(year, month, day int) time.Time {
	if year < 1 || year > 9999 || month < 1 || month > 12 {
		return MinDate
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return MinDate
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// SafeDateTime is SafeDate with a time of day. Hours run 0-23.
func SafeDateTime(year, month, day, hour, minute, second int) time.Time {
	d := SafeDate(year, month, day)
	if !IsValid(d) {
		return MinDate
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return MinDate
	}
	return d.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute + time.Duration(second)*time.Second)
}

// DateOf truncates t to midnight.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// At sets the time of day of the calendar date d.
func At(d time.Time, hour, minute, second int) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, second, 0, d.Location())
}

// ISOWeekday returns 1 for Monday through 7 for Sunday.
func ISOWeekday(wd time.Weekday) int {
	if wd == time.Sunday {
		return 7
	}
	return int(wd)
}

// ThisWeekday returns the day of the Monday-based week containing ref that
// falls on wd.
func ThisWeekday(ref time.Time, wd time.Weekday) time.Time {
	return DateOf(ref).AddDate(0, 0, ISOWeekday(wd)-ISOWeekday(ref.Weekday()))
}

// NextWeekday returns the first wd strictly after ref.
func NextWeekday(ref time.Time, wd time.Weekday) time.Time {
	diff := (int(wd) - int(ref.Weekday()) + 7) % 7
	if diff == 0 {
		diff = 7
	}
	return DateOf(ref).AddDate(0, 0, diff)
}

// LastWeekday returns the most recent wd strictly before ref.
func LastWeekday(ref time.Time, wd time.Weekday) time.Time {
	diff := (int(ref.Weekday()) - int(wd) + 7) % 7
	if diff == 0 {
		diff = 7
	}
	return DateOf(ref).AddDate(0, 0, -diff)
}

// MondayOf returns the Monday starting the week that contains t.
func MondayOf(t time.Time) time.Time {
	return ThisWeekday(t, time.Monday)
}

// NthWeekdayOf returns the n-th wd of the month, or MinDate when the month
// has fewer than n of them.
func NthWeekdayOf(year, month int, wd time.Weekday, n int) time.Time {
	first := SafeDate(year, month, 1)
	if !IsValid(first) || n < 1 {
		return MinDate
	}
	diff := (int(wd) - int(first.Weekday()) + 7) % 7
	d := first.AddDate(0, 0, diff+7*(n-1))
	if int(d.Month()) != month {
		return MinDate
	}
	return d
}

// LastWeekdayOf returns the last wd of the month.
func LastWeekdayOf(year, month int, wd time.Weekday) time.Time {
	last := SafeDate(year, month, DaysInMonth(year, month))
	if !IsValid(last) {
		return MinDate
	}
	diff := (int(last.Weekday()) - int(wd) + 7) % 7
	return last.AddDate(0, 0, -diff)
}

// WeekOfMonthMonday returns the Monday of week n of the month. Week 1 is
// the week containing the month's first Thursday.
func WeekOfMonthMonday(year, month, n int) time.Time {
	firstThursday := NthWeekdayOf(year, month, time.Thursday, 1)
	if !IsValid(firstThursday) || n < 1 {
		return MinDate
	}
	monday := firstThursday.AddDate(0, 0, 7*(n-1)-3)
	if int(monday.AddDate(0, 0, 3).Month()) != month {
		return MinDate
	}
	return monday
}

// LastWeekOfMonthMonday returns the Monday of the week containing the
// month's last Thursday.
func LastWeekOfMonthMonday(year, month int) time.Time {
	lastThursday := LastWeekdayOf(year, month, time.Thursday)
	if !IsValid(lastThursday) {
		return MinDate
	}
	return lastThursday.AddDate(0, 0, -3)
}

// WeekOfMonthIndex is the inverse of WeekOfMonthMonday for a Monday.
func WeekOfMonthIndex(monday time.Time) int {
	thursday := monday.AddDate(0, 0, 3)
	return (thursday.Day()-1)/7 + 1
}

// WeekOfYearMonday returns the Monday of ISO week n of year.
func WeekOfYearMonday(year, n int) time.Time {
	jan4 := SafeDate(year, 1, 4)
	if !IsValid(jan4) || n < 1 {
		return MinDate
	}
	monday := MondayOf(jan4).AddDate(0, 0, 7*(n-1))
	if y, _ := monday.ISOWeek(); y != year {
		return MinDate
	}
	return monday
}

// LastWeekOfYearMonday returns the Monday of the last ISO week of year.
func LastWeekOfYearMonday(year int) time.Time {
	dec28 := SafeDate(year, 12, 28)
	if !IsValid(dec28) {
		return MinDate
	}
	return MondayOf(dec28)
}

// IsBusinessDay reports whether t falls Monday through Friday.
func IsBusinessDay(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// AddBusinessDays walks n business days away from start, start excluded.
// A negative n walks backwards. It returns the last day reached and every
// business day visited in walking order.
func AddBusinessDays(start time.Time, n int) (time.Time, []time.Time) {
	step := 1
	if n < 0 {
		step = -1
		n = -n
	}
	days := make([]time.Time, 0, n)
	cur := start
	for len(days) < n {
		cur = cur.AddDate(0, 0, step)
		if IsBusinessDay(cur) {
			days = append(days, cur)
		}
	}
	return cur, days
}

// CenturyPivot holds the two-digit year thresholds. Years below FutureMax
// belong to the 2000s, years at or above PastMin to the 1900s, and the
// band between them is ambiguous.
type CenturyPivot struct {
	FutureMax int
	PastMin   int
}

// DefaultCenturyPivot matches the fixtures of the reference locale.
var DefaultCenturyPivot = CenturyPivot{FutureMax: 30, PastMin: 40}

// Expand maps a two-digit year to its future and past readings.
// ambiguous is set when both centuries are plausible.
func (p CenturyPivot) Expand(twoDigit int) (future, past int, ambiguous bool) {
	switch {
	case twoDigit < p.FutureMax:
		return 2000 + twoDigit, 2000 + twoDigit, false
	case twoDigit >= p.PastMin:
		return 1900 + twoDigit, 1900 + twoDigit, false
	default:
		return 2000 + twoDigit, 1900 + twoDigit, true
	}
}
