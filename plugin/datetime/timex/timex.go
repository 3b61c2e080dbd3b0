package timex

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Reference timexes for "now", and for unbounded future and past ends.
const (
	PresentRef = "PRESENT_REF"
	FutureRef  = "FUTURE_REF"
	PastRef    = "PAST_REF"
)

// Time-of-day band timexes.
const (
	Morning       = "TMO"
	Afternoon     = "TAF"
	Evening       = "TEV"
	Night         = "TNI"
	Daytime       = "TDT"
	BusinessHours = "TBH"
)

// Date, time and date-time formats of resolution values.
const (
	DateLayout     = "2006-01-02"
	TimeLayout     = "15:04:05"
	DateTimeLayout = "2006-01-02 15:04:05"
)

// DateParts is a possibly partial calendar date. Zero fields are
// unspecified and render as X wildcards.
type DateParts struct {
	Year  int
	Month int
	Day   int
}

// String renders the parts as a date timex such as XXXX-05-15.
func (p DateParts) String() string {
	var b strings.Builder
	if p.Year > 0 {
		fmt.Fprintf(&b, "%04d", p.Year)
	} else {
		b.WriteString("XXXX")
	}
	if p.Month > 0 {
		fmt.Fprintf(&b, "-%02d", p.Month)
	} else {
		b.WriteString("-XX")
	}
	if p.Day > 0 {
		fmt.Fprintf(&b, "-%02d", p.Day)
	} else {
		b.WriteString("-XX")
	}
	return b.String()
}

var dateTimexPattern = regexp.MustCompile(`^(\d{4}|XXXX)-(\d{2}|XX)-(\d{2}|XX)$`)

// ParseDateTimex parses a date timex produced by DateParts.String.
func ParseDateTimex(s string) (DateParts, bool) {
	m := dateTimexPattern.FindStringSubmatch(s)
	if m == nil {
		return DateParts{}, false
	}
	var p DateParts
	p.Year, _ = strconv.Atoi(strings.ReplaceAll(m[1], "X", ""))
	p.Month, _ = strconv.Atoi(strings.ReplaceAll(m[2], "X", ""))
	p.Day, _ = strconv.Atoi(strings.ReplaceAll(m[3], "X", ""))
	return p, true
}

// DateTimex formats t as a fully specified date timex.
func DateTimex(t time.Time) string {
	return t.Format(DateLayout)
}

// MonthTimex formats a year-month timex; year 0 renders as XXXX.
func MonthTimex(year, month int) string {
	if year > 0 {
		return fmt.Sprintf("%04d-%02d", year, month)
	}
	return fmt.Sprintf("XXXX-%02d", month)
}

// YearTimex formats a year timex.
func YearTimex(year int) string {
	return fmt.Sprintf("%04d", year)
}

// WeekdayTimex formats the year-less weekday timex, Monday is 1.
func WeekdayTimex(wd time.Weekday) string {
	return fmt.Sprintf("XXXX-WXX-%d", ISOWeekday(wd))
}

// TimeTimex formats a time of day, dropping trailing zero components.
func TimeTimex(hour, minute, second int) string {
	switch {
	case second > 0:
		return fmt.Sprintf("T%02d:%02d:%02d", hour, minute, second)
	case minute > 0:
		return fmt.Sprintf("T%02d:%02d", hour, minute)
	default:
		return fmt.Sprintf("T%02d", hour)
	}
}

// DateTimeTimex combines the date and time of t.
func DateTimeTimex(t time.Time) string {
	return DateTimex(t) + TimeTimex(t.Hour(), t.Minute(), t.Second())
}

// FullDateTimeTimex always spells out hours, minutes and seconds.
func FullDateTimeTimex(t time.Time) string {
	return t.Format("2006-01-02T15:04:05")
}

// WeekTimex formats the ISO week containing t, e.g. 2016-W45.
func WeekTimex(t time.Time) string {
	y, w := t.ISOWeek()
	return fmt.Sprintf("%04d-W%02d", y, w)
}

// WeekendTimex formats the weekend of the ISO week containing t.
func WeekendTimex(t time.Time) string {
	return WeekTimex(t) + "-WE"
}

// WeekOfMonthTimex formats week n of a month, e.g. XXXX-07-W03.
func WeekOfMonthTimex(year, month, n int) string {
	return MonthTimex(year, month) + fmt.Sprintf("-W%02d", n)
}

// DoubleTimex joins the two readings of an ambiguous-century expression.
func DoubleTimex(past, future string) string {
	return past + "|" + future
}

// SplitDoubleTimex undoes DoubleTimex. ok is false for a single timex.
func SplitDoubleTimex(s string) (past, future string, ok bool) {
	past, future, ok = strings.Cut(s, "|")
	return
}

// RangeTimex formats a (begin,end,duration) interval.
func RangeTimex(begin, end, duration string) string {
	return fmt.Sprintf("(%s,%s,%s)", begin, end, duration)
}

// RangeParts are the components of an interval timex.
type RangeParts struct {
	Begin    string
	End      string
	Duration string
}

// RangeTimexComponents parses an interval timex back into its parts.
func RangeTimexComponents(s string) (RangeParts, bool) {
	if !strings.HasPrefix(s, "(") || !strings.HasSuffix(s, ")") {
		return RangeParts{}, false
	}
	fields := strings.Split(s[1:len(s)-1], ",")
	if len(fields) != 3 {
		return RangeParts{}, false
	}
	return RangeParts{Begin: fields[0], End: fields[1], Duration: fields[2]}, true
}

// CombineDateWithTime prefixes a time or time-range timex with a date
// timex: 2016-11-08 + (T17,T18,PT1H) gives (2016-11-08T17,2016-11-08T18,PT1H).
func CombineDateWithTime(dateTimex, timeTimex string) string {
	if rp, ok := RangeTimexComponents(timeTimex); ok {
		return RangeTimex(dateTimex+rp.Begin, dateTimex+rp.End, rp.Duration)
	}
	return dateTimex + timeTimex
}

// PeriodKind is the granularity an interval timex is expressed in.
type PeriodKind int

const (
	ByDay PeriodKind = iota
	ByBusinessDay
	ByWeek
	ByMonth
	ByYear
)

// DatePeriodTimex formats the interval [start, end) counted in kind units.
func DatePeriodTimex(start, end time.Time, kind PeriodKind) string {
	return RangeTimex(DateTimex(start), DateTimex(end), PeriodDuration(start, end, kind))
}

// PeriodDuration returns the duration component of [start, end).
func PeriodDuration(start, end time.Time, kind PeriodKind) string {
	days := int(end.Sub(start).Hours() / 24)
	switch kind {
	case ByWeek:
		if days%7 == 0 {
			return fmt.Sprintf("P%dW", days/7)
		}
	case ByMonth:
		months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
		return fmt.Sprintf("P%dM", months)
	case ByYear:
		return fmt.Sprintf("P%dY", end.Year()-start.Year())
	case ByBusinessDay:
		n := 0
		for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
			if IsBusinessDay(d) {
				n++
			}
		}
		return fmt.Sprintf("P%dBD", n)
	}
	return fmt.Sprintf("P%dD", days)
}

// PeriodKindOf infers the granularity of a duration timex from its
// smallest date unit.
func PeriodKindOf(duration string) PeriodKind {
	parts, ok := ParseDurationTimex(duration)
	if !ok || len(parts) == 0 {
		return ByDay
	}
	switch parts[len(parts)-1].Unit {
	case Year:
		return ByYear
	case Month:
		return ByMonth
	case Week:
		return ByWeek
	case BusinessDay:
		return ByBusinessDay
	}
	return ByDay
}

var clockPattern = regexp.MustCompile(`T\d{2}(:\d{2}){0,2}`)

// ToPM moves an hh[:mm[:ss]] reading, optionally T-prefixed, across noon.
func ToPM(value string) string {
	prefix := ""
	if strings.HasPrefix(value, "T") {
		prefix = "T"
		value = value[1:]
	}
	fields := strings.Split(value, ":")
	hour, err := strconv.Atoi(fields[0])
	if err != nil {
		return prefix + value
	}
	if hour >= 12 {
		hour -= 12
	} else {
		hour += 12
	}
	fields[0] = fmt.Sprintf("%02d", hour)
	return prefix + strings.Join(fields, ":")
}

// AllToPM applies ToPM to every clock reading embedded in a timex. The
// duration of an interval timex is left alone.
func AllToPM(s string) string {
	if parts, ok := RangeTimexComponents(s); ok {
		return RangeTimex(AllToPM(parts.Begin), AllToPM(parts.End), parts.Duration)
	}
	if strings.HasPrefix(s, "P") {
		return s
	}
	return clockPattern.ReplaceAllStringFunc(s, ToPM)
}
