package model

import (
	"regexp"
	"strconv"

	"github.com/hrygo/chronoparse/plugin/datetime/timex"
)

var yearlessMonthPattern = regexp.MustCompile(`^XXXX-(\d{2})$`)

// ApplyTo fixes a year-less date or month result to the carried year.
// Results that already name a year, and results the year cannot be
// applied to, are returned unchanged.
func (c DateContext) ApplyTo(res Resolution) Resolution {
	if c.IsEmpty() || !res.Success {
		return res
	}

	if p, ok := timex.ParseDateTimex(res.Timex); ok {
		if p.Year != 0 || p.Month == 0 || p.Day == 0 {
			return res
		}
		d := timex.SafeDate(c.Year, p.Month, p.Day)
		if !timex.IsValid(d) {
			return res
		}
		p.Year = c.Year
		res.Timex = p.String()
		res.FutureValue = Instant(d)
		res.PastValue = Instant(d)
		return res
	}

	if m := yearlessMonthPattern.FindStringSubmatch(res.Timex); m != nil {
		month, _ := strconv.Atoi(m[1])
		start := timex.SafeDate(c.Year, month, 1)
		if !timex.IsValid(start) {
			return res
		}
		res.Timex = timex.MonthTimex(c.Year, month)
		res.FutureValue = Range(start, start.AddDate(0, 1, 0))
		res.PastValue = res.FutureValue
		return res
	}

	if rp, ok := timex.RangeTimexComponents(res.Timex); ok {
		begin, bok := timex.ParseDateTimex(rp.Begin)
		end, eok := timex.ParseDateTimex(rp.End)
		if !bok || !eok || begin.Year != 0 || end.Year != 0 {
			return res
		}
		start := timex.SafeDate(c.Year, begin.Month, begin.Day)
		stop := timex.SafeDate(c.Year, end.Month, end.Day)
		if !timex.IsValid(start) || !timex.IsValid(stop) {
			return res
		}
		if stop.Before(start) {
			stop = stop.AddDate(1, 0, 0)
		}
		res.Timex = timex.RangeTimex(timex.DateTimex(start), timex.DateTimex(stop), rp.Duration)
		res.FutureValue = Range(start, stop)
		res.PastValue = res.FutureValue
	}
	return res
}
