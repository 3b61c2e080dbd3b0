package parser

import (
	"fmt"
	"strings"
	"time"

	"github.com/hrygo/chronoparse/plugin/datetime/locale"
	"github.com/hrygo/chronoparse/plugin/datetime/model"
	"github.com/hrygo/chronoparse/plugin/datetime/timex"
)

// DateResolver resolves calendar days.
type DateResolver struct {
	cfg      *locale.DateConfig
	duration Resolver
	holiday  Resolver
	*contracts
}

// Resolve implements Resolver.
func (r *DateResolver) Resolve(text string, ref time.Time) model.Resolution {
	return r.finish(model.KindDate, r.resolve(normalize(text), timex.Wall(ref)))
}

// ResolveWithContext resolves text and fixes a year-less result to the
// year carried by ctx.
func (r *DateResolver) ResolveWithContext(text string, ref time.Time, ctx model.DateContext) model.Resolution {
	res := r.resolve(normalize(text), timex.Wall(ref))
	return r.finish(model.KindDate, ctx.ApplyTo(res))
}

// resolve runs the cascade. A bare day number is the weakest signal and
// is tried last.
func (r *DateResolver) resolve(text string, ref time.Time) model.Resolution {
	return firstMatch(text, ref,
		r.explicit,
		r.implicit,
		r.weekdayOfMonth,
		r.durationRelative,
		r.durationWithDate,
		r.written,
		r.dayOnly,
	)
}

func (r *DateResolver) explicit(text string, ref time.Time) model.Resolution {
	m, ok := r.cfg.DateFormats.Exact(text)
	if !ok {
		return model.NoMatch()
	}
	return r.fromMatch(m, ref)
}

func (r *DateResolver) written(text string, ref time.Time) model.Resolution {
	m, ok := r.cfg.WrittenDates.Exact(text)
	if !ok {
		return model.NoMatch()
	}
	return r.fromMatch(m, ref)
}

func (r *DateResolver) fromMatch(m locale.Match, ref time.Time) model.Resolution {
	month, ok := r.cfg.Month(m.Group("month"))
	if !ok {
		return model.NoMatch()
	}
	day := r.day(m)
	if day < 1 || day > 31 {
		return model.NoMatch()
	}
	if m.Has("year") {
		return datedDay(r.cfg.CenturyPivot, m.Group("year"), month, day)
	}
	return yearlessDate(ref, month, day)
}

func (r *DateResolver) day(m locale.Match) int {
	if m.Has("day") {
		return atoi(m.Group("day"))
	}
	if m.Has("dayword") {
		if n, ok := r.cfg.Numbers.ParseOrdinal(m.Group("dayword")); ok {
			return n
		}
	}
	return -1
}

// expandYear reads a year token. Two-digit years go through the century
// pivot and may carry two readings.
func expandYear(pivot timex.CenturyPivot, text string) (future, past int, ambiguous bool) {
	text = strings.TrimPrefix(strings.TrimSpace(text), "'")
	n := atoi(text)
	if n < 0 {
		return -1, -1, false
	}
	if len(text) <= 2 {
		return pivot.Expand(n)
	}
	return n, n, false
}

// datedDay resolves a day with an explicit year.
func datedDay(pivot timex.CenturyPivot, yearText string, month, day int) model.Resolution {
	future, past, ambiguous := expandYear(pivot, yearText)
	f := timex.SafeDate(future, month, day)
	if !ambiguous {
		return pointResolution(timex.DateParts{Year: future, Month: month, Day: day}.String(), f, f)
	}
	p := timex.SafeDate(past, month, day)
	tx := timex.DoubleTimex(
		timex.DateParts{Year: past, Month: month, Day: day}.String(),
		timex.DateParts{Year: future, Month: month, Day: day}.String(),
	)
	return pointResolution(tx, f, p)
}

// yearlessDate places month/day on both sides of the reference. Feb 29
// walks to the nearest leap year in each direction.
func yearlessDate(ref time.Time, month, day int) model.Resolution {
	today := timex.DateOf(ref)
	future, past := timex.MinDate, timex.MinDate
	for y := ref.Year(); y <= ref.Year()+8; y++ {
		if d := timex.SafeDate(y, month, day); timex.IsValid(d) && !d.Before(today) {
			future = d
			break
		}
	}
	for y := ref.Year(); y >= ref.Year()-8; y-- {
		if d := timex.SafeDate(y, month, day); timex.IsValid(d) && d.Before(today) {
			past = d
			break
		}
	}
	return pointResolution(timex.DateParts{Month: month, Day: day}.String(), future, past)
}

// dayOnlyDate places a bare day of month on both sides of the reference,
// skipping months that lack that day.
func dayOnlyDate(ref time.Time, day int) model.Resolution {
	today := timex.DateOf(ref)
	first := timex.SafeDate(ref.Year(), int(ref.Month()), 1)
	future, past := dayOnOrAfter(today, day), timex.MinDate
	for i := 0; i < 12; i++ {
		ms := first.AddDate(0, -i, 0)
		if d := timex.SafeDate(ms.Year(), int(ms.Month()), day); timex.IsValid(d) && d.Before(today) {
			past = d
			break
		}
	}
	return pointResolution(timex.DateParts{Day: day}.String(), future, past)
}

// dayOnOrAfter returns the first date with the given day of month that is
// not before from, or MinDate.
func dayOnOrAfter(from time.Time, day int) time.Time {
	first := timex.SafeDate(from.Year(), int(from.Month()), 1)
	if !timex.IsValid(first) {
		return timex.MinDate
	}
	for i := 0; i < 12; i++ {
		ms := first.AddDate(0, i, 0)
		if d := timex.SafeDate(ms.Year(), int(ms.Month()), day); timex.IsValid(d) && !d.Before(from) {
			return d
		}
	}
	return timex.MinDate
}

func (r *DateResolver) implicit(text string, ref time.Time) model.Resolution {
	today := timex.DateOf(ref)

	if m, ok := r.cfg.SpecialDay.Exact(text); ok {
		if offset, ok := r.cfg.SpecialDayOffsets[locale.Key(m.Group("special"))]; ok {
			d := today.AddDate(0, 0, offset)
			return pointResolution(timex.DateTimex(d), d, d)
		}
	}

	if m, ok := r.cfg.RelativeWeekday.Exact(text); ok {
		if wd, ok := r.cfg.Weekday(m.Group("weekday")); ok {
			var d time.Time
			switch r.cfg.Swift(m.Group("order")) {
			case 1:
				d = timex.NextWeekday(ref, wd)
			case -1:
				d = timex.LastWeekday(ref, wd)
			default:
				d = timex.ThisWeekday(ref, wd)
			}
			return pointResolution(timex.DateTimex(d), d, d)
		}
	}

	if m, ok := r.cfg.WeekdayWithWeek.Exact(text); ok {
		if wd, ok := r.cfg.Weekday(m.Group("weekday")); ok {
			d := timex.ThisWeekday(ref, wd).AddDate(0, 0, 7*r.cfg.Swift(m.Group("order")))
			return pointResolution(timex.DateTimex(d), d, d)
		}
	}

	if m, ok := r.cfg.BareWeekday.Exact(text); ok {
		if wd, ok := r.cfg.Weekday(m.Group("weekday")); ok {
			diff := (int(wd) - int(today.Weekday()) + 7) % 7
			future := today.AddDate(0, 0, diff)
			return pointResolution(timex.WeekdayTimex(wd), future, future.AddDate(0, 0, -7))
		}
	}

	return model.NoMatch()
}

// weekdayOfMonth resolves "first Monday of March", "last Friday of next
// month". Year-less months straddle the reference like other dates.
func (r *DateResolver) weekdayOfMonth(text string, ref time.Time) model.Resolution {
	m, ok := r.cfg.WeekdayOfMonth.Exact(text)
	if !ok {
		return model.NoMatch()
	}
	n, ok := r.cfg.Cardinal(m.Group("cardinal"))
	if !ok || n == 0 || n > 5 {
		return model.NoMatch()
	}
	wd, ok := r.cfg.Weekday(m.Group("weekday"))
	if !ok {
		return model.NoMatch()
	}
	nth := func(year, month int) time.Time {
		if n == locale.LastIndex {
			return timex.LastWeekdayOf(year, month, wd)
		}
		return timex.NthWeekdayOf(year, month, wd, n)
	}

	if m.Has("relmonth") || m.Has("themonth") {
		ms := timex.SafeDate(ref.Year(), int(ref.Month()), 1).AddDate(0, r.cfg.Swift(m.Group("relmonth")), 0)
		d := nth(ms.Year(), int(ms.Month()))
		return pointResolution(timex.DateTimex(d), d, d)
	}

	month, ok := r.cfg.Month(m.Group("month"))
	if !ok {
		return model.NoMatch()
	}
	if m.Has("year") {
		year, _, _ := expandYear(r.cfg.CenturyPivot, m.Group("year"))
		d := nth(year, month)
		return pointResolution(timex.DateTimex(d), d, d)
	}

	today := timex.DateOf(ref)
	future, past := nth(ref.Year(), month), nth(ref.Year(), month)
	if !timex.IsValid(future) || future.Before(today) {
		future = nth(ref.Year()+1, month)
	}
	if !timex.IsValid(past) || !past.Before(today) {
		past = nth(ref.Year()-1, month)
	}
	index := n
	if n == locale.LastIndex {
		index = 5
	}
	tx := fmt.Sprintf("XXXX-%02d-WXX-%d-#%d", month, timex.ISOWeekday(wd), index)
	return pointResolution(tx, future, past)
}

// durationRelative resolves "two days ago", "3 weeks from now" and
// "in 3 weeks". Sub-day durations belong to the date-time resolver.
func (r *DateResolver) durationRelative(text string, ref time.Time) model.Resolution {
	m, ok := r.cfg.DurationRelative.Exact(text)
	if !ok {
		return model.NoMatch()
	}
	dir, ok := r.cfg.Direction(m.Group("dir"))
	if !ok {
		return model.NoMatch()
	}
	dur := r.duration.Resolve(m.Group("duration"), ref)
	if !dur.Success || timex.HasSubDayUnit(dur.Timex) {
		return model.NoMatch()
	}
	d, ok := timex.OffsetByTimex(timex.DateOf(ref), dur.Timex, dir > 0)
	if !ok {
		return model.NoMatch()
	}
	return pointResolution(timex.DateTimex(d), d, d)
}

// durationWithDate resolves "3 days before Monday" by shifting both
// readings of the anchor date.
func (r *DateResolver) durationWithDate(text string, ref time.Time) model.Resolution {
	m, ok := r.cfg.DurationWithDate.Exact(text)
	if !ok {
		return model.NoMatch()
	}
	dir, ok := r.cfg.Direction(m.Group("dir"))
	if !ok {
		return model.NoMatch()
	}
	dur := r.duration.Resolve(m.Group("duration"), ref)
	if !dur.Success || timex.HasSubDayUnit(dur.Timex) {
		return model.NoMatch()
	}
	anchor := r.resolve(m.Group("date"), ref)
	if !anchor.Success && r.holiday != nil {
		anchor = r.holiday.Resolve(m.Group("date"), ref)
	}
	if !anchor.Success {
		return model.NoMatch()
	}
	f, fok := anchor.FutureValue.Instant()
	p, pok := anchor.PastValue.Instant()
	if !fok || !pok {
		return r.violation(model.KindDate, "anchor date is not an instant")
	}
	f, fok = timex.OffsetByTimex(f, dur.Timex, dir > 0)
	p, pok = timex.OffsetByTimex(p, dur.Timex, dir > 0)
	if !fok || !pok {
		return model.NoMatch()
	}
	return pointResolution(timex.DateTimex(f), f, p)
}

func (r *DateResolver) dayOnly(text string, ref time.Time) model.Resolution {
	m, ok := r.cfg.DayOnly.Exact(text)
	if !ok {
		return model.NoMatch()
	}
	day := r.day(m)
	if day < 1 || day > 31 {
		return model.NoMatch()
	}
	return dayOnlyDate(ref, day)
}
