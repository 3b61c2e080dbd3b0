package parser

import (
	"fmt"
	"regexp"
	"time"

	"github.com/hrygo/chronoparse/plugin/datetime/locale"
	"github.com/hrygo/chronoparse/plugin/datetime/model"
	"github.com/hrygo/chronoparse/plugin/datetime/timex"
)

// DatePeriodResolver resolves ranges of days: months, weeks, quarters,
// seasons, decades and spans between two dates.
type DatePeriodResolver struct {
	cfg      *locale.DatePeriodConfig
	date     *DateResolver
	duration Resolver
	*contracts
}

// Resolve implements Resolver.
func (r *DatePeriodResolver) Resolve(text string, ref time.Time) model.Resolution {
	return r.finish(model.KindDatePeriod, r.resolve(normalize(text), timex.Wall(ref)))
}

func (r *DatePeriodResolver) resolve(text string, ref time.Time) model.Resolution {
	return firstMatch(text, ref,
		r.monthWithYear,
		r.simpleCases,
		r.oneWord,
		r.year,
		r.weekOfMonth,
		r.weekOfYear,
		r.halfYear,
		r.quarter,
		r.season,
		r.whichWeek,
		r.weekOf,
		r.monthOf,
		r.decade,
		r.century,
		// Must stay after oneWord: "last week" is a calendar week, not
		// the seven days before the reference.
		r.durationRange,
		r.twoPoints,
	)
}

func monthStart(t time.Time) time.Time {
	return timex.SafeDate(t.Year(), int(t.Month()), 1)
}

// monthBand narrows a month to its early (1-15), mid (10-20) or late
// (16-end) days.
func monthBand(start time.Time, m locale.Match) (time.Time, time.Time, string) {
	end := start.AddDate(0, 1, 0)
	switch {
	case m.Has("early"):
		return start, start.AddDate(0, 0, 15), model.ModStart
	case m.Has("mid"):
		return start.AddDate(0, 0, 9), start.AddDate(0, 0, 20), model.ModMid
	case m.Has("late"):
		return start.AddDate(0, 0, 15), end, model.ModEnd
	}
	return start, end, ""
}

// yearBand narrows a year to January-April, May-August or
// September-December.
func yearBand(start time.Time, m locale.Match) (time.Time, time.Time, string) {
	switch {
	case m.Has("early"):
		return start, start.AddDate(0, 4, 0), model.ModStart
	case m.Has("mid"):
		return start.AddDate(0, 4, 0), start.AddDate(0, 8, 0), model.ModMid
	case m.Has("late"):
		return start.AddDate(0, 8, 0), start.AddDate(1, 0, 0), model.ModEnd
	}
	return start, start.AddDate(1, 0, 0), ""
}

// weekBand narrows a week to Monday-Wednesday, Wednesday-Thursday or
// Thursday-Sunday.
func weekBand(monday time.Time, m locale.Match) (time.Time, time.Time, string) {
	switch {
	case m.Has("early"):
		return monday, monday.AddDate(0, 0, 3), model.ModStart
	case m.Has("mid"):
		return monday.AddDate(0, 0, 2), monday.AddDate(0, 0, 4), model.ModMid
	case m.Has("late"):
		return monday.AddDate(0, 0, 3), monday.AddDate(0, 0, 7), model.ModEnd
	}
	return monday, monday.AddDate(0, 0, 7), ""
}

// straddleMonth picks the future and past years of a year-less month.
func straddleMonth(ref time.Time, month int) (future, past int) {
	future, past = ref.Year(), ref.Year()
	if month < int(ref.Month()) {
		future++
	}
	if month >= int(ref.Month()) {
		past--
	}
	return future, past
}

func (r *DatePeriodResolver) monthWithYear(text string, ref time.Time) model.Resolution {
	m, ok := r.cfg.MonthWithYear.Exact(text)
	if !ok {
		return model.NoMatch()
	}
	month, ok := r.cfg.Month(m.Group("month"))
	if !ok {
		return model.NoMatch()
	}

	var fy, py int
	var tx string
	switch {
	case m.Has("year"):
		var ambiguous bool
		fy, py, ambiguous = expandYear(r.cfg.CenturyPivot, m.Group("year"))
		tx = timex.MonthTimex(fy, month)
		if ambiguous {
			tx = timex.DoubleTimex(timex.MonthTimex(py, month), tx)
		}
	case m.Has("relyear"):
		fy = ref.Year() + r.cfg.Swift(m.Group("relyear"))
		py = fy
		tx = timex.MonthTimex(fy, month)
	default:
		fy, py = straddleMonth(ref, month)
		tx = timex.MonthTimex(0, month)
	}

	fs, fe, mod := monthBand(timex.SafeDate(fy, month, 1), m)
	ps, pe, _ := monthBand(timex.SafeDate(py, month, 1), m)
	res := dualRangeResolution(tx, fs, fe, ps, pe)
	res.Mod = mod
	return res
}

func (r *DatePeriodResolver) dayNumber(m locale.Match, suffix string) int {
	if v := m.Group("day" + suffix); v != "" {
		return atoi(v)
	}
	if v := m.Group("dayword" + suffix); v != "" {
		if n, ok := r.cfg.Numbers.ParseOrdinal(v); ok {
			return n
		}
	}
	return -1
}

// simpleCases resolves "may 5 to 10" and "between the 5th and 10th of
// may 2016". The end day is the last day named.
func (r *DatePeriodResolver) simpleCases(text string, ref time.Time) model.Resolution {
	m, ok := r.cfg.SimpleCases.Exact(text)
	if !ok {
		return model.NoMatch()
	}
	month, ok := r.cfg.Month(m.Group("month"))
	if !ok {
		return model.NoMatch()
	}
	d1, d2 := r.dayNumber(m, "1"), r.dayNumber(m, "2")
	if d1 < 1 || d2 < 1 || d2 < d1 {
		return model.NoMatch()
	}

	span := func(year int) (time.Time, time.Time, bool) {
		s, e := timex.SafeDate(year, month, d1), timex.SafeDate(year, month, d2)
		return s, e, timex.IsValid(s) && timex.IsValid(e)
	}

	if m.Has("year") {
		y, _, _ := expandYear(r.cfg.CenturyPivot, m.Group("year"))
		s, e, ok := span(y)
		if !ok {
			return model.NoMatch()
		}
		tx := timex.RangeTimex(
			timex.DateParts{Year: y, Month: month, Day: d1}.String(),
			timex.DateParts{Year: y, Month: month, Day: d2}.String(),
			timex.PeriodDuration(s, e, timex.ByDay),
		)
		return rangeResolution(tx, s, e)
	}

	today := timex.DateOf(ref)
	fy, py := ref.Year(), ref.Year()
	if s, _, ok := span(ref.Year()); ok {
		if s.Before(today) {
			fy++
		} else {
			py--
		}
	}
	fs, fe, fok := span(fy)
	ps, pe, pok := span(py)
	if !fok || !pok {
		return model.NoMatch()
	}
	tx := timex.RangeTimex(
		timex.DateParts{Month: month, Day: d1}.String(),
		timex.DateParts{Month: month, Day: d2}.String(),
		timex.PeriodDuration(fs, fe, timex.ByDay),
	)
	return dualRangeResolution(tx, fs, fe, ps, pe)
}

// oneWord resolves "this week", "early next month", "the year after
// next", "year to date", "rest of the week" and "next may".
func (r *DatePeriodResolver) oneWord(text string, ref time.Time) model.Resolution {
	m, ok := r.cfg.OneWord.Exact(text)
	if !ok {
		return model.NoMatch()
	}
	today := timex.DateOf(ref)
	swift := r.cfg.Swift(m.Group("order"))
	switch {
	case m.Has("afternext"):
		swift = 2
	case m.Has("beforelast"):
		swift = -2
	}

	if m.Has("month") {
		month, ok := r.cfg.Month(m.Group("month"))
		if !ok {
			return model.NoMatch()
		}
		y := ref.Year() + swift
		s, e, mod := monthBand(timex.SafeDate(y, month, 1), m)
		res := rangeResolution(timex.MonthTimex(y, month), s, e)
		res.Mod = mod
		return res
	}

	unit := locale.Key(m.Group("unit"))
	unitStart := func() (time.Time, time.Time) {
		switch unit {
		case "week":
			monday := timex.MondayOf(ref)
			return monday, monday.AddDate(0, 0, 7)
		case "month":
			s := monthStart(ref)
			return s, s.AddDate(0, 1, 0)
		default:
			s := timex.SafeDate(ref.Year(), 1, 1)
			return s, s.AddDate(1, 0, 0)
		}
	}

	switch {
	case m.Has("todate"):
		s, _ := unitStart()
		return rangeResolution(timex.DatePeriodTimex(s, today, timex.ByDay), s, today)
	case m.Has("restof"):
		_, e := unitStart()
		return rangeResolution(timex.DatePeriodTimex(today, e, timex.ByDay), today, e)
	}

	var res model.Resolution
	var mod string
	switch unit {
	case "week":
		monday := timex.MondayOf(ref).AddDate(0, 0, 7*swift)
		var s, e time.Time
		s, e, mod = weekBand(monday, m)
		res = rangeResolution(timex.WeekTimex(monday), s, e)
	case "weekend":
		saturday := timex.MondayOf(ref).AddDate(0, 0, 7*swift+5)
		res = rangeResolution(timex.WeekendTimex(saturday), saturday, saturday.AddDate(0, 0, 2))
	case "fortnight":
		s := today.AddDate(0, 0, 14*swift)
		if swift > 0 {
			s = timex.MondayOf(ref).AddDate(0, 0, 7)
		}
		e := s.AddDate(0, 0, 14)
		res = rangeResolution(timex.DatePeriodTimex(s, e, timex.ByWeek), s, e)
	case "month":
		ms := monthStart(ref).AddDate(0, swift, 0)
		var s, e time.Time
		s, e, mod = monthBand(ms, m)
		res = rangeResolution(timex.MonthTimex(ms.Year(), int(ms.Month())), s, e)
	case "year":
		ys := timex.SafeDate(ref.Year()+swift, 1, 1)
		var s, e time.Time
		s, e, mod = yearBand(ys, m)
		res = rangeResolution(timex.YearTimex(ys.Year()), s, e)
	default:
		return model.NoMatch()
	}
	res.Mod = mod
	return res
}

// year resolves "2016", "in '35", "late 2016". A two-digit year in the
// ambiguous band reads as both centuries.
func (r *DatePeriodResolver) year(text string, ref time.Time) model.Resolution {
	m, ok := r.cfg.Year.Exact(text)
	if !ok {
		return model.NoMatch()
	}
	future, past, ambiguous := expandYear(r.cfg.CenturyPivot, m.Group("year"))
	if future < 1 {
		return model.NoMatch()
	}
	fs, fe, mod := yearBand(timex.SafeDate(future, 1, 1), m)
	ps, pe, _ := yearBand(timex.SafeDate(past, 1, 1), m)
	tx := timex.YearTimex(future)
	if ambiguous {
		tx = timex.DoubleTimex(timex.YearTimex(past), tx)
	}
	res := dualRangeResolution(tx, fs, fe, ps, pe)
	res.Mod = mod
	return res
}

// monthOfMatch reads the month a week or weekday is anchored in.
// known is false for a year-less month name.
func (r *DatePeriodResolver) monthOfMatch(m locale.Match, ref time.Time) (future, past time.Time, known bool, ok bool) {
	if m.Has("relmonth") || m.Has("themonth") {
		ms := monthStart(ref).AddDate(0, r.cfg.Swift(m.Group("relmonth")), 0)
		return ms, ms, true, true
	}
	month, ok := r.cfg.Month(m.Group("month"))
	if !ok {
		return timex.MinDate, timex.MinDate, false, false
	}
	if m.Has("year") {
		y, _, _ := expandYear(r.cfg.CenturyPivot, m.Group("year"))
		ms := timex.SafeDate(y, month, 1)
		return ms, ms, true, timex.IsValid(ms)
	}
	fy, py := straddleMonth(ref, month)
	return timex.SafeDate(fy, month, 1), timex.SafeDate(py, month, 1), false, true
}

// weekOfMonth resolves "the first week of july". Week 1 holds the
// month's first Thursday.
func (r *DatePeriodResolver) weekOfMonth(text string, ref time.Time) model.Resolution {
	m, ok := r.cfg.WeekOfMonth.Exact(text)
	if !ok {
		return model.NoMatch()
	}
	n, ok := r.cfg.Cardinal(m.Group("cardinal"))
	if !ok || n == 0 || n > 5 {
		return model.NoMatch()
	}
	fm, pm, known, ok := r.monthOfMatch(m, ref)
	if !ok {
		return model.NoMatch()
	}
	monday := func(ms time.Time) time.Time {
		if n == locale.LastIndex {
			return timex.LastWeekOfMonthMonday(ms.Year(), int(ms.Month()))
		}
		return timex.WeekOfMonthMonday(ms.Year(), int(ms.Month()), n)
	}
	fmon, pmon := monday(fm), monday(pm)
	if !timex.IsValid(fmon) || !timex.IsValid(pmon) {
		return model.NoMatch()
	}
	year := 0
	if known {
		year = fm.Year()
	}
	tx := timex.WeekOfMonthTimex(year, int(fm.Month()), timex.WeekOfMonthIndex(fmon))
	return dualRangeResolution(tx, fmon, fmon.AddDate(0, 0, 7), pmon, pmon.AddDate(0, 0, 7))
}

func (r *DatePeriodResolver) yearOfMatch(m locale.Match, ref time.Time) int {
	switch {
	case m.Has("year"):
		y, _, _ := expandYear(r.cfg.CenturyPivot, m.Group("year"))
		return y
	case m.Has("relyear"):
		return ref.Year() + r.cfg.Swift(m.Group("relyear"))
	}
	return ref.Year()
}

// weekOfYear resolves "the first week of 2017", "the last week of the
// year".
func (r *DatePeriodResolver) weekOfYear(text string, ref time.Time) model.Resolution {
	m, ok := r.cfg.WeekOfYear.Exact(text)
	if !ok {
		return model.NoMatch()
	}
	n, ok := r.cfg.Cardinal(m.Group("cardinal"))
	if !ok || n == 0 || n > 53 {
		return model.NoMatch()
	}
	y := r.yearOfMatch(m, ref)
	var monday time.Time
	if n == locale.LastIndex {
		monday = timex.LastWeekOfYearMonday(y)
	} else {
		monday = timex.WeekOfYearMonday(y, n)
	}
	if !timex.IsValid(monday) {
		return model.NoMatch()
	}
	return rangeResolution(timex.WeekTimex(monday), monday, monday.AddDate(0, 0, 7))
}

func (r *DatePeriodResolver) ordinalOf(m locale.Match) (int, bool) {
	if v := m.Group("number"); v != "" {
		return atoi(v), true
	}
	return r.cfg.Cardinal(m.Group("cardinal"))
}

// halfYear resolves "the first half of 2017" and "H2 2016".
func (r *DatePeriodResolver) halfYear(text string, ref time.Time) model.Resolution {
	m, ok := r.cfg.HalfYear.Exact(text)
	if !ok {
		return model.NoMatch()
	}
	n, ok := r.ordinalOf(m)
	if n == locale.LastIndex {
		n = 2
	}
	if !ok || n < 1 || n > 2 {
		return model.NoMatch()
	}
	s := timex.SafeDate(r.yearOfMatch(m, ref), 1+6*(n-1), 1)
	if !timex.IsValid(s) {
		return model.NoMatch()
	}
	e := s.AddDate(0, 6, 0)
	return rangeResolution(timex.DatePeriodTimex(s, e, timex.ByMonth), s, e)
}

// quarter resolves "Q3 2016", "the second quarter" and "next quarter".
func (r *DatePeriodResolver) quarter(text string, ref time.Time) model.Resolution {
	m, ok := r.cfg.Quarter.Exact(text)
	if !ok {
		return model.NoMatch()
	}
	var s time.Time
	if m.Has("order") {
		current := (int(ref.Month()) - 1) / 3
		s = timex.SafeDate(ref.Year(), 3*current+1, 1).AddDate(0, 3*r.cfg.Swift(m.Group("order")), 0)
	} else {
		n, ok := r.ordinalOf(m)
		if n == locale.LastIndex {
			n = 4
		}
		if !ok || n < 1 || n > 4 {
			return model.NoMatch()
		}
		s = timex.SafeDate(r.yearOfMatch(m, ref), 3*(n-1)+1, 1)
	}
	if !timex.IsValid(s) {
		return model.NoMatch()
	}
	e := s.AddDate(0, 3, 0)
	return rangeResolution(timex.DatePeriodTimex(s, e, timex.ByMonth), s, e)
}

// season resolves "summer", "this winter", "fall 2016". Winter runs from
// December into the next year.
func (r *DatePeriodResolver) season(text string, ref time.Time) model.Resolution {
	m, ok := r.cfg.Season.Exact(text)
	if !ok {
		return model.NoMatch()
	}
	season, ok := r.cfg.Seasons[locale.Key(m.Group("season"))]
	if !ok {
		return model.NoMatch()
	}
	bounds := func(y int) (time.Time, time.Time) {
		s := timex.SafeDate(y, season.StartMonth, 1)
		return s, s.AddDate(0, 3, 0)
	}
	mod := ""
	switch {
	case m.Has("early"):
		mod = model.ModStart
	case m.Has("mid"):
		mod = model.ModMid
	case m.Has("late"):
		mod = model.ModEnd
	}

	if m.Has("year") || m.Has("relyear") || m.Has("order") {
		y := r.yearOfMatch(m, ref)
		if m.Has("order") {
			y = ref.Year() + r.cfg.Swift(m.Group("order"))
		}
		s, e := bounds(y)
		res := rangeResolution(fmt.Sprintf("%04d-%s", y, season.Timex), s, e)
		res.Mod = mod
		return res
	}

	today := timex.DateOf(ref)
	fs, fe := bounds(ref.Year())
	if !fe.After(today) {
		fs, fe = bounds(ref.Year() + 1)
	}
	ps, pe := bounds(ref.Year())
	if !ps.Before(today) {
		ps, pe = bounds(ref.Year() - 1)
	}
	res := dualRangeResolution(season.Timex, fs, fe, ps, pe)
	res.Mod = mod
	return res
}

// whichWeek resolves "week 45" and "week 3 of 2017".
func (r *DatePeriodResolver) whichWeek(text string, ref time.Time) model.Resolution {
	m, ok := r.cfg.WhichWeek.Exact(text)
	if !ok {
		return model.NoMatch()
	}
	monday := timex.WeekOfYearMonday(r.yearOfMatch(m, ref), atoi(m.Group("number")))
	if !timex.IsValid(monday) {
		return model.NoMatch()
	}
	return rangeResolution(timex.WeekTimex(monday), monday, monday.AddDate(0, 0, 7))
}

// weekOf widens a date to its week. The timex stays the date's; the
// merging resolver turns it into a week timex.
func (r *DatePeriodResolver) weekOf(text string, ref time.Time) model.Resolution {
	m, ok := r.cfg.WeekOf.Exact(text)
	if !ok {
		return model.NoMatch()
	}
	d := r.date.resolve(m.Group("date"), ref)
	if !d.Success {
		return model.NoMatch()
	}
	f, _ := d.FutureValue.Instant()
	p, _ := d.PastValue.Instant()
	fm, pm := timex.MondayOf(f), timex.MondayOf(p)
	res := dualRangeResolution(d.Timex, fm, fm.AddDate(0, 0, 7), pm, pm.AddDate(0, 0, 7))
	res.Comment = model.CommentWeekOf
	return res
}

// monthOf widens a date to its month.
func (r *DatePeriodResolver) monthOf(text string, ref time.Time) model.Resolution {
	m, ok := r.cfg.MonthOf.Exact(text)
	if !ok {
		return model.NoMatch()
	}
	d := r.date.resolve(m.Group("date"), ref)
	if !d.Success {
		return model.NoMatch()
	}
	f, _ := d.FutureValue.Instant()
	p, _ := d.PastValue.Instant()
	fm, pm := monthStart(f), monthStart(p)
	res := dualRangeResolution(d.Timex, fm, fm.AddDate(0, 1, 0), pm, pm.AddDate(0, 1, 0))
	res.Comment = model.CommentMonthOf
	return res
}

// decade resolves "the 1990s", "the '90s", "the nineties" and "next
// decade". A decade without a century goes through the century pivot.
func (r *DatePeriodResolver) decade(text string, ref time.Time) model.Resolution {
	m, ok := r.cfg.Decade.Exact(text)
	if !ok {
		return model.NoMatch()
	}
	span := func(y int) (time.Time, time.Time, string) {
		s := timex.SafeDate(y, 1, 1)
		e := s.AddDate(10, 0, 0)
		return s, e, timex.DatePeriodTimex(s, e, timex.ByYear)
	}

	if m.Has("order") {
		s, e, tx := span(ref.Year()/10*10 + 10*r.cfg.Swift(m.Group("order")))
		return rangeResolution(tx, s, e)
	}

	value := -1
	switch {
	case m.Has("decade"):
		value = atoi(m.Group("decade"))
	case m.Has("decadeword"):
		if v, ok := r.cfg.DecadeWords[locale.Key(m.Group("decadeword"))]; ok {
			value = v
		}
	}
	if value < 0 || value > 90 || value%10 != 0 {
		return model.NoMatch()
	}

	if m.Has("century") {
		s, e, tx := span(atoi(m.Group("century"))*100 + value)
		if !timex.IsValid(s) {
			return model.NoMatch()
		}
		return rangeResolution(tx, s, e)
	}

	future, past, ambiguous := r.cfg.CenturyPivot.Expand(value)
	fs, fe, ftx := span(future)
	ps, pe, ptx := span(past)
	tx := ftx
	if ambiguous {
		tx = timex.DoubleTimex(ptx, ftx)
	}
	return dualRangeResolution(tx, fs, fe, ps, pe)
}

// century resolves "the 21st century".
func (r *DatePeriodResolver) century(text string, ref time.Time) model.Resolution {
	m, ok := r.cfg.Century.Exact(text)
	if !ok {
		return model.NoMatch()
	}
	n, ok := r.cfg.Cardinal(m.Group("cardinal"))
	if !ok || n < 2 || n > 99 {
		return model.NoMatch()
	}
	s := timex.SafeDate((n-1)*100, 1, 1)
	e := s.AddDate(100, 0, 0)
	return rangeResolution(timex.DatePeriodTimex(s, e, timex.ByYear), s, e)
}

// durationRange resolves "next 3 days", "past 2 weeks", "within 2
// weeks", "in 2 weeks" and business-day counts.
func (r *DatePeriodResolver) durationRange(text string, ref time.Time) model.Resolution {
	m, ok := r.cfg.DurationRange.Exact(text)
	if !ok {
		return model.NoMatch()
	}
	anchor, ok := r.cfg.Anchors[locale.Key(m.Group("order"))]
	if !ok {
		return model.NoMatch()
	}
	dur := r.duration.Resolve(m.Group("duration"), ref)
	if !dur.Success || timex.HasSubDayUnit(dur.Timex) {
		return model.NoMatch()
	}
	parts, ok := timex.ParseDurationTimex(dur.Timex)
	if !ok {
		return r.violation(model.KindDatePeriod, "duration timex does not parse: "+dur.Timex)
	}
	today := timex.DateOf(ref)
	if len(parts) == 1 && parts[0].Unit == timex.BusinessDay {
		return businessDayRange(dur.Timex, int(parts[0].Value), anchor, today)
	}

	tx := dur.Timex
	var start, end time.Time
	var sok, eok bool
	switch anchor {
	case locale.AnchorNext:
		start, sok = today.AddDate(0, 0, 1), true
		end, eok = timex.OffsetByTimex(start, dur.Timex, true)
	case locale.AnchorPast:
		end, eok = today, true
		start, sok = timex.OffsetByTimex(today, dur.Timex, false)
	case locale.AnchorWithin:
		start, sok = today, true
		end, eok = timex.OffsetByTimex(today, dur.Timex, true)
	case locale.AnchorIn:
		start, sok = timex.OffsetByTimex(today, dur.Timex, true)
		tx = timex.DurationTimex(1, parts[len(parts)-1].Unit)
		end, eok = timex.OffsetByTimex(start, tx, true)
	}
	if !sok || !eok {
		return model.NoMatch()
	}
	return rangeResolution(timex.RangeTimex(timex.DateTimex(start), timex.DateTimex(end), tx), start, end)
}

func businessDayRange(tx string, n int, anchor locale.RelativeAnchor, today time.Time) model.Resolution {
	if n <= 0 || n > timex.MaxBusinessDays {
		return model.NoMatch()
	}
	var days []time.Time
	if anchor == locale.AnchorPast {
		_, walked := timex.AddBusinessDays(today, -n)
		for i := len(walked) - 1; i >= 0; i-- {
			days = append(days, walked[i])
		}
	} else {
		_, days = timex.AddBusinessDays(today, n)
	}
	start, end := days[0], days[len(days)-1].AddDate(0, 0, 1)
	res := rangeResolution(timex.RangeTimex(timex.DateTimex(start), timex.DateTimex(end), tx), start, end)
	res.DateList = days
	return res
}

// twoPoints resolves "from may 5 to june 10" and composite spans such as
// "from march to may 2020". A side that names its year lends it to the
// side that does not.
func (r *DatePeriodResolver) twoPoints(text string, ref time.Time) model.Resolution {
	m, ok := r.cfg.TwoPoints.Exact(text)
	if !ok {
		return model.NoMatch()
	}
	leftText, rightText := m.Group("left"), m.Group("right")

	left, right := r.date.resolve(leftText, ref), r.date.resolve(rightText, ref)
	if left.Success && right.Success {
		left, right = r.shareYear(leftText, rightText, left, right, ref)
		right = anchorDayOnly(left, right)
		return mergePoints(left, right, timex.ByDay, false)
	}

	left, right = r.side(leftText, ref), r.side(rightText, ref)
	if !left.Success || !right.Success {
		return model.NoMatch()
	}
	left, right = r.shareYear(leftText, rightText, left, right, ref)
	right = anchorDayOnly(left, right)
	return mergePoints(left, right, composedKind(left.Timex, right.Timex), true)
}

// anchorDayOnly reads a bare day of month on the right, "to the 5th", as
// the first such day on or after the start of each reading of the left.
func anchorDayOnly(left, right model.Resolution) model.Resolution {
	parts, ok := timex.ParseDateTimex(right.Timex)
	if !ok || parts.Month != 0 || parts.Day == 0 {
		return right
	}
	f := dayOnOrAfter(startOf(left.FutureValue), parts.Day)
	p := dayOnOrAfter(startOf(left.PastValue), parts.Day)
	if !timex.IsValid(f) || !timex.IsValid(p) {
		return right
	}
	tx := timex.DateTimex(f)
	if yearOfTimex(left.Timex) == 0 {
		tx = timex.DateParts{Month: int(f.Month()), Day: f.Day()}.String()
	}
	return pointResolution(tx, f, p)
}

func (r *DatePeriodResolver) side(text string, ref time.Time) model.Resolution {
	if res := r.date.resolve(text, ref); res.Success {
		return res
	}
	return r.resolve(text, ref)
}

var (
	leadingYearPattern = regexp.MustCompile(`^\(?(\d{4})(?:-|,|$)`)
	monthTimexPattern  = regexp.MustCompile(`^(?:\d{4}|XXXX)-\d{2}$`)
	yearTimexPattern   = regexp.MustCompile(`^\d{4}$`)
)

// yearOfTimex returns the explicit year a timex starts with, or 0.
func yearOfTimex(tx string) int {
	if m := leadingYearPattern.FindStringSubmatch(tx); m != nil {
		return atoi(m[1])
	}
	return 0
}

// shareYear lends the explicit year of one side to a year-less other
// side, stepping back a year when the borrowed year puts the start after
// the end.
func (r *DatePeriodResolver) shareYear(leftText, rightText string, left, right model.Resolution, ref time.Time) (model.Resolution, model.Resolution) {
	ly, ry := yearOfTimex(left.Timex), yearOfTimex(right.Timex)
	switch {
	case ry > 0 && ly == 0:
		fixed := model.DateContext{Year: ry}.ApplyTo(left)
		if startOf(fixed.FutureValue).After(startOf(right.FutureValue)) {
			fixed = model.DateContext{Year: ry - 1}.ApplyTo(left)
		}
		if yearOfTimex(fixed.Timex) > 0 {
			left = fixed
		}
	case ly > 0 && ry == 0:
		fixed := model.DateContext{Year: ly}.ApplyTo(right)
		if startOf(fixed.FutureValue).Before(startOf(left.FutureValue)) {
			fixed = model.DateContext{Year: ly + 1}.ApplyTo(right)
		}
		if yearOfTimex(fixed.Timex) > 0 {
			right = fixed
		}
	}
	return left, right
}

func startOf(v model.Value) time.Time {
	t, _ := v.Start()
	return t
}

func composedKind(left, right string) timex.PeriodKind {
	switch {
	case monthTimexPattern.MatchString(left) && monthTimexPattern.MatchString(right):
		return timex.ByMonth
	case yearTimexPattern.MatchString(left) && yearTimexPattern.MatchString(right):
		return timex.ByYear
	}
	return timex.ByDay
}

// mergePoints spans from the start of left to the start of right. A
// reading that comes out reversed borrows the start or end from the
// other reading.
func mergePoints(left, right model.Resolution, kind timex.PeriodKind, composite bool) model.Resolution {
	lf, lp := startOf(left.FutureValue), startOf(left.PastValue)
	rf, rp := startOf(right.FutureValue), startOf(right.PastValue)
	if rf.Before(lf) {
		lf = lp
	}
	if rp.Before(lp) {
		rp = rf
	}
	if rf.Before(lf) || rp.Before(lp) {
		return model.NoMatch()
	}

	begin, end := left.Timex, right.Timex
	if composite {
		begin, end = pointTimex(left.Timex, lf), pointTimex(right.Timex, rf)
	}
	tx := timex.RangeTimex(begin, end, timex.PeriodDuration(lf, rf, kind))
	return dualRangeResolution(tx, lf, rf, lp, rp)
}

// pointTimex renders the start of a side, keeping it year-less when the
// side named no year.
func pointTimex(tx string, start time.Time) string {
	if yearOfTimex(tx) > 0 {
		return timex.DateTimex(start)
	}
	return timex.DateParts{Month: int(start.Month()), Day: start.Day()}.String()
}
