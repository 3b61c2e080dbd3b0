package parser

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/hrygo/chronoparse/plugin/datetime/locale"
	"github.com/hrygo/chronoparse/plugin/datetime/model"
	"github.com/hrygo/chronoparse/plugin/datetime/timex"
)

// DateTimePeriodResolver resolves intervals with a clock component on a
// specific day.
type DateTimePeriodResolver struct {
	cfg        *locale.DateTimePeriodConfig
	date       *DateResolver
	time       *TimeResolver
	timePeriod *TimePeriodResolver
	dateTime   *DateTimeResolver
	duration   Resolver
	*contracts
}

// Resolve implements Resolver.
func (r *DateTimePeriodResolver) Resolve(text string, ref time.Time) model.Resolution {
	return r.finish(model.KindDateTimePeriod, r.resolve(normalize(text), timex.Wall(ref)))
}

func (r *DateTimePeriodResolver) resolve(text string, ref time.Time) model.Resolution {
	return firstMatch(text, ref,
		r.dateWithTimeRange,
		r.twoPoints,
		r.dayBand,
		r.relative,
	)
}

// dateWithTimeRange resolves "tomorrow from 5 to 6pm" and "between 5 and
// 6pm on friday".
func (r *DateTimePeriodResolver) dateWithTimeRange(text string, ref time.Time) model.Resolution {
	for _, sp := range splits(text) {
		left, right := trimConnectors(r.cfg.Common, sp[0], sp[1])
		if left == "" || right == "" {
			continue
		}
		if res := r.onDate(left, right, ref); res.Success {
			return res
		}
		if res := r.onDate(right, left, ref); res.Success {
			return res
		}
	}
	return model.NoMatch()
}

func (r *DateTimePeriodResolver) onDate(dateText, rangeText string, ref time.Time) model.Resolution {
	t := r.timePeriod.resolve(rangeText, ref)
	if !t.Success {
		return model.NoMatch()
	}
	d := r.date.resolve(dateText, ref)
	if !d.Success {
		return model.NoMatch()
	}
	ts, te, _ := t.FutureValue.Range()
	df, fok := d.FutureValue.Instant()
	dp, pok := d.PastValue.Instant()
	if !fok || !pok {
		return r.violation(model.KindDateTimePeriod, "date half is not an instant")
	}
	today := timex.DateOf(ref)
	from, to := ts.Sub(today), te.Sub(today)
	tx := timex.CombineDateWithTime(d.Timex, t.Timex)
	if rp, ok := timex.RangeTimexComponents(t.Timex); ok && to >= 24*time.Hour {
		endDate := nextDayTimex(d.Timex, df.Add(to), dp.Add(to))
		tx = timex.RangeTimex(d.Timex+rp.Begin, endDate+rp.End, rp.Duration)
	}
	res := dualRangeResolution(tx, df.Add(from), df.Add(to), dp.Add(from), dp.Add(to))
	res.Comment = t.Comment
	res.Mod = t.Mod
	return res
}

var weekdayTimexPattern = regexp.MustCompile(`^XXXX-WXX-([1-7])$`)

// nextDayTimex renders the date a clock range ends on when it runs past
// midnight, given the future and past readings of that end.
func nextDayTimex(dateTimex string, future, past time.Time) string {
	if m := weekdayTimexPattern.FindStringSubmatch(dateTimex); m != nil {
		return fmt.Sprintf("XXXX-WXX-%d", atoi(m[1])%7+1)
	}
	p, ok := timex.ParseDateTimex(dateTimex)
	switch {
	case !ok:
		return dateTimex
	case p.Year > 0 && p.Month > 0 && p.Day > 0:
		return timex.DateTimex(future)
	case p.Year == 0 && p.Month > 0 && p.Day > 0 && future.Month() == past.Month() && future.Day() == past.Day():
		return timex.DateParts{Month: int(future.Month()), Day: future.Day()}.String()
	}
	return dateTimex
}

// periodPoint is one side of a two-point period.
type periodPoint struct {
	res     model.Resolution
	hasDate bool
}

func (r *DateTimePeriodResolver) point(text string, ref time.Time) (periodPoint, bool) {
	if res := r.dateTime.resolve(text, ref); res.Success {
		return periodPoint{res: res, hasDate: true}, true
	}
	if res := r.time.resolve(text, ref); res.Success {
		return periodPoint{res: res}, true
	}
	if res := r.date.resolve(text, ref); res.Success {
		return periodPoint{res: res, hasDate: true}, true
	}
	return periodPoint{}, false
}

// twoPoints resolves "from 5pm monday to 7am tuesday" and "from today
// 3pm to 5pm". A side with only a clock reading takes the day of the
// other side.
func (r *DateTimePeriodResolver) twoPoints(text string, ref time.Time) model.Resolution {
	m, ok := r.cfg.TwoPoints.Exact(text)
	if !ok {
		return model.NoMatch()
	}
	left, ok := r.point(m.Group("left"), ref)
	if !ok {
		return model.NoMatch()
	}
	right, ok := r.point(m.Group("right"), ref)
	if !ok || (!left.hasDate && !right.hasDate) {
		return model.NoMatch()
	}

	lf, _ := left.res.FutureValue.Instant()
	lp, _ := left.res.PastValue.Instant()
	rf, _ := right.res.FutureValue.Instant()
	rp, _ := right.res.PastValue.Instant()
	begin, end := left.res.Timex, right.res.Timex

	switch {
	case !left.hasDate:
		begin = timex.CombineDateWithTime(datePart(end, rf), left.res.Timex)
		lf, lp = onDay(rf, lf), onDay(rp, lp)
	case !right.hasDate:
		end = timex.CombineDateWithTime(datePart(begin, lf), right.res.Timex)
		rf, rp = onDay(lf, rf), onDay(lp, rp)
		if !rf.After(lf) {
			rf, rp = rf.AddDate(0, 0, 1), rp.AddDate(0, 0, 1)
		}
	}
	if rf.Before(lf) || rp.Before(lp) {
		return model.NoMatch()
	}

	res := dualRangeResolution(timex.RangeTimex(begin, end, spanDuration(rf.Sub(lf))), lf, rf, lp, rp)
	if left.res.Comment == model.CommentAmPm || right.res.Comment == model.CommentAmPm {
		res.Comment = model.CommentAmPm
	}
	return res
}

// onDay moves the clock reading of t onto day.
func onDay(day, t time.Time) time.Time {
	h, m, s := clock(t)
	return timex.At(timex.DateOf(day), h, m, s)
}

// datePart returns the date half of a date or date-time timex.
func datePart(tx string, t time.Time) string {
	switch tx {
	case timex.PresentRef, timex.FutureRef, timex.PastRef:
		return timex.DateTimex(t)
	}
	if i := strings.Index(tx, "T"); i > 0 {
		return tx[:i]
	}
	return tx
}

// spanDuration renders an interval length, spelling out whole days.
func spanDuration(d time.Duration) string {
	days := int(d / (24 * time.Hour))
	rest := d % (24 * time.Hour)
	switch {
	case days == 0:
		return clockDuration(rest)
	case rest == 0:
		return fmt.Sprintf("P%dD", days)
	}
	return fmt.Sprintf("P%dD", days) + strings.TrimPrefix(clockDuration(rest), "P")
}

// dayBand resolves "tomorrow morning", "tonight" and "late monday
// evening". The timex is the day followed by the band code.
func (r *DateTimePeriodResolver) dayBand(text string, ref time.Time) model.Resolution {
	var marker locale.Match
	if m, ok := r.cfg.TimeOfDay.Exact(text); ok {
		marker, text = m, m.Group("rest")
	}
	day, band, m, ok := resolveDayBand(r.cfg.Common, r.date, text, ref)
	if !ok {
		return model.NoMatch()
	}
	if marker.Has("early") || marker.Has("late") || marker.Has("mid") {
		m = marker
	}
	df, fok := day.FutureValue.Instant()
	dp, pok := day.PastValue.Instant()
	if !fok || !pok {
		return r.violation(model.KindDateTimePeriod, "day half is not an instant")
	}
	fs, fe, mod := bandBounds(df, band, m)
	ps, pe, _ := bandBounds(dp, band, m)
	res := dualRangeResolution(datePart(day.Timex, df)+band.Timex, fs, fe, ps, pe)
	res.Mod = mod
	return res
}

// relative resolves "next 2 hours", "past 30 minutes", "within the hour"
// and "in 2 hours".
func (r *DateTimePeriodResolver) relative(text string, ref time.Time) model.Resolution {
	m, ok := r.cfg.Relative.Exact(text)
	if !ok {
		return model.NoMatch()
	}
	anchor, ok := r.cfg.Anchors[locale.Key(m.Group("order"))]
	if !ok {
		return model.NoMatch()
	}
	durText := m.Group("duration")
	if u, ok := r.cfg.Unit(m.Group("unit")); ok && durText == "" {
		durText = "1 " + m.Group("unit")
		if !u.Unit.IsSubDay() {
			return model.NoMatch()
		}
	}
	dur := r.duration.Resolve(durText, ref)
	if !dur.Success || !timex.HasSubDayUnit(dur.Timex) {
		return model.NoMatch()
	}
	parts, ok := timex.ParseDurationTimex(dur.Timex)
	if !ok {
		return r.violation(model.KindDateTimePeriod, "duration timex does not parse: "+dur.Timex)
	}

	tx := dur.Timex
	var start, end time.Time
	var sok, eok bool
	switch anchor {
	case locale.AnchorNext, locale.AnchorWithin:
		start, sok = ref, true
		end, eok = timex.OffsetByTimex(ref, dur.Timex, true)
	case locale.AnchorPast:
		end, eok = ref, true
		start, sok = timex.OffsetByTimex(ref, dur.Timex, false)
	case locale.AnchorIn:
		start, sok = timex.OffsetByTimex(ref, dur.Timex, true)
		tx = timex.DurationTimex(1, parts[len(parts)-1].Unit)
		end, eok = timex.OffsetByTimex(start, tx, true)
	}
	if !sok || !eok {
		return model.NoMatch()
	}
	return rangeResolution(timex.RangeTimex(timex.FullDateTimeTimex(start), timex.FullDateTimeTimex(end), tx), start, end)
}
