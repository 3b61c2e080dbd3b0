package parser

import (
	"time"

	"github.com/hrygo/chronoparse/plugin/datetime/locale"
	"github.com/hrygo/chronoparse/plugin/datetime/model"
	"github.com/hrygo/chronoparse/plugin/datetime/timex"
)

// DateTimeResolver resolves a day combined with a clock reading.
type DateTimeResolver struct {
	cfg      *locale.DateTimeConfig
	date     *DateResolver
	time     *TimeResolver
	duration Resolver
	*contracts
}

// Resolve implements Resolver.
func (r *DateTimeResolver) Resolve(text string, ref time.Time) model.Resolution {
	return r.finish(model.KindDateTime, r.resolve(normalize(text), timex.Wall(ref)))
}

func (r *DateTimeResolver) resolve(text string, ref time.Time) model.Resolution {
	return firstMatch(text, ref,
		r.now,
		r.dateAndTime,
		r.dayBandWithTime,
		r.endOf,
		r.durationRelative,
	)
}

func (r *DateTimeResolver) now(text string, ref time.Time) model.Resolution {
	m, ok := r.cfg.Now.Exact(text)
	if !ok {
		return model.NoMatch()
	}
	tx, ok := r.cfg.NowTimex[locale.Key(m.Group("now"))]
	if !ok {
		tx = timex.PresentRef
	}
	return pointResolution(tx, ref, ref)
}

// trimConnectors drops the filler between the two halves of a split.
func trimConnectors(c *locale.Common, left, right string) (string, string) {
	if m, ok := c.ConnectorSuffix.End(left); ok {
		left = left[:m.Index]
	}
	if m, ok := c.ConnectorPrefix.Begin(right); ok {
		right = right[m.Length:]
	}
	return left, right
}

// dateAndTime searches the word boundaries of text for a date half and a
// time half, in either order.
func (r *DateTimeResolver) dateAndTime(text string, ref time.Time) model.Resolution {
	for _, sp := range splits(text) {
		left, right := trimConnectors(r.cfg.Common, sp[0], sp[1])
		if left == "" || right == "" {
			continue
		}
		if res := r.combine(left, right, ref); res.Success {
			return res
		}
		if res := r.combine(right, left, ref); res.Success {
			return res
		}
	}
	return model.NoMatch()
}

func (r *DateTimeResolver) combine(dateText, timeText string, ref time.Time) model.Resolution {
	t := r.time.resolve(timeText, ref)
	if !t.Success {
		return model.NoMatch()
	}
	d := r.date.resolve(dateText, ref)
	if !d.Success {
		return model.NoMatch()
	}
	tv, _ := t.FutureValue.Instant()
	df, fok := d.FutureValue.Instant()
	dp, pok := d.PastValue.Instant()
	if !fok || !pok {
		return r.violation(model.KindDateTime, "date half is not an instant")
	}
	h, m, s := clock(tv)
	res := pointResolution(timex.CombineDateWithTime(d.Timex, t.Timex), timex.At(df, h, m, s), timex.At(dp, h, m, s))
	res.Comment = t.Comment
	return res
}

// dayBandWithTime resolves "tonight at 8" and "tomorrow morning at 9".
// The band settles the meridiem of the clock reading.
func (r *DateTimeResolver) dayBandWithTime(text string, ref time.Time) model.Resolution {
	for _, sp := range splits(text) {
		left, right := trimConnectors(r.cfg.Common, sp[0], sp[1])
		for _, pair := range [][2]string{{left, right}, {right, left}} {
			day, band, _, ok := resolveDayBand(r.cfg.Common, r.date, pair[0], ref)
			if !ok {
				continue
			}
			t := r.time.resolve(pair[1], ref)
			if !t.Success {
				continue
			}
			tv, _ := t.FutureValue.Instant()
			h, m, s := clock(tv)
			if t.Comment == model.CommentAmPm && band.Start >= 12 && h < 12 {
				h += 12
			}
			df, _ := day.FutureValue.Instant()
			dp, _ := day.PastValue.Instant()
			return pointResolution(
				timex.CombineDateWithTime(day.Timex, timex.TimeTimex(h, m, s)),
				timex.At(df, h, m, s),
				timex.At(dp, h, m, s),
			)
		}
	}
	return model.NoMatch()
}

// endOf resolves "end of the day" and "end of tomorrow" to 23:59:59.
func (r *DateTimeResolver) endOf(text string, ref time.Time) model.Resolution {
	m, ok := r.cfg.EndOf.Exact(text)
	if !ok {
		return model.NoMatch()
	}
	var day model.Resolution
	if m.Has("today") {
		d := timex.DateOf(ref)
		day = pointResolution(timex.DateTimex(d), d, d)
	} else {
		day = r.date.resolve(m.Group("date"), ref)
	}
	if !day.Success {
		return model.NoMatch()
	}
	df, _ := day.FutureValue.Instant()
	dp, _ := day.PastValue.Instant()
	return pointResolution(
		timex.CombineDateWithTime(day.Timex, timex.TimeTimex(23, 59, 59)),
		timex.At(df, 23, 59, 59),
		timex.At(dp, 23, 59, 59),
	)
}

// durationRelative resolves "5 minutes ago" and "in 2 hours".
func (r *DateTimeResolver) durationRelative(text string, ref time.Time) model.Resolution {
	m, ok := r.cfg.DurationRelative.Exact(text)
	if !ok {
		return model.NoMatch()
	}
	dir, ok := r.cfg.Direction(m.Group("dir"))
	if !ok {
		return model.NoMatch()
	}
	dur := r.duration.Resolve(m.Group("duration"), ref)
	if !dur.Success || !timex.HasSubDayUnit(dur.Timex) {
		return model.NoMatch()
	}
	t, ok := timex.OffsetByTimex(ref, dur.Timex, dir > 0)
	if !ok {
		return model.NoMatch()
	}
	return pointResolution(timex.FullDateTimeTimex(t), t, t)
}

// resolveDayBand reads a day paired with a band of the day. It returns
// the day as a date resolution and the band match for early/late.
func resolveDayBand(c *locale.Common, date *DateResolver, text string, ref time.Time) (model.Resolution, locale.Band, locale.Match, bool) {
	today := timex.DateOf(ref)
	if name, ok := c.DayBandFixed[locale.Key(text)]; ok {
		band, ok := c.Band(name)
		if !ok {
			return model.NoMatch(), locale.Band{}, locale.Match{}, false
		}
		return pointResolution(timex.DateTimex(today), today, today), band, locale.Match{}, true
	}
	m, ok := c.DayBand.Exact(text)
	if !ok {
		return model.NoMatch(), locale.Band{}, locale.Match{}, false
	}
	band, ok := c.Band(m.Group("band"))
	if !ok {
		return model.NoMatch(), locale.Band{}, locale.Match{}, false
	}
	var day model.Resolution
	if offset, ok := c.DayBandDates[locale.Key(m.Group("day"))]; ok {
		d := today.AddDate(0, 0, offset)
		day = pointResolution(timex.DateTimex(d), d, d)
	} else {
		day = date.resolve(m.Group("day"), ref)
	}
	if !day.Success {
		return model.NoMatch(), locale.Band{}, locale.Match{}, false
	}
	return day, band, m, true
}
