package parser

import (
	"time"

	"github.com/hrygo/chronoparse/plugin/datetime/locale"
	"github.com/hrygo/chronoparse/plugin/datetime/model"
	"github.com/hrygo/chronoparse/plugin/datetime/timex"
)

// TimePeriodResolver resolves clock ranges on the reference day.
type TimePeriodResolver struct {
	cfg  *locale.TimePeriodConfig
	time *TimeResolver
	*contracts
}

// Resolve implements Resolver.
func (r *TimePeriodResolver) Resolve(text string, ref time.Time) model.Resolution {
	return r.finish(model.KindTimePeriod, r.resolve(normalize(text), timex.Wall(ref)))
}

func (r *TimePeriodResolver) resolve(text string, ref time.Time) model.Resolution {
	return firstMatch(text, ref, r.hourRange, r.timePoints, r.timeOfDay)
}

// hourRange resolves "between 5 and 6pm", "5-6pm", "from 5 to 6 pm".
func (r *TimePeriodResolver) hourRange(text string, ref time.Time) model.Resolution {
	m, ok := r.cfg.HourRanges.Exact(text)
	if !ok {
		return model.NoMatch()
	}
	left, ok := r.time.clockOf(m, "1")
	if !ok {
		return model.NoMatch()
	}
	right, ok := r.time.clockOf(m, "2")
	if !ok {
		return model.NoMatch()
	}
	return clockRange(ref, left, right)
}

// timePoints resolves two independently phrased clock readings.
func (r *TimePeriodResolver) timePoints(text string, ref time.Time) model.Resolution {
	m, ok := r.cfg.TimePoints.Exact(text)
	if !ok {
		return model.NoMatch()
	}
	left, ok := r.reading(m.Group("left"), ref)
	if !ok {
		return model.NoMatch()
	}
	right, ok := r.reading(m.Group("right"), ref)
	if !ok {
		return model.NoMatch()
	}
	return clockRange(ref, left, right)
}

func (r *TimePeriodResolver) reading(text string, ref time.Time) (clockReading, bool) {
	res := r.time.resolve(text, ref)
	if !res.Success {
		return clockReading{}, false
	}
	t, _ := res.FutureValue.Instant()
	h, m, s := clock(t)
	return clockReading{hour: h, minute: m, second: s, ambiguous: res.Comment == model.CommentAmPm}, true
}

// clockRange joins two readings. A side without a meridiem borrows it
// from the other side when that keeps the range in order.
func clockRange(ref time.Time, left, right clockReading) model.Resolution {
	switch {
	case left.ambiguous && !right.ambiguous:
		if pm := left.hour%12 + 12; right.hour >= 12 && pm <= right.hour {
			left.hour = pm
		}
		left.ambiguous = false
	case right.ambiguous && !left.ambiguous:
		if pm := right.hour%12 + 12; left.hour >= 12 && pm > left.hour && pm < 24 {
			right.hour = pm
		}
		right.ambiguous = false
	case left.ambiguous && right.ambiguous && left.hour > right.hour:
		// "9 to 5" runs into the afternoon; "12 to 1" starts at midnight.
		if left.hour == 12 {
			left.hour = 0
		} else {
			right.hour += 12
		}
	}

	today := timex.DateOf(ref)
	start := timex.At(today, left.hour, left.minute, left.second)
	end := timex.At(today, right.hour, right.minute, right.second)
	if !end.After(start) {
		end = end.AddDate(0, 0, 1)
	}
	tx := timex.RangeTimex(
		timex.TimeTimex(left.hour, left.minute, left.second),
		timex.TimeTimex(right.hour, right.minute, right.second),
		clockDuration(end.Sub(start)),
	)
	res := rangeResolution(tx, start, end)
	if left.ambiguous || right.ambiguous {
		res.Comment = model.CommentAmPm
	}
	return res
}

// timeOfDay resolves "morning", "early evening", "business hours".
func (r *TimePeriodResolver) timeOfDay(text string, ref time.Time) model.Resolution {
	m, ok := r.cfg.TimeOfDay.Exact(text)
	if !ok {
		return model.NoMatch()
	}
	band, ok := r.cfg.Band(m.Group("band"))
	if !ok {
		return model.NoMatch()
	}
	start, end, mod := bandBounds(timex.DateOf(ref), band, m)
	res := rangeResolution(band.Timex, start, end)
	res.Mod = mod
	return res
}

// bandBounds places a band on day. Early and late take the first and
// second half of the band, mid its middle half.
func bandBounds(day time.Time, b locale.Band, m locale.Match) (start, end time.Time, mod string) {
	from, to := b.Start, b.End
	switch {
	case m.Has("early"):
		to = from + (to-from)/2
		mod = model.ModStart
	case m.Has("late"):
		from += (to - from) / 2
		mod = model.ModEnd
	case m.Has("mid"):
		quarter := (to - from) / 4
		from, to = from+quarter, to-quarter
		mod = model.ModMid
	}
	start = timex.At(day, from, 0, 0)
	if to >= 24 {
		end = timex.At(day, 23, 59, 59)
	} else {
		end = timex.At(day, to, 0, 0)
	}
	return start, end, mod
}
