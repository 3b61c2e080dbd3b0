package parser

import (
	"strings"
	"time"

	"github.com/hrygo/chronoparse/plugin/datetime/locale"
	"github.com/hrygo/chronoparse/plugin/datetime/model"
	"github.com/hrygo/chronoparse/plugin/datetime/timex"
)

// TimeResolver resolves clock readings. The value is the reading on the
// reference day.
type TimeResolver struct {
	cfg *locale.TimeConfig
	*contracts
}

// clockReading is a resolved time of day.
type clockReading struct {
	hour      int
	minute    int
	second    int
	ambiguous bool
}

// Resolve implements Resolver.
func (r *TimeResolver) Resolve(text string, ref time.Time) model.Resolution {
	return r.finish(model.KindTime, r.resolve(normalize(text), timex.Wall(ref)))
}

func (r *TimeResolver) resolve(text string, ref time.Time) model.Resolution {
	m, ok := r.cfg.Times.Exact(text)
	if !ok {
		return model.NoMatch()
	}
	c, ok := r.clockOf(m, "")
	if !ok {
		return model.NoMatch()
	}
	return clockResolution(ref, c)
}

func clockResolution(ref time.Time, c clockReading) model.Resolution {
	t := timex.At(timex.DateOf(ref), c.hour, c.minute, c.second)
	res := pointResolution(timex.TimeTimex(c.hour, c.minute, c.second), t, t)
	if c.ambiguous {
		res.Comment = model.CommentAmPm
	}
	return res
}

// clockOf reads the groups of a clock match. suffix selects numbered
// groups such as hour1 in range patterns.
func (r *TimeResolver) clockOf(m locale.Match, suffix string) (clockReading, bool) {
	g := func(name string) string { return m.Group(name + suffix) }

	if mid := g("mid"); mid != "" {
		h, ok := r.cfg.MidDay[locale.Key(mid)]
		return clockReading{hour: h}, ok
	}

	var c clockReading
	switch {
	case g("hour") != "":
		c.hour = atoi(g("hour"))
	case g("hourword") != "":
		n, ok := r.cfg.Numbers.ParseCardinal(g("hourword"))
		if !ok {
			return c, false
		}
		c.hour = int(n)
	default:
		return c, false
	}

	switch {
	case g("min") != "":
		c.minute = atoi(g("min"))
	case g("minword") != "":
		n, ok := r.cfg.Numbers.ParseCardinal(strings.TrimPrefix(g("minword"), "oh "))
		if !ok {
			return c, false
		}
		c.minute = int(n)
	}
	if g("sec") != "" {
		c.second = atoi(g("sec"))
	}

	if expr := g("minexpr"); expr != "" {
		mins, ok := r.minutes(expr)
		if !ok || mins <= 0 || mins >= 60 {
			return c, false
		}
		if r.cfg.Relatives[locale.Key(g("rel"))] < 0 {
			c.hour--
			if c.hour < 0 {
				c.hour = 23
			}
			if c.hour == 0 {
				c.hour = 12
			}
			c.minute = 60 - mins
		} else {
			c.minute = mins
		}
	}

	meridiem := locale.MeridiemNone
	if v := g("ampm"); v != "" {
		meridiem = r.meridiem(v)
	} else if v := g("desc"); v != "" {
		meridiem = r.meridiem(v)
	}
	c = applyMeridiem(c, meridiem)

	if c.hour < 0 || c.hour > 23 || c.minute < 0 || c.minute > 59 || c.second < 0 || c.second > 59 {
		return c, false
	}
	return c, true
}

func (r *TimeResolver) meridiem(v string) locale.Meridiem {
	key := locale.Key(strings.ReplaceAll(v, ".", ""))
	key = strings.TrimPrefix(key, "in the ")
	return r.cfg.Meridiems[key]
}

func (r *TimeResolver) minutes(expr string) (int, bool) {
	key := locale.Key(expr)
	if v, ok := r.cfg.MinuteWords[key]; ok {
		return v, true
	}
	key = strings.TrimSuffix(strings.TrimSuffix(key, " minutes"), " minute")
	n, ok := r.cfg.Numbers.ParseCardinal(key)
	return int(n), ok
}

// applyMeridiem moves a twelve-hour reading into the named half of the day.
// A reading with no meridiem and an hour of 1-12 is ambiguous.
func applyMeridiem(c clockReading, meridiem locale.Meridiem) clockReading {
	switch meridiem {
	case locale.MeridiemAM:
		if c.hour == 12 {
			c.hour = 0
		}
	case locale.MeridiemPM:
		if c.hour < 12 {
			c.hour += 12
		}
	case locale.MeridiemNight:
		switch {
		case c.hour == 12:
			c.hour = 0
		case c.hour >= 6 && c.hour < 12:
			c.hour += 12
		}
	default:
		c.ambiguous = c.hour >= 1 && c.hour <= 12
	}
	return c
}
