package parser

import (
	"time"

	"github.com/hrygo/chronoparse/plugin/datetime/locale"
	"github.com/hrygo/chronoparse/plugin/datetime/model"
	"github.com/hrygo/chronoparse/plugin/datetime/timex"
)

// SetResolver resolves recurring expressions. A set has no calendar value
// of its own; both sides carry the text "Set: <timex>".
type SetResolver struct {
	cfg            *locale.SetConfig
	duration       Resolver
	date           *DateResolver
	time           *TimeResolver
	timePeriod     *TimePeriodResolver
	dateTime       *DateTimeResolver
	dateTimePeriod *DateTimePeriodResolver
	*contracts
}

// Resolve implements Resolver.
func (r *SetResolver) Resolve(text string, ref time.Time) model.Resolution {
	return r.finish(model.KindSet, r.resolve(normalize(text), timex.Wall(ref)))
}

func (r *SetResolver) resolve(text string, ref time.Time) model.Resolution {
	return firstMatch(text, ref,
		r.periodic,
		r.eachUnit,
		r.everyN,
		r.everyOther,
		r.everyWeekday,
		r.eachDay,
		r.each,
	)
}

func setResolution(tx string) model.Resolution {
	v := model.Text("Set: " + tx)
	return model.Resolution{Success: true, Timex: tx, FutureValue: v, PastValue: v}
}

// periodic resolves "daily", "biweekly", "annually".
func (r *SetResolver) periodic(text string, _ time.Time) model.Resolution {
	m, ok := r.cfg.Periodic.Exact(text)
	if !ok {
		return model.NoMatch()
	}
	tx, ok := r.cfg.PeriodicTimex[locale.Key(m.Group("periodic"))]
	if !ok {
		return model.NoMatch()
	}
	return setResolution(tx)
}

func (r *SetResolver) unitTimex(unitText string, n float64) (string, bool) {
	u, ok := r.cfg.Unit(unitText)
	if !ok || n <= 0 {
		return "", false
	}
	return timex.DurationTimex(n*u.Scale, u.Unit), true
}

// eachUnit resolves "every week" and "each hour".
func (r *SetResolver) eachUnit(text string, _ time.Time) model.Resolution {
	m, ok := r.cfg.EachUnit.Exact(text)
	if !ok {
		return model.NoMatch()
	}
	tx, ok := r.unitTimex(m.Group("unit"), 1)
	if !ok {
		return model.NoMatch()
	}
	return setResolution(tx)
}

// everyN resolves "every 3 days" and "every two weeks".
func (r *SetResolver) everyN(text string, _ time.Time) model.Resolution {
	m, ok := r.cfg.EveryN.Exact(text)
	if !ok {
		return model.NoMatch()
	}
	n, ok := r.cfg.Numbers.ParseCardinal(m.Group("number"))
	if !ok {
		return model.NoMatch()
	}
	tx, ok := r.unitTimex(m.Group("unit"), n)
	if !ok {
		return model.NoMatch()
	}
	return setResolution(tx)
}

// everyOther resolves "every other week".
func (r *SetResolver) everyOther(text string, _ time.Time) model.Resolution {
	m, ok := r.cfg.EveryOther.Exact(text)
	if !ok {
		return model.NoMatch()
	}
	tx, ok := r.unitTimex(m.Group("unit"), 2)
	if !ok {
		return model.NoMatch()
	}
	return setResolution(tx)
}

// everyWeekday resolves "every monday", "mondays" and "every monday at
// 5pm".
func (r *SetResolver) everyWeekday(text string, ref time.Time) model.Resolution {
	m, ok := r.cfg.EveryWeekday.Exact(text)
	if !ok {
		return model.NoMatch()
	}
	wd, ok := r.cfg.Weekday(m.Group("weekday"))
	if !ok {
		return model.NoMatch()
	}
	tx := timex.WeekdayTimex(wd)
	if clockText := m.Group("time"); clockText != "" {
		clockTx, ok := r.clockTimex(clockText, ref)
		if !ok {
			return model.NoMatch()
		}
		tx = timex.CombineDateWithTime(tx, clockTx)
	}
	return setResolution(tx)
}

// eachDay resolves "every day at 5pm" and "daily at 9" to the clock
// timex alone.
func (r *SetResolver) eachDay(text string, ref time.Time) model.Resolution {
	m, ok := r.cfg.EachDay.Exact(text)
	if !ok {
		return model.NoMatch()
	}
	tx, ok := r.clockTimex(m.Group("time"), ref)
	if !ok {
		return model.NoMatch()
	}
	return setResolution(tx)
}

func (r *SetResolver) clockTimex(text string, ref time.Time) (string, bool) {
	if res := r.time.resolve(text, ref); res.Success {
		return res.Timex, true
	}
	if res := r.timePeriod.resolve(text, ref); res.Success {
		return res.Timex, true
	}
	return "", false
}

// each resolves "each <expression>" by handing the rest to the other
// resolvers and reusing their timex.
func (r *SetResolver) each(text string, ref time.Time) model.Resolution {
	m, ok := r.cfg.Each.Exact(text)
	if !ok {
		return model.NoMatch()
	}
	rest := m.Group("rest")
	for _, resolve := range []strategy{
		r.duration.Resolve,
		r.time.resolve,
		r.timePeriod.resolve,
		r.date.resolve,
		r.dateTime.resolve,
		r.dateTimePeriod.resolve,
	} {
		if res := resolve(rest, ref); res.Success {
			return setResolution(res.Timex)
		}
	}
	return model.NoMatch()
}
