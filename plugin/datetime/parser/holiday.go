package parser

import (
	"time"

	"github.com/hrygo/chronoparse/plugin/datetime/locale"
	"github.com/hrygo/chronoparse/plugin/datetime/model"
	"github.com/hrygo/chronoparse/plugin/datetime/timex"
)

// HolidayResolver resolves named holidays through per-holiday year
// functions.
type HolidayResolver struct {
	cfg *locale.HolidayConfig
	*contracts
}

// Resolve implements Resolver.
func (r *HolidayResolver) Resolve(text string, ref time.Time) model.Resolution {
	return r.finish(model.KindHoliday, r.resolve(normalize(text), timex.Wall(ref)))
}

func (r *HolidayResolver) resolve(text string, ref time.Time) model.Resolution {
	m, ok := r.cfg.Patterns.Exact(text)
	if !ok {
		return model.NoMatch()
	}
	fn, ok := r.cfg.Holiday(m.Group("holiday"))
	if !ok {
		return model.NoMatch()
	}
	today := timex.DateOf(ref)
	on := func(year int) time.Time {
		if year < 1 {
			return timex.MinDate
		}
		return fn(year)
	}
	single := func(d time.Time) model.Resolution {
		return pointResolution(timex.DateTimex(d), d, d)
	}

	switch {
	case m.Has("year"):
		y, _, _ := expandYear(r.cfg.CenturyPivot, m.Group("year"))
		return single(on(y))
	case m.Has("relyear"):
		return single(on(ref.Year() + r.cfg.Swift(m.Group("relyear"))))
	case m.Has("order"):
		// The occurrence in the reference year is compared with the
		// reference day itself: "next easter" on Easter Monday is next
		// year's, the day before Easter it is this year's.
		d := on(ref.Year())
		switch r.cfg.Swift(m.Group("order")) {
		case 1:
			if !timex.IsValid(d) || !d.After(today) {
				d = on(ref.Year() + 1)
			}
		case -1:
			if !timex.IsValid(d) || !d.Before(today) {
				d = on(ref.Year() - 1)
			}
		}
		return single(d)
	}

	current := on(ref.Year())
	future, past := current, current
	if !timex.IsValid(future) || future.Before(today) {
		future = on(ref.Year() + 1)
	}
	if !timex.IsValid(past) || !past.Before(today) {
		past = on(ref.Year() - 1)
	}
	anchor := current
	if !timex.IsValid(anchor) {
		anchor = future
	}
	tx := timex.DateParts{Month: int(anchor.Month()), Day: anchor.Day()}.String()
	return pointResolution(tx, future, past)
}
