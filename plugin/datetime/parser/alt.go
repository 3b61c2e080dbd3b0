package parser

import (
	"strings"
	"time"

	"github.com/hrygo/chronoparse/plugin/datetime/locale"
	"github.com/hrygo/chronoparse/plugin/datetime/model"
	"github.com/hrygo/chronoparse/plugin/datetime/timex"
)

// DateTimeAltResolver resolves "x or y" alternatives. Both sides must
// resolve as the same kind; each becomes a sub-resolution.
type DateTimeAltResolver struct {
	cfg            *locale.DateTimeAltConfig
	date           *DateResolver
	time           *TimeResolver
	dateTime       *DateTimeResolver
	datePeriod     *DatePeriodResolver
	timePeriod     *TimePeriodResolver
	dateTimePeriod *DateTimePeriodResolver
	*contracts
}

// Resolve implements Resolver.
func (r *DateTimeAltResolver) Resolve(text string, ref time.Time) model.Resolution {
	return r.ResolveWithContext(text, "", ref)
}

// ResolveWithContext resolves text; a side that fails on its own is
// retried with contextText in front of it ("next week monday or
// tuesday").
func (r *DateTimeAltResolver) ResolveWithContext(text, contextText string, ref time.Time) model.Resolution {
	res := r.resolve(normalize(text), normalize(contextText), timex.Wall(ref))
	if !res.Success {
		return model.NoMatch()
	}
	res.Kind = model.KindDateTimeAlt
	return res
}

type altCandidate struct {
	kind    model.Kind
	resolve strategy
}

func (r *DateTimeAltResolver) candidates() []altCandidate {
	return []altCandidate{
		{model.KindDate, r.date.resolve},
		{model.KindTime, r.time.resolve},
		{model.KindDateTime, r.dateTime.resolve},
		{model.KindDatePeriod, r.datePeriod.resolve},
		{model.KindTimePeriod, r.timePeriod.resolve},
		{model.KindDateTimePeriod, r.dateTimePeriod.resolve},
	}
}

func (r *DateTimeAltResolver) resolve(text, contextText string, ref time.Time) model.Resolution {
	m, ok := r.cfg.Or.Exact(text)
	if !ok {
		return model.NoMatch()
	}
	leftText, rightText := m.Group("left"), m.Group("right")

	for _, c := range r.candidates() {
		left := c.resolve(leftText, ref)
		if !left.Success && contextText != "" {
			left = c.resolve(contextText+" "+leftText, ref)
		}
		if !left.Success {
			continue
		}
		right := c.resolve(rightText, ref)
		if !right.Success && contextText != "" {
			right = c.resolve(contextText+" "+rightText, ref)
		}
		if !right.Success && c.kind == model.KindDateTime {
			right = r.timeOnDayOf(left, rightText, ref)
		}
		if !right.Success {
			continue
		}

		left, right = r.finish(c.kind, left), r.finish(c.kind, right)
		if !left.Success || !right.Success {
			return model.NoMatch()
		}
		return model.Resolution{
			Success:        true,
			Timex:          strings.Join([]string{left.Timex, right.Timex}, ","),
			FutureValue:    left.FutureValue,
			PastValue:      left.PastValue,
			SubResolutions: []model.Resolution{left, right},
		}
	}
	return model.NoMatch()
}

// timeOnDayOf resolves "monday 5pm or 6pm": the clock reading on the
// right takes the day of the date-time on the left.
func (r *DateTimeAltResolver) timeOnDayOf(left model.Resolution, text string, ref time.Time) model.Resolution {
	t := r.time.resolve(text, ref)
	if !t.Success {
		return model.NoMatch()
	}
	lf, fok := left.FutureValue.Instant()
	lp, pok := left.PastValue.Instant()
	tv, tok := t.FutureValue.Instant()
	if !fok || !pok || !tok {
		return model.NoMatch()
	}
	res := pointResolution(
		timex.CombineDateWithTime(datePart(left.Timex, lf), t.Timex),
		onDay(lf, tv),
		onDay(lp, tv),
	)
	res.Comment = t.Comment
	return res
}
