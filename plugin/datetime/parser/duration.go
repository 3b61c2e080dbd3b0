package parser

import (
	"strings"
	"time"

	"github.com/hrygo/chronoparse/plugin/datetime/locale"
	"github.com/hrygo/chronoparse/plugin/datetime/model"
	"github.com/hrygo/chronoparse/plugin/datetime/timex"
)

// DurationResolver resolves lengths of time: "3 days", "half an hour",
// "1 month 3 days". The value is the length in seconds.
type DurationResolver struct {
	cfg *locale.DurationConfig
	*contracts
}

// Resolve implements Resolver.
func (r *DurationResolver) Resolve(text string, ref time.Time) model.Resolution {
	return r.finish(model.KindDuration, r.resolve(normalize(text), timex.Wall(ref)))
}

func (r *DurationResolver) resolve(text string, ref time.Time) model.Resolution {
	if m, ok := r.cfg.ModPrefix.Begin(text); ok {
		res := r.resolve(text[m.Length:], ref)
		return withDurationMod(res, m)
	}
	if m, ok := r.cfg.ModSuffix.End(text); ok {
		res := r.resolve(text[:m.Index], ref)
		return withDurationMod(res, m)
	}
	if parts, ok := r.single(text); ok {
		return durationResolution(parts)
	}
	return r.merged(text)
}

func withDurationMod(res model.Resolution, m locale.Match) model.Resolution {
	if !res.Success {
		return res
	}
	switch {
	case m.Has("more"):
		res.Mod = model.ModMore
	case m.Has("less"):
		res.Mod = model.ModLess
	}
	return res
}

// single resolves a one-unit duration, trying the fixed phrasings before
// the plain number-unit form.
func (r *DurationResolver) single(text string) ([]timex.DurationPart, bool) {
	for _, s := range []func(string) (timex.DurationPart, bool){
		r.allUnit,
		r.fraction,
		r.andAHalf,
		r.inexact,
		r.numberUnit,
	} {
		if p, ok := s(text); ok {
			return []timex.DurationPart{p}, true
		}
	}
	return nil, false
}

func (r *DurationResolver) part(unitText string, value float64) (timex.DurationPart, bool) {
	u, ok := r.cfg.Unit(unitText)
	if !ok || value <= 0 {
		return timex.DurationPart{}, false
	}
	return timex.DurationPart{Unit: u.Unit, Value: value * u.Scale}, true
}

func (r *DurationResolver) allUnit(text string) (timex.DurationPart, bool) {
	m, ok := r.cfg.AllUnit.Exact(text)
	if !ok {
		return timex.DurationPart{}, false
	}
	return r.part(m.Group("unit"), 1)
}

func (r *DurationResolver) fraction(text string) (timex.DurationPart, bool) {
	m, ok := r.cfg.Fraction.Exact(text)
	if !ok {
		return timex.DurationPart{}, false
	}
	v, ok := r.cfg.Fractions[locale.Key(m.Group("frac"))]
	if !ok {
		return timex.DurationPart{}, false
	}
	return r.part(m.Group("unit"), v)
}

func (r *DurationResolver) andAHalf(text string) (timex.DurationPart, bool) {
	m, ok := r.cfg.AndAHalf.Exact(text)
	if !ok {
		return timex.DurationPart{}, false
	}
	n, ok := r.cfg.Numbers.ParseCardinal(m.Group("number"))
	if !ok {
		return timex.DurationPart{}, false
	}
	return r.part(m.Group("unit"), n+0.5)
}

func (r *DurationResolver) inexact(text string) (timex.DurationPart, bool) {
	m, ok := r.cfg.Inexact.Exact(text)
	if !ok {
		return timex.DurationPart{}, false
	}
	n, ok := r.cfg.InexactNumbers[locale.Key(m.Group("inexact"))]
	if !ok {
		return timex.DurationPart{}, false
	}
	return r.part(m.Group("unit"), n)
}

func (r *DurationResolver) numberUnit(text string) (timex.DurationPart, bool) {
	m, ok := r.cfg.NumberUnit.Exact(text)
	if !ok {
		return timex.DurationPart{}, false
	}
	n, ok := r.cfg.Numbers.ParseCardinal(m.Group("number"))
	if !ok {
		return timex.DurationPart{}, false
	}
	return r.part(m.Group("unit"), n)
}

// merged resolves a multi-unit duration. Every term must resolve on its
// own and the terms must tile the text with only separators between them.
func (r *DurationResolver) merged(text string) model.Resolution {
	atoms := r.cfg.Atom.FindAll(text)
	if len(atoms) < 2 {
		return model.NoMatch()
	}
	var parts []timex.DurationPart
	cursor := 0
	for _, a := range atoms {
		if !r.separator(text[cursor:a.Index]) {
			return model.NoMatch()
		}
		p, ok := r.single(a.Value)
		if !ok {
			return model.NoMatch()
		}
		parts = append(parts, p...)
		cursor = a.Index + a.Length
	}
	if strings.TrimSpace(text[cursor:]) != "" {
		return model.NoMatch()
	}
	return durationResolution(parts)
}

func (r *DurationResolver) separator(gap string) bool {
	if strings.TrimSpace(gap) == "" {
		return true
	}
	_, ok := r.cfg.AtomSeparator.Exact(gap)
	return ok
}

func durationResolution(parts []timex.DurationPart) model.Resolution {
	tx := timex.CompoundDurationTimex(parts)
	seconds, ok := timex.DurationSeconds(tx)
	if !ok {
		return model.NoMatch()
	}
	return model.Resolution{
		Success:     true,
		Timex:       tx,
		FutureValue: model.Scalar(seconds),
		PastValue:   model.Scalar(seconds),
	}
}
