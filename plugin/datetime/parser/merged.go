package parser

import (
	"strconv"
	"strings"
	"time"

	"github.com/hrygo/chronoparse/plugin/datetime/locale"
	"github.com/hrygo/chronoparse/plugin/datetime/model"
	"github.com/hrygo/chronoparse/plugin/datetime/timex"
)

// MergedResolver is the entry point for a tagged span. It strips boundary
// modifiers, dispatches to the resolver for the span's kind, reapplies the
// modifiers and renders the resolution dictionary.
type MergedResolver struct {
	cfg       *locale.MergedConfig
	opts      locale.Options
	resolvers map[model.Kind]Resolver
	holiday   Resolver
	timeZone  Resolver
	alt       *DateTimeAltResolver
}

type modifierPattern struct {
	pattern *locale.Pattern
	kind    model.ModifierKind
}

func (r *MergedResolver) prefixes() []modifierPattern {
	return []modifierPattern{
		{r.cfg.Before, model.ModifierBefore},
		{r.cfg.After, model.ModifierAfter},
		{r.cfg.Since, model.ModifierSince},
		{r.cfg.Until, model.ModifierUntil},
		{r.cfg.Around, model.ModifierAround},
		{r.cfg.Equal, model.ModifierEqual},
	}
}

// Resolve resolves span against ref. ok is false when no resolver
// accepts the span.
func (r *MergedResolver) Resolve(span model.Span, ref time.Time) (model.FinalParseResult, bool) {
	text, zone := r.splitTimeZone(span, ref)
	text, mods := r.stripModifiers(text)
	if strings.TrimSpace(text) == "" {
		return model.FinalParseResult{}, false
	}

	res := r.dispatch(span, text, ref)
	if !res.Success {
		return model.FinalParseResult{}, false
	}
	if zone != nil {
		res.TimeZone = zone
	}
	if span.Metadata.PossiblyIncludesPeriodEnd {
		for i := range mods {
			if mods[i].Kind == model.ModifierBefore {
				mods[i].Inclusive = true
			}
		}
	}
	res = applyModifiers(res, mods)

	kind := r.resolvedKind(res)
	return model.FinalParseResult{
		Text:         span.Text,
		Start:        span.Start,
		Length:       span.Length,
		ResolvedKind: kind,
		Timex:        res.Timex,
		Value:        res,
		Dictionary:   r.render(res, kind),
	}, true
}

// splitTimeZone cuts a nested time-zone span out of the parent text and
// resolves it.
func (r *MergedResolver) splitTimeZone(span model.Span, ref time.Time) (string, *model.TimeZoneInfo) {
	if span.Attached == nil || span.Attached.TimeZone == nil || span.Kind == model.KindTimeZone {
		return span.Text, nil
	}
	tz := span.Attached.TimeZone
	from := tz.Start - span.Start
	to := from + tz.Length
	if from < 0 || to > len(span.Text) || from >= to {
		return span.Text, nil
	}
	zone := r.timeZone.Resolve(tz.Text, ref)
	if !zone.Success {
		return span.Text, nil
	}
	return strings.TrimSpace(span.Text[:from] + " " + span.Text[to:]), zone.TimeZone
}

// stripModifiers removes up to two leading modifiers ("before around")
// and one trailing one ("or later"). Modifiers are returned in the order
// they were stripped; a repeat of one already stripped ("since since",
// "since may 5 or later") is dropped.
func (r *MergedResolver) stripModifiers(text string) (string, []model.Modifier) {
	var mods []model.Modifier
	for pass := 0; pass < 2; pass++ {
		stripped := false
		for _, p := range r.prefixes() {
			if p.pattern == nil {
				continue
			}
			m, ok := p.pattern.Begin(text)
			if !ok || m.Length >= len(text) {
				continue
			}
			mods = appendModifier(mods, model.Modifier{Kind: p.kind, Inclusive: m.Has("include")})
			text = text[m.Length:]
			stripped = true
			break
		}
		if !stripped {
			break
		}
	}

	suffixes := []struct {
		pattern *locale.Pattern
		kind    model.ModifierKind
	}{
		{r.cfg.SuffixAfter, model.ModifierAfter},
		{r.cfg.SuffixBefore, model.ModifierBefore},
	}
	for _, s := range suffixes {
		if s.pattern == nil {
			continue
		}
		if m, ok := s.pattern.End(text); ok && m.Index > 0 {
			mods = appendModifier(mods, model.Modifier{Kind: s.kind, Inclusive: true})
			text = text[:m.Index]
			break
		}
	}
	return text, mods
}

func appendModifier(mods []model.Modifier, m model.Modifier) []model.Modifier {
	for _, have := range mods {
		if have.Mod() == m.Mod() {
			return mods
		}
	}
	return append(mods, m)
}

// dispatch routes the stripped text to the resolver for the span's kind.
func (r *MergedResolver) dispatch(span model.Span, text string, ref time.Time) model.Resolution {
	if span.Metadata.IsHoliday {
		if res := r.holiday.Resolve(text, ref); res.Success {
			return res
		}
	}

	switch span.Kind {
	case model.KindDateTimeAlt:
		contextText := ""
		if span.Attached != nil && span.Attached.Context != nil {
			contextText = span.Attached.Context.Text
		}
		return r.alt.ResolveWithContext(text, contextText, ref)
	case model.KindDate:
		if res := r.resolvers[model.KindDate].Resolve(text, ref); res.Success {
			return res
		}
		return r.holiday.Resolve(text, ref)
	case model.KindDuration:
		if span.Metadata.IsDurationWithAgoOrLater {
			for _, kind := range []model.Kind{model.KindDate, model.KindDateTime} {
				if res := r.resolvers[kind].Resolve(text, ref); res.Success {
					return res
				}
			}
		}
	}

	rv, ok := r.resolvers[span.Kind]
	if !ok {
		return model.NoMatch()
	}
	return rv.Resolve(text, ref)
}

// applyModifiers reapplies stripped modifiers innermost first, so
// "before around X" carries the mod "before-approx".
func applyModifiers(res model.Resolution, mods []model.Modifier) model.Resolution {
	for i := len(mods) - 1; i >= 0; i-- {
		m := mods[i]
		res.Mod = model.CombineMod(res.Mod, m.Mod())
		if m.ChangesRange() {
			res.HasRangeChangingMod = true
		}
	}
	for i := range res.SubResolutions {
		res.SubResolutions[i] = applyModifiers(res.SubResolutions[i], mods)
	}
	return res
}

// resolvedKind is the kind reported to callers. A range-changing modifier
// promotes a point to a range unless date and time are split.
func (r *MergedResolver) resolvedKind(res model.Resolution) model.Kind {
	kind := res.Kind
	if kind == model.KindHoliday {
		kind = model.KindDate
	}
	if r.opts.SplitDateAndTime {
		if kind == model.KindDateTime {
			return model.KindTime
		}
		return kind
	}
	if res.HasRangeChangingMod {
		switch kind {
		case model.KindDate:
			return model.KindDatePeriod
		case model.KindTime:
			return model.KindTimePeriod
		case model.KindDateTime:
			return model.KindDateTimePeriod
		}
	}
	return kind
}

// render builds the value set. Alternatives render one group of entries
// per sub-resolution.
func (r *MergedResolver) render(res model.Resolution, kind model.Kind) model.ValueSet {
	if res.Kind == model.KindDateTimeAlt {
		var out model.ValueSet
		for _, sub := range res.SubResolutions {
			out.Values = append(out.Values, r.entries(sub, r.resolvedKind(sub))...)
		}
		return out
	}
	return model.ValueSet{Values: r.entries(res, kind)}
}

type renderedSide struct {
	timex  string
	values *model.ResolutionDictionary
}

func (r *MergedResolver) entries(res model.Resolution, kind model.Kind) []*model.ResolutionDictionary {
	future := sideEntry(res.Kind, res.FutureResolution, res.Mod)
	past := sideEntry(res.Kind, res.PastResolution, res.Mod)

	pastTimex, futureTimex := res.Timex, res.Timex
	if p, f, ok := timex.SplitDoubleTimex(res.Timex); ok {
		pastTimex, futureTimex = p, f
	}
	if res.Comment == model.CommentWeekOf {
		if start, ok := res.PastValue.Start(); ok && timex.IsValid(start) {
			pastTimex = timex.WeekTimex(start)
			futureTimex = pastTimex
		}
	}

	var sides []renderedSide
	if pastTimex == futureTimex && sameEntries(past, future) {
		sides = []renderedSide{{futureTimex, future}}
	} else {
		sides = []renderedSide{{pastTimex, past}, {futureTimex, future}}
	}

	var out []*model.ResolutionDictionary
	for _, s := range sides {
		if res.Comment == model.CommentAmPm {
			out = append(out,
				r.entry(res, kind, s.timex, s.values, false),
				r.entry(res, kind, timex.AllToPM(s.timex), s.values, true),
			)
			continue
		}
		out = append(out, r.entry(res, kind, s.timex, s.values, false))
	}
	return out
}

func (r *MergedResolver) entry(res model.Resolution, kind model.Kind, tx string, values *model.ResolutionDictionary, pm bool) *model.ResolutionDictionary {
	d := model.NewDictionary()
	d.Set(model.KeyTimex, tx)
	if res.Comment != model.CommentAmPm {
		d.Add(model.KeyComment, res.Comment)
	}
	d.Add(model.KeyMod, res.Mod)
	d.Set(model.KeyType, string(kind))
	if res.IsLunar {
		d.Set(model.KeyIsLunar, strconv.FormatBool(res.IsLunar))
	}
	if len(res.DateList) > 0 {
		dates := make([]string, len(res.DateList))
		for i, day := range res.DateList {
			dates[i] = day.Format(timex.DateLayout)
		}
		d.Set(model.KeyList, strings.Join(dates, ","))
	}
	if res.TimeZone != nil {
		d.Set(model.KeyTimezone, res.TimeZone.Value)
		d.Set(model.KeyTimezoneText, res.TimeZone.Text)
		d.Set(model.KeyUtcOffsetMins, strconv.Itoa(res.TimeZone.UtcOffsetMins))
	}
	if values.Len() == 0 && res.TimeZone == nil {
		d.Set(model.KeyValue, model.NotResolved)
		return d
	}
	for _, k := range values.Keys() {
		v, _ := values.Get(k)
		if pm {
			v = pmValue(v)
		}
		d.Set(k, v)
	}
	return d
}

// pmValue moves the clock half of a "15:04:05" or "2006-01-02 15:04:05"
// value across noon.
func pmValue(v string) string {
	if day, clockText, ok := strings.Cut(v, " "); ok {
		return day + " " + timex.ToPM(clockText)
	}
	return timex.ToPM(v)
}

// sideEntry picks the value, start and end of one side according to the
// original kind and the mod.
func sideEntry(kind model.Kind, side map[string]string, mod string) *model.ResolutionDictionary {
	d := model.NewDictionary()
	switch kind {
	case model.KindDate, model.KindHoliday:
		addSingle(d, side[model.ResDate], mod)
	case model.KindTime:
		addSingle(d, side[model.ResTime], mod)
	case model.KindDateTime:
		addSingle(d, side[model.ResDateTime], mod)
	case model.KindDatePeriod:
		addPeriod(d, side[model.ResStartDate], side[model.ResEndDate], mod)
	case model.KindTimePeriod:
		addPeriod(d, side[model.ResStartTime], side[model.ResEndTime], mod)
	case model.KindDateTimePeriod:
		addPeriod(d, side[model.ResStartDateTime], side[model.ResEndDateTime], mod)
	case model.KindDuration:
		d.Add(model.KeyValue, side[model.ResDuration])
	case model.KindTimeZone:
		d.Add(model.KeyValue, side[model.ResTimeZone])
	}
	return d
}

func addSingle(d *model.ResolutionDictionary, v, mod string) {
	switch {
	case strings.HasPrefix(mod, model.ModBefore), strings.HasPrefix(mod, model.ModUntil):
		d.Add(model.KeyEnd, v)
	case strings.HasPrefix(mod, model.ModAfter), strings.HasPrefix(mod, model.ModSince):
		d.Add(model.KeyStart, v)
	default:
		d.Add(model.KeyValue, v)
	}
}

func addPeriod(d *model.ResolutionDictionary, start, end, mod string) {
	switch {
	case strings.HasPrefix(mod, model.ModBefore):
		if strings.HasSuffix(mod, model.ModEnd) {
			d.Add(model.KeyEnd, end)
		} else {
			d.Add(model.KeyEnd, start)
		}
	case strings.HasPrefix(mod, model.ModAfter):
		if strings.HasSuffix(mod, model.ModStart) {
			d.Add(model.KeyStart, start)
		} else {
			d.Add(model.KeyStart, end)
		}
	case strings.HasPrefix(mod, model.ModSince):
		d.Add(model.KeyStart, start)
	case strings.HasPrefix(mod, model.ModUntil):
		d.Add(model.KeyEnd, end)
	default:
		d.Add(model.KeyStart, start)
		d.Add(model.KeyEnd, end)
	}
}

func sameEntries(a, b *model.ResolutionDictionary) bool {
	if a.Len() != b.Len() {
		return false
	}
	for _, k := range a.Keys() {
		av, _ := a.Get(k)
		bv, ok := b.Get(k)
		if !ok || av != bv {
			return false
		}
	}
	return true
}
