package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrygo/chronoparse/plugin/datetime/locale"
	"github.com/hrygo/chronoparse/plugin/datetime/locale/english"
	"github.com/hrygo/chronoparse/plugin/datetime/model"
)

func span(text string, kind model.Kind) model.Span {
	return model.Span{Text: text, Length: len(text), Kind: kind}
}

// dict builds an expected dictionary from key/value pairs in order.
func dict(pairs ...string) *model.ResolutionDictionary {
	d := model.NewDictionary()
	for i := 0; i+1 < len(pairs); i += 2 {
		d.Set(pairs[i], pairs[i+1])
	}
	return d
}

func TestMergedResolver(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		name   string
		span   model.Span
		kind   model.Kind
		timex  string
		values []*model.ResolutionDictionary
	}{
		{
			name: "plain date",
			span: span("march 5", model.KindDate),
			kind: model.KindDate, timex: "XXXX-03-05",
			values: []*model.ResolutionDictionary{
				dict("timex", "XXXX-03-05", "type", "date", "value", "2016-03-05"),
				dict("timex", "XXXX-03-05", "type", "date", "value", "2017-03-05"),
			},
		},
		{
			name: "stacked prefixes",
			span: span("before around 5pm", model.KindTime),
			kind: model.KindTimePeriod, timex: "T17",
			values: []*model.ResolutionDictionary{
				dict("timex", "T17", "Mod", "before-approx", "type", "timerange", "end", "17:00:00"),
			},
		},
		{
			name: "since",
			span: span("since 8pm", model.KindTime),
			kind: model.KindTimePeriod, timex: "T20",
			values: []*model.ResolutionDictionary{
				dict("timex", "T20", "Mod", "since", "type", "timerange", "start", "20:00:00"),
			},
		},
		{
			name: "trailing or later",
			span: span("march 5 or later", model.KindDate),
			kind: model.KindDatePeriod, timex: "XXXX-03-05",
			values: []*model.ResolutionDictionary{
				dict("timex", "XXXX-03-05", "Mod", "since", "type", "daterange", "start", "2016-03-05"),
				dict("timex", "XXXX-03-05", "Mod", "since", "type", "daterange", "start", "2017-03-05"),
			},
		},
		{
			name: "repeated prefix",
			span: span("since since may 5", model.KindDate),
			kind: model.KindDatePeriod, timex: "XXXX-05-05",
			values: []*model.ResolutionDictionary{
				dict("timex", "XXXX-05-05", "Mod", "since", "type", "daterange", "start", "2016-05-05"),
				dict("timex", "XXXX-05-05", "Mod", "since", "type", "daterange", "start", "2017-05-05"),
			},
		},
		{
			name: "prefix repeated by suffix",
			span: span("since may 5 or later", model.KindDate),
			kind: model.KindDatePeriod, timex: "XXXX-05-05",
			values: []*model.ResolutionDictionary{
				dict("timex", "XXXX-05-05", "Mod", "since", "type", "daterange", "start", "2016-05-05"),
				dict("timex", "XXXX-05-05", "Mod", "since", "type", "daterange", "start", "2017-05-05"),
			},
		},
		{
			name: "inclusive prefix",
			span: span("on or after tomorrow", model.KindDate),
			kind: model.KindDatePeriod, timex: "2016-11-08",
			values: []*model.ResolutionDictionary{
				dict("timex", "2016-11-08", "Mod", "since", "type", "daterange", "start", "2016-11-08"),
			},
		},
		{
			name: "ampm doubling",
			span: span("at 7", model.KindTime),
			kind: model.KindTime, timex: "T07",
			values: []*model.ResolutionDictionary{
				dict("timex", "T07", "type", "time", "value", "07:00:00"),
				dict("timex", "T19", "type", "time", "value", "19:00:00"),
			},
		},
		{
			name: "ampm doubling keeps range duration",
			span: span("9 to 5", model.KindTimePeriod),
			kind: model.KindTimePeriod, timex: "(T09,T17,PT8H)",
			values: []*model.ResolutionDictionary{
				dict("timex", "(T09,T17,PT8H)", "type", "timerange", "start", "09:00:00", "end", "17:00:00"),
				dict("timex", "(T21,T05,PT8H)", "type", "timerange", "start", "21:00:00", "end", "05:00:00"),
			},
		},
		{
			name: "double timex",
			span: span("in '35", model.KindDatePeriod),
			kind: model.KindDatePeriod, timex: "1935|2035",
			values: []*model.ResolutionDictionary{
				dict("timex", "1935", "type", "daterange", "start", "1935-01-01", "end", "1936-01-01"),
				dict("timex", "2035", "type", "daterange", "start", "2035-01-01", "end", "2036-01-01"),
			},
		},
		{
			name: "week of",
			span: span("the week of march 5, 2017", model.KindDatePeriod),
			kind: model.KindDatePeriod, timex: "2017-03-05",
			values: []*model.ResolutionDictionary{
				dict("timex", "2017-W09", "Comment", "WeekOf", "type", "daterange", "start", "2017-02-27", "end", "2017-03-06"),
			},
		},
		{
			name: "duration",
			span: span("3 hours", model.KindDuration),
			kind: model.KindDuration, timex: "PT3H",
			values: []*model.ResolutionDictionary{
				dict("timex", "PT3H", "type", "duration", "value", "10800"),
			},
		},
		{
			name: "set is not resolved",
			span: span("every monday", model.KindSet),
			kind: model.KindSet, timex: "XXXX-WXX-1",
			values: []*model.ResolutionDictionary{
				dict("timex", "XXXX-WXX-1", "type", "set", "value", model.NotResolved),
			},
		},
		{
			name: "time zone span",
			span: span("utc+8", model.KindTimeZone),
			kind: model.KindTimeZone, timex: "UTC+08:00",
			values: []*model.ResolutionDictionary{
				dict("timex", "UTC+08:00", "type", "timezone",
					"timezone", "UTC+08:00", "timezoneText", "utc+8", "utcOffsetMins", "480",
					"value", "UTC+08:00"),
			},
		},
		{
			name: "alternatives",
			span: span("5pm or 6pm", model.KindDateTimeAlt),
			kind: model.KindDateTimeAlt, timex: "T17,T18",
			values: []*model.ResolutionDictionary{
				dict("timex", "T17", "type", "time", "value", "17:00:00"),
				dict("timex", "T18", "type", "time", "value", "18:00:00"),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := e.Resolve(tt.span, ref)
			require.True(t, ok, "%q did not resolve", tt.span.Text)
			assert.Equal(t, tt.span.Text, got.Text)
			assert.Equal(t, tt.kind, got.ResolvedKind)
			assert.Equal(t, tt.timex, got.Timex)
			assert.Equal(t, tt.values, got.Dictionary.Values)
		})
	}
}

func TestMergedResolverBeforeKeepsDateAsEnd(t *testing.T) {
	e := newTestEngine(t)
	date := resolverOf(t, model.KindDate).Resolve("next friday", ref)
	require.True(t, date.Success)

	got, ok := e.Resolve(span("before next friday", model.KindDate), ref)
	require.True(t, ok)
	assert.Equal(t, model.KindDatePeriod, got.ResolvedKind)
	assert.Equal(t, date.Timex, got.Timex)
	require.Len(t, got.Dictionary.Values, 1)
	entry := got.Dictionary.Values[0]
	assert.False(t, entry.Has(model.KeyStart))
	end, _ := entry.Get(model.KeyEnd)
	assert.Equal(t, date.FutureResolution[model.ResDate], end)
}

func TestMergedResolverHints(t *testing.T) {
	e := newTestEngine(t)

	t.Run("possibly includes period end", func(t *testing.T) {
		s := span("before march 5", model.KindDate)
		s.Metadata.PossiblyIncludesPeriodEnd = true
		got, ok := e.Resolve(s, ref)
		require.True(t, ok)
		assert.Equal(t, model.ModUntil, got.Value.Mod)
		assert.Equal(t, []*model.ResolutionDictionary{
			dict("timex", "XXXX-03-05", "Mod", "until", "type", "daterange", "end", "2016-03-05"),
			dict("timex", "XXXX-03-05", "Mod", "until", "type", "daterange", "end", "2017-03-05"),
		}, got.Dictionary.Values)
	})

	t.Run("holiday tagged as period", func(t *testing.T) {
		s := span("christmas", model.KindDatePeriod)
		s.Metadata.IsHoliday = true
		got, ok := e.Resolve(s, ref)
		require.True(t, ok)
		assert.Equal(t, model.KindDate, got.ResolvedKind)
		assert.Equal(t, model.KindHoliday, got.Value.Kind)
		assert.Equal(t, []*model.ResolutionDictionary{
			dict("timex", "XXXX-12-25", "type", "date", "value", "2015-12-25"),
			dict("timex", "XXXX-12-25", "type", "date", "value", "2016-12-25"),
		}, got.Dictionary.Values)
	})

	t.Run("date tagged span falls back to holiday", func(t *testing.T) {
		got, ok := e.Resolve(span("thanksgiving 2017", model.KindDate), ref)
		require.True(t, ok)
		assert.Equal(t, "2017-11-23", got.Timex)
		assert.Equal(t, model.KindDate, got.ResolvedKind)
	})

	t.Run("duration with ago", func(t *testing.T) {
		s := span("3 days ago", model.KindDuration)
		s.Metadata.IsDurationWithAgoOrLater = true
		got, ok := e.Resolve(s, ref)
		require.True(t, ok)
		assert.Equal(t, model.KindDate, got.ResolvedKind)
		require.Len(t, got.Dictionary.Values, 1)
		v, _ := got.Dictionary.Values[0].Get(model.KeyValue)
		assert.Equal(t, "2016-11-04", v)
	})

	t.Run("attached time zone", func(t *testing.T) {
		s := model.Span{
			Text: "5pm est", Start: 10, Length: 7, Kind: model.KindTime,
			Attached: &model.Attached{
				TimeZone: &model.Span{Text: "est", Start: 14, Length: 3, Kind: model.KindTimeZone},
			},
		}
		got, ok := e.Resolve(s, ref)
		require.True(t, ok)
		assert.Equal(t, 10, got.Start)
		assert.Equal(t, "T17", got.Timex)
		require.NotNil(t, got.Value.TimeZone)
		assert.Equal(t, -300, got.Value.TimeZone.UtcOffsetMins)
		assert.Equal(t, []*model.ResolutionDictionary{
			dict("timex", "T17", "type", "time",
				"timezone", "UTC-05:00", "timezoneText", "est", "utcOffsetMins", "-300",
				"value", "17:00:00"),
		}, got.Dictionary.Values)
	})

	t.Run("alternative borrows context", func(t *testing.T) {
		s := span("5 or 6", model.KindDateTimeAlt)
		s.Attached = &model.Attached{Context: &model.Span{Text: "may", Kind: model.KindDatePeriod}}
		got, ok := e.Resolve(s, ref)
		require.True(t, ok)
		assert.Equal(t, "XXXX-05-05,XXXX-05-06", got.Timex)
		assert.Len(t, got.Dictionary.Values, 4)
	})
}

func TestMergedResolverSplitDateAndTime(t *testing.T) {
	opts := locale.DefaultOptions()
	opts.SplitDateAndTime = true
	e := New(english.New(opts))

	got, ok := e.Resolve(span("before 5pm", model.KindTime), ref)
	require.True(t, ok)
	assert.Equal(t, model.KindTime, got.ResolvedKind)
	assert.Equal(t, model.ModBefore, got.Value.Mod)

	got, ok = e.Resolve(span("tomorrow at 5pm", model.KindDateTime), ref)
	require.True(t, ok)
	assert.Equal(t, model.KindTime, got.ResolvedKind)
	assert.Equal(t, "2016-11-08T17", got.Timex)
}

func TestMergedResolverNoMatch(t *testing.T) {
	e := newTestEngine(t)
	for _, s := range []model.Span{
		span("banana", model.KindDate),
		span("before", model.KindDate),
		span("", model.KindTime),
		span("tomorrow", model.KindSet),
		span("5pm", model.Kind("lunar")),
	} {
		_, ok := e.Resolve(s, ref)
		assert.False(t, ok, "%q should not resolve as %s", s.Text, s.Kind)
	}
}
