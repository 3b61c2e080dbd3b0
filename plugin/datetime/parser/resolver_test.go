package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hrygo/chronoparse/plugin/datetime/model"
)

func TestContracts(t *testing.T) {
	bad := model.Resolution{
		Success:     true,
		Timex:       "2016-11-07",
		FutureValue: model.Range(day(2016, 11, 7), day(2016, 11, 8)),
		PastValue:   model.Range(day(2016, 11, 7), day(2016, 11, 8)),
	}

	t.Run("lenient", func(t *testing.T) {
		var seen []model.Kind
		c := &contracts{hook: func(kind model.Kind, _ string) { seen = append(seen, kind) }}
		res := c.finish(model.KindDate, bad)
		assert.False(t, res.Success)
		assert.Equal(t, []model.Kind{model.KindDate}, seen)
	})

	t.Run("strict", func(t *testing.T) {
		c := &contracts{strict: true}
		assert.Panics(t, func() { c.finish(model.KindDate, bad) })
	})

	t.Run("side maps", func(t *testing.T) {
		c := &contracts{}
		res := c.finish(model.KindDatePeriod, bad)
		assert.True(t, res.Success)
		assert.Equal(t, model.KindDatePeriod, res.Kind)
		assert.Equal(t, map[string]string{
			model.ResStartDate: "2016-11-07",
			model.ResEndDate:   "2016-11-08",
		}, res.FutureResolution)
	})

	t.Run("failure passes through", func(t *testing.T) {
		c := &contracts{strict: true}
		assert.Equal(t, model.NoMatch(), c.finish(model.KindDate, model.NoMatch()))
	})
}

func TestViolationHookOnEngine(t *testing.T) {
	var details []string
	e := newTestEngine(t, WithViolationHook(func(_ model.Kind, detail string) {
		details = append(details, detail)
	}))
	res, ok := e.Resolve(model.Span{Text: "next sunday", Kind: model.KindDate}, ref)
	assert.True(t, ok)
	assert.Equal(t, "2016-11-13", res.Timex)
	assert.Empty(t, details)
}

func TestSplits(t *testing.T) {
	assert.Equal(t, [][2]string{
		{"tomorrow", "at 5 pm"},
		{"tomorrow at", "5 pm"},
		{"tomorrow at 5", "pm"},
	}, splits("tomorrow at 5 pm"))
	assert.Empty(t, splits("tomorrow"))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "next friday", normalize("  Next \t FRIDAY "))
}

func TestClockDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{time.Hour, "PT1H"},
		{90 * time.Minute, "PT1H30M"},
		{30 * time.Minute, "PT30M"},
		{45 * time.Second, "PT45S"},
		{0, "PT0S"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, clockDuration(tt.in))
	}

	assert.Equal(t, "PT14H", spanDuration(14*time.Hour))
	assert.Equal(t, "P1D", spanDuration(24*time.Hour))
	assert.Equal(t, "P1DT2H", spanDuration(26*time.Hour))
}
