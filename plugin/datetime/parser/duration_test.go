package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrygo/chronoparse/plugin/datetime/model"
	"github.com/hrygo/chronoparse/plugin/datetime/timex"
)

func TestDurationResolver(t *testing.T) {
	r := resolverOf(t, model.KindDuration)

	tests := []struct {
		text    string
		timex   string
		seconds float64
		mod     string
	}{
		{"3 hours", "PT3H", 10800, ""},
		{"half year", "P0.5Y", 15768000, ""},
		{"half an hour", "PT0.5H", 1800, ""},
		{"two and a half hours", "PT2.5H", 9000, ""},
		{"a couple of days", "P2D", 172800, ""},
		{"all day", "P1D", 86400, ""},
		{"a fortnight", "P2W", 1209600, ""},
		{"1 month 3 days", "P1M3D", 2851200, ""},
		{"1 hour and 30 minutes", "PT1H30M", 5400, ""},
		{"2 days, 3 hours", "P2DT3H", 183600, ""},
		{"more than 2 weeks", "P2W", 1209600, model.ModMore},
		{"3 days or less", "P3D", 259200, model.ModLess},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			res := r.Resolve(tt.text, ref)
			require.True(t, res.Success, "%q did not resolve", tt.text)
			assert.Equal(t, model.KindDuration, res.Kind)
			assert.Equal(t, tt.timex, res.Timex)
			assert.Equal(t, tt.mod, res.Mod)
			got, ok := res.FutureValue.Scalar()
			require.True(t, ok)
			assert.InDelta(t, tt.seconds, got, 0.001)
			assert.True(t, res.FutureValue.Equal(res.PastValue))
			assert.Equal(t, timex.FormatNumber(tt.seconds), res.FutureResolution[model.ResDuration])
		})
	}

	assertNoMatch(t, r, "banana", "3 bananas", "tomorrow", "3 days and a banana", "0 days")
}
