package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrygo/chronoparse/plugin/datetime/model"
)

func TestTimeResolver(t *testing.T) {
	r := resolverOf(t, model.KindTime)

	runPointCases(t, r, model.KindTime, []pointCase{
		{text: "5pm", timex: "T17", future: at(2016, 11, 7, 17, 0, 0)},
		{text: "at 5 p.m.", timex: "T17", future: at(2016, 11, 7, 17, 0, 0)},
		{text: "17:30", timex: "T17:30", future: at(2016, 11, 7, 17, 30, 0)},
		{text: "09:15:20", timex: "T09:15:20", future: at(2016, 11, 7, 9, 15, 20)},
		{text: "12am", timex: "T00", future: at(2016, 11, 7, 0, 0, 0)},
		{text: "8 in the evening", timex: "T20", future: at(2016, 11, 7, 20, 0, 0)},
		{text: "seven thirty pm", timex: "T19:30", future: at(2016, 11, 7, 19, 30, 0)},
		{text: "noon", timex: "T12", future: at(2016, 11, 7, 12, 0, 0)},
		{text: "midnight", timex: "T00", future: at(2016, 11, 7, 0, 0, 0)},
		{text: "half past four", timex: "T04:30", future: at(2016, 11, 7, 4, 30, 0)},
		{text: "quarter to five", timex: "T04:45", future: at(2016, 11, 7, 4, 45, 0)},
		{text: "at 7", timex: "T07", future: at(2016, 11, 7, 7, 0, 0)},
	})

	assertNoMatch(t, r, "25:00", "13pm", "banana", "tomorrow")
}

func TestTimeResolverAmbiguity(t *testing.T) {
	r := resolverOf(t, model.KindTime)
	tests := []struct {
		text      string
		ambiguous bool
	}{
		{"at 7", true},
		{"half past four", true},
		{"7am", false},
		{"19:00", false},
		{"noon", false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			res := r.Resolve(tt.text, ref)
			require.True(t, res.Success)
			if tt.ambiguous {
				assert.Equal(t, model.CommentAmPm, res.Comment)
			} else {
				assert.Empty(t, res.Comment)
			}
		})
	}
}

func TestTimePeriodResolver(t *testing.T) {
	r := resolverOf(t, model.KindTimePeriod)

	runRangeCases(t, r, model.KindTimePeriod, []rangeCase{
		{
			text: "between 5 and 6pm", timex: "(T17,T18,PT1H)",
			futureStart: at(2016, 11, 7, 17, 0, 0), futureEnd: at(2016, 11, 7, 18, 0, 0),
		},
		{
			text: "from 9am to 11am", timex: "(T09,T11,PT2H)",
			futureStart: at(2016, 11, 7, 9, 0, 0), futureEnd: at(2016, 11, 7, 11, 0, 0),
		},
		{
			text: "10pm to 2am", timex: "(T22,T02,PT4H)",
			futureStart: at(2016, 11, 7, 22, 0, 0), futureEnd: at(2016, 11, 8, 2, 0, 0),
		},
		{
			text: "from half past four to five pm", timex: "(T16:30,T17,PT30M)",
			futureStart: at(2016, 11, 7, 16, 30, 0), futureEnd: at(2016, 11, 7, 17, 0, 0),
		},
		{
			text: "9 to 5", timex: "(T09,T17,PT8H)",
			futureStart: at(2016, 11, 7, 9, 0, 0), futureEnd: at(2016, 11, 7, 17, 0, 0),
		},
		{
			text: "from 11 to 1", timex: "(T11,T13,PT2H)",
			futureStart: at(2016, 11, 7, 11, 0, 0), futureEnd: at(2016, 11, 7, 13, 0, 0),
		},
		{
			text: "12 to 1", timex: "(T00,T01,PT1H)",
			futureStart: at(2016, 11, 7, 0, 0, 0), futureEnd: at(2016, 11, 7, 1, 0, 0),
		},
		{
			text: "morning", timex: "TMO",
			futureStart: at(2016, 11, 7, 8, 0, 0), futureEnd: at(2016, 11, 7, 12, 0, 0),
		},
		{
			text: "in the afternoon", timex: "TAF",
			futureStart: at(2016, 11, 7, 12, 0, 0), futureEnd: at(2016, 11, 7, 16, 0, 0),
		},
		{
			text: "early morning", timex: "TMO", mod: model.ModStart,
			futureStart: at(2016, 11, 7, 8, 0, 0), futureEnd: at(2016, 11, 7, 10, 0, 0),
		},
		{
			text: "late night", timex: "TNI", mod: model.ModEnd,
			futureStart: at(2016, 11, 7, 22, 0, 0), futureEnd: at(2016, 11, 7, 23, 59, 59),
		},
		{
			text: "business hours", timex: "TBH",
			futureStart: at(2016, 11, 7, 8, 0, 0), futureEnd: at(2016, 11, 7, 18, 0, 0),
		},
	})

	assertNoMatch(t, r, "banana", "5pm", "next week")
}

func TestTimePeriodSideMaps(t *testing.T) {
	res := resolverOf(t, model.KindTimePeriod).Resolve("between 5 and 6pm", ref)
	require.True(t, res.Success)
	assert.Equal(t, map[string]string{
		model.ResStartTime: "17:00:00",
		model.ResEndTime:   "18:00:00",
	}, res.FutureResolution)
}
