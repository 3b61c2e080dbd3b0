package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrygo/chronoparse/plugin/datetime/model"
)

func TestDateTimeResolver(t *testing.T) {
	r := resolverOf(t, model.KindDateTime)

	runPointCases(t, r, model.KindDateTime, []pointCase{
		{text: "now", timex: "PRESENT_REF", future: ref},
		{text: "asap", timex: "FUTURE_REF", future: ref},
		{text: "tomorrow at 5pm", timex: "2016-11-08T17", future: at(2016, 11, 8, 17, 0, 0)},
		{text: "5pm on friday", timex: "XXXX-WXX-5T17", future: at(2016, 11, 11, 17, 0, 0), past: at(2016, 11, 4, 17, 0, 0)},
		{text: "tonight at 8", timex: "2016-11-07T20", future: at(2016, 11, 7, 20, 0, 0)},
		{text: "tomorrow morning at 9", timex: "2016-11-08T09", future: at(2016, 11, 8, 9, 0, 0)},
		{text: "end of tomorrow", timex: "2016-11-08T23:59:59", future: at(2016, 11, 8, 23, 59, 59)},
		{text: "end of the day", timex: "2016-11-07T23:59:59", future: at(2016, 11, 7, 23, 59, 59)},
		{text: "5 minutes ago", timex: "2016-11-06T23:55:00", future: at(2016, 11, 6, 23, 55, 0)},
		{text: "in 2 hours", timex: "2016-11-07T02:00:00", future: at(2016, 11, 7, 2, 0, 0)},
	})

	assertNoMatch(t, r, "tomorrow", "banana", "3 days ago", "in 3000000 hours")
}

func TestDateTimeResolverKeepsAmPm(t *testing.T) {
	res := resolverOf(t, model.KindDateTime).Resolve("tomorrow at 7", ref)
	require.True(t, res.Success)
	assert.Equal(t, "2016-11-08T07", res.Timex)
	assert.Equal(t, model.CommentAmPm, res.Comment)
	assert.Equal(t, map[string]string{model.ResDateTime: "2016-11-08 07:00:00"}, res.FutureResolution)
}

func TestDateTimePeriodResolver(t *testing.T) {
	r := resolverOf(t, model.KindDateTimePeriod)

	runRangeCases(t, r, model.KindDateTimePeriod, []rangeCase{
		{
			text: "tomorrow from 5 to 6pm", timex: "(2016-11-08T17,2016-11-08T18,PT1H)",
			futureStart: at(2016, 11, 8, 17, 0, 0), futureEnd: at(2016, 11, 8, 18, 0, 0),
		},
		{
			text: "tomorrow from 10pm to 2am", timex: "(2016-11-08T22,2016-11-09T02,PT4H)",
			futureStart: at(2016, 11, 8, 22, 0, 0), futureEnd: at(2016, 11, 9, 2, 0, 0),
		},
		{
			text: "friday from 10pm to 2am", timex: "(XXXX-WXX-5T22,XXXX-WXX-6T02,PT4H)",
			futureStart: at(2016, 11, 11, 22, 0, 0), futureEnd: at(2016, 11, 12, 2, 0, 0),
			pastStart: at(2016, 11, 4, 22, 0, 0), pastEnd: at(2016, 11, 5, 2, 0, 0),
		},
		{
			text: "from 5pm monday to 7am tuesday", timex: "(XXXX-WXX-1T17,XXXX-WXX-2T07,PT14H)",
			futureStart: at(2016, 11, 7, 17, 0, 0), futureEnd: at(2016, 11, 8, 7, 0, 0),
			pastStart: at(2016, 10, 31, 17, 0, 0), pastEnd: at(2016, 11, 1, 7, 0, 0),
		},
		{
			text: "tomorrow morning", timex: "2016-11-08TMO",
			futureStart: at(2016, 11, 8, 8, 0, 0), futureEnd: at(2016, 11, 8, 12, 0, 0),
		},
		{
			text: "tonight", timex: "2016-11-07TNI",
			futureStart: at(2016, 11, 7, 20, 0, 0), futureEnd: at(2016, 11, 7, 23, 59, 59),
		},
		{
			text: "late monday evening", timex: "XXXX-WXX-1TEV", mod: model.ModEnd,
			futureStart: at(2016, 11, 7, 18, 0, 0), futureEnd: at(2016, 11, 7, 20, 0, 0),
			pastStart: at(2016, 10, 31, 18, 0, 0), pastEnd: at(2016, 10, 31, 20, 0, 0),
		},
		{
			text: "next 2 hours", timex: "(2016-11-07T00:00:00,2016-11-07T02:00:00,PT2H)",
			futureStart: at(2016, 11, 7, 0, 0, 0), futureEnd: at(2016, 11, 7, 2, 0, 0),
		},
		{
			text: "within the hour", timex: "(2016-11-07T00:00:00,2016-11-07T01:00:00,PT1H)",
			futureStart: at(2016, 11, 7, 0, 0, 0), futureEnd: at(2016, 11, 7, 1, 0, 0),
		},
		{
			text: "in 2 hours", timex: "(2016-11-07T02:00:00,2016-11-07T03:00:00,PT1H)",
			futureStart: at(2016, 11, 7, 2, 0, 0), futureEnd: at(2016, 11, 7, 3, 0, 0),
		},
	})

	assertNoMatch(t, r, "tomorrow", "5pm", "banana", "next 3 days", "next 3000000 hours")
}
