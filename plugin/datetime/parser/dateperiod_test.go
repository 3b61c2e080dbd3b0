package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrygo/chronoparse/plugin/datetime/model"
)

func TestDatePeriodResolver(t *testing.T) {
	r := resolverOf(t, model.KindDatePeriod)

	runRangeCases(t, r, model.KindDatePeriod, []rangeCase{
		// Relative units.
		{text: "next week", timex: "2016-W46", futureStart: day(2016, 11, 14), futureEnd: day(2016, 11, 21)},
		{text: "this month", timex: "2016-11", futureStart: day(2016, 11, 1), futureEnd: day(2016, 12, 1)},
		{text: "last year", timex: "2015", futureStart: day(2015, 1, 1), futureEnd: day(2016, 1, 1)},
		{text: "early next month", timex: "2016-12", mod: model.ModStart, futureStart: day(2016, 12, 1), futureEnd: day(2016, 12, 16)},
		{text: "this weekend", timex: "2016-W45-WE", futureStart: day(2016, 11, 12), futureEnd: day(2016, 11, 14)},
		{text: "year to date", timex: "(2016-01-01,2016-11-07,P311D)", futureStart: day(2016, 1, 1), futureEnd: day(2016, 11, 7)},
		{text: "rest of the week", timex: "(2016-11-07,2016-11-14,P7D)", futureStart: day(2016, 11, 7), futureEnd: day(2016, 11, 14)},
		{text: "the year after next", timex: "2018", futureStart: day(2018, 1, 1), futureEnd: day(2019, 1, 1)},
		{text: "next may", timex: "2017-05", futureStart: day(2017, 5, 1), futureEnd: day(2017, 6, 1)},

		// Months and years.
		{
			text: "may", timex: "XXXX-05",
			futureStart: day(2017, 5, 1), futureEnd: day(2017, 6, 1),
			pastStart: day(2016, 5, 1), pastEnd: day(2016, 6, 1),
		},
		{text: "march 2017", timex: "2017-03", futureStart: day(2017, 3, 1), futureEnd: day(2017, 4, 1)},
		{text: "late june 2016", timex: "2016-06", mod: model.ModEnd, futureStart: day(2016, 6, 16), futureEnd: day(2016, 7, 1)},
		{text: "2016", timex: "2016", futureStart: day(2016, 1, 1), futureEnd: day(2017, 1, 1)},
		{
			text: "in '35", timex: "1935|2035",
			futureStart: day(2035, 1, 1), futureEnd: day(2036, 1, 1),
			pastStart: day(1935, 1, 1), pastEnd: day(1936, 1, 1),
		},

		// Parts of a year.
		{text: "Q3 2016", timex: "(2016-07-01,2016-10-01,P3M)", futureStart: day(2016, 7, 1), futureEnd: day(2016, 10, 1)},
		{text: "next quarter", timex: "(2017-01-01,2017-04-01,P3M)", futureStart: day(2017, 1, 1), futureEnd: day(2017, 4, 1)},
		{text: "the first half of 2017", timex: "(2017-01-01,2017-07-01,P6M)", futureStart: day(2017, 1, 1), futureEnd: day(2017, 7, 1)},
		{
			text: "summer", timex: "SU",
			futureStart: day(2017, 6, 1), futureEnd: day(2017, 9, 1),
			pastStart: day(2016, 6, 1), pastEnd: day(2016, 9, 1),
		},
		{
			text: "winter", timex: "WI",
			futureStart: day(2016, 12, 1), futureEnd: day(2017, 3, 1),
			pastStart: day(2015, 12, 1), pastEnd: day(2016, 3, 1),
		},
		{text: "summer 2017", timex: "2017-SU", futureStart: day(2017, 6, 1), futureEnd: day(2017, 9, 1)},

		// Weeks.
		{text: "week 45", timex: "2016-W45", futureStart: day(2016, 11, 7), futureEnd: day(2016, 11, 14)},
		{
			text: "the first week of july", timex: "XXXX-07-W01",
			futureStart: day(2017, 7, 3), futureEnd: day(2017, 7, 10),
			pastStart: day(2016, 7, 4), pastEnd: day(2016, 7, 11),
		},
		{text: "the last week of 2016", timex: "2016-W52", futureStart: day(2016, 12, 26), futureEnd: day(2017, 1, 2)},

		// Decades and centuries.
		{text: "the 1990s", timex: "(1990-01-01,2000-01-01,P10Y)", futureStart: day(1990, 1, 1), futureEnd: day(2000, 1, 1)},
		{text: "the nineties", timex: "(1990-01-01,2000-01-01,P10Y)", futureStart: day(1990, 1, 1), futureEnd: day(2000, 1, 1)},
		{
			text: "the '30s", timex: "(1930-01-01,1940-01-01,P10Y)|(2030-01-01,2040-01-01,P10Y)",
			futureStart: day(2030, 1, 1), futureEnd: day(2040, 1, 1),
			pastStart: day(1930, 1, 1), pastEnd: day(1940, 1, 1),
		},
		{text: "next decade", timex: "(2020-01-01,2030-01-01,P10Y)", futureStart: day(2020, 1, 1), futureEnd: day(2030, 1, 1)},
		{text: "the 21st century", timex: "(2000-01-01,2100-01-01,P100Y)", futureStart: day(2000, 1, 1), futureEnd: day(2100, 1, 1)},

		// Durations anchored on today.
		{text: "next 3 days", timex: "(2016-11-08,2016-11-11,P3D)", futureStart: day(2016, 11, 8), futureEnd: day(2016, 11, 11)},
		{text: "past 2 weeks", timex: "(2016-10-24,2016-11-07,P2W)", futureStart: day(2016, 10, 24), futureEnd: day(2016, 11, 7)},
		{text: "within 2 weeks", timex: "(2016-11-07,2016-11-21,P2W)", futureStart: day(2016, 11, 7), futureEnd: day(2016, 11, 21)},
		{text: "in 2 weeks", timex: "(2016-11-21,2016-11-28,P1W)", futureStart: day(2016, 11, 21), futureEnd: day(2016, 11, 28)},

		// Two points.
		{
			text: "may 5 to 10", timex: "(XXXX-05-05,XXXX-05-10,P5D)",
			futureStart: day(2017, 5, 5), futureEnd: day(2017, 5, 10),
			pastStart: day(2016, 5, 5), pastEnd: day(2016, 5, 10),
		},
		{
			text: "from may 5 to june 10", timex: "(XXXX-05-05,XXXX-06-10,P36D)",
			futureStart: day(2017, 5, 5), futureEnd: day(2017, 6, 10),
			pastStart: day(2016, 5, 5), pastEnd: day(2016, 6, 10),
		},
		{text: "from march to may 2020", timex: "(2020-03-01,2020-05-01,P2M)", futureStart: day(2020, 3, 1), futureEnd: day(2020, 5, 1)},
		{
			text: "from march to the 5th", timex: "(XXXX-03-01,XXXX-03-05,P4D)",
			futureStart: day(2017, 3, 1), futureEnd: day(2017, 3, 5),
			pastStart: day(2016, 3, 1), pastEnd: day(2016, 3, 5),
		},
		{
			text: "from may 5 to the 10th", timex: "(XXXX-05-05,XXXX-05-10,P5D)",
			futureStart: day(2017, 5, 5), futureEnd: day(2017, 5, 10),
			pastStart: day(2016, 5, 5), pastEnd: day(2016, 5, 10),
		},
		{
			text: "from march 2017 to the 5th", timex: "(2017-03-01,2017-03-05,P4D)",
			futureStart: day(2017, 3, 1), futureEnd: day(2017, 3, 5),
		},
	})

	assertNoMatch(t, r, "banana", "tomorrow", "week 60", "next 2 hours")
	assertNoMatch(t, r, "next 5000000 business days", "in 20000 years", "past 3000 years")
}

func TestDatePeriodBusinessDays(t *testing.T) {
	res := resolverOf(t, model.KindDatePeriod).Resolve("next 3 business days", ref)
	require.True(t, res.Success)
	assert.Equal(t, "(2016-11-08,2016-11-11,P3BD)", res.Timex)
	assert.Equal(t, []time.Time{day(2016, 11, 8), day(2016, 11, 9), day(2016, 11, 10)}, res.DateList)

	res = resolverOf(t, model.KindDatePeriod).Resolve("past 2 business days", ref)
	require.True(t, res.Success)
	assert.Equal(t, []time.Time{day(2016, 11, 3), day(2016, 11, 4)}, res.DateList)
	start, end, _ := res.FutureValue.Range()
	assert.Equal(t, day(2016, 11, 3), start)
	assert.Equal(t, day(2016, 11, 5), end)
}

func TestDatePeriodWeekOf(t *testing.T) {
	res := resolverOf(t, model.KindDatePeriod).Resolve("the week of march 5, 2017", ref)
	require.True(t, res.Success)
	assert.Equal(t, "2017-03-05", res.Timex)
	assert.Equal(t, model.CommentWeekOf, res.Comment)
	start, end, _ := res.FutureValue.Range()
	assert.Equal(t, day(2017, 2, 27), start)
	assert.Equal(t, day(2017, 3, 6), end)
}
