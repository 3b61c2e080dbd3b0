package timex

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

// 2016-11-07 is a Monday.
var ref = date(2016, 11, 7)

func TestSafeDate(t *testing.T) {
	tests := []struct {
		name  string
		y     int
		m     int
		d     int
		valid bool
	}{
		{"regular", 2016, 11, 7, true},
		{"leap day", 2016, 2, 29, true},
		{"leap day in common year", 2015, 2, 29, false},
		{"century common year", 1900, 2, 29, false},
		{"day overflow", 2016, 4, 31, false},
		{"month overflow", 2016, 13, 1, false},
		{"zero day", 2016, 1, 0, false},
		{"year zero", 0, 1, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SafeDate(tt.y, tt.m, tt.d)
			assert.Equal(t, tt.valid, IsValid(got))
			if tt.valid {
				assert.Equal(t, date(tt.y, tt.m, tt.d), got)
			}
		})
	}

	assert.False(t, IsValid(SafeDateTime(2016, 11, 7, 24, 0, 0)))
	assert.Equal(t, time.Date(2016, 11, 7, 17, 30, 0, 0, time.UTC), SafeDateTime(2016, 11, 7, 17, 30, 0))
	assert.Equal(t, 29, DaysInMonth(2000, 2))
	assert.Equal(t, 0, DaysInMonth(2000, 13))
}

func TestWall(t *testing.T) {
	shanghai := time.FixedZone("CST", 8*3600)
	got := Wall(time.Date(2016, 11, 7, 9, 15, 0, 42, shanghai))
	assert.Equal(t, time.Date(2016, 11, 7, 9, 15, 0, 0, time.UTC), got)
}

func TestWeekdays(t *testing.T) {
	assert.Equal(t, date(2016, 11, 13), ThisWeekday(ref, time.Sunday))
	assert.Equal(t, date(2016, 11, 7), ThisWeekday(ref, time.Monday))
	assert.Equal(t, date(2016, 11, 14), NextWeekday(ref, time.Monday))
	assert.Equal(t, date(2016, 11, 13), NextWeekday(ref, time.Sunday))
	assert.Equal(t, date(2016, 11, 4), LastWeekday(ref, time.Friday))
	assert.Equal(t, date(2016, 10, 31), LastWeekday(ref, time.Monday))
	assert.Equal(t, date(2016, 11, 7), MondayOf(date(2016, 11, 13)))
	assert.Equal(t, 7, ISOWeekday(time.Sunday))
	assert.Equal(t, 1, ISOWeekday(time.Monday))
}

func TestNthWeekday(t *testing.T) {
	assert.Equal(t, date(2016, 11, 24), NthWeekdayOf(2016, 11, time.Thursday, 4))
	assert.Equal(t, date(2016, 2, 29), NthWeekdayOf(2016, 2, time.Monday, 5))
	assert.False(t, IsValid(NthWeekdayOf(2016, 11, time.Monday, 5)))
	assert.False(t, IsValid(NthWeekdayOf(2016, 11, time.Monday, 0)))
	assert.Equal(t, date(2016, 5, 30), LastWeekdayOf(2016, 5, time.Monday))
}

func TestWeeks(t *testing.T) {
	monday := WeekOfMonthMonday(2016, 11, 1)
	assert.Equal(t, date(2016, 10, 31), monday)
	assert.Equal(t, 1, WeekOfMonthIndex(monday))
	assert.False(t, IsValid(WeekOfMonthMonday(2016, 11, 6)))
	assert.Equal(t, date(2016, 11, 21), LastWeekOfMonthMonday(2016, 11))

	assert.Equal(t, date(2016, 1, 4), WeekOfYearMonday(2016, 1))
	assert.Equal(t, date(2016, 12, 26), LastWeekOfYearMonday(2016))
	assert.False(t, IsValid(WeekOfYearMonday(2016, 53)))

	assert.Equal(t, "2016-W45", WeekTimex(ref))
	assert.Equal(t, "2016-W45-WE", WeekendTimex(ref))
	assert.Equal(t, "XXXX-07-W03", WeekOfMonthTimex(0, 7, 3))
}

func TestBusinessDays(t *testing.T) {
	friday := date(2016, 11, 4)
	end, days := AddBusinessDays(friday, 1)
	assert.Equal(t, ref, end)
	assert.Equal(t, []time.Time{ref}, days)

	end, days = AddBusinessDays(ref, -2)
	assert.Equal(t, date(2016, 11, 3), end)
	assert.Equal(t, []time.Time{friday, date(2016, 11, 3)}, days)

	end, days = AddBusinessDays(ref, 0)
	assert.Equal(t, ref, end)
	assert.Empty(t, days)

	assert.False(t, IsBusinessDay(date(2016, 11, 6)))
}

func TestCenturyPivot(t *testing.T) {
	tests := []struct {
		in        int
		future    int
		past      int
		ambiguous bool
	}{
		{5, 2005, 2005, false},
		{29, 2029, 2029, false},
		{30, 2030, 1930, true},
		{35, 2035, 1935, true},
		{40, 1940, 1940, false},
		{99, 1999, 1999, false},
	}
	for _, tt := range tests {
		future, past, ambiguous := DefaultCenturyPivot.Expand(tt.in)
		assert.Equal(t, tt.future, future, "future of %d", tt.in)
		assert.Equal(t, tt.past, past, "past of %d", tt.in)
		assert.Equal(t, tt.ambiguous, ambiguous, "ambiguity of %d", tt.in)
	}
}

func TestDurationTimex(t *testing.T) {
	assert.Equal(t, "P0.5Y", DurationTimex(0.5, Year))
	assert.Equal(t, "PT1.5H", DurationTimex(1.5, Hour))
	assert.Equal(t, "P1M3D", CompoundDurationTimex([]DurationPart{{Day, 3}, {Month, 1}}))
	assert.Equal(t, "P1DT2H", CompoundDurationTimex([]DurationPart{{Hour, 2}, {Day, 1}}))
	assert.Equal(t, "PT30M", CompoundDurationTimex([]DurationPart{{Minute, 30}}))
	assert.Equal(t, "P5D", CompoundDurationTimex([]DurationPart{{Day, 2}, {Day, 3}}))
}

func TestParseDurationTimex(t *testing.T) {
	parts, ok := ParseDurationTimex("P1M3D")
	require.True(t, ok)
	assert.Equal(t, []DurationPart{{Month, 1}, {Day, 3}}, parts)

	parts, ok = ParseDurationTimex("P1DT30M")
	require.True(t, ok)
	assert.Equal(t, []DurationPart{{Day, 1}, {Minute, 30}}, parts)

	parts, ok = ParseDurationTimex("P2BD")
	require.True(t, ok)
	assert.Equal(t, []DurationPart{{BusinessDay, 2}}, parts)

	for _, bad := range []string{"", "P", "P1X", "1D", "P1D2"} {
		_, ok := ParseDurationTimex(bad)
		assert.False(t, ok, bad)
	}

	seconds, ok := DurationSeconds("P1M3D")
	require.True(t, ok)
	assert.InDelta(t, 2851200, seconds, 0.001)
	seconds, ok = DurationSeconds("P0.5Y")
	require.True(t, ok)
	assert.InDelta(t, 15768000, seconds, 0.001)

	assert.True(t, HasSubDayUnit("PT1H"))
	assert.False(t, HasSubDayUnit("P1D"))
}

func TestOffsetByTimex(t *testing.T) {
	tests := []struct {
		duration string
		forward  bool
		want     time.Time
	}{
		{"P1M", true, date(2016, 12, 7)},
		{"P2D", false, date(2016, 11, 5)},
		{"P1W", true, date(2016, 11, 14)},
		{"P1BD", false, date(2016, 11, 4)},
		{"PT1.5H", true, time.Date(2016, 11, 7, 1, 30, 0, 0, time.UTC)},
		{"P1Y1D", true, date(2017, 11, 8)},
	}
	for _, tt := range tests {
		t.Run(tt.duration, func(t *testing.T) {
			got, ok := OffsetByTimex(ref, tt.duration, tt.forward)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, d := range []string{"soon", "P20000Y", "PT3000000H", "P5000000BD", "P12000000W"} {
		_, ok := OffsetByTimex(ref, d, true)
		assert.False(t, ok, d)
	}
	_, ok := OffsetByTimex(ref, "P2017Y", false)
	assert.False(t, ok, "before year 1")
}

func TestDateTimex(t *testing.T) {
	assert.Equal(t, "XXXX-05-15", DateParts{Month: 5, Day: 15}.String())
	assert.Equal(t, "2016-XX-XX", DateParts{Year: 2016}.String())
	assert.Equal(t, "2016-11-07", DateTimex(ref))
	assert.Equal(t, "XXXX-11", MonthTimex(0, 11))
	assert.Equal(t, "2016-11", MonthTimex(2016, 11))
	assert.Equal(t, "2016", YearTimex(2016))
	assert.Equal(t, "XXXX-WXX-7", WeekdayTimex(time.Sunday))

	p, ok := ParseDateTimex("XXXX-XX-27")
	require.True(t, ok)
	assert.Equal(t, DateParts{Day: 27}, p)
	_, ok = ParseDateTimex("2016-W45")
	assert.False(t, ok)
}

func TestDateTimexRoundTrip(t *testing.T) {
	for _, p := range []DateParts{
		{Year: 2016, Month: 11, Day: 24},
		{Month: 11, Day: 24},
		{Month: 2, Day: 29},
		{Day: 5},
		{Year: 1935, Month: 3, Day: 5},
		{Year: 2035, Month: 3, Day: 5},
		{Year: 9999, Month: 12, Day: 31},
	} {
		t.Run(p.String(), func(t *testing.T) {
			got, ok := ParseDateTimex(p.String())
			require.True(t, ok)
			assert.Equal(t, p, got)
		})
	}
}

func TestTimeTimex(t *testing.T) {
	assert.Equal(t, "T20", TimeTimex(20, 0, 0))
	assert.Equal(t, "T08:30", TimeTimex(8, 30, 0))
	assert.Equal(t, "T08:30:15", TimeTimex(8, 30, 15))
	assert.Equal(t, "2016-11-07T17:30", DateTimeTimex(time.Date(2016, 11, 7, 17, 30, 0, 0, time.UTC)))
	assert.Equal(t, "2016-11-07T00:00:00", FullDateTimeTimex(ref))
}

func TestRangeTimex(t *testing.T) {
	tx := RangeTimex("T17", "T18", "PT1H")
	assert.Equal(t, "(T17,T18,PT1H)", tx)

	rp, ok := RangeTimexComponents(tx)
	require.True(t, ok)
	assert.Equal(t, RangeParts{Begin: "T17", End: "T18", Duration: "PT1H"}, rp)
	_, ok = RangeTimexComponents("T17")
	assert.False(t, ok)

	assert.Equal(t, "(2016-11-08T17,2016-11-08T18,PT1H)", CombineDateWithTime("2016-11-08", tx))
	assert.Equal(t, "2016-11-08T20", CombineDateWithTime("2016-11-08", "T20"))

	past, future, ok := SplitDoubleTimex(DoubleTimex("1935", "2035"))
	require.True(t, ok)
	assert.Equal(t, "1935", past)
	assert.Equal(t, "2035", future)
	_, _, ok = SplitDoubleTimex("2016")
	assert.False(t, ok)
}

func TestPeriods(t *testing.T) {
	next := date(2016, 11, 14)
	assert.Equal(t, "(2016-11-07,2016-11-14,P1W)", DatePeriodTimex(ref, next, ByWeek))
	assert.Equal(t, "P7D", PeriodDuration(ref, next, ByDay))
	assert.Equal(t, "P5BD", PeriodDuration(ref, next, ByBusinessDay))
	assert.Equal(t, "P1M", PeriodDuration(date(2016, 11, 1), date(2016, 12, 1), ByMonth))
	assert.Equal(t, "P1Y", PeriodDuration(date(2016, 1, 1), date(2017, 1, 1), ByYear))
	assert.Equal(t, "P10D", PeriodDuration(ref, date(2016, 11, 17), ByWeek))

	assert.Equal(t, ByWeek, PeriodKindOf("P2W"))
	assert.Equal(t, ByMonth, PeriodKindOf("P1Y2M"))
	assert.Equal(t, ByBusinessDay, PeriodKindOf("P3BD"))
	assert.Equal(t, ByDay, PeriodKindOf("PT1H"))
	assert.Equal(t, ByDay, PeriodKindOf("bogus"))
}

func TestToPM(t *testing.T) {
	assert.Equal(t, "T17", ToPM("T05"))
	assert.Equal(t, "05:00:00", ToPM("17:00:00"))
	assert.Equal(t, "T12:30", ToPM("T00:30"))
	assert.Equal(t, "(T17,T18,PT1H)", AllToPM("(T05,T06,PT1H)"))
	assert.Equal(t, "2016-11-07T20:15", AllToPM("2016-11-07T08:15"))
	assert.Equal(t, "(T21,T05,PT8H)", AllToPM("(T09,T17,PT8H)"))
	assert.Equal(t, "(T12,T13,PT1H)", AllToPM("(T00,T01,PT1H)"))
	assert.Equal(t, "PT20H", AllToPM("PT20H"))
}
