package locale

import (
	"strconv"
	"strings"
	"time"

	"github.com/hrygo/chronoparse/plugin/datetime/number"
	"github.com/hrygo/chronoparse/plugin/datetime/timex"
)

// Options are the per-locale behaviour switches.
type Options struct {
	// SplitDateAndTime keeps modified points as points and reports
	// date-times as times.
	SplitDateAndTime bool
	// StrictContracts turns internal invariant violations into panics.
	StrictContracts bool
	CenturyPivot    timex.CenturyPivot
}

// DefaultOptions returns the options used when none are supplied.
func DefaultOptions() Options {
	return Options{CenturyPivot: timex.DefaultCenturyPivot}
}

// UnitInfo maps a unit token onto a canonical unit, e.g. fortnight is
// two weeks.
type UnitInfo struct {
	Unit  timex.Unit
	Scale float64
}

// Band is a time-of-day band [Start, End) in hours. An End of 24 closes
// the band at 23:59:59.
type Band struct {
	Timex string
	Start int
	End   int
}

// Season is a three month season starting at StartMonth. Winter starts in
// December and runs into the next year.
type Season struct {
	Timex      string
	StartMonth int
}

// Meridiem is the half of the day a word places a clock reading in.
type Meridiem int

const (
	MeridiemNone Meridiem = iota
	MeridiemAM
	MeridiemPM
	// MeridiemNight is PM from six onwards and AM before.
	MeridiemNight
)

// RelativeAnchor places a duration relative to the reference moment.
type RelativeAnchor int

const (
	// AnchorNext starts after the reference: "next 3 days".
	AnchorNext RelativeAnchor = iota
	// AnchorPast ends at the reference: "past 2 weeks".
	AnchorPast
	// AnchorWithin spans from the reference: "within 2 hours".
	AnchorWithin
	// AnchorIn shifts the start by the duration: "in 2 weeks".
	AnchorIn
)

// HolidayFunc returns the date of a holiday in year, or timex.MinDate.
type HolidayFunc func(year int) time.Time

// LastIndex is the cardinal value of "last".
const LastIndex = -1

// Common holds the lookup tables shared by every resolver.
type Common struct {
	Numbers    number.Parser
	Weekdays   map[string]time.Weekday
	Months     map[string]int
	Units      map[string]UnitInfo
	Cardinals  map[string]int
	Swifts     map[string]int
	Directions map[string]int
	Anchors    map[string]RelativeAnchor
	Bands      map[string]Band

	// DayBand matches a day combined with a band: "tonight",
	// "tomorrow morning", "monday evening".
	DayBand *Pattern
	// DayBandDates maps the day words DayBand accepts without a date.
	DayBandDates map[string]int
	// DayBandFixed maps whole phrases such as "tonight" to a band.
	DayBandFixed map[string]string

	ConnectorPrefix *Pattern
	ConnectorSuffix *Pattern

	CenturyPivot timex.CenturyPivot
}

// Key normalises a matched token for table lookups.
func Key(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.TrimSuffix(s, ".")
	return strings.Join(strings.Fields(s), " ")
}

// Weekday looks up a weekday token.
func (c *Common) Weekday(s string) (time.Weekday, bool) {
	wd, ok := c.Weekdays[Key(s)]
	return wd, ok
}

// Month looks up a month name or number.
func (c *Common) Month(s string) (int, bool) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, n >= 1 && n <= 12
	}
	m, ok := c.Months[Key(s)]
	return m, ok
}

// Unit looks up a unit token.
func (c *Common) Unit(s string) (UnitInfo, bool) {
	u, ok := c.Units[Key(s)]
	return u, ok
}

// Cardinal looks up "first", "3rd" or "last". Unknown words go through
// the ordinal parser.
func (c *Common) Cardinal(s string) (int, bool) {
	if v, ok := c.Cardinals[Key(s)]; ok {
		return v, true
	}
	return c.Numbers.ParseOrdinal(s)
}

// Swift returns the relative offset of an order word: this is 0, next 1
// and last -1.
func (c *Common) Swift(s string) int {
	return c.Swifts[Key(s)]
}

// Direction returns +1 for forward words and -1 for backward ones.
func (c *Common) Direction(s string) (int, bool) {
	d, ok := c.Directions[Key(s)]
	return d, ok
}

// Band looks up a time-of-day band by name.
func (c *Common) Band(s string) (Band, bool) {
	b, ok := c.Bands[Key(s)]
	return b, ok
}

// DateConfig feeds the date resolver.
type DateConfig struct {
	*Common
	// DateFormats are the explicit dates: "may 5th, 2016", "5/6/16".
	DateFormats Patterns
	// WrittenDates pair a written ordinal with a month: "the fifth of may".
	WrittenDates      Patterns
	SpecialDay        *Pattern
	SpecialDayOffsets map[string]int
	RelativeWeekday   *Pattern
	WeekdayWithWeek   Patterns
	BareWeekday       *Pattern
	WeekdayOfMonth    *Pattern
	DurationRelative  Patterns
	DurationWithDate  *Pattern
	DayOnly           Patterns
}

// TimeConfig feeds the time resolver.
type TimeConfig struct {
	*Common
	Times       Patterns
	MidDay      map[string]int
	Meridiems   map[string]Meridiem
	MinuteWords map[string]int
	// Relatives maps "past" to +1 and "to" to -1 in "ten to five".
	Relatives map[string]int
}

// TimePeriodConfig feeds the time period resolver.
type TimePeriodConfig struct {
	*Common
	HourRanges Patterns
	TimePoints Patterns
	TimeOfDay  *Pattern
}

// DateTimeConfig feeds the date-time resolver.
type DateTimeConfig struct {
	*Common
	Now              *Pattern
	NowTimex         map[string]string
	EndOf            *Pattern
	DurationRelative Patterns
}

// DatePeriodConfig feeds the date period resolver.
type DatePeriodConfig struct {
	*Common
	MonthWithYear Patterns
	SimpleCases   Patterns
	OneWord       Patterns
	TwoPoints     Patterns
	Year          Patterns
	WeekOfMonth   *Pattern
	WeekOfYear    *Pattern
	HalfYear      Patterns
	Quarter       Patterns
	Season        *Pattern
	Seasons       map[string]Season
	WhichWeek     *Pattern
	WeekOf        *Pattern
	MonthOf       *Pattern
	Decade        Patterns
	DecadeWords   map[string]int
	Century       *Pattern
	DurationRange *Pattern
}

// DateTimePeriodConfig feeds the date-time period resolver.
type DateTimePeriodConfig struct {
	*Common
	TwoPoints Patterns
	TimeOfDay *Pattern
	Relative  *Pattern
}

// DurationConfig feeds the duration resolver.
type DurationConfig struct {
	*Common
	ModPrefix      *Pattern
	ModSuffix      *Pattern
	AllUnit        *Pattern
	Fraction       *Pattern
	Fractions      map[string]float64
	AndAHalf       Patterns
	Inexact        *Pattern
	InexactNumbers map[string]float64
	NumberUnit     *Pattern
	// Atom finds one duration term inside a longer span.
	Atom *Pattern
	// AtomSeparator is what may sit between the terms of a merged
	// duration.
	AtomSeparator *Pattern
}

// SetConfig feeds the set resolver.
type SetConfig struct {
	*Common
	Periodic      *Pattern
	PeriodicTimex map[string]string
	EachUnit      *Pattern
	EveryN        *Pattern
	EveryOther    *Pattern
	EveryWeekday  Patterns
	EachDay       Patterns
	Each          *Pattern
}

// HolidayConfig feeds the holiday resolver.
type HolidayConfig struct {
	*Common
	Patterns Patterns
	// Names maps an alias key to its canonical holiday.
	Names    map[string]string
	Holidays map[string]HolidayFunc
}

// Holiday returns the year function of a holiday token.
func (c *HolidayConfig) Holiday(token string) (HolidayFunc, bool) {
	name, ok := c.Names[HolidayKey(token)]
	if !ok {
		return nil, false
	}
	fn, ok := c.Holidays[name]
	return fn, ok
}

// HolidayKey canonicalises a holiday token: "Mother's Day" and
// "mothers day" share the key "mothersday".
func HolidayKey(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// TimeZoneConfig feeds the time-zone resolver.
type TimeZoneConfig struct {
	Offset        Patterns
	UTC           *Pattern
	Abbreviation  *Pattern
	Abbreviations map[string]int
	FullName      *Pattern
	FullNames     map[string]int
	IANA          *Pattern
	// MaxOffsetMinutes bounds explicit offsets in both directions.
	MaxOffsetMinutes int
}

// DateTimeAltConfig feeds the alternative resolver.
type DateTimeAltConfig struct {
	Or *Pattern
}

// MergedConfig feeds the merging resolver.
type MergedConfig struct {
	Before       *Pattern
	After        *Pattern
	Since        *Pattern
	Until        *Pattern
	Around       *Pattern
	Equal        *Pattern
	SuffixAfter  *Pattern
	SuffixBefore *Pattern
}

// Config is the full capability set of one locale.
type Config struct {
	Name           string
	Options        Options
	Common         *Common
	Date           *DateConfig
	Time           *TimeConfig
	TimePeriod     *TimePeriodConfig
	DateTime       *DateTimeConfig
	DatePeriod     *DatePeriodConfig
	DateTimePeriod *DateTimePeriodConfig
	Duration       *DurationConfig
	Set            *SetConfig
	Holiday        *HolidayConfig
	TimeZone       *TimeZoneConfig
	DateTimeAlt    *DateTimeAltConfig
	Merged         *MergedConfig
}
