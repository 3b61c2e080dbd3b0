// Package english is the reference English locale.
package english

import (
	"time"

	"github.com/hrygo/chronoparse/plugin/datetime/locale"
	"github.com/hrygo/chronoparse/plugin/datetime/number"
	"github.com/hrygo/chronoparse/plugin/datetime/timex"
)

// Name is the locale identifier.
const Name = "en-us"

// Shared expression fragments. Group names are the contract with the
// resolvers.
const (
	monthPart   = `(?P<month>january|february|march|april|may|june|july|august|september|october|november|december|sept|jan|feb|mar|apr|jun|jul|aug|sep|oct|nov|dec)\.?`
	weekdayPart = `(?P<weekday>monday|tuesday|wednesday|thursday|friday|saturday|sunday|tues|thurs|thur|mon|tue|wed|thu|fri|sat|sun)`
	dayPart     = `(?P<day>3[01]|[12]\d|0?[1-9])(?:st|nd|rd|th)?`
	ordinalPart = `(?:twenty|thirty)[\s-](?:first|second|third|fourth|fifth|sixth|seventh|eighth|ninth)|first|second|third|fourth|fifth|sixth|seventh|eighth|ninth|tenth|eleventh|twelfth|thirteenth|fourteenth|fifteenth|sixteenth|seventeenth|eighteenth|nineteenth|twentieth|thirtieth`
	daywordPart = `(?P<dayword>` + ordinalPart + `)`
	yearPart    = `(?P<year>1\d{3}|2\d{3}|'\d{2})`
	orderPart   = `this|next|last|coming|upcoming|following|previous|past|current`
	relYearPart = `(?P<relyear>this|next|last)\s+year`
	cardinalWds = `first|second|third|fourth|fifth|last|1st|2nd|3rd|4th|5th`
	bandPart    = `morning|afternoon|evening|night|daytime`
	numberWords = `(?:twenty|thirty|forty|fifty|sixty|seventy|eighty|ninety)(?:[\s-](?:one|two|three|four|five|six|seven|eight|nine))?|zero|eleven|twelve|thirteen|fourteen|fifteen|sixteen|seventeen|eighteen|nineteen|one|two|three|four|five|six|seven|eight|nine|ten|a\s+hundred|hundred|a\s+dozen|dozen|an?`
	numberPart  = `(?P<number>\d+(?:\.\d+)?|` + numberWords + `)`
	unitWords   = `years?|yrs?|months?|mos?|fortnights?|weeks?|wks?|business\s+days?|working\s+days?|days?|hours?|hrs?|minutes?|mins?|seconds?|secs?|decades?`
	unitPart    = `(?P<unit>` + unitWords + `)\b`
)

func p(expr string) *locale.Pattern {
	return locale.MustPattern(expr)
}

func unit(u timex.Unit) locale.UnitInfo {
	return locale.UnitInfo{Unit: u, Scale: 1}
}

// New builds the English configuration.
func New(opts locale.Options) *locale.Config {
	if opts.CenturyPivot == (timex.CenturyPivot{}) {
		opts.CenturyPivot = timex.DefaultCenturyPivot
	}
	common := newCommon(opts)
	return &locale.Config{
		Name:           Name,
		Options:        opts,
		Common:         common,
		Date:           newDate(common),
		Time:           newTime(common),
		TimePeriod:     newTimePeriod(common),
		DateTime:       newDateTime(common),
		DatePeriod:     newDatePeriod(common),
		DateTimePeriod: newDateTimePeriod(common),
		Duration:       newDuration(common),
		Set:            newSet(common),
		Holiday:        newHoliday(common),
		TimeZone:       newTimeZone(),
		DateTimeAlt:    &locale.DateTimeAltConfig{Or: p(`(?P<left>.+?)\s+or\s+(?P<right>.+)`)},
		Merged:         newMerged(),
	}
}

func newCommon(opts locale.Options) *locale.Common {
	return &locale.Common{
		Numbers: number.NewEnglish(),
		Weekdays: map[string]time.Weekday{
			"monday": time.Monday, "mon": time.Monday,
			"tuesday": time.Tuesday, "tues": time.Tuesday, "tue": time.Tuesday,
			"wednesday": time.Wednesday, "wed": time.Wednesday,
			"thursday": time.Thursday, "thurs": time.Thursday, "thur": time.Thursday, "thu": time.Thursday,
			"friday": time.Friday, "fri": time.Friday,
			"saturday": time.Saturday, "sat": time.Saturday,
			"sunday": time.Sunday, "sun": time.Sunday,
		},
		Months: map[string]int{
			"january": 1, "jan": 1,
			"february": 2, "feb": 2,
			"march": 3, "mar": 3,
			"april": 4, "apr": 4,
			"may":  5,
			"june": 6, "jun": 6,
			"july": 7, "jul": 7,
			"august": 8, "aug": 8,
			"september": 9, "sept": 9, "sep": 9,
			"october": 10, "oct": 10,
			"november": 11, "nov": 11,
			"december": 12, "dec": 12,
		},
		Units: map[string]locale.UnitInfo{
			"year": unit(timex.Year), "years": unit(timex.Year), "yr": unit(timex.Year), "yrs": unit(timex.Year),
			"decade": {Unit: timex.Year, Scale: 10}, "decades": {Unit: timex.Year, Scale: 10},
			"month": unit(timex.Month), "months": unit(timex.Month), "mo": unit(timex.Month), "mos": unit(timex.Month),
			"week": unit(timex.Week), "weeks": unit(timex.Week), "wk": unit(timex.Week), "wks": unit(timex.Week),
			"fortnight": {Unit: timex.Week, Scale: 2}, "fortnights": {Unit: timex.Week, Scale: 2},
			"day": unit(timex.Day), "days": unit(timex.Day),
			"business day": unit(timex.BusinessDay), "business days": unit(timex.BusinessDay),
			"working day": unit(timex.BusinessDay), "working days": unit(timex.BusinessDay),
			"hour": unit(timex.Hour), "hours": unit(timex.Hour), "hr": unit(timex.Hour), "hrs": unit(timex.Hour),
			"minute": unit(timex.Minute), "minutes": unit(timex.Minute), "min": unit(timex.Minute), "mins": unit(timex.Minute),
			"second": unit(timex.Second), "seconds": unit(timex.Second), "sec": unit(timex.Second), "secs": unit(timex.Second),
		},
		Cardinals: map[string]int{
			"first": 1, "second": 2, "third": 3, "fourth": 4, "fifth": 5,
			"last": locale.LastIndex,
		},
		Swifts: map[string]int{
			"this": 0, "current": 0,
			"next": 1, "coming": 1, "upcoming": 1, "following": 1,
			"last": -1, "previous": -1, "past": -1,
		},
		Directions: map[string]int{
			"ago": -1, "earlier": -1, "before": -1, "before now": -1,
			"later": 1, "from now": 1, "after": 1, "hence": 1, "in": 1, "from": 1,
		},
		Anchors: map[string]locale.RelativeAnchor{
			"next": locale.AnchorNext, "coming": locale.AnchorNext, "upcoming": locale.AnchorNext, "following": locale.AnchorNext,
			"past": locale.AnchorPast, "last": locale.AnchorPast, "previous": locale.AnchorPast,
			"within": locale.AnchorWithin,
			"in":     locale.AnchorIn,
		},
		Bands: map[string]locale.Band{
			"morning":        {Timex: timex.Morning, Start: 8, End: 12},
			"afternoon":      {Timex: timex.Afternoon, Start: 12, End: 16},
			"evening":        {Timex: timex.Evening, Start: 16, End: 20},
			"night":          {Timex: timex.Night, Start: 20, End: 24},
			"daytime":        {Timex: timex.Daytime, Start: 8, End: 18},
			"business hours": {Timex: timex.BusinessHours, Start: 8, End: 18},
			"working hours":  {Timex: timex.BusinessHours, Start: 8, End: 18},
			"work hours":     {Timex: timex.BusinessHours, Start: 8, End: 18},
		},
		DayBand: p(`(?P<day>.+?)\s+(?P<band>` + bandPart + `)|(?P<band>` + bandPart + `)\s+(?:of\s+|on\s+)?(?P<day>.+)`),
		DayBandDates: map[string]int{
			"this": 0, "today": 0, "last": -1, "yesterday": -1, "tomorrow": 1,
		},
		DayBandFixed: map[string]string{
			"tonight":   "night",
			"morning":   "morning",
			"afternoon": "afternoon",
			"evening":   "evening",
			"night":     "night",
		},
		ConnectorPrefix: p(`,|on\b|of\b`),
		ConnectorSuffix: p(`,|\bon|\bof`),
		CenturyPivot:    opts.CenturyPivot,
	}
}
