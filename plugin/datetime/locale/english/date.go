package english

import (
	"github.com/hrygo/chronoparse/plugin/datetime/locale"
)

const (
	yearAnyPart  = `(?P<year>\d{4}|'\d{2})`
	earlyLate    = `(?:(?P<early>early|the\s+beginning\s+of|the\s+start\s+of)|(?P<mid>mid|the\s+middle\s+of)|(?P<late>late|the\s+end\s+of))?[\s-]*`
	rangeJoiner  = `\s+(?:to|till|until|through|thru|-|–)\s+`
	dayRangeJoin = `\s*(?:-|–|to|till|until|through|thru|and)\s*`
)

func newDate(c *locale.Common) *locale.DateConfig {
	return &locale.DateConfig{
		Common: c,
		DateFormats: locale.Patterns{
			p(`(?:on\s+)?(?:` + weekdayPart + `,?\s+)?` + monthPart + `\s+` + dayPart + `(?:,?\s+` + yearAnyPart + `)?`),
			p(`(?:on\s+)?(?:` + weekdayPart + `,?\s+)?(?:the\s+)?` + dayPart + `(?:\s+of)?\s+` + monthPart + `(?:,?\s+` + yearAnyPart + `)?`),
			p(`(?:on\s+)?(?P<year>\d{4})[-/.](?P<month>1[0-2]|0?[1-9])[-/.](?P<day>3[01]|[12]\d|0?[1-9])`),
			p(`(?:on\s+)?(?P<month>1[0-2]|0?[1-9])/(?P<day>3[01]|[12]\d|0?[1-9])(?:/(?P<year>\d{4}|\d{2}))?`),
		},
		WrittenDates: locale.Patterns{
			p(`(?:on\s+)?(?:the\s+)?` + daywordPart + `\s+(?:of\s+)?` + monthPart + `(?:,?\s+` + yearAnyPart + `)?`),
			p(`(?:on\s+)?` + monthPart + `\s+(?:the\s+)?` + daywordPart + `(?:,?\s+` + yearAnyPart + `)?`),
		},
		SpecialDay: p(`(?:on\s+)?(?:the\s+)?(?P<special>today|tomorrow|tmr|yesterday|day\s+after\s+tomorrow|day\s+before\s+yesterday)`),
		SpecialDayOffsets: map[string]int{
			"today":                0,
			"tomorrow":             1,
			"tmr":                  1,
			"yesterday":            -1,
			"day after tomorrow":   2,
			"day before yesterday": -2,
		},
		RelativeWeekday: p(`(?:on\s+)?(?P<order>` + orderPart + `)\s+` + weekdayPart),
		WeekdayWithWeek: locale.Patterns{
			p(`(?:on\s+)?` + weekdayPart + `\s+(?:of\s+)?(?P<order>this|next|last)\s+week`),
			p(`(?P<order>this|next|last)\s+week'?s?\s+` + weekdayPart),
		},
		BareWeekday:    p(`(?:on\s+)?` + weekdayPart),
		WeekdayOfMonth: p(`(?:on\s+)?(?:the\s+)?(?P<cardinal>` + cardinalWds + `)\s+` + weekdayPart + `\s+(?:of|in)\s+(?:(?P<relmonth>this|next|last)\s+month|(?P<themonth>the\s+month)|` + monthPart + `(?:,?\s+` + yearAnyPart + `)?)`),
		DurationRelative: locale.Patterns{
			p(`(?P<duration>.+?)\s+(?P<dir>ago|later|from\s+now|hence|earlier|before\s+now)`),
			p(`(?P<dir>in)\s+(?P<duration>.+)`),
		},
		DurationWithDate: p(`(?P<duration>.+?)\s+(?P<dir>before|after|from)\s+(?P<date>.+)`),
		DayOnly: locale.Patterns{
			p(`(?:on\s+)?the\s+` + dayPart),
			p(`(?:on\s+)?the\s+` + daywordPart),
			p(`on\s+(?P<day>3[01]|[12]\d|0?[1-9])(?:st|nd|rd|th)`),
		},
	}
}

func newDateTime(c *locale.Common) *locale.DateTimeConfig {
	return &locale.DateTimeConfig{
		Common: c,
		Now:    p(`(?P<now>right\s+now|now|as\s+soon\s+as\s+possible|asap|recently|previously|currently|at\s+the\s+moment|at\s+present)`),
		NowTimex: map[string]string{
			"now":                 "PRESENT_REF",
			"right now":           "PRESENT_REF",
			"currently":           "PRESENT_REF",
			"at the moment":       "PRESENT_REF",
			"at present":          "PRESENT_REF",
			"as soon as possible": "FUTURE_REF",
			"asap":                "FUTURE_REF",
			"recently":            "PAST_REF",
			"previously":          "PAST_REF",
		},
		EndOf: p(`(?:by\s+)?(?:the\s+)?end\s+of\s+(?:(?P<today>the\s+day|today)|(?P<date>.+))`),
		DurationRelative: locale.Patterns{
			p(`(?P<duration>.+?)\s+(?P<dir>ago|later|from\s+now|hence|earlier|before\s+now)`),
			p(`(?P<dir>in)\s+(?P<duration>.+)`),
		},
	}
}

func newDatePeriod(c *locale.Common) *locale.DatePeriodConfig {
	return &locale.DatePeriodConfig{
		Common: c,
		MonthWithYear: locale.Patterns{
			p(`(?:(?:in|during)\s+)?` + earlyLate + `(?:of\s+)?` + monthPart + `(?:,?\s+(?:of\s+)?(?:` + yearAnyPart + `|` + relYearPart + `))?`),
		},
		SimpleCases: locale.Patterns{
			p(`(?:(?:from|between)\s+)?` + monthPart + `\s+(?P<day1>3[01]|[12]\d|0?[1-9])(?:st|nd|rd|th)?` + dayRangeJoin + `(?:the\s+)?(?P<day2>3[01]|[12]\d|0?[1-9])(?:st|nd|rd|th)?(?:,?\s+` + yearAnyPart + `)?`),
			p(`(?:(?:from|between)\s+)?(?:the\s+)?(?P<day1>3[01]|[12]\d|0?[1-9])(?:st|nd|rd|th)?` + dayRangeJoin + `(?:the\s+)?(?P<day2>3[01]|[12]\d|0?[1-9])(?:st|nd|rd|th)?\s+(?:of\s+)?` + monthPart + `(?:,?\s+` + yearAnyPart + `)?`),
		},
		OneWord: locale.Patterns{
			p(earlyLate + `(?:the\s+)?(?P<order>` + orderPart + `)\s+(?P<unit>weekend|week|fortnight|month|year)`),
			p(`(?:the\s+)?(?P<unit>week|month|year)\s+(?:(?P<afternext>after\s+next)|(?P<beforelast>before\s+last))`),
			p(`(?:the\s+)?(?P<unit>week|month|year)[\s-]to[\s-](?P<todate>date)`),
			p(`(?:the\s+)?(?P<restof>rest|remainder)\s+of\s+(?:the|this)\s+(?P<unit>week|month|year)`),
			p(`(?:(?P<early>early)|(?P<mid>mid)|(?P<late>late))?[\s-]*(?P<order>this|next|last)\s+` + monthPart),
		},
		TwoPoints: locale.Patterns{
			p(`(?:from\s+)?(?P<left>.+?)` + rangeJoiner + `(?P<right>.+)`),
			p(`between\s+(?P<left>.+?)\s+and\s+(?P<right>.+)`),
		},
		Year: locale.Patterns{
			p(`(?:(?:in|during)\s+)?(?:(?P<early>early)|(?P<mid>mid)|(?P<late>late))?[\s-]*(?:the\s+year\s+)?` + yearPart),
		},
		WeekOfMonth: p(`(?:the\s+)?(?P<cardinal>` + cardinalWds + `)\s+week\s+(?:of|in)\s+(?:(?P<relmonth>this|next|last)\s+month|(?P<themonth>the\s+month)|` + monthPart + `(?:,?\s+` + yearAnyPart + `)?)`),
		WeekOfYear:  p(`(?:the\s+)?(?P<cardinal>first|second|third|fourth|last|\d{1,2}(?:st|nd|rd|th))\s+week\s+(?:of|in)\s+(?:` + yearAnyPart + `|` + relYearPart + `|the\s+year)`),
		HalfYear: locale.Patterns{
			p(`(?:the\s+)?(?P<cardinal>first|second|1st|2nd|last)\s+half\s+(?:of\s+)?(?:the\s+year\s*)?(?:` + yearAnyPart + `|` + relYearPart + `)?`),
			p(`h(?P<number>[12])(?:\s+` + yearAnyPart + `)?`),
		},
		Quarter: locale.Patterns{
			p(`(?:the\s+)?(?P<cardinal>first|second|third|fourth|last|1st|2nd|3rd|4th)\s+quarter\s*(?:of\s+)?(?:the\s+year\s*)?(?:` + yearAnyPart + `|` + relYearPart + `)?`),
			p(`q(?P<number>[1-4])(?:\s+` + yearAnyPart + `)?`),
			p(`(?:the\s+)?(?P<order>this|next|last|current|previous)\s+quarter`),
		},
		Season: p(`(?:(?P<early>early)|(?P<mid>mid)|(?P<late>late))?[\s-]*(?:(?:the\s+)?(?P<order>this|next|last|coming)\s+)?(?P<season>spring|summer|fall|autumn|winter)(?:\s+(?:of\s+)?(?:` + yearAnyPart + `|` + relYearPart + `))?`),
		Seasons: map[string]locale.Season{
			"spring": {Timex: "SP", StartMonth: 3},
			"summer": {Timex: "SU", StartMonth: 6},
			"fall":   {Timex: "FA", StartMonth: 9},
			"autumn": {Timex: "FA", StartMonth: 9},
			"winter": {Timex: "WI", StartMonth: 12},
		},
		WhichWeek: p(`(?:the\s+)?week\s+(?:number\s+|#)?(?P<number>\d{1,2})(?:\s+(?:of\s+)?` + yearAnyPart + `)?`),
		WeekOf:    p(`(?:the\s+)?week\s+of\s+(?P<date>.+)`),
		MonthOf:   p(`(?:the\s+)?month\s+of\s+(?P<date>.+)`),
		Decade: locale.Patterns{
			p(`(?:in\s+)?(?:the\s+)?(?P<century>1\d|20)(?P<decade>\d0)'?s`),
			p(`(?:in\s+)?(?:the\s+)?'?(?P<decade>\d0)'?s`),
			p(`(?:in\s+)?(?:the\s+)?(?P<decadeword>twenties|thirties|forties|fifties|sixties|seventies|eighties|nineties)`),
			p(`(?:the\s+)?(?P<order>this|next|last|previous|current)\s+decade`),
		},
		DecadeWords: map[string]int{
			"twenties": 20, "thirties": 30, "forties": 40, "fifties": 50,
			"sixties": 60, "seventies": 70, "eighties": 80, "nineties": 90,
		},
		Century:       p(`(?:the\s+)?(?P<cardinal>\d{1,2}(?:st|nd|rd|th)|` + ordinalPart + `)\s+century`),
		DurationRange: p(`(?:(?:for|during|over)\s+)?(?:the\s+)?(?P<order>next|past|last|previous|coming|upcoming|following|within|in)\s+(?:the\s+(?:next\s+)?)?(?P<duration>.+)`),
	}
}

func newDateTimePeriod(c *locale.Common) *locale.DateTimePeriodConfig {
	return &locale.DateTimePeriodConfig{
		Common: c,
		TwoPoints: locale.Patterns{
			p(`(?:from\s+)?(?P<left>.+?)` + rangeJoiner + `(?P<right>.+)`),
			p(`between\s+(?P<left>.+?)\s+and\s+(?P<right>.+)`),
		},
		TimeOfDay: p(`(?P<early>early)\s+(?P<rest>.+)|(?P<late>late)\s+(?P<rest>.+)|(?:the\s+)?(?P<mid>middle)\s+of\s+(?:the\s+)?(?P<rest>.+)`),
		Relative:  p(`(?:for\s+)?(?:the\s+)?(?P<order>next|past|last|previous|coming|upcoming|following|within|in)\s+(?:the\s+)?(?:(?P<unit>hour|minute|second)|(?P<duration>.+))`),
	}
}
