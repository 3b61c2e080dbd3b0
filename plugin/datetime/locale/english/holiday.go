package english

import (
	"time"

	"github.com/hrygo/chronoparse/plugin/datetime/locale"
	"github.com/hrygo/chronoparse/plugin/datetime/timex"
)

// holidayAliases maps each canonical holiday to the phrasings that name it.
var holidayAliases = map[string][]string{
	"newyear":        {"new year", "new years", "new year's", "new year's day", "new years day"},
	"newyeareve":     {"new year's eve", "new years eve"},
	"mlkday":         {"martin luther king day", "martin luther king jr day", "mlk day"},
	"groundhog":      {"groundhog day"},
	"valentine":      {"valentine's day", "valentines day", "valentine's", "valentines"},
	"presidents":     {"presidents day", "president's day", "presidents' day", "washington's birthday"},
	"stpatrick":      {"st patrick's day", "st. patrick's day", "saint patrick's day", "st patricks day"},
	"aprilfools":     {"april fools", "april fools day", "april fool's day", "april fools' day"},
	"earthday":       {"earth day"},
	"taxday":         {"tax day"},
	"mayday":         {"may day"},
	"mothers":        {"mother's day", "mothers day"},
	"memorial":       {"memorial day"},
	"fathers":        {"father's day", "fathers day"},
	"juneteenth":     {"juneteenth"},
	"independence":   {"independence day", "fourth of july", "4th of july", "the fourth of july", "the 4th of july"},
	"labor":          {"labor day", "labour day"},
	"columbus":       {"columbus day"},
	"halloween":      {"halloween", "all hallows eve"},
	"veterans":       {"veterans day", "veteran's day", "armistice day"},
	"election":       {"election day"},
	"thanksgiving":   {"thanksgiving", "thanksgiving day"},
	"blackfriday":    {"black friday"},
	"cybermonday":    {"cyber monday"},
	"christmaseve":   {"christmas eve", "xmas eve"},
	"christmas":      {"christmas", "christmas day", "xmas", "x-mas"},
	"boxingday":      {"boxing day"},
	"easter":         {"easter", "easter sunday", "easter day"},
	"goodfriday":     {"good friday"},
	"eastermonday":   {"easter monday"},
	"ashwednesday":   {"ash wednesday"},
	"palmsunday":     {"palm sunday"},
	"ascension":      {"ascension day", "ascension"},
	"pentecost":      {"pentecost", "whit sunday", "whitsunday"},
	"maundythursday": {"maundy thursday", "holy thursday"},
}

func fixed(month, day int) locale.HolidayFunc {
	return func(year int) time.Time {
		return timex.SafeDate(year, month, day)
	}
}

func nth(month int, wd time.Weekday, n int) locale.HolidayFunc {
	return func(year int) time.Time {
		return timex.NthWeekdayOf(year, month, wd, n)
	}
}

func last(month int, wd time.Weekday) locale.HolidayFunc {
	return func(year int) time.Time {
		return timex.LastWeekdayOf(year, month, wd)
	}
}

func shifted(fn locale.HolidayFunc, days int) locale.HolidayFunc {
	return func(year int) time.Time {
		d := fn(year)
		if !timex.IsValid(d) {
			return d
		}
		return d.AddDate(0, 0, days)
	}
}

// easter is the Gregorian computus.
func easter(year int) time.Time {
	a := year % 19
	b, c := year/100, year%100
	d, e := b/4, b%4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i, k := c/4, c%4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return timex.SafeDate(year, month, day)
}

// electionDay is the Tuesday after the first Monday of November.
func electionDay(year int) time.Time {
	return shifted(nth(11, time.Monday, 1), 1)(year)
}

func newHoliday(c *locale.Common) *locale.HolidayConfig {
	thanksgiving := nth(11, time.Thursday, 4)
	funcs := map[string]locale.HolidayFunc{
		"newyear":        fixed(1, 1),
		"newyeareve":     fixed(12, 31),
		"mlkday":         nth(1, time.Monday, 3),
		"groundhog":      fixed(2, 2),
		"valentine":      fixed(2, 14),
		"presidents":     nth(2, time.Monday, 3),
		"stpatrick":      fixed(3, 17),
		"aprilfools":     fixed(4, 1),
		"earthday":       fixed(4, 22),
		"taxday":         fixed(4, 15),
		"mayday":         fixed(5, 1),
		"mothers":        nth(5, time.Sunday, 2),
		"memorial":       last(5, time.Monday),
		"fathers":        nth(6, time.Sunday, 3),
		"juneteenth":     fixed(6, 19),
		"independence":   fixed(7, 4),
		"labor":          nth(9, time.Monday, 1),
		"columbus":       nth(10, time.Monday, 2),
		"halloween":      fixed(10, 31),
		"veterans":       fixed(11, 11),
		"election":       electionDay,
		"thanksgiving":   thanksgiving,
		"blackfriday":    shifted(thanksgiving, 1),
		"cybermonday":    shifted(thanksgiving, 4),
		"christmaseve":   fixed(12, 24),
		"christmas":      fixed(12, 25),
		"boxingday":      fixed(12, 26),
		"easter":         easter,
		"goodfriday":     shifted(easter, -2),
		"maundythursday": shifted(easter, -3),
		"eastermonday":   shifted(easter, 1),
		"ashwednesday":   shifted(easter, -46),
		"palmsunday":     shifted(easter, -7),
		"ascension":      shifted(easter, 39),
		"pentecost":      shifted(easter, 49),
	}

	names := make(map[string]string)
	for canonical, aliases := range holidayAliases {
		for _, a := range aliases {
			names[locale.HolidayKey(a)] = canonical
		}
	}

	return &locale.HolidayConfig{
		Common: c,
		Patterns: locale.Patterns{
			p(`(?:on\s+)?(?:(?P<order>this|next|last|coming|previous)\s+)?(?P<holiday>[a-z0-9][a-z0-9'’.\s-]*?[a-z'])(?:,?\s+(?:of\s+)?(?:` + yearAnyPart + `|` + relYearPart + `))?`),
		},
		Names:    names,
		Holidays: funcs,
	}
}
