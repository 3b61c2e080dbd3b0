package english

import (
	"github.com/hrygo/chronoparse/plugin/datetime/locale"
)

func newDuration(c *locale.Common) *locale.DurationConfig {
	return &locale.DurationConfig{
		Common:    c,
		ModPrefix: p(`(?:(?P<more>more\s+than|over|at\s+least|longer\s+than)|(?P<less>less\s+than|under|at\s+most|no\s+more\s+than|shorter\s+than))\b`),
		ModSuffix: p(`or\s+(?:(?P<more>more|longer)|(?P<less>less|shorter))`),
		AllUnit:   p(`(?:all|(?:the\s+)?(?:whole|entire))\s+(?P<unit>day|week|month|year)`),
		Fraction:  p(`(?:an?\s+)?(?P<frac>three\s+quarters|half|quarter)\s+(?:of\s+)?(?:an?\s+|the\s+)?` + unitPart),
		Fractions: map[string]float64{
			"half": 0.5, "quarter": 0.25, "three quarters": 0.75,
		},
		AndAHalf: locale.Patterns{
			p(numberPart + `\s+` + unitPart + `\s+and\s+a\s+half`),
			p(numberPart + `\s+and\s+a\s+half\s+` + unitPart),
		},
		Inexact: p(`(?:a\s+)?(?P<inexact>few|couple(?:\s+of)?|several)\s+` + unitPart),
		InexactNumbers: map[string]float64{
			"few": 3, "couple": 2, "couple of": 2, "several": 3,
		},
		NumberUnit:    p(numberPart + `\s*` + unitPart),
		Atom:          p(`\b(?:\d+(?:\.\d+)?|` + numberWords + `)\s*(?:` + unitWords + `)\b`),
		AtomSeparator: p(`,?\s*and|,`),
	}
}

func newSet(c *locale.Common) *locale.SetConfig {
	return &locale.SetConfig{
		Common:   c,
		Periodic: p(`(?P<periodic>daily|weekly|bi-?weekly|fortnightly|monthly|bi-?monthly|quarterly|yearly|annually|semi-?annually|hourly)`),
		PeriodicTimex: map[string]string{
			"daily":         "P1D",
			"weekly":        "P1W",
			"biweekly":      "P2W",
			"bi weekly":     "P2W",
			"fortnightly":   "P2W",
			"monthly":       "P1M",
			"bimonthly":     "P2M",
			"bi monthly":    "P2M",
			"quarterly":     "P3M",
			"yearly":        "P1Y",
			"annually":      "P1Y",
			"semiannually":  "P0.5Y",
			"semi annually": "P0.5Y",
			"hourly":        "PT1H",
		},
		EachUnit:   p(`(?:every|each)\s+(?P<unit>year|month|fortnight|week|business\s+day|working\s+day|day|hour|minute|second)`),
		EveryN:     p(`(?:every|each)\s+` + numberPart + `\s+` + unitPart),
		EveryOther: p(`(?:every|each)\s+(?:other|second|alternate)\s+(?P<unit>year|month|week|day|hour|minute)`),
		EveryWeekday: locale.Patterns{
			p(`(?:every|each|on)\s+` + weekdayPart + `s?(?:\s+(?P<time>.+))?`),
			p(weekdayPart + `s(?:\s+(?P<time>.+))?`),
		},
		EachDay: locale.Patterns{
			p(`(?:(?:every|each)\s+day|daily|everyday)\s+(?P<time>.+)`),
			p(`(?P<time>.+?)\s+(?:(?:every|each)\s+day|daily|everyday)`),
		},
		Each: p(`(?:every|each)\s+(?P<rest>.+)`),
	}
}
