package english

import (
	"github.com/hrygo/chronoparse/plugin/datetime/locale"
)

const (
	ampmPart     = `(?P<ampm>a\.?m\.?|p\.?m\.?)`
	descPart     = `(?:in\s+the\s+|at\s+)?(?P<desc>morning|afternoon|evening|night)`
	hour12Part   = `1[0-2]|0?[1-9]`
	hourWords    = `eleven|twelve|one|two|three|four|five|six|seven|eight|nine|ten`
	minuteWords  = `(?:oh\s+)?(?:(?:twenty|thirty|forty|fifty)(?:[\s-](?:one|two|three|four|five|six|seven|eight|nine))?|ten|eleven|twelve|thirteen|fourteen|fifteen|sixteen|seventeen|eighteen|nineteen|one|two|three|four|five|six|seven|eight|nine)`
	oclockPart   = `\s*o'?\s?clock`
	meridiemTail = `\s*(?:` + ampmPart + `)?(?:\s+` + descPart + `)?`
)

// rangeSide is one clock reading of an hour range, numbered by side.
func rangeSide(n string) string {
	return `(?P<hour` + n + `>[01]?\d|2[0-3])(?:[:.](?P<min` + n + `>[0-5]\d))?(?:` + oclockPart + `)?\s*(?P<ampm` + n + `>a\.?m\.?|p\.?m\.?)?`
}

func newTime(c *locale.Common) *locale.TimeConfig {
	return &locale.TimeConfig{
		Common: c,
		Times: locale.Patterns{
			p(`(?:at\s+)?(?P<hour>[01]?\d|2[0-3])[:.](?P<min>[0-5]\d)(?::(?P<sec>[0-5]\d))?` + meridiemTail),
			p(`(?:at\s+)?(?P<hour>` + hour12Part + `)\s*` + ampmPart + `(?:\s+` + descPart + `)?`),
			p(`(?:at\s+)?(?P<hour>` + hour12Part + `)` + oclockPart + meridiemTail),
			p(`(?:at\s+(?P<hour>` + hour12Part + `)|(?P<hour>` + hour12Part + `)\s+` + descPart + `)`),
			p(`(?:at\s+)?(?P<hourword>` + hourWords + `)(?:\s+(?P<minword>` + minuteWords + `))?(?:` + oclockPart + `)?` + meridiemTail),
			p(`(?:at\s+)?(?P<minexpr>half|(?:a\s+)?quarter|\d{1,2}(?:\s+minutes?)?|` + minuteWords + `(?:\s+minutes?)?)\s+(?P<rel>past|after|to|before|till|of)\s+(?:(?P<hour>` + hour12Part + `)|(?P<hourword>` + hourWords + `))` + meridiemTail),
			p(`(?:at\s+)?(?P<mid>noon|midnight|midday|mid\s?night|mid\s?day)`),
		},
		MidDay: map[string]int{
			"noon": 12, "midday": 12, "mid day": 12,
			"midnight": 0, "mid night": 0,
		},
		Meridiems: map[string]locale.Meridiem{
			"am": locale.MeridiemAM, "a": locale.MeridiemAM, "morning": locale.MeridiemAM,
			"pm": locale.MeridiemPM, "p": locale.MeridiemPM, "afternoon": locale.MeridiemPM, "evening": locale.MeridiemPM,
			"night": locale.MeridiemNight,
		},
		MinuteWords: map[string]int{
			"half": 30, "quarter": 15, "a quarter": 15,
		},
		Relatives: map[string]int{
			"past": 1, "after": 1,
			"to": -1, "before": -1, "till": -1, "of": -1,
		},
	}
}

func newTimePeriod(c *locale.Common) *locale.TimePeriodConfig {
	return &locale.TimePeriodConfig{
		Common: c,
		HourRanges: locale.Patterns{
			p(`(?:between\s+)?` + rangeSide("1") + `\s*(?:and|-|–)\s*` + rangeSide("2") + `(?:\s+(?:in\s+the\s+)?(?P<desc2>morning|afternoon|evening|night))?`),
			p(`(?:from\s+)?` + rangeSide("1") + `\s*(?:to|till|until|-|–)\s*` + rangeSide("2") + `(?:\s+(?:in\s+the\s+)?(?P<desc2>morning|afternoon|evening|night))?`),
		},
		TimePoints: locale.Patterns{
			p(`(?:from\s+)?(?P<left>.+?)\s+(?:to|till|until|-)\s+(?P<right>.+)`),
			p(`between\s+(?P<left>.+?)\s+and\s+(?P<right>.+)`),
		},
		TimeOfDay: p(`(?:(?:in|during)\s+)?(?:the\s+)?(?:(?P<early>early)|(?P<late>late)|(?P<mid>mid|middle\s+of\s+the))?[\s-]*(?P<band>` + bandPart + `|business\s+hours|work(?:ing)?\s+hours)`),
	}
}
