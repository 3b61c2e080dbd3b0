package english

import (
	"github.com/hrygo/chronoparse/plugin/datetime/locale"
	"github.com/hrygo/chronoparse/plugin/datetime/timezone"
)

func newTimeZone() *locale.TimeZoneConfig {
	return &locale.TimeZoneConfig{
		Offset: locale.Patterns{
			p(`(?:utc|gmt)\s*(?P<sign>[+-])\s*(?P<hour>\d{1,2})(?::?(?P<min>\d{2}))?`),
			p(`(?P<sign>[+-])(?P<hour>\d{2}):?(?P<min>\d{2})`),
		},
		UTC:              p(`utc|gmt|z|zulu(?:\s+time)?|coordinated\s+universal\s+time|greenwich\s+mean\s+time`),
		Abbreviation:     p(`(?P<abbr>[a-z]{2,5})`),
		Abbreviations:    timezone.Abbreviations,
		FullName:         p(`(?P<name>[a-z]+(?:\s+[a-z]+){1,4}?)(?:\s+zone)?`),
		FullNames:        timezone.FullNames,
		IANA:             p(`(?P<iana>[a-z]+(?:/[a-z0-9_+-]+){1,2})`),
		MaxOffsetMinutes: 12 * 60,
	}
}

func newMerged() *locale.MergedConfig {
	const include = `(?P<include>(?:on|at|in)\s+or\s+)?`
	return &locale.MergedConfig{
		Before:       p(`(?:` + include + `before|prior\s+to|no\s+later\s+than|earlier\s+than|ahead\s+of|by)\b`),
		After:        p(`(?:` + include + `after|later\s+than|no\s+earlier\s+than)\b`),
		Since:        p(`(?:since|starting(?:\s+(?:from|on|at))?|beginning(?:\s+(?:from|on|at))?|as\s+of)\b`),
		Until:        p(`(?:until|till|til|up\s+until)\b`),
		Around:       p(`(?:around|about|approximately|approx\.?|roughly|circa)\b`),
		Equal:        p(`(?:exactly|precisely|sharp\s+at)\b`),
		SuffixAfter:  p(`or\s+(?:later|after)|onwards?|and\s+(?:after|later)`),
		SuffixBefore: p(`or\s+(?:earlier|before|sooner)|and\s+(?:before|earlier)`),
	}
}
