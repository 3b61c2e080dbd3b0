package parser

import (
	"strings"
	"time"

	"github.com/hrygo/chronoparse/plugin/datetime/locale"
	"github.com/hrygo/chronoparse/plugin/datetime/model"
	"github.com/hrygo/chronoparse/plugin/datetime/timex"
	"github.com/hrygo/chronoparse/plugin/datetime/timezone"
)

// TimeZoneResolver resolves a zone reference to a signed minute offset.
type TimeZoneResolver struct {
	cfg *locale.TimeZoneConfig
	*contracts
}

// Resolve implements Resolver. Zone names are case sensitive, so the text
// is not lower-cased.
func (r *TimeZoneResolver) Resolve(text string, ref time.Time) model.Resolution {
	text = strings.Join(strings.Fields(text), " ")
	return r.finish(model.KindTimeZone, r.resolve(text, timex.Wall(ref)))
}

func (r *TimeZoneResolver) resolve(text string, ref time.Time) model.Resolution {
	return firstMatch(text, ref, r.offset, r.utc, r.abbreviation, r.fullName, r.iana)
}

func zoneResolution(text string, minutes int) model.Resolution {
	tx := timezone.FormatUTCOffset(minutes)
	v := model.Scalar(float64(minutes))
	return model.Resolution{
		Success:     true,
		Timex:       tx,
		FutureValue: v,
		PastValue:   v,
		TimeZone: &model.TimeZoneInfo{
			Value:         tx,
			UtcOffsetMins: minutes,
			Text:          text,
		},
	}
}

// offset resolves "utc+8", "gmt-05:30" and "+0530". Offsets beyond the
// configured bound or off the quarter hour are malformed.
func (r *TimeZoneResolver) offset(text string, _ time.Time) model.Resolution {
	m, ok := r.cfg.Offset.Exact(text)
	if !ok {
		return model.NoMatch()
	}
	hours := atoi(m.Group("hour"))
	minutes := 0
	if m.Has("min") {
		minutes = atoi(m.Group("min"))
	}
	if hours < 0 || minutes < 0 || minutes > 59 {
		return model.NoMatch()
	}
	total := hours*60 + minutes
	if m.Group("sign") == "-" {
		total = -total
	}
	if !timezone.ValidOffset(total, r.cfg.MaxOffsetMinutes) {
		return model.NoMatch()
	}
	return zoneResolution(text, total)
}

func (r *TimeZoneResolver) utc(text string, _ time.Time) model.Resolution {
	if _, ok := r.cfg.UTC.Exact(text); !ok {
		return model.NoMatch()
	}
	return zoneResolution(text, 0)
}

func (r *TimeZoneResolver) abbreviation(text string, _ time.Time) model.Resolution {
	m, ok := r.cfg.Abbreviation.Exact(text)
	if !ok {
		return model.NoMatch()
	}
	minutes, ok := r.cfg.Abbreviations[strings.ToLower(m.Group("abbr"))]
	if !ok {
		return model.NoMatch()
	}
	return zoneResolution(text, minutes)
}

func (r *TimeZoneResolver) fullName(text string, _ time.Time) model.Resolution {
	m, ok := r.cfg.FullName.Exact(text)
	if !ok {
		return model.NoMatch()
	}
	minutes, ok := r.cfg.FullNames[locale.Key(m.Group("name"))]
	if !ok {
		return model.NoMatch()
	}
	return zoneResolution(text, minutes)
}

// iana resolves "Asia/Shanghai" at the reference moment, so daylight
// saving is honoured.
func (r *TimeZoneResolver) iana(text string, ref time.Time) model.Resolution {
	m, ok := r.cfg.IANA.Exact(text)
	if !ok {
		return model.NoMatch()
	}
	loc, ok := timezone.Lookup(m.Group("iana"))
	if !ok {
		return model.NoMatch()
	}
	res := zoneResolution(text, timezone.OffsetMinutesAt(loc, ref))
	res.TimeZone.Value = loc.String()
	return res
}
