// Package timezone resolves time-zone identifiers and formats UTC offsets.
//
// Offsets are whole minutes east of UTC. Zone identifiers are IANA names
// such as "Asia/Shanghai"; their offset depends on the moment it is taken
// at because of daylight saving.
package timezone

import (
	"fmt"
	"strings"
	"time"
)

// TimezoneUTC is the identifier of coordinated universal time.
const TimezoneUTC = "UTC"

// ParseTimezone parses an IANA timezone identifier (e.g., "Asia/Shanghai").
// If the timezone is invalid, returns UTC and an error.
func ParseTimezone(tz string) (*time.Location, error) {
	if tz == "" || tz == TimezoneUTC {
		return time.UTC, nil
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC, fmt.Errorf("invalid timezone %q: %w", tz, err)
	}

	return loc, nil
}

// IsValidTimezone checks if a timezone identifier is valid.
func IsValidTimezone(tz string) bool {
	_, err := ParseTimezone(tz)
	return err == nil
}

// Lookup finds a zone by name, retrying with each path segment title-cased
// so that "america/new_york" finds "America/New_York".
func Lookup(name string) (*time.Location, bool) {
	name = strings.TrimSpace(name)
	if name == "" || !strings.Contains(name, "/") {
		return nil, false
	}
	if loc, err := time.LoadLocation(name); err == nil {
		return loc, true
	}
	if loc, err := time.LoadLocation(titleSegments(name)); err == nil {
		return loc, true
	}
	return nil, false
}

func titleSegments(name string) string {
	segments := strings.Split(name, "/")
	for i, seg := range segments {
		words := strings.Split(strings.ToLower(seg), "_")
		for j, w := range words {
			if w != "" {
				words[j] = strings.ToUpper(w[:1]) + w[1:]
			}
		}
		segments[i] = strings.Join(words, "_")
	}
	return strings.Join(segments, "/")
}

// OffsetMinutesAt returns the UTC offset of loc at the wall-clock moment
// ref, in minutes.
func OffsetMinutesAt(loc *time.Location, ref time.Time) int {
	if loc == nil {
		return 0
	}
	at := time.Date(ref.Year(), ref.Month(), ref.Day(), ref.Hour(), ref.Minute(), ref.Second(), 0, loc)
	_, secs := at.Zone()
	return secs / 60
}

// FormatUTCOffset renders an offset in minutes as UTC+08:00 or UTC-05:30.
func FormatUTCOffset(minutes int) string {
	sign := "+"
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	return fmt.Sprintf("UTC%s%02d:%02d", sign, minutes/60, minutes%60)
}

// ValidOffset reports whether minutes is a plausible zone offset: within
// max in either direction and on a quarter hour.
func ValidOffset(minutes, max int) bool {
	if minutes < -max || minutes > max {
		return false
	}
	return minutes%15 == 0
}
