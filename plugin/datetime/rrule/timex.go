package rrule

import (
	"math"
	"regexp"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/hrygo/chronoparse/plugin/datetime/timex"
)

var (
	weekdaySetPattern = regexp.MustCompile(`^XXXX-WXX-([1-7])(?:T(\d{2})(?::(\d{2}))?(?::\d{2})?)?$`)
	clockSetPattern   = regexp.MustCompile(`^T(\d{2})(?::(\d{2}))?(?::\d{2})?$`)
	dateSetPattern    = regexp.MustCompile(`^XXXX-(\d{2}|XX)-(\d{2})(?:T(\d{2})(?::(\d{2}))?(?::\d{2})?)?$`)
)

var unitFrequencies = map[timex.Unit]Frequency{
	timex.Year:   Yearly,
	timex.Month:  Monthly,
	timex.Week:   Weekly,
	timex.Day:    Daily,
	timex.Hour:   Hourly,
	timex.Minute: Minutely,
	timex.Second: Secondly,
}

var isoWeekdays = [...]Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// FromTimex maps the timex of a set resolution onto a rule:
//
//	P1D            FREQ=DAILY
//	P2W            FREQ=WEEKLY;INTERVAL=2
//	XXXX-WXX-1T17  FREQ=WEEKLY;BYDAY=MO;BYHOUR=17;BYMINUTE=0
//	T09            FREQ=DAILY;BYHOUR=9;BYMINUTE=0
//	XXXX-12-25     FREQ=YEARLY;BYMONTH=12;BYMONTHDAY=25
func FromTimex(tx string) (*Rule, error) {
	if parts, ok := timex.ParseDurationTimex(tx); ok {
		return fromDuration(tx, parts)
	}
	if m := weekdaySetPattern.FindStringSubmatch(tx); m != nil {
		day, _ := strconv.Atoi(m[1])
		rule := &Rule{Frequency: Weekly, Interval: 1, ByDay: []Weekday{isoWeekdays[day-1]}}
		withClock(rule, m[2], m[3])
		return rule, nil
	}
	if m := clockSetPattern.FindStringSubmatch(tx); m != nil {
		rule := &Rule{Frequency: Daily, Interval: 1}
		withClock(rule, m[1], m[2])
		return rule, nil
	}
	if m := dateSetPattern.FindStringSubmatch(tx); m != nil {
		day, _ := strconv.Atoi(m[2])
		rule := &Rule{Frequency: Monthly, Interval: 1, ByMonthDay: []int{day}}
		if m[1] != "XX" {
			month, _ := strconv.Atoi(m[1])
			rule.Frequency = Yearly
			rule.ByMonth = []int{month}
		}
		withClock(rule, m[3], m[4])
		return rule, nil
	}
	return nil, errors.Errorf("timex %q does not describe a recurrence", tx)
}

func fromDuration(tx string, parts []timex.DurationPart) (*Rule, error) {
	if len(parts) != 1 {
		return nil, errors.Errorf("compound period %q has no single frequency", tx)
	}
	p := parts[0]
	if p.Value < 1 || p.Value != math.Trunc(p.Value) {
		return nil, errors.Errorf("period %q is not a whole number of units", tx)
	}
	interval := int(p.Value)

	if p.Unit == timex.BusinessDay {
		if interval != 1 {
			return nil, errors.Errorf("business day period %q must be one day", tx)
		}
		return &Rule{
			Frequency: Daily,
			Interval:  1,
			ByDay:     []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday},
		}, nil
	}
	freq, ok := unitFrequencies[p.Unit]
	if !ok {
		return nil, errors.Errorf("period %q has an unknown unit", tx)
	}
	return &Rule{Frequency: freq, Interval: interval}, nil
}

func withClock(rule *Rule, hour, minute string) {
	if hour == "" {
		return
	}
	h, _ := strconv.Atoi(hour)
	m, _ := strconv.Atoi(minute)
	rule.ByHour = []int{h}
	rule.ByMinute = []int{m}
}

// Next returns the first occurrence of a set timex at or after from.
func Next(tx string, from time.Time) (time.Time, error) {
	rule, err := FromTimex(tx)
	if err != nil {
		return time.Time{}, err
	}
	all := NewGenerator(rule, from).All(1)
	if len(all) == 0 {
		return time.Time{}, errors.Errorf("rule %s has no occurrence after %s", rule, from.Format(time.RFC3339))
	}
	return all[0], nil
}
