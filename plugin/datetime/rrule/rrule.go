// Package rrule projects set resolutions onto RFC 5545 recurrence rules
// and expands them into concrete occurrences.
package rrule

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Frequency is the FREQ part of a rule.
type Frequency string

const (
	Secondly Frequency = "SECONDLY"
	Minutely Frequency = "MINUTELY"
	Hourly   Frequency = "HOURLY"
	Daily    Frequency = "DAILY"
	Weekly   Frequency = "WEEKLY"
	Monthly  Frequency = "MONTHLY"
	Yearly   Frequency = "YEARLY"
)

// Weekday is a BYDAY token.
type Weekday string

const (
	Sunday    Weekday = "SU"
	Monday    Weekday = "MO"
	Tuesday   Weekday = "TU"
	Wednesday Weekday = "WE"
	Thursday  Weekday = "TH"
	Friday    Weekday = "FR"
	Saturday  Weekday = "SA"
)

var weekdays = map[time.Weekday]Weekday{
	time.Sunday:    Sunday,
	time.Monday:    Monday,
	time.Tuesday:   Tuesday,
	time.Wednesday: Wednesday,
	time.Thursday:  Thursday,
	time.Friday:    Friday,
	time.Saturday:  Saturday,
}

// WeekdayOf converts a Go weekday.
func WeekdayOf(wd time.Weekday) Weekday {
	return weekdays[wd]
}

// Rule is a recurrence rule. Only the parts a set resolution can carry
// are modelled.
type Rule struct {
	Frequency  Frequency
	Interval   int
	Count      int
	Until      time.Time
	ByDay      []Weekday
	ByMonthDay []int
	ByMonth    []int
	ByHour     []int
	ByMinute   []int
}

const untilLayout = "20060102T150405Z"

// Parse reads a rule such as "FREQ=WEEKLY;BYDAY=MO,WE;COUNT=10".
func Parse(s string) (*Rule, error) {
	rule := &Rule{Interval: 1}
	for _, part := range strings.Split(s, ";") {
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		key, value = strings.ToUpper(strings.TrimSpace(key)), strings.TrimSpace(value)

		var err error
		switch key {
		case "FREQ":
			rule.Frequency = Frequency(strings.ToUpper(value))
		case "INTERVAL":
			rule.Interval, err = strconv.Atoi(value)
		case "COUNT":
			rule.Count, err = strconv.Atoi(value)
		case "UNTIL":
			rule.Until, err = time.Parse(untilLayout, value)
		case "BYDAY":
			for _, d := range strings.Split(value, ",") {
				if d = strings.ToUpper(strings.TrimSpace(d)); d != "" {
					rule.ByDay = append(rule.ByDay, Weekday(d))
				}
			}
		case "BYMONTHDAY":
			rule.ByMonthDay, err = parseInts(value)
		case "BYMONTH":
			rule.ByMonth, err = parseInts(value)
		case "BYHOUR":
			rule.ByHour, err = parseInts(value)
		case "BYMINUTE":
			rule.ByMinute, err = parseInts(value)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "invalid %s in rule %q", key, s)
		}
	}

	if rule.Frequency == "" {
		return nil, errors.Errorf("missing FREQ in rule %q", s)
	}
	if rule.Interval < 1 {
		rule.Interval = 1
	}
	return rule, nil
}

func parseInts(value string) ([]int, error) {
	var nums []int
	for _, p := range strings.Split(value, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		nums = append(nums, n)
	}
	return nums, nil
}

// String renders the rule in RFC 5545 form.
func (r *Rule) String() string {
	parts := []string{"FREQ=" + string(r.Frequency)}
	if r.Interval > 1 {
		parts = append(parts, fmt.Sprintf("INTERVAL=%d", r.Interval))
	}
	if r.Count > 0 {
		parts = append(parts, fmt.Sprintf("COUNT=%d", r.Count))
	}
	if !r.Until.IsZero() {
		parts = append(parts, "UNTIL="+r.Until.UTC().Format(untilLayout))
	}
	if len(r.ByDay) > 0 {
		days := make([]string, len(r.ByDay))
		for i, d := range r.ByDay {
			days[i] = string(d)
		}
		parts = append(parts, "BYDAY="+strings.Join(days, ","))
	}
	for _, l := range []struct {
		key  string
		nums []int
	}{
		{"BYMONTH", r.ByMonth},
		{"BYMONTHDAY", r.ByMonthDay},
		{"BYHOUR", r.ByHour},
		{"BYMINUTE", r.ByMinute},
	} {
		if len(l.nums) > 0 {
			parts = append(parts, l.key+"="+joinInts(l.nums))
		}
	}
	return strings.Join(parts, ";")
}

func joinInts(nums []int) string {
	strs := make([]string, len(nums))
	for i, n := range nums {
		strs[i] = strconv.Itoa(n)
	}
	return strings.Join(strs, ",")
}
