package rrule

import (
	"sort"
	"time"
)

// maxPeriods bounds the expansion of rules whose filters never match.
const maxPeriods = 1 << 16

// Generator expands a rule from a start moment. Occurrences before the
// start are never produced; COUNT counts from the start.
type Generator struct {
	rule  *Rule
	start time.Time
}

// NewGenerator creates a generator for rule anchored at start. The
// location of start is the location of every occurrence.
func NewGenerator(rule *Rule, start time.Time) *Generator {
	return &Generator{rule: rule, start: start}
}

// All returns up to max occurrences, honouring COUNT and UNTIL.
func (g *Generator) All(max int) []time.Time {
	var out []time.Time
	if max <= 0 {
		return out
	}
	g.each(func(t time.Time) bool {
		out = append(out, t)
		return len(out) < max
	})
	return out
}

// Between returns the occurrences in [from, to].
func (g *Generator) Between(from, to time.Time) []time.Time {
	var out []time.Time
	g.each(func(t time.Time) bool {
		if t.After(to) {
			return false
		}
		if !t.Before(from) {
			out = append(out, t)
		}
		return true
	})
	return out
}

func (g *Generator) each(yield func(time.Time) bool) {
	r := g.rule
	emitted := 0
	for i := 0; i < maxPeriods; i++ {
		for _, c := range g.period(i) {
			if c.Before(g.start) {
				continue
			}
			if !r.Until.IsZero() && c.After(r.Until) {
				return
			}
			if r.Count > 0 && emitted >= r.Count {
				return
			}
			emitted++
			if !yield(c) {
				return
			}
		}
	}
}

// period returns the candidates of the i-th interval step, in order.
func (g *Generator) period(i int) []time.Time {
	r, s := g.rule, g.start
	n := i * max(r.Interval, 1)
	loc := s.Location()

	switch r.Frequency {
	case Secondly:
		return []time.Time{s.Add(time.Duration(n) * time.Second)}
	case Minutely:
		return []time.Time{s.Add(time.Duration(n) * time.Minute)}
	case Hourly:
		return []time.Time{s.Add(time.Duration(n) * time.Hour)}
	case Daily:
		day := time.Date(s.Year(), s.Month(), s.Day()+n, 0, 0, 0, 0, loc)
		if len(r.ByDay) > 0 && !g.onWeekday(day.Weekday()) {
			return nil
		}
		return g.atClock(day)
	case Weekly:
		monday := time.Date(s.Year(), s.Month(), s.Day()-mondayOffset(s.Weekday())+7*n, 0, 0, 0, 0, loc)
		var out []time.Time
		for _, off := range g.weekOffsets() {
			out = append(out, g.atClock(monday.AddDate(0, 0, off))...)
		}
		return out
	case Monthly:
		first := time.Date(s.Year(), s.Month()+time.Month(n), 1, 0, 0, 0, 0, loc)
		return g.onDays(first.Year(), first.Month())
	case Yearly:
		months := r.ByMonth
		if len(months) == 0 {
			months = []int{int(s.Month())}
		}
		months = sorted(months)
		var out []time.Time
		for _, m := range months {
			out = append(out, g.onDays(s.Year()+n, time.Month(m))...)
		}
		return out
	}
	return nil
}

func (g *Generator) onWeekday(wd time.Weekday) bool {
	for _, d := range g.rule.ByDay {
		if d == WeekdayOf(wd) {
			return true
		}
	}
	return false
}

// weekOffsets are the BYDAY days as offsets from Monday.
func (g *Generator) weekOffsets() []int {
	if len(g.rule.ByDay) == 0 {
		return []int{mondayOffset(g.start.Weekday())}
	}
	var offs []int
	for wd, token := range weekdays {
		for _, d := range g.rule.ByDay {
			if d == token {
				offs = append(offs, mondayOffset(wd))
				break
			}
		}
	}
	return sorted(offs)
}

// onDays places BYMONTHDAY (or the start day) in one month. Negative days
// count from the month end; days the month lacks are skipped.
func (g *Generator) onDays(year int, month time.Month) []time.Time {
	days := g.rule.ByMonthDay
	if len(days) == 0 {
		days = []int{g.start.Day()}
	}
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	resolved := make([]int, 0, len(days))
	for _, d := range days {
		if d < 0 {
			d = last + d + 1
		}
		if d >= 1 && d <= last {
			resolved = append(resolved, d)
		}
	}
	var out []time.Time
	for _, d := range sorted(resolved) {
		out = append(out, g.atClock(time.Date(year, month, d, 0, 0, 0, 0, g.start.Location()))...)
	}
	return out
}

// atClock expands day into the BYHOUR x BYMINUTE readings. Without
// them the clock of the start is kept.
func (g *Generator) atClock(day time.Time) []time.Time {
	r, s := g.rule, g.start
	if len(r.ByHour) == 0 && len(r.ByMinute) == 0 {
		return []time.Time{time.Date(day.Year(), day.Month(), day.Day(), s.Hour(), s.Minute(), s.Second(), 0, day.Location())}
	}
	hours := r.ByHour
	if len(hours) == 0 {
		hours = []int{s.Hour()}
	}
	minutes := r.ByMinute
	if len(minutes) == 0 {
		minutes = []int{0}
	}
	var out []time.Time
	for _, h := range sorted(hours) {
		for _, m := range sorted(minutes) {
			out = append(out, time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, day.Location()))
		}
	}
	return out
}

func mondayOffset(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}

func sorted(nums []int) []int {
	out := append([]int(nil), nums...)
	sort.Ints(out)
	return out
}
