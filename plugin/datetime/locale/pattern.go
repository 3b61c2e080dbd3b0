// Package locale defines the configuration capability set the resolvers
// consume: compiled patterns and lookup tables, one struct per resolver.
package locale

import (
	"regexp"
	"strings"
)

// Pattern is a case-insensitive expression compiled once per locale with
// anchored variants for whole-text, leading and trailing matches.
type Pattern struct {
	re    *regexp.Regexp
	exact *regexp.Regexp
	begin *regexp.Regexp
	end   *regexp.Regexp
}

// MustPattern compiles expr and its anchored variants. It panics on an
// invalid expression, which is a defect in a locale table.
func MustPattern(expr string) *Pattern {
	return &Pattern{
		re:    regexp.MustCompile(`(?i)` + expr),
		exact: regexp.MustCompile(`(?i)^\s*(?:` + expr + `)\s*$`),
		begin: regexp.MustCompile(`(?i)^\s*(?:` + expr + `)\s*`),
		end:   regexp.MustCompile(`(?i)\s*(?:` + expr + `)\s*$`),
	}
}

// String returns the source expression.
func (p *Pattern) String() string {
	return p.re.String()
}

// Match is one match with its named groups.
type Match struct {
	Index  int
	Length int
	Value  string
	groups map[string]string
}

// Group returns the first non-empty capture named name.
func (m Match) Group(name string) string {
	return m.groups[name]
}

// Has reports whether a capture named name matched non-empty text.
func (m Match) Has(name string) bool {
	return m.groups[name] != ""
}

func newMatch(re *regexp.Regexp, text string, loc []int) Match {
	m := Match{Index: loc[0], Length: loc[1] - loc[0], Value: text[loc[0]:loc[1]], groups: map[string]string{}}
	for i, name := range re.SubexpNames() {
		if name == "" || 2*i+1 >= len(loc) || loc[2*i] < 0 {
			continue
		}
		if _, seen := m.groups[name]; seen {
			continue
		}
		if v := text[loc[2*i]:loc[2*i+1]]; v != "" {
			m.groups[name] = strings.TrimSpace(v)
		}
	}
	return m
}

func (p *Pattern) run(re *regexp.Regexp, text string) (Match, bool) {
	loc := re.FindStringSubmatchIndex(text)
	if loc == nil {
		return Match{}, false
	}
	return newMatch(re, text, loc), true
}

// Exact matches the whole text, surrounding spaces ignored.
func (p *Pattern) Exact(text string) (Match, bool) {
	return p.run(p.exact, text)
}

// Begin matches at the start of text. The match includes the trailing
// spaces so callers can strip it directly.
func (p *Pattern) Begin(text string) (Match, bool) {
	return p.run(p.begin, text)
}

// End matches at the end of text, including the leading spaces.
func (p *Pattern) End(text string) (Match, bool) {
	return p.run(p.end, text)
}

// Find returns the leftmost match anywhere in text.
func (p *Pattern) Find(text string) (Match, bool) {
	return p.run(p.re, text)
}

// FindAll returns every non-overlapping match in text.
func (p *Pattern) FindAll(text string) []Match {
	locs := p.re.FindAllStringSubmatchIndex(text, -1)
	out := make([]Match, 0, len(locs))
	for _, loc := range locs {
		out = append(out, newMatch(p.re, text, loc))
	}
	return out
}

// MatchString reports whether the pattern occurs in text.
func (p *Pattern) MatchString(text string) bool {
	return p.re.MatchString(text)
}

// Patterns is an ordered list tried in sequence.
type Patterns []*Pattern

// Exact returns the first whole-text match among the list.
func (ps Patterns) Exact(text string) (Match, bool) {
	for _, p := range ps {
		if m, ok := p.Exact(text); ok {
			return m, true
		}
	}
	return Match{}, false
}
