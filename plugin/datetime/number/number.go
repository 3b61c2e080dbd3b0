// Package number is the English reference implementation of the
// number-parsing collaborator consumed by the resolvers.
package number

import (
	"regexp"
	"strconv"
	"strings"
)

// Parser turns number spans into values.
type Parser interface {
	// ParseCardinal parses "three", "twenty-five", "2.5" or "1,000".
	ParseCardinal(text string) (float64, bool)
	// ParseOrdinal parses "third", "twenty-first" or "21st".
	ParseOrdinal(text string) (int, bool)
}

var (
	digitsPattern        = regexp.MustCompile(`^\d{1,3}(,\d{3})+(\.\d+)?$|^\d+(\.\d+)?$`)
	ordinalDigitsPattern = regexp.MustCompile(`^(\d+)\s*(st|nd|rd|th)?$`)
	tokenSplitter        = regexp.MustCompile(`[\s-]+`)
)

var units = map[string]float64{
	"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14, "fifteen": 15,
	"sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19,
	"twenty": 20, "thirty": 30, "forty": 40, "fifty": 50,
	"sixty": 60, "seventy": 70, "eighty": 80, "ninety": 90,
	"dozen": 12,
}

var scales = map[string]float64{
	"hundred":  100,
	"thousand": 1000,
	"million":  1000000,
}

var ordinals = map[string]int{
	"first": 1, "second": 2, "third": 3, "fourth": 4, "fifth": 5,
	"sixth": 6, "seventh": 7, "eighth": 8, "ninth": 9, "tenth": 10,
	"eleventh": 11, "twelfth": 12, "thirteenth": 13, "fourteenth": 14,
	"fifteenth": 15, "sixteenth": 16, "seventeenth": 17, "eighteenth": 18,
	"nineteenth": 19, "twentieth": 20, "thirtieth": 30, "fortieth": 40,
	"fiftieth": 50, "sixtieth": 60, "seventieth": 70, "eightieth": 80,
	"ninetieth": 90, "hundredth": 100,
}

// English parses English number words and digits.
type English struct{}

// NewEnglish creates the English number parser.
func NewEnglish() *English {
	return &English{}
}

// ParseCardinal implements Parser.
func (e *English) ParseCardinal(text string) (float64, bool) {
	s := normalize(text)
	if s == "" {
		return 0, false
	}
	if digitsPattern.MatchString(s) {
		v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
		return v, err == nil
	}
	if base, ok := strings.CutSuffix(s, " and a half"); ok {
		v, ok := e.ParseCardinal(base)
		return v + 0.5, ok
	}
	switch s {
	case "a", "an":
		return 1, true
	case "half", "a half":
		return 0.5, true
	case "a quarter", "quarter":
		return 0.25, true
	}
	return parseWords(tokenSplitter.Split(s, -1))
}

// ParseOrdinal implements Parser.
func (e *English) ParseOrdinal(text string) (int, bool) {
	s := normalize(text)
	if m := ordinalDigitsPattern.FindStringSubmatch(s); m != nil {
		v, err := strconv.Atoi(m[1])
		return v, err == nil
	}
	tokens := tokenSplitter.Split(s, -1)
	if len(tokens) == 0 {
		return 0, false
	}
	last, ok := ordinals[tokens[len(tokens)-1]]
	if !ok {
		return 0, false
	}
	if len(tokens) == 1 {
		return last, true
	}
	prefix, ok := parseWords(tokens[:len(tokens)-1])
	if !ok {
		return 0, false
	}
	if last == 100 {
		return int(prefix) * 100, true
	}
	return int(prefix) + last, true
}

func normalize(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = strings.TrimPrefix(s, "the ")
	return strings.TrimSpace(s)
}

func parseWords(tokens []string) (float64, bool) {
	var total, current float64
	seen := false
	for i, tok := range tokens {
		switch {
		case tok == "" || tok == "and":
			continue
		case (tok == "a" || tok == "an") && i+1 < len(tokens):
			current += 1
			seen = true
		default:
			if v, ok := units[tok]; ok {
				if tok == "dozen" && current > 0 {
					current *= 12
				} else {
					current += v
				}
				seen = true
				continue
			}
			scale, ok := scales[tok]
			if !ok {
				return 0, false
			}
			if current == 0 {
				current = 1
			}
			if scale == 100 {
				current *= scale
			} else {
				total += current * scale
				current = 0
			}
			seen = true
		}
	}
	return total + current, seen
}
