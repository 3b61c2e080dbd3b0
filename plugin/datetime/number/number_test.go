package number

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnglish_ParseCardinal(t *testing.T) {
	p := NewEnglish()

	tests := []struct {
		input string
		want  float64
	}{
		{"3", 3},
		{"2.5", 2.5},
		{"1,000", 1000},
		{"three", 3},
		{"twenty-five", 25},
		{"twenty five", 25},
		{"a hundred", 100},
		{"one hundred and twenty", 120},
		{"two thousand sixteen", 2016},
		{"an", 1},
		{"half", 0.5},
		{"two and a half", 2.5},
		{"a dozen", 12},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := p.ParseCardinal(tt.input)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEnglish_ParseCardinalRejects(t *testing.T) {
	p := NewEnglish()
	for _, input := range []string{"", "monday", "three apples", "first"} {
		_, ok := p.ParseCardinal(input)
		assert.False(t, ok, input)
	}
}

func TestEnglish_ParseOrdinal(t *testing.T) {
	p := NewEnglish()

	tests := []struct {
		input string
		want  int
	}{
		{"1st", 1},
		{"22nd", 22},
		{"27th", 27},
		{"the 3rd", 3},
		{"first", 1},
		{"twelfth", 12},
		{"twenty-first", 21},
		{"thirty first", 31},
		{"the fifth", 5},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := p.ParseOrdinal(tt.input)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := p.ParseOrdinal("five apples")
	assert.False(t, ok)
}
