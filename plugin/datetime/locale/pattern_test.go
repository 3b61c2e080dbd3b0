package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatternModes(t *testing.T) {
	p := MustPattern(`(?P<order>next|last)\s+(?P<weekday>monday|friday)`)

	m, ok := p.Exact("  Next Friday ")
	require.True(t, ok)
	assert.Equal(t, "Next", m.Group("order"))
	assert.Equal(t, "Friday", m.Group("weekday"))
	assert.True(t, m.Has("weekday"))
	assert.False(t, m.Has("year"))

	_, ok = p.Exact("next friday at noon")
	assert.False(t, ok)

	m, ok = p.Begin("next friday at noon")
	require.True(t, ok)
	assert.Equal(t, "at noon", "next friday at noon"[m.Length:])

	m, ok = p.End("due by last monday")
	require.True(t, ok)
	assert.Equal(t, "due by", "due by last monday"[:m.Index])

	all := p.FindAll("next monday or last friday")
	require.Len(t, all, 2)
	assert.Equal(t, "last friday", all[1].Value)
	assert.Equal(t, 15, all[1].Index)

	assert.True(t, p.MatchString("see you next monday"))
	_, ok = p.Find("nothing here")
	assert.False(t, ok)
}

func TestDuplicateGroups(t *testing.T) {
	p := MustPattern(`(?P<day>\d{1,2})/(?P<month>\d{1,2})|(?P<month>[a-z]+)\s+(?P<day>\d{1,2})`)

	m, ok := p.Exact("march 5")
	require.True(t, ok)
	assert.Equal(t, "march", m.Group("month"))
	assert.Equal(t, "5", m.Group("day"))

	m, ok = p.Exact("5/3")
	require.True(t, ok)
	assert.Equal(t, "3", m.Group("month"))
}

func TestPatternsExact(t *testing.T) {
	ps := Patterns{
		MustPattern(`(?P<a>\d+)`),
		MustPattern(`(?P<b>[a-z]+)`),
	}
	m, ok := ps.Exact("abc")
	require.True(t, ok)
	assert.Equal(t, "abc", m.Group("b"))
	_, ok = ps.Exact("abc1")
	assert.False(t, ok)
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "new year", Key("  New-Year. "))
	assert.Equal(t, "sept", Key("Sept."))
	assert.Equal(t, "mothersday", HolidayKey("Mother's Day"))
	assert.Equal(t, "mothersday", HolidayKey("mothers day"))
}
