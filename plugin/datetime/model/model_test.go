package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestValue(t *testing.T) {
	i := Instant(day(2016, 11, 7))
	got, ok := i.Instant()
	assert.True(t, ok)
	assert.Equal(t, day(2016, 11, 7), got)
	_, _, ok = i.Range()
	assert.False(t, ok)
	start, ok := i.Start()
	assert.True(t, ok)
	assert.Equal(t, got, start)

	r := Range(day(2016, 11, 7), day(2016, 11, 14))
	s, e, ok := r.Range()
	assert.True(t, ok)
	assert.Equal(t, day(2016, 11, 7), s)
	assert.Equal(t, day(2016, 11, 14), e)
	assert.Equal(t, "[2016-11-07 00:00:00, 2016-11-14 00:00:00)", r.String())

	sc := Scalar(15768000)
	v, ok := sc.Scalar()
	assert.True(t, ok)
	assert.InDelta(t, 15768000, v, 0)
	_, ok = sc.Start()
	assert.False(t, ok)

	tx := Text("XXXX-WXX-1")
	text, ok := tx.Text()
	assert.True(t, ok)
	assert.Equal(t, "XXXX-WXX-1", text)

	var none Value
	assert.True(t, none.IsNone())
	assert.Equal(t, "<none>", none.String())
	assert.Equal(t, "instant", ValueInstant.String())
}

func TestValueEqual(t *testing.T) {
	shanghai := time.FixedZone("CST", 8*3600)
	a := Instant(time.Date(2016, 11, 7, 8, 0, 0, 0, shanghai))
	b := Instant(day(2016, 11, 7))
	assert.True(t, a.Equal(b))
	assert.False(t, Instant(day(2016, 11, 7)).Equal(Range(day(2016, 11, 7), day(2016, 11, 8))))
	assert.False(t, Scalar(1).Equal(Scalar(2)))
	assert.True(t, Text("P1D").Equal(Text("P1D")))

	res := Resolution{FutureValue: Instant(day(2016, 11, 27)), PastValue: Instant(day(2016, 10, 27))}
	assert.True(t, res.IsAmbiguous())
	res.PastValue = res.FutureValue
	assert.False(t, res.IsAmbiguous())
}

func TestModifier(t *testing.T) {
	tests := []struct {
		mod     Modifier
		want    string
		changes bool
	}{
		{Modifier{Kind: ModifierBefore}, ModBefore, true},
		{Modifier{Kind: ModifierBefore, Inclusive: true}, ModUntil, true},
		{Modifier{Kind: ModifierAfter}, ModAfter, true},
		{Modifier{Kind: ModifierAfter, Inclusive: true}, ModSince, true},
		{Modifier{Kind: ModifierSince}, ModSince, true},
		{Modifier{Kind: ModifierUntil}, ModUntil, true},
		{Modifier{Kind: ModifierAround}, ModApprox, false},
		{Modifier{Kind: ModifierEqual}, "", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.mod.Mod())
		assert.Equal(t, tt.changes, tt.mod.ChangesRange())
	}

	assert.Equal(t, "before", CombineMod("", "before"))
	assert.Equal(t, "end", CombineMod("end", ""))
	assert.Equal(t, "before-end", CombineMod("end", "before"))
	assert.Equal(t, "before-approx", CombineMod(CombineMod("", "approx"), "before"))
}

func TestDictionary(t *testing.T) {
	d := NewDictionary()
	d.Set(KeyTimex, "T20")
	d.Add(KeyComment, "")
	d.Add(KeyMod, ModSince)
	d.Set(KeyType, "timerange")
	d.Set(KeyStart, "20:00:00")
	d.Set(KeyTimex, "T20")

	assert.Equal(t, []string{KeyTimex, KeyMod, KeyType, KeyStart}, d.Keys())
	assert.Equal(t, 4, d.Len())
	assert.False(t, d.Has(KeyComment))
	v, ok := d.Get(KeyStart)
	assert.True(t, ok)
	assert.Equal(t, "20:00:00", v)

	out, err := json.Marshal(ValueSet{Values: []*ResolutionDictionary{d}})
	require.NoError(t, err)
	assert.Equal(t, `{"valueSet":[{"timex":"T20","Mod":"since","type":"timerange","start":"20:00:00"}]}`, string(out))
}

func TestSpanTrimmed(t *testing.T) {
	s := Span{Text: "before next Friday", Start: 10, Length: 18, Kind: KindDate}
	got := s.Trimmed(7, 18)
	assert.Equal(t, "next Friday", got.Text)
	assert.Equal(t, 17, got.Start)
	assert.Equal(t, 11, got.Length)
	assert.Equal(t, KindDate, got.Kind)
}

func TestDateContext(t *testing.T) {
	ctx := DateContext{Year: 2020}

	t.Run("day", func(t *testing.T) {
		res := ctx.ApplyTo(Resolution{Success: true, Timex: "XXXX-03-05"})
		assert.Equal(t, "2020-03-05", res.Timex)
		got, _ := res.FutureValue.Instant()
		assert.Equal(t, day(2020, 3, 5), got)
	})

	t.Run("month", func(t *testing.T) {
		res := ctx.ApplyTo(Resolution{Success: true, Timex: "XXXX-05"})
		assert.Equal(t, "2020-05", res.Timex)
		s, e, _ := res.PastValue.Range()
		assert.Equal(t, day(2020, 5, 1), s)
		assert.Equal(t, day(2020, 6, 1), e)
	})

	t.Run("range crossing the year", func(t *testing.T) {
		res := ctx.ApplyTo(Resolution{Success: true, Timex: "(XXXX-12-20,XXXX-01-05,P16D)"})
		assert.Equal(t, "(2020-12-20,2021-01-05,P16D)", res.Timex)
	})

	t.Run("untouched", func(t *testing.T) {
		in := Resolution{Success: true, Timex: "2016-03-05"}
		assert.Equal(t, in, ctx.ApplyTo(in))
		in = Resolution{Success: true, Timex: "XXXX-02-29"}
		assert.Equal(t, in, DateContext{Year: 2019}.ApplyTo(in))
		in = Resolution{Success: true, Timex: "XXXX-03-05"}
		assert.Equal(t, in, DateContext{}.ApplyTo(in))
		assert.Equal(t, NoMatch(), ctx.ApplyTo(NoMatch()))
	})
}
