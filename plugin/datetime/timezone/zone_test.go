package timezone

import (
	"testing"
	"time"
)

func TestParseTimezone(t *testing.T) {
	tests := []struct {
		name    string
		tz      string
		wantErr bool
	}{
		{"UTC", "UTC", false},
		{"empty string defaults to UTC", "", false},
		{"Asia/Shanghai", "Asia/Shanghai", false},
		{"invalid timezone", "Invalid/Timezone", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := ParseTimezone(tt.tz)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseTimezone() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if loc == nil {
				t.Errorf("ParseTimezone() returned nil location")
			}
		})
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{"exact", "Asia/Tokyo", "Asia/Tokyo", true},
		{"lower case", "america/new_york", "America/New_York", true},
		{"no slash", "tokyo", "", false},
		{"unknown", "Mars/Olympus_Mons", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, ok := Lookup(tt.in)
			if ok != tt.ok {
				t.Fatalf("Lookup(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			}
			if ok && loc.String() != tt.want {
				t.Errorf("Lookup(%q) = %s, want %s", tt.in, loc, tt.want)
			}
		})
	}
}

func TestOffsetMinutesAt(t *testing.T) {
	ny, err := ParseTimezone("America/New_York")
	if err != nil {
		t.Fatal(err)
	}
	winter := time.Date(2016, 11, 7, 12, 0, 0, 0, time.UTC)
	summer := time.Date(2016, 7, 7, 12, 0, 0, 0, time.UTC)

	if got := OffsetMinutesAt(ny, winter); got != -300 {
		t.Errorf("winter offset = %d, want -300", got)
	}
	if got := OffsetMinutesAt(ny, summer); got != -240 {
		t.Errorf("summer offset = %d, want -240", got)
	}
	if got := OffsetMinutesAt(nil, winter); got != 0 {
		t.Errorf("nil location offset = %d, want 0", got)
	}
}

func TestFormatUTCOffset(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "UTC+00:00"},
		{480, "UTC+08:00"},
		{-330, "UTC-05:30"},
		{345, "UTC+05:45"},
	}

	for _, tt := range tests {
		if got := FormatUTCOffset(tt.minutes); got != tt.want {
			t.Errorf("FormatUTCOffset(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestValidOffset(t *testing.T) {
	if !ValidOffset(-720, 720) || !ValidOffset(345, 840) {
		t.Error("expected in-range quarter-hour offsets to be valid")
	}
	if ValidOffset(780, 720) {
		t.Error("expected +13:00 to exceed a 12 hour bound")
	}
	if ValidOffset(490, 720) {
		t.Error("expected a 10 minute remainder to be rejected")
	}
}
