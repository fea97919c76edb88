package booking

import (
	"strings"
	"testing"
	"time"
)

func TestRoundToHalfHour(t *testing.T) {
	cases := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "already aligned on the hour",
			in:   time.Date(2026, 1, 12, 10, 0, 0, 0, time.UTC),
			want: time.Date(2026, 1, 12, 10, 0, 0, 0, time.UTC),
		},
		{
			name: "already aligned on the half hour",
			in:   time.Date(2026, 1, 12, 10, 30, 0, 0, time.UTC),
			want: time.Date(2026, 1, 12, 10, 30, 0, 0, time.UTC),
		},
		{
			name: "just under fifteen rounds down",
			in:   time.Date(2026, 1, 12, 10, 14, 59, 0, time.UTC),
			want: time.Date(2026, 1, 12, 10, 0, 0, 0, time.UTC),
		},
		{
			name: "fifteen rounds to half",
			in:   time.Date(2026, 1, 12, 10, 15, 0, 0, time.UTC),
			want: time.Date(2026, 1, 12, 10, 30, 0, 0, time.UTC),
		},
		{
			name: "just under forty-five rounds to half",
			in:   time.Date(2026, 1, 12, 10, 44, 59, 0, time.UTC),
			want: time.Date(2026, 1, 12, 10, 30, 0, 0, time.UTC),
		},
		{
			name: "forty-five rounds to next hour",
			in:   time.Date(2026, 1, 12, 10, 45, 0, 0, time.UTC),
			want: time.Date(2026, 1, 12, 11, 0, 0, 0, time.UTC),
		},
		{
			name: "aligned minute with stray seconds snaps clean",
			in:   time.Date(2026, 1, 12, 10, 30, 12, 0, time.UTC),
			want: time.Date(2026, 1, 12, 10, 30, 0, 0, time.UTC),
		},
		{
			name: "rolls over midnight",
			in:   time.Date(2026, 1, 12, 23, 50, 0, 0, time.UTC),
			want: time.Date(2026, 1, 13, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := RoundToHalfHour(tc.in)
			if !got.Equal(tc.want) {
				t.Errorf("RoundToHalfHour(%v) = %v, want %v", tc.in, got, tc.want)
			}
			// Idempotent: a second application changes nothing.
			if again := RoundToHalfHour(got); !again.Equal(got) {
				t.Errorf("RoundToHalfHour not idempotent: %v -> %v", got, again)
			}
		})
	}
}

func TestIsBusinessSlot(t *testing.T) {
	cases := []struct {
		name string
		in   time.Time
		want bool
	}{
		{"monday opening slot", time.Date(2026, 1, 12, 9, 0, 0, 0, time.UTC), true},
		{"last slot of the day", time.Date(2026, 1, 12, 17, 30, 0, 0, time.UTC), true},
		{"midday half hour", time.Date(2026, 1, 14, 13, 30, 0, 0, time.UTC), true},
		{"closing hour excluded", time.Date(2026, 1, 12, 18, 0, 0, 0, time.UTC), false},
		{"before opening", time.Date(2026, 1, 12, 8, 30, 0, 0, time.UTC), false},
		{"off-grid minute", time.Date(2026, 1, 12, 9, 15, 0, 0, time.UTC), false},
		{"saturday", time.Date(2026, 1, 17, 10, 0, 0, 0, time.UTC), false},
		{"sunday", time.Date(2026, 1, 18, 10, 0, 0, 0, time.UTC), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsBusinessSlot(tc.in); got != tc.want {
				t.Errorf("IsBusinessSlot(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestSpeakableRange(t *testing.T) {
	start := time.Date(2026, 1, 12, 9, 0, 0, 0, time.UTC)
	end := start.Add(SlotDuration)

	got := SpeakableRange(start, end, time.UTC)
	want := "Mon Jan 12, 9:00 AM – 9:30 AM"
	if got != want {
		t.Errorf("SpeakableRange = %q, want %q", got, want)
	}
	if strings.Contains(got, "09:") {
		t.Errorf("SpeakableRange carries a leading zero: %q", got)
	}
}

func TestSpeakableRangeAfternoon(t *testing.T) {
	start := time.Date(2026, 1, 14, 17, 30, 0, 0, time.UTC)
	end := start.Add(SlotDuration)

	got := SpeakableRange(start, end, time.UTC)
	want := "Wed Jan 14, 5:30 PM – 6:00 PM"
	if got != want {
		t.Errorf("SpeakableRange = %q, want %q", got, want)
	}
}
