package booking

import (
	"regexp"
	"testing"
)

func TestBookingRefDeterministic(t *testing.T) {
	a := BookingRef("Alice Ng", "555-0100", "2026-01-12T10:00:00Z", "flu-shot")
	b := BookingRef("Alice Ng", "555-0100", "2026-01-12T10:00:00Z", "flu-shot")
	if a != b {
		t.Errorf("same inputs produced different refs: %q vs %q", a, b)
	}
}

func TestBookingRefFormat(t *testing.T) {
	ref := BookingRef("Alice Ng", "555-0100", "2026-01-12T10:00:00Z", "flu-shot")
	if !regexp.MustCompile(`^[0-9A-F]{3}-[0-9A-F]{3}$`).MatchString(ref) {
		t.Errorf("ref %q does not match the XXX-XXX format", ref)
	}
}

func TestBookingRefVariesWithInputs(t *testing.T) {
	base := BookingRef("Alice Ng", "555-0100", "2026-01-12T10:00:00Z", "flu-shot")
	variants := []string{
		BookingRef("Bob Osei", "555-0100", "2026-01-12T10:00:00Z", "flu-shot"),
		BookingRef("Alice Ng", "555-0177", "2026-01-12T10:00:00Z", "flu-shot"),
		BookingRef("Alice Ng", "555-0100", "2026-01-12T10:30:00Z", "flu-shot"),
		BookingRef("Alice Ng", "555-0100", "2026-01-12T10:00:00Z", "consultation"),
	}
	for i, v := range variants {
		if v == base {
			t.Errorf("variant %d collided with base ref %q", i, base)
		}
	}
}
