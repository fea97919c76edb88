package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"pharmabook/models"
)

// Monday, during business hours.
var (
	testNow       = time.Date(2026, 1, 12, 8, 0, 0, 0, time.UTC)
	testPreferred = time.Date(2026, 1, 12, 10, 0, 0, 0, time.UTC)
)

func TestFindSlotsPreferredAvailable(t *testing.T) {
	cal := newFakeCalendar()
	parser := &fakeParser{times: map[string]time.Time{"next Monday 10am": testPreferred}}
	svc := newTestService(cal, &fakeLedger{}, parser, testNow)

	res := svc.FindSlots(context.Background(), models.FindSlotsRequest{
		AppointmentType:       "flu-shot",
		PreferredDatetimeText: "next Monday 10am",
		Limit:                 3,
	})

	if res.Reason != ReasonPreferredAvailable {
		t.Fatalf("reason = %q, want %q", res.Reason, ReasonPreferredAvailable)
	}
	if len(res.Slots) != 1 {
		t.Fatalf("got %d slots, want exactly 1", len(res.Slots))
	}
	if res.Slots[0].Start != "2026-01-12T10:00:00Z" || res.Slots[0].End != "2026-01-12T10:30:00Z" {
		t.Errorf("slot = %s - %s, want the rounded preferred window", res.Slots[0].Start, res.Slots[0].End)
	}
}

func TestFindSlotsPreferredBusyOffersAlternatives(t *testing.T) {
	cal := newFakeCalendar()
	cal.busy = []models.BusyInterval{{
		Start: testPreferred,
		End:   testPreferred.Add(SlotDuration),
	}}
	parser := &fakeParser{times: map[string]time.Time{"next Monday 10am": testPreferred}}
	svc := newTestService(cal, &fakeLedger{}, parser, testNow)

	res := svc.FindSlots(context.Background(), models.FindSlotsRequest{
		AppointmentType:       "flu-shot",
		PreferredDatetimeText: "next Monday 10am",
		Limit:                 3,
	})

	if res.Reason != ReasonPreferredBusy {
		t.Fatalf("reason = %q, want %q", res.Reason, ReasonPreferredBusy)
	}
	if len(res.Slots) != 3 {
		t.Fatalf("got %d slots, want 3", len(res.Slots))
	}

	prev := testPreferred
	for _, slot := range res.Slots {
		start, err := time.Parse(time.RFC3339, slot.Start)
		if err != nil {
			t.Fatalf("unparseable slot start %q: %v", slot.Start, err)
		}
		if !start.After(prev.Add(-time.Nanosecond)) {
			t.Errorf("slots out of order: %v not after %v", start, prev)
		}
		if start.Equal(testPreferred) {
			t.Errorf("busy preferred slot %v was offered", start)
		}
		prev = start
	}
}

func TestFindSlotsScanSkipsWeekend(t *testing.T) {
	// Friday evening: only 17:00 and 17:30 remain, both busy, so the scan
	// must resume on Monday morning.
	friday := time.Date(2026, 1, 16, 17, 0, 0, 0, time.UTC)
	cal := newFakeCalendar()
	cal.busy = []models.BusyInterval{{Start: friday, End: friday.Add(time.Hour)}}
	parser := &fakeParser{times: map[string]time.Time{"friday 5pm": friday}}
	svc := newTestService(cal, &fakeLedger{}, parser, time.Date(2026, 1, 16, 8, 0, 0, 0, time.UTC))

	res := svc.FindSlots(context.Background(), models.FindSlotsRequest{
		AppointmentType:       "flu-shot",
		PreferredDatetimeText: "friday 5pm",
		Limit:                 2,
	})

	if res.Reason != ReasonPreferredBusy {
		t.Fatalf("reason = %q, want %q", res.Reason, ReasonPreferredBusy)
	}
	want := []string{"2026-01-19T09:00:00Z", "2026-01-19T09:30:00Z"}
	if len(res.Slots) != len(want) {
		t.Fatalf("got %d slots, want %d", len(res.Slots), len(want))
	}
	for i, w := range want {
		if res.Slots[i].Start != w {
			t.Errorf("slot[%d].Start = %q, want %q (Monday morning)", i, res.Slots[i].Start, w)
		}
	}
}

func TestFindSlotsClampsToAnHourFromNow(t *testing.T) {
	// Preferred time is in the past; the scan must not offer anything
	// before now+60m.
	past := time.Date(2026, 1, 12, 7, 0, 0, 0, time.UTC)
	now := time.Date(2026, 1, 12, 9, 20, 0, 0, time.UTC)
	cal := newFakeCalendar()
	// Make the rounded anchor itself busy so the forward scan runs.
	cal.busy = []models.BusyInterval{{
		Start: time.Date(2026, 1, 12, 7, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 1, 12, 10, 30, 0, 0, time.UTC),
	}}
	parser := &fakeParser{times: map[string]time.Time{"this morning 7am": past}}
	svc := newTestService(cal, &fakeLedger{}, parser, now)

	res := svc.FindSlots(context.Background(), models.FindSlotsRequest{
		AppointmentType:       "flu-shot",
		PreferredDatetimeText: "this morning 7am",
		Limit:                 1,
	})

	if len(res.Slots) != 1 {
		t.Fatalf("got %d slots, want 1", len(res.Slots))
	}
	start, _ := time.Parse(time.RFC3339, res.Slots[0].Start)
	if start.Before(now.Add(60 * time.Minute)) {
		t.Errorf("offered slot %v starts within an hour of now %v", start, now)
	}
}

func TestFindSlotsFailsClosedOnCalendarError(t *testing.T) {
	cal := newFakeCalendar()
	cal.busyErr = errors.New("calendar unreachable")
	parser := &fakeParser{times: map[string]time.Time{"next Monday 10am": testPreferred}}
	svc := newTestService(cal, &fakeLedger{}, parser, testNow)

	res := svc.FindSlots(context.Background(), models.FindSlotsRequest{
		AppointmentType:       "flu-shot",
		PreferredDatetimeText: "next Monday 10am",
		Limit:                 3,
	})

	if res.Reason != ReasonNoSlots {
		t.Errorf("reason = %q, want %q when every availability check fails closed", res.Reason, ReasonNoSlots)
	}
	if len(res.Slots) != 0 {
		t.Errorf("got %d slots, want none", len(res.Slots))
	}
}

func TestFindSlotsUnparseableText(t *testing.T) {
	cal := newFakeCalendar()
	svc := newTestService(cal, &fakeLedger{}, &fakeParser{}, testNow)

	res := svc.FindSlots(context.Background(), models.FindSlotsRequest{
		AppointmentType:       "flu-shot",
		PreferredDatetimeText: "whenever feels right",
	})

	if res.Reason != ErrInvalidDatetime {
		t.Errorf("reason = %q, want %q", res.Reason, ErrInvalidDatetime)
	}
	if len(res.Slots) != 0 {
		t.Errorf("got %d slots, want none", len(res.Slots))
	}
	if cal.freebusyCalls != 0 {
		t.Errorf("calendar was queried %d times for unparseable text", cal.freebusyCalls)
	}
}
