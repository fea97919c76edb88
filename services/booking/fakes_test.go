package booking

import (
	"context"
	"fmt"
	"time"

	"pharmabook/models"
)

// fakeCalendar is an in-memory CalendarProvider. Free/busy answers reflect
// both the configured busy intervals and any events inserted through it,
// so created bookings occupy their windows like the real calendar.
type fakeCalendar struct {
	busy    []models.BusyInterval
	busyErr error

	searchResults []models.CalendarEvent
	searchErr     error

	events    map[string]models.CalendarEvent
	insertErr error
	updateErr error
	deleteErr error

	inserted      int
	updates       map[string]models.CalendarEvent
	deleted       []string
	freebusyCalls int
}

func newFakeCalendar() *fakeCalendar {
	return &fakeCalendar{
		events:  make(map[string]models.CalendarEvent),
		updates: make(map[string]models.CalendarEvent),
	}
}

func (f *fakeCalendar) QueryFreeBusy(ctx context.Context, start, end time.Time) ([]models.BusyInterval, error) {
	f.freebusyCalls++
	if f.busyErr != nil {
		return nil, f.busyErr
	}
	var out []models.BusyInterval
	for _, b := range f.busy {
		if b.Start.Before(end) && start.Before(b.End) {
			out = append(out, b)
		}
	}
	for _, ev := range f.events {
		bs, err1 := time.Parse(time.RFC3339, ev.Start)
		be, err2 := time.Parse(time.RFC3339, ev.End)
		if err1 != nil || err2 != nil {
			continue
		}
		if bs.Before(end) && start.Before(be) {
			out = append(out, models.BusyInterval{Start: bs, End: be})
		}
	}
	return out, nil
}

func (f *fakeCalendar) ListEventsByRef(ctx context.Context, bookingRef string) ([]models.CalendarEvent, error) {
	for _, ev := range f.events {
		if ev.BookingRef() == bookingRef {
			return []models.CalendarEvent{ev}, nil
		}
	}
	return nil, nil
}

func (f *fakeCalendar) SearchUpcomingEvents(ctx context.Context, query string, timeMin time.Time) ([]models.CalendarEvent, error) {
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.searchResults, nil
}

func (f *fakeCalendar) InsertEvent(ctx context.Context, event models.CalendarEvent) (models.CalendarEvent, error) {
	if f.insertErr != nil {
		return models.CalendarEvent{}, f.insertErr
	}
	f.inserted++
	event.ID = fmt.Sprintf("evt-%d", f.inserted)
	f.events[event.ID] = event
	return event, nil
}

func (f *fakeCalendar) UpdateEvent(ctx context.Context, eventID string, event models.CalendarEvent) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	event.ID = eventID
	f.events[eventID] = event
	f.updates[eventID] = event
	return nil
}

func (f *fakeCalendar) DeleteEvent(ctx context.Context, eventID string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.events, eventID)
	f.deleted = append(f.deleted, eventID)
	return nil
}

type ledgerUpdate struct {
	a1     string
	values [][]interface{}
}

// fakeLedger records appends and range updates.
type fakeLedger struct {
	rows [][]interface{}

	appendErr error
	getErr    error
	updateErr error

	appended [][]interface{}
	updates  []ledgerUpdate
	getCalls int
}

func (f *fakeLedger) AppendRow(ctx context.Context, row []interface{}) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.appended = append(f.appended, row)
	f.rows = append(f.rows, row)
	return nil
}

func (f *fakeLedger) GetAllRows(ctx context.Context) ([][]interface{}, error) {
	f.getCalls++
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.rows, nil
}

func (f *fakeLedger) UpdateRange(ctx context.Context, a1Range string, values [][]interface{}) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updates = append(f.updates, ledgerUpdate{a1: a1Range, values: values})
	return nil
}

// fakeParser resolves exact text to a fixed instant.
type fakeParser struct {
	times map[string]time.Time
}

func (p *fakeParser) Parse(text string, base time.Time) (time.Time, bool) {
	t, ok := p.times[text]
	return t, ok
}

func ledgerRow(ref, notes, status string) []interface{} {
	return []interface{}{
		"01/12/2026 14:00:00 UTC", ref, "book", "flu-shot",
		"01/12/2026 10:00 AM", "01/12/2026 10:30 AM",
		"Alice Ng", "555-0100",
		"retell-chat", notes, status,
	}
}

func newTestService(cal *fakeCalendar, led *fakeLedger, parser *fakeParser, now time.Time) *DefaultBookingService {
	return &DefaultBookingService{
		Calendar: cal,
		Ledger:   led,
		Parser:   parser,
		Location: time.UTC,
		Source:   "retell-chat",
		Now:      func() time.Time { return now },
	}
}
