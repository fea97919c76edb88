package models

import "time"

// Slot is a fixed 30-minute appointment window. Start and End are ISO-8601
// strings with an explicit zone offset; Speakable is the phrase the voice
// agent reads out.
type Slot struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	Speakable string `json:"speakable"`
}

// Patient identifies who the appointment is for.
type Patient struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Email   string `json:"email,omitempty"`
}

// BusyInterval is an occupied window reported by the calendar's free/busy
// query. It is recomputed on every availability check and never cached.
type BusyInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// CalendarEvent is the provider-side materialization of a booking. The
// booking reference lives in PrivateProps under "bookingRef"; the calendar
// is the sole source of truth for booking state.
type CalendarEvent struct {
	ID           string            `json:"id"`
	Summary      string            `json:"summary"`
	Description  string            `json:"description"`
	Start        string            `json:"start"`
	End          string            `json:"end"`
	TimeZone     string            `json:"timeZone,omitempty"`
	PrivateProps map[string]string `json:"privateProps,omitempty"`
}

// BookingRef returns the reference the event was tagged with at creation,
// or "" for events not created through this service.
func (e *CalendarEvent) BookingRef() string {
	if e == nil || e.PrivateProps == nil {
		return ""
	}
	return e.PrivateProps["bookingRef"]
}

// Booking status values as written to the ledger.
const (
	StatusConfirmed   = "confirmed"
	StatusRescheduled = "rescheduled"
	StatusCancelled   = "cancelled"
)
