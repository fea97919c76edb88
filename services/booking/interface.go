package booking

import (
	"context"
	"time"

	"pharmabook/models"
	"pharmabook/services/timeparse"
)

// CalendarProvider is the narrow view of the external calendar the booking
// core is allowed to use. The calendar is the sole source of truth for
// booking state; nothing behind this interface is cached across requests.
type CalendarProvider interface {
	QueryFreeBusy(ctx context.Context, start, end time.Time) ([]models.BusyInterval, error)
	ListEventsByRef(ctx context.Context, bookingRef string) ([]models.CalendarEvent, error)
	SearchUpcomingEvents(ctx context.Context, query string, timeMin time.Time) ([]models.CalendarEvent, error)
	InsertEvent(ctx context.Context, event models.CalendarEvent) (models.CalendarEvent, error)
	UpdateEvent(ctx context.Context, eventID string, event models.CalendarEvent) error
	DeleteEvent(ctx context.Context, eventID string) error
}

// Ledger is the append-only audit log mirroring booking actions. It is
// best-effort: the controller reports ledger failures but never lets them
// reverse a calendar mutation that already succeeded.
type Ledger interface {
	AppendRow(ctx context.Context, row []interface{}) error
	GetAllRows(ctx context.Context) ([][]interface{}, error)
	UpdateRange(ctx context.Context, a1Range string, values [][]interface{}) error
}

// BookingService defines the four booking intents.
type BookingService interface {
	FindSlots(ctx context.Context, req models.FindSlotsRequest) models.FindSlotsResponse
	CreateEvent(ctx context.Context, req models.CreateEventRequest) models.CreateEventResponse
	Reschedule(ctx context.Context, req models.RescheduleRequest) models.RescheduleResponse
	Cancel(ctx context.Context, req models.CancelRequest) models.CancelResponse
}

// DefaultBookingService implements BookingService against an external
// calendar and ledger. Location is the service working timezone used for
// the slot grid and all display formatting; Source tags ledger rows with
// where the booking came from. Now is injectable for tests and defaults to
// time.Now.
type DefaultBookingService struct {
	Calendar CalendarProvider
	Ledger   Ledger
	Parser   timeparse.Parser
	Location *time.Location
	Source   string
	Now      func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
