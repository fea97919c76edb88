package booking

import "fmt"

// Error codes surfaced to the voice agent in structured failure responses.
const (
	ErrValidation         = "validation_error"
	ErrSlotTaken          = "slot_taken"
	ErrBookingNotFound    = "booking_not_found"
	ErrInvalidDatetime    = "invalid_datetime"
	ErrNoSlotsAvailable   = "no_slots_available"
	ErrUpdateFailed       = "update_failed"
	ErrCancellationFailed = "cancellation_failed"
)

// Reason strings for slot discovery.
const (
	ReasonPreferredAvailable = "preferred_time_available"
	ReasonPreferredBusy      = "preferred_time_busy"
	ReasonNoSlots            = "no_slots_available"
	ReasonBadPayload         = "bad_payload"
)

// BookingError pairs a taxonomy code with a human-readable message. Code
// maps straight onto the Error field of the response bodies.
type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}
