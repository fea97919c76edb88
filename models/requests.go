package models

// FindSlotsRequest asks for open slots around a natural-language
// preferred time ("next Monday 10am").
type FindSlotsRequest struct {
	AppointmentType       string `json:"appointment_type"`
	PreferredDatetimeText string `json:"preferred_datetime_text"`
	Limit                 int    `json:"limit"`
}

type FindSlotsResponse struct {
	Slots  []Slot `json:"slots"`
	Reason string `json:"reason,omitempty"`
}

// CreateEventRequest books a previously discovered slot.
type CreateEventRequest struct {
	AppointmentType string  `json:"appointment_type"`
	Slot            Slot    `json:"slot"`
	Patient         Patient `json:"patient"`
	IdempotencyKey  string  `json:"idempotency_key,omitempty"`
	Notes           string  `json:"notes,omitempty"`
}

type CreateEventResponse struct {
	Success          bool   `json:"success"`
	BookingRef       string `json:"booking_ref,omitempty"`
	EventID          string `json:"event_id,omitempty"`
	ConfirmSpeakable string `json:"confirm_speakable,omitempty"`
	Error            string `json:"error,omitempty"`
	Reason           string `json:"reason,omitempty"`
}

// RescheduleRequest moves an existing booking. The booking is located by
// reference when given, otherwise by patient name + contact. Without
// ConfirmReschedule the call only proposes a slot and mutates nothing.
type RescheduleRequest struct {
	BookingRef               string `json:"booking_ref,omitempty"`
	Name                     string `json:"name,omitempty"`
	Contact                  string `json:"contact,omitempty"`
	NewPreferredDatetimeText string `json:"new_preferred_datetime_text"`
	ConfirmReschedule        bool   `json:"confirm_reschedule,omitempty"`
	Notes                    string `json:"notes,omitempty"`
}

type RescheduleResponse struct {
	Success          bool   `json:"success"`
	BookingRef       string `json:"booking_ref,omitempty"`
	OldSlot          string `json:"old_slot,omitempty"`
	NewSlot          *Slot  `json:"new_slot,omitempty"`
	AvailableSlots   []Slot `json:"available_slots,omitempty"`
	ConfirmSpeakable string `json:"confirm_speakable,omitempty"`
	Error            string `json:"error,omitempty"`
	Reason           string `json:"reason,omitempty"`
}

// CancelRequest cancels an existing booking, located the same way as a
// reschedule.
type CancelRequest struct {
	BookingRef string `json:"booking_ref,omitempty"`
	Name       string `json:"name,omitempty"`
	Contact    string `json:"contact,omitempty"`
	Reason     string `json:"reason,omitempty"`
}

type CancelResponse struct {
	Success       bool   `json:"success"`
	BookingRef    string `json:"booking_ref,omitempty"`
	CancelledSlot string `json:"cancelled_slot,omitempty"`
	Error         string `json:"error,omitempty"`
	Reason        string `json:"reason,omitempty"`
}
