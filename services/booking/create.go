package booking

import (
	"context"
	"fmt"
	"time"

	"pharmabook/models"
	"pharmabook/utils"

	"go.uber.org/zap"
)

// CreateEvent books a slot. Creation is idempotent on the derived booking
// reference: a repeat of the same patient+slot+type returns the existing
// booking's identity without writing anything. Availability is re-checked
// immediately before the insert to narrow the gap between discovery and
// write; the remaining race window is accepted.
func (s *DefaultBookingService) CreateEvent(ctx context.Context, req models.CreateEventRequest) models.CreateEventResponse {
	logger := utils.GetLogger()
	ref := BookingRef(req.Patient.Name, req.Patient.Contact, req.Slot.Start, req.AppointmentType)

	if existing := s.resolveByRef(ctx, ref); existing != nil {
		logger.Info("create: idempotent replay, returning existing booking",
			zap.String("bookingRef", ref), zap.String("eventID", existing.ID))
		return models.CreateEventResponse{
			Success:          true,
			BookingRef:       ref,
			EventID:          existing.ID,
			ConfirmSpeakable: s.speakableISO(req.Slot.Start, req.Slot.End),
		}
	}

	start, err := time.Parse(time.RFC3339, req.Slot.Start)
	if err != nil {
		return models.CreateEventResponse{
			Success: false,
			Error:   ErrValidation,
			Reason:  fmt.Sprintf("invalid slot start %q", req.Slot.Start),
		}
	}

	if !s.IsSlotAvailable(ctx, start.In(s.Location)) {
		return models.CreateEventResponse{
			Success: false,
			Error:   ErrSlotTaken,
			Reason:  "slot_no_longer_available",
		}
	}

	event := models.CalendarEvent{
		Summary:     req.AppointmentType + " - " + req.Patient.Name,
		Description: fmt.Sprintf("Contact: %s\nRef: %s", req.Patient.Contact, ref),
		Start:       req.Slot.Start,
		End:         req.Slot.End,
		TimeZone:    s.Location.String(),
		PrivateProps: map[string]string{
			"bookingRef": ref,
		},
	}
	if req.IdempotencyKey != "" {
		event.PrivateProps["idempotencyKey"] = req.IdempotencyKey
	}

	created, err := s.Calendar.InsertEvent(ctx, event)
	if err != nil {
		logger.Error("create: calendar insert failed", zap.String("bookingRef", ref), zap.Error(err))
		return models.CreateEventResponse{
			Success: false,
			Error:   ErrUpdateFailed,
			Reason:  fmt.Sprintf("failed to create calendar event: %v", err),
		}
	}

	// Ledger append is best-effort; the calendar write above is the
	// success criterion for this request.
	s.appendLedgerRow(ctx, models.StatusConfirmed, req.AppointmentType,
		req.Slot.Start, req.Slot.End,
		req.Patient.Name, req.Patient.Contact, ref, req.Notes)

	return models.CreateEventResponse{
		Success:          true,
		BookingRef:       ref,
		EventID:          created.ID,
		ConfirmSpeakable: s.speakableISO(req.Slot.Start, req.Slot.End),
	}
}
