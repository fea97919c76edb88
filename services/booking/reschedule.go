package booking

import (
	"context"
	"fmt"

	"pharmabook/models"
	"pharmabook/utils"

	"go.uber.org/zap"
)

// Reschedule moves an existing booking to a new preferred time using a
// two-phase propose/commit protocol: without the confirmation flag the
// call only reports what would happen (proposed slot, or alternatives when
// the preferred time is busy) and mutates nothing. Only a confirmed call
// updates the calendar event in place (same reference) and rewrites the
// matching ledger row.
func (s *DefaultBookingService) Reschedule(ctx context.Context, req models.RescheduleRequest) models.RescheduleResponse {
	logger := utils.GetLogger()

	existing, bookingRef := s.resolveBooking(ctx, req.BookingRef, req.Name, req.Contact)
	if existing == nil {
		return models.RescheduleResponse{
			Success: false,
			Error:   ErrBookingNotFound,
			Reason:  "No booking found with provided details",
		}
	}

	oldSlotSpeakable := s.speakableISO(existing.Start, existing.End)

	if _, ok := s.Parser.Parse(req.NewPreferredDatetimeText, s.now()); !ok {
		return models.RescheduleResponse{
			Success: false,
			Error:   ErrInvalidDatetime,
			Reason:  "Could not parse new preferred datetime",
		}
	}

	slotResult := s.FindSlots(ctx, models.FindSlotsRequest{
		PreferredDatetimeText: req.NewPreferredDatetimeText,
		Limit:                 3,
	})

	var newSlot models.Slot
	switch slotResult.Reason {
	case ReasonPreferredAvailable:
		newSlot = slotResult.Slots[0]
		if !req.ConfirmReschedule {
			return models.RescheduleResponse{
				Success:    true,
				BookingRef: bookingRef,
				OldSlot:    oldSlotSpeakable,
				NewSlot:    &newSlot,
				Reason:     ReasonPreferredAvailable,
			}
		}
	case ReasonPreferredBusy:
		if !req.ConfirmReschedule {
			return models.RescheduleResponse{
				Success:        false,
				BookingRef:     bookingRef,
				OldSlot:        oldSlotSpeakable,
				AvailableSlots: slotResult.Slots,
				Reason:         ReasonPreferredBusy,
			}
		}
		newSlot = slotResult.Slots[0]
	default:
		return models.RescheduleResponse{
			Success: false,
			Error:   ErrNoSlotsAvailable,
			Reason:  "No available slots found for the requested time period",
		}
	}

	// Commit: move the event, keeping its identity (summary, description,
	// reference tag) intact.
	updated := models.CalendarEvent{
		Summary:      existing.Summary,
		Description:  existing.Description,
		Start:        newSlot.Start,
		End:          newSlot.End,
		TimeZone:     s.Location.String(),
		PrivateProps: existing.PrivateProps,
	}
	if req.Notes != "" {
		updated.Description = existing.Description + "\nRescheduled: " + req.Notes
	}

	if err := s.Calendar.UpdateEvent(ctx, existing.ID, updated); err != nil {
		logger.Error("reschedule: calendar update failed",
			zap.String("bookingRef", bookingRef), zap.Error(err))
		return models.RescheduleResponse{
			Success: false,
			Error:   ErrUpdateFailed,
			Reason:  fmt.Sprintf("Failed to update booking: %v", err),
		}
	}

	notes := req.Notes
	if notes == "" {
		notes = fmt.Sprintf("Rescheduled from %s to %s", oldSlotSpeakable, newSlot.Speakable)
	}
	ledgerOK := s.updateLedgerReschedule(ctx, bookingRef, newSlot.Start, newSlot.End, notes)

	return models.RescheduleResponse{
		Success:          true,
		BookingRef:       bookingRef,
		OldSlot:          oldSlotSpeakable,
		NewSlot:          &newSlot,
		ConfirmSpeakable: newSlot.Speakable,
		Reason:           fmt.Sprintf("Updated successfully. Ledger update: %t", ledgerOK),
	}
}
