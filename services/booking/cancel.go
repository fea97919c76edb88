package booking

import (
	"context"
	"fmt"

	"pharmabook/models"
	"pharmabook/utils"

	"go.uber.org/zap"
)

// Cancel removes a booking. The calendar delete is the authoritative
// action; the ledger row keeps its history and is only flipped to
// cancelled, and a ledger failure never reverses the delete.
func (s *DefaultBookingService) Cancel(ctx context.Context, req models.CancelRequest) models.CancelResponse {
	logger := utils.GetLogger()

	existing, bookingRef := s.resolveBooking(ctx, req.BookingRef, req.Name, req.Contact)
	if existing == nil {
		return models.CancelResponse{
			Success: false,
			Error:   ErrBookingNotFound,
			Reason:  "No booking found with provided details",
		}
	}

	cancelledSlot := s.speakableISO(existing.Start, existing.End)

	if err := s.Calendar.DeleteEvent(ctx, existing.ID); err != nil {
		logger.Error("cancel: calendar delete failed",
			zap.String("bookingRef", bookingRef), zap.Error(err))
		return models.CancelResponse{
			Success: false,
			Error:   ErrCancellationFailed,
			Reason:  fmt.Sprintf("Failed to cancel booking: %v", err),
		}
	}

	reason := req.Reason
	if reason == "" {
		reason = "No reason provided"
	}
	s.updateLedgerStatus(ctx, bookingRef, models.StatusCancelled, reason)

	return models.CancelResponse{
		Success:       true,
		BookingRef:    bookingRef,
		CancelledSlot: cancelledSlot,
	}
}
