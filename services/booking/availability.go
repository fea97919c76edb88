package booking

import (
	"context"
	"time"

	"pharmabook/models"
	"pharmabook/utils"

	"go.uber.org/zap"
)

// BusyIntervals asks the calendar for occupied windows over [start, end).
// Every call reflects the calendar's state at call time; results are never
// cached.
func (s *DefaultBookingService) BusyIntervals(ctx context.Context, start, end time.Time) ([]models.BusyInterval, error) {
	return s.Calendar.QueryFreeBusy(ctx, start, end)
}

// IsSlotAvailable reports whether the 30-minute slot at start is free.
// It fails closed: starts outside the business grid are unavailable, and a
// free/busy fetch error counts as busy so the caller never offers a slot
// the calendar could not vouch for.
func (s *DefaultBookingService) IsSlotAvailable(ctx context.Context, start time.Time) bool {
	if !IsBusinessSlot(start) {
		return false
	}
	busy, err := s.BusyIntervals(ctx, start, start.Add(SlotDuration))
	if err != nil {
		utils.GetLogger().Warn("availability: freebusy query failed, treating slot as busy",
			zap.Time("slotStart", start), zap.Error(err))
		return false
	}
	return len(busy) == 0
}
