package booking

import (
	"context"
	"time"

	"pharmabook/models"
)

// Forward scan covers at most this many candidate days before giving up.
const scanHorizonDays = 8

// FindSlots resolves a natural-language preferred time into either that
// exact slot (when free) or the nearest alternatives scanning forward
// across business days.
func (s *DefaultBookingService) FindSlots(ctx context.Context, req models.FindSlotsRequest) models.FindSlotsResponse {
	limit := req.Limit
	if limit <= 0 {
		limit = 3
	}

	anchor, ok := s.Parser.Parse(req.PreferredDatetimeText, s.now())
	if !ok {
		return models.FindSlotsResponse{Slots: []models.Slot{}, Reason: ErrInvalidDatetime}
	}
	anchor = anchor.In(s.Location)

	rounded := RoundToHalfHour(anchor)
	if s.IsSlotAvailable(ctx, rounded) {
		return models.FindSlotsResponse{
			Slots:  []models.Slot{s.newSlot(rounded)},
			Reason: ReasonPreferredAvailable,
		}
	}

	slots := s.topSlots(ctx, anchor, limit)
	reason := ReasonPreferredBusy
	if len(slots) == 0 {
		reason = ReasonNoSlots
	}
	return models.FindSlotsResponse{Slots: slots, Reason: reason}
}

// topSlots walks the half-hour grid forward from anchor collecting free
// slots in chronological order. The anchor is clamped to at least an hour
// from now so the agent never offers a same-hour booking; when a day's
// business window is exhausted the scan jumps to 9:00 of the next weekday.
func (s *DefaultBookingService) topSlots(ctx context.Context, anchor time.Time, limit int) []models.Slot {
	now := s.now().In(s.Location)
	if floor := now.Add(60 * time.Minute); anchor.Before(floor) {
		anchor = floor
	}
	probe := RoundToHalfHour(anchor.In(s.Location))

	out := make([]models.Slot, 0, limit)
	for days := 0; days < scanHorizonDays && len(out) < limit; days++ {
		dayEnd := time.Date(probe.Year(), probe.Month(), probe.Day(),
			businessCloseHour, 0, 0, 0, s.Location)
		for !probe.After(dayEnd) && len(out) < limit {
			if s.IsSlotAvailable(ctx, probe) {
				out = append(out, s.newSlot(probe))
			}
			probe = probe.Add(SlotDuration)
		}
		probe = time.Date(probe.Year(), probe.Month(), probe.Day()+1,
			businessOpenHour, 0, 0, 0, s.Location)
		for probe.Weekday() == time.Saturday || probe.Weekday() == time.Sunday {
			probe = probe.AddDate(0, 0, 1)
		}
	}
	return out
}
