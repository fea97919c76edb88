package booking

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strings"

	"pharmabook/models"
	"pharmabook/utils"

	"go.uber.org/zap"
)

// BookingRef derives the short, human-speakable booking reference from the
// booking's identifying attributes. It is a pure function: the same
// patient, slot start and appointment type always collide on the same
// reference, which is what makes create idempotent.
func BookingRef(name, contact, startISO, appointmentType string) string {
	sum := sha1.Sum([]byte(fmt.Sprintf("%s|%s|%s|%s", name, contact, startISO, appointmentType)))
	h := strings.ToUpper(hex.EncodeToString(sum[:]))[:6]
	return h[:3] + "-" + h[3:]
}

// resolveByRef looks the booking up by its reference tag. Lookup errors are
// swallowed into "not found": the caller's decision stays conservative.
func (s *DefaultBookingService) resolveByRef(ctx context.Context, bookingRef string) *models.CalendarEvent {
	events, err := s.Calendar.ListEventsByRef(ctx, bookingRef)
	if err != nil {
		utils.GetLogger().Warn("identity: lookup by ref failed",
			zap.String("bookingRef", bookingRef), zap.Error(err))
		return nil
	}
	if len(events) == 0 {
		return nil
	}
	return &events[0]
}

// resolveByPatient scans upcoming events for one whose summary contains the
// patient name and description contains the contact, case-insensitively,
// taking the first match in start-time order. This is a weak fallback for
// callers who lost their reference: it is a substring match and is not
// guaranteed unique.
func (s *DefaultBookingService) resolveByPatient(ctx context.Context, name, contact string) *models.CalendarEvent {
	events, err := s.Calendar.SearchUpcomingEvents(ctx, name, s.now().UTC())
	if err != nil {
		utils.GetLogger().Warn("identity: patient search failed",
			zap.String("name", name), zap.Error(err))
		return nil
	}
	lowerName := strings.ToLower(name)
	lowerContact := strings.ToLower(contact)
	for i := range events {
		if strings.Contains(strings.ToLower(events[i].Summary), lowerName) &&
			strings.Contains(strings.ToLower(events[i].Description), lowerContact) {
			return &events[i]
		}
	}
	return nil
}

// resolveBooking locates a booking by reference when given, falling back to
// patient identity. Returns the event and the reference it resolves to.
func (s *DefaultBookingService) resolveBooking(ctx context.Context, bookingRef, name, contact string) (*models.CalendarEvent, string) {
	if bookingRef != "" {
		return s.resolveByRef(ctx, bookingRef), bookingRef
	}
	if name != "" && contact != "" {
		if ev := s.resolveByPatient(ctx, name, contact); ev != nil {
			return ev, ev.BookingRef()
		}
	}
	return nil, ""
}
