package booking

import (
	"time"

	"pharmabook/models"
)

// SlotDuration is the fixed appointment length.
const SlotDuration = 30 * time.Minute

// Business window: Monday-Friday, 09:00-18:00 local. The hour bound is
// half-open, so the last valid slot start is 17:30.
const (
	businessOpenHour  = 9
	businessCloseHour = 18
)

// IsBusinessSlot reports whether t is a valid slot start: a weekday,
// within business hours, aligned to the half-hour grid. t must already be
// in the service timezone.
func IsBusinessSlot(t time.Time) bool {
	if t.Weekday() == time.Saturday || t.Weekday() == time.Sunday {
		return false
	}
	if t.Hour() < businessOpenHour || t.Hour() >= businessCloseHour {
		return false
	}
	if t.Minute() != 0 && t.Minute() != 30 {
		return false
	}
	return true
}

// RoundToHalfHour snaps t to the nearest half-hour grid point: minute<15
// rounds down to :00, 15-44 to :30, >=45 up to the next :00. Applying it
// twice yields the same instant as once.
func RoundToHalfHour(t time.Time) time.Time {
	if (t.Minute() == 0 || t.Minute() == 30) && t.Second() == 0 && t.Nanosecond() == 0 {
		return t
	}
	switch m := t.Minute(); {
	case m < 15:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
	case m < 45:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 30, 0, 0, t.Location())
	default:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour()+1, 0, 0, 0, t.Location())
	}
}

// SpeakableRange renders a slot as a phrase the agent reads out, e.g.
// "Mon Jan 12, 9:00 AM – 9:30 AM". Hours carry no leading zero.
func SpeakableRange(start, end time.Time, loc *time.Location) string {
	left := start.In(loc).Format("Mon Jan 2, 3:04 PM")
	right := end.In(loc).Format("3:04 PM")
	return left + " – " + right
}

// newSlot builds the Slot value for a grid-aligned start instant.
func (s *DefaultBookingService) newSlot(start time.Time) models.Slot {
	end := start.Add(SlotDuration)
	return models.Slot{
		Start:     start.Format(time.RFC3339),
		End:       end.Format(time.RFC3339),
		Speakable: SpeakableRange(start, end, s.Location),
	}
}

// speakableISO renders a speakable phrase from the ISO strings stored on a
// calendar event. Unparseable input falls back to the raw strings rather
// than failing a read path.
func (s *DefaultBookingService) speakableISO(startISO, endISO string) string {
	start, err1 := time.Parse(time.RFC3339, startISO)
	end, err2 := time.Parse(time.RFC3339, endISO)
	if err1 != nil || err2 != nil {
		return startISO + " – " + endISO
	}
	return SpeakableRange(start, end, s.Location)
}

// formatLedgerLocal renders an instant the way the spreadsheet expects its
// local time cells.
func (s *DefaultBookingService) formatLedgerLocal(t time.Time) string {
	return t.In(s.Location).Format("01/02/2006 03:04 PM")
}

// formatLedgerLocalISO is formatLedgerLocal over an ISO string; the raw
// string is carried through when it does not parse.
func (s *DefaultBookingService) formatLedgerLocalISO(iso string) string {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return iso
	}
	return s.formatLedgerLocal(t)
}
