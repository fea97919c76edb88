// File: pharmabook/services/calendar/calendar.go
package calendar

import (
	"context"
	"fmt"
	"time"

	"pharmabook/models"

	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// GoogleCalendarClient wraps the Calendar v3 API for a single calendar
// resource. It is constructed once in main and shared by every request.
type GoogleCalendarClient struct {
	svc        *gcal.Service
	calendarID string
}

// NewGoogleCalendarClient builds a service-account backed Calendar client.
func NewGoogleCalendarClient(ctx context.Context, credentialsFile, calendarID string) (*GoogleCalendarClient, error) {
	svc, err := gcal.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(gcal.CalendarScope),
	)
	if err != nil {
		return nil, fmt.Errorf("calendar: failed to create service: %w", err)
	}
	return &GoogleCalendarClient{svc: svc, calendarID: calendarID}, nil
}

// QueryFreeBusy returns the busy intervals on the calendar over [start, end).
func (c *GoogleCalendarClient) QueryFreeBusy(ctx context.Context, start, end time.Time) ([]models.BusyInterval, error) {
	req := &gcal.FreeBusyRequest{
		TimeMin: start.Format(time.RFC3339),
		TimeMax: end.Format(time.RFC3339),
		Items:   []*gcal.FreeBusyRequestItem{{Id: c.calendarID}},
	}
	res, err := c.svc.Freebusy.Query(req).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("calendar: freebusy query: %w", err)
	}

	cal, ok := res.Calendars[c.calendarID]
	if !ok {
		return nil, nil
	}
	out := make([]models.BusyInterval, 0, len(cal.Busy))
	for _, b := range cal.Busy {
		bs, err1 := time.Parse(time.RFC3339, b.Start)
		be, err2 := time.Parse(time.RFC3339, b.End)
		if err1 != nil || err2 != nil {
			continue
		}
		out = append(out, models.BusyInterval{Start: bs, End: be})
	}
	return out, nil
}

// ListEventsByRef finds events tagged with the given booking reference via
// the private extended-property filter.
func (c *GoogleCalendarClient) ListEventsByRef(ctx context.Context, bookingRef string) ([]models.CalendarEvent, error) {
	res, err := c.svc.Events.List(c.calendarID).
		PrivateExtendedProperty("bookingRef=" + bookingRef).
		MaxResults(1).
		SingleEvents(true).
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("calendar: list events by ref: %w", err)
	}
	return toEvents(res.Items), nil
}

// SearchUpcomingEvents runs a free-text query over events starting after
// timeMin, ordered by start time.
func (c *GoogleCalendarClient) SearchUpcomingEvents(ctx context.Context, query string, timeMin time.Time) ([]models.CalendarEvent, error) {
	res, err := c.svc.Events.List(c.calendarID).
		Q(query).
		TimeMin(timeMin.Format(time.RFC3339)).
		MaxResults(50).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("calendar: search events: %w", err)
	}
	return toEvents(res.Items), nil
}

// InsertEvent writes a new event and returns it with the provider-assigned ID.
func (c *GoogleCalendarClient) InsertEvent(ctx context.Context, event models.CalendarEvent) (models.CalendarEvent, error) {
	created, err := c.svc.Events.Insert(c.calendarID, toGoogleEvent(event)).Context(ctx).Do()
	if err != nil {
		return models.CalendarEvent{}, fmt.Errorf("calendar: insert event: %w", err)
	}
	return toEvent(created), nil
}

// UpdateEvent replaces the event body under the given ID.
func (c *GoogleCalendarClient) UpdateEvent(ctx context.Context, eventID string, event models.CalendarEvent) error {
	if _, err := c.svc.Events.Update(c.calendarID, eventID, toGoogleEvent(event)).Context(ctx).Do(); err != nil {
		return fmt.Errorf("calendar: update event %s: %w", eventID, err)
	}
	return nil
}

// DeleteEvent removes the event outright. This is a hard delete.
func (c *GoogleCalendarClient) DeleteEvent(ctx context.Context, eventID string) error {
	if err := c.svc.Events.Delete(c.calendarID, eventID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("calendar: delete event %s: %w", eventID, err)
	}
	return nil
}

func toGoogleEvent(e models.CalendarEvent) *gcal.Event {
	ev := &gcal.Event{
		Summary:     e.Summary,
		Description: e.Description,
		Start:       &gcal.EventDateTime{DateTime: e.Start, TimeZone: e.TimeZone},
		End:         &gcal.EventDateTime{DateTime: e.End, TimeZone: e.TimeZone},
	}
	if len(e.PrivateProps) > 0 {
		ev.ExtendedProperties = &gcal.EventExtendedProperties{Private: e.PrivateProps}
	}
	return ev
}

func toEvent(ev *gcal.Event) models.CalendarEvent {
	out := models.CalendarEvent{
		ID:          ev.Id,
		Summary:     ev.Summary,
		Description: ev.Description,
	}
	if ev.Start != nil {
		out.Start = ev.Start.DateTime
		out.TimeZone = ev.Start.TimeZone
	}
	if ev.End != nil {
		out.End = ev.End.DateTime
	}
	if ev.ExtendedProperties != nil && ev.ExtendedProperties.Private != nil {
		out.PrivateProps = ev.ExtendedProperties.Private
	}
	return out
}

func toEvents(items []*gcal.Event) []models.CalendarEvent {
	out := make([]models.CalendarEvent, 0, len(items))
	for _, ev := range items {
		out = append(out, toEvent(ev))
	}
	return out
}
