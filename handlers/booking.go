package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"pharmabook/models"
	"pharmabook/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the four booking intents over HTTP.
type BookingHandler struct {
	Svc      booking.BookingService
	Location *time.Location
	Logger   *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, loc *time.Location, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Location: loc, Logger: logger}
}

// pickArgs unwraps the voice agent's request envelope: tool-call payloads
// arrive as {"args": {...}}, direct calls as the bare object.
func pickArgs(body []byte) []byte {
	var envelope struct {
		Args json.RawMessage `json:"args"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Args) > 0 && envelope.Args[0] == '{' {
		return envelope.Args
	}
	return body
}

// normalizeSlotField repairs payloads whose slot arrives as a JSON-encoded
// string instead of an object (some agent runtimes double-encode tool
// arguments).
func normalizeSlotField(payload []byte) []byte {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(payload, &fields); err != nil {
		return payload
	}
	raw, ok := fields["slot"]
	if !ok || len(raw) == 0 || raw[0] != '"' {
		return payload
	}
	var inner string
	if err := json.Unmarshal(raw, &inner); err != nil {
		return payload
	}
	if !json.Valid([]byte(inner)) {
		return payload
	}
	fields["slot"] = json.RawMessage(inner)
	fixed, err := json.Marshal(fields)
	if err != nil {
		return payload
	}
	return fixed
}

// FindSlots handles POST /find-slots. A malformed payload is answered with
// a usable sample slot (reason "bad_payload") rather than an error, so
// agent health probes always get a well-formed response.
func (h *BookingHandler) FindSlots(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		body = nil
	}
	payload := pickArgs(body)

	var req models.FindSlotsRequest
	if err := json.Unmarshal(payload, &req); err != nil ||
		req.AppointmentType == "" || req.PreferredDatetimeText == "" {
		getLogger(c).Warn("find-slots: unparseable payload, returning sample slot")
		c.JSON(http.StatusOK, h.sampleSlotsResponse())
		return
	}

	c.JSON(http.StatusOK, h.Svc.FindSlots(c.Request.Context(), req))
}

// sampleSlotsResponse builds the fallback for unparseable find-slots
// payloads: the next grid slot at least two hours out.
func (h *BookingHandler) sampleSlotsResponse() models.FindSlotsResponse {
	start := booking.RoundToHalfHour(time.Now().In(h.Location).Add(2 * time.Hour))
	end := start.Add(booking.SlotDuration)
	sample := models.Slot{
		Start:     start.Format(time.RFC3339),
		End:       end.Format(time.RFC3339),
		Speakable: booking.SpeakableRange(start, end, h.Location),
	}
	return models.FindSlotsResponse{
		Slots:  []models.Slot{sample},
		Reason: booking.ReasonBadPayload,
	}
}

// CreateEvent handles POST /create-event.
func (h *BookingHandler) CreateEvent(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		body = nil
	}
	payload := normalizeSlotField(pickArgs(body))

	var req models.CreateEventRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		c.JSON(http.StatusOK, models.CreateEventResponse{
			Success: false,
			Error:   booking.ErrValidation,
			Reason:  err.Error(),
		})
		return
	}
	if verr := validateCreate(req); verr != nil {
		c.JSON(http.StatusOK, models.CreateEventResponse{
			Success: false,
			Error:   verr.Code,
			Reason:  verr.Message,
		})
		return
	}

	c.JSON(http.StatusOK, h.Svc.CreateEvent(c.Request.Context(), req))
}

func validateCreate(req models.CreateEventRequest) *booking.BookingError {
	missing := ""
	switch {
	case req.AppointmentType == "":
		missing = "appointment_type is required"
	case req.Slot.Start == "" || req.Slot.End == "":
		missing = "slot with start and end is required"
	case req.Patient.Name == "":
		missing = "patient.name is required"
	case req.Patient.Contact == "":
		missing = "patient.contact is required"
	default:
		return nil
	}
	return &booking.BookingError{Code: booking.ErrValidation, Message: missing}
}

// RescheduleBooking handles POST /reschedule-booking.
func (h *BookingHandler) RescheduleBooking(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		body = nil
	}
	payload := pickArgs(body)

	var req models.RescheduleRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		c.JSON(http.StatusOK, models.RescheduleResponse{
			Success: false,
			Error:   booking.ErrValidation,
			Reason:  err.Error(),
		})
		return
	}
	if req.NewPreferredDatetimeText == "" {
		c.JSON(http.StatusOK, models.RescheduleResponse{
			Success: false,
			Error:   booking.ErrValidation,
			Reason:  "new_preferred_datetime_text is required",
		})
		return
	}

	c.JSON(http.StatusOK, h.Svc.Reschedule(c.Request.Context(), req))
}

// CancelBooking handles POST /cancel-booking.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		body = nil
	}
	payload := pickArgs(body)

	var req models.CancelRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		c.JSON(http.StatusOK, models.CancelResponse{
			Success: false,
			Error:   booking.ErrValidation,
			Reason:  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, h.Svc.Cancel(c.Request.Context(), req))
}
