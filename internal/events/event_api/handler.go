package event_api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	events "ms-events/internal/events/service"
	"ms-events/internal/logger"
	"ms-events/internal/models"
	"ms-events/internal/temporal"
	"ms-events/internal/utils"
)

type Handler struct {
	EventService *events.EventService
	Logger       *logger.Logger
}

func NewHandler(eventService *events.EventService, log *logger.Logger) *Handler {
	return &Handler{
		EventService: eventService,
		Logger:       log,
	}
}

// EventRequest is the create/edit form payload: separate start/end dates
// and 12-hour start/end times, encoded into the stored strings here.
type EventRequest struct {
	Name        string `json:"name"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date,omitempty"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time,omitempty"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Capacity    int    `json:"capacity"`
}

func (req *EventRequest) toEvent() models.Event {
	return models.Event{
		Name:        req.Name,
		Date:        temporal.EncodeDate(temporal.Range{Start: req.StartDate, End: req.EndDate}),
		Time:        temporal.EncodeTime(temporal.Range{Start: req.StartTime, End: req.EndTime}),
		Location:    req.Location,
		Type:        req.Type,
		Category:    req.Category,
		Description: req.Description,
		Image:       req.Image,
		Capacity:    req.Capacity,
	}
}

// EventResponse is an event plus its decoded edit-form fields and derived
// status, so the portal never reparses stored strings.
type EventResponse struct {
	models.Event
	Status    temporal.Status `json:"status"`
	DateRange temporal.Range  `json:"date_range"`
	TimeRange temporal.Range  `json:"time_range"`
}

func (h *Handler) toResponse(event models.Event) EventResponse {
	return EventResponse{
		Event:     event,
		Status:    temporal.Classify(event.Date, h.EventService.Clock),
		DateRange: temporal.DecodeDate(event.Date),
		TimeRange: temporal.DecodeTime(event.Time),
	}
}

func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req EventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Error("API", fmt.Sprintf("CreateEvent: failed to decode request body: %v", err))
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	event, err := h.EventService.CreateEvent(req.toEvent())
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("CreateEvent: %v", err))
		writeServiceError(w, err)
		return
	}

	h.Logger.LogEvent("CREATE", event.ID, event.Name)
	writeJSON(w, http.StatusCreated, "Event created", h.toResponse(*event))
}

func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventId")
	h.Logger.Info("API", fmt.Sprintf("GetEvent: eventId=%s", eventID))

	event, err := h.EventService.GetEvent(eventID)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("GetEvent: %v", err))
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, "Event found", h.toResponse(*event))
}

func (h *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventId")

	var req EventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Error("API", fmt.Sprintf("UpdateEvent: failed to decode request body: %v", err))
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	event, err := h.EventService.UpdateEvent(eventID, req.toEvent())
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("UpdateEvent: %v", err))
		writeServiceError(w, err)
		return
	}

	h.Logger.LogEvent("UPDATE", event.ID, event.Name)
	writeJSON(w, http.StatusOK, "Event updated", h.toResponse(*event))
}

func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventId")

	if err := h.EventService.DeleteEvent(eventID); err != nil {
		h.Logger.Error("API", fmt.Sprintf("DeleteEvent: %v", err))
		writeServiceError(w, err)
		return
	}

	h.Logger.LogEvent("DELETE", eventID, "")
	w.WriteHeader(http.StatusNoContent)
}

// ListEvents handles GET /api/events with status, category, type and
// search query parameters. Without a status parameter the response holds
// both sections; with one it holds only the requested slice.
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := events.Filter{
		Category: q.Get("category"),
		Type:     q.Get("type"),
		Search:   q.Get("search"),
	}
	status := temporal.Status(q.Get("status"))

	if status != "" && !status.Valid() {
		writeError(w, http.StatusBadRequest, "Unknown status: "+string(status))
		return
	}

	if status == "" {
		sections, err := h.EventService.ListSections(filter)
		if err != nil {
			h.Logger.Error("API", fmt.Sprintf("ListEvents: %v", err))
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, "Events listed", sections)
		return
	}

	list, err := h.EventService.ListEvents(status, filter)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("ListEvents: %v", err))
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, "Events listed", list)
}

func writeJSON(w http.ResponseWriter, status int, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(utils.SuccessResponse(message, data))
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(utils.ErrorResponse(message, http.StatusText(status)))
}

// writeServiceError maps the service error taxonomy onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case models.IsValidation(err):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrNotFound):
		writeError(w, http.StatusNotFound, "Event not found")
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
