package winners_api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ms-events/internal/logger"
	"ms-events/internal/models"
	winners "ms-events/internal/winners/service"

	"ms-events/internal/utils"
)

type Handler struct {
	WinnersService *winners.WinnersService
	Logger         *logger.Logger
}

func NewHandler(winnersService *winners.WinnersService, log *logger.Logger) *Handler {
	return &Handler{
		WinnersService: winnersService,
		Logger:         log,
	}
}

// GetWinners handles GET /api/winners/{eventId}. No winners recorded yet
// responds 404 with a distinct message; store failures respond 500.
func (h *Handler) GetWinners(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventId")
	h.Logger.Info("API", fmt.Sprintf("GetWinners: eventId=%s", eventID))

	record, err := h.WinnersService.GetWinners(eventID)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("GetWinners: %v", err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if record == nil {
		writeError(w, http.StatusNotFound, "No winners recorded for this event")
		return
	}

	writeJSON(w, http.StatusOK, "Winners found", record)
}

// UpsertWinners handles POST /api/winners/{eventId}: first submission
// creates the record, later submissions overwrite it.
func (h *Handler) UpsertWinners(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventId")

	var submission models.Winners
	if err := json.NewDecoder(r.Body).Decode(&submission); err != nil {
		h.Logger.Error("API", fmt.Sprintf("UpsertWinners: failed to decode request body: %v", err))
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	record, err := h.WinnersService.UpsertWinners(eventID, submission)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("UpsertWinners: %v", err))
		switch {
		case models.IsValidation(err):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, models.ErrNotFound):
			writeError(w, http.StatusNotFound, "Event not found")
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	h.Logger.LogEvent("WINNERS", eventID, fmt.Sprintf("1st=%s 2nd=%s 3rd=%s", record.First, record.Second, record.Third))
	writeJSON(w, http.StatusOK, "Winners saved", record)
}

// DeleteWinners handles DELETE /api/winners/{eventId}; deleting winners
// that were never recorded still succeeds.
func (h *Handler) DeleteWinners(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventId")

	if err := h.WinnersService.DeleteWinners(eventID); err != nil {
		h.Logger.Error("API", fmt.Sprintf("DeleteWinners: %v", err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
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
