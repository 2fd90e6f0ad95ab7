package event_api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ms-events/internal/events/qr"
)

// GetEventQR handles GET /api/events/{eventId}/qr and responds with a PNG
// linking to the event's public page. The event must exist.
func (h *Handler) GetEventQR(generator *qr.Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID := chi.URLParam(r, "eventId")

		if _, err := h.EventService.GetEvent(eventID); err != nil {
			h.Logger.Error("API", fmt.Sprintf("GetEventQR: %v", err))
			writeServiceError(w, err)
			return
		}

		png, err := generator.GenerateEventQR(eventID)
		if err != nil {
			h.Logger.Error("API", fmt.Sprintf("GetEventQR: %v", err))
			writeError(w, http.StatusInternalServerError, "Failed to generate QR code")
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(png)
	}
}
