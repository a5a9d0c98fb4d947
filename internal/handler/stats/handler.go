package stats

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/normalhq/chatbox/server/internal/metrics"
	"github.com/normalhq/chatbox/server/pkg/utils"
)

// Handler serves aggregated anonymized usage statistics.
type Handler struct {
	recorder *metrics.Recorder
}

// New creates the stats handler.
func New(recorder *metrics.Recorder) *Handler {
	return &Handler{recorder: recorder}
}

// RegisterRoutes mounts the stats endpoint.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/stats", h.handleStats)
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.recorder.Stats()
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to read statistics")
		return
	}

	utils.RespondJSON(w, http.StatusOK, stats)
}
