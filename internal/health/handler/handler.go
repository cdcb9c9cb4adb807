package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"esaj/pkg/platform/httputil"
	"esaj/pkg/requestcontext"
)

// HealthResponse is the HTTP response for GET /health.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"ts"`
}

// Handler serves the liveness endpoint used by the hosting platform.
type Handler struct{}

// New constructs a health handler.
func New() *Handler {
	return &Handler{}
}

// Register mounts health endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/health", h.HandleHealth)
}

// HandleHealth handles GET /health.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: requestcontext.Now(r.Context()).UTC(),
	})
}
