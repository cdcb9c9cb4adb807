package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"esaj/internal/consulta"
	dErrors "esaj/pkg/domain-errors"
	"esaj/pkg/platform/httputil"
	"esaj/pkg/requestcontext"
)

// Service defines the interface for process lookups.
type Service interface {
	Lookup(ctx context.Context, raw string) (*consulta.Result, error)
}

// Handler wires the consulta endpoint to the consulta service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a consulta handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts consulta endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/consulta", h.HandleConsulta)
}

// HandleConsulta handles GET /consulta?processo=<string>.
// An unrecognisable number is a normal outcome and is answered inline with
// ok=false and status 200; only unexpected failures become HTTP errors.
func (h *Handler) HandleConsulta(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	processo := r.URL.Query().Get("processo")

	result, err := h.service.Lookup(ctx, processo)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeInvalidInput) {
			httputil.WriteJSON(w, http.StatusOK, NewInvalidResponse(processo))
			return
		}
		h.logger.ErrorContext(ctx, "consulta failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, FromResult(result))
}
