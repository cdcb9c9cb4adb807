package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"esaj/internal/platform/metrics"
	"esaj/internal/platform/middleware"
	dErrors "esaj/pkg/domain-errors"
	"esaj/pkg/platform/httputil"
	"esaj/pkg/platform/middleware/metadata"
	"esaj/pkg/platform/middleware/requesttime"
)

// Registrar is implemented by every module handler.
type Registrar interface {
	Register(r chi.Router)
}

// Deps collects what the router needs from main.
type Deps struct {
	Logger             *slog.Logger
	Metrics            *metrics.Metrics
	Gatherer           prometheus.Gatherer
	RequestTimeout     time.Duration
	CORSAllowedOrigins []string
	Handlers           []Registrar
}

// NewRouter wires the shared middleware chain, module handlers and /metrics.
// Handlers stay thin and delegate to their services.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(metadata.ClientMetadata)
	r.Use(requesttime.Middleware)
	r.Use(middleware.Recovery(d.Logger))
	r.Use(middleware.Logger(d.Logger))
	r.Use(middleware.LatencyMiddleware(d.Metrics))
	r.Use(middleware.CORS(d.CORSAllowedOrigins))
	if d.RequestTimeout > 0 {
		r.Use(middleware.Timeout(d.RequestTimeout))
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "route not found"))
	})

	for _, h := range d.Handlers {
		h.Register(r)
	}

	if d.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{}))
	}
	return r
}
