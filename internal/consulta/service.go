package consulta

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"esaj/internal/consulta/metrics"
	"esaj/pkg/domain"
	"esaj/pkg/requestcontext"
)

const (
	outcomeOK      = "ok"
	outcomeInvalid = "invalid"

	tribunalUnknown = "unknown"

	defaultSource = "render"
)

// Service resolves raw process numbers into lookup results.
type Service struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
	source  string
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics sets the metrics sink. A nil value disables metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithSource sets the value reported as the data source ("fonte").
func WithSource(source string) Option {
	return func(s *Service) {
		if source != "" {
			s.source = source
		}
	}
}

// WithTracer overrides the tracer taken from the global provider.
func WithTracer(tracer trace.Tracer) Option {
	return func(s *Service) {
		if tracer != nil {
			s.tracer = tracer
		}
	}
}

// NewService constructs a Service.
func NewService(opts ...Option) *Service {
	s := &Service{
		logger: slog.Default(),
		tracer: otel.Tracer("esaj/internal/consulta"),
		source: defaultSource,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Lookup normalizes raw and derives the court data from the number itself.
// An unrecognisable number returns an invalid_input domain error.
func (s *Service) Lookup(ctx context.Context, raw string) (*Result, error) {
	ctx, span := s.tracer.Start(ctx, "consulta.Lookup")
	defer span.End()

	n, err := domain.ParseCNJ(raw)
	if err != nil {
		s.metrics.IncrementOutcome(outcomeInvalid)
		span.SetStatus(codes.Error, "invalid process number")
		s.logger.InfoContext(ctx, "process number not recognised",
			"request_id", requestcontext.RequestID(ctx),
			"input_length", len(raw),
		)
		return nil, err
	}

	result := &Result{
		Numero:           n.String(),
		Grau:             ptr(GrauPrimeiro),
		CheckDigitsValid: n.CheckDigitsValid(),
		Source:           s.source,
		LookedUpAt:       requestcontext.Now(ctx).UTC(),
	}

	tribunalLabel := tribunalUnknown
	if id, ok := InferTribunal(n); ok {
		result.Tribunal = ptr(id)
		tribunalLabel = id
	}
	if u, ok := PublicURL(n); ok {
		result.PublicURL = ptr(u)
	}

	s.metrics.IncrementOutcome(outcomeOK)
	s.metrics.IncrementTribunal(tribunalLabel)
	if !result.CheckDigitsValid {
		s.metrics.IncrementCheckDigitMismatch()
	}

	span.SetAttributes(
		attribute.String("cnj.numero", result.Numero),
		attribute.String("cnj.tribunal", tribunalLabel),
		attribute.Bool("cnj.check_digits_valid", result.CheckDigitsValid),
	)
	s.logger.InfoContext(ctx, "process number normalized",
		"request_id", requestcontext.RequestID(ctx),
		"numero", result.Numero,
		"tribunal", tribunalLabel,
		"check_digits_valid", result.CheckDigitsValid,
	)

	return result, nil
}

func ptr(s string) *string {
	return &s
}
