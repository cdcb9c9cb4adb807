package consulta

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"

	"esaj/internal/consulta/metrics"
	dErrors "esaj/pkg/domain-errors"
	"esaj/pkg/requestcontext"
)

// =============================================================================
// Consulta Service Test Suite
// =============================================================================
// The service is pure apart from metrics and logging, so tests exercise it
// directly with a fresh registry per test.

type ServiceSuite struct {
	suite.Suite
	metrics *metrics.Metrics
	service *Service
	now     time.Time
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.metrics = metrics.New(prometheus.NewRegistry())
	s.service = NewService(
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithMetrics(s.metrics),
		WithSource("render"),
	)
	s.now = time.Date(2024, 5, 10, 14, 30, 0, 0, time.FixedZone("BRT", -3*60*60))
	s.ctx = requestcontext.WithTime(context.Background(), s.now)
}

func (s *ServiceSuite) TestLookup_CanonicalTJSP() {
	result, err := s.service.Lookup(s.ctx, "0001234-56.2020.8.26.0100")
	s.Require().NoError(err)

	s.Equal("0001234-56.2020.8.26.0100", result.Numero)
	s.Require().NotNil(result.Tribunal)
	s.Equal("TJSP", *result.Tribunal)
	s.Require().NotNil(result.Grau)
	s.Equal(GrauPrimeiro, *result.Grau)
	s.Require().NotNil(result.PublicURL)
	s.Contains(*result.PublicURL, "esaj.tjsp.jus.br")
	s.False(result.CheckDigitsValid)
	s.Equal("render", result.Source)
	s.Equal(s.now.UTC(), result.LookedUpAt)
	s.Equal(time.UTC, result.LookedUpAt.Location())

	s.Equal(1.0, testutil.ToFloat64(s.metrics.LookupOutcome.WithLabelValues("ok")))
	s.Equal(1.0, testutil.ToFloat64(s.metrics.LookupTribunal.WithLabelValues("TJSP")))
	s.Equal(1.0, testutil.ToFloat64(s.metrics.CheckDigitMismatch))
}

func (s *ServiceSuite) TestLookup_RawDigits() {
	result, err := s.service.Lookup(s.ctx, "00012345620208260100")
	s.Require().NoError(err)
	s.Equal("0001234-56.2020.8.26.0100", result.Numero)
}

func (s *ServiceSuite) TestLookup_ValidCheckDigitsNotCounted() {
	result, err := s.service.Lookup(s.ctx, "0001234-13.2020.8.26.0100")
	s.Require().NoError(err)
	s.True(result.CheckDigitsValid)
	s.Equal(0.0, testutil.ToFloat64(s.metrics.CheckDigitMismatch))
}

func (s *ServiceSuite) TestLookup_UnknownCourt() {
	result, err := s.service.Lookup(s.ctx, "0001234-56.2020.8.19.0001")
	s.Require().NoError(err)

	s.Nil(result.Tribunal)
	s.Nil(result.PublicURL)
	s.Require().NotNil(result.Grau)
	s.Equal(1.0, testutil.ToFloat64(s.metrics.LookupTribunal.WithLabelValues("unknown")))
}

func (s *ServiceSuite) TestLookup_Invalid() {
	for _, input := range []string{"", "abc not a number", "1234567890123456789", "123456789012345678901"} {
		s.Run(input, func() {
			result, err := s.service.Lookup(s.ctx, input)
			s.Require().Error(err)
			s.Nil(result)
			s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
		})
	}
	s.Equal(4.0, testutil.ToFloat64(s.metrics.LookupOutcome.WithLabelValues("invalid")))
}

func (s *ServiceSuite) TestNewService_Defaults() {
	svc := NewService()
	s.Equal("render", svc.source)
	s.NotNil(svc.logger)
	s.NotNil(svc.tracer)
	s.Nil(svc.metrics)

	// nil metrics must not panic
	_, err := svc.Lookup(context.Background(), "00012345620208260100")
	s.NoError(err)
}
