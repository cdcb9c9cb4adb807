package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the consulta module.
type Metrics struct {
	// Lookup outcomes: "ok" or "invalid"
	LookupOutcome *prometheus.CounterVec

	// Recognised numbers by inferred court ("unknown" when not inferred)
	LookupTribunal *prometheus.CounterVec

	// Recognised numbers whose check digits do not verify
	CheckDigitMismatch prometheus.Counter
}

// New creates a new Metrics instance registered on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		LookupOutcome: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "esaj_consulta_lookups_total",
			Help: "Total process lookups by outcome",
		}, []string{"outcome"}),

		LookupTribunal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "esaj_consulta_tribunal_total",
			Help: "Recognised process numbers by inferred court",
		}, []string{"tribunal"}),

		CheckDigitMismatch: factory.NewCounter(prometheus.CounterOpts{
			Name: "esaj_consulta_check_digit_mismatch_total",
			Help: "Recognised process numbers whose CNJ check digits do not verify",
		}),
	}
}

// IncrementOutcome records a lookup outcome.
func (m *Metrics) IncrementOutcome(outcome string) {
	if m != nil {
		m.LookupOutcome.WithLabelValues(outcome).Inc()
	}
}

// IncrementTribunal records the court inferred for a recognised number.
func (m *Metrics) IncrementTribunal(tribunal string) {
	if m != nil {
		m.LookupTribunal.WithLabelValues(tribunal).Inc()
	}
}

// IncrementCheckDigitMismatch records a number with failing check digits.
func (m *Metrics) IncrementCheckDigitMismatch() {
	if m != nil {
		m.CheckDigitMismatch.Inc()
	}
}
