// Package metrics defines the custom Prometheus metrics of the catalog admin
// API: login outcomes, request gate decisions and sale registrations.
//
// Metrics are registered on the registry handed to New so several routers
// (e.g. in tests) can coexist in one process.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "catalog_admin"

// Outcome label values shared by the auth metrics.
const (
	OutcomeSuccess            = "success"
	OutcomeInvalidCredentials = "invalid_credentials"
	OutcomeForbidden          = "forbidden"
	OutcomeMissing            = "missing"
	OutcomeExpired            = "expired"
	OutcomeMalformed          = "malformed"
	OutcomeError              = "error"
)

type Metrics struct {
	// LoginAttemptsTotal counts login attempts by terminal outcome.
	LoginAttemptsTotal *prometheus.CounterVec
	// GateDecisionsTotal counts request gate allow/deny decisions.
	GateDecisionsTotal *prometheus.CounterVec
	// SalesCreatedTotal counts sale registrations; replay="true" for idempotent hits.
	SalesCreatedTotal *prometheus.CounterVec
}

// New creates and registers all metrics on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		LoginAttemptsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "login_attempts_total",
				Help:      "Total number of login attempts, by outcome.",
			},
			[]string{"outcome"},
		),
		GateDecisionsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "gate_decisions_total",
				Help:      "Total number of bearer token checks on protected routes, by outcome.",
			},
			[]string{"outcome"},
		),
		SalesCreatedTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "sales_created_total",
				Help:      "Total number of sales registered.",
			},
			[]string{"replay"},
		),
	}
}

// ObserveLogin is a no-op on a nil receiver.
func (m *Metrics) ObserveLogin(outcome string) {
	if m == nil {
		return
	}
	m.LoginAttemptsTotal.WithLabelValues(outcome).Inc()
}

// ObserveGate is a no-op on a nil receiver.
func (m *Metrics) ObserveGate(outcome string) {
	if m == nil {
		return
	}
	m.GateDecisionsTotal.WithLabelValues(outcome).Inc()
}

// ObserveSale is a no-op on a nil receiver.
func (m *Metrics) ObserveSale(replay bool) {
	if m == nil {
		return
	}
	label := "false"
	if replay {
		label = "true"
	}
	m.SalesCreatedTotal.WithLabelValues(label).Inc()
}
