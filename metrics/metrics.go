// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the portal.
type Metrics struct {
	Registry *prometheus.Registry

	CandidatesRegistered prometheus.Counter
	AssessmentsSubmitted prometheus.Counter
	BigFiveSubmitted     prometheus.Counter
	AuthFailures         prometheus.Counter
	EndpointLatency      *prometheus.HistogramVec
}

// New creates a fresh registry with all portal metrics registered.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		CandidatesRegistered: factory.NewCounter(prometheus.CounterOpts{
			Name: "gestalent_candidates_registered_total",
			Help: "Total number of candidate registrations",
		}),
		AssessmentsSubmitted: factory.NewCounter(prometheus.CounterOpts{
			Name: "gestalent_assessments_submitted_total",
			Help: "Total number of competencies assessments submitted",
		}),
		BigFiveSubmitted: factory.NewCounter(prometheus.CounterOpts{
			Name: "gestalent_bigfive_submitted_total",
			Help: "Total number of Big Five results submitted",
		}),
		AuthFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "gestalent_auth_failures_total",
			Help: "Total number of failed logins and rejected tokens",
		}),
		EndpointLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gestalent_endpoint_latency_seconds",
			Help:    "Latency of endpoints in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
	}
}

// Handler exposes the registry in Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
