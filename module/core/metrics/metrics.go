// Package metrics exposes the process-wide Prometheus collectors for the
// assessment pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AssessmentsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "saferove_assessments_total",
		Help: "Risk assessments processed.",
	})

	AlertsEmittedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "saferove_alerts_emitted_total",
		Help: "Geofence alerts handed to the notification channel.",
	})

	NotifyFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "saferove_notify_failures_total",
		Help: "Alert notifications that failed delivery and were swallowed.",
	})

	ScorerFallbacksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "saferove_scorer_fallbacks_total",
		Help: "Predictions served from the documented default because no model artifact was loaded.",
	}, []string{"scorer"})
)
