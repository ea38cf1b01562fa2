// Package metrics defines the Prometheus collectors for the scheduler.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Session lifecycle metrics
var (
	// SessionsCreated counts demo sessions materialized, labeled by trigger
	// (explicit init vs implicit creation on an unknown token).
	SessionsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scheduler_sessions_created_total",
			Help: "Total sessions created, by trigger (init/implicit)",
		},
		[]string{"trigger"},
	)

	// SessionsEvicted counts sessions removed by the age sweep.
	SessionsEvicted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "scheduler_sessions_evicted_total",
			Help: "Total sessions evicted by the periodic age sweep",
		},
	)

	// SessionsActive tracks the current number of live sessions.
	SessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "scheduler_sessions_active",
			Help: "Current number of live sessions in the store",
		},
	)

	// SessionsRejected counts session registrations refused by the limiter.
	SessionsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scheduler_sessions_rejected_total",
			Help: "Session registrations refused by the limiter, by reason",
		},
		[]string{"reason"},
	)
)

// Booking metrics
var (
	// BookingsTotal counts booking mutations by outcome.
	BookingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scheduler_bookings_total",
			Help: "Total booking mutations by outcome (ok/not_found)",
		},
		[]string{"outcome"},
	)

	// CancellationsTotal counts cancel mutations by outcome.
	CancellationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scheduler_cancellations_total",
			Help: "Total cancellation mutations by outcome (ok/not_found)",
		},
		[]string{"outcome"},
	)
)
