package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tablebook_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tablebook_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// Allocation engine metrics
	ReservationsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tablebook_reservations_created_total",
			Help: "Total number of successfully allocated reservations",
		},
	)

	AllocationConflicts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tablebook_allocation_conflicts_total",
			Help: "Total number of duplicate-slot conflicts lost at the persistence layer",
		},
	)

	AllocationNoCapacity = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tablebook_allocation_no_capacity_total",
			Help: "Total number of allocation attempts rejected for lack of a free table",
		},
	)

	// Lifecycle metrics
	StatusTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tablebook_status_transitions_total",
			Help: "Total number of reservation status transitions",
		},
		[]string{"to"},
	)
)
