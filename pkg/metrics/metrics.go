package metrics

import (
	"context"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// BackendBuckets covers booking API calls; the hosted backend cold-starts in tens of seconds
	BackendBuckets = []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 20, 40, 60}

	// PageBuckets covers page requests, which wrap at most a few backend calls
	PageBuckets = []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 15, 60}

	// Page host
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "skybook_page_request_duration_seconds",
			Help:    "Page request duration in seconds",
			Buckets: PageBuckets,
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skybook_page_requests_total",
			Help: "Total number of page requests",
		},
		[]string{"method", "route", "status"},
	)

	ActiveRequests = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "skybook_page_requests_in_flight",
			Help: "Page requests currently being served",
		},
		[]string{"method", "route"},
	)

	// Booking backend client
	APIClientRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "skybook_api_client_operation_duration_seconds",
			Help:    "Booking API client operation duration in seconds",
			Buckets: BackendBuckets,
		},
		[]string{"operation", "status"},
	)

	APIClientRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skybook_api_client_operation_total",
			Help: "Total number of booking API client operations",
		},
		[]string{"operation", "status"},
	)

	// In-memory stores such as open booking drafts
	CacheSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "skybook_store_entries",
			Help: "Number of entries held in an in-memory store",
		},
		[]string{"store"},
	)

	// Business Metrics
	LoginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skybook_login_attempts_total",
			Help: "Total login attempts",
		},
		[]string{"status"},
	)

	Registrations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skybook_registrations_total",
			Help: "Total registration attempts",
		},
		[]string{"status"},
	)

	BookingStepTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skybook_booking_step_transitions_total",
			Help: "Booking workflow step transitions",
		},
		[]string{"from", "to"},
	)

	BookingsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skybook_bookings_created_total",
			Help: "Total booking creation attempts",
		},
		[]string{"status"},
	)

	PaymentInitiations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skybook_payment_initiations_total",
			Help: "Total payment initiation attempts",
		},
		[]string{"status"},
	)

	GuardDecisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skybook_guard_decisions_total",
			Help: "Route guard decisions served",
		},
		[]string{"decision"},
	)

	ToastsEmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skybook_toasts_emitted_total",
			Help: "Notifications emitted to the user",
		},
		[]string{"type"},
	)

	ContactFormSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skybook_contact_form_submissions_total",
			Help: "Contact page submissions",
		},
		[]string{"status"},
	)

	// Runtime, sampled by RecordInfrastructureMetrics
	GoRoutines = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "skybook_runtime_goroutines",
			Help: "Number of goroutines",
		},
	)

	HeapAlloc = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "skybook_runtime_heap_alloc_bytes",
			Help: "Heap allocated bytes",
		},
	)
)

// RecordInfrastructureMetrics collects infrastructure metrics until ctx is done
func RecordInfrastructureMetrics(ctx context.Context) {
	ticker := time.NewTicker(15 * time.Second)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				var m runtime.MemStats
				runtime.ReadMemStats(&m)

				GoRoutines.Set(float64(runtime.NumGoroutine()))
				HeapAlloc.Set(float64(m.HeapAlloc))
			}
		}
	}()
}

// MeasureDuration measures the duration of an operation
func MeasureDuration(start time.Time) float64 {
	return time.Since(start).Seconds()
}

// Status maps an error to the status label used across counters.
func Status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
