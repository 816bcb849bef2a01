package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nourishcoach_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "nourishcoach_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	AppointmentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nourishcoach_appointments_total",
			Help: "Total number of appointment commit attempts",
		},
		[]string{"outcome"},
	)

	CalculatorRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nourishcoach_calculator_requests_total",
			Help: "Total number of calculator computations",
		},
		[]string{"kind"},
	)

	PlanRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nourishcoach_plan_requests_total",
			Help: "Total number of meal plan generations",
		},
		[]string{"period", "source"},
	)

	PlanFallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nourishcoach_plan_fallbacks_total",
			Help: "Total number of plan API failures recovered via the mock generator",
		},
		[]string{"reason"},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nourishcoach_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "nourishcoach_email_queue_length",
			Help: "Current length of email queue",
		},
	)

	ContentWritesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nourishcoach_content_writes_total",
			Help: "Total number of authored content writes",
		},
		[]string{"kind"},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordAppointment(outcome string) {
	AppointmentsTotal.WithLabelValues(outcome).Inc()
}

func RecordCalculator(kind string) {
	CalculatorRequestsTotal.WithLabelValues(kind).Inc()
}

func RecordPlan(period, source string) {
	PlanRequestsTotal.WithLabelValues(period, source).Inc()
}

func RecordPlanFallback(reason string) {
	PlanFallbacksTotal.WithLabelValues(reason).Inc()
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}

func RecordContentWrite(kind string) {
	ContentWritesTotal.WithLabelValues(kind).Inc()
}
