// Package metrics records schedule computations as Prometheus metrics.
//
// A run is one-shot, so metrics are not scraped; they can be written to a
// textfile for the node exporter textfile collector.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
)

// Recorder holds the metrics of one run on a private registry.
type Recorder struct {
	registry *prometheus.Registry

	// Schedules counts computed schedules by method
	Schedules *prometheus.CounterVec
	// Failures counts loans that could not be scheduled by method and reason
	Failures *prometheus.CounterVec
	// Duration observes how long a schedule took to compute
	Duration *prometheus.HistogramVec
	// Payments observes the number of payments per schedule
	Payments *prometheus.HistogramVec
	// OverAllInterest is the total interest of each loan
	OverAllInterest *prometheus.GaugeVec
	// EfficientRate is the overall interest as a percentage of each loan
	EfficientRate *prometheus.GaugeVec
}

// NewRecorder creates a recorder with its own registry.
func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Recorder{
		registry: registry,
		Schedules: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loan_schedules_total",
				Help: "Number of computed loan schedules",
			},
			[]string{"method"},
		),
		Failures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loan_schedule_failures_total",
				Help: "Number of loans whose schedule could not be computed",
			},
			[]string{"method", "reason"},
		),
		Duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "loan_schedule_duration_seconds",
				Help:    "Time spent computing a loan schedule",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
			[]string{"method"},
		),
		Payments: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "loan_schedule_payments",
				Help:    "Number of payments in a loan schedule",
				Buckets: []float64{6, 12, 24, 60, 120, 240, 360},
			},
			[]string{"method"},
		),
		OverAllInterest: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "loan_overall_interest",
				Help: "Total interest paid over the life of the loan",
			},
			[]string{"loan", "method"},
		),
		EfficientRate: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "loan_efficient_rate_percent",
				Help: "Total interest as a percentage of the loan amount",
			},
			[]string{"loan", "method"},
		),
	}
}

// ObserveSchedule records a successfully computed schedule.
func (r *Recorder) ObserveSchedule(loan, method string, payments int, overAllInterest, efficientRate decimal.Decimal, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.Schedules.WithLabelValues(method).Inc()
	r.Duration.WithLabelValues(method).Observe(elapsed.Seconds())
	r.Payments.WithLabelValues(method).Observe(float64(payments))
	r.OverAllInterest.WithLabelValues(loan, method).Set(overAllInterest.InexactFloat64())
	r.EfficientRate.WithLabelValues(loan, method).Set(efficientRate.InexactFloat64())
}

// ObserveFailure records a loan that could not be scheduled.
func (r *Recorder) ObserveFailure(method, reason string) {
	if r == nil {
		return
	}
	r.Failures.WithLabelValues(method, reason).Inc()
}

// Registry exposes the registry the recorder writes to.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile writes all metrics in the text exposition format to path.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
