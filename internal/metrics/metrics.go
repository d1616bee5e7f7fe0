package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the service's Prometheus instruments on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestInFlight prometheus.Gauge

	predictionsTotal     *prometheus.CounterVec
	predictionConfidence prometheus.Histogram
	decodeFailuresTotal  prometheus.Counter
}

func New(service string) *Metrics {
	registry := prometheus.NewRegistry()

	requestTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   "mri",
			Subsystem:   "http",
			Name:        "requests_total",
			Help:        "Total HTTP requests processed.",
			ConstLabels: prometheus.Labels{"service": service},
		},
		[]string{"method", "path", "status"},
	)
	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace:   "mri",
			Subsystem:   "http",
			Name:        "request_duration_seconds",
			Help:        "HTTP request duration in seconds.",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: prometheus.Labels{"service": service},
		},
		[]string{"method", "path"},
	)
	requestInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace:   "mri",
			Subsystem:   "http",
			Name:        "in_flight_requests",
			Help:        "Number of in-flight HTTP requests.",
			ConstLabels: prometheus.Labels{"service": service},
		},
	)
	predictionsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   "mri",
			Subsystem:   "model",
			Name:        "predictions_total",
			Help:        "Total completed predictions by predicted class.",
			ConstLabels: prometheus.Labels{"service": service},
		},
		[]string{"class"},
	)
	predictionConfidence := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace:   "mri",
			Subsystem:   "model",
			Name:        "prediction_confidence",
			Help:        "Distribution of prediction confidence percentages.",
			Buckets:     []float64{25, 50, 70, 80, 90, 95, 99, 100},
			ConstLabels: prometheus.Labels{"service": service},
		},
	)
	decodeFailuresTotal := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace:   "mri",
			Subsystem:   "model",
			Name:        "decode_failures_total",
			Help:        "Total uploads rejected because the image could not be decoded.",
			ConstLabels: prometheus.Labels{"service": service},
		},
	)

	registry.MustRegister(
		requestTotal,
		requestDuration,
		requestInFlight,
		predictionsTotal,
		predictionConfidence,
		decodeFailuresTotal,
	)

	return &Metrics{
		registry:             registry,
		requestTotal:         requestTotal,
		requestDuration:      requestDuration,
		requestInFlight:      requestInFlight,
		predictionsTotal:     predictionsTotal,
		predictionConfidence: predictionConfidence,
		decodeFailuresTotal:  decodeFailuresTotal,
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		path := normalizePath(r.URL.Path)
		recorder := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

		m.requestInFlight.Inc()
		defer m.requestInFlight.Dec()

		next.ServeHTTP(recorder, r)

		m.requestTotal.WithLabelValues(
			r.Method,
			path,
			strconv.Itoa(recorder.statusCode),
		).Inc()
		m.requestDuration.WithLabelValues(r.Method, path).
			Observe(time.Since(start).Seconds())
	})
}

// normalizePath keeps label cardinality bounded to the known routes.
func normalizePath(path string) string {
	switch path {
	case "/health", "/predict", "/predict/image":
		return path
	default:
		return "other"
	}
}

func (m *Metrics) RecordPrediction(class string, confidence float64) {
	m.predictionsTotal.WithLabelValues(class).Inc()
	m.predictionConfidence.Observe(confidence)
}

func (m *Metrics) RecordDecodeFailure() {
	m.decodeFailuresTotal.Inc()
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (w *statusRecorder) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}
