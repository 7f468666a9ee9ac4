package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type ResponseWriter struct {
	http.ResponseWriter
	Status int
}

func (w *ResponseWriter) WriteHeader(status int) {
	w.Status = status
	w.ResponseWriter.WriteHeader(status)
}

// Metrics holds Prometheus metric vectors for the gateway.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	WeatherProcessingTime *prometheus.HistogramVec
	WeatherFailures       *prometheus.CounterVec

	ServiceUptime prometheus.Gauge
}

func NewMetrics(serviceName string) *Metrics {
	reg := prometheus.NewRegistry()

	httpLabels := []string{"method", "endpoint", "status_class"}

	m := &Metrics{
		registry: reg,
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: serviceName + "_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			httpLabels,
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    serviceName + "_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			httpLabels,
		),
		WeatherProcessingTime: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    serviceName + "_weather_processing_time_seconds",
				Help:    "Time taken to serve weather requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			httpLabels,
		),
		WeatherFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: serviceName + "_weather_failures_total",
				Help: "Total number of weather request failures",
			},
			httpLabels,
		),
		ServiceUptime: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: serviceName + "_service_uptime_seconds",
				Help: "Service uptime in seconds",
			},
		),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.WeatherProcessingTime,
		m.WeatherFailures,
		m.ServiceUptime,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Handler exposes the registry for the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) InstrumentHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapped := &ResponseWriter{ResponseWriter: w, Status: http.StatusOK}
		next.ServeHTTP(wrapped, r)

		labels := prometheus.Labels{
			"method":       r.Method,
			"endpoint":     r.URL.Path,
			"status_class": m.GetStatusClass(wrapped.Status),
		}

		m.HTTPRequestsTotal.With(labels).Inc()
		m.HTTPRequestDuration.With(labels).Observe(time.Since(start).Seconds())
		m.ServiceUptime.SetToCurrentTime()
	})
}

func (m *Metrics) GetStatusClass(status int) string {
	switch {
	case status >= 200 && status < 300:
		return "2xx"
	case status >= 300 && status < 400:
		return "3xx"
	case status >= 400 && status < 500:
		return "4xx"
	case status >= http.StatusInternalServerError:
		return "5xx"
	default:
		return "unknown"
	}
}
