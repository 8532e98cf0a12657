// Package metrics collects Prometheus metrics for the API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds the API metrics
type Collector struct {
	requests         *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	imageUploads     *prometheus.CounterVec
	imageUploadTime  prometheus.Histogram
	usersProvisioned *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its metrics with reg
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "learnhub_http_requests_total",
			Help: "HTTP requests by method, route and status code",
		}, []string{"method", "route", "status_code"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "learnhub_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		imageUploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "learnhub_image_uploads_total",
			Help: "Image host uploads by outcome",
		}, []string{"outcome"}),
		imageUploadTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "learnhub_image_upload_duration_seconds",
			Help:    "Image host upload latency in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
		usersProvisioned: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "learnhub_users_provisioned_total",
			Help: "User accounts created by method",
		}, []string{"method"}),
	}

	reg.MustRegister(
		c.requests,
		c.requestDuration,
		c.imageUploads,
		c.imageUploadTime,
		c.usersProvisioned,
	)

	return c
}

// RecordImageUpload records one image host call
func (c *Collector) RecordImageUpload(outcome string, duration time.Duration) {
	c.imageUploads.WithLabelValues(outcome).Inc()
	c.imageUploadTime.Observe(duration.Seconds())
}

// RecordUserProvisioned records a new account
func (c *Collector) RecordUserProvisioned(method string) {
	c.usersProvisioned.WithLabelValues(method).Inc()
}

// Middleware records request counts and latency labelled by the matched chi route pattern
func (c *Collector) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		c.requests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		c.requestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// Handler returns the /metrics HTTP handler for the given gatherer
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
