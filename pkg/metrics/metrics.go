// Package metrics holds the Prometheus collectors of the api server.
// They are exposed at GET /metrics/prometheus next to the fiber monitor page.
package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

var HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "streamsphere_http_requests_total",
	Help: "Total HTTP requests handled.",
}, []string{"method", "path", "status"})

var HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "streamsphere_http_request_duration_seconds",
	Help:    "HTTP request latency in seconds.",
	Buckets: prometheus.DefBuckets,
}, []string{"method", "path"})

// MetadataRequests counts calls to the metadata api by kind (list, search, videos) and result.
var MetadataRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "streamsphere_metadata_requests_total",
	Help: "Metadata api calls by kind and result.",
}, []string{"kind", "result"})

var RecommendationRuns = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "streamsphere_recommendation_runs_total",
	Help: "Recommendation generations by result.",
}, []string{"result"})

var AuthEvents = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "streamsphere_auth_events_total",
	Help: "Auth events by type.",
}, []string{"event", "result"})

var RefreshQueueSize = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "streamsphere_refresh_queue_size",
	Help: "Number of pending recommendation refresh jobs.",
})

// Result maps an error to the "ok"/"error" label value.
func Result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// Handler serves the default registry on fasthttp.
func Handler() fiber.Handler {
	h := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
	return func(c *fiber.Ctx) error {
		h(c.Context())
		return nil
	}
}

// Middleware records request count and latency labelled by the matched route.
func Middleware(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()

	path := c.Route().Path
	status := c.Response().StatusCode()
	if err != nil {
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		} else {
			status = fiber.StatusInternalServerError
		}
	}
	HTTPRequests.WithLabelValues(c.Method(), path, strconv.Itoa(status)).Inc()
	HTTPDuration.WithLabelValues(c.Method(), path).Observe(time.Since(start).Seconds())
	return err
}
