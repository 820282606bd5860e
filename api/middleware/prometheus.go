package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status", "service"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint", "service"},
	)

	postsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "board_posts_created_total",
			Help: "Total number of posts created on the board",
		},
		[]string{"with_image", "service"},
	)

	wsClientsConnected = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "board_ws_clients_connected",
			Help: "Number of currently connected WebSocket clients",
		},
		[]string{"service"},
	)
)

func PrometheusMiddleware(serviceName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		httpRequestsTotal.WithLabelValues(
			c.Request.Method,
			path,
			status,
			serviceName,
		).Inc()

		httpRequestDuration.WithLabelValues(
			c.Request.Method,
			path,
			serviceName,
		).Observe(duration)
	}
}

func RecordPostCreated(serviceName string, withImage bool) {
	postsCreatedTotal.WithLabelValues(strconv.FormatBool(withImage), serviceName).Inc()
}

func RecordWSConnected(serviceName string) {
	wsClientsConnected.WithLabelValues(serviceName).Inc()
}

func RecordWSDisconnected(serviceName string) {
	wsClientsConnected.WithLabelValues(serviceName).Dec()
}
