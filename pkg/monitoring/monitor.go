package monitoring

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	PapersGenerated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "teateach_papers_generated_total",
			Help: "Number of test papers assembled and persisted",
		},
		[]string{"method"},
	)

	SelectionSize = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "teateach_paper_selection_size",
			Help:    "Number of questions selected per assembly run",
			Buckets: []float64{0, 5, 10, 20, 30, 50, 100},
		},
		[]string{"method"},
	)

	GenerationRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "teateach_generation_rejected_total",
			Help: "Assembly requests rejected before selection",
		},
		[]string{"reason"},
	)
)

var initOnce sync.Once

func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(RequestCounter)
		prometheus.MustRegister(RequestDuration)
		prometheus.MustRegister(PapersGenerated)
		prometheus.MustRegister(SelectionSize)
		prometheus.MustRegister(GenerationRejected)
	})
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		RequestCounter.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
