package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
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

	// QuizGenerations counts pipeline runs by outcome
	// (success, input_error, config_error, upstream_error, extraction_error).
	QuizGenerations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quiz_generations_total",
			Help: "Total number of AI quiz generations by outcome",
		},
		[]string{"outcome"},
	)

	ModelLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "quiz_model_call_duration_seconds",
			Help:    "Duration of chat completion calls",
			Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30},
		},
		[]string{"model"},
	)

	registerOnce sync.Once
)

// Init registers the collectors with the default registry. Safe to call more than once.
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(RequestCounter)
		prometheus.MustRegister(RequestDuration)
		prometheus.MustRegister(QuizGenerations)
		prometheus.MustRegister(ModelLatency)
	})
}

// ObserveGeneration records one pipeline outcome.
func ObserveGeneration(outcome string) {
	QuizGenerations.WithLabelValues(outcome).Inc()
}

// ObserveModelCall records the latency of one chat completion call.
func ObserveModelCall(model string, elapsed time.Duration) {
	ModelLatency.WithLabelValues(model).Observe(elapsed.Seconds())
}

// Middleware records request counts and durations per route.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fiberErr, ok := err.(*fiber.Error); ok {
				status = fiberErr.Code
			}
		}

		endpoint := c.Route().Path
		RequestCounter.WithLabelValues(c.Method(), endpoint, strconv.Itoa(status)).Inc()
		RequestDuration.WithLabelValues(c.Method(), endpoint).Observe(time.Since(start).Seconds())
		return err
	}
}

// Handler exposes the default registry in the Prometheus text format.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
