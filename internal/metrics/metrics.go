package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tradehall_http_requests_total",
		Help: "HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tradehall_http_request_duration_seconds",
		Help:    "HTTP request latency by method and route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	// Trades counts store and inventory use-cases by operation and outcome.
	Trades = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tradehall_trades_total",
		Help: "Store and inventory operations by outcome.",
	}, []string{"operation", "result"})

	StoreMoneyMoved = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tradehall_store_money_moved_total",
		Help: "Gold moved into or out of stores.",
	}, []string{"direction"})
)

func PrometheusMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			route := c.Path()
			if route == "" {
				route = "unknown"
			}
			method := c.Request().Method
			status := strconv.Itoa(c.Response().Status)

			httpRequests.WithLabelValues(method, route, status).Inc()
			httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())

			return nil
		}
	}
}

// ObserveTrade records the outcome of a use-case.
func ObserveTrade(operation string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	Trades.WithLabelValues(operation, result).Inc()
}
