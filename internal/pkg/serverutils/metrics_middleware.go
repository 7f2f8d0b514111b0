package serverutils

import (
	"strconv"
	"time"

	"event-management-be/internal/pkg/metrics"

	"github.com/gofiber/fiber/v2"
)

// MetricsMiddleware records request count and latency per matched route.
func MetricsMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()

		status := ctx.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}
		route := ctx.Route().Path
		labels := []string{route, ctx.Method(), strconv.Itoa(status)}
		metrics.RequestsTotal.WithLabelValues(labels...).Inc()
		metrics.RequestLatency.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
		return err
	}
}
