package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gst-invoice-api/internal/infrastructure/metrics"
)

// MetricsMiddleware cuenta peticiones por method/route/status y mide su latencia.
// La ruta es el patrón registrado (/api/v1/gstin/:gstin), no la URL concreta.
func MetricsMiddleware(m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		m.InFlight.Inc()
		defer m.InFlight.Dec()

		start := time.Now()
		err := c.Next()
		m.ObserveRequest(c.Method(), c.Route().Path, statusOf(c, err), time.Since(start))
		return err
	}
}
