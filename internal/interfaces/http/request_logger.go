package http

import (
	"time"

	"github.com/RaGnaRoK-thor/invsys/pkg/logger"
	"github.com/gofiber/fiber/v2"
)

// RequestLogger registra cada petición con método, ruta, status y duración.
// En rutas autenticadas incluye el employee_id resuelto por el middleware de
// sesión (los Locals ya están poblados al volver de c.Next()).
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		ev := log.Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(start))
		if employeeID := GetEmployeeID(c); employeeID != "" {
			ev = ev.Str("employee_id", employeeID)
		}
		ev.Msg("petición atendida")
		return err
	}
}
