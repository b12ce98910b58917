package http

import (
	"time"

	"github.com/RaGnaRoK-thor/invsys/internal/application/dto"
	"github.com/RaGnaRoK-thor/invsys/pkg/session"
	"github.com/gofiber/fiber/v2"
)

// Locals key para el EmployeeID en Fiber.
const LocalEmployeeID = "employee_id"

// SessionMiddleware valida la cookie de sesión contra el Store y corta con 401
// antes de que corra el handler si no hay sesión viva. Un acceso válido renueva
// la expiración en el Store (ventana deslizante) y reemite la cookie con la
// nueva expiración.
func SessionMiddleware(sessions *session.Store, cookieName string, ttl time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(cookieName)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "no autorizado, inicie sesión"})
		}
		employeeID, ok := sessions.Get(token)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión inválida o expirada"})
		}
		c.Cookie(&fiber.Cookie{
			Name:     cookieName,
			Value:    token,
			Expires:  time.Now().Add(ttl),
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
		c.Locals(LocalEmployeeID, employeeID)
		return c.Next()
	}
}

// GetEmployeeID devuelve el EmployeeID del contexto (después del middleware de sesión).
func GetEmployeeID(c *fiber.Ctx) string {
	v := c.Locals(LocalEmployeeID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
