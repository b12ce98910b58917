package http_test

import (
	"bytes"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/RaGnaRoK-thor/invsys/internal/interfaces/http"
	"github.com/RaGnaRoK-thor/invsys/pkg/logger"
	"github.com/RaGnaRoK-thor/invsys/pkg/session"
)

// buildLoggedApp arma una app con el logger de peticiones escribiendo en buf
// (salida JSON) y una ruta protegida por sesión.
func buildLoggedApp(buf *bytes.Buffer, sessions *session.Store) *fiber.App {
	log := logger.New(logger.Config{Env: "production", Level: "info", Writer: buf})
	app := fiber.New()
	app.Use(apphttp.RequestLogger(log))
	app.Get("/protected",
		apphttp.SessionMiddleware(sessions, testCookieName, 30*time.Minute),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) },
	)
	return app
}

// En rutas autenticadas la línea de log lleva el employee_id de la sesión.
func TestRequestLogger_IncluyeEmployeeIDConSesion(t *testing.T) {
	sessions := session.New(30 * time.Minute)
	t.Cleanup(sessions.Close)
	var buf bytes.Buffer
	app := buildLoggedApp(&buf, sessions)

	token := sessions.Create("EMP-001")
	resp := doProtectedRequest(t, app, token)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	line := buf.String()
	assert.Contains(t, line, `"employee_id":"EMP-001"`)
	assert.Contains(t, line, `"path":"/protected"`)
	assert.Contains(t, line, `"status":200`)
}

// Sin sesión no hay employee_id que registrar; la línea sale igual con el 401.
func TestRequestLogger_SinSesionOmiteEmployeeID(t *testing.T) {
	sessions := session.New(30 * time.Minute)
	t.Cleanup(sessions.Close)
	var buf bytes.Buffer
	app := buildLoggedApp(&buf, sessions)

	resp := doProtectedRequest(t, app, "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	line := buf.String()
	assert.NotContains(t, line, "employee_id")
	assert.Contains(t, line, `"status":401`)
}
