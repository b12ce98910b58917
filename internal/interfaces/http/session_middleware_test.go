package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/RaGnaRoK-thor/invsys/internal/interfaces/http"
	"github.com/RaGnaRoK-thor/invsys/pkg/session"
)

const testCookieName = "session_token"

// buildProtectedApp construye una app Fiber mínima con una ruta protegida que
// devuelve el employee_id resuelto por el middleware.
func buildProtectedApp(sessions *session.Store, ttl time.Duration) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.SessionMiddleware(sessions, testCookieName, ttl),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"employee_id": apphttp.GetEmployeeID(c)})
		},
	)
	return app
}

func doProtectedRequest(t *testing.T, app *fiber.App, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: token})
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// Sin cookie de sesión -> 401 antes de llegar al handler.
func TestSessionMiddleware_SinCookie_Retorna401(t *testing.T) {
	sessions := session.New(30 * time.Minute)
	t.Cleanup(sessions.Close)
	app := buildProtectedApp(sessions, 30*time.Minute)

	resp := doProtectedRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSessionMiddleware_TokenDesconocido_Retorna401(t *testing.T) {
	sessions := session.New(30 * time.Minute)
	t.Cleanup(sessions.Close)
	app := buildProtectedApp(sessions, 30*time.Minute)

	resp := doProtectedRequest(t, app, "token-inventado")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSessionMiddleware_SesionViva_PasaYExponeEmployeeID(t *testing.T) {
	sessions := session.New(30 * time.Minute)
	t.Cleanup(sessions.Close)
	app := buildProtectedApp(sessions, 30*time.Minute)

	token := sessions.Create("EMP-001")
	resp := doProtectedRequest(t, app, token)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Una sesión expirada en el Store debe cortar con 401 aunque la cookie siga
// presente en el cliente.
func TestSessionMiddleware_SesionExpirada_Retorna401(t *testing.T) {
	clock := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	sessions := session.New(30*time.Minute, session.WithClock(func() time.Time { return clock }))
	t.Cleanup(sessions.Close)
	app := buildProtectedApp(sessions, 30*time.Minute)

	token := sessions.Create("EMP-001")
	clock = clock.Add(31 * time.Minute)

	resp := doProtectedRequest(t, app, token)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Un acceso válido reemite la cookie con la expiración renovada.
func TestSessionMiddleware_RenuevaCookie(t *testing.T) {
	sessions := session.New(30 * time.Minute)
	t.Cleanup(sessions.Close)
	app := buildProtectedApp(sessions, 30*time.Minute)

	token := sessions.Create("EMP-001")
	resp := doProtectedRequest(t, app, token)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var renewed *http.Cookie
	for _, ck := range resp.Cookies() {
		if ck.Name == testCookieName {
			renewed = ck
		}
	}
	require.NotNil(t, renewed, "la respuesta debe reemitir la cookie de sesión")
	assert.Equal(t, token, renewed.Value)
	assert.True(t, renewed.Expires.After(time.Now().Add(25*time.Minute)))
}
