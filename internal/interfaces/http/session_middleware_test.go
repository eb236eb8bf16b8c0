package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/raash-api/internal/domain/entity"
	apphttp "github.com/jhoicas/raash-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const testCookie = "raash.sid"

// stubResolver resuelve tokens fijos a usuarios.
type stubResolver struct {
	users map[string]*entity.SessionUser
	err   error
}

func (r stubResolver) Resolve(_ context.Context, token string) (*entity.SessionUser, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.users[token], nil
}

var resolver = stubResolver{users: map[string]*entity.SessionUser{
	"tok-admin":    {UserID: 1, Email: "admin@raash.in", UserType: entity.UserTypeAdmin},
	"tok-customer": {UserID: 2, Email: "asha@example.com", UserType: entity.UserTypeCustomer},
}}

// buildGuardedApp construye una app mínima con LoadSession + RequireSession + RequireRole.
func buildGuardedApp(r apphttp.SessionResolver, allowedRoles ...string) (*fiber.App, *int) {
	reached := 0
	app := fiber.New()
	app.Use(apphttp.LoadSession(r, testCookie))
	handlers := []fiber.Handler{apphttp.RequireSession()}
	if len(allowedRoles) > 0 {
		handlers = append(handlers, apphttp.RequireRole(allowedRoles...))
	}
	handlers = append(handlers, func(c *fiber.Ctx) error {
		reached++
		u := apphttp.GetSessionUser(c)
		return c.JSON(fiber.Map{"user_id": u.UserID, "user_type": u.UserType})
	})
	app.Get("/protected", handlers...)
	return app, &reached
}

func doGuarded(t *testing.T, app *fiber.App, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: testCookie, Value: token})
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireSession
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireSession_SinCookieRetorna401YNoEjecutaHandler(t *testing.T) {
	app, reached := buildGuardedApp(resolver)
	resp := doGuarded(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "UNAUTHORIZED")
	assert.Zero(t, *reached, "el handler protegido no debe ejecutarse")
}

func TestRequireSession_TokenDesconocidoRetorna401(t *testing.T) {
	app, reached := buildGuardedApp(resolver)
	resp := doGuarded(t, app, "tok-expirado")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Zero(t, *reached)
}

func TestRequireSession_SesionValidaExponeUsuario(t *testing.T) {
	app, reached := buildGuardedApp(resolver)
	resp := doGuarded(t, app, "tok-customer")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, float64(2), body["user_id"])
	assert.Equal(t, 1, *reached)
}

func TestLoadSession_ErrorDelAlmacenRetorna500(t *testing.T) {
	app, reached := buildGuardedApp(stubResolver{err: errors.New("sessions: conexión cerrada")})
	resp := doGuarded(t, app, "tok-customer")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "DATABASE")
	assert.Zero(t, *reached)
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_AdminAccedeRutaAdmin(t *testing.T) {
	app, _ := buildGuardedApp(resolver, entity.UserTypeAdmin)
	resp := doGuarded(t, app, "tok-admin")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRole_ClienteBloqueadoEnRutaAdmin(t *testing.T) {
	app, reached := buildGuardedApp(resolver, entity.UserTypeAdmin)
	resp := doGuarded(t, app, "tok-customer")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
	assert.Zero(t, *reached)
}
