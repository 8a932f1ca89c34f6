package http_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	httpiface "github.com/tu-usuario/almacen-api/internal/interfaces/http"
	"github.com/tu-usuario/almacen-api/pkg/jwt"
)

const testSecret = "secreto-de-test"

// newProtectedApp monta una ruta protegida por auth + rol para probar el
// middleware de punta a punta con app.Test.
func newProtectedApp(roles ...string) *fiber.App {
	app := fiber.New()
	group := app.Group("/", httpiface.AuthMiddleware(testSecret))
	group.Get("/recurso", httpiface.RequireRole(roles...), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":  httpiface.GetUserID(c),
			"username": httpiface.GetUsername(c),
			"role":     httpiface.GetRole(c),
		})
	})
	return app
}

func tokenFor(t *testing.T, role string) string {
	t.Helper()
	token, err := jwt.Generate(testSecret, "u-1", "maria", role, "almacen-api-test", 5)
	require.NoError(t, err)
	return token
}

func TestAuthMiddleware_SinToken(t *testing.T) {
	app := newProtectedApp(entity.RoleAdmin)

	req := httptest.NewRequest("GET", "/recurso", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	app := newProtectedApp(entity.RoleAdmin)

	req := httptest.NewRequest("GET", "/recurso", nil)
	req.Header.Set("Authorization", "Token abc")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenFirmadoConOtroSecreto(t *testing.T) {
	app := newProtectedApp(entity.RoleAdmin)

	token, err := jwt.Generate("otro-secreto", "u-1", "maria", entity.RoleAdmin, "x", 5)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/recurso", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireRole_RolPermitido(t *testing.T) {
	app := newProtectedApp(entity.RoleAdmin, entity.RoleBodega)

	req := httptest.NewRequest("GET", "/recurso", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, entity.RoleBodega))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

// El rol requerimientos no accede a recursos de operarios.
func TestRequireRole_RolSinAcceso(t *testing.T) {
	app := newProtectedApp(entity.RoleAdmin, entity.RoleBodega)

	req := httptest.NewRequest("GET", "/recurso", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, entity.RoleRequerimientos))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
