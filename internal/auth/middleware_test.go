//go:build unit

package auth

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payout-api/pkg/cerror"
	"payout-api/pkg/config"
	"payout-api/pkg/jwt_generator"
)

var TestJwtConfig = config.JwtConfig{
	Secret:            []byte("test-jwt-secret"),
	Algorithm:         "HS256",
	ExpirationMinutes: 30,
}

func newProtectedApp(t *testing.T) *fiber.App {
	t.Helper()

	jwtGenerator, err := jwt_generator.NewJwtGenerator(TestJwtConfig)
	require.NoError(t, err)

	app := fiber.New(fiber.Config{
		ErrorHandler: cerror.Middleware,
	})
	app.Get("/protected", RequireAdmin(jwtGenerator), func(ctx *fiber.Ctx) error {
		claims := ctx.Locals(ClaimsContextKey).(*jwt_generator.Claims)
		return ctx.Status(fiber.StatusOK).SendString(claims.Subject)
	})

	return app
}

func TestRequireAdmin(t *testing.T) {
	t.Run("admin token should pass and expose claims", func(t *testing.T) {
		jwtGenerator, err := jwt_generator.NewJwtGenerator(TestJwtConfig)
		require.NoError(t, err)
		token, err := jwtGenerator.GenerateToken("admin@example.com", RoleAdmin)
		require.NoError(t, err)

		app := newProtectedApp(t)

		req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
		resp, _ := app.Test(req)
		body, _ := io.ReadAll(resp.Body)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, "admin@example.com", string(body))
	})

	t.Run("missing header should return unauthorized", func(t *testing.T) {
		app := newProtectedApp(t)

		req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
		resp, _ := app.Test(req)
		body, _ := io.ReadAll(resp.Body)

		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		assert.JSONEq(t, `{"detail":"missing authorization header"}`, string(body))
	})

	t.Run("header without bearer prefix should return unauthorized", func(t *testing.T) {
		jwtGenerator, err := jwt_generator.NewJwtGenerator(TestJwtConfig)
		require.NoError(t, err)
		token, err := jwtGenerator.GenerateToken("admin@example.com", RoleAdmin)
		require.NoError(t, err)

		app := newProtectedApp(t)

		req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
		req.Header.Set(fiber.HeaderAuthorization, token)
		resp, _ := app.Test(req)
		body, _ := io.ReadAll(resp.Body)

		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		assert.JSONEq(t, `{"detail":"malformed authorization header"}`, string(body))
	})

	t.Run("garbage token should return unauthorized", func(t *testing.T) {
		app := newProtectedApp(t)

		req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer not.a.token")
		resp, _ := app.Test(req)
		body, _ := io.ReadAll(resp.Body)

		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		assert.JSONEq(t, `{"detail":"invalid token"}`, string(body))
	})

	t.Run("expired token should return unauthorized with expiry detail", func(t *testing.T) {
		now := time.Now().UTC()
		claims := jwt_generator.Claims{
			Role: RoleAdmin,
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "admin@example.com",
				IssuedAt:  jwt.NewNumericDate(now.Add(-time.Hour)),
				ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute)),
			},
		}
		expiredToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
			SignedString(TestJwtConfig.Secret)
		require.NoError(t, err)

		app := newProtectedApp(t)

		req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+expiredToken)
		resp, _ := app.Test(req)
		body, _ := io.ReadAll(resp.Body)

		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		assert.JSONEq(t, `{"detail":"token expired"}`, string(body))
	})

	t.Run("valid token with user role should return unauthorized", func(t *testing.T) {
		jwtGenerator, err := jwt_generator.NewJwtGenerator(TestJwtConfig)
		require.NoError(t, err)
		token, err := jwtGenerator.GenerateToken("user@example.com", RoleUser)
		require.NoError(t, err)

		app := newProtectedApp(t)

		req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
		resp, _ := app.Test(req)
		body, _ := io.ReadAll(resp.Body)

		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		assert.JSONEq(t, `{"detail":"admin privileges required"}`, string(body))
	})
}
