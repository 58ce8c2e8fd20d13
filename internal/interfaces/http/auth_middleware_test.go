package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/plantnet/marketplace-api/internal/interfaces/http"
	pkgjwt "github.com/plantnet/marketplace-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Test helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "plantnet-api-test"
	testExpDays   = 7
)

// fakeRoleResolver resolves roles from a fixed map, the way the real resolver
// re-queries the user store per request.
type fakeRoleResolver struct {
	roles map[string]string
	calls int
}

func (f *fakeRoleResolver) RoleOf(_ context.Context, email string) (string, error) {
	f.calls++
	return f.roles[email], nil
}

// buildTestApp builds a minimal Fiber app with the full gate chain and a
// handler that records whether it ran.
func buildTestApp(resolver *fakeRoleResolver, allowedRoles ...string) (*fiber.App, *int) {
	app := fiber.New()
	handlerRuns := 0
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(resolver, allowedRoles...),
		func(c *fiber.Ctx) error {
			handlerRuns++
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":    true,
				"email": apphttp.GetEmail(c),
			})
		},
	)
	return app, &handlerRuns
}

// tokenFor generates a JWT for the given email.
func tokenFor(t *testing.T, email string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, email, testIssuer, testExpDays)
	require.NoError(t, err, "a valid JWT must be generated")
	return tok
}

// doRequest issues GET /protected and returns the response.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireRole
// ──────────────────────────────────────────────────────────────────────────────

// The stored role matches the required one → HTTP 200.
func TestRequireRole_AdminReachesAdminRoute(t *testing.T) {
	resolver := &fakeRoleResolver{roles: map[string]string{"boss@plantnet.io": "admin"}}
	app, runs := buildTestApp(resolver, "admin")

	resp := doRequest(t, app, "Bearer "+tokenFor(t, "boss@plantnet.io"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"admin must reach an admin-gated route")
	assert.Equal(t, 1, *runs)
	assert.Equal(t, 1, resolver.calls, "the role must be resolved from the store")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "boss@plantnet.io", body["email"])
}

// One of several allowed roles matches → HTTP 200.
func TestRequireRole_SellerReachesSellerOrAdminRoute(t *testing.T) {
	resolver := &fakeRoleResolver{roles: map[string]string{"shop@plantnet.io": "seller"}}
	app, _ := buildTestApp(resolver, "seller", "admin")

	resp := doRequest(t, app, "Bearer "+tokenFor(t, "shop@plantnet.io"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Wrong stored role → HTTP 403, and the response carries the actual role.
func TestRequireRole_CustomerBlockedOnAdminRoute(t *testing.T) {
	resolver := &fakeRoleResolver{roles: map[string]string{"buyer@plantnet.io": "customer"}}
	app, runs := buildTestApp(resolver, "admin")

	resp := doRequest(t, app, "Bearer "+tokenFor(t, "buyer@plantnet.io"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"customer must not reach an admin-gated route")
	assert.Equal(t, 0, *runs, "a denied request must never execute the handler")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
	assert.Contains(t, string(body), "customer",
		"the denial must include the actual role for client debugging")
}

// Valid token but no user record → HTTP 403 with role "none".
func TestRequireRole_UnknownUserBlocked(t *testing.T) {
	resolver := &fakeRoleResolver{roles: map[string]string{}}
	app, runs := buildTestApp(resolver, "seller")

	resp := doRequest(t, app, "Bearer "+tokenFor(t, "ghost@plantnet.io"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, 0, *runs)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "none")
}

// No Authorization header and no cookie → HTTP 401, role never resolved.
func TestRequireRole_NoCredentialReturns401(t *testing.T) {
	resolver := &fakeRoleResolver{roles: map[string]string{}}
	app, runs := buildTestApp(resolver, "admin")

	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, 0, *runs)
	assert.Equal(t, 0, resolver.calls,
		"a request without identity must short-circuit before the role check")
}

// Malformed token → HTTP 401 INVALID_TOKEN.
func TestRequireRole_InvalidTokenReturns401(t *testing.T) {
	resolver := &fakeRoleResolver{roles: map[string]string{}}
	app, runs := buildTestApp(resolver, "admin")

	resp := doRequest(t, app, "Bearer not.a.token")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, 0, *runs)
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware — credential carriers
// ──────────────────────────────────────────────────────────────────────────────

// The token cookie works as a fallback carrier.
func TestAuthMiddleware_CookieCarrier(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"email": apphttp.GetEmail(c)})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: apphttp.TokenCookie, Value: tokenFor(t, "cookie@plantnet.io")})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "cookie@plantnet.io", body["email"])
}

// The Authorization header wins over the cookie when both are present.
func TestAuthMiddleware_HeaderWinsOverCookie(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"email": apphttp.GetEmail(c)})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, "header@plantnet.io"))
	req.AddCookie(&http.Cookie{Name: apphttp.TokenCookie, Value: tokenFor(t, "cookie@plantnet.io")})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "header@plantnet.io", body["email"])
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireSelf — email path parameter vs credential
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireSelf_MismatchReturns403(t *testing.T) {
	app := fiber.New()
	runs := 0
	app.Get("/orders/customer/:email",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireSelf("email"),
		func(c *fiber.Ctx) error {
			runs++
			return c.SendStatus(fiber.StatusOK)
		},
	)

	req := httptest.NewRequest(http.MethodGet, "/orders/customer/other@plantnet.io", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, "me@plantnet.io"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"a buyer must not read another buyer's orders")
	assert.Equal(t, 0, runs)
}

func TestRequireSelf_MatchPasses(t *testing.T) {
	app := fiber.New()
	app.Get("/orders/customer/:email",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireSelf("email"),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) },
	)

	req := httptest.NewRequest(http.MethodGet, "/orders/customer/me@plantnet.io", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, "me@plantnet.io"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// JWT pkg — generate/parse integrity
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, "user@plantnet.io", testIssuer, testExpDays)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	email, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "user@plantnet.io", email)
}

func TestJWT_ExpiredTokenReturnsError(t *testing.T) {
	// Expiration -1 day (already expired)
	tok, err := pkgjwt.Generate(testJWTSecret, "user@plantnet.io", testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "an expired token must be rejected")
}

func TestJWT_WrongSecretReturnsError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, "user@plantnet.io", testIssuer, testExpDays)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("a-completely-different-secret", tok)
	assert.Error(t, err, "a wrong secret must invalidate the token")
}
