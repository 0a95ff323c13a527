package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/testcase-service/internal/auth"
	"github.com/spec-kit/testcase-service/internal/domain"
)

func guardedApp(t *testing.T, codec *auth.TokenCodec) *fiber.App {
	t.Helper()

	guard := auth.NewRouteGuard(auth.NewResolver(codec), []string{"/api", "/health"})

	app := fiber.New()
	app.Use(guard.Handle)
	ok := func(c *fiber.Ctx) error { return c.SendString("ok") }
	app.Get("/", ok)
	app.Get("/login", ok)
	app.Get("/projects/:projectID", ok)
	app.Get("/admin/users", ok)
	app.Get("/api/ping", ok)
	app.Get("/health/live", ok)
	return app
}

func sessionCookie(t *testing.T, codec *auth.TokenCodec, role domain.Role) *http.Cookie {
	t.Helper()
	token, _, err := codec.Issue(domain.Identity{
		ID:    "user-1",
		Email: "jane@example.com",
		Name:  "Jane",
		Role:  role,
	})
	require.NoError(t, err)
	return &http.Cookie{Name: auth.SessionCookieName, Value: token}
}

func TestGuardRedirectsUnauthenticated(t *testing.T) {
	codec := auth.NewTokenCodec(testSecret, time.Hour)
	app := guardedApp(t, codec)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/projects/1", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestGuardRedirectsInvalidToken(t *testing.T) {
	codec := auth.NewTokenCodec(testSecret, time.Hour)
	app := guardedApp(t, codec)

	req := httptest.NewRequest(http.MethodGet, "/projects/1", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: "not-a-token"})

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestGuardPassesAuthenticated(t *testing.T) {
	codec := auth.NewTokenCodec(testSecret, time.Hour)
	app := guardedApp(t, codec)

	req := httptest.NewRequest(http.MethodGet, "/projects/1", nil)
	req.AddCookie(sessionCookie(t, codec, domain.RoleGuest))

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGuardSoftDeniesNonAdminOnAdminPaths(t *testing.T) {
	codec := auth.NewTokenCodec(testSecret, time.Hour)
	app := guardedApp(t, codec)

	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	req.AddCookie(sessionCookie(t, codec, domain.RoleGuest))

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(t, "/", resp.Header.Get("Location"))
}

func TestGuardAllowsAdminOnAdminPaths(t *testing.T) {
	codec := auth.NewTokenCodec(testSecret, time.Hour)
	app := guardedApp(t, codec)

	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	req.AddCookie(sessionCookie(t, codec, domain.RoleAdmin))

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGuardRedirectsAuthenticatedOffLoginPage(t *testing.T) {
	codec := auth.NewTokenCodec(testSecret, time.Hour)
	app := guardedApp(t, codec)

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req.AddCookie(sessionCookie(t, codec, domain.RoleAdmin))

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(t, "/", resp.Header.Get("Location"))
}

func TestGuardLetsUnauthenticatedReachLoginPage(t *testing.T) {
	codec := auth.NewTokenCodec(testSecret, time.Hour)
	app := guardedApp(t, codec)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/login", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGuardSkipsExcludedPrefixes(t *testing.T) {
	codec := auth.NewTokenCodec(testSecret, time.Hour)
	app := guardedApp(t, codec)

	for _, path := range []string{"/api/ping", "/health/live"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode, "path %s", path)
	}
}
