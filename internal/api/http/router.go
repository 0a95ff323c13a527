package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/testcase-service/internal/api/http/handlers"
	"github.com/spec-kit/testcase-service/internal/auth"
	"github.com/spec-kit/testcase-service/internal/domain"
)

// GuardExcludedPrefixes lists path prefixes the route guard skips: API
// routes, static assets and health probes.
var GuardExcludedPrefixes = []string{"/api", "/static", "/favicon.ico", "/health"}

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health     *handlers.HealthHandler
	Auth       *handlers.AuthHandler
	AdminUsers *handlers.AdminUsersHandler
	Projects   *handlers.ProjectsHandler
	Cases      *handlers.CasesHandler
	Runs       *handlers.RunsHandler
	RouteGuard *auth.RouteGuard
}

// RegisterRoutes wires HTTP routes. The route guard runs before every
// handler; excluded prefixes and the login/register pages aside, no
// route is reachable without a verified session. Mutating routes carry
// an additional role gate; reads are intentionally ungated by role.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Use(cfg.RouteGuard.Handle)

	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/register", cfg.Auth.Register)
	app.Post("/login", cfg.Auth.Login)
	app.Post("/logout", cfg.Auth.Logout)
	app.Post("/account/password", cfg.Auth.ChangePassword)

	admin := app.Group("/admin", auth.RequireRoles())
	admin.Get("/users", cfg.AdminUsers.List)
	admin.Post("/users/:userID/status", cfg.AdminUsers.UpdateStatus)
	admin.Post("/users/:userID/role", cfg.AdminUsers.UpdateRole)
	admin.Post("/users/:userID/password-reset", cfg.AdminUsers.ResetPassword)

	editors := auth.RequireRoles(domain.RoleQA)

	app.Get("/projects", cfg.Projects.List)
	app.Post("/projects", editors, cfg.Projects.Create)

	app.Get("/projects/:projectID/cases", cfg.Cases.ListByProject)
	app.Post("/suites", editors, cfg.Cases.CreateSuite)
	app.Post("/cases", editors, cfg.Cases.CreateCase)
	app.Post("/projects/:projectID/suites/:suiteID/cases/import", editors, cfg.Cases.Import)
	app.Get("/projects/:projectID/suites/:suiteID/cases/export", cfg.Cases.Export)

	app.Get("/projects/:projectID/runs", cfg.Runs.ListByProject)
	app.Post("/runs", editors, cfg.Runs.Create)
	app.Get("/runs/:runID", cfg.Runs.Get)
	app.Post("/results/:resultID", editors, cfg.Runs.RecordResult)
}
