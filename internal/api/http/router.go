package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-portal/internal/api/http/handlers"
	"github.com/spec-kit/employee-portal/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health            *handlers.HealthHandler
	Login             *handlers.LoginHandler
	Employees         *handlers.EmployeesHandler
	SessionMiddleware *auth.SessionMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/healthcheck", cfg.Health.Check)

	app.Get("/", cfg.Login.Root)
	app.Get("/login", cfg.Login.ShowLogin)
	app.Post("/login", cfg.Login.Login)
	app.Get("/logout", cfg.Login.Logout)

	protected := app.Group("/employees", cfg.SessionMiddleware.Handle)
	protected.Get("/", cfg.Employees.List)
	protected.Get("/new", cfg.Employees.NewForm)
	protected.Post("/", cfg.Employees.Create)
	protected.Get("/:id", cfg.Employees.Show)
	protected.Get("/:id/edit", cfg.Employees.EditForm)
	protected.Post("/:id", cfg.Employees.Update)
	protected.Post("/:id/delete", cfg.Employees.Delete)
}
