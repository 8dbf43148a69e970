package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/bistro-gateway/internal/api/http/handlers"
	"github.com/spec-kit/bistro-gateway/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Tokens         *handlers.TokenHandler
	Users          *handlers.UsersHandler
	Menu           *handlers.MenuHandler
	Reviews        *handlers.ReviewsHandler
	Carts          *handlers.CartsHandler
	Payments       *handlers.PaymentsHandler
	AuthMiddleware *auth.AuthMiddleware
	AdminGuard     fiber.Handler
	Policies       RoutePolicies
}

// RegisterRoutes wires HTTP routes, consulting the policy table for the
// guard chain on each one. Role checks always run after authentication.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/", cfg.Health.Root)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/jwt", cfg.Tokens.Issue)

	app.Get("/users", cfg.guarded(cfg.Policies.ListUsers, cfg.Users.List)...)
	app.Post("/users", cfg.guarded(cfg.Policies.CreateUser, cfg.Users.Create)...)
	app.Patch("/users/admin/:id", cfg.guarded(cfg.Policies.ElevateUser, cfg.Users.Elevate)...)
	app.Get("/users/admin/:email", cfg.guarded(cfg.Policies.AdminStatus, cfg.Users.AdminStatus)...)
	app.Delete("/users/:id", cfg.guarded(cfg.Policies.DeleteUser, cfg.Users.Delete)...)

	app.Get("/menu", cfg.guarded(cfg.Policies.ListMenu, cfg.Menu.List)...)
	app.Post("/menu", cfg.guarded(cfg.Policies.CreateMenuItem, cfg.Menu.Create)...)
	app.Delete("/menu/:id", cfg.guarded(cfg.Policies.DeleteMenuItem, cfg.Menu.Delete)...)

	app.Get("/reviews", cfg.guarded(cfg.Policies.ListReviews, cfg.Reviews.List)...)

	app.Get("/carts", cfg.guarded(cfg.Policies.ListCarts, cfg.Carts.List)...)
	app.Post("/carts", cfg.guarded(cfg.Policies.CreateCartItem, cfg.Carts.Create)...)
	app.Delete("/carts/:id", cfg.guarded(cfg.Policies.DeleteCartItem, cfg.Carts.Delete)...)

	app.Post("/create-payment-intent", cfg.guarded(cfg.Policies.CreateIntent, cfg.Payments.CreateIntent)...)
}

func (cfg RouteConfig) guarded(guard Guard, handler fiber.Handler) []fiber.Handler {
	switch guard {
	case GuardAuthenticated:
		return []fiber.Handler{cfg.AuthMiddleware.RequireAuthenticated, handler}
	case GuardAdmin:
		return []fiber.Handler{cfg.AuthMiddleware.RequireAuthenticated, cfg.AdminGuard, handler}
	default:
		return []fiber.Handler{handler}
	}
}
