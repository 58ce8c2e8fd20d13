package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/plantnet/marketplace-api/internal/application/analytics"
	"github.com/plantnet/marketplace-api/internal/application/auth"
	"github.com/plantnet/marketplace-api/internal/application/orders"
	"github.com/plantnet/marketplace-api/internal/application/usecase"
	"github.com/plantnet/marketplace-api/internal/domain/entity"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	UserUC    *usecase.UserUseCase
	PlantUC   *usecase.PlantUseCase
	OrderUC   *orders.OrderUseCase
	StatsUC   *analytics.StatsUseCase
	JWTSecret string
	JWTDays   int
}

// Router registers the API routes. Gates are stacked in fixed order: token
// verification, then the role check, then the handler — a request that fails
// a gate never reaches the next layer.
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC, deps.JWTDays)
	userHandler := NewUserHandler(deps.UserUC)
	plantHandler := NewPlantHandler(deps.PlantUC)
	orderHandler := NewOrderHandler(deps.OrderUC)
	statsHandler := NewStatsHandler(deps.StatsUC)

	verified := AuthMiddleware(deps.JWTSecret)
	sellerOnly := RequireRole(deps.AuthUC, entity.RoleSeller, entity.RoleAdmin)
	adminOnly := RequireRole(deps.AuthUC, entity.RoleAdmin)

	// Auth (public)
	app.Post("/jwt", authHandler.IssueToken)
	app.Get("/logout", authHandler.Logout)

	// Users
	app.Put("/users/:email", userHandler.Upsert)
	app.Get("/users", verified, adminOnly, userHandler.List)
	app.Get("/users/role/:email", verified, authHandler.GetRole)
	app.Patch("/users/become-seller/:email", verified, RequireSelf("email"), authHandler.BecomeSeller)
	app.Patch("/users/role/:email", verified, adminOnly, authHandler.UpdateRole)

	// Plants (reads public, writes seller-gated)
	app.Get("/plants", plantHandler.List)
	app.Get("/plants/:id", plantHandler.GetByID)
	app.Post("/plants", verified, sellerOnly, plantHandler.Create)
	app.Patch("/plants/:id/quantity", verified, sellerOnly, plantHandler.UpdateQuantity)

	// Orders and payments
	app.Post("/orders", verified, orderHandler.Create)
	app.Get("/orders/customer/:email", verified, RequireSelf("email"), orderHandler.ListByCustomer)
	app.Get("/orders/seller/:email", verified, sellerOnly, RequireSelf("email"), orderHandler.ListBySeller)
	app.Post("/create-payment-intent", verified, orderHandler.CreatePaymentIntent)

	// Admin dashboard
	app.Get("/admin-stats", verified, adminOnly, statsHandler.AdminStats)
}
