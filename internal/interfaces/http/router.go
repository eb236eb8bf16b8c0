package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/raash-api/internal/application/auth"
	"github.com/jhoicas/raash-api/internal/application/checkout"
	"github.com/jhoicas/raash-api/internal/application/session"
	"github.com/jhoicas/raash-api/internal/application/usecase"
	"github.com/jhoicas/raash-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	Sessions  *session.Service
	ProductUC *usecase.ProductUseCase
	CartUC    *usecase.CartUseCase
	OrderUC   *usecase.OrderUseCase
	Checkout  *checkout.Service
	Cookie    CookieConfig
}

// Router registra las rutas de la API. La sesión se carga solo bajo /api; el frontend estático
// y register/login/logout no la consultan. Cada grupo protegido decide si la exige.
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC, deps.Sessions, deps.Cookie)
	app.Post("/register", authHandler.Register)
	app.Post("/login", authHandler.Login)
	app.Post("/logout", authHandler.Logout)

	api := app.Group("/api", LoadSession(deps.Sessions, deps.Cookie.Name))
	api.Get("/check-auth", authHandler.CheckAuth)

	// Catálogo (público)
	productHandler := NewProductHandler(deps.ProductUC)
	api.Get("/products", productHandler.List)
	api.Get("/products/category/:category", productHandler.ListByCategory)

	// Rutas protegidas (requieren sesión)
	cartHandler := NewCartHandler(deps.CartUC)
	cart := api.Group("/cart", RequireSession())
	cart.Get("/", cartHandler.Get)
	cart.Post("/update", cartHandler.Update)

	orderHandler := NewOrderHandler(deps.OrderUC, deps.Checkout)
	orders := api.Group("/orders", RequireSession())
	orders.Get("/", orderHandler.List)
	orders.Post("/", orderHandler.PlaceCartOrder)
	api.Post("/payments", RequireSession(), orderHandler.Pay)

	// Admin
	admin := api.Group("/admin", RequireSession(), RequireRole(entity.UserTypeAdmin))
	admin.Get("/products/export", productHandler.Export)
}
