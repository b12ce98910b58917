package http

import (
	"time"

	"github.com/RaGnaRoK-thor/invsys/internal/application/analytics"
	"github.com/RaGnaRoK-thor/invsys/internal/application/auth"
	"github.com/RaGnaRoK-thor/invsys/internal/application/usecase"
	"github.com/RaGnaRoK-thor/invsys/pkg/session"
	"github.com/gofiber/fiber/v2"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	SupplierUC  *usecase.SupplierUseCase
	CategoryUC  *usecase.CategoryUseCase
	ProductUC   *usecase.ProductUseCase
	DashboardUC *analytics.DashboardUseCase

	Sessions   *session.Store
	CookieName string
	SessionTTL time.Duration
}

// Router registra las rutas de la API. Solo register y login son públicos;
// todo lo demás pasa por el SessionMiddleware.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.CookieName, deps.SessionTTL)
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren cookie de sesión viva)
	protected := api.Group("/", SessionMiddleware(deps.Sessions, deps.CookieName, deps.SessionTTL))

	protected.Post("/logout", authHandler.Logout)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard_summary", dashboardHandler.GetSummary)

	// Suppliers (protegido)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Categories (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
}
