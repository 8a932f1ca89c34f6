package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-api/internal/application/auth"
	"github.com/tu-usuario/almacen-api/internal/application/inventory"
	"github.com/tu-usuario/almacen-api/internal/application/reports"
	"github.com/tu-usuario/almacen-api/internal/application/usecase"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	UserUC        *usecase.UserUseCase
	ProductUC     *usecase.ProductUseCase
	LedgerUC      *inventory.LedgerUseCase
	DashboardUC   *reports.DashboardUseCase
	SnapshotUC    *reports.StockSnapshotUseCase
	RequirementUC *reports.RequirementUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
//
// El rol "requerimientos" solo accede a las rutas de requerimientos (igual
// que en el sistema original); gestión de usuarios es solo admin; el resto
// requiere admin o bodega.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	operarios := RequireRole(entity.RoleAdmin, entity.RoleBodega)

	// Users (solo admin)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Put("/:username/password", userHandler.ChangePassword)
	users.Delete("/:username", userHandler.Delete)

	// Products (admin y bodega)
	products := protected.Group("/products", operarios)
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Delete("/last", productHandler.DeleteLast)

	// Movements (admin y bodega)
	movements := protected.Group("/movements", operarios)
	movementHandler := NewMovementHandler(deps.LedgerUC)
	movements.Get("/", movementHandler.List)
	movements.Post("/", movementHandler.Register)
	movements.Post("/reset", movementHandler.Reset)
	movements.Delete("/:id", movementHandler.Delete)

	// Reports
	reportHandler := NewReportHandler(deps.DashboardUC, deps.SnapshotUC, deps.RequirementUC)
	reportsGroup := protected.Group("/reports")
	reportsGroup.Get("/dashboard", operarios, reportHandler.Dashboard)
	reportsGroup.Get("/stock", operarios, reportHandler.StockSnapshot)
	reportsGroup.Get("/stock/file", operarios, reportHandler.StockSnapshotFile)
	reportsGroup.Get("/movements/file", operarios, reportHandler.MovementLogFile)

	// Requerimientos: admin y rol requerimientos
	requerimientos := RequireRole(entity.RoleAdmin, entity.RoleRequerimientos)
	reportsGroup.Get("/requirements", requerimientos, reportHandler.RequirementProducts)
	reportsGroup.Post("/requirements/file", requerimientos, reportHandler.RequirementPlanFile)
}
