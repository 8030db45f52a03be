package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Hakan0032/modern-stock-management-sub000/internal/application/analytics"
	"github.com/Hakan0032/modern-stock-management-sub000/internal/application/auth"
	"github.com/Hakan0032/modern-stock-management-sub000/internal/application/bom"
	"github.com/Hakan0032/modern-stock-management-sub000/internal/application/ledger"
	"github.com/Hakan0032/modern-stock-management-sub000/internal/application/usecase"
	"github.com/Hakan0032/modern-stock-management-sub000/internal/application/workorder"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	MaterialUC  *usecase.MaterialUseCase
	MachineUC   *usecase.MachineUseCase
	MovementUC  *ledger.ApplyMovementUseCase
	BOMUC       *bom.BOMUseCase
	WorkOrderUC *workorder.WorkOrderUseCase
	DashboardUC *analytics.DashboardUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Materials (protegido)
	materials := protected.Group("/materials")
	materialHandler := NewMaterialHandler(deps.MaterialUC)
	movementHandler := NewMovementHandler(deps.MovementUC)
	materials.Post("/", materialHandler.Create)
	materials.Get("/", materialHandler.List)
	materials.Get("/low-stock", materialHandler.ListLowStock)
	materials.Get("/:id", materialHandler.GetByID)
	materials.Put("/:id", materialHandler.Update)
	materials.Delete("/:id", materialHandler.Delete)
	materials.Get("/:id/movements", movementHandler.ListByMaterial)

	// Stock movements (protegido)
	movements := protected.Group("/movements")
	movements.Post("/", movementHandler.Create)
	movements.Get("/", movementHandler.ListRecent)

	// Machines y BOM (protegido)
	machines := protected.Group("/machines")
	machineHandler := NewMachineHandler(deps.MachineUC)
	bomHandler := NewBOMHandler(deps.BOMUC)
	machines.Post("/", machineHandler.Create)
	machines.Get("/", machineHandler.List)
	machines.Get("/:id", machineHandler.GetByID)
	machines.Put("/:id", machineHandler.Update)
	machines.Delete("/:id", machineHandler.Delete)
	machines.Get("/:id/bom", bomHandler.GetBOM)
	machines.Post("/:id/bom", bomHandler.AddItem)
	machines.Put("/:id/bom/:itemId", bomHandler.UpdateItem)
	machines.Delete("/:id/bom/:itemId", bomHandler.RemoveItem)

	// Work orders (protegido)
	workOrders := protected.Group("/work-orders")
	workOrderHandler := NewWorkOrderHandler(deps.WorkOrderUC)
	workOrders.Post("/", workOrderHandler.Create)
	workOrders.Get("/", workOrderHandler.List)
	workOrders.Get("/:id", workOrderHandler.GetByID)
	workOrders.Patch("/:id/status", workOrderHandler.ChangeStatus)
	workOrders.Delete("/:id", workOrderHandler.Delete)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.Summary)
}
