package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stockmaster-api/internal/application/auth"
	"github.com/jhoicas/stockmaster-api/internal/application/inventory"
	"github.com/jhoicas/stockmaster-api/internal/application/usecase"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProductUC   *usecase.ProductUseCase
	CategoryUC  *usecase.CategoryUseCase
	WarehouseUC *usecase.WarehouseUseCase
	ReceiptUC   *usecase.ReceiptUseCase
	DeliveryUC  *usecase.DeliveryUseCase
	TransferQ   *usecase.TransferQueryUseCase
	AdjustmentQ *usecase.AdjustmentQueryUseCase
	DashboardUC *usecase.DashboardUseCase
	Engine      *inventory.Engine
	StockQuery  *inventory.StockQuery
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

	// Los roles de operación de bodega pueden mutar stock; vendedor solo lee.
	warehouseOps := RequireRole(entity.RoleAdmin, entity.RoleBodeguero)

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", warehouseOps, productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/low-stock", productHandler.ListLowStock)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", warehouseOps, productHandler.Update)

	// Categories
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", warehouseOps, categoryHandler.Create)
	categories.Get("/", categoryHandler.List)

	// Warehouses y ubicaciones
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", RequireRole(entity.RoleAdmin), warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Post("/:id/locations", RequireRole(entity.RoleAdmin), warehouseHandler.CreateLocation)

	// Receipts
	receipts := protected.Group("/receipts")
	receiptHandler := NewReceiptHandler(deps.ReceiptUC, deps.Engine)
	receipts.Post("/", warehouseOps, receiptHandler.Create)
	receipts.Get("/", receiptHandler.List)
	receipts.Get("/:id", receiptHandler.GetByID)
	receipts.Post("/:id/lines", warehouseOps, receiptHandler.AddLine)
	receipts.Patch("/:id/status", warehouseOps, receiptHandler.SetStatus)
	receipts.Patch("/:id/lines/:lineId", warehouseOps, receiptHandler.SetLineReceived)
	receipts.Post("/:id/validate", warehouseOps, receiptHandler.Validate)

	// Deliveries
	deliveries := protected.Group("/deliveries")
	deliveryHandler := NewDeliveryHandler(deps.DeliveryUC, deps.Engine)
	deliveries.Post("/", warehouseOps, deliveryHandler.Create)
	deliveries.Get("/", deliveryHandler.List)
	deliveries.Get("/:id", deliveryHandler.GetByID)
	deliveries.Post("/:id/lines", warehouseOps, deliveryHandler.AddLine)
	deliveries.Patch("/:id/status", warehouseOps, deliveryHandler.SetStatus)
	deliveries.Patch("/:id/lines/:lineId", warehouseOps, deliveryHandler.SetLineDelivered)
	deliveries.Post("/:id/validate", warehouseOps, deliveryHandler.Validate)

	// Transfers
	transfers := protected.Group("/transfers")
	transferHandler := NewTransferHandler(deps.Engine, deps.TransferQ)
	transfers.Post("/", warehouseOps, transferHandler.Create)
	transfers.Get("/", transferHandler.List)
	transfers.Get("/:id", transferHandler.GetByID)

	// Adjustments
	adjustments := protected.Group("/adjustments")
	adjustmentHandler := NewAdjustmentHandler(deps.Engine, deps.AdjustmentQ)
	adjustments.Post("/", warehouseOps, adjustmentHandler.Create)
	adjustments.Get("/", adjustmentHandler.List)
	adjustments.Get("/:id", adjustmentHandler.GetByID)

	// Stock y movimientos (lectura)
	stockHandler := NewStockHandler(deps.StockQuery)
	protected.Get("/stock/:productId/:locationId", stockHandler.GetBalance)
	protected.Get("/stock/:productId", stockHandler.GetBalancesByProduct)
	protected.Get("/movements", stockHandler.ListMovements)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.GetKPIs)
}
