package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestion-almacenes/almacenes-api/internal/application/auth"
	"github.com/gestion-almacenes/almacenes-api/internal/application/orders"
	"github.com/gestion-almacenes/almacenes-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	OrderUC          *orders.OrderUseCase
	LineUC           *orders.LineUseCase
	ExecuteUC        *orders.ExecuteOrderUseCase
	StorehouseUC     *usecase.StorehouseUseCase
	StorehouseTypeUC *usecase.StorehouseTypeUseCase
	ProductUC        *usecase.ProductUseCase
	UnitUC           *usecase.UnitMeasurementUseCase
	OrderTypeUC      *usecase.OrderTypeUseCase
	PackingTypeUC    *usecase.PackingTypeUseCase
	SupplierUC       *usecase.SupplierUseCase
	StockRecordUC    *usecase.StockRecordUseCase
	AuthUC           *auth.AuthUseCase
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Órdenes y su ejecución
	ordersGroup := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC, deps.ExecuteUC)
	lineHandler := NewOrderLineHandler(deps.LineUC)
	ordersGroup.Post("/", orderHandler.Create)
	ordersGroup.Get("/", orderHandler.List)
	ordersGroup.Get("/code/:code", orderHandler.GetByCode)
	ordersGroup.Get("/:id", orderHandler.GetByID)
	ordersGroup.Put("/:id", orderHandler.Update)
	ordersGroup.Delete("/:id", orderHandler.Delete)
	ordersGroup.Post("/:id/execute", orderHandler.Execute)
	ordersGroup.Get("/:id/lines", lineHandler.ListByOrder)

	// Líneas de orden
	lines := protected.Group("/order-lines")
	lines.Post("/", lineHandler.Create)
	lines.Get("/:id", lineHandler.GetByID)
	lines.Put("/:id", lineHandler.Update)
	lines.Delete("/:id", lineHandler.Delete)

	// Almacenes
	storehouses := protected.Group("/storehouses")
	storehouseHandler := NewStorehouseHandler(deps.StorehouseUC)
	storehouses.Post("/", storehouseHandler.Create)
	storehouses.Get("/", storehouseHandler.List)
	storehouses.Get("/:id", storehouseHandler.GetByID)
	storehouses.Put("/:id", storehouseHandler.Update)
	storehouses.Delete("/:id", storehouseHandler.Delete)

	// Tipos de almacén
	storehouseTypes := protected.Group("/storehouse-types")
	storehouseTypeHandler := NewStorehouseTypeHandler(deps.StorehouseTypeUC)
	storehouseTypes.Post("/", storehouseTypeHandler.Create)
	storehouseTypes.Get("/", storehouseTypeHandler.List)
	storehouseTypes.Get("/:id", storehouseTypeHandler.GetByID)
	storehouseTypes.Put("/:id", storehouseTypeHandler.Update)
	storehouseTypes.Delete("/:id", storehouseTypeHandler.Delete)

	// Productos
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Unidades de medida
	units := protected.Group("/unit-measurements")
	unitHandler := NewUnitMeasurementHandler(deps.UnitUC)
	units.Post("/", unitHandler.Create)
	units.Get("/", unitHandler.List)
	units.Get("/:id", unitHandler.GetByID)
	units.Put("/:id", unitHandler.Update)
	units.Delete("/:id", unitHandler.Delete)

	// Tipos de orden
	orderTypes := protected.Group("/order-types")
	orderTypeHandler := NewOrderTypeHandler(deps.OrderTypeUC)
	orderTypes.Post("/", orderTypeHandler.Create)
	orderTypes.Get("/", orderTypeHandler.List)
	orderTypes.Get("/:id", orderTypeHandler.GetByID)
	orderTypes.Put("/:id", orderTypeHandler.Update)
	orderTypes.Delete("/:id", orderTypeHandler.Delete)

	// Tipos de empaque
	packingTypes := protected.Group("/packing-types")
	packingTypeHandler := NewPackingTypeHandler(deps.PackingTypeUC)
	packingTypes.Post("/", packingTypeHandler.Create)
	packingTypes.Get("/", packingTypeHandler.List)
	packingTypes.Get("/:id", packingTypeHandler.GetByID)
	packingTypes.Put("/:id", packingTypeHandler.Update)
	packingTypes.Delete("/:id", packingTypeHandler.Delete)

	// Proveedores
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Registros de stock
	stockRecords := protected.Group("/stock-records")
	stockRecordHandler := NewStockRecordHandler(deps.StockRecordUC)
	stockRecords.Post("/", stockRecordHandler.Create)
	stockRecords.Get("/", stockRecordHandler.List)
	stockRecords.Get("/:id", stockRecordHandler.GetByID)
}
