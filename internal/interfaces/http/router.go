package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/warehouse-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	WarehouseUC *usecase.WarehouseUseCase
	ProductUC   *usecase.ProductUseCase
	InventoryUC *usecase.InventoryUseCase
}

// Router registra las rutas de la API. Las rutas estáticas (search, categories,
// lowstock, product) se registran antes que las de parámetro :id para que
// Fiber no las capture como ids.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)

	warehouses := api.Group("/warehouses")
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/search", warehouseHandler.Search)
	warehouses.Get("/:warehouseId/inventory/product", inventoryHandler.FindByWarehouseAndProduct)
	warehouses.Get("/:warehouseId/inventory", inventoryHandler.FindByWarehouse)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", warehouseHandler.Update)
	warehouses.Delete("/:id", warehouseHandler.Delete)

	productHandler := NewProductHandler(deps.ProductUC)
	products := api.Group("/products")
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/search", productHandler.Search)
	products.Get("/categories", productHandler.Categories)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	inventories := api.Group("/inventories")
	inventories.Get("/", inventoryHandler.List)
	inventories.Post("/", inventoryHandler.Create)
	inventories.Get("/lowstock", inventoryHandler.FindLowStock)
	inventories.Get("/product", inventoryHandler.FindByProduct)
	inventories.Get("/:id", inventoryHandler.GetByID)
	inventories.Put("/:id", inventoryHandler.Update)
	inventories.Delete("/:id", inventoryHandler.Delete)
}
