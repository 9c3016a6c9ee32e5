package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/warehouse-api/internal/application/dto"
	"github.com/jhoicas/warehouse-api/internal/application/usecase"
	"github.com/jhoicas/warehouse-api/internal/domain"
)

// InventoryHandler maneja las peticiones HTTP para Inventory, incluidos los
// buscadores anidados bajo /api/warehouses/{warehouseId}/inventory.
type InventoryHandler struct {
	uc *usecase.InventoryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *usecase.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// List godoc
// @Summary      Listar inventario (con bodega y producto incrustados)
// @Tags         inventories
// @Produce      json
// @Success      200  {array}  dto.InventoryResponse
// @Router       /api/inventories [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener registro de inventario por id
// @Tags         inventories
// @Produce      json
// @Param        id   path  int  true  "Id del registro"
// @Success      200  {object}  dto.InventoryResponse
// @Failure      404
// @Router       /api/inventories/{id} [get]
func (h *InventoryHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return emptyStatus(c, fiber.StatusBadRequest)
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return emptyStatus(c, fiber.StatusNotFound)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear registro de inventario
// @Tags         inventories
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInventoryRequest  true  "quantity, minStock, maxStock y referencias por id a warehouse y product"
// @Success      201   {object}  dto.InventoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventories [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Warehouse.ID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "warehouse.id es requerido"})
	}
	if in.Product.ID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product.id es requerido"})
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar stock de un registro (el vínculo bodega/producto es inmutable)
// @Tags         inventories
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "Id del registro"
// @Param        body  body  dto.UpdateInventoryRequest  true  "quantity, minStock, maxStock"
// @Success      200   {object}  dto.InventoryResponse
// @Failure      404
// @Router       /api/inventories/{id} [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return emptyStatus(c, fiber.StatusBadRequest)
	}
	var in dto.UpdateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return emptyStatus(c, fiber.StatusNotFound)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar registro de inventario
// @Tags         inventories
// @Param        id  path  int  true  "Id del registro"
// @Success      204
// @Failure      404
// @Router       /api/inventories/{id} [delete]
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return emptyStatus(c, fiber.StatusBadRequest)
	}
	if err := h.uc.Delete(id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return emptyStatus(c, fiber.StatusNotFound)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return emptyStatus(c, fiber.StatusNoContent)
}

// FindByWarehouse godoc
// @Summary      Inventario de una bodega
// @Tags         inventories
// @Produce      json
// @Param        warehouseId  path  int  true  "Id de la bodega"
// @Success      200  {array}  dto.InventoryResponse
// @Router       /api/warehouses/{warehouseId}/inventory [get]
func (h *InventoryHandler) FindByWarehouse(c *fiber.Ctx) error {
	warehouseID, err := parseID(c, "warehouseId")
	if err != nil {
		return emptyStatus(c, fiber.StatusBadRequest)
	}
	out, err := h.uc.FindByWarehouse(warehouseID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// FindByProduct godoc
// @Summary      Inventario de un producto en todas las bodegas
// @Tags         inventories
// @Produce      json
// @Param        id  query  int  true  "Id del producto"
// @Success      200  {array}  dto.InventoryResponse
// @Failure      400
// @Router       /api/inventories/product [get]
func (h *InventoryHandler) FindByProduct(c *fiber.Ctx) error {
	productID, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil {
		return emptyStatus(c, fiber.StatusBadRequest)
	}
	out, err := h.uc.FindByProduct(productID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// FindByWarehouseAndProduct godoc
// @Summary      Inventario de un producto en una bodega concreta
// @Tags         inventories
// @Produce      json
// @Param        warehouseId  path   int  true  "Id de la bodega"
// @Param        id           query  int  true  "Id del producto"
// @Success      200  {array}  dto.InventoryResponse
// @Failure      400
// @Router       /api/warehouses/{warehouseId}/inventory/product [get]
func (h *InventoryHandler) FindByWarehouseAndProduct(c *fiber.Ctx) error {
	warehouseID, err := parseID(c, "warehouseId")
	if err != nil {
		return emptyStatus(c, fiber.StatusBadRequest)
	}
	productID, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil {
		return emptyStatus(c, fiber.StatusBadRequest)
	}
	out, err := h.uc.FindByWarehouseAndProduct(warehouseID, productID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// FindLowStock godoc
// @Summary      Inventario con stock bajo (quantity < minStock, calculado en cada llamada)
// @Tags         inventories
// @Produce      json
// @Success      200  {array}  dto.InventoryResponse
// @Router       /api/inventories/lowstock [get]
func (h *InventoryHandler) FindLowStock(c *fiber.Ctx) error {
	out, err := h.uc.FindLowStock()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
