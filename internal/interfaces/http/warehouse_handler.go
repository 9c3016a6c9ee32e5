package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/warehouse-api/internal/application/dto"
	"github.com/jhoicas/warehouse-api/internal/application/usecase"
	"github.com/jhoicas/warehouse-api/internal/domain"
)

// WarehouseHandler maneja las peticiones HTTP para Warehouse.
type WarehouseHandler struct {
	uc *usecase.WarehouseUseCase
}

// NewWarehouseHandler construye el handler.
func NewWarehouseHandler(uc *usecase.WarehouseUseCase) *WarehouseHandler {
	return &WarehouseHandler{uc: uc}
}

// parseID convierte el parámetro de ruta :id a int64.
func parseID(c *fiber.Ctx, name string) (int64, error) {
	return strconv.ParseInt(c.Params(name), 10, 64)
}

// emptyStatus responde solo con el código de estado, sin cuerpo. SendStatus de
// Fiber rellenaría el cuerpo con el mensaje del estado, y el contrato de esta
// API responde los 400/404/409 de recurso con cuerpo vacío.
func emptyStatus(c *fiber.Ctx, status int) error {
	return c.Status(status).Send(nil)
}

// List godoc
// @Summary      Listar bodegas
// @Tags         warehouses
// @Produce      json
// @Success      200  {array}  dto.WarehouseResponse
// @Router       /api/warehouses [get]
func (h *WarehouseHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener bodega por id
// @Tags         warehouses
// @Produce      json
// @Param        id   path  int  true  "Id de la bodega"
// @Success      200  {object}  dto.WarehouseResponse
// @Failure      404
// @Router       /api/warehouses/{id} [get]
func (h *WarehouseHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Crear bodega
// @Tags         warehouses
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateWarehouseRequest  true  "Datos de la bodega"
// @Success      201   {object}  dto.WarehouseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/warehouses [post]
func (h *WarehouseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateWarehouseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if msg := validateWarehousePayload(in.Name, in.Address, in.ManagerName, in.Capacity, true); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar bodega (sobreescritura completa de los campos de negocio)
// @Tags         warehouses
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "Id de la bodega"
// @Param        body  body  dto.UpdateWarehouseRequest  true  "Datos de la bodega"
// @Success      200   {object}  dto.WarehouseResponse
// @Failure      404
// @Router       /api/warehouses/{id} [put]
func (h *WarehouseHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return emptyStatus(c, fiber.StatusBadRequest)
	}
	var in dto.UpdateWarehouseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if msg := validateWarehousePayload(in.Name, in.Address, in.ManagerName, in.Capacity, false); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
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
// @Summary      Eliminar bodega (el inventario asociado cae en cascada)
// @Tags         warehouses
// @Param        id  path  int  true  "Id de la bodega"
// @Success      204
// @Failure      404
// @Router       /api/warehouses/{id} [delete]
func (h *WarehouseHandler) Delete(c *fiber.Ctx) error {
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

// Search godoc
// @Summary      Buscar bodegas por nombre o capacidad mínima (excluyentes)
// @Tags         warehouses
// @Produce      json
// @Param        name         query  string  false  "Subcadena del nombre (sin distinguir mayúsculas)"
// @Param        minCapacity  query  number  false  "Capacidad estrictamente mayor que"
// @Success      200  {array}  dto.WarehouseResponse
// @Failure      400
// @Router       /api/warehouses/search [get]
func (h *WarehouseHandler) Search(c *fiber.Ctx) error {
	// La presencia del parámetro decide el criterio: name= vacío sigue siendo
	// una búsqueda por nombre, igual que en el contrato original.
	args := c.Context().QueryArgs()
	var name *string
	if args.Has("name") {
		v := c.Query("name")
		name = &v
	}
	var minCapacity *decimal.Decimal
	if args.Has("minCapacity") {
		d, err := decimal.NewFromString(c.Query("minCapacity"))
		if err != nil {
			return emptyStatus(c, fiber.StatusBadRequest)
		}
		minCapacity = &d
	}
	out, err := h.uc.Search(name, minCapacity)
	if err != nil {
		if errors.Is(err, domain.ErrBadSearch) {
			return emptyStatus(c, fiber.StatusBadRequest)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// validateWarehousePayload valida longitudes y, en creación, presencia. La
// actualización solo acota longitudes: el contrato original no exige campos en
// el payload de update.
func validateWarehousePayload(name, address, managerName string, capacity decimal.Decimal, required bool) string {
	if required {
		switch {
		case name == "":
			return "name es requerido"
		case address == "":
			return "address es requerido"
		case managerName == "":
			return "managerName es requerido"
		}
	}
	switch {
	case len(name) > 100:
		return "name no puede exceder 100 caracteres"
	case len(address) > 100:
		return "address no puede exceder 100 caracteres"
	case len(managerName) > 100:
		return "managerName no puede exceder 100 caracteres"
	case capacity.IsNegative():
		return "capacity no puede ser negativa"
	}
	return ""
}
