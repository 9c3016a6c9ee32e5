package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/warehouse-api/internal/application/dto"
	"github.com/jhoicas/warehouse-api/internal/application/usecase"
	"github.com/jhoicas/warehouse-api/internal/domain"
)

// ProductHandler maneja las peticiones HTTP para Product.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por id
// @Tags         products
// @Produce      json
// @Param        id   path  int  true  "Id del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Crear producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if msg := validateProductPayload(in.Name, in.Description, in.Category, true); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar producto (sobreescritura completa de los campos de negocio)
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "Id del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Datos del producto"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return emptyStatus(c, fiber.StatusBadRequest)
	}
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if msg := validateProductPayload(in.Name, in.Description, in.Category, false); msg != "" {
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
// @Summary      Eliminar producto
// @Tags         products
// @Param        id  path  int  true  "Id del producto"
// @Success      204
// @Failure      404
// @Failure      409  "El producto está referenciado por inventario"
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return emptyStatus(c, fiber.StatusBadRequest)
	}
	if err := h.uc.Delete(id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return emptyStatus(c, fiber.StatusNotFound)
		}
		if errors.Is(err, domain.ErrConflict) {
			return emptyStatus(c, fiber.StatusConflict)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return emptyStatus(c, fiber.StatusNoContent)
}

// Search godoc
// @Summary      Buscar productos con exactamente una familia de filtros: categoría, nombre, o rango de precio completo
// @Tags         products
// @Produce      json
// @Param        category  query  string  false  "Categoría exacta"
// @Param        name      query  string  false  "Subcadena del nombre (sin distinguir mayúsculas)"
// @Param        minPrice  query  number  false  "Precio mínimo (inclusivo, requiere maxPrice)"
// @Param        maxPrice  query  number  false  "Precio máximo (inclusivo, requiere minPrice)"
// @Success      200  {array}  dto.ProductResponse
// @Failure      400
// @Router       /api/products/search [get]
func (h *ProductHandler) Search(c *fiber.Ctx) error {
	args := c.Context().QueryArgs()
	var category, name *string
	if args.Has("category") {
		v := c.Query("category")
		category = &v
	}
	if args.Has("name") {
		v := c.Query("name")
		name = &v
	}
	var minPrice, maxPrice *decimal.Decimal
	if args.Has("minPrice") {
		d, err := decimal.NewFromString(c.Query("minPrice"))
		if err != nil {
			return emptyStatus(c, fiber.StatusBadRequest)
		}
		minPrice = &d
	}
	if args.Has("maxPrice") {
		d, err := decimal.NewFromString(c.Query("maxPrice"))
		if err != nil {
			return emptyStatus(c, fiber.StatusBadRequest)
		}
		maxPrice = &d
	}
	out, err := h.uc.Search(category, name, minPrice, maxPrice)
	if err != nil {
		if errors.Is(err, domain.ErrBadSearch) {
			return emptyStatus(c, fiber.StatusBadRequest)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Categories godoc
// @Summary      Listar categorías distintas
// @Tags         products
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/products/categories [get]
func (h *ProductHandler) Categories(c *fiber.Ctx) error {
	out, err := h.uc.Categories()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

func validateProductPayload(name, description, category string, required bool) string {
	if required {
		switch {
		case name == "":
			return "name es requerido"
		case description == "":
			return "description es requerido"
		case category == "":
			return "category es requerido"
		}
	}
	switch {
	case len(name) > 100:
		return "name no puede exceder 100 caracteres"
	case len(description) > 512:
		return "description no puede exceder 512 caracteres"
	case len(category) > 100:
		return "category no puede exceder 100 caracteres"
	}
	return ""
}
