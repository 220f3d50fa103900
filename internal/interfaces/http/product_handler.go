package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gelato-api/internal/application/dto"
	"github.com/jhoicas/gelato-api/internal/application/usecase"
)

// ProductHandler maneja /api/v1/products.
type ProductHandler struct {
	uc   *usecase.ProductUseCase
	crud crud[dto.ProductPayload, dto.ProductResponse]
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc, crud: crud[dto.ProductPayload, dto.ProductResponse]{uc: uc}}
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200  {object}  dto.ListResponse[dto.ProductResponse]
// @Router       /api/v1/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error { return h.crud.list(c) }

// Get godoc
// @Summary      Obtener producto
// @Tags         products
// @Produce      json
// @Param        id  path  int  true  "ID"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/products/{id} [get]
func (h *ProductHandler) Get(c *fiber.Ctx) error { return h.crud.get(c) }

// Complements godoc
// @Summary      Complementos aplicables al producto
// @Description  Complementos que comparten la categoría del producto. Devuelve un arreglo sin paginar.
// @Tags         products
// @Produce      json
// @Param        id  path  int  true  "ID"
// @Success      200  {array}   dto.ComplementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/products/{id}/complements [get]
func (h *ProductHandler) Complements(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Complements(c.UserContext(), GetCaller(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear producto
// @Description  created_by y updated_by se asignan al usuario autenticado.
// @Tags         products
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductPayload  true  "Producto"
// @Success      201  {object}  dto.ProductResponse
// @Failure      400  {object}  map[string][]string
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/v1/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error { return h.crud.create(c) }

// Update godoc
// @Summary      Reemplazar producto
// @Tags         products
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  int                 true  "ID"
// @Param        body  body  dto.ProductPayload  true  "Producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      400  {object}  map[string][]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error { return h.crud.update(c, false) }

// Patch godoc
// @Summary      Actualizar producto parcialmente
// @Tags         products
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  int                 true  "ID"
// @Param        body  body  dto.ProductPayload  true  "Campos a cambiar"
// @Success      200  {object}  dto.ProductResponse
// @Router       /api/v1/products/{id} [patch]
func (h *ProductHandler) Patch(c *fiber.Ctx) error { return h.crud.update(c, true) }

// Delete godoc
// @Summary      Eliminar producto
// @Tags         products
// @Security     BearerAuth
// @Param        id  path  int  true  "ID"
// @Success      204
// @Router       /api/v1/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error { return h.crud.delete(c) }
