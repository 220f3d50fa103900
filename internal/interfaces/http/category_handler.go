package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gelato-api/internal/application/dto"
	"github.com/jhoicas/gelato-api/internal/application/usecase"
)

// CategoryHandler maneja /api/v1/categories.
type CategoryHandler struct {
	crud crud[dto.CategoryPayload, dto.CategoryResponse]
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{crud: crud[dto.CategoryPayload, dto.CategoryResponse]{uc: uc}}
}

// List godoc
// @Summary      Listar categorías
// @Tags         categories
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200  {object}  dto.ListResponse[dto.CategoryResponse]
// @Router       /api/v1/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error { return h.crud.list(c) }

// Get godoc
// @Summary      Obtener categoría
// @Tags         categories
// @Produce      json
// @Param        id  path  int  true  "ID"
// @Success      200  {object}  dto.CategoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/categories/{id} [get]
func (h *CategoryHandler) Get(c *fiber.Ctx) error { return h.crud.get(c) }

// Create godoc
// @Summary      Crear categoría
// @Tags         categories
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CategoryPayload  true  "Categoría"
// @Success      201  {object}  dto.CategoryResponse
// @Failure      400  {object}  map[string][]string
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/v1/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error { return h.crud.create(c) }

// Update godoc
// @Summary      Reemplazar categoría
// @Tags         categories
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  int                  true  "ID"
// @Param        body  body  dto.CategoryPayload  true  "Categoría"
// @Success      200  {object}  dto.CategoryResponse
// @Failure      400  {object}  map[string][]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/categories/{id} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error { return h.crud.update(c, false) }

// Patch godoc
// @Summary      Actualizar categoría parcialmente
// @Tags         categories
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  int                  true  "ID"
// @Param        body  body  dto.CategoryPayload  true  "Campos a cambiar"
// @Success      200  {object}  dto.CategoryResponse
// @Router       /api/v1/categories/{id} [patch]
func (h *CategoryHandler) Patch(c *fiber.Ctx) error { return h.crud.update(c, true) }

// Delete godoc
// @Summary      Eliminar categoría (y sus productos)
// @Tags         categories
// @Security     BearerAuth
// @Param        id  path  int  true  "ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error { return h.crud.delete(c) }
