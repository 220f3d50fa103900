package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gelato-api/internal/application/dto"
	"github.com/jhoicas/gelato-api/internal/application/usecase"
)

// ComplementHandler maneja /api/v1/complements.
type ComplementHandler struct {
	crud crud[dto.ComplementPayload, dto.ComplementResponse]
}

// NewComplementHandler construye el handler.
func NewComplementHandler(uc *usecase.ComplementUseCase) *ComplementHandler {
	return &ComplementHandler{crud: crud[dto.ComplementPayload, dto.ComplementResponse]{uc: uc}}
}

// List godoc
// @Summary      Listar complementos
// @Tags         complements
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200  {object}  dto.ListResponse[dto.ComplementResponse]
// @Router       /api/v1/complements [get]
func (h *ComplementHandler) List(c *fiber.Ctx) error { return h.crud.list(c) }

// Get godoc
// @Summary      Obtener complemento
// @Tags         complements
// @Produce      json
// @Param        id  path  int  true  "ID"
// @Success      200  {object}  dto.ComplementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/complements/{id} [get]
func (h *ComplementHandler) Get(c *fiber.Ctx) error { return h.crud.get(c) }

// Create godoc
// @Summary      Crear complemento
// @Tags         complements
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ComplementPayload  true  "Complemento"
// @Success      201  {object}  dto.ComplementResponse
// @Failure      400  {object}  map[string][]string
// @Router       /api/v1/complements [post]
func (h *ComplementHandler) Create(c *fiber.Ctx) error { return h.crud.create(c) }

// Update godoc
// @Summary      Reemplazar complemento
// @Tags         complements
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  int                    true  "ID"
// @Param        body  body  dto.ComplementPayload  true  "Complemento"
// @Success      200  {object}  dto.ComplementResponse
// @Router       /api/v1/complements/{id} [put]
func (h *ComplementHandler) Update(c *fiber.Ctx) error { return h.crud.update(c, false) }

// Patch godoc
// @Summary      Actualizar complemento parcialmente
// @Tags         complements
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  int                    true  "ID"
// @Param        body  body  dto.ComplementPayload  true  "Campos a cambiar"
// @Success      200  {object}  dto.ComplementResponse
// @Router       /api/v1/complements/{id} [patch]
func (h *ComplementHandler) Patch(c *fiber.Ctx) error { return h.crud.update(c, true) }

// Delete godoc
// @Summary      Eliminar complemento
// @Tags         complements
// @Security     BearerAuth
// @Param        id  path  int  true  "ID"
// @Success      204
// @Router       /api/v1/complements/{id} [delete]
func (h *ComplementHandler) Delete(c *fiber.Ctx) error { return h.crud.delete(c) }
