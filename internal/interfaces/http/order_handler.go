package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gelato-api/internal/application/dto"
	"github.com/jhoicas/gelato-api/internal/application/usecase"
)

// OrderHandler maneja /api/v1/orders.
type OrderHandler struct {
	crud crud[dto.OrderPayload, dto.OrderResponse]
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{crud: crud[dto.OrderPayload, dto.OrderResponse]{uc: uc}}
}

// List godoc
// @Summary      Listar pedidos (staff)
// @Tags         orders
// @Security     BearerAuth
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200  {object}  dto.ListResponse[dto.OrderResponse]
// @Router       /api/v1/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error { return h.crud.list(c) }

// Get godoc
// @Summary      Obtener pedido (staff)
// @Tags         orders
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  int  true  "ID"
// @Success      200  {object}  dto.OrderResponse
// @Router       /api/v1/orders/{id} [get]
func (h *OrderHandler) Get(c *fiber.Ctx) error { return h.crud.get(c) }

// Create godoc
// @Summary      Crear pedido
// @Description  El pedido queda a nombre del usuario autenticado con estado "Pedido solicitado".
// @Tags         orders
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OrderPayload  true  "Pedido"
// @Success      201  {object}  dto.OrderResponse
// @Failure      400  {object}  map[string][]string
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/v1/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error { return h.crud.create(c) }

// Update godoc
// @Summary      Reemplazar pedido (staff)
// @Tags         orders
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  int               true  "ID"
// @Param        body  body  dto.OrderPayload  true  "Pedido"
// @Success      200  {object}  dto.OrderResponse
// @Router       /api/v1/orders/{id} [put]
func (h *OrderHandler) Update(c *fiber.Ctx) error { return h.crud.update(c, false) }

// Patch godoc
// @Summary      Actualizar pedido parcialmente (staff)
// @Tags         orders
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  int               true  "ID"
// @Param        body  body  dto.OrderPayload  true  "Campos a cambiar"
// @Success      200  {object}  dto.OrderResponse
// @Router       /api/v1/orders/{id} [patch]
func (h *OrderHandler) Patch(c *fiber.Ctx) error { return h.crud.update(c, true) }

// Delete godoc
// @Summary      Eliminar pedido (superusuario)
// @Tags         orders
// @Security     BearerAuth
// @Param        id  path  int  true  "ID"
// @Success      204
// @Router       /api/v1/orders/{id} [delete]
func (h *OrderHandler) Delete(c *fiber.Ctx) error { return h.crud.delete(c) }
