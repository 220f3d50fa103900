package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gelato-api/internal/application/dto"
	"github.com/jhoicas/gelato-api/internal/application/usecase"
)

// UserHandler maneja /api/v1/users.
type UserHandler struct {
	crud crud[dto.UserPayload, dto.UserResponse]
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{crud: crud[dto.UserPayload, dto.UserResponse]{uc: uc}}
}

// List godoc
// @Summary      Listar usuarios (superusuario)
// @Tags         users
// @Security     BearerAuth
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200  {object}  dto.ListResponse[dto.UserResponse]
// @Router       /api/v1/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error { return h.crud.list(c) }

// Get godoc
// @Summary      Obtener usuario (el propio o superusuario)
// @Tags         users
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  int  true  "ID"
// @Success      200  {object}  dto.UserResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/users/{id} [get]
func (h *UserHandler) Get(c *fiber.Ctx) error { return h.crud.get(c) }

// Create godoc
// @Summary      Registrar usuario
// @Description  Abierto a cualquiera. Solo un superusuario puede asignar is_staff/is_superuser.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UserPayload  true  "Usuario"
// @Success      201  {object}  dto.UserResponse
// @Failure      400  {object}  map[string][]string
// @Router       /api/v1/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error { return h.crud.create(c) }

// Update godoc
// @Summary      Reemplazar usuario
// @Tags         users
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  int              true  "ID"
// @Param        body  body  dto.UserPayload  true  "Usuario"
// @Success      200  {object}  dto.UserResponse
// @Router       /api/v1/users/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error { return h.crud.update(c, false) }

// Patch godoc
// @Summary      Actualizar usuario parcialmente
// @Tags         users
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  int              true  "ID"
// @Param        body  body  dto.UserPayload  true  "Campos a cambiar"
// @Success      200  {object}  dto.UserResponse
// @Router       /api/v1/users/{id} [patch]
func (h *UserHandler) Patch(c *fiber.Ctx) error { return h.crud.update(c, true) }

// Delete godoc
// @Summary      Eliminar usuario (superusuario)
// @Tags         users
// @Security     BearerAuth
// @Param        id  path  int  true  "ID"
// @Success      204
// @Router       /api/v1/users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error { return h.crud.delete(c) }
