package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gelato-api/internal/domain"
	"github.com/jhoicas/gelato-api/internal/domain/access"
)

// LocalCaller clave de Locals con el access.Caller de la petición.
const LocalCaller = "caller"

// Authenticator resuelve el llamador a partir de un token Bearer.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (access.Caller, error)
}

// AuthMiddleware resuelve el llamador. Sin cabecera Authorization el llamador es anónimo; con una
// cabecera mal formada, un token inválido o un usuario inactivo responde 401.
func AuthMiddleware(auth Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			c.Locals(LocalCaller, access.Anonymous())
			return c.Next()
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			return writeError(c, domain.ErrUnauthorized)
		}
		caller, err := auth.Authenticate(c.UserContext(), strings.TrimSpace(parts[1]))
		if err != nil {
			return writeError(c, err)
		}
		c.Locals(LocalCaller, caller)
		return c.Next()
	}
}

// GetCaller devuelve el llamador resuelto por AuthMiddleware (anónimo si no hay).
func GetCaller(c *fiber.Ctx) access.Caller {
	caller, _ := c.Locals(LocalCaller).(access.Caller)
	return caller
}

// RequirePermission aplica la regla de acceso a nivel de colección antes de leer el cuerpo.
// Debe usarse DESPUÉS de AuthMiddleware. Las reglas sobre el registro concreto (dueño) las vuelve a
// evaluar el caso de uso con el registro cargado.
func RequirePermission(resource access.Resource, action access.Action) fiber.Handler {
	return func(c *fiber.Ctx) error {
		switch access.Authorize(GetCaller(c), resource, action, nil) {
		case access.Allow:
			return c.Next()
		case access.DenyUnauthenticated:
			return writeError(c, domain.ErrUnauthorized)
		default:
			return writeError(c, domain.ErrForbidden)
		}
	}
}

