package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// LocalRequestID clave de Locals con el id de la petición.
	LocalRequestID  = "request_id"
	headerRequestID = "X-Request-ID"
)

// LoginLimiter limita intentos de login por clave.
type LoginLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
	Reset(ctx context.Context, key string) error
}

// RequestID asigna un id por petición (respeta X-Request-ID entrante) y lo devuelve en la respuesta.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(LocalRequestID, id)
		c.Set(headerRequestID, id)
		return c.Next()
	}
}

// RequestLogger deja un logger con el request id en el contexto de la petición y registra método,
// ruta, estado y latencia al terminar.
func RequestLogger(base zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		id, _ := c.Locals(LocalRequestID).(string)
		l := base.With().Str("request_id", id).Logger()
		c.SetUserContext(l.WithContext(c.UserContext()))

		err := c.Next()
		if err != nil {
			// El ErrorHandler de Fiber escribe la respuesta; aquí solo se registra.
			if hErr := c.App().ErrorHandler(c, err); hErr != nil {
				l.Error().Err(hErr).Msg("error handler")
			}
		}
		status := c.Response().StatusCode()
		level := zerolog.InfoLevel
		if status >= fiber.StatusInternalServerError {
			level = zerolog.ErrorLevel
		}
		l.WithLevel(level).Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("request")
		return nil
	}
}

// LoginRateLimit limita los intentos por IP. Un login correcto reinicia el contador. Si el limitador
// falla, la petición continúa.
func LoginRateLimit(limiter LoginLimiter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.IP()
		ok, err := limiter.Allow(c.UserContext(), key)
		if err != nil {
			zerolog.Ctx(c.UserContext()).Warn().Err(err).Msg("limitador de login no disponible")
			return c.Next()
		}
		if !ok {
			return writeError(c, ErrTooManyRequests)
		}
		if err := c.Next(); err != nil {
			return err
		}
		if c.Response().StatusCode() == fiber.StatusOK {
			if err := limiter.Reset(c.UserContext(), key); err != nil {
				zerolog.Ctx(c.UserContext()).Warn().Err(err).Msg("no se pudo reiniciar el limitador")
			}
		}
		return nil
	}
}
