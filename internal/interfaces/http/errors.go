package http

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gelato-api/internal/application/dto"
	"github.com/jhoicas/gelato-api/internal/domain"
)

// ErrTooManyRequests se superó el límite de intentos de login.
var ErrTooManyRequests = errors.New("demasiados intentos")

// writeError traduce errores de dominio a respuestas HTTP. Las validaciones devuelven el mapa
// campo -> mensajes tal cual; el resto usa dto.ErrorResponse.
func writeError(c *fiber.Ctx, err error) error {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(verr.Fields)
	}
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		c.Set(fiber.HeaderWWWAuthenticate, `Bearer realm="api"`)
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "NOT_AUTHENTICATED", Message: "las credenciales de autenticación no se proveyeron o no son válidas"})
	case errors.Is(err, domain.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_CREDENTIALS", Message: "email o contraseña incorrectos"})
	case errors.Is(err, domain.ErrInactiveUser):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INACTIVE_USER", Message: "usuario inactivo"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "PERMISSION_DENIED", Message: "no tiene permiso para realizar esta acción"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "no encontrado"})
	case errors.Is(err, ErrTooManyRequests):
		return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{Code: "THROTTLED", Message: "demasiados intentos, espere antes de reintentar"})
	}
	zerolog.Ctx(c.UserContext()).Error().Err(err).Str("path", c.Path()).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno del servidor"})
}

// ErrorHandler manejador de errores de Fiber para lo que no pasa por writeError (rutas inexistentes,
// métodos no permitidos, pánicos recuperados).
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: "HTTP_ERROR", Message: fe.Message})
	}
	return writeError(c, err)
}

// parseBody decodifica JSON en dst. Un cuerpo vacío deja dst sin cambios (los campos obligatorios
// fallarán en validación). Los valores que no encajan en su tipo se reportan sobre el campo.
func parseBody(c *fiber.Ctx, dst interface{}) error {
	body := c.Body()
	if len(body) == 0 {
		return nil
	}
	err := json.Unmarshal(body, dst)
	if err == nil {
		return nil
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return domain.NewFieldError(typeErr.Field, fieldMessage(typeErr.Type))
	}
	var syntaxErr *json.SyntaxError
	if !errors.As(err, &syntaxErr) {
		// Errores de un json.Unmarshaler (p. ej. decimal.Decimal) no traen el campo.
		if field, typ, ok := failingField(dst, body); ok {
			return domain.NewFieldError(field, fieldMessage(typ))
		}
	}
	return domain.NewFieldError("non_field_errors", "JSON mal formado.")
}

// failingField decodifica campo por campo para encontrar el primero que no acepta su valor.
func failingField(dst interface{}, body []byte) (string, reflect.Type, bool) {
	var raw map[string]json.RawMessage
	if json.Unmarshal(body, &raw) != nil {
		return "", nil, false
	}
	rt := reflect.TypeOf(dst)
	for rt.Kind() == reflect.Ptr {
		rt = rt.Elem()
	}
	if rt.Kind() != reflect.Struct {
		return "", nil, false
	}
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		value, ok := raw[name]
		if name == "" || name == "-" || !ok {
			continue
		}
		if json.Unmarshal(value, reflect.New(f.Type).Interface()) != nil {
			return name, f.Type, true
		}
	}
	return "", nil, false
}

var decimalType = reflect.TypeOf(decimal.Decimal{})

func fieldMessage(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == decimalType {
		return domain.MsgInvalidNumber
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return domain.MsgInvalidNumber
	}
	return "Valor inválido."
}
