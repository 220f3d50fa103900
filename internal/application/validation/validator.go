// Package validation valida los payloads de escritura con go-playground/validator y traduce los
// errores a *domain.ValidationError (campo JSON -> mensajes).
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gelato-api/internal/domain"
)

// Mode distingue escrituras completas (create, PUT) de parciales (PATCH).
type Mode int

const (
	// Full valida todos los campos: los obligatorios ausentes fallan.
	Full Mode = iota
	// Partial valida solo los campos presentes en el payload.
	Partial
)

// Límites de las columnas decimal(10,2).
const (
	moneyMaxDigits = 10
	moneyPlaces    = 2
)

// Validator envoltorio sobre *validator.Validate con nombres de campo JSON y tipos decimales.
type Validator struct {
	v *validator.Validate
}

// New construye el validador con los tags propios (notblank, money, nonnegative).
func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// decimal.Decimal es un struct: se valida su representación textual.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidation("money", validateMoney)
	_ = v.RegisterValidation("nonnegative", validateNonNegative)
	return &Validator{v: v}
}

// Validate valida un payload (puntero a struct con campos puntero). Devuelve *domain.ValidationError
// con todos los campos fallidos o nil.
func (val *Validator) Validate(payload interface{}, mode Mode) error {
	var err error
	if mode == Partial {
		fields := presentFields(payload)
		if len(fields) == 0 {
			return nil
		}
		err = val.v.StructPartial(payload, fields...)
	} else {
		err = val.v.Struct(payload)
	}
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validar payload: %w", err)
	}
	out := domain.NewValidationError()
	for _, fe := range verrs {
		out.Add(fe.Field(), message(fe))
	}
	return out
}

// presentFields nombres Go de los campos puntero no nil (los que llegaron en el JSON).
func presentFields(payload interface{}) []string {
	rv := reflect.ValueOf(payload)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}
	rt := rv.Type()
	var names []string
	for i := 0; i < rt.NumField(); i++ {
		f := rv.Field(i)
		if f.Kind() == reflect.Ptr && !f.IsNil() {
			names = append(names, rt.Field(i).Name)
		}
	}
	return names
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return domain.MsgRequired
	case "notblank":
		return domain.MsgBlank
	case "email":
		return domain.MsgInvalidEmail
	case "max":
		return fmt.Sprintf("Asegúrese de que este campo no tenga más de %s caracteres.", fe.Param())
	case "min":
		if fe.Kind() == reflect.Slice {
			return domain.MsgEmptyList
		}
		return fmt.Sprintf("Asegúrese de que este campo tenga al menos %s caracteres.", fe.Param())
	case "gte":
		return fmt.Sprintf("Asegúrese de que este valor sea mayor o igual a %s.", fe.Param())
	case "nonnegative":
		return "Asegúrese de que este valor sea mayor o igual a 0."
	case "money":
		return fmt.Sprintf("Asegúrese de que no haya más de %d dígitos en total ni más de %d decimales.", moneyMaxDigits, moneyPlaces)
	default:
		return "Valor inválido."
	}
}

func parseDecimalField(fl validator.FieldLevel) (decimal.Decimal, bool) {
	s, ok := fl.Field().Interface().(string)
	if !ok {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// validateMoney admite como máximo 10 dígitos significativos y 2 decimales.
func validateMoney(fl validator.FieldLevel) bool {
	d, ok := parseDecimalField(fl)
	if !ok {
		return false
	}
	if !d.Equal(d.Truncate(moneyPlaces)) {
		return false
	}
	intDigits := len(d.Abs().Truncate(0).String())
	return intDigits <= moneyMaxDigits-moneyPlaces
}

func validateNonNegative(fl validator.FieldLevel) bool {
	d, ok := parseDecimalField(fl)
	return ok && !d.IsNegative()
}
