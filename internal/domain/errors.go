package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrInactiveUser       = errors.New("usuario inactivo")
)

// Mensajes de validación compartidos por el validador y los adaptadores de persistencia.
const (
	MsgRequired      = "Este campo es obligatorio."
	MsgBlank         = "Este campo no puede estar en blanco."
	MsgEmptyList     = "Esta lista no puede estar vacía."
	MsgInvalidPK     = "Clave primaria inválida: el objeto no existe."
	MsgInvalidEmail  = "Introduzca una dirección de correo electrónico válida."
	MsgInvalidNumber = "Introduzca un número válido."
)

// UniqueMessage mensaje de unicidad, p. ej. "Ya existe product con este name.".
func UniqueMessage(resource, field string) string {
	return fmt.Sprintf("Ya existe %s con este %s.", resource, field)
}

// ValidationError agrupa errores por campo (campo -> mensajes). Se serializa tal cual en respuestas 400.
// Cuando proviene de una restricción única, además coincide con ErrConflict.
type ValidationError struct {
	Fields   map[string][]string
	conflict bool
}

// NewValidationError crea un error vacío; usar Add para acumular campos.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

// NewFieldError crea un error de validación con un único campo.
func NewFieldError(field, msg string) *ValidationError {
	e := NewValidationError()
	e.Add(field, msg)
	return e
}

// NewConflictError crea el error de unicidad para el campo indicado.
func NewConflictError(field, msg string) *ValidationError {
	e := NewFieldError(field, msg)
	e.conflict = true
	return e
}

// Add agrega un mensaje al campo.
func (e *ValidationError) Add(field, msg string) {
	e.Fields[field] = append(e.Fields[field], msg)
}

// Empty indica si no se acumuló ningún campo.
func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}

// Conflict indica si el error proviene de una violación de unicidad.
func (e *ValidationError) Conflict() bool {
	return e.conflict
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(e.Fields[k], " "))
	}
	return "validación: " + strings.Join(parts, "; ")
}

// Is permite errors.Is(err, ErrInvalidInput) y, si aplica, errors.Is(err, ErrConflict).
func (e *ValidationError) Is(target error) bool {
	if target == ErrInvalidInput {
		return true
	}
	return e.conflict && target == ErrConflict
}
