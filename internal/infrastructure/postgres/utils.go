package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/gelato-api/internal/domain"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

type uniqueTarget struct {
	resource string
	field    string
}

// Restricciones UNIQUE -> recurso y campo JSON.
var uniqueConstraints = map[string]uniqueTarget{
	"users_email_key":      {"user", "email"},
	"categories_name_key":  {"category", "name"},
	"products_name_key":    {"product", "name"},
	"complements_name_key": {"complement", "name"},
}

// Claves foráneas -> campo JSON.
var foreignKeyFields = map[string]string{
	"products_category_id_fkey":              "category",
	"products_created_by_fkey":               "created_by",
	"products_updated_by_fkey":               "updated_by",
	"complements_created_by_fkey":            "created_by",
	"complements_updated_by_fkey":            "updated_by",
	"complement_categories_category_id_fkey": "categories",
	"orders_user_id_fkey":                    "user",
}

// translate convierte violaciones de restricciones en *domain.ValidationError. Devuelve (nil, false)
// si err no es una violación conocida.
func translate(err error) (error, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil, false
	}
	switch pgErr.Code {
	case codeUniqueViolation:
		if t, ok := uniqueConstraints[pgErr.ConstraintName]; ok {
			return domain.NewConflictError(t.field, domain.UniqueMessage(t.resource, t.field)), true
		}
		return domain.NewConflictError("non_field_errors", "Registro duplicado."), true
	case codeForeignKeyViolation:
		if field, ok := foreignKeyFields[pgErr.ConstraintName]; ok {
			return domain.NewFieldError(field, domain.MsgInvalidPK), true
		}
	}
	return nil, false
}

// wrap traduce violaciones de restricciones o envuelve el error con la operación.
func wrap(op string, err error) error {
	if verr, ok := translate(err); ok {
		return verr
	}
	return fmt.Errorf("%s: %w", op, err)
}

// limitArg convierte limit<=0 en nil (LIMIT NULL = sin límite).
func limitArg(limit int) any {
	if limit <= 0 {
		return nil
	}
	return limit
}
