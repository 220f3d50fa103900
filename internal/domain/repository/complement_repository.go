package repository

import (
	"context"

	"github.com/jhoicas/gelato-api/internal/domain/entity"
)

// ComplementRepository define el puerto de persistencia para Complement y su relación con Category.
type ComplementRepository interface {
	Create(ctx context.Context, complement *entity.Complement) error
	GetByID(ctx context.Context, id int64) (*entity.Complement, error)
	// Update reemplaza también el conjunto de categorías.
	Update(ctx context.Context, complement *entity.Complement) error
	List(ctx context.Context, limit, offset int) ([]*entity.Complement, error)
	Count(ctx context.Context) (int, error)
	// ListByCategory devuelve los complementos cuyo conjunto de categorías incluye categoryID.
	ListByCategory(ctx context.Context, categoryID int64) ([]*entity.Complement, error)
	Delete(ctx context.Context, id int64) error
}
