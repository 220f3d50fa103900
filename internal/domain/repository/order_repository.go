package repository

import (
	"context"

	"github.com/jhoicas/gelato-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para Order (DIP).
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id int64) (*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	List(ctx context.Context, limit, offset int) ([]*entity.Order, error)
	Count(ctx context.Context) (int, error)
	Delete(ctx context.Context, id int64) error
}
