package repository

import (
	"context"
	"time"

	"github.com/jhoicas/gelato-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Delete elimina en cascada productos, complementos y pedidos que referencian al usuario.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	// TouchLastLogin registra el último inicio de sesión (lo usa el caso de uso de autenticación).
	TouchLastLogin(ctx context.Context, id int64, at time.Time) error
	List(ctx context.Context, limit, offset int) ([]*entity.User, error)
	Count(ctx context.Context) (int, error)
	Delete(ctx context.Context, id int64) error
}
