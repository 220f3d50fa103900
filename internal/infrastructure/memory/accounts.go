package memory

import (
	"context"
	"time"

	"github.com/jhoicas/gelato-api/internal/domain"
	"github.com/jhoicas/gelato-api/internal/domain/entity"
	"github.com/jhoicas/gelato-api/internal/domain/repository"
)

var (
	_ repository.UserRepository  = (*UserRepo)(nil)
	_ repository.OrderRepository = (*OrderRepo)(nil)
)

func cloneUser(u *entity.User) *entity.User {
	cp := *u
	if u.LastLogin != nil {
		t := *u.LastLogin
		cp.LastLogin = &t
	}
	return &cp
}

func cloneOrder(o *entity.Order) *entity.Order {
	cp := *o
	return &cp
}

// UserRepo implementación en memoria de UserRepository.
type UserRepo struct{ b binding }

func (d *data) checkEmail(u *entity.User) error {
	for id, other := range d.users {
		if id != u.ID && other.Email == u.Email {
			return domain.NewConflictError("email", domain.UniqueMessage("user", "email"))
		}
	}
	return nil
}

// Create persiste un usuario nuevo y le asigna ID.
func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	return r.b.with(ctx, func(d *data) error {
		if err := d.checkEmail(u); err != nil {
			return err
		}
		u.ID = d.nextID("users")
		d.users[u.ID] = cloneUser(u)
		return nil
	})
}

// GetByID obtiene un usuario; nil si no existe.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	var out *entity.User
	err := r.b.with(ctx, func(d *data) error {
		if u, ok := d.users[id]; ok {
			out = cloneUser(u)
		}
		return nil
	})
	return out, err
}

// GetByEmail obtiene un usuario por email normalizado; nil si no existe.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var out *entity.User
	err := r.b.with(ctx, func(d *data) error {
		for _, u := range d.users {
			if u.Email == email {
				out = cloneUser(u)
				break
			}
		}
		return nil
	})
	return out, err
}

// Update reemplaza los datos del usuario.
func (r *UserRepo) Update(ctx context.Context, u *entity.User) error {
	return r.b.with(ctx, func(d *data) error {
		if _, ok := d.users[u.ID]; !ok {
			return domain.ErrNotFound
		}
		if err := d.checkEmail(u); err != nil {
			return err
		}
		d.users[u.ID] = cloneUser(u)
		return nil
	})
}

// TouchLastLogin registra el último inicio de sesión.
func (r *UserRepo) TouchLastLogin(ctx context.Context, id int64, at time.Time) error {
	return r.b.with(ctx, func(d *data) error {
		u, ok := d.users[id]
		if !ok {
			return domain.ErrNotFound
		}
		u.LastLogin = &at
		return nil
	})
}

// List lista usuarios por id ascendente.
func (r *UserRepo) List(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	err := r.b.with(ctx, func(d *data) error {
		out = page(d.users, limit, offset, cloneUser)
		return nil
	})
	return out, err
}

// Count total de usuarios.
func (r *UserRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.b.with(ctx, func(d *data) error {
		n = len(d.users)
		return nil
	})
	return n, err
}

// Delete elimina el usuario y en cascada sus productos, complementos y pedidos.
func (r *UserRepo) Delete(ctx context.Context, id int64) error {
	return r.b.with(ctx, func(d *data) error {
		delete(d.users, id)
		references := func(a entity.Authorship) bool {
			return a.CreatedBy == id || (a.UpdatedBy != nil && *a.UpdatedBy == id)
		}
		for pid, p := range d.products {
			if references(p.Authorship) {
				delete(d.products, pid)
			}
		}
		for cid, c := range d.complements {
			if references(c.Authorship) {
				delete(d.complements, cid)
			}
		}
		for oid, o := range d.orders {
			if o.UserID == id {
				delete(d.orders, oid)
			}
		}
		return nil
	})
}

// OrderRepo implementación en memoria de OrderRepository.
type OrderRepo struct{ b binding }

// Create persiste un pedido nuevo y le asigna ID.
func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	return r.b.with(ctx, func(d *data) error {
		if _, ok := d.users[o.UserID]; !ok {
			return invalidPK("user")
		}
		o.ID = d.nextID("orders")
		d.orders[o.ID] = cloneOrder(o)
		return nil
	})
}

// GetByID obtiene un pedido; nil si no existe.
func (r *OrderRepo) GetByID(ctx context.Context, id int64) (*entity.Order, error) {
	var out *entity.Order
	err := r.b.with(ctx, func(d *data) error {
		if o, ok := d.orders[id]; ok {
			out = cloneOrder(o)
		}
		return nil
	})
	return out, err
}

// Update reemplaza los datos del pedido.
func (r *OrderRepo) Update(ctx context.Context, o *entity.Order) error {
	return r.b.with(ctx, func(d *data) error {
		if _, ok := d.orders[o.ID]; !ok {
			return domain.ErrNotFound
		}
		d.orders[o.ID] = cloneOrder(o)
		return nil
	})
}

// List lista pedidos por id ascendente.
func (r *OrderRepo) List(ctx context.Context, limit, offset int) ([]*entity.Order, error) {
	var out []*entity.Order
	err := r.b.with(ctx, func(d *data) error {
		out = page(d.orders, limit, offset, cloneOrder)
		return nil
	})
	return out, err
}

// Count total de pedidos.
func (r *OrderRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.b.with(ctx, func(d *data) error {
		n = len(d.orders)
		return nil
	})
	return n, err
}

// Delete elimina un pedido.
func (r *OrderRepo) Delete(ctx context.Context, id int64) error {
	return r.b.with(ctx, func(d *data) error {
		delete(d.orders, id)
		return nil
	})
}
