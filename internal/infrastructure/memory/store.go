// Package memory implementa los puertos de persistencia en memoria del proceso.
//
// Las restricciones (unicidad, claves foráneas, cascadas) se verifican bajo un único mutex, por lo que
// dos altas concurrentes con el mismo nombre nunca tienen éxito ambas. Run ejecuta sobre una copia y
// la publica solo si fn no devuelve error.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/gelato-api/internal/domain"
	"github.com/jhoicas/gelato-api/internal/domain/entity"
	"github.com/jhoicas/gelato-api/internal/domain/repository"
)

var _ repository.TxRunner = (*Store)(nil)

type data struct {
	users       map[int64]*entity.User
	categories  map[int64]*entity.Category
	products    map[int64]*entity.Product
	complements map[int64]*entity.Complement
	orders      map[int64]*entity.Order
	seq         map[string]int64
}

func newData() *data {
	return &data{
		users:       make(map[int64]*entity.User),
		categories:  make(map[int64]*entity.Category),
		products:    make(map[int64]*entity.Product),
		complements: make(map[int64]*entity.Complement),
		orders:      make(map[int64]*entity.Order),
		seq:         make(map[string]int64),
	}
}

func (d *data) nextID(table string) int64 {
	d.seq[table]++
	return d.seq[table]
}

func (d *data) clone() *data {
	c := newData()
	for k, v := range d.users {
		c.users[k] = cloneUser(v)
	}
	for k, v := range d.categories {
		cp := *v
		c.categories[k] = &cp
	}
	for k, v := range d.products {
		c.products[k] = cloneProduct(v)
	}
	for k, v := range d.complements {
		c.complements[k] = cloneComplement(v)
	}
	for k, v := range d.orders {
		cp := *v
		c.orders[k] = &cp
	}
	for k, v := range d.seq {
		c.seq[k] = v
	}
	return c
}

// Store almacén en memoria; seguro para uso concurrente.
type Store struct {
	mu sync.Mutex
	d  *data
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{d: newData()}
}

// Repositories devuelve los repositorios sin transacción (cada operación es atómica por sí sola).
func (s *Store) Repositories() repository.Repositories {
	return s.bind(nil)
}

// Run ejecuta fn con repositorios ligados a una copia del estado; la copia reemplaza al estado solo si
// fn devuelve nil. El almacén queda bloqueado durante toda la transacción.
func (s *Store) Run(ctx context.Context, fn func(repos repository.Repositories) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	tx := s.d.clone()
	if err := fn(s.bind(tx)); err != nil {
		return err
	}
	s.d = tx
	return nil
}

func (s *Store) bind(tx *data) repository.Repositories {
	b := binding{store: s, tx: tx}
	return repository.Repositories{
		Users:       &UserRepo{b},
		Categories:  &CategoryRepo{b},
		Products:    &ProductRepo{b},
		Complements: &ComplementRepo{b},
		Orders:      &OrderRepo{b},
	}
}

// binding resuelve sobre qué estado opera un repositorio: la copia de la transacción o el estado
// compartido bajo el mutex.
type binding struct {
	store *Store
	tx    *data
}

func (b binding) with(ctx context.Context, fn func(d *data) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if b.tx != nil {
		return fn(b.tx)
	}
	b.store.mu.Lock()
	defer b.store.mu.Unlock()
	return fn(b.store.d)
}

// page aplica orden por id ascendente y limit/offset.
func page[T any](items map[int64]*T, limit, offset int, clone func(*T) *T) []*T {
	ids := make([]int64, 0, len(items))
	for id := range items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	if offset > len(ids) {
		offset = len(ids)
	}
	ids = ids[offset:]
	if limit > 0 && limit < len(ids) {
		ids = ids[:limit]
	}
	out := make([]*T, 0, len(ids))
	for _, id := range ids {
		out = append(out, clone(items[id]))
	}
	return out
}

func invalidPK(field string) error {
	return domain.NewFieldError(field, domain.MsgInvalidPK)
}

func cloneInt64Ptr(p *int64) *int64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneStringPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
