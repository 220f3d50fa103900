package memory

import (
	"context"

	"github.com/jhoicas/gelato-api/internal/domain"
	"github.com/jhoicas/gelato-api/internal/domain/entity"
	"github.com/jhoicas/gelato-api/internal/domain/repository"
)

var (
	_ repository.CategoryRepository   = (*CategoryRepo)(nil)
	_ repository.ProductRepository    = (*ProductRepo)(nil)
	_ repository.ComplementRepository = (*ComplementRepo)(nil)
)

func cloneCategory(c *entity.Category) *entity.Category {
	cp := *c
	return &cp
}

func cloneProduct(p *entity.Product) *entity.Product {
	cp := *p
	cp.Image = cloneStringPtr(p.Image)
	cp.UpdatedBy = cloneInt64Ptr(p.UpdatedBy)
	return &cp
}

func cloneComplement(c *entity.Complement) *entity.Complement {
	cp := *c
	cp.Image = cloneStringPtr(c.Image)
	cp.UpdatedBy = cloneInt64Ptr(c.UpdatedBy)
	cp.CategoryIDs = append([]int64(nil), c.CategoryIDs...)
	return &cp
}

// checkAuthors verifica que created_by/updated_by existan.
func (d *data) checkAuthors(a entity.Authorship) error {
	if _, ok := d.users[a.CreatedBy]; !ok {
		return invalidPK("created_by")
	}
	if a.UpdatedBy != nil {
		if _, ok := d.users[*a.UpdatedBy]; !ok {
			return invalidPK("updated_by")
		}
	}
	return nil
}

// CategoryRepo implementación en memoria de CategoryRepository.
type CategoryRepo struct{ b binding }

// Create persiste una categoría nueva y le asigna ID.
func (r *CategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	return r.b.with(ctx, func(d *data) error {
		for _, other := range d.categories {
			if other.Name == c.Name {
				return domain.NewConflictError("name", domain.UniqueMessage("category", "name"))
			}
		}
		c.ID = d.nextID("categories")
		d.categories[c.ID] = cloneCategory(c)
		return nil
	})
}

// GetByID obtiene una categoría; nil si no existe.
func (r *CategoryRepo) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	var out *entity.Category
	err := r.b.with(ctx, func(d *data) error {
		if c, ok := d.categories[id]; ok {
			out = cloneCategory(c)
		}
		return nil
	})
	return out, err
}

// Update reemplaza los datos de la categoría.
func (r *CategoryRepo) Update(ctx context.Context, c *entity.Category) error {
	return r.b.with(ctx, func(d *data) error {
		if _, ok := d.categories[c.ID]; !ok {
			return domain.ErrNotFound
		}
		for id, other := range d.categories {
			if id != c.ID && other.Name == c.Name {
				return domain.NewConflictError("name", domain.UniqueMessage("category", "name"))
			}
		}
		d.categories[c.ID] = cloneCategory(c)
		return nil
	})
}

// List lista categorías por id ascendente.
func (r *CategoryRepo) List(ctx context.Context, limit, offset int) ([]*entity.Category, error) {
	var out []*entity.Category
	err := r.b.with(ctx, func(d *data) error {
		out = page(d.categories, limit, offset, cloneCategory)
		return nil
	})
	return out, err
}

// Count total de categorías.
func (r *CategoryRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.b.with(ctx, func(d *data) error {
		n = len(d.categories)
		return nil
	})
	return n, err
}

// Delete elimina la categoría, sus productos y sus vínculos con complementos.
func (r *CategoryRepo) Delete(ctx context.Context, id int64) error {
	return r.b.with(ctx, func(d *data) error {
		delete(d.categories, id)
		for pid, p := range d.products {
			if p.CategoryID == id {
				delete(d.products, pid)
			}
		}
		for _, c := range d.complements {
			kept := c.CategoryIDs[:0]
			for _, cid := range c.CategoryIDs {
				if cid != id {
					kept = append(kept, cid)
				}
			}
			c.CategoryIDs = kept
		}
		return nil
	})
}

// ProductRepo implementación en memoria de ProductRepository.
type ProductRepo struct{ b binding }

func (d *data) checkProduct(p *entity.Product) error {
	for id, other := range d.products {
		if id != p.ID && other.Name == p.Name {
			return domain.NewConflictError("name", domain.UniqueMessage("product", "name"))
		}
	}
	if _, ok := d.categories[p.CategoryID]; !ok {
		return invalidPK("category")
	}
	return d.checkAuthors(p.Authorship)
}

// Create persiste un producto nuevo y le asigna ID.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	return r.b.with(ctx, func(d *data) error {
		if err := d.checkProduct(p); err != nil {
			return err
		}
		p.ID = d.nextID("products")
		d.products[p.ID] = cloneProduct(p)
		return nil
	})
}

// GetByID obtiene un producto; nil si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	var out *entity.Product
	err := r.b.with(ctx, func(d *data) error {
		if p, ok := d.products[id]; ok {
			out = cloneProduct(p)
		}
		return nil
	})
	return out, err
}

// Update reemplaza los datos del producto.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	return r.b.with(ctx, func(d *data) error {
		if _, ok := d.products[p.ID]; !ok {
			return domain.ErrNotFound
		}
		if err := d.checkProduct(p); err != nil {
			return err
		}
		d.products[p.ID] = cloneProduct(p)
		return nil
	})
}

// List lista productos por id ascendente.
func (r *ProductRepo) List(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	err := r.b.with(ctx, func(d *data) error {
		out = page(d.products, limit, offset, cloneProduct)
		return nil
	})
	return out, err
}

// Count total de productos.
func (r *ProductRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.b.with(ctx, func(d *data) error {
		n = len(d.products)
		return nil
	})
	return n, err
}

// Delete elimina un producto.
func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	return r.b.with(ctx, func(d *data) error {
		delete(d.products, id)
		return nil
	})
}

// ComplementRepo implementación en memoria de ComplementRepository.
type ComplementRepo struct{ b binding }

func (d *data) checkComplement(c *entity.Complement) error {
	for id, other := range d.complements {
		if id != c.ID && other.Name == c.Name {
			return domain.NewConflictError("name", domain.UniqueMessage("complement", "name"))
		}
	}
	for _, cid := range c.CategoryIDs {
		if _, ok := d.categories[cid]; !ok {
			return invalidPK("categories")
		}
	}
	return d.checkAuthors(c.Authorship)
}

// Create persiste un complemento nuevo con sus categorías.
func (r *ComplementRepo) Create(ctx context.Context, c *entity.Complement) error {
	return r.b.with(ctx, func(d *data) error {
		if err := d.checkComplement(c); err != nil {
			return err
		}
		c.ID = d.nextID("complements")
		d.complements[c.ID] = cloneComplement(c)
		return nil
	})
}

// GetByID obtiene un complemento; nil si no existe.
func (r *ComplementRepo) GetByID(ctx context.Context, id int64) (*entity.Complement, error) {
	var out *entity.Complement
	err := r.b.with(ctx, func(d *data) error {
		if c, ok := d.complements[id]; ok {
			out = cloneComplement(c)
		}
		return nil
	})
	return out, err
}

// Update reemplaza los datos y el conjunto de categorías.
func (r *ComplementRepo) Update(ctx context.Context, c *entity.Complement) error {
	return r.b.with(ctx, func(d *data) error {
		if _, ok := d.complements[c.ID]; !ok {
			return domain.ErrNotFound
		}
		if err := d.checkComplement(c); err != nil {
			return err
		}
		d.complements[c.ID] = cloneComplement(c)
		return nil
	})
}

// List lista complementos por id ascendente.
func (r *ComplementRepo) List(ctx context.Context, limit, offset int) ([]*entity.Complement, error) {
	var out []*entity.Complement
	err := r.b.with(ctx, func(d *data) error {
		out = page(d.complements, limit, offset, cloneComplement)
		return nil
	})
	return out, err
}

// Count total de complementos.
func (r *ComplementRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.b.with(ctx, func(d *data) error {
		n = len(d.complements)
		return nil
	})
	return n, err
}

// ListByCategory complementos vinculados a la categoría, por id ascendente.
func (r *ComplementRepo) ListByCategory(ctx context.Context, categoryID int64) ([]*entity.Complement, error) {
	var out []*entity.Complement
	err := r.b.with(ctx, func(d *data) error {
		matching := make(map[int64]*entity.Complement)
		for id, c := range d.complements {
			if c.HasCategory(categoryID) {
				matching[id] = c
			}
		}
		out = page(matching, 0, 0, cloneComplement)
		return nil
	})
	return out, err
}

// Delete elimina un complemento.
func (r *ComplementRepo) Delete(ctx context.Context, id int64) error {
	return r.b.with(ctx, func(d *data) error {
		delete(d.complements, id)
		return nil
	})
}
