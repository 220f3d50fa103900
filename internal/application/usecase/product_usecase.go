package usecase

import (
	"context"

	"github.com/jhoicas/gelato-api/internal/application/dto"
	"github.com/jhoicas/gelato-api/internal/application/validation"
	"github.com/jhoicas/gelato-api/internal/domain"
	"github.com/jhoicas/gelato-api/internal/domain/access"
	"github.com/jhoicas/gelato-api/internal/domain/entity"
	"github.com/jhoicas/gelato-api/internal/domain/repository"
)

// ProductUseCase CRUD de productos y complementos aplicables.
type ProductUseCase struct {
	Deps
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(deps Deps) *ProductUseCase {
	return &ProductUseCase{Deps: deps}
}

// List lista productos (cualquiera).
func (uc *ProductUseCase) List(ctx context.Context, caller access.Caller, page dto.PageRequest) (*dto.Page[dto.ProductResponse], error) {
	if err := authorize(caller, access.ResourceProduct, access.ActionList, nil); err != nil {
		return nil, err
	}
	repo := uc.Store.Repositories().Products
	return listPage(page,
		func() (int, error) { return repo.Count(ctx) },
		func(limit, offset int) ([]*entity.Product, error) { return repo.List(ctx, limit, offset) },
		toProductResponse,
	)
}

func (uc *ProductUseCase) load(ctx context.Context, repos repository.Repositories, id int64) (*entity.Product, error) {
	p, err := repos.Products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

// Get obtiene un producto.
func (uc *ProductUseCase) Get(ctx context.Context, caller access.Caller, id int64) (*dto.ProductResponse, error) {
	if err := authorize(caller, access.ResourceProduct, access.ActionRetrieve, nil); err != nil {
		return nil, err
	}
	p, err := uc.load(ctx, uc.Store.Repositories(), id)
	if err != nil {
		return nil, err
	}
	out := toProductResponse(p)
	return &out, nil
}

// Complements complementos cuyas categorías incluyen la del producto, por id ascendente.
func (uc *ProductUseCase) Complements(ctx context.Context, caller access.Caller, id int64) ([]dto.ComplementResponse, error) {
	if err := authorize(caller, access.ResourceProduct, access.ActionComplements, nil); err != nil {
		return nil, err
	}
	repos := uc.Store.Repositories()
	p, err := uc.load(ctx, repos, id)
	if err != nil {
		return nil, err
	}
	list, err := repos.Complements.ListByCategory(ctx, p.CategoryID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ComplementResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toComplementResponse(c))
	}
	return out, nil
}

// Create crea un producto (staff+). created_by es siempre el llamador.
func (uc *ProductUseCase) Create(ctx context.Context, caller access.Caller, in dto.ProductPayload) (*dto.ProductResponse, error) {
	if err := authorize(caller, access.ResourceProduct, access.ActionCreate, nil); err != nil {
		return nil, err
	}
	if err := uc.Validator.Validate(&in, validation.Full); err != nil {
		return nil, err
	}
	in = uc.Sanitizer.ProductOnCreate(caller, in)
	now := uc.now()
	p := &entity.Product{
		Name:           *in.Name,
		Price:          *in.Price,
		Description:    *in.Description,
		Image:          in.Image,
		MaxComplements: *in.MaxComplements,
		CategoryID:     *in.Category,
		Authorship:     entity.Authorship{CreatedBy: *in.CreatedBy},
		Item:           entity.Item{InStock: orDefault(in.InStock, true), CreatedAt: now, UpdatedAt: now},
	}
	err := uc.Store.Run(ctx, func(repos repository.Repositories) error {
		return repos.Products.Create(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	out := toProductResponse(p)
	return &out, nil
}

// Update reemplaza (PUT) o modifica parcialmente (PATCH) un producto (staff+). updated_by es siempre
// el llamador.
func (uc *ProductUseCase) Update(ctx context.Context, caller access.Caller, id int64, in dto.ProductPayload, partial bool) (*dto.ProductResponse, error) {
	action, mode := writeMode(partial)
	if err := authorize(caller, access.ResourceProduct, action, nil); err != nil {
		return nil, err
	}
	var p *entity.Product
	err := uc.Store.Run(ctx, func(repos repository.Repositories) error {
		var err error
		if p, err = uc.load(ctx, repos, id); err != nil {
			return err
		}
		if err := uc.Validator.Validate(&in, mode); err != nil {
			return err
		}
		in = uc.Sanitizer.ProductOnUpdate(caller, in)
		applyProduct(p, in)
		p.UpdatedAt = uc.now()
		return repos.Products.Update(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	out := toProductResponse(p)
	return &out, nil
}

func applyProduct(p *entity.Product, in dto.ProductPayload) {
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Image != nil {
		p.Image = in.Image
	}
	if in.MaxComplements != nil {
		p.MaxComplements = *in.MaxComplements
	}
	if in.InStock != nil {
		p.InStock = *in.InStock
	}
	if in.Category != nil {
		p.CategoryID = *in.Category
	}
	if in.UpdatedBy != nil {
		p.UpdatedBy = in.UpdatedBy
	}
}

// Delete elimina un producto (staff+).
func (uc *ProductUseCase) Delete(ctx context.Context, caller access.Caller, id int64) error {
	if err := authorize(caller, access.ResourceProduct, access.ActionDestroy, nil); err != nil {
		return err
	}
	return uc.Store.Run(ctx, func(repos repository.Repositories) error {
		if _, err := uc.load(ctx, repos, id); err != nil {
			return err
		}
		return repos.Products.Delete(ctx, id)
	})
}
