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

// CategoryUseCase CRUD de categorías.
type CategoryUseCase struct {
	Deps
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(deps Deps) *CategoryUseCase {
	return &CategoryUseCase{Deps: deps}
}

// List lista categorías (cualquiera).
func (uc *CategoryUseCase) List(ctx context.Context, caller access.Caller, page dto.PageRequest) (*dto.Page[dto.CategoryResponse], error) {
	if err := authorize(caller, access.ResourceCategory, access.ActionList, nil); err != nil {
		return nil, err
	}
	repo := uc.Store.Repositories().Categories
	return listPage(page,
		func() (int, error) { return repo.Count(ctx) },
		func(limit, offset int) ([]*entity.Category, error) { return repo.List(ctx, limit, offset) },
		toCategoryResponse,
	)
}

// Get obtiene una categoría.
func (uc *CategoryUseCase) Get(ctx context.Context, caller access.Caller, id int64) (*dto.CategoryResponse, error) {
	if err := authorize(caller, access.ResourceCategory, access.ActionRetrieve, nil); err != nil {
		return nil, err
	}
	c, err := uc.Store.Repositories().Categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	out := toCategoryResponse(c)
	return &out, nil
}

// Create crea una categoría (staff+).
func (uc *CategoryUseCase) Create(ctx context.Context, caller access.Caller, in dto.CategoryPayload) (*dto.CategoryResponse, error) {
	if err := authorize(caller, access.ResourceCategory, access.ActionCreate, nil); err != nil {
		return nil, err
	}
	if err := uc.Validator.Validate(&in, validation.Full); err != nil {
		return nil, err
	}
	c := &entity.Category{Name: *in.Name, CreatedAt: uc.now()}
	err := uc.Store.Run(ctx, func(repos repository.Repositories) error {
		return repos.Categories.Create(ctx, c)
	})
	if err != nil {
		return nil, err
	}
	out := toCategoryResponse(c)
	return &out, nil
}

// Update reemplaza (PUT) o modifica parcialmente (PATCH) una categoría (staff+).
func (uc *CategoryUseCase) Update(ctx context.Context, caller access.Caller, id int64, in dto.CategoryPayload, partial bool) (*dto.CategoryResponse, error) {
	action, mode := writeMode(partial)
	if err := authorize(caller, access.ResourceCategory, action, nil); err != nil {
		return nil, err
	}
	var c *entity.Category
	err := uc.Store.Run(ctx, func(repos repository.Repositories) error {
		var err error
		c, err = repos.Categories.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if c == nil {
			return domain.ErrNotFound
		}
		if err := uc.Validator.Validate(&in, mode); err != nil {
			return err
		}
		if in.Name != nil {
			c.Name = *in.Name
		}
		return repos.Categories.Update(ctx, c)
	})
	if err != nil {
		return nil, err
	}
	out := toCategoryResponse(c)
	return &out, nil
}

// Delete elimina una categoría y en cascada sus productos (staff+).
func (uc *CategoryUseCase) Delete(ctx context.Context, caller access.Caller, id int64) error {
	if err := authorize(caller, access.ResourceCategory, access.ActionDestroy, nil); err != nil {
		return err
	}
	return uc.Store.Run(ctx, func(repos repository.Repositories) error {
		c, err := repos.Categories.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if c == nil {
			return domain.ErrNotFound
		}
		return repos.Categories.Delete(ctx, id)
	})
}
