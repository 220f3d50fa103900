package usecase

import (
	"context"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gelato-api/internal/application/dto"
	"github.com/jhoicas/gelato-api/internal/application/validation"
	"github.com/jhoicas/gelato-api/internal/domain"
	"github.com/jhoicas/gelato-api/internal/domain/access"
	"github.com/jhoicas/gelato-api/internal/domain/entity"
	"github.com/jhoicas/gelato-api/internal/domain/repository"
)

// ComplementUseCase CRUD de complementos.
type ComplementUseCase struct {
	Deps
}

// NewComplementUseCase construye el caso de uso.
func NewComplementUseCase(deps Deps) *ComplementUseCase {
	return &ComplementUseCase{Deps: deps}
}

// List lista complementos (cualquiera).
func (uc *ComplementUseCase) List(ctx context.Context, caller access.Caller, page dto.PageRequest) (*dto.Page[dto.ComplementResponse], error) {
	if err := authorize(caller, access.ResourceComplement, access.ActionList, nil); err != nil {
		return nil, err
	}
	repo := uc.Store.Repositories().Complements
	return listPage(page,
		func() (int, error) { return repo.Count(ctx) },
		func(limit, offset int) ([]*entity.Complement, error) { return repo.List(ctx, limit, offset) },
		toComplementResponse,
	)
}

func (uc *ComplementUseCase) load(ctx context.Context, repos repository.Repositories, id int64) (*entity.Complement, error) {
	c, err := repos.Complements.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

// Get obtiene un complemento.
func (uc *ComplementUseCase) Get(ctx context.Context, caller access.Caller, id int64) (*dto.ComplementResponse, error) {
	if err := authorize(caller, access.ResourceComplement, access.ActionRetrieve, nil); err != nil {
		return nil, err
	}
	c, err := uc.load(ctx, uc.Store.Repositories(), id)
	if err != nil {
		return nil, err
	}
	out := toComplementResponse(c)
	return &out, nil
}

// Create crea un complemento (staff+). increase_value es 0.00 si se omite.
func (uc *ComplementUseCase) Create(ctx context.Context, caller access.Caller, in dto.ComplementPayload) (*dto.ComplementResponse, error) {
	if err := authorize(caller, access.ResourceComplement, access.ActionCreate, nil); err != nil {
		return nil, err
	}
	if err := uc.Validator.Validate(&in, validation.Full); err != nil {
		return nil, err
	}
	in = uc.Sanitizer.ComplementOnCreate(caller, in)
	now := uc.now()
	c := &entity.Complement{
		Name:          *in.Name,
		IncreaseValue: orDefault(in.IncreaseValue, decimal.Zero),
		Image:         in.Image,
		CategoryIDs:   categorySet(*in.Categories),
		Authorship:    entity.Authorship{CreatedBy: *in.CreatedBy},
		Item:          entity.Item{InStock: true, CreatedAt: now, UpdatedAt: now},
	}
	err := uc.Store.Run(ctx, func(repos repository.Repositories) error {
		return repos.Complements.Create(ctx, c)
	})
	if err != nil {
		return nil, err
	}
	out := toComplementResponse(c)
	return &out, nil
}

// Update reemplaza (PUT) o modifica parcialmente (PATCH) un complemento (staff+).
func (uc *ComplementUseCase) Update(ctx context.Context, caller access.Caller, id int64, in dto.ComplementPayload, partial bool) (*dto.ComplementResponse, error) {
	action, mode := writeMode(partial)
	if err := authorize(caller, access.ResourceComplement, action, nil); err != nil {
		return nil, err
	}
	var c *entity.Complement
	err := uc.Store.Run(ctx, func(repos repository.Repositories) error {
		var err error
		if c, err = uc.load(ctx, repos, id); err != nil {
			return err
		}
		if err := uc.Validator.Validate(&in, mode); err != nil {
			return err
		}
		in = uc.Sanitizer.ComplementOnUpdate(caller, in)
		if in.Name != nil {
			c.Name = *in.Name
		}
		if in.IncreaseValue != nil {
			c.IncreaseValue = *in.IncreaseValue
		}
		if in.Image != nil {
			c.Image = in.Image
		}
		if in.Categories != nil {
			c.CategoryIDs = categorySet(*in.Categories)
		}
		c.UpdatedBy = in.UpdatedBy
		c.UpdatedAt = uc.now()
		return repos.Complements.Update(ctx, c)
	})
	if err != nil {
		return nil, err
	}
	out := toComplementResponse(c)
	return &out, nil
}

// Delete elimina un complemento (staff+).
func (uc *ComplementUseCase) Delete(ctx context.Context, caller access.Caller, id int64) error {
	if err := authorize(caller, access.ResourceComplement, access.ActionDestroy, nil); err != nil {
		return err
	}
	return uc.Store.Run(ctx, func(repos repository.Repositories) error {
		if _, err := uc.load(ctx, repos, id); err != nil {
			return err
		}
		return repos.Complements.Delete(ctx, id)
	})
}

// categorySet ordena y elimina repetidos: un complemento pertenece a un conjunto de categorías.
func categorySet(ids []int64) []int64 {
	out := slices.Clone(ids)
	slices.Sort(out)
	return slices.Compact(out)
}
