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

// OrderUseCase pedidos: los crea cualquier usuario autenticado, los gestiona el staff.
type OrderUseCase struct {
	Deps
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(deps Deps) *OrderUseCase {
	return &OrderUseCase{Deps: deps}
}

// List lista pedidos (staff+).
func (uc *OrderUseCase) List(ctx context.Context, caller access.Caller, page dto.PageRequest) (*dto.Page[dto.OrderResponse], error) {
	if err := authorize(caller, access.ResourceOrder, access.ActionList, nil); err != nil {
		return nil, err
	}
	repo := uc.Store.Repositories().Orders
	return listPage(page,
		func() (int, error) { return repo.Count(ctx) },
		func(limit, offset int) ([]*entity.Order, error) { return repo.List(ctx, limit, offset) },
		toOrderResponse,
	)
}

func (uc *OrderUseCase) load(ctx context.Context, repos repository.Repositories, id int64) (*entity.Order, error) {
	o, err := repos.Orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	return o, nil
}

// Get obtiene un pedido (staff+).
func (uc *OrderUseCase) Get(ctx context.Context, caller access.Caller, id int64) (*dto.OrderResponse, error) {
	if err := authorize(caller, access.ResourceOrder, access.ActionRetrieve, nil); err != nil {
		return nil, err
	}
	o, err := uc.load(ctx, uc.Store.Repositories(), id)
	if err != nil {
		return nil, err
	}
	out := toOrderResponse(o)
	return &out, nil
}

// Create registra un pedido del llamador con estado "Pedido solicitado".
func (uc *OrderUseCase) Create(ctx context.Context, caller access.Caller, in dto.OrderPayload) (*dto.OrderResponse, error) {
	if err := authorize(caller, access.ResourceOrder, access.ActionCreate, nil); err != nil {
		return nil, err
	}
	if err := uc.Validator.Validate(&in, validation.Full); err != nil {
		return nil, err
	}
	in = uc.Sanitizer.OrderOnCreate(caller, in)
	o := &entity.Order{
		UserID:    *in.User,
		Comment:   *in.Comment,
		Delivery:  *in.Delivery,
		Location:  *in.Location,
		Status:    *in.Status,
		Active:    orDefault(in.Active, true),
		CreatedAt: uc.now(),
	}
	err := uc.Store.Run(ctx, func(repos repository.Repositories) error {
		return repos.Orders.Create(ctx, o)
	})
	if err != nil {
		return nil, err
	}
	out := toOrderResponse(o)
	return &out, nil
}

// Update reemplaza (PUT) o modifica parcialmente (PATCH) un pedido (staff+). El dueño no cambia.
func (uc *OrderUseCase) Update(ctx context.Context, caller access.Caller, id int64, in dto.OrderPayload, partial bool) (*dto.OrderResponse, error) {
	action, mode := writeMode(partial)
	if err := authorize(caller, access.ResourceOrder, action, nil); err != nil {
		return nil, err
	}
	var o *entity.Order
	err := uc.Store.Run(ctx, func(repos repository.Repositories) error {
		var err error
		if o, err = uc.load(ctx, repos, id); err != nil {
			return err
		}
		if err := uc.Validator.Validate(&in, mode); err != nil {
			return err
		}
		if in.Comment != nil {
			o.Comment = *in.Comment
		}
		if in.Delivery != nil {
			o.Delivery = *in.Delivery
		}
		if in.Location != nil {
			o.Location = *in.Location
		}
		if in.Status != nil {
			o.Status = *in.Status
		}
		if in.Active != nil {
			o.Active = *in.Active
		}
		return repos.Orders.Update(ctx, o)
	})
	if err != nil {
		return nil, err
	}
	out := toOrderResponse(o)
	return &out, nil
}

// Delete elimina un pedido (superusuario).
func (uc *OrderUseCase) Delete(ctx context.Context, caller access.Caller, id int64) error {
	if err := authorize(caller, access.ResourceOrder, access.ActionDestroy, nil); err != nil {
		return err
	}
	return uc.Store.Run(ctx, func(repos repository.Repositories) error {
		if _, err := uc.load(ctx, repos, id); err != nil {
			return err
		}
		return repos.Orders.Delete(ctx, id)
	})
}
