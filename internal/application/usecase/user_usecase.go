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

// UserUseCase cuentas de usuario: registro abierto, acceso propio o de superusuario.
type UserUseCase struct {
	Deps
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(deps Deps) *UserUseCase {
	return &UserUseCase{Deps: deps}
}

// List lista usuarios (superusuario).
func (uc *UserUseCase) List(ctx context.Context, caller access.Caller, page dto.PageRequest) (*dto.Page[dto.UserResponse], error) {
	if err := authorize(caller, access.ResourceUser, access.ActionList, nil); err != nil {
		return nil, err
	}
	repo := uc.Store.Repositories().Users
	return listPage(page,
		func() (int, error) { return repo.Count(ctx) },
		func(limit, offset int) ([]*entity.User, error) { return repo.List(ctx, limit, offset) },
		ToUserResponse,
	)
}

// loadOwned carga el usuario (404 si no existe) y aplica la regla sobre el registro concreto.
func (uc *UserUseCase) loadOwned(ctx context.Context, repos repository.Repositories, caller access.Caller, action access.Action, id int64) (*entity.User, error) {
	u, err := repos.Users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	if err := authorize(caller, access.ResourceUser, action, &access.Target{OwnerID: u.ID}); err != nil {
		return nil, err
	}
	return u, nil
}

// Get obtiene un usuario (el propio o cualquiera si es superusuario).
func (uc *UserUseCase) Get(ctx context.Context, caller access.Caller, id int64) (*dto.UserResponse, error) {
	if err := authorize(caller, access.ResourceUser, access.ActionRetrieve, nil); err != nil {
		return nil, err
	}
	u, err := uc.loadOwned(ctx, uc.Store.Repositories(), caller, access.ActionRetrieve, id)
	if err != nil {
		return nil, err
	}
	out := ToUserResponse(u)
	return &out, nil
}

// Create registra un usuario (cualquiera). Solo un superusuario puede fijar is_staff/is_superuser/is_active.
func (uc *UserUseCase) Create(ctx context.Context, caller access.Caller, in dto.UserPayload) (*dto.UserResponse, error) {
	if err := authorize(caller, access.ResourceUser, access.ActionCreate, nil); err != nil {
		return nil, err
	}
	if err := uc.Validator.Validate(&in, validation.Full); err != nil {
		return nil, err
	}
	in, err := uc.Sanitizer.UserOnCreate(caller, in)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		Email:        entity.NormalizeEmail(*in.Email),
		PasswordHash: *in.Password,
		FirstName:    orDefault(in.FirstName, ""),
		LastName:     orDefault(in.LastName, ""),
		IsStaff:      orDefault(in.IsStaff, false),
		IsActive:     orDefault(in.IsActive, true),
		IsSuperuser:  orDefault(in.IsSuperuser, false),
		DateJoined:   uc.now(),
	}
	err = uc.Store.Run(ctx, func(repos repository.Repositories) error {
		return repos.Users.Create(ctx, u)
	})
	if err != nil {
		return nil, err
	}
	out := ToUserResponse(u)
	return &out, nil
}

// Update reemplaza (PUT) o modifica parcialmente (PATCH) un usuario (el propio o superusuario).
func (uc *UserUseCase) Update(ctx context.Context, caller access.Caller, id int64, in dto.UserPayload, partial bool) (*dto.UserResponse, error) {
	action, mode := writeMode(partial)
	if err := authorize(caller, access.ResourceUser, action, nil); err != nil {
		return nil, err
	}
	var u *entity.User
	err := uc.Store.Run(ctx, func(repos repository.Repositories) error {
		var err error
		if u, err = uc.loadOwned(ctx, repos, caller, action, id); err != nil {
			return err
		}
		if err := uc.Validator.Validate(&in, mode); err != nil {
			return err
		}
		if in, err = uc.Sanitizer.UserOnUpdate(caller, in); err != nil {
			return err
		}
		applyUser(u, in)
		return repos.Users.Update(ctx, u)
	})
	if err != nil {
		return nil, err
	}
	out := ToUserResponse(u)
	return &out, nil
}

func applyUser(u *entity.User, in dto.UserPayload) {
	if in.Email != nil {
		u.Email = entity.NormalizeEmail(*in.Email)
	}
	if in.Password != nil {
		u.PasswordHash = *in.Password
	}
	if in.FirstName != nil {
		u.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		u.LastName = *in.LastName
	}
	if in.IsStaff != nil {
		u.IsStaff = *in.IsStaff
	}
	if in.IsActive != nil {
		u.IsActive = *in.IsActive
	}
	if in.IsSuperuser != nil {
		u.IsSuperuser = *in.IsSuperuser
	}
}

// Delete elimina un usuario y en cascada sus productos, complementos y pedidos (superusuario).
func (uc *UserUseCase) Delete(ctx context.Context, caller access.Caller, id int64) error {
	if err := authorize(caller, access.ResourceUser, access.ActionDestroy, nil); err != nil {
		return err
	}
	return uc.Store.Run(ctx, func(repos repository.Repositories) error {
		u, err := repos.Users.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if u == nil {
			return domain.ErrNotFound
		}
		return repos.Users.Delete(ctx, id)
	})
}

// CreateSuperuser crea un superusuario fuera de la API (is_staff e is_superuser en true).
func (uc *UserUseCase) CreateSuperuser(ctx context.Context, in dto.SuperuserRequest) (*dto.UserResponse, error) {
	payload := dto.UserPayload{
		Email:       &in.Email,
		Password:    &in.Password,
		FirstName:   &in.FirstName,
		LastName:    &in.LastName,
		IsStaff:     ref(true),
		IsActive:    ref(true),
		IsSuperuser: ref(true),
	}
	return uc.Create(ctx, access.System(), payload)
}

func ref[T any](v T) *T { return &v }
