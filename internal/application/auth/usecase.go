package auth

import (
	"context"
	"time"

	"github.com/jhoicas/gelato-api/internal/application/dto"
	"github.com/jhoicas/gelato-api/internal/application/ports"
	"github.com/jhoicas/gelato-api/internal/application/usecase"
	"github.com/jhoicas/gelato-api/internal/domain"
	"github.com/jhoicas/gelato-api/internal/domain/access"
	"github.com/jhoicas/gelato-api/internal/domain/entity"
	"github.com/jhoicas/gelato-api/internal/domain/repository"
	"github.com/jhoicas/gelato-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase autenticación: login con email/password y resolución del llamador desde un token.
type AuthUseCase struct {
	store  repository.Store
	hasher ports.PasswordHasher
	jwtCfg JWTConfig
	now    func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(store repository.Store, hasher ports.PasswordHasher, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{store: store, hasher: hasher, jwtCfg: jwtCfg, now: time.Now}
}

// Login verifica email/password, registra last_login, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	user, err := uc.store.Repositories().Users.GetByEmail(ctx, entity.NormalizeEmail(in.Email))
	if err != nil {
		return nil, err
	}
	if user == nil || !uc.hasher.Verify(user.PasswordHash, in.Password) {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, domain.ErrInactiveUser
	}
	at := uc.now()
	err = uc.store.Run(ctx, func(repos repository.Repositories) error {
		return repos.Users.TouchLastLogin(ctx, user.ID, at)
	})
	if err != nil {
		return nil, err
	}
	user.LastLogin = &at

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  usecase.ToUserResponse(user),
	}, nil
}

// Authenticate resuelve el llamador de un token. El usuario se recarga en cada petición: un usuario
// eliminado o desactivado deja de autenticar aunque su token siga vigente.
func (uc *AuthUseCase) Authenticate(ctx context.Context, token string) (access.Caller, error) {
	userID, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return access.Anonymous(), domain.ErrUnauthorized
	}
	user, err := uc.store.Repositories().Users.GetByID(ctx, userID)
	if err != nil {
		return access.Anonymous(), err
	}
	if user == nil || !user.IsActive {
		return access.Anonymous(), domain.ErrUnauthorized
	}
	return access.Caller{
		UserID:        user.ID,
		Authenticated: true,
		IsStaff:       user.IsStaff,
		IsSuperuser:   user.IsSuperuser,
	}, nil
}
