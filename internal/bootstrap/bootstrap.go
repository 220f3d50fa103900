// Package bootstrap arma el almacén y los casos de uso a partir de la configuración. Lo comparten
// cmd/api y cmd/gelatoctl.
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/gelato-api/internal/application/auth"
	"github.com/jhoicas/gelato-api/internal/application/sanitize"
	"github.com/jhoicas/gelato-api/internal/application/usecase"
	"github.com/jhoicas/gelato-api/internal/application/validation"
	"github.com/jhoicas/gelato-api/internal/domain/repository"
	"github.com/jhoicas/gelato-api/internal/infrastructure/crypto"
	"github.com/jhoicas/gelato-api/internal/infrastructure/memory"
	"github.com/jhoicas/gelato-api/internal/infrastructure/postgres"
	"github.com/jhoicas/gelato-api/pkg/config"
	"github.com/jhoicas/gelato-api/pkg/logger"
)

// UseCases casos de uso de la aplicación.
type UseCases struct {
	Categories  *usecase.CategoryUseCase
	Products    *usecase.ProductUseCase
	Complements *usecase.ComplementUseCase
	Orders      *usecase.OrderUseCase
	Users       *usecase.UserUseCase
	Auth        *auth.AuthUseCase
}

// OpenStore abre el almacén configurado. Con postgres aplica las migraciones si DB_AUTO_MIGRATE está
// activo. closeFn libera el pool (no hace nada con memory).
func OpenStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (store repository.Store, closeFn func(), err error) {
	switch cfg.App.StoreDriver {
	case config.StoreDriverMemory:
		log.Warn().Msg("almacén en memoria: los datos se pierden al reiniciar")
		return memory.NewStore(), func() {}, nil
	case config.StoreDriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		if cfg.DB.AutoMigrate {
			applied, err := postgres.Migrate(ctx, pool)
			if err != nil {
				pool.Close()
				return nil, nil, fmt.Errorf("migraciones: %w", err)
			}
			log.Info().Int("aplicadas", len(applied)).Msg("migraciones al día")
		}
		return postgres.NewTxRunner(pool), pool.Close, nil
	default:
		return nil, nil, fmt.Errorf("STORE_DRIVER desconocido: %q", cfg.App.StoreDriver)
	}
}

// NewUseCases construye los casos de uso sobre store.
func NewUseCases(store repository.Store, cfg *config.Config) UseCases {
	hasher := crypto.NewBcryptHasher(0)
	deps := usecase.Deps{
		Store:     store,
		Validator: validation.New(),
		Sanitizer: sanitize.New(hasher),
		Now:       func() time.Time { return time.Now().UTC() },
	}
	return UseCases{
		Categories:  usecase.NewCategoryUseCase(deps),
		Products:    usecase.NewProductUseCase(deps),
		Complements: usecase.NewComplementUseCase(deps),
		Orders:      usecase.NewOrderUseCase(deps),
		Users:       usecase.NewUserUseCase(deps),
		Auth: auth.NewAuthUseCase(store, hasher, auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		}),
	}
}
