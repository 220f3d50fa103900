package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"

	"github.com/jhoicas/gelato-api/internal/application/auth"
	"github.com/jhoicas/gelato-api/internal/application/usecase"
	"github.com/jhoicas/gelato-api/internal/domain/access"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC   *usecase.CategoryUseCase
	ProductUC    *usecase.ProductUseCase
	ComplementUC *usecase.ComplementUseCase
	OrderUC      *usecase.OrderUseCase
	UserUC       *usecase.UserUseCase
	AuthUC       *auth.AuthUseCase
	// LoginLimiter opcional; sin él /auth/token no se limita.
	LoginLimiter LoginLimiter
	// Metrics opcional; sin él no se expone /metrics.
	Metrics *Metrics
	Logger  zerolog.Logger
	AppName string
}

// NewApp crea la aplicación Fiber con el middleware global y todas las rutas. De cfg se respetan
// los tiempos de espera y demás opciones; AppName y ErrorHandler se fijan aquí.
func NewApp(deps RouterDeps, cfg fiber.Config) *fiber.App {
	cfg.AppName = deps.AppName
	cfg.ErrorHandler = ErrorHandler
	app := fiber.New(cfg)
	if deps.Metrics != nil {
		app.Use(deps.Metrics.Middleware())
	}
	app.Use(RequestID())
	app.Use(RequestLogger(deps.Logger))
	app.Use(recover.New())
	Router(app, deps)
	return app
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})
	if deps.Metrics != nil {
		app.Get("/metrics", deps.Metrics.Handler())
	}

	api := app.Group("/api/v1")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	if deps.LoginLimiter != nil {
		api.Post("/auth/token", LoginRateLimit(deps.LoginLimiter), authHandler.Token)
	} else {
		api.Post("/auth/token", authHandler.Token)
	}

	// El resto resuelve el llamador (anónimo si no hay token) y aplica la regla de acceso por acción.
	v1 := api.Group("", AuthMiddleware(deps.AuthUC))

	categories := NewCategoryHandler(deps.CategoryUC)
	resource(v1, "/categories", access.ResourceCategory, endpoints{
		list: categories.List, get: categories.Get, create: categories.Create,
		update: categories.Update, patch: categories.Patch, delete: categories.Delete,
	})

	products := NewProductHandler(deps.ProductUC)
	v1.Get("/products/:id/complements", RequirePermission(access.ResourceProduct, access.ActionComplements), products.Complements)
	resource(v1, "/products", access.ResourceProduct, endpoints{
		list: products.List, get: products.Get, create: products.Create,
		update: products.Update, patch: products.Patch, delete: products.Delete,
	})

	complements := NewComplementHandler(deps.ComplementUC)
	resource(v1, "/complements", access.ResourceComplement, endpoints{
		list: complements.List, get: complements.Get, create: complements.Create,
		update: complements.Update, patch: complements.Patch, delete: complements.Delete,
	})

	orders := NewOrderHandler(deps.OrderUC)
	resource(v1, "/orders", access.ResourceOrder, endpoints{
		list: orders.List, get: orders.Get, create: orders.Create,
		update: orders.Update, patch: orders.Patch, delete: orders.Delete,
	})

	users := NewUserHandler(deps.UserUC)
	resource(v1, "/users", access.ResourceUser, endpoints{
		list: users.List, get: users.Get, create: users.Create,
		update: users.Update, patch: users.Patch, delete: users.Delete,
	})
}

type endpoints struct {
	list, get, create, update, patch, delete fiber.Handler
}

func resource(r fiber.Router, path string, res access.Resource, h endpoints) {
	g := r.Group(path)
	g.Get("/", RequirePermission(res, access.ActionList), h.list)
	g.Post("/", RequirePermission(res, access.ActionCreate), h.create)
	g.Get("/:id", RequirePermission(res, access.ActionRetrieve), h.get)
	g.Put("/:id", RequirePermission(res, access.ActionUpdate), h.update)
	g.Patch("/:id", RequirePermission(res, access.ActionPartialUpdate), h.patch)
	g.Delete("/:id", RequirePermission(res, access.ActionDestroy), h.delete)
}
