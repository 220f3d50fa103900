package usecase

import (
	"time"

	"github.com/jhoicas/gelato-api/internal/application/dto"
	"github.com/jhoicas/gelato-api/internal/application/sanitize"
	"github.com/jhoicas/gelato-api/internal/application/validation"
	"github.com/jhoicas/gelato-api/internal/domain"
	"github.com/jhoicas/gelato-api/internal/domain/access"
	"github.com/jhoicas/gelato-api/internal/domain/entity"
	"github.com/jhoicas/gelato-api/internal/domain/repository"
)

// Deps dependencias compartidas por los casos de uso de recursos.
type Deps struct {
	Store     repository.Store
	Validator *validation.Validator
	Sanitizer *sanitize.Sanitizer
	Now       func() time.Time // nil = time.Now
}

func (d Deps) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

// authorize traduce la decisión de acceso a errores de dominio.
func authorize(caller access.Caller, resource access.Resource, action access.Action, target *access.Target) error {
	switch access.Authorize(caller, resource, action, target) {
	case access.Allow:
		return nil
	case access.DenyUnauthenticated:
		return domain.ErrUnauthorized
	default:
		return domain.ErrForbidden
	}
}

func writeMode(partial bool) (access.Action, validation.Mode) {
	if partial {
		return access.ActionPartialUpdate, validation.Partial
	}
	return access.ActionUpdate, validation.Full
}

// listPage cuenta y lista con la paginación normalizada.
func listPage[E any, R any](
	page dto.PageRequest,
	count func() (int, error),
	list func(limit, offset int) ([]*E, error),
	toResponse func(*E) R,
) (*dto.Page[R], error) {
	page.DefaultPage()
	total, err := count()
	if err != nil {
		return nil, err
	}
	items, err := list(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.Page[R]{Count: total, Limit: page.Limit, Offset: page.Offset, Results: make([]R, 0, len(items))}
	for _, it := range items {
		out.Results = append(out.Results, toResponse(it))
	}
	return out, nil
}

func orDefault[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}

func toCategoryResponse(c *entity.Category) dto.CategoryResponse {
	return dto.CategoryResponse{ID: c.ID, Name: c.Name, Created: entity.FormatTimestamp(c.CreatedAt)}
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Price:          p.Price.StringFixed(2),
		Description:    p.Description,
		Image:          p.Image,
		MaxComplements: p.MaxComplements,
		InStock:        p.InStock,
		Category:       p.CategoryID,
		Created:        entity.FormatTimestamp(p.CreatedAt),
		Updated:        entity.FormatTimestamp(p.UpdatedAt),
	}
}

func toComplementResponse(c *entity.Complement) dto.ComplementResponse {
	categories := c.CategoryIDs
	if categories == nil {
		categories = []int64{}
	}
	return dto.ComplementResponse{
		ID:            c.ID,
		Name:          c.Name,
		IncreaseValue: c.IncreaseValue.StringFixed(2),
		Image:         c.Image,
		Categories:    categories,
		Created:       entity.FormatTimestamp(c.CreatedAt),
		Updated:       entity.FormatTimestamp(c.UpdatedAt),
	}
}

func toOrderResponse(o *entity.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:       o.ID,
		Comment:  o.Comment,
		Delivery: o.Delivery,
		Location: o.Location,
		Status:   o.Status,
		Active:   o.Active,
		Created:  entity.FormatTimestamp(o.CreatedAt),
	}
}

// ToUserResponse serializa un usuario (sin hash de contraseña).
func ToUserResponse(u *entity.User) dto.UserResponse {
	var lastLogin *string
	if u.LastLogin != nil {
		s := entity.FormatTimestamp(*u.LastLogin)
		lastLogin = &s
	}
	return dto.UserResponse{
		ID:            u.ID,
		Email:         u.Email,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		IsStaff:       u.IsStaff,
		IsActive:      u.IsActive,
		IsSuperuser:   u.IsSuperuser,
		LastLoginDate: lastLogin,
		Joined:        entity.FormatTimestamp(u.DateJoined),
	}
}
