package http

import (
	"context"
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gelato-api/internal/application/dto"
	"github.com/jhoicas/gelato-api/internal/domain"
	"github.com/jhoicas/gelato-api/internal/domain/access"
)

// resourceUseCase contrato común de los casos de uso CRUD.
type resourceUseCase[P any, R any] interface {
	List(ctx context.Context, caller access.Caller, page dto.PageRequest) (*dto.Page[R], error)
	Get(ctx context.Context, caller access.Caller, id int64) (*R, error)
	Create(ctx context.Context, caller access.Caller, in P) (*R, error)
	Update(ctx context.Context, caller access.Caller, id int64, in P, partial bool) (*R, error)
	Delete(ctx context.Context, caller access.Caller, id int64) error
}

// crud implementa los seis endpoints estándar sobre un resourceUseCase.
type crud[P any, R any] struct {
	uc resourceUseCase[P, R]
}

func (h crud[P, R]) list(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		page = dto.PageRequest{}
	}
	out, err := h.uc.List(c.UserContext(), GetCaller(c), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toListResponse(c, out))
}

func (h crud[P, R]) get(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Get(c.UserContext(), GetCaller(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h crud[P, R]) create(c *fiber.Ctx) error {
	var in P
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), GetCaller(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h crud[P, R]) update(c *fiber.Ctx, partial bool) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err)
	}
	var in P
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), GetCaller(c), id, in, partial)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h crud[P, R]) delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), GetCaller(c), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// paramID lee :id; un id no numérico o no positivo no puede existir y responde 404.
func paramID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrNotFound
	}
	return id, nil
}

// toListResponse arma {"count","next","previous","results"} con enlaces absolutos limit/offset.
func toListResponse[R any](c *fiber.Ctx, page *dto.Page[R]) dto.ListResponse[R] {
	out := dto.ListResponse[R]{Count: page.Count, Results: page.Results}
	if page.Offset+page.Limit < page.Count {
		next := pageURL(c, page.Limit, page.Offset+page.Limit)
		out.Next = &next
	}
	if page.Offset > 0 {
		prev := page.Offset - page.Limit
		if prev < 0 {
			prev = 0
		}
		previous := pageURL(c, page.Limit, prev)
		out.Previous = &previous
	}
	return out
}

func pageURL(c *fiber.Ctx, limit, offset int) string {
	q := url.Values{}
	c.Request().URI().QueryArgs().VisitAll(func(k, v []byte) {
		q.Set(string(k), string(v))
	})
	q.Set("limit", strconv.Itoa(limit))
	if offset > 0 {
		q.Set("offset", strconv.Itoa(offset))
	} else {
		q.Del("offset")
	}
	return c.BaseURL() + c.Path() + "?" + q.Encode()
}
