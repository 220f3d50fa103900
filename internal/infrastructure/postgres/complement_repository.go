package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/gelato-api/internal/domain"
	"github.com/jhoicas/gelato-api/internal/domain/entity"
	"github.com/jhoicas/gelato-api/internal/domain/repository"
)

var _ repository.ComplementRepository = (*ComplementRepo)(nil)

const complementSelect = `
	SELECT c.id, c.name, c.increase_value, c.image, c.in_stock, c.created_by, c.updated_by, c.created_at,
		c.updated_at,
		COALESCE((SELECT array_agg(cc.category_id ORDER BY cc.category_id)
			FROM complement_categories cc WHERE cc.complement_id = c.id), '{}')
	FROM complements c`

// ComplementRepo implementación del puerto ComplementRepository sobre PostgreSQL. Las categorías viven
// en complement_categories; Create y Update deben ejecutarse dentro de TxRunner.Run.
type ComplementRepo struct {
	q Querier
}

// NewComplementRepository construye el adaptador de persistencia para complementos.
func NewComplementRepository(q Querier) *ComplementRepo {
	return &ComplementRepo{q: q}
}

func scanComplement(row pgx.Row) (*entity.Complement, error) {
	var c entity.Complement
	err := row.Scan(
		&c.ID, &c.Name, &c.IncreaseValue, &c.Image, &c.InStock, &c.CreatedBy, &c.UpdatedBy, &c.CreatedAt,
		&c.UpdatedAt, &c.CategoryIDs,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ComplementRepo) collect(ctx context.Context, op, query string, args ...any) ([]*entity.Complement, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	var list []*entity.Complement
	for rows.Next() {
		c, err := scanComplement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan complement: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *ComplementRepo) linkCategories(ctx context.Context, c *entity.Complement) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM complement_categories WHERE complement_id = $1`, c.ID); err != nil {
		return fmt.Errorf("unlink categories: %w", err)
	}
	for _, categoryID := range c.CategoryIDs {
		_, err := r.q.Exec(ctx,
			`INSERT INTO complement_categories (complement_id, category_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			c.ID, categoryID,
		)
		if err != nil {
			return wrap("link category", err)
		}
	}
	return nil
}

// Create persiste un complemento y sus categorías.
func (r *ComplementRepo) Create(ctx context.Context, c *entity.Complement) error {
	query := `
		INSERT INTO complements (name, increase_value, image, in_stock, created_by, updated_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		c.Name, c.IncreaseValue, c.Image, c.InStock, c.CreatedBy, c.UpdatedBy, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
	if err != nil {
		return wrap("insert complement", err)
	}
	return r.linkCategories(ctx, c)
}

// GetByID obtiene un complemento por ID; nil si no existe.
func (r *ComplementRepo) GetByID(ctx context.Context, id int64) (*entity.Complement, error) {
	c, err := scanComplement(r.q.QueryRow(ctx, complementSelect+` WHERE c.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get complement: %w", err)
	}
	return c, nil
}

// Update actualiza los campos y reemplaza el conjunto de categorías.
func (r *ComplementRepo) Update(ctx context.Context, c *entity.Complement) error {
	query := `
		UPDATE complements SET name = $2, increase_value = $3, image = $4, in_stock = $5, updated_by = $6,
			updated_at = $7
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, c.ID, c.Name, c.IncreaseValue, c.Image, c.InStock, c.UpdatedBy, c.UpdatedAt)
	if err != nil {
		return wrap("update complement", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return r.linkCategories(ctx, c)
}

// List lista complementos por id ascendente.
func (r *ComplementRepo) List(ctx context.Context, limit, offset int) ([]*entity.Complement, error) {
	return r.collect(ctx, "list complements", complementSelect+` ORDER BY c.id LIMIT $1 OFFSET $2`, limitArg(limit), offset)
}

// ListByCategory complementos vinculados a la categoría, por id ascendente.
func (r *ComplementRepo) ListByCategory(ctx context.Context, categoryID int64) ([]*entity.Complement, error) {
	return r.collect(ctx, "list complements by category", complementSelect+`
		WHERE EXISTS (SELECT 1 FROM complement_categories x WHERE x.complement_id = c.id AND x.category_id = $1)
		ORDER BY c.id`, categoryID)
}

// Count total de complementos.
func (r *ComplementRepo) Count(ctx context.Context) (int, error) {
	return count(ctx, r.q, "complements")
}

// Delete elimina un complemento.
func (r *ComplementRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM complements WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete complement: %w", err)
	}
	return nil
}
