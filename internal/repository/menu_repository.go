package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/bistro-gateway/internal/domain"
)

// MenuRepository defines persistence access for catalog items.
type MenuRepository interface {
	FindAll(ctx context.Context) ([]domain.MenuItem, error)
	Insert(ctx context.Context, item *domain.MenuItem) (*InsertResult, error)
	DeleteByID(ctx context.Context, id string) (*DeleteResult, error)
}

type menuRepository struct {
	pool *pgxpool.Pool
}

// NewMenuRepository returns a Postgres-backed implementation.
func NewMenuRepository(pool *pgxpool.Pool) MenuRepository {
	return &menuRepository{pool: pool}
}

func (r *menuRepository) FindAll(ctx context.Context) ([]domain.MenuItem, error) {
	const query = `
        SELECT id, name, recipe, image, category, price
        FROM menu_items ORDER BY category, name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.MenuItem, 0)
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Recipe,
			&item.Image,
			&item.Category,
			&item.Price,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *menuRepository) Insert(ctx context.Context, item *domain.MenuItem) (*InsertResult, error) {
	const query = `
        INSERT INTO menu_items (id, name, recipe, image, category, price)
        VALUES ($1, $2, $3, $4, $5, $6)`

	item.ID = uuid.NewString()
	if _, err := r.pool.Exec(ctx, query,
		item.ID,
		item.Name,
		item.Recipe,
		item.Image,
		item.Category,
		item.Price,
	); err != nil {
		return nil, err
	}
	return &InsertResult{Acknowledged: true, InsertedID: item.ID}, nil
}

func (r *menuRepository) DeleteByID(ctx context.Context, id string) (*DeleteResult, error) {
	const query = `DELETE FROM menu_items WHERE id=$1`

	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return nil, err
	}
	return &DeleteResult{Acknowledged: true, DeletedCount: cmd.RowsAffected()}, nil
}
