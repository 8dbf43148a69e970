package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/bistro-gateway/internal/domain"
)

// CartRepository defines persistence access for cart items.
type CartRepository interface {
	FindByOwner(ctx context.Context, email string) ([]domain.CartItem, error)
	Insert(ctx context.Context, item *domain.CartItem) (*InsertResult, error)
	DeleteByID(ctx context.Context, id string) (*DeleteResult, error)
}

type cartRepository struct {
	pool *pgxpool.Pool
}

// NewCartRepository returns a Postgres-backed implementation.
func NewCartRepository(pool *pgxpool.Pool) CartRepository {
	return &cartRepository{pool: pool}
}

func (r *cartRepository) FindByOwner(ctx context.Context, email string) ([]domain.CartItem, error) {
	const query = `
        SELECT id, email, menu_item_id, name, image, price
        FROM cart_items WHERE email=$1 ORDER BY id`

	rows, err := r.pool.Query(ctx, query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.CartItem, 0)
	for rows.Next() {
		var item domain.CartItem
		if err := rows.Scan(
			&item.ID,
			&item.Email,
			&item.MenuItemID,
			&item.Name,
			&item.Image,
			&item.Price,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *cartRepository) Insert(ctx context.Context, item *domain.CartItem) (*InsertResult, error) {
	const query = `
        INSERT INTO cart_items (id, email, menu_item_id, name, image, price)
        VALUES ($1, $2, $3, $4, $5, $6)`

	item.ID = uuid.NewString()
	if _, err := r.pool.Exec(ctx, query,
		item.ID,
		item.Email,
		item.MenuItemID,
		item.Name,
		item.Image,
		item.Price,
	); err != nil {
		return nil, err
	}
	return &InsertResult{Acknowledged: true, InsertedID: item.ID}, nil
}

func (r *cartRepository) DeleteByID(ctx context.Context, id string) (*DeleteResult, error) {
	const query = `DELETE FROM cart_items WHERE id=$1`

	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return nil, err
	}
	return &DeleteResult{Acknowledged: true, DeletedCount: cmd.RowsAffected()}, nil
}
