package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/bistro-gateway/internal/domain"
)

// UserRepository defines persistence access for stored identities.
type UserRepository interface {
	FindAll(ctx context.Context) ([]domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Insert(ctx context.Context, user *domain.User) (*InsertResult, error)
	SetAdminRole(ctx context.Context, id string) (*UpdateResult, error)
	DeleteByID(ctx context.Context, id string) (*DeleteResult, error)
}

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &userRepository{pool: pool}
}

func (r *userRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	const query = `
        SELECT id, name, email, photo_url, role, created_at
        FROM users ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.Photo,
			&user.Role,
			&user.CreatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `
        SELECT id, name, email, photo_url, role, created_at
        FROM users WHERE email=$1`

	var user domain.User
	if err := r.pool.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Photo,
		&user.Role,
		&user.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Insert(ctx context.Context, user *domain.User) (*InsertResult, error) {
	const query = `
        INSERT INTO users (id, name, email, photo_url, role)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING created_at`

	user.ID = uuid.NewString()
	if err := r.pool.QueryRow(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.Photo,
		user.Role,
	).Scan(&user.CreatedAt); err != nil {
		return nil, err
	}
	return &InsertResult{Acknowledged: true, InsertedID: user.ID}, nil
}

func (r *userRepository) SetAdminRole(ctx context.Context, id string) (*UpdateResult, error) {
	const query = `UPDATE users SET role=$1 WHERE id=$2`

	cmd, err := r.pool.Exec(ctx, query, domain.RoleAdmin, id)
	if err != nil {
		return nil, err
	}
	return &UpdateResult{
		Acknowledged:  true,
		MatchedCount:  cmd.RowsAffected(),
		ModifiedCount: cmd.RowsAffected(),
	}, nil
}

func (r *userRepository) DeleteByID(ctx context.Context, id string) (*DeleteResult, error) {
	const query = `DELETE FROM users WHERE id=$1`

	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return nil, err
	}
	return &DeleteResult{Acknowledged: true, DeletedCount: cmd.RowsAffected()}, nil
}
