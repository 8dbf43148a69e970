package http_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/bistro-gateway/internal/domain"
	"github.com/spec-kit/bistro-gateway/internal/repository"
)

type fakeUserRepo struct {
	users   []*domain.User
	inserts int
}

func (f *fakeUserRepo) FindAll(context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) Insert(_ context.Context, user *domain.User) (*repository.InsertResult, error) {
	f.inserts++
	user.ID = fmt.Sprintf("user-%d", len(f.users)+1)
	copied := *user
	f.users = append(f.users, &copied)
	return &repository.InsertResult{Acknowledged: true, InsertedID: user.ID}, nil
}

func (f *fakeUserRepo) SetAdminRole(_ context.Context, id string) (*repository.UpdateResult, error) {
	for _, u := range f.users {
		if u.ID == id {
			u.Role = domain.RoleAdmin
			return &repository.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return &repository.UpdateResult{Acknowledged: true}, nil
}

func (f *fakeUserRepo) DeleteByID(_ context.Context, id string) (*repository.DeleteResult, error) {
	for i, u := range f.users {
		if u.ID == id {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return &repository.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return &repository.DeleteResult{Acknowledged: true}, nil
}

type fakeMenuRepo struct {
	items []domain.MenuItem
}

func (f *fakeMenuRepo) FindAll(context.Context) ([]domain.MenuItem, error) {
	return append([]domain.MenuItem{}, f.items...), nil
}

func (f *fakeMenuRepo) Insert(_ context.Context, item *domain.MenuItem) (*repository.InsertResult, error) {
	item.ID = fmt.Sprintf("menu-%d", len(f.items)+1)
	f.items = append(f.items, *item)
	return &repository.InsertResult{Acknowledged: true, InsertedID: item.ID}, nil
}

func (f *fakeMenuRepo) DeleteByID(_ context.Context, id string) (*repository.DeleteResult, error) {
	for i, item := range f.items {
		if item.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return &repository.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return &repository.DeleteResult{Acknowledged: true}, nil
}

type fakeReviewRepo struct {
	reviews []domain.Review
}

func (f *fakeReviewRepo) FindAll(context.Context) ([]domain.Review, error) {
	return append([]domain.Review{}, f.reviews...), nil
}

type fakeCartRepo struct {
	items []domain.CartItem
}

func (f *fakeCartRepo) FindByOwner(_ context.Context, email string) ([]domain.CartItem, error) {
	out := make([]domain.CartItem, 0)
	for _, item := range f.items {
		if item.Email == email {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeCartRepo) Insert(_ context.Context, item *domain.CartItem) (*repository.InsertResult, error) {
	item.ID = fmt.Sprintf("cart-%d", len(f.items)+1)
	f.items = append(f.items, *item)
	return &repository.InsertResult{Acknowledged: true, InsertedID: item.ID}, nil
}

func (f *fakeCartRepo) DeleteByID(_ context.Context, id string) (*repository.DeleteResult, error) {
	for i, item := range f.items {
		if item.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return &repository.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return &repository.DeleteResult{Acknowledged: true}, nil
}

type fakeProvider struct {
	lastAmount int64
	rejectWith error
}

func (f *fakeProvider) CreateIntent(_ context.Context, amount int64) (string, error) {
	f.lastAmount = amount
	if f.rejectWith != nil {
		return "", f.rejectWith
	}
	return "cs_test_secret", nil
}

var errProviderRejected = errors.New("amount must be positive")
