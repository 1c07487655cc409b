package repository

import (
	"context"

	"festiva/internal/model"
	"festiva/internal/store"
)

// UserRepository defines user persistence operations.
type UserRepository interface {
	GetAll(ctx context.Context) []model.User
	FindByID(ctx context.Context, id string) (model.User, bool)
	FindByEmail(ctx context.Context, email string) (model.User, bool)
	Upsert(ctx context.Context, user model.User) error
	DeleteByID(ctx context.Context, id string) error
}

type userRepository struct {
	col *store.Collection[model.User]
}

// NewUserRepository creates a user repository over the users collection.
func NewUserRepository(kv store.KV) UserRepository {
	return &userRepository{
		col: store.NewCollection(kv, store.KeyUsers, func(u model.User) string { return u.ID }),
	}
}

func (r *userRepository) GetAll(ctx context.Context) []model.User {
	return r.col.GetAll(ctx)
}

func (r *userRepository) FindByID(ctx context.Context, id string) (model.User, bool) {
	return r.col.FindByID(ctx, id)
}

// FindByEmail scans the collection for an exact email match. Uniqueness is
// only enforced at signup, so the first match wins.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (model.User, bool) {
	for _, u := range r.col.GetAll(ctx) {
		if u.Email == email {
			return u, true
		}
	}
	return model.User{}, false
}

func (r *userRepository) Upsert(ctx context.Context, user model.User) error {
	return r.col.Upsert(ctx, user)
}

func (r *userRepository) DeleteByID(ctx context.Context, id string) error {
	return r.col.DeleteByID(ctx, id)
}
