package memory

import (
	"context"
	"time"

	"anichat-be/internal/entity"
	"anichat-be/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) contract.UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) Upsert(ctx context.Context, user *entity.User) error {
	key := user.Id.String()
	now := time.Now()
	if existing, found := r.store.users.Get(key); found {
		prev := existing.(entity.User)
		user.CreatedAt = prev.CreatedAt
	} else {
		user.CreatedAt = now
	}
	user.UpdatedAt = now
	r.store.users.Set(key, *user, cache.NoExpiration)
	return nil
}

func (r *UserRepository) FindById(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if x, found := r.store.users.Get(id.String()); found {
		u := x.(entity.User)
		return &u, nil
	}
	return nil, nil
}
