package contract

import (
	"context"

	"anichat-be/internal/entity"

	"github.com/google/uuid"
)

// UserRepository is satisfied by both the durable (GORM) and the in-memory
// implementation. Absent rows are returned as (nil, nil).
type UserRepository interface {
	// Upsert creates the user when absent, otherwise updates the mutable
	// fields. Repeated calls with identical input are idempotent.
	Upsert(ctx context.Context, user *entity.User) error
	FindById(ctx context.Context, id uuid.UUID) (*entity.User, error)
}
