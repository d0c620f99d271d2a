package contract

import (
	"context"

	"anichat-be/internal/entity"

	"github.com/google/uuid"
)

type ChatSessionRepository interface {
	Create(ctx context.Context, session *entity.ChatSession) error
	Update(ctx context.Context, session *entity.ChatSession) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindById(ctx context.Context, id uuid.UUID) (*entity.ChatSession, error)
	// FindAllByUserId returns the user's sessions newest first.
	FindAllByUserId(ctx context.Context, userId uuid.UUID) ([]*entity.ChatSession, error)
}
