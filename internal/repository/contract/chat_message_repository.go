package contract

import (
	"context"

	"anichat-be/internal/entity"

	"github.com/google/uuid"
)

type ChatMessageRepository interface {
	// Create persists a message. Implementations reject roles outside
	// {user, assistant}; messages are never updated after creation.
	Create(ctx context.Context, message *entity.ChatMessage) error
	// FindAllBySessionId returns the session's messages in chronological order.
	FindAllBySessionId(ctx context.Context, sessionId uuid.UUID) ([]*entity.ChatMessage, error)
	DeleteBySessionId(ctx context.Context, sessionId uuid.UUID) error
}
