package memory

import (
	"context"
	"fmt"
	"time"

	"anichat-be/internal/entity"
	"anichat-be/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

type ChatMessageRepository struct {
	store *Store
}

func NewChatMessageRepository(store *Store) contract.ChatMessageRepository {
	return &ChatMessageRepository{store: store}
}

func (r *ChatMessageRepository) Create(ctx context.Context, message *entity.ChatMessage) error {
	if !message.Role.Valid() {
		return fmt.Errorf("invalid message role %q", message.Role)
	}
	if message.Id == uuid.Nil {
		message.Id = uuid.New()
	}
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}

	key := message.ChatSessionId.String()

	// Append under the store mutex: go-cache guards individual Set/Get calls
	// but not the read-modify-write on the slice.
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var msgs []entity.ChatMessage
	if x, found := r.store.messages.Get(key); found {
		msgs = x.([]entity.ChatMessage)
	}
	msgs = append(msgs, *message)
	r.store.messages.Set(key, msgs, cache.NoExpiration)
	return nil
}

func (r *ChatMessageRepository) FindAllBySessionId(ctx context.Context, sessionId uuid.UUID) ([]*entity.ChatMessage, error) {
	x, found := r.store.messages.Get(sessionId.String())
	if !found {
		return []*entity.ChatMessage{}, nil
	}
	msgs := x.([]entity.ChatMessage)
	result := make([]*entity.ChatMessage, len(msgs))
	for i := range msgs {
		copied := msgs[i]
		result[i] = &copied
	}
	return result, nil
}

func (r *ChatMessageRepository) DeleteBySessionId(ctx context.Context, sessionId uuid.UUID) error {
	r.store.messages.Delete(sessionId.String())
	return nil
}
