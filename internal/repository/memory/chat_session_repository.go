package memory

import (
	"context"
	"sort"
	"time"

	"anichat-be/internal/entity"
	"anichat-be/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

type ChatSessionRepository struct {
	store *Store
}

func NewChatSessionRepository(store *Store) contract.ChatSessionRepository {
	return &ChatSessionRepository{store: store}
}

func (r *ChatSessionRepository) Create(ctx context.Context, session *entity.ChatSession) error {
	if session.Id == uuid.Nil {
		session.Id = uuid.New()
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}
	r.store.sessions.Set(session.Id.String(), *session, cache.NoExpiration)
	return nil
}

func (r *ChatSessionRepository) Update(ctx context.Context, session *entity.ChatSession) error {
	now := time.Now()
	session.UpdatedAt = &now
	r.store.sessions.Set(session.Id.String(), *session, cache.NoExpiration)
	return nil
}

func (r *ChatSessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.sessions.Delete(id.String())
	return nil
}

func (r *ChatSessionRepository) FindById(ctx context.Context, id uuid.UUID) (*entity.ChatSession, error) {
	if x, found := r.store.sessions.Get(id.String()); found {
		s := x.(entity.ChatSession)
		return &s, nil
	}
	return nil, nil
}

func (r *ChatSessionRepository) FindAllByUserId(ctx context.Context, userId uuid.UUID) ([]*entity.ChatSession, error) {
	items := r.store.sessions.Items()
	sessions := make([]*entity.ChatSession, 0, len(items))
	for _, item := range items {
		s := item.Object.(entity.ChatSession)
		if s.UserId == userId {
			copied := s
			sessions = append(sessions, &copied)
		}
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.After(sessions[j].CreatedAt)
	})
	return sessions, nil
}
