package service

import (
	"context"
	"strings"
	"time"

	"anichat-be/internal/apperr"
	"anichat-be/internal/constant"
	"anichat-be/internal/dto"
	"anichat-be/internal/entity"
	"anichat-be/internal/pkg/logger"
	"anichat-be/internal/repository/unitofwork"
	"anichat-be/pkg/chatbot"
	"anichat-be/pkg/llm"

	"github.com/google/uuid"
)

// IChatService defines the chat session service interface
type IChatService interface {
	CreateSession(ctx context.Context, request *dto.CreateSessionRequest) (*dto.CreateSessionResponse, error)
	GetAllSessions(ctx context.Context) ([]*dto.SessionResponse, error)
	GetChatHistory(ctx context.Context, sessionId uuid.UUID) ([]*dto.MessageResponse, error)
	SendMessage(ctx context.Context, sessionId uuid.UUID, request *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
	DeleteSession(ctx context.Context, sessionId uuid.UUID) error
}

// chatService orchestrates session lifecycle and message persistence. It is
// stateless across calls; all state lives behind the repository factory.
type chatService struct {
	uowFactory unitofwork.RepositoryFactory
	assistant  *chatbot.Assistant
	log        logger.ILogger
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	assistant *chatbot.Assistant,
	log logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory: uowFactory,
		assistant:  assistant,
		log:        log,
	}
}

// CreateSession ensures the default user exists, then creates a new session.
func (cs *chatService) CreateSession(ctx context.Context, request *dto.CreateSessionRequest) (*dto.CreateSessionResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	user, err := ensureDefaultUser(ctx, uow)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(request.Title)
	if title == "" {
		title = constant.ChatSessionDefaultTitle
	}

	session := entity.ChatSession{
		Id:        uuid.New(),
		UserId:    user.Id,
		Title:     title,
		CreatedAt: time.Now(),
	}

	if err := uow.ChatSessionRepository().Create(ctx, &session); err != nil {
		return nil, apperr.NewInternal("failed to create chat session", err)
	}

	return &dto.CreateSessionResponse{
		Id:        session.Id,
		Title:     session.Title,
		CreatedAt: session.CreatedAt,
	}, nil
}

// GetAllSessions retrieves the default user's sessions, newest first.
func (cs *chatService) GetAllSessions(ctx context.Context) ([]*dto.SessionResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	sessions, err := uow.ChatSessionRepository().FindAllByUserId(ctx, uuid.MustParse(constant.DefaultUserId))
	if err != nil {
		return nil, apperr.NewInternal("failed to list chat sessions", err)
	}

	response := make([]*dto.SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		response = append(response, &dto.SessionResponse{
			Id:        s.Id,
			Title:     s.Title,
			CreatedAt: s.CreatedAt,
			UpdatedAt: s.UpdatedAt,
		})
	}

	return response, nil
}

// GetChatHistory retrieves a session's messages in chronological order. A
// session read with zero messages is seeded with exactly one assistant
// greeting; the seed is persisted so a second read returns the same message.
func (cs *chatService) GetChatHistory(ctx context.Context, sessionId uuid.UUID) ([]*dto.MessageResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.ChatSessionRepository().FindById(ctx, sessionId)
	if err != nil {
		return nil, apperr.NewInternal("failed to load chat session", err)
	}
	if session == nil {
		return nil, apperr.NewNotFound("session not found")
	}

	messages, err := uow.ChatMessageRepository().FindAllBySessionId(ctx, sessionId)
	if err != nil {
		return nil, apperr.NewInternal("failed to load chat history", err)
	}

	if len(messages) == 0 {
		greeting := entity.ChatMessage{
			Id:            uuid.New(),
			ChatSessionId: sessionId,
			Role:          entity.MessageRoleAssistant,
			Content:       constant.ChatGreetingMessage,
			CreatedAt:     time.Now(),
		}
		if err := uow.ChatMessageRepository().Create(ctx, &greeting); err != nil {
			return nil, apperr.NewInternal("failed to seed greeting message", err)
		}
		messages = append(messages, &greeting)
	}

	response := make([]*dto.MessageResponse, 0, len(messages))
	for _, msg := range messages {
		response = append(response, &dto.MessageResponse{
			Id:        msg.Id,
			Role:      string(msg.Role),
			Content:   msg.Content,
			CreatedAt: msg.CreatedAt,
		})
	}

	return response, nil
}

// SendMessage persists the user turn, asks the assistant for a reply and
// persists whatever string comes back. Upstream failures surface as normal
// assistant turns, never as errors.
func (cs *chatService) SendMessage(ctx context.Context, sessionId uuid.UUID, request *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	content := strings.TrimSpace(request.Content)
	if content == "" {
		return nil, apperr.NewValidation("content must not be empty")
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.ChatSessionRepository().FindById(ctx, sessionId)
	if err != nil {
		return nil, apperr.NewInternal("failed to load chat session", err)
	}
	if session == nil {
		return nil, apperr.NewNotFound("session not found")
	}

	// Persist the user turn first so it survives an upstream failure.
	userMessage := entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: sessionId,
		Role:          entity.MessageRoleUser,
		Content:       content,
		CreatedAt:     time.Now(),
	}
	if err := uow.ChatMessageRepository().Create(ctx, &userMessage); err != nil {
		return nil, apperr.NewInternal("failed to persist user message", err)
	}

	// First user turn names the session.
	if session.Title == constant.ChatSessionDefaultTitle {
		session.Title = deriveSessionTitle(content)
		if err := uow.ChatSessionRepository().Update(ctx, session); err != nil {
			cs.log.Warn("chat", "Failed to update session title", map[string]interface{}{"session_id": sessionId.String()})
		}
	}

	history, err := uow.ChatMessageRepository().FindAllBySessionId(ctx, sessionId)
	if err != nil {
		return nil, apperr.NewInternal("failed to load chat history", err)
	}

	reply := cs.assistant.Reply(ctx, toProviderMessages(history))

	assistantMessage := entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: sessionId,
		Role:          entity.MessageRoleAssistant,
		Content:       reply,
		CreatedAt:     time.Now(),
	}
	if err := uow.ChatMessageRepository().Create(ctx, &assistantMessage); err != nil {
		return nil, apperr.NewInternal("failed to persist assistant message", err)
	}

	return &dto.SendMessageResponse{
		Message:   reply,
		SessionId: sessionId,
	}, nil
}

// DeleteSession removes a session and all of its messages.
func (cs *chatService) DeleteSession(ctx context.Context, sessionId uuid.UUID) error {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.ChatSessionRepository().FindById(ctx, sessionId)
	if err != nil {
		return apperr.NewInternal("failed to load chat session", err)
	}
	if session == nil {
		return apperr.NewNotFound("session not found")
	}

	if err := uow.Begin(ctx); err != nil {
		return apperr.NewInternal("failed to start transaction", err)
	}
	defer uow.Rollback()

	if err := uow.ChatMessageRepository().DeleteBySessionId(ctx, sessionId); err != nil {
		return apperr.NewInternal("failed to delete session messages", err)
	}
	if err := uow.ChatSessionRepository().Delete(ctx, sessionId); err != nil {
		return apperr.NewInternal("failed to delete chat session", err)
	}

	if err := uow.Commit(); err != nil {
		return apperr.NewInternal("failed to commit session deletion", err)
	}
	return nil
}

func toProviderMessages(messages []*entity.ChatMessage) []llm.Message {
	history := make([]llm.Message, 0, len(messages))
	for _, msg := range messages {
		history = append(history, llm.Message{
			Role:    string(msg.Role),
			Content: msg.Content,
		})
	}
	return history
}

func deriveSessionTitle(content string) string {
	runes := []rune(content)
	if len(runes) > constant.ChatSessionTitleMaxLen {
		return string(runes[:constant.ChatSessionTitleMaxLen]) + "..."
	}
	return content
}
