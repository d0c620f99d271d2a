package unitofwork

import (
	"context"

	"anichat-be/internal/repository/contract"
)

// UnitOfWork groups repository access with an optional transaction scope.
// The in-memory storage variant satisfies the same interface with no-op
// transaction control.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ChatSessionRepository() contract.ChatSessionRepository
	ChatMessageRepository() contract.ChatMessageRepository
}
