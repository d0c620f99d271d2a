package memory

import (
	"context"

	"anichat-be/internal/repository/contract"
	"anichat-be/internal/repository/unitofwork"
)

// UnitOfWork over the in-memory store. There is no transaction support;
// Begin/Commit/Rollback are no-ops so the service layer can treat both
// storage variants identically.
type UnitOfWork struct {
	store *Store
}

func (u *UnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *UnitOfWork) Commit() error                   { return nil }
func (u *UnitOfWork) Rollback() error                 { return nil }

func (u *UnitOfWork) UserRepository() contract.UserRepository {
	return NewUserRepository(u.store)
}

func (u *UnitOfWork) ChatSessionRepository() contract.ChatSessionRepository {
	return NewChatSessionRepository(u.store)
}

func (u *UnitOfWork) ChatMessageRepository() contract.ChatMessageRepository {
	return NewChatMessageRepository(u.store)
}

type RepositoryFactory struct {
	store *Store
}

func NewRepositoryFactory() unitofwork.RepositoryFactory {
	return &RepositoryFactory{store: NewStore()}
}

func (f *RepositoryFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &UnitOfWork{store: f.store}
}
