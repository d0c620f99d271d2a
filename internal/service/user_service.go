package service

import (
	"context"

	"anichat-be/internal/apperr"
	"anichat-be/internal/constant"
	"anichat-be/internal/dto"
	"anichat-be/internal/entity"
	"anichat-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// IUserService exposes the fixed no-auth identity. The default user is
// created lazily on first access; the upsert is idempotent.
type IUserService interface {
	GetDefaultUser(ctx context.Context) (*dto.UserResponse, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewUserService(uowFactory unitofwork.RepositoryFactory) IUserService {
	return &userService{
		uowFactory: uowFactory,
	}
}

func (s *userService) GetDefaultUser(ctx context.Context) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := ensureDefaultUser(ctx, uow)
	if err != nil {
		return nil, err
	}

	return &dto.UserResponse{
		Id:        user.Id,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}, nil
}

// ensureDefaultUser upserts the fixed deployment user and returns it. Shared
// with the chat service so every entrypoint can rely on the user existing.
func ensureDefaultUser(ctx context.Context, uow unitofwork.UnitOfWork) (*entity.User, error) {
	user := &entity.User{
		Id:        uuid.MustParse(constant.DefaultUserId),
		Email:     constant.DefaultUserEmail,
		FirstName: constant.DefaultUserFirstName,
		LastName:  constant.DefaultUserLastName,
	}
	if err := uow.UserRepository().Upsert(ctx, user); err != nil {
		return nil, apperr.NewInternal("failed to ensure default user", err)
	}
	return user, nil
}
