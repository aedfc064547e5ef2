package usecases

import (
	"context"

	"testertalk/internal/application/user/dto"
	"testertalk/internal/domain/user"
	"testertalk/internal/shared/errors"
	"testertalk/internal/shared/logger"
)

type GetCurrentUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetCurrentUserUseCase(userRepo user.Repository, logger logger.Interface) *GetCurrentUserUseCase {
	return &GetCurrentUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetCurrentUserUseCase) Execute(ctx context.Context, userID uint) (*dto.UserDTO, error) {
	if userID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	account, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := dto.ToUserDTO(account)
	return &result, nil
}
