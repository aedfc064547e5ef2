package usecases

import (
	"context"

	"testertalk/internal/application/user/dto"
	"testertalk/internal/domain/user"
	"testertalk/internal/shared/errors"
	"testertalk/internal/shared/logger"
)

type LoginCommand struct {
	Username string
	Password string
}

type LoginResult struct {
	User        dto.UserDTO
	AccessToken string
	ExpiresIn   int64
}

type LoginUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if len(cmd.Username) == 0 || len(cmd.Password) == 0 {
		return nil, errors.NewValidationError("username and password are required")
	}

	// A missing account and a wrong password produce the same error so the
	// response does not reveal which usernames exist.
	account, err := uc.userRepo.GetByUsername(ctx, cmd.Username)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewUnauthorizedError("invalid username or password")
		}
		uc.logger.Errorw("failed to load user", "username", cmd.Username, "error", err)
		return nil, err
	}

	if err := uc.hasher.Verify(cmd.Password, account.PasswordHash()); err != nil {
		return nil, errors.NewUnauthorizedError("invalid username or password")
	}

	token, expiresIn, err := uc.tokens.Generate(account.ID(), account.Username(), account.Role())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "user_id", account.ID(), "error", err)
		return nil, errors.NewInternalError("failed to issue token")
	}

	uc.logger.Infow("user logged in", "user_id", account.ID(), "username", account.Username())

	return &LoginResult{
		User:        dto.ToUserDTO(account),
		AccessToken: token,
		ExpiresIn:   expiresIn,
	}, nil
}
