package usecases

import (
	"context"

	"testertalk/internal/application/user/dto"
)

// PasswordHasher hashes and verifies login passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// TokenIssuer mints access tokens for authenticated users.
type TokenIssuer interface {
	Generate(userID uint, username, role string) (token string, expiresIn int64, err error)
}

type RegisterExecutor interface {
	Execute(ctx context.Context, cmd RegisterCommand) (*dto.UserDTO, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

type GetCurrentUserExecutor interface {
	Execute(ctx context.Context, userID uint) (*dto.UserDTO, error)
}
