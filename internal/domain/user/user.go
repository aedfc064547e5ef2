package user

import (
	"fmt"
	"strings"
	"time"

	"testertalk/internal/shared/biztime"
	"testertalk/internal/shared/constants"
)

// User is a tester account. Roles are flat: regular users report and
// discuss issues, admins additionally manage bucket reviewers and bulk
// operations.
type User struct {
	id           uint
	username     string
	email        string
	passwordHash string
	role         string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(username, email, passwordHash string) (*User, error) {
	username = strings.TrimSpace(username)
	if len(username) < 3 {
		return nil, fmt.Errorf("username must be at least 3 characters")
	}
	if len(email) == 0 || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email address")
	}
	if len(passwordHash) == 0 {
		return nil, fmt.Errorf("password hash is required")
	}

	now := biztime.NowUTC()
	return &User{
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		role:         constants.RoleUser,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(
	id uint,
	username, email, passwordHash, role string,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if len(username) == 0 {
		return nil, fmt.Errorf("username is required")
	}

	return &User{
		id:           id,
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Username() string {
	return u.username
}

func (u *User) Email() string {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Role() string {
	return u.role
}

func (u *User) IsAdmin() bool {
	return u.role == constants.RoleAdmin
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) PromoteToAdmin() {
	u.role = constants.RoleAdmin
	u.updatedAt = biztime.NowUTC()
}
