package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aidosk/taskvault/internal/auth"
	"github.com/aidosk/taskvault/internal/domain"
	"github.com/aidosk/taskvault/internal/repository"
)

// dummyHash is a bcrypt hash of a random string. When the email is unknown
// we still verify against it so a login probe costs the same either way.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

type AuthUsecase struct {
	users repository.UserRepository
	codec *auth.TokenCodec
}

func NewAuthUsecase(users repository.UserRepository, codec *auth.TokenCodec) *AuthUsecase {
	return &AuthUsecase{users: users, codec: codec}
}

// Signup hashes the password and stores the new account. The email is
// lowercased before storage: lookups are case-insensitive by policy.
func (u *AuthUsecase) Signup(ctx context.Context, name, email, password string) (*domain.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		// Fail closed. Plaintext is never stored as a fallback.
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := u.users.Create(ctx, name, normalizeEmail(email), hash)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, err
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Login verifies the credentials and returns a signed session token.
// Unknown email and wrong password collapse into ErrInvalidCredentials.
func (u *AuthUsecase) Login(ctx context.Context, email, password string) (string, error) {
	user, err := u.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			auth.VerifyPassword(password, dummyHash)
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return "", domain.ErrInvalidCredentials
	}

	token, err := u.codec.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

// GetProfile resolves the authenticated subject into the full user record.
// A subject whose account vanished after token issuance is ErrUserNotFound.
func (u *AuthUsecase) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

func (u *AuthUsecase) UpdateProfile(ctx context.Context, userID, name, email string) (*domain.User, error) {
	user, err := u.users.UpdateProfile(ctx, userID, name, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, err
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
