package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"jokester/src/core/domain"
	"jokester/src/core/ports"
)

// Login form rules.
const (
	MinUsernameLength = 3
	MinPasswordLength = 6
	// MaxPasswordBytes is the most bcrypt will hash.
	MaxPasswordBytes = 72

	MsgBadCredentials   = "Username/Password combination is incorrect"
	MsgUsernameTaken    = "User with that username already exists"
	MsgUsernameTooShort = "Usernames must be at least 3 characters long"
	MsgPasswordTooShort = "Passwords must be at least 6 characters long"
	MsgPasswordTooLong  = "Passwords must be at most 72 bytes long"
)

// AuthService handles login and registration.
type AuthService struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	log    *slog.Logger
}

func NewAuthService(users ports.UserRepository, hasher ports.PasswordHasher, log *slog.Logger) *AuthService {
	return &AuthService{users: users, hasher: hasher, log: log}
}

// Login returns the user when username and password match.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if err := validateCredentials(username, password); err != nil {
		return nil, err
	}

	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.NewValidationError("", MsgBadCredentials)
		}
		return nil, err
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		s.log.Warn("login rejected", "username", username)
		return nil, domain.NewValidationError("", MsgBadCredentials)
	}
	return user, nil
}

// Register creates a new account.
// Surrounding whitespace is trimmed from the username before it is stored.
func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if err := validateCredentials(username, password); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	user, err := s.users.CreateUser(ctx, username, hash)
	if err != nil {
		if domain.IsConflict(err) {
			return nil, domain.NewConflictError("username", MsgUsernameTaken)
		}
		return nil, err
	}

	s.log.Info("user registered", "user_id", user.ID)
	return user, nil
}

func validateCredentials(username, password string) error {
	if domain.TextLength(username) < MinUsernameLength {
		return domain.NewValidationError("username", MsgUsernameTooShort)
	}
	if domain.TextLength(password) < MinPasswordLength {
		return domain.NewValidationError("password", MsgPasswordTooShort)
	}
	if len(password) > MaxPasswordBytes {
		return domain.NewValidationError("password", MsgPasswordTooLong)
	}
	return nil
}
