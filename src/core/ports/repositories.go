// Package ports defines interfaces (ports) that connect core domain to infrastructure.
// These interfaces follow the ports and adapters (hexagonal) architecture pattern.
//
// Ports are defined here in the core layer, while implementations (adapters)
// live in src/infra. This keeps the core free of pgx, bcrypt and HTTP.
package ports

import (
	"context"

	"github.com/google/uuid"

	"jokester/src/core/domain"
)

// Repository is the base interface for all repositories.
type Repository interface {
	// Health checks if the underlying storage is reachable.
	Health(ctx context.Context) error
}

// JokeRepository persists jokes.
type JokeRepository interface {
	Repository

	// CreateJoke inserts a joke and returns it with its assigned ID.
	CreateJoke(ctx context.Context, in domain.NewJoke) (*domain.Joke, error)

	// GetJoke returns domain.ErrNotFound when no joke has the ID.
	GetJoke(ctx context.Context, id uuid.UUID) (*domain.Joke, error)
}

// UserRepository persists user accounts.
type UserRepository interface {
	Repository

	// CreateUser returns a conflict error when the username is taken.
	CreateUser(ctx context.Context, username, passwordHash string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}
