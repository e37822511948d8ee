package domain

import (
	"time"

	"github.com/google/uuid"
)

// Joke is a joke written by a jokester.
type Joke struct {
	ID         uuid.UUID
	JokesterID uuid.UUID
	Name       string
	Content    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewJoke is the input for creating a joke. JokesterID must be a resolved identity.
type NewJoke struct {
	JokesterID uuid.UUID
	Name       string
	Content    string
}

// User is an account that can log in and author jokes.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
