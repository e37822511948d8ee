package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"jokester/src/core/domain"
	"jokester/src/core/ports"
)

// JokeService handles creating and reading jokes.
type JokeService struct {
	repo ports.JokeRepository
	log  *slog.Logger
}

func NewJokeService(repo ports.JokeRepository, log *slog.Logger) *JokeService {
	return &JokeService{repo: repo, log: log}
}

// CreateOutcome is the result of a joke submission: Rejected or Created.
type CreateOutcome interface {
	createOutcome()
}

// Rejected means nothing was stored; Data is rendered back to the form.
type Rejected struct {
	Data domain.ActionData
}

// Created carries the stored joke.
type Created struct {
	Joke *domain.Joke
}

func (Rejected) createOutcome() {}
func (Created) createOutcome()  {}

// Create validates a submission and stores it for jokesterID.
// Storage failures are returned as errors, never as a Rejected outcome.
func (s *JokeService) Create(ctx context.Context, jokesterID uuid.UUID, sub domain.Submission) (CreateOutcome, error) {
	if jokesterID == uuid.Nil {
		return nil, domain.NewUnauthorizedError("jokester identity required")
	}

	fields, ok := sub.Fields()
	if !ok {
		return Rejected{Data: domain.FormError{Message: domain.MsgFormNotSubmitted}}, nil
	}

	if errs := domain.ValidateJoke(fields); errs.Any() {
		return Rejected{Data: domain.FieldErrors{Errors: errs, Fields: fields}}, nil
	}

	joke, err := s.repo.CreateJoke(ctx, domain.NewJoke{
		JokesterID: jokesterID,
		Name:       fields.Name,
		Content:    fields.Content,
	})
	if err != nil {
		return nil, fmt.Errorf("create joke: %w", err)
	}

	s.log.Info("joke created",
		"joke_id", joke.ID,
		"jokester_id", jokesterID,
	)
	return Created{Joke: joke}, nil
}

// Get returns a single joke.
func (s *JokeService) Get(ctx context.Context, id uuid.UUID) (*domain.Joke, error) {
	return s.repo.GetJoke(ctx, id)
}
