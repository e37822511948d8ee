package repo

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"jokester/src/core/domain"
	"jokester/src/core/ports"
	"jokester/src/infra/db"
)

var (
	_ ports.JokeRepository = (*PostgresRepository)(nil)
	_ ports.UserRepository = (*PostgresRepository)(nil)
)

// PostgresRepository implements the joke and user repositories using pgx.
type PostgresRepository struct {
	pg   *db.Postgres
	pool *pgxpool.Pool
	log  *slog.Logger
}

// NewPostgresRepository constructs a repository backed by Postgres.
func NewPostgresRepository(pg *db.Postgres, log *slog.Logger) *PostgresRepository {
	return &PostgresRepository{
		pg:   pg,
		pool: pg.Pool,
		log:  log,
	}
}

func (r *PostgresRepository) Health(ctx context.Context) error {
	return r.pg.Health(ctx)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return false
}

// Jokes

func (r *PostgresRepository) CreateJoke(ctx context.Context, in domain.NewJoke) (*domain.Joke, error) {
	const q = `
		INSERT INTO jokes (jokester_id, name, content)
		VALUES ($1, $2, $3)
		RETURNING joke_id, jokester_id, name, content, created_at, updated_at
	`
	var j domain.Joke
	err := r.pool.QueryRow(ctx, q, in.JokesterID, in.Name, in.Content).Scan(
		&j.ID, &j.JokesterID, &j.Name, &j.Content, &j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, domain.NewNotFoundError("jokester")
		}
		return nil, err
	}
	return &j, nil
}

func (r *PostgresRepository) GetJoke(ctx context.Context, id uuid.UUID) (*domain.Joke, error) {
	const q = `
		SELECT joke_id, jokester_id, name, content, created_at, updated_at
		FROM jokes
		WHERE joke_id = $1
	`
	var j domain.Joke
	if err := r.pool.QueryRow(ctx, q, id).Scan(
		&j.ID, &j.JokesterID, &j.Name, &j.Content, &j.CreatedAt, &j.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("joke")
		}
		return nil, err
	}
	return &j, nil
}

// Users

func (r *PostgresRepository) CreateUser(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	const q = `
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
		RETURNING user_id, username, password_hash, created_at, updated_at
	`
	var u domain.User
	err := r.pool.QueryRow(ctx, q, username, passwordHash).Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.NewConflictError("username", "username already taken")
		}
		return nil, err
	}
	return &u, nil
}

func (r *PostgresRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	const q = `
		SELECT user_id, username, password_hash, created_at, updated_at
		FROM users
		WHERE username = $1
	`
	return r.scanUser(r.pool.QueryRow(ctx, q, username))
}

func (r *PostgresRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	const q = `
		SELECT user_id, username, password_hash, created_at, updated_at
		FROM users
		WHERE user_id = $1
	`
	return r.scanUser(r.pool.QueryRow(ctx, q, id))
}

func (r *PostgresRepository) scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("user")
		}
		return nil, err
	}
	return &u, nil
}
