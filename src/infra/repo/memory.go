package repo

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"jokester/src/core/domain"
	"jokester/src/core/ports"
)

var (
	_ ports.JokeRepository = (*MemoryRepository)(nil)
	_ ports.UserRepository = (*MemoryRepository)(nil)
)

// MemoryRepository keeps jokes and users in process memory.
// Selected with APP_STORAGE=memory; contents are lost on restart.
type MemoryRepository struct {
	mu     sync.RWMutex
	jokes  map[uuid.UUID]domain.Joke
	users  map[uuid.UUID]domain.User
	byName map[string]uuid.UUID
	now    func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		jokes:  make(map[uuid.UUID]domain.Joke),
		users:  make(map[uuid.UUID]domain.User),
		byName: make(map[string]uuid.UUID),
		now:    time.Now,
	}
}

func (r *MemoryRepository) Health(context.Context) error { return nil }

func (r *MemoryRepository) CreateJoke(_ context.Context, in domain.NewJoke) (*domain.Joke, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[in.JokesterID]; !ok {
		return nil, domain.NewNotFoundError("jokester")
	}

	now := r.now()
	j := domain.Joke{
		ID:         uuid.New(),
		JokesterID: in.JokesterID,
		Name:       in.Name,
		Content:    in.Content,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	r.jokes[j.ID] = j
	return &j, nil
}

func (r *MemoryRepository) GetJoke(_ context.Context, id uuid.UUID) (*domain.Joke, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	j, ok := r.jokes[id]
	if !ok {
		return nil, domain.NewNotFoundError("joke")
	}
	return &j, nil
}

// JokeCount returns the number of stored jokes.
func (r *MemoryRepository) JokeCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.jokes)
}

func (r *MemoryRepository) CreateUser(_ context.Context, username, passwordHash string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[username]; ok {
		return nil, domain.NewConflictError("username", "username already taken")
	}

	now := r.now()
	u := domain.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	r.users[u.ID] = u
	r.byName[username] = u.ID
	return &u, nil
}

func (r *MemoryRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	id, ok := r.byName[username]
	r.mu.RUnlock()
	if !ok {
		return nil, domain.NewNotFoundError("user")
	}
	return r.GetUserByID(ctx, id)
}

func (r *MemoryRepository) GetUserByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, domain.NewNotFoundError("user")
	}
	return &u, nil
}
