// Package repo contains the storage adapters for the ports in src/core/ports.
//
// PostgresRepository is the production adapter (pgx). MemoryRepository keeps
// everything in process memory and backs APP_STORAGE=memory and the HTTP tests.
// Both translate missing rows into domain.ErrNotFound and duplicate usernames
// into domain.ErrConflict.
package repo
