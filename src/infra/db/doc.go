// Package db provides database connection management and schema migrations.
//
// This package is responsible for:
//   - PostgreSQL connection pool initialization (pgx)
//   - Connection health checks
//   - Applying the embedded goose migrations on startup
//
// Example usage:
//
//	pg, err := db.New(ctx, cfg.Database, log)
//	if err != nil {
//	    return err
//	}
//	defer pg.Close()
//	if err := pg.Migrate(ctx); err != nil {
//	    return err
//	}
package db
