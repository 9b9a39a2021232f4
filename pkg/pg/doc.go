// Package pg connects to PostgreSQL with pgx/v5 and backs uniqueness rules
// with a column lookup.
//
//   - Config is populated from environment variables via
//     github.com/caarlos0/env and controls pool limits and retries.
//   - Connect opens a *pgxpool.Pool, retrying with linear back-off.
//   - ColumnLookup runs `SELECT EXISTS (...)` against one column and satisfies
//     validator.Lookup.
//   - Healthcheck returns a closure for readiness probes.
//
// # Usage
//
//	pool, err := pg.Connect(ctx, cfg, logger)
//	if err != nil {
//	    return err
//	}
//	defer pool.Close()
//
//	emails, err := pg.NewColumnLookup(pool, "users.email")
//	if err != nil {
//	    return err
//	}
//	rule := validator.Chain(validator.Email(), validator.Unique(emails))
//
// # Errors
//
// Errors from pgx are joined with the package sentinels (ErrLookupFailed,
// ErrFailedToOpenDBConnection, ...) so both can be matched with errors.Is.
package pg
