package pg

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

// Querier is the subset of *pgxpool.Pool and pgx.Tx the lookup needs.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ColumnLookup reports a value as taken when some row holds it in a column.
type ColumnLookup struct {
	db    Querier
	query string
}

// NewColumnLookup builds a lookup for target, written as "table.column" or
// "schema.table.column". Identifiers are quoted, never interpolated raw.
func NewColumnLookup(db Querier, target string) (*ColumnLookup, error) {
	parts := strings.Split(target, ".")
	if len(parts) < 2 || len(parts) > 3 {
		return nil, ErrInvalidTarget
	}
	for _, p := range parts {
		if p == "" {
			return nil, ErrInvalidTarget
		}
	}

	table := pgx.Identifier(parts[:len(parts)-1]).Sanitize()
	column := pgx.Identifier{parts[len(parts)-1]}.Sanitize()

	return &ColumnLookup{
		db:    db,
		query: fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)", table, column),
	}, nil
}

// Query returns the SQL the lookup runs.
func (l *ColumnLookup) Query() string {
	return l.query
}

func (l *ColumnLookup) Exists(ctx context.Context, value any) (bool, error) {
	var exists bool
	if err := l.db.QueryRow(ctx, l.query, value).Scan(&exists); err != nil {
		return false, errors.Join(ErrLookupFailed, err)
	}
	return exists, nil
}
