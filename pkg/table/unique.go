package table

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

// RowQuerier is the slice of a pgx connection the uniqueness probe needs.
// *pgxpool.Pool and *pgx.Conn both satisfy it.
type RowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PGUniqueChecker probes a PostgreSQL database for uniqueness collisions
// with a single read-only EXISTS query per constraint group.
type PGUniqueChecker struct {
	db RowQuerier
}

// NewPGUniqueChecker wraps a pgx querier.
func NewPGUniqueChecker(db RowQuerier) *PGUniqueChecker {
	return &PGUniqueChecker{db: db}
}

// Exists reports whether a row other than the excluded one carries the
// given column values.
func (c *PGUniqueChecker) Exists(ctx context.Context, table string, columns []string, values []any, excludeColumn string, excludeValue any) (bool, error) {
	if len(columns) == 0 || len(columns) != len(values) {
		return false, ErrBadUniqueProbe
	}

	query, args := buildExistsQuery(table, columns, values, excludeColumn, excludeValue)

	var exists bool
	if err := c.db.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, errors.Join(ErrUniqueProbeFailed, err)
	}
	return exists, nil
}

func buildExistsQuery(table string, columns []string, values []any, excludeColumn string, excludeValue any) (string, []any) {
	conditions := make([]string, 0, len(columns)+1)
	args := make([]any, 0, len(values)+1)
	for i, col := range columns {
		conditions = append(conditions, fmt.Sprintf("%s = $%d", pgx.Identifier{col}.Sanitize(), i+1))
		args = append(args, values[i])
	}
	if excludeColumn != "" {
		conditions = append(conditions, fmt.Sprintf("%s <> $%d", pgx.Identifier{excludeColumn}.Sanitize(), len(args)+1))
		args = append(args, excludeValue)
	}

	query := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE %s)",
		pgx.Identifier{table}.Sanitize(), strings.Join(conditions, " AND "))
	return query, args
}
