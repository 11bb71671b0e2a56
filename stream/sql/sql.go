// Package sql provides stage adapters for database operations using
// database/sql: a query result loaded into a sequence-kind stage, and
// a stage written back through a prepared statement. It keeps the
// stream core free of I/O while letting pipelines start and end at a
// database.
package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lguimbarda/min-stream/stream/core"
)

// Scanner is a function that scans a row into a value.
type Scanner[T any] func(*sql.Rows) (T, error)

// Query executes the query and loads every row into a sequence-kind
// stage, in result-set order. The scanner is called once per row. The
// whole result set is materialized before Query returns, matching the
// eager stage model; the returned stage owns its storage and is
// independent of the database afterwards.
func Query[T any](ctx context.Context, db *sql.DB, query string, scan Scanner[T], args ...any) (core.Stage[T], error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return core.Stage[T]{}, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	var values []T
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return core.Stage[T]{}, fmt.Errorf("scan row %d: %w", len(values), err)
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return core.Stage[T]{}, fmt.Errorf("iterate rows: %w", err)
	}
	return core.New(values, nil), nil
}

// QueryRow executes a query expecting a single row and returns a stage
// holding that one value, or an empty stage when the query matches no
// rows.
func QueryRow[T any](ctx context.Context, db *sql.DB, query string, scan func(*sql.Row) (T, error), args ...any) (core.Stage[T], error) {
	row := db.QueryRowContext(ctx, query, args...)
	v, err := scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return core.New[T](nil, nil), nil
	}
	if err != nil {
		return core.Stage[T]{}, fmt.Errorf("query row: %w", err)
	}
	return core.New([]T{v}, nil), nil
}

// Binder turns a stage element into the argument list for one
// execution of an insert statement.
type Binder[T any] func(T) []any

// InsertEach writes every element of the stage through the prepared
// statement, in range order, one execution per element. It returns the
// number of elements written; on error, elements before the failing
// one have already been written (run inside a transaction if that
// matters).
func InsertEach[T any](ctx context.Context, db *sql.DB, stmt string, bind Binder[T], s core.Stage[T]) (int64, error) {
	prepared, err := db.PrepareContext(ctx, stmt)
	if err != nil {
		return 0, fmt.Errorf("prepare: %w", err)
	}
	defer prepared.Close()

	var written int64
	for _, v := range s.Values() {
		if _, err := prepared.ExecContext(ctx, bind(v)...); err != nil {
			return written, fmt.Errorf("insert element %d: %w", written, err)
		}
		written++
	}
	return written, nil
}

// ExecResult contains the result of an exec operation.
type ExecResult struct {
	LastInsertId int64
	RowsAffected int64
}

// Exec executes a single statement and reports its result.
func Exec(ctx context.Context, db *sql.DB, query string, args ...any) (ExecResult, error) {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return ExecResult{}, fmt.Errorf("exec: %w", err)
	}
	lastID, _ := result.LastInsertId()
	rowsAffected, _ := result.RowsAffected()
	return ExecResult{LastInsertId: lastID, RowsAffected: rowsAffected}, nil
}
