// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
)

// Builder produces statements with Postgres $N placeholders
var Builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Query runs a built SELECT. The caller must close the returned rows.
func Query(ctx context.Context, conn *sql.DB, q sq.SelectBuilder) (*sql.Rows, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	return conn.QueryContext(ctx, query, args...)
}

// Exec runs a built INSERT, UPDATE or DELETE
func Exec(ctx context.Context, conn *sql.DB, q sq.Sqlizer) (sql.Result, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	return conn.ExecContext(ctx, query, args...)
}

// QueryRow runs a built statement expected to return at most one row.
// A build error leaves the query empty, so it surfaces from Scan.
func QueryRow(ctx context.Context, conn *sql.DB, q sq.Sqlizer) *sql.Row {
	query, args, _ := q.ToSql()
	return conn.QueryRowContext(ctx, query, args...)
}
