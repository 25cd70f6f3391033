// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
)

// UniqueViolation is the Postgres SQLSTATE for a unique constraint failure
const UniqueViolation = "23505"

// Open returns a pooled connection to PostgreSQL.
// The pool is shared by every handler; callers never open their own connections.
func Open(databaseURL string, maxOpen int) (*sql.DB, error) {
	conn, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	conn.SetMaxOpenConns(maxOpen)
	conn.SetMaxIdleConns(maxOpen / 2)
	conn.SetConnMaxLifetime(30 * time.Minute)
	conn.SetConnMaxIdleTime(5 * time.Minute)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return conn, nil
}

// IsUniqueViolation reports whether err came from a unique constraint
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == UniqueViolation
	}
	return false
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(Schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const Schema = `
-- Contests
CREATE TABLE IF NOT EXISTS contests (
    id BIGSERIAL PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT,
    category_id TEXT,
    deadline DATE,
    price NUMERIC(10, 2) DEFAULT 200,
    status TEXT DEFAULT 'active',
    rules_file_url TEXT,
    diploma_sample_url TEXT,
    image_url TEXT,
    participants_count INTEGER NOT NULL DEFAULT 0,
    is_popular BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_contests_category_id ON contests(category_id);

-- Applications
CREATE TABLE IF NOT EXISTS applications (
    id BIGSERIAL PRIMARY KEY,
    full_name TEXT NOT NULL,
    age INTEGER,
    teacher TEXT,
    institution TEXT,
    work_title TEXT,
    email TEXT,
    contest_id BIGINT,
    contest_name TEXT,
    work_file_url TEXT,
    status TEXT NOT NULL DEFAULT 'new',
    result TEXT,
    payment_id TEXT,
    payment_status TEXT,
    gallery_consent BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP,
    deleted_at TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_applications_deleted_at ON applications(deleted_at);

-- Results
CREATE TABLE IF NOT EXISTS results (
    id BIGSERIAL PRIMARY KEY,
    application_id BIGINT UNIQUE,
    full_name TEXT,
    age INTEGER,
    teacher TEXT,
    institution TEXT,
    work_title TEXT,
    email TEXT,
    contest_id BIGINT,
    contest_name TEXT,
    work_file_url TEXT,
    result TEXT,
    place TEXT,
    score NUMERIC(6, 2),
    diploma_url TEXT,
    notes TEXT,
    gallery_consent BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_results_contest_id ON results(contest_id);
CREATE INDEX IF NOT EXISTS idx_results_gallery_consent ON results(gallery_consent);

-- Reviews
CREATE TABLE IF NOT EXISTS reviews (
    id BIGSERIAL PRIMARY KEY,
    author_name TEXT NOT NULL,
    author_role TEXT,
    rating INTEGER,
    text TEXT NOT NULL,
    status TEXT NOT NULL DEFAULT 'pending',
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP,
    published_at TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_reviews_status ON reviews(status);
`
