// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles the connection pool and schema creation.

# Connection Pool

Open returns a single *sql.DB shared by every handler:

	conn, err := db.Open(cfg.DatabaseURL, cfg.DBMaxOpen)

Handlers borrow connections per statement and release them when the
statement (or its *sql.Rows) is closed, on every exit path.

# Schema Creation

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - contests: competition listings
  - applications: contestant entries, with nullable deleted_at
  - results: judged outcomes, application_id is UNIQUE
  - reviews: testimonials under moderation

There are no foreign keys. contest_id and application_id are informal
references, matching how the frontend treats them.

# Soft Delete

applications.deleted_at is always created, but it is only read and written
when the deployment enables the soft-delete capability (see cliparse).
*/
package db
