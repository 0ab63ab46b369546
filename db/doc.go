// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the reference server's database and creates its schema.

# Drivers

Two database types are supported:

  - sqlite: modernc.org/sqlite (pure Go, default)
  - postgres: github.com/lib/pq

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

SQLite connections are limited to one open connection so that ":memory:"
databases stay on a single connection and writers never hit SQLITE_BUSY.

# Schema Creation

CreateSchema initializes the feedback table for the given type:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - feedback: id, course, feedback, upvotes, downvotes, created_at

Vote counters carry CHECK (>= 0) constraints. Queries use $n placeholders,
which both drivers accept.
*/
package db
