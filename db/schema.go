// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Portable across sqlite and postgres: no NOW() defaults (timestamps are
// passed by the handlers), JSON payloads stored as TEXT.
// Email is intentionally NOT unique: re-registering with the same address is
// how candidates replace their CV, and lookups take the newest row.
const schema = `
-- Candidates
CREATE TABLE IF NOT EXISTS candidate (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    phone TEXT,
    city TEXT,
    area_of_interest TEXT,
    desired_role TEXT,
    cv_filename TEXT,
    origin TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_candidate_email ON candidate(email);
CREATE INDEX IF NOT EXISTS idx_candidate_created_at ON candidate(created_at);

-- Competencies assessment results (insert-only)
CREATE TABLE IF NOT EXISTS assessment (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    city TEXT,
    area_of_interest TEXT,
    answers TEXT NOT NULL,
    averages TEXT NOT NULL,
    global_score REAL,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_assessment_email ON assessment(email);
CREATE INDEX IF NOT EXISTS idx_assessment_created_at ON assessment(created_at);

-- Big Five personality inventory results (insert-only)
CREATE TABLE IF NOT EXISTS bigfive_result (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    city TEXT,
    area_of_interest TEXT,
    answers TEXT NOT NULL,
    scores TEXT NOT NULL,
    global_score REAL,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_bigfive_email ON bigfive_result(email);
CREATE INDEX IF NOT EXISTS idx_bigfive_created_at ON bigfive_result(created_at);
`
