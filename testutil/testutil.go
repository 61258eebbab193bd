// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/gestalent-portal/auth"
	"github.com/danielhkuo/gestalent-portal/cliparse"
	"github.com/danielhkuo/gestalent-portal/db"
)

// SetupTestDB creates an in-memory sqlite database with the full schema.
// MaxOpenConns is pinned to 1 so every query sees the same :memory: database.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration. Uploads and the
// frontend shell point into a per-test temp directory.
func GetTestConfig(t *testing.T) cliparse.Config {
	t.Helper()

	dir := t.TempDir()
	return cliparse.Config{
		Port:           4000,
		DatabaseURL:    ":memory:",
		DatabaseType:   "sqlite",
		AdminUser:      "admin",
		AdminPassword:  "test-password",
		TokenSecret:    "test-secret",
		TokenTTL:       cliparse.TokenTTL,
		UploadDir:      dir + "/uploads",
		UploadMaxBytes: cliparse.DefaultUploadMaxBytes,
		PublicDir:      dir + "/public",
		ItemBankPath:   dir + "/bigfive_items.json",
	}
}

// CreateTestCandidate inserts a candidate with the given (already normalized)
// email and returns its ID.
func CreateTestCandidate(t *testing.T, conn *sql.DB, email string, createdAt time.Time) string {
	t.Helper()

	id, _ := auth.GenerateID(12)
	_, err := conn.Exec(`
		INSERT INTO candidate (id, name, email, phone, city, area_of_interest, origin, created_at, updated_at)
		VALUES ($1, 'Ana Pérez', $2, '600123456', 'Madrid', 'Tecnología', 'Portal GesTalent', $3, $4)
	`, id, email, createdAt, createdAt)
	if err != nil {
		t.Fatalf("Failed to create test candidate: %v", err)
	}

	return id
}

// CreateTestAssessment inserts an assessment row and returns its ID.
func CreateTestAssessment(t *testing.T, conn *sql.DB, email string, createdAt time.Time) string {
	t.Helper()

	id, _ := auth.GenerateID(12)
	answers, _ := json.Marshal(map[string]any{"q1": 4})
	averages, _ := json.Marshal(map[string]float64{"liderazgo": 4.0})
	_, err := conn.Exec(`
		INSERT INTO assessment (id, name, email, city, area_of_interest, answers, averages, global_score, created_at)
		VALUES ($1, 'Ana Pérez', $2, 'Madrid', 'Tecnología', $3, $4, 4.0, $5)
	`, id, email, string(answers), string(averages), createdAt)
	if err != nil {
		t.Fatalf("Failed to create test assessment: %v", err)
	}

	return id
}

// CreateTestBigFive inserts a Big Five result row and returns its ID.
func CreateTestBigFive(t *testing.T, conn *sql.DB, email string, createdAt time.Time) string {
	t.Helper()

	id, _ := auth.GenerateID(12)
	answers, _ := json.Marshal(map[string]any{"1": 3})
	scores, _ := json.Marshal(map[string]float64{"extraversion": 3.2})
	_, err := conn.Exec(`
		INSERT INTO bigfive_result (id, name, email, city, area_of_interest, answers, scores, global_score, created_at)
		VALUES ($1, 'Ana Pérez', $2, 'Madrid', 'Tecnología', $3, $4, 3.2, $5)
	`, id, email, string(answers), string(scores), createdAt)
	if err != nil {
		t.Fatalf("Failed to create test bigfive result: %v", err)
	}

	return id
}

// IssueTestToken creates a valid admin token for the test config.
func IssueTestToken(t *testing.T, cfg cliparse.Config) string {
	t.Helper()

	token, _, err := auth.NewTokenService(cfg.TokenSecret, cfg.TokenTTL).Issue(cfg.AdminUser)
	if err != nil {
		t.Fatalf("Failed to issue test token: %v", err)
	}

	return token
}
