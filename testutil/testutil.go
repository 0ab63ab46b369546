// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/course-feedback/db"
)

// TestDBURL is an in-memory SQLite database, private to each *sql.DB
const TestDBURL = ":memory:"

// SetupTestDB creates a fresh test database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.TypeSQLite, TestDBURL)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, db.TypeSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// CreateTestFeedback inserts a feedback row and returns its ID
func CreateTestFeedback(t *testing.T, conn *sql.DB, course, text string, upvotes, downvotes int) int {
	t.Helper()

	var id int
	err := conn.QueryRow(`
		INSERT INTO feedback (course, feedback, upvotes, downvotes)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, course, text, upvotes, downvotes).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test feedback: %v", err)
	}

	return id
}

// GetTestVotes reads the stored vote counts of a feedback row
func GetTestVotes(t *testing.T, conn *sql.DB, id int) (upvotes, downvotes int) {
	t.Helper()

	err := conn.QueryRow(`
		SELECT upvotes, downvotes FROM feedback WHERE id = $1
	`, id).Scan(&upvotes, &downvotes)
	if err != nil {
		t.Fatalf("Failed to read test votes: %v", err)
	}

	return upvotes, downvotes
}

// NewTestServer starts h on a local listener and closes it with the test
func NewTestServer(t *testing.T, h http.Handler) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(h)
	t.Cleanup(server.Close)
	return server
}

// MakeRequest creates an HTTP test request.
// A string body is sent as is; anything else is marshalled to JSON.
func MakeRequest(method, path string, body interface{}) *http.Request {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		jsonBody, _ := json.Marshal(b)
		reader = bytes.NewReader(jsonBody)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
