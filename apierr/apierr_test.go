// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package apierr

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected string
	}{
		{"summary and detail", New("Bad", "oops"), "Bad: oops"},
		{"summary only", New("Bad", ""), "Bad"},
		{"empty list", List{}, "no errors"},
		{"single item list", List{New("Bad", "oops")}, "Bad: oops"},
		{"multi item list", List{New("A", "1"), New("B", "2")}, "A: 1; B: 2"},
		{"fetch failed", FetchFailed(errors.New("connection refused")), "Failed to fetch: connection refused"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.err.Error(); got != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestListUnwrap(t *testing.T) {
	err := fmt.Errorf("request failed: %w", List{New("First", "a"), New("Second", "b")})

	var e Error
	if !errors.As(err, &e) {
		t.Fatal("Expected errors.As to find an Error inside the List")
	}
	if e.Summary != "First" {
		t.Errorf("Expected first error, got %q", e.Summary)
	}

	if !errors.Is(err, New("Second", "b")) {
		t.Error("Expected errors.Is to match the second error by value")
	}
}

func TestAll(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected []Error
	}{
		{"nil", nil, nil},
		{"single", New("Bad", "oops"), []Error{{"Bad", "oops"}}},
		{"wrapped list", fmt.Errorf("x: %w", List{{"A", "1"}, {"B", "2"}}), []Error{{"A", "1"}, {"B", "2"}}},
		{"plain error", errors.New("boom"), []Error{{Summary: "boom"}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := All(tc.err)
			if len(got) != len(tc.expected) {
				t.Fatalf("Expected %d errors, got %d", len(tc.expected), len(got))
			}
			for i := range got {
				if got[i] != tc.expected[i] {
					t.Errorf("Error %d: expected %+v, got %+v", i, tc.expected[i], got[i])
				}
			}
		})
	}
}
