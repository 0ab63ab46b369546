// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package apierr

import (
	"errors"
	"strings"
)

// SummaryFetchFailed is the summary used for transport failures
const SummaryFetchFailed = "Failed to fetch"

// Error is a UX-friendly error
type Error struct {
	Summary string
	Detail  string
}

// New creates an Error
func New(summary, detail string) Error {
	return Error{Summary: summary, Detail: detail}
}

// FetchFailed wraps a transport failure
func FetchFailed(err error) Error {
	return Error{Summary: SummaryFetchFailed, Detail: err.Error()}
}

func (e Error) Error() string {
	if e.Detail == "" {
		return e.Summary
	}
	return e.Summary + ": " + e.Detail
}

// List is a set of errors reported together by the server
type List []Error

func (l List) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	}

	parts := make([]string, len(l))
	for i, e := range l {
		parts[i] = e.Error()
	}
	return strings.Join(parts, "; ")
}

func (l List) Unwrap() []error {
	errs := make([]error, len(l))
	for i, e := range l {
		errs[i] = e
	}
	return errs
}

// All returns every Error found in err, in order.
// Errors that are neither an Error nor a List are returned as a single
// Error with the message as summary.
func All(err error) []Error {
	if err == nil {
		return nil
	}

	var list List
	if errors.As(err, &list) {
		return append([]Error(nil), list...)
	}

	var e Error
	if errors.As(err, &e) {
		return []Error{e}
	}

	return []Error{{Summary: err.Error()}}
}
