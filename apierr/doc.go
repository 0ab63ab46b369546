// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package apierr defines the user-facing error values returned by the API
client and the feedback entity.

# Error

An Error carries a short summary suitable for a heading and a longer detail
string:

	err := apierr.New("Course field not found", "No data was returned ...")

Errors are plain values. They are built where a failure is detected and are
never modified afterwards.

# List

The API reports application failures as a JSON array of errors. A List holds
all of them and unwraps to each one, so a caller can inspect the first error
of either shape with errors.As:

	var e apierr.Error
	if errors.As(err, &e) {
		fmt.Println(e.Summary)
	}

Use All to flatten any error returned by this module into a slice.
*/
package apierr
