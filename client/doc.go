// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package client is a thin wrapper around net/http for talking to the feedback
API.

# Construction

A Client is built explicitly with its base URL. There is no package-level
instance:

	c := client.New("http://localhost:41990/api")

Options replace the underlying *http.Client or the logger:

	c := client.New(base, client.WithHTTPClient(hc), client.WithLogger(logger))

# Paths

Paths that start with "/" are resolved against the base URL. Anything else is
treated as an absolute URL and passed through unchanged:

	c.ResolveURL("/feedback")           // http://localhost:41990/api/feedback
	c.ResolveURL("https://example.com") // https://example.com

# Requests

Execute sends a request once. There is no retry, timeout, or cache; cancel
through the request context if needed.

	resp, err := c.Get(ctx, "/feedback")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

Body-carrying helpers (Post, Put, Patch) default the Content-Type to
application/json when contentType is empty.

# Errors

  - Transport failure: apierr.Error{Summary: "Failed to fetch", Detail: ...}
  - Non-2xx status: apierr.List decoded from the JSON error array

On a non-2xx status the response body is consumed and closed by Execute.
*/
package client
