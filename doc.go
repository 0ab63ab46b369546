// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the feedback command: a terminal front-end for the
course feedback API, and a reference server implementing that API.

Course feedback items carry a course code, free text and up/down vote
tallies. Each client session may vote once per item.

# Client Commands

	feedback list
	feedback get 3
	feedback add -course CS101 -text "Great class"
	feedback upvote 3
	feedback downvote 3
	feedback delete 3

The API root defaults to http://localhost:41990/api:

	feedback -u https://feedback.example.com/api list

Failed votes are returned as errors by default; -vote-errors log only logs
them, and the command exits 0 with the unchanged item.

# Starting the Server

	feedback serve
	feedback -p 41990 -t postgres -d "postgres://..." serve

SQLite (file:feedback.db) is used unless another database is configured.

# Configuration

Flags, then environment variables, then an optional YAML file (-c), then
defaults. A .env file in the working directory is loaded first.

# Architecture

  - apierr: user-facing Error and List values
  - client: HTTP wrapper (base URL resolution, error normalization)
  - feedback: Feedback entity with observable counters and vote guard
  - api: typed bindings for the feedback endpoints
  - models: wire types
  - cliparse: configuration parsing
  - handlers, router, middleware, db: the reference server
  - testutil: test helpers

See package documentation for each component.
*/
package main
