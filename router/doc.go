// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the reference feedback API server.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db)

# Endpoints

Health:

	GET /health

Feedback (under /api):

	GET    /api/feedback               - List all feedback
	POST   /api/feedback               - Create feedback
	GET    /api/feedback/{id}          - Get one item
	DELETE /api/feedback/{id}          - Delete, returns the deleted item
	PATCH  /api/feedback/{id}/upvote   - Add upvotes (body: "1")
	PATCH  /api/feedback/{id}/downvote - Add downvotes (body: "1")

Unknown paths answer 404 with the usual error array.
*/
package router
