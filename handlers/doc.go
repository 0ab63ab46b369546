// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP request handlers of the reference feedback
API server.

# Handler Types

FeedbackHandler serves every feedback endpoint. It is created with the
database connection:

	feedbackHandler := handlers.NewFeedbackHandler(db)

# Endpoints

	GET    /feedback               → ListFeedback
	GET    /feedback/{id}          → GetFeedback
	POST   /feedback               → CreateFeedback
	PATCH  /feedback/{id}/upvote   → Upvote
	PATCH  /feedback/{id}/downvote → Downvote
	DELETE /feedback/{id}          → DeleteFeedback

Records use the PascalCase shape {ID, Course, Feedback, Upvotes, Downvotes}.

# Validation

CreateFeedback trims Course and Feedback and validates them with
go-playground/validator: both are required, Course is at most 32 characters
and Feedback at most 4096. Each failing field becomes one error record.

Vote bodies are a JSON integer (the client sends "1"). An empty body counts
as one vote; zero or negative values are rejected.

# Errors

Every failure is a JSON array of {Summary, Detail}:

	[{"Summary":"Feedback not found","Detail":"No feedback with ID 3"}]
*/
package handlers
