// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package api binds the feedback endpoints to typed Go calls.

	c := client.New(cfg.BaseURL)
	feedbackAPI := api.NewFeedbackAPI(c)

	items, err := feedbackAPI.ListAll(ctx)

# Operations

	ListAll   GET    /feedback
	GetByID   GET    /feedback/{id}
	Create    POST   /feedback
	Upvote    PATCH  /feedback/{id}/upvote    body "1"
	Downvote  PATCH  /feedback/{id}/downvote  body "1"
	Remove    DELETE /feedback/{id}

Every operation returns hydrated feedback.Feedback entities bound back to the
FeedbackAPI, so their Upvote and Downvote methods work directly. Client errors
are returned unchanged; a response body that is not a feedback record fails
with a wrapped decode error.
*/
package api
