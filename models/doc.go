// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the wire types shared by the API client and the
reference server.

# Records

The API speaks PascalCase JSON with no struct tags on the server side:

  - FeedbackRecord: ID, Course, Feedback, Upvotes, Downvotes
  - ErrorRecord: Summary, Detail

Every non-2xx response body is a JSON array of ErrorRecord.

# Request Types

  - CreateFeedbackRequest: body for POST /feedback, validated on the server

# Constants

Form field names used by the front-end:

	FieldCourse   = "Course"
	FieldFeedback = "Feedback"

Default vote increment sent by the client:

	VoteIncrement = "1"
*/
package models
