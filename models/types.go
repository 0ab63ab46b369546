package models

// Form field names
const (
	FieldCourse   = "Course"
	FieldFeedback = "Feedback"
)

// VoteIncrement is the literal body sent with upvote and downvote requests
const VoteIncrement = "1"

// Request types

type CreateFeedbackRequest struct {
	Course   string `json:"Course" validate:"required,max=32"`
	Feedback string `json:"Feedback" validate:"required,max=4096"`
}

// Domain types

// FeedbackRecord is the stored shape of a feedback item
type FeedbackRecord struct {
	ID        int    `json:"ID"`
	Course    string `json:"Course"`
	Feedback  string `json:"Feedback"`
	Upvotes   int    `json:"Upvotes"`
	Downvotes int    `json:"Downvotes"`
}

// Error response

// ErrorRecord is one entry of an error response array
type ErrorRecord struct {
	Summary string `json:"Summary"`
	Detail  string `json:"Detail"`
}
