// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package feedback

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"sync"

	"github.com/danielhkuo/course-feedback/apierr"
	"github.com/danielhkuo/course-feedback/models"
)

var (
	ErrCourseMissing = apierr.New(
		"Course field not found",
		"No data was returned when accessing the course field of the form",
	)
	ErrFeedbackMissing = apierr.New(
		"Feedback field not found",
		"No data was returned when accessing the feedback field of the form",
	)
	ErrNotSaved = apierr.New(
		"Feedback not saved",
		"Only feedback stored on the server can receive votes",
	)
)

// VoteCast records which vote, if any, this session has cast
type VoteCast int

const (
	VoteNone VoteCast = 0
	VoteUp   VoteCast = 1
	VoteDown VoteCast = -1
)

func (v VoteCast) String() string {
	switch v {
	case VoteUp:
		return "up"
	case VoteDown:
		return "down"
	default:
		return "none"
	}
}

// Voter sends votes to the server
type Voter interface {
	Upvote(ctx context.Context, id int) (*Feedback, error)
	Downvote(ctx context.Context, id int) (*Feedback, error)
}

// Observable is the read side of a Value
type Observable[T comparable] interface {
	Get() T
	Subscribe(fn func(T)) (unsubscribe func())
}

// Feedback is a single course feedback item
type Feedback struct {
	ID     int
	Course string
	Text   string

	upvotes   *Value[int]
	downvotes *Value[int]
	voteCast  *Value[VoteCast]

	// mu serializes the vote guard; cast mirrors voteCast and both change
	// together under mu
	mu   sync.Mutex
	cast VoteCast

	voter  Voter
	policy VoteErrorPolicy
	logger *slog.Logger
}

type Option func(*Feedback)

// WithVoter binds the entity to the API that receives its votes
func WithVoter(v Voter) Option {
	return func(f *Feedback) { f.voter = v }
}

// WithVoteErrors selects how failed votes are surfaced
func WithVoteErrors(p VoteErrorPolicy) Option {
	return func(f *Feedback) { f.policy = p }
}

// WithLogger sets the logger used by LogVoteErrors
func WithLogger(logger *slog.Logger) Option {
	return func(f *Feedback) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// New creates a feedback entity
func New(id int, course, text string, upvotes, downvotes int, opts ...Option) *Feedback {
	f := &Feedback{
		ID:        id,
		Course:    course,
		Text:      text,
		upvotes:   NewValue(upvotes),
		downvotes: NewValue(downvotes),
		voteCast:  NewValue(VoteNone),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FromRecord hydrates an entity from its wire form
func FromRecord(r models.FeedbackRecord, opts ...Option) *Feedback {
	return New(r.ID, r.Course, r.Feedback, r.Upvotes, r.Downvotes, opts...)
}

// FromForm creates unsaved feedback from submitted form fields.
// Fields must be present; empty values are accepted.
func FromForm(form url.Values, opts ...Option) (*Feedback, error) {
	if !form.Has(models.FieldCourse) {
		return nil, ErrCourseMissing
	}
	if !form.Has(models.FieldFeedback) {
		return nil, ErrFeedbackMissing
	}
	return New(0, form.Get(models.FieldCourse), form.Get(models.FieldFeedback), 0, 0, opts...), nil
}

// Saved reports whether the server has assigned an ID
func (f *Feedback) Saved() bool {
	return f.ID != 0
}

func (f *Feedback) Upvotes() Observable[int] {
	f.init()
	return f.upvotes
}

func (f *Feedback) Downvotes() Observable[int] {
	f.init()
	return f.downvotes
}

// VoteCast is published while the vote guard is held, so subscribers
// must not vote on the same item from the callback.
func (f *Feedback) VoteCast() Observable[VoteCast] {
	f.init()
	return f.voteCast
}

// Votes returns the total number of appreciations
func (f *Feedback) Votes() int {
	return f.Upvotes().Get() + f.Downvotes().Get()
}

// Value returns upvotes minus downvotes
func (f *Feedback) Value() int {
	return f.Upvotes().Get() - f.Downvotes().Get()
}

// Record returns the wire form. The vote-cast flag is not part of it.
func (f *Feedback) Record() models.FeedbackRecord {
	return models.FeedbackRecord{
		ID:        f.ID,
		Course:    f.Course,
		Feedback:  f.Text,
		Upvotes:   f.Upvotes().Get(),
		Downvotes: f.Downvotes().Get(),
	}
}

func (f *Feedback) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.Record())
}

func (f *Feedback) UnmarshalJSON(data []byte) error {
	var r models.FeedbackRecord
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}

	f.init()
	f.ID = r.ID
	f.Course = r.Course
	f.Text = r.Feedback
	f.upvotes.Set(r.Upvotes)
	f.downvotes.Set(r.Downvotes)
	return nil
}

// init fills the observables of a zero Feedback
func (f *Feedback) init() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.upvotes == nil {
		f.upvotes = NewValue(0)
	}
	if f.downvotes == nil {
		f.downvotes = NewValue(0)
	}
	if f.voteCast == nil {
		f.voteCast = NewValue(f.cast)
	}
	if f.logger == nil {
		f.logger = slog.Default()
	}
}

// Upvote sends a positive appreciation. Only the first vote of a session
// counts; later calls return nil without contacting the server.
func (f *Feedback) Upvote(ctx context.Context) error {
	return f.vote(ctx, VoteUp)
}

// Downvote sends a negative appreciation. See Upvote.
func (f *Feedback) Downvote(ctx context.Context) error {
	return f.vote(ctx, VoteDown)
}

func (f *Feedback) vote(ctx context.Context, dir VoteCast) error {
	f.init()

	// The guard is taken before the call so concurrent votes cannot both
	// pass, and released again only if the server rejects the vote.
	f.mu.Lock()
	if f.cast != VoteNone {
		f.mu.Unlock()
		return nil
	}
	if f.voter == nil || !f.Saved() {
		f.mu.Unlock()
		return f.voteFailed(dir, ErrNotSaved)
	}
	f.cast = dir
	f.voteCast.Set(dir)
	f.mu.Unlock()

	var err error
	if dir == VoteUp {
		_, err = f.voter.Upvote(ctx, f.ID)
	} else {
		_, err = f.voter.Downvote(ctx, f.ID)
	}

	if err != nil {
		f.mu.Lock()
		f.cast = VoteNone
		f.voteCast.Set(VoteNone)
		f.mu.Unlock()
		return f.voteFailed(dir, err)
	}

	increment := func(n int) int { return n + 1 }
	if dir == VoteUp {
		f.upvotes.Update(increment)
	} else {
		f.downvotes.Update(increment)
	}
	return nil
}

func (f *Feedback) voteFailed(dir VoteCast, err error) error {
	if f.policy == LogVoteErrors {
		f.logger.Error("vote failed", "id", f.ID, "vote", dir.String(), "error", err)
		return nil
	}
	return fmt.Errorf("failed to vote %s on feedback %d: %w", dir, f.ID, err)
}
