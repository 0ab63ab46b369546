// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/danielhkuo/course-feedback/client"
	"github.com/danielhkuo/course-feedback/feedback"
	"github.com/danielhkuo/course-feedback/models"
)

type FeedbackAPI struct {
	client *client.Client
	policy feedback.VoteErrorPolicy
	logger *slog.Logger
}

type Option func(*FeedbackAPI)

// WithVoteErrors sets the vote error policy of hydrated entities
func WithVoteErrors(p feedback.VoteErrorPolicy) Option {
	return func(a *FeedbackAPI) { a.policy = p }
}

// WithLogger sets the logger handed to hydrated entities
func WithLogger(logger *slog.Logger) Option {
	return func(a *FeedbackAPI) {
		if logger != nil {
			a.logger = logger
		}
	}
}

func NewFeedbackAPI(c *client.Client, opts ...Option) *FeedbackAPI {
	a := &FeedbackAPI{client: c, logger: slog.Default()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// ListAll fetches every feedback item
func (a *FeedbackAPI) ListAll(ctx context.Context) ([]*feedback.Feedback, error) {
	resp, err := a.client.Get(ctx, "/feedback")
	if err != nil {
		return nil, err
	}

	var records []models.FeedbackRecord
	if err := client.DecodeJSON(resp, &records); err != nil {
		return nil, err
	}

	items := make([]*feedback.Feedback, 0, len(records))
	for _, r := range records {
		items = append(items, a.hydrate(r))
	}
	return items, nil
}

// GetByID fetches one feedback item
func (a *FeedbackAPI) GetByID(ctx context.Context, id int) (*feedback.Feedback, error) {
	resp, err := a.client.Get(ctx, itemPath(id))
	if err != nil {
		return nil, err
	}
	return a.decode(resp)
}

// Create stores f and returns the record the server assigned an ID to
func (a *FeedbackAPI) Create(ctx context.Context, f *feedback.Feedback) (*feedback.Feedback, error) {
	body, err := json.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("failed to encode feedback: %w", err)
	}

	resp, err := a.client.Post(ctx, "/feedback", bytes.NewReader(body), "")
	if err != nil {
		return nil, err
	}
	return a.decode(resp)
}

// Upvote adds one upvote on the server and returns the updated record
func (a *FeedbackAPI) Upvote(ctx context.Context, id int) (*feedback.Feedback, error) {
	return a.vote(ctx, id, "upvote")
}

// Downvote adds one downvote on the server and returns the updated record
func (a *FeedbackAPI) Downvote(ctx context.Context, id int) (*feedback.Feedback, error) {
	return a.vote(ctx, id, "downvote")
}

func (a *FeedbackAPI) vote(ctx context.Context, id int, kind string) (*feedback.Feedback, error) {
	a.logger.Debug("sending vote", "id", id, "vote", kind)

	resp, err := a.client.Patch(ctx, itemPath(id)+"/"+kind, strings.NewReader(models.VoteIncrement), "")
	if err != nil {
		return nil, err
	}
	return a.decode(resp)
}

// Remove deletes the feedback item and returns it
func (a *FeedbackAPI) Remove(ctx context.Context, id int) (*feedback.Feedback, error) {
	resp, err := a.client.Delete(ctx, itemPath(id))
	if err != nil {
		return nil, err
	}
	return a.decode(resp)
}

func (a *FeedbackAPI) decode(resp *http.Response) (*feedback.Feedback, error) {
	var r models.FeedbackRecord
	if err := client.DecodeJSON(resp, &r); err != nil {
		return nil, err
	}
	return a.hydrate(r), nil
}

func (a *FeedbackAPI) hydrate(r models.FeedbackRecord) *feedback.Feedback {
	return feedback.FromRecord(r,
		feedback.WithVoter(a),
		feedback.WithVoteErrors(a.policy),
		feedback.WithLogger(a.logger),
	)
}

func itemPath(id int) string {
	return "/feedback/" + strconv.Itoa(id)
}

var _ feedback.Voter = (*FeedbackAPI)(nil)
