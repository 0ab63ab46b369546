// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package feedback holds the Feedback entity: one piece of course feedback with
observable vote counters and a per-session vote guard.

# Creating Entities

From a server record (normally done by package api):

	f := feedback.FromRecord(rec, feedback.WithVoter(feedbackAPI))

From submitted form fields:

	f, err := feedback.FromForm(form)
	// err is ErrCourseMissing or ErrFeedbackMissing when a field is absent

Form entities are unsaved (ID 0, zero counts) until passed to api.Create.

# Observable Fields

Upvotes, Downvotes and VoteCast return read-only observables. Subscribers
get the current value immediately and every later change:

	stop := f.Upvotes().Subscribe(func(n int) { render(n) })
	defer stop()

# Voting

Each entity accepts one vote per session:

	err := f.Upvote(ctx)   // PATCH /feedback/{id}/upvote, then Upvotes+1
	err = f.Downvote(ctx)  // no-op, a vote was already cast

The guard is taken before the request is sent and only released when the
server rejects the vote, so two concurrent calls never both reach the server.
Counters change only after the server acknowledges the vote.

# Vote Errors

WithVoteErrors selects the failure policy:

  - ReportVoteErrors (default): the error is returned to the caller
  - LogVoteErrors: the error is logged with slog and nil is returned

In both cases the local state is left as it was before the call.
*/
package feedback
