// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package feedback

import "fmt"

// VoteErrorPolicy decides what Upvote and Downvote do with a failure
type VoteErrorPolicy int

const (
	// ReportVoteErrors returns the failure to the caller
	ReportVoteErrors VoteErrorPolicy = iota
	// LogVoteErrors logs the failure and returns nil
	LogVoteErrors
)

func (p VoteErrorPolicy) String() string {
	if p == LogVoteErrors {
		return "log"
	}
	return "report"
}

// ParseVoteErrorPolicy accepts "report" or "log"
func ParseVoteErrorPolicy(s string) (VoteErrorPolicy, error) {
	switch s {
	case "report", "":
		return ReportVoteErrors, nil
	case "log":
		return LogVoteErrors, nil
	}
	return ReportVoteErrors, fmt.Errorf("invalid vote error policy %q (want report or log)", s)
}
