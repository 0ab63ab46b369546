package main

import (
	"bytes"
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/danielhkuo/course-feedback/api"
	"github.com/danielhkuo/course-feedback/apierr"
	"github.com/danielhkuo/course-feedback/client"
	"github.com/danielhkuo/course-feedback/feedback"
	"github.com/danielhkuo/course-feedback/router"
	"github.com/danielhkuo/course-feedback/testutil"
)

func setupCLI(t *testing.T) (*api.FeedbackAPI, func(args ...string) (string, error)) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	server := testutil.NewTestServer(t, router.NewRouter(db))
	feedbackAPI := api.NewFeedbackAPI(client.New(server.URL + router.APIPrefix))

	run := func(args ...string) (string, error) {
		var out bytes.Buffer
		err := runCommand(context.Background(), feedbackAPI, args, &out)
		return out.String(), err
	}
	return feedbackAPI, run
}

func TestCommandsWorkflow(t *testing.T) {
	_, run := setupCLI(t)

	out, err := run("add", "-course", "CS101", "-text", "Great class")
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if !strings.HasPrefix(out, "#1\tCS101\t+0 -0 (0)\tGreat class") {
		t.Errorf("Unexpected add output %q", out)
	}

	out, err = run("upvote", "1")
	if err != nil {
		t.Fatalf("upvote failed: %v", err)
	}
	if !strings.Contains(out, "+1 -0 (+1)") {
		t.Errorf("Expected one upvote in output, got %q", out)
	}

	out, err = run("downvote", "1")
	if err != nil {
		t.Fatalf("downvote failed: %v", err)
	}
	if !strings.Contains(out, "+1 -1 (0)") {
		t.Errorf("Expected a downvote in output, got %q", out)
	}

	out, err = run("list")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "1 items") {
		t.Errorf("Expected item count in list output, got %q", out)
	}

	out, err = run("delete", "1")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "deleted #1") {
		t.Errorf("Unexpected delete output %q", out)
	}

	_, err = run("get", "1")
	var e apierr.Error
	if !errors.As(err, &e) || e.Summary != "Feedback not found" {
		t.Errorf("Expected Feedback not found, got %v", err)
	}
}

func TestAddMissingField(t *testing.T) {
	_, run := setupCLI(t)

	_, err := run("add", "-text", "no course")
	if !errors.Is(err, feedback.ErrCourseMissing) {
		t.Errorf("Expected ErrCourseMissing, got %v", err)
	}

	_, err = run("add", "-course", "CS101")
	if !errors.Is(err, feedback.ErrFeedbackMissing) {
		t.Errorf("Expected ErrFeedbackMissing, got %v", err)
	}
}

func TestCommandUsageErrors(t *testing.T) {
	_, run := setupCLI(t)

	testCases := [][]string{
		{},
		{"frobnicate"},
		{"get"},
		{"upvote", "1", "2"},
		{"add", "-bogus"},
	}

	for _, args := range testCases {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			if _, err := run(args...); !errors.Is(err, errUsage) {
				t.Errorf("Expected usage error, got %v", err)
			}
		})
	}

	_, err := run("get", "abc")
	var e apierr.Error
	if !errors.As(err, &e) || e.Summary != "Invalid ID" {
		t.Errorf("Expected Invalid ID, got %v", err)
	}
}

func TestPrintErrors(t *testing.T) {
	var buf bytes.Buffer
	printErrors(&buf, apierr.List{apierr.New("Bad", "oops"), apierr.New("Worse", "")})

	expected := "error: Bad\n  oops\nerror: Worse\n"
	if buf.String() != expected {
		t.Errorf("Expected %q, got %q", expected, buf.String())
	}
}

func TestListManyItems(t *testing.T) {
	feedbackAPI, run := setupCLI(t)

	for i := 0; i < 3; i++ {
		draft := feedback.New(0, "CS10"+strconv.Itoa(i), "x", 0, 0)
		if _, err := feedbackAPI.Create(context.Background(), draft); err != nil {
			t.Fatal(err)
		}
	}

	out, err := run("list")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Count(out, "\n") != 4 || !strings.HasSuffix(out, "3 items\n") {
		t.Errorf("Unexpected list output %q", out)
	}
}
