package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/url"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/course-feedback/api"
	"github.com/danielhkuo/course-feedback/apierr"
	"github.com/danielhkuo/course-feedback/feedback"
	"github.com/danielhkuo/course-feedback/models"
)

var errUsage = errors.New("usage")

const usage = `usage: feedback [flags] <command> [args]

commands:
  list                       list all feedback
  get <id>                   show one item
  add -course C -text T      submit new feedback
  upvote <id>                cast an upvote
  downvote <id>              cast a downvote
  delete <id>                delete an item
  serve                      run the reference API server

flags:
  -u URL  -p PORT  -d DATABASE_URL  -t sqlite|postgres
  -vote-errors report|log  -log-level LEVEL  -c CONFIG.yaml
`

func printUsage(w io.Writer) {
	fmt.Fprint(w, usage)
}

// runCommand executes one client subcommand against feedbackAPI
func runCommand(ctx context.Context, feedbackAPI *api.FeedbackAPI, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	switch args[0] {
	case "list":
		items, err := feedbackAPI.ListAll(ctx)
		if err != nil {
			return err
		}
		for _, f := range items {
			printFeedback(out, f)
		}
		fmt.Fprintf(out, "%s items\n", humanize.Comma(int64(len(items))))
		return nil

	case "get":
		id, err := parseID(args[1:])
		if err != nil {
			return err
		}
		f, err := feedbackAPI.GetByID(ctx, id)
		if err != nil {
			return err
		}
		printFeedback(out, f)
		return nil

	case "add":
		draft, err := parseForm(args[1:])
		if err != nil {
			return err
		}
		f, err := feedbackAPI.Create(ctx, draft)
		if err != nil {
			return err
		}
		printFeedback(out, f)
		return nil

	case "upvote", "downvote":
		id, err := parseID(args[1:])
		if err != nil {
			return err
		}
		f, err := feedbackAPI.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if args[0] == "upvote" {
			err = f.Upvote(ctx)
		} else {
			err = f.Downvote(ctx)
		}
		if err != nil {
			return err
		}
		printFeedback(out, f)
		return nil

	case "delete":
		id, err := parseID(args[1:])
		if err != nil {
			return err
		}
		f, err := feedbackAPI.Remove(ctx, id)
		if err != nil {
			return err
		}
		fmt.Fprint(out, "deleted ")
		printFeedback(out, f)
		return nil
	}

	return errUsage
}

func parseID(args []string) (int, error) {
	if len(args) != 1 {
		return 0, errUsage
	}
	id, err := strconv.Atoi(args[0])
	if err != nil || id < 1 {
		return 0, apierr.New("Invalid ID", fmt.Sprintf("%q is not a feedback ID", args[0]))
	}
	return id, nil
}

// parseForm turns add flags into form fields. Only flags that were given
// become fields, so a missing flag is a missing field.
func parseForm(args []string) (*feedback.Feedback, error) {
	flags := flag.NewFlagSet("add", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.String("course", "", "course code")
	flags.String("text", "", "feedback text")
	if err := flags.Parse(args); err != nil {
		return nil, errUsage
	}

	names := map[string]string{"course": models.FieldCourse, "text": models.FieldFeedback}
	form := url.Values{}
	flags.Visit(func(f *flag.Flag) {
		form.Set(names[f.Name], f.Value.String())
	})

	return feedback.FromForm(form)
}

func printFeedback(out io.Writer, f *feedback.Feedback) {
	fmt.Fprintf(out, "#%d\t%s\t+%s -%s (%s)\t%s\n",
		f.ID,
		f.Course,
		humanize.Comma(int64(f.Upvotes().Get())),
		humanize.Comma(int64(f.Downvotes().Get())),
		signed(f.Value()),
		f.Text,
	)
}

func signed(n int) string {
	if n > 0 {
		return "+" + humanize.Comma(int64(n))
	}
	return humanize.Comma(int64(n))
}

// printErrors writes each Summary/Detail pair on its own line
func printErrors(w io.Writer, err error) {
	for _, e := range apierr.All(err) {
		if e.Detail == "" {
			fmt.Fprintf(w, "error: %s\n", e.Summary)
			continue
		}
		fmt.Fprintf(w, "error: %s\n  %s\n", e.Summary, e.Detail)
	}
}
