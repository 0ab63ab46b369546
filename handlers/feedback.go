// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/danielhkuo/course-feedback/middleware"
	"github.com/danielhkuo/course-feedback/models"
)

const feedbackColumns = `id, course, feedback, upvotes, downvotes`

type FeedbackHandler struct {
	db       *sql.DB
	validate *validator.Validate
}

func NewFeedbackHandler(db *sql.DB) *FeedbackHandler {
	return &FeedbackHandler{db: db, validate: validator.New()}
}

// ListFeedback handles GET /feedback
func (h *FeedbackHandler) ListFeedback(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.QueryContext(r.Context(), `
		SELECT `+feedbackColumns+`
		FROM feedback
		ORDER BY id
	`)
	if err != nil {
		slog.Error("failed to query feedback", "error", err)
		databaseError(w)
		return
	}
	defer rows.Close()

	records := []models.FeedbackRecord{}
	for rows.Next() {
		var rec models.FeedbackRecord
		if err := rows.Scan(&rec.ID, &rec.Course, &rec.Feedback, &rec.Upvotes, &rec.Downvotes); err != nil {
			slog.Error("failed to scan feedback", "error", err)
			databaseError(w)
			return
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to iterate feedback", "error", err)
		databaseError(w)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, records)
}

// GetFeedback handles GET /feedback/{id}
func (h *FeedbackHandler) GetFeedback(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	h.respondRow(w, id, h.db.QueryRowContext(r.Context(), `
		SELECT `+feedbackColumns+`
		FROM feedback
		WHERE id = $1
	`, id))
}

// CreateFeedback handles POST /feedback
// Client-supplied ID and vote counts are ignored.
func (h *FeedbackHandler) CreateFeedback(w http.ResponseWriter, r *http.Request) {
	var req models.CreateFeedbackRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON", err.Error())
		return
	}

	req.Course = strings.TrimSpace(req.Course)
	req.Feedback = strings.TrimSpace(req.Feedback)

	if err := h.validate.Struct(req); err != nil {
		middleware.ErrorsResponse(w, http.StatusBadRequest, validationErrors(err))
		return
	}

	var rec models.FeedbackRecord
	err := h.db.QueryRowContext(r.Context(), `
		INSERT INTO feedback (course, feedback, upvotes, downvotes)
		VALUES ($1, $2, 0, 0)
		RETURNING `+feedbackColumns,
		req.Course, req.Feedback,
	).Scan(&rec.ID, &rec.Course, &rec.Feedback, &rec.Upvotes, &rec.Downvotes)
	if err != nil {
		slog.Error("failed to insert feedback", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save feedback", "The feedback could not be stored")
		return
	}

	slog.Info("feedback created", "id", rec.ID, "course", rec.Course)

	middleware.JSONResponse(w, http.StatusCreated, rec)
}

// Upvote handles PATCH /feedback/{id}/upvote
func (h *FeedbackHandler) Upvote(w http.ResponseWriter, r *http.Request) {
	h.vote(w, r, "upvotes")
}

// Downvote handles PATCH /feedback/{id}/downvote
func (h *FeedbackHandler) Downvote(w http.ResponseWriter, r *http.Request) {
	h.vote(w, r, "downvotes")
}

// vote adds one to column. The body must be the JSON integer 1 or empty.
func (h *FeedbackHandler) vote(w http.ResponseWriter, r *http.Request, column string) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	increment := 1
	if err := middleware.ParseJSONBody(r, &increment); err != nil && !errors.Is(err, io.EOF) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid vote", "The request body must be the integer 1")
		return
	}
	if increment != 1 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid vote", "A vote counts exactly once")
		return
	}

	// column is one of two constants, never user input
	row := h.db.QueryRowContext(r.Context(), `
		UPDATE feedback
		SET `+column+` = `+column+` + $1
		WHERE id = $2
		RETURNING `+feedbackColumns,
		increment, id,
	)

	if h.respondRow(w, id, row) {
		slog.Info("vote recorded", "id", id, "column", column, "increment", increment)
	}
}

// DeleteFeedback handles DELETE /feedback/{id}
// Returns the deleted record.
func (h *FeedbackHandler) DeleteFeedback(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	row := h.db.QueryRowContext(r.Context(), `
		DELETE FROM feedback
		WHERE id = $1
		RETURNING `+feedbackColumns,
		id,
	)

	if h.respondRow(w, id, row) {
		slog.Info("feedback deleted", "id", id)
	}
}

// respondRow writes the scanned record, or the matching error.
// It reports whether a record was written.
func (h *FeedbackHandler) respondRow(w http.ResponseWriter, id int, row *sql.Row) bool {
	var rec models.FeedbackRecord
	err := row.Scan(&rec.ID, &rec.Course, &rec.Feedback, &rec.Upvotes, &rec.Downvotes)

	if err == sql.ErrNoRows {
		notFound(w, id)
		return false
	}
	if err != nil {
		slog.Error("failed to query feedback", "error", err, "id", id)
		databaseError(w)
		return false
	}

	middleware.JSONResponse(w, http.StatusOK, rec)
	return true
}

func parseID(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.PathValue("id")
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid ID", fmt.Sprintf("%q is not a feedback ID", raw))
		return 0, false
	}
	return id, true
}

func notFound(w http.ResponseWriter, id int) {
	middleware.ErrorResponse(w, http.StatusNotFound, "Feedback not found", fmt.Sprintf("No feedback with ID %d", id))
}

func databaseError(w http.ResponseWriter) {
	middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error", "The feedback store is unavailable")
}

// validationErrors maps validator failures to one record per field
func validationErrors(err error) []models.ErrorRecord {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []models.ErrorRecord{{Summary: "Invalid feedback", Detail: err.Error()}}
	}

	records := make([]models.ErrorRecord, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			records = append(records, models.ErrorRecord{
				Summary: fe.Field() + " field is required",
				Detail:  "The " + fe.Field() + " field must not be empty",
			})
		case "max":
			records = append(records, models.ErrorRecord{
				Summary: fe.Field() + " field too long",
				Detail:  "The " + fe.Field() + " field must be at most " + fe.Param() + " characters",
			})
		default:
			records = append(records, models.ErrorRecord{
				Summary: fe.Field() + " field invalid",
				Detail:  fe.Error(),
			})
		}
	}
	return records
}
