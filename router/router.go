// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/course-feedback/handlers"
	"github.com/danielhkuo/course-feedback/middleware"
)

// APIPrefix is the path the API is mounted under
const APIPrefix = "/api"

func NewRouter(db *sql.DB) *http.ServeMux {
	mux := http.NewServeMux()

	feedbackHandler := handlers.NewFeedbackHandler(db)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Feedback
	mux.HandleFunc("GET "+APIPrefix+"/feedback", middleware.WithLogging(feedbackHandler.ListFeedback))
	mux.HandleFunc("POST "+APIPrefix+"/feedback", middleware.WithLogging(feedbackHandler.CreateFeedback))
	mux.HandleFunc("GET "+APIPrefix+"/feedback/{id}", middleware.WithLogging(feedbackHandler.GetFeedback))
	mux.HandleFunc("DELETE "+APIPrefix+"/feedback/{id}", middleware.WithLogging(feedbackHandler.DeleteFeedback))

	// Votes
	mux.HandleFunc("PATCH "+APIPrefix+"/feedback/{id}/upvote", middleware.WithLogging(feedbackHandler.Upvote))
	mux.HandleFunc("PATCH "+APIPrefix+"/feedback/{id}/downvote", middleware.WithLogging(feedbackHandler.Downvote))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("course-feedback API v1"))
	})

	// Anything else gets the API error shape
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Not found", "No endpoint at "+r.Method+" "+r.URL.Path)
	})

	return mux
}
