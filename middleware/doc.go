// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions for the
reference feedback server.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /api/feedback", middleware.WithLogging(handler))

Logs method, path, client IP, status, duration_ms and the X-Request-ID sent
by the API client.

# CORS Middleware

Enable cross-origin requests for the browser front-end:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows methods GET, POST, PUT, PATCH, DELETE, OPTIONS with headers
Content-Type and X-Request-ID.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)

Errors are always a JSON array of {Summary, Detail}:

	middleware.ErrorResponse(w, http.StatusNotFound, "Feedback not found", "No feedback with ID 3")
	middleware.ErrorsResponse(w, http.StatusBadRequest, records)

Parse JSON request bodies:

	var req models.CreateFeedbackRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON", err.Error())
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
