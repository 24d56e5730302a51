// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInvalidBaseURL is returned when the API base URL cannot be used.
	ErrInvalidBaseURL = errors.New("invalid API base URL")
	// ErrEncodeBody is returned when a request body cannot be encoded.
	ErrEncodeBody = errors.New("failed to encode request body")
	// ErrDecodeBody is returned when a response body cannot be decoded.
	ErrDecodeBody = errors.New("failed to decode response body")
)

// Error is returned for any response outside the 2xx range.
type Error struct {
	URL        string // Request URL
	StatusCode int    // HTTP status code
	Body       string // Start of the response body, for diagnostics
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("error interacting with data source. URL: %s. Code: %d", e.URL, e.StatusCode)
}

// Name is the error class reported in failure results.
func (e *Error) Name() string {
	return "APIError"
}

// IsNotFound reports whether err is an API error with status 404.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
