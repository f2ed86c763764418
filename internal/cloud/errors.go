// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cloud

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/jeranaias/llmchat/internal/util"
)

// maxBodyDisplayWidth bounds how much of a raw error body is carried in
// the error text. The full body is logged separately.
const maxBodyDisplayWidth = 120

// Error variables for common OpenRouter failures.
var (
	// ErrNotConfigured indicates the API key is not set.
	ErrNotConfigured = errors.New("OpenRouter API key not configured")

	// ErrAuthFailed indicates authentication failed (invalid or expired API key).
	ErrAuthFailed = errors.New("authentication failed")

	// ErrInsufficientCredits indicates the account has insufficient credits.
	ErrInsufficientCredits = errors.New("insufficient credits")

	// ErrModelNotFound indicates the requested model does not exist.
	ErrModelNotFound = errors.New("model not found")

	// ErrRateLimited indicates too many requests were made.
	ErrRateLimited = errors.New("rate limited")
)

// =============================================================================
// REQUEST FAILED
// =============================================================================

// RequestFailedError is returned when the endpoint answers with a non-2xx
// status. Body holds the raw response body.
type RequestFailedError struct {
	Status int
	Body   string

	// Code and Message are filled when the body is an OpenRouter error object.
	Code    string
	Message string
}

// newRequestFailedError builds the error and lifts the OpenRouter error
// object out of the body when there is one.
func newRequestFailedError(status int, body []byte) *RequestFailedError {
	e := &RequestFailedError{Status: status, Body: string(body)}

	var apiErr apiErrorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error != nil {
		e.Message = apiErr.Error.Message
		e.Code = strings.Trim(string(apiErr.Error.Code), `"`)
		if e.Code == "null" {
			e.Code = ""
		}
	}
	return e
}

// Error implements the error interface.
func (e *RequestFailedError) Error() string {
	msg := fmt.Sprintf("request failed with status: %d %s", e.Status, http.StatusText(e.Status))
	switch {
	case e.Message != "":
		msg += ": " + e.Message
	case strings.TrimSpace(e.Body) != "":
		msg += ": " + util.TruncateWidth(util.SingleLine(e.Body), maxBodyDisplayWidth)
	}
	return msg
}

// Unwrap maps well-known statuses to sentinel errors so callers can use
// errors.Is(err, ErrRateLimited) and friends.
func (e *RequestFailedError) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized:
		return ErrAuthFailed
	case http.StatusPaymentRequired:
		return ErrInsufficientCredits
	case http.StatusNotFound:
		return ErrModelNotFound
	case http.StatusTooManyRequests:
		return ErrRateLimited
	}
	return nil
}

// apiErrorResponse represents an error response from the API.
// Code is kept raw because OpenRouter sends it as a number or a string.
type apiErrorResponse struct {
	Error *struct {
		Code    json.RawMessage `json:"code"`
		Message string          `json:"message"`
	} `json:"error"`
}

// =============================================================================
// MALFORMED RESPONSE
// =============================================================================

// MalformedResponseError is returned when a 2xx body does not decode into
// the expected response shape.
type MalformedResponseError struct {
	Reason string
	Err    error
}

// Error implements the error interface.
func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed response: %s: %v", e.Reason, e.Err)
	}
	return "malformed response: " + e.Reason
}

// Unwrap returns the underlying decode error, if any.
func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// =============================================================================
// TRANSPORT
// =============================================================================

// TransportError wraps network failures: DNS, connection reset, TLS and
// body read errors.
type TransportError struct {
	Op  string
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying network error.
func (e *TransportError) Unwrap() error {
	return e.Err
}
