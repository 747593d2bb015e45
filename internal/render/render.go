// Package render writes JSON responses and maps business errors to HTTP.
package render

import (
	"encoding/json"
	"errors"
	"net/http"

	"rescueops/pkg/e"
)

type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes err as an ErrorBody and returns the status it used. Errors that
// are not *e.Error never leak their text.
func Error(w http.ResponseWriter, err error) int {
	status := StatusOf(err)

	var be *e.Error
	if !errors.As(err, &be) {
		be = e.Internal(err)
	}
	message := be.Message
	if status >= http.StatusInternalServerError {
		message = http.StatusText(status)
	}

	JSON(w, status, ErrorBody{Error: ErrorDetail{Code: be.Code, Message: message, Field: be.Field}})
	return status
}

func StatusOf(err error) int {
	if e.CodeOf(err) == e.CodeUnauthorized {
		return http.StatusUnauthorized
	}
	switch {
	case errors.Is(err, e.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, e.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, e.ErrInvalidState):
		return http.StatusUnprocessableEntity
	case errors.Is(err, e.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, e.ErrAccessDenied):
		return http.StatusForbidden
	case errors.Is(err, e.ErrRateLimited):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// Fail writes a bare error without going through a service.
func Fail(w http.ResponseWriter, status int, code, message string) {
	JSON(w, status, ErrorBody{Error: ErrorDetail{Code: code, Message: message}})
}
