package e

import (
	"errors"
	"fmt"
)

// Stable error codes returned to callers.
const (
	CodeValidation                  = "VALIDATION_ERROR"
	CodeInvalidToken                = "INVALID_TOKEN"
	CodeTokenNotFound               = "TOKEN_NOT_FOUND"
	CodeRequestNotFound             = "REQUEST_NOT_FOUND"
	CodeMissionNotFound             = "MISSION_NOT_FOUND"
	CodeOperatorNotFound            = "OPERATOR_NOT_FOUND"
	CodeIDMismatch                  = "ID_MISMATCH"
	CodeInvalidState                = "INVALID_STATE"
	CodeInvalidRequestState         = "INVALID_REQUEST_STATE"
	CodeAlreadyCancelled            = "ALREADY_CANCELLED"
	CodeCannotCancelClosed          = "CANNOT_CANCEL_CLOSED"
	CodeInvalidStateForCancellation = "INVALID_STATE_FOR_CANCELLATION"
	CodeDuplicateMission            = "DUPLICATE_MISSION"
	CodeNoCaposquadra               = "NO_CAPOSQUADRA"
	CodeInvalidAssignment           = "INVALID_ASSIGNMENT"
	CodeAlreadyClosed               = "ALREADY_CLOSED"
	CodeInvalidSuccessLevel         = "INVALID_SUCCESS_LEVEL"
	CodeCommentRequired             = "COMMENT_REQUIRED"
	CodeStateChanged                = "STATE_CHANGED"
	CodeConcurrentUpdate            = "CONCURRENT_UPDATE"
	CodeRateLimited                 = "RATE_LIMITED"
	CodeAccessDenied                = "ACCESS_DENIED"
	CodeUnauthorized                = "UNAUTHORIZED"
	CodeDatabase                    = "DATABASE_ERROR"
	CodeInternal                    = "INTERNAL_ERROR"
)

// Error is a business failure returned by the services. Kind is one of the
// package sentinels so callers can keep using errors.Is.
type Error struct {
	Kind    error
	Code    string
	Message string
	Field   string
	Err     error
}

func (err *Error) Error() string {
	if err.Err != nil {
		return fmt.Sprintf("%s: %s: %v", err.Code, err.Message, err.Err)
	}
	return err.Code + ": " + err.Message
}

func (err *Error) Unwrap() []error {
	if err.Err == nil {
		return []error{err.Kind}
	}
	return []error{err.Kind, err.Err}
}

func Validation(code, field, message string) *Error {
	return &Error{Kind: ErrInvalidInput, Code: code, Field: field, Message: message}
}

func NotFound(code, message string) *Error {
	return &Error{Kind: ErrNotFound, Code: code, Message: message}
}

func InvalidState(code, message string) *Error {
	return &Error{Kind: ErrInvalidState, Code: code, Message: message}
}

func Conflict(code, message string) *Error {
	return &Error{Kind: ErrConflict, Code: code, Message: message}
}

func AccessDenied(message string) *Error {
	return &Error{Kind: ErrAccessDenied, Code: CodeAccessDenied, Message: message}
}

func RateLimited(message string) *Error {
	return &Error{Kind: ErrRateLimited, Code: CodeRateLimited, Message: message}
}

func Database(err error) *Error {
	return &Error{Kind: ErrDatabase, Code: CodeDatabase, Message: "storage failure", Err: err}
}

func Internal(err error) *Error {
	return &Error{Kind: ErrInternal, Code: CodeInternal, Message: "internal failure", Err: err}
}

// CodeOf returns the stable code carried by err, INTERNAL_ERROR otherwise.
func CodeOf(err error) string {
	var target *Error
	if errors.As(err, &target) {
		return target.Code
	}
	return CodeInternal
}
