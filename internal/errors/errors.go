package errors

import "fmt"

// ErrorCode represents a jobtrack error code.
type ErrorCode string

const (
	ErrInvalidRequest ErrorCode = "INVALID_REQUEST" // 400
	ErrNotFound       ErrorCode = "NOT_FOUND"       // 404
	ErrReplyPending   ErrorCode = "REPLY_PENDING"   // 409
	ErrParse          ErrorCode = "PARSE"           // 422
	ErrInternal       ErrorCode = "INTERNAL"        // 500
)

// TrackError represents a structured error with code, status, and details.
type TrackError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *TrackError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidRequest creates a 400 error for invalid request parameters.
func NewInvalidRequest(msg string) *TrackError {
	return &TrackError{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewNotFound creates a 404 error for when a company cannot be found.
func NewNotFound(id string) *TrackError {
	return &TrackError{
		Code:    ErrNotFound,
		Status:  404,
		Message: fmt.Sprintf("company not found: %s", id),
		Details: map[string]any{"id": id},
	}
}

// NewReplyPending creates a 409 error for sends while a chat reply is in flight.
func NewReplyPending() *TrackError {
	return &TrackError{
		Code:    ErrReplyPending,
		Status:  409,
		Message: "a reply is already pending; wait for it before sending again",
	}
}

// NewParse creates a 422 error for persisted data that fails to decode.
func NewParse(namespace string, err error) *TrackError {
	msg := "malformed persisted data"
	if err != nil {
		msg = err.Error()
	}
	return &TrackError{
		Code:    ErrParse,
		Status:  422,
		Message: msg,
		Details: map[string]any{"namespace": namespace},
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
func NewInternal(err error) *TrackError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &TrackError{
		Code:    ErrInternal,
		Status:  500,
		Message: msg,
	}
}

// Is checks if an error is a TrackError with the given code.
func Is(err error, code ErrorCode) bool {
	if tErr, ok := err.(*TrackError); ok {
		return tErr.Code == code
	}
	return false
}
