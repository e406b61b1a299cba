package errors

import (
	"errors"
	"testing"
)

func TestNewNotFound(t *testing.T) {
	err := NewNotFound("01ABC")

	if err.Code != ErrNotFound {
		t.Errorf("Code = %q, want %q", err.Code, ErrNotFound)
	}
	if err.Status != 404 {
		t.Errorf("Status = %d, want 404", err.Status)
	}
	if err.Details["id"] != "01ABC" {
		t.Errorf("Details[id] = %v, want 01ABC", err.Details["id"])
	}
}

func TestNewReplyPending(t *testing.T) {
	err := NewReplyPending()
	if err.Code != ErrReplyPending {
		t.Errorf("Code = %q, want %q", err.Code, ErrReplyPending)
	}
	if err.Status != 409 {
		t.Errorf("Status = %d, want 409", err.Status)
	}
}

func TestIs(t *testing.T) {
	if !Is(NewInvalidRequest("bad"), ErrInvalidRequest) {
		t.Error("Is should match the error's own code")
	}
	if Is(NewInvalidRequest("bad"), ErrNotFound) {
		t.Error("Is should not match a different code")
	}
	if Is(errors.New("plain"), ErrInternal) {
		t.Error("Is should not match a non-TrackError")
	}
	if Is(nil, ErrInternal) {
		t.Error("Is should not match nil")
	}
}

func TestError_Message(t *testing.T) {
	err := NewInvalidRequest("name is required")
	if err.Error() == "" {
		t.Error("Error() should not be empty")
	}
}
