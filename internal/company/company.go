// Package company defines the tracked Company record and the selection
// process state machine.
package company

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// Priority is the desirability rank of a company.
type Priority string

const (
	PriorityA Priority = "A"
	PriorityB Priority = "B"
	PriorityC Priority = "C"
)

// Priorities lists the valid priorities in display order.
var Priorities = []Priority{PriorityA, PriorityB, PriorityC}

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	return p == PriorityA || p == PriorityB || p == PriorityC
}

// Status is one step of the selection process.
type Status string

// The selection process is a fixed, totally ordered sequence of steps.
// There is no branching and no terminal lock: the status may be assigned
// to any step directly, forward or backward.
const (
	StatusDocumentScreening Status = "書類選考"
	StatusFirstInterview    Status = "一次面接"
	StatusFinalInterview    Status = "最終面接"
	StatusOffer             Status = "内定"
)

// Steps returns the ordered selection steps. The slice is a fresh copy.
func Steps() []Status {
	return []Status{
		StatusDocumentScreening,
		StatusFirstInterview,
		StatusFinalInterview,
		StatusOffer,
	}
}

// InitialStatus is the status every company starts at.
const InitialStatus = StatusDocumentScreening

// StepIndex returns the zero-based position of s in the selection sequence,
// or -1 if s is not a known step.
func StepIndex(s Status) int {
	for i, step := range Steps() {
		if step == s {
			return i
		}
	}
	return -1
}

// Valid reports whether s is one of the known selection steps.
func (s Status) Valid() bool {
	return StepIndex(s) >= 0
}

// Note is a free-form note owned by a company.
type Note struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
}

// Document is a named link owned by a company.
type Document struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Todo is a checklist item owned by a company.
type Todo struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Company is the primary tracked entity. JSON tags match the persisted
// layout, so records written by older versions of the app decode directly.
type Company struct {
	// ID is a ULID assigned at creation, immutable, never reused
	ID string `json:"id"`

	// Name is the display name of the company
	Name string `json:"name"`

	// Industry is the display industry label
	Industry string `json:"industry"`

	// Priority is the desirability rank (A, B, or C)
	Priority Priority `json:"priority"`

	// InterviewDate is an optional YYYY-MM-DD date, empty when unscheduled
	InterviewDate string `json:"interviewDate"`

	// Memo is free-form text; may contain newlines
	Memo string `json:"memo"`

	// Status is the current selection step
	Status Status `json:"status"`

	// CreatedAt is the RFC 3339 timestamp set once at creation
	CreatedAt string `json:"createdAt"`

	// Notes, Documents, and Todos are owned child sequences in insertion
	// order. Always non-nil after passing through the repository read path.
	Notes     []Note     `json:"notes"`
	Documents []Document `json:"documents"`
	Todos     []Todo     `json:"todos"`
}

// New creates a company with a fresh ID, the initial status, and empty
// child sequences. Priority defaults to B when not valid.
func New(name, industry string, priority Priority, interviewDate, memo string) (Company, error) {
	id, err := NewID()
	if err != nil {
		return Company{}, err
	}
	if !priority.Valid() {
		priority = PriorityB
	}
	return Company{
		ID:            id,
		Name:          name,
		Industry:      industry,
		Priority:      priority,
		InterviewDate: interviewDate,
		Memo:          memo,
		Status:        InitialStatus,
		CreatedAt:     time.Now().Format(time.RFC3339),
		Notes:         []Note{},
		Documents:     []Document{},
		Todos:         []Todo{},
	}, nil
}

// NewID generates a new ULID.
func NewID() (string, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
