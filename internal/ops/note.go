package ops

import (
	"strings"
	"time"

	"github.com/ayumik/jobtrack/internal/company"
	"github.com/ayumik/jobtrack/internal/errors"
	"github.com/ayumik/jobtrack/internal/repo"
)

// AddNoteInput contains parameters for the AddNote operation.
type AddNoteInput struct {
	CompanyID string
	Title     string
	Content   string
}

// AddNoteOutput contains the result of the AddNote operation.
type AddNoteOutput struct {
	NoteID  string          `json:"note_id"`
	Company company.Company `json:"company"`
}

// AddNote appends a note to the company and persists the whole record.
func AddNote(r *repo.Repository, input AddNoteInput) (*AddNoteOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, errors.NewInvalidRequest("note title is required")
	}

	c, err := r.Get(input.CompanyID)
	if err != nil {
		return nil, err
	}

	id, err := company.NewID()
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	c.Notes = append(c.Notes, company.Note{
		ID:        id,
		Title:     title,
		Content:   input.Content,
		CreatedAt: time.Now().Format(time.RFC3339),
	})

	if err := r.Save(*c); err != nil {
		return nil, err
	}

	return &AddNoteOutput{NoteID: id, Company: *c}, nil
}

// DeleteNoteInput contains parameters for the DeleteNote operation.
type DeleteNoteInput struct {
	CompanyID string
	NoteID    string
}

// DeleteNote removes a note from the company. An unknown note id is an
// invalid request, not a silent no-op.
func DeleteNote(r *repo.Repository, input DeleteNoteInput) (*AddNoteOutput, error) {
	c, err := r.Get(input.CompanyID)
	if err != nil {
		return nil, err
	}

	kept := make([]company.Note, 0, len(c.Notes))
	found := false
	for _, n := range c.Notes {
		if n.ID == input.NoteID {
			found = true
			continue
		}
		kept = append(kept, n)
	}
	if !found {
		return nil, errors.NewInvalidRequest("note not found: " + input.NoteID)
	}

	c.Notes = kept
	if err := r.Save(*c); err != nil {
		return nil, err
	}

	return &AddNoteOutput{NoteID: input.NoteID, Company: *c}, nil
}
