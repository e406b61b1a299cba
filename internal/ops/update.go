package ops

import (
	"strings"

	"github.com/ayumik/jobtrack/internal/company"
	"github.com/ayumik/jobtrack/internal/errors"
	"github.com/ayumik/jobtrack/internal/repo"
)

// UpdateInput contains parameters for the Update operation. Nil fields are
// left unchanged.
type UpdateInput struct {
	ID            string
	Name          *string
	Industry      *string
	Priority      *string
	InterviewDate *string
	Memo          *string
}

// UpdateOutput contains the result of the Update operation.
type UpdateOutput struct {
	Company company.Company `json:"company"`
}

// Update edits a company's basic fields. ID, status, createdAt, and the
// child sequences are not touched here.
func Update(r *repo.Repository, input UpdateInput) (*UpdateOutput, error) {
	c, err := r.Get(input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, errors.NewInvalidRequest("name must not be empty")
		}
		c.Name = name
	}
	if input.Industry != nil {
		industry := strings.TrimSpace(*input.Industry)
		if industry == "" {
			return nil, errors.NewInvalidRequest("industry must not be empty")
		}
		c.Industry = industry
	}
	if input.Priority != nil {
		priority := company.Priority(*input.Priority)
		if !priority.Valid() {
			return nil, errors.NewInvalidRequest("priority must be one of: A, B, C")
		}
		c.Priority = priority
	}
	if input.InterviewDate != nil {
		if err := validateDate(*input.InterviewDate); err != nil {
			return nil, err
		}
		c.InterviewDate = *input.InterviewDate
	}
	if input.Memo != nil {
		c.Memo = *input.Memo
	}

	if err := r.Save(*c); err != nil {
		return nil, err
	}

	return &UpdateOutput{Company: *c}, nil
}
