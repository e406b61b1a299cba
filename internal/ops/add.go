package ops

import (
	"strings"

	"github.com/ayumik/jobtrack/internal/company"
	"github.com/ayumik/jobtrack/internal/errors"
	"github.com/ayumik/jobtrack/internal/repo"
)

// AddInput contains parameters for the Add operation.
type AddInput struct {
	Name          string
	Industry      string
	Priority      string // A/B/C, default B
	InterviewDate string // optional YYYY-MM-DD
	Memo          string
}

// AddOutput contains the result of the Add operation.
type AddOutput struct {
	ID      string          `json:"id"`
	Company company.Company `json:"company"`
}

// Add registers a new company. Status always starts at the first selection
// step.
func Add(r *repo.Repository, input AddInput) (*AddOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.NewInvalidRequest("name is required")
	}
	industry := strings.TrimSpace(input.Industry)
	if industry == "" {
		return nil, errors.NewInvalidRequest("industry is required")
	}

	priority := company.Priority(input.Priority)
	if input.Priority == "" {
		priority = company.PriorityB
	} else if !priority.Valid() {
		return nil, errors.NewInvalidRequest("priority must be one of: A, B, C")
	}

	if err := validateDate(input.InterviewDate); err != nil {
		return nil, err
	}

	c, err := company.New(name, industry, priority, input.InterviewDate, input.Memo)
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	if err := r.Save(c); err != nil {
		return nil, err
	}

	return &AddOutput{ID: c.ID, Company: c}, nil
}
