package ops

import (
	"github.com/ayumik/jobtrack/internal/company"
	"github.com/ayumik/jobtrack/internal/errors"
	"github.com/ayumik/jobtrack/internal/repo"
)

// SetStatusInput contains parameters for the SetStatus operation.
type SetStatusInput struct {
	ID     string
	Status string
}

// SetStatusOutput contains the result of the SetStatus operation.
type SetStatusOutput struct {
	ID               string         `json:"id"`
	Status           company.Status `json:"status"`
	CurrentStepIndex int            `json:"current_step_index"`
}

// SetStatus assigns the selection status directly. Any step in the sequence
// is a legal target regardless of the current step; moving backward has no
// special side effect.
func SetStatus(r *repo.Repository, input SetStatusInput) (*SetStatusOutput, error) {
	status := company.Status(input.Status)
	if !status.Valid() {
		return nil, errors.NewInvalidRequest("unknown status: " + input.Status)
	}

	c, err := r.Get(input.ID)
	if err != nil {
		return nil, err
	}

	c.Status = status
	if err := r.Save(*c); err != nil {
		return nil, err
	}

	return &SetStatusOutput{
		ID:               c.ID,
		Status:           status,
		CurrentStepIndex: company.StepIndex(status),
	}, nil
}
