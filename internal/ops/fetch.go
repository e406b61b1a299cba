package ops

import (
	"github.com/ayumik/jobtrack/internal/company"
	"github.com/ayumik/jobtrack/internal/repo"
)

// FetchOutput contains the result of the Fetch operation.
type FetchOutput struct {
	company.Company
	CurrentStepIndex int `json:"current_step_index"`
}

// Fetch retrieves a company by id, annotated with its position in the
// selection sequence.
func Fetch(r *repo.Repository, id string) (*FetchOutput, error) {
	c, err := r.Get(id)
	if err != nil {
		return nil, err
	}

	return &FetchOutput{
		Company:          *c,
		CurrentStepIndex: company.StepIndex(c.Status),
	}, nil
}
