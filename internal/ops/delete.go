package ops

import (
	"github.com/ayumik/jobtrack/internal/repo"
)

// DeleteOutput contains the result of the Delete operation.
type DeleteOutput struct {
	Deleted bool   `json:"deleted"`
	ID      string `json:"id"`
}

// Delete removes a company. The id is verified first so callers get a
// NOT_FOUND instead of a silent no-op.
func Delete(r *repo.Repository, id string) (*DeleteOutput, error) {
	if _, err := r.Get(id); err != nil {
		return nil, err
	}

	if err := r.Delete(id); err != nil {
		return nil, err
	}

	return &DeleteOutput{Deleted: true, ID: id}, nil
}
