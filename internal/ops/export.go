package ops

import (
	"time"

	"github.com/ayumik/jobtrack/internal/export"
	"github.com/ayumik/jobtrack/internal/repo"
)

// ExportInput contains parameters for the Export operation.
type ExportInput struct {
	Path    string // optional, default: <baseDir>/exports/就活管理_<date>.csv
	BaseDir string
}

// ExportOutput contains the result of the Export operation.
type ExportOutput struct {
	Path  string `json:"path"`
	Count int    `json:"count"`
}

// Export writes the full company collection to a CSV file.
func Export(r *repo.Repository, input ExportInput) (*ExportOutput, error) {
	companies, err := r.List()
	if err != nil {
		return nil, err
	}

	path := input.Path
	if path == "" {
		path = export.DefaultPath(input.BaseDir, time.Now())
	}

	if err := export.Write(path, companies); err != nil {
		return nil, err
	}

	return &ExportOutput{Path: path, Count: len(companies)}, nil
}
