package ops

import (
	"time"

	"github.com/ayumik/jobtrack/internal/errors"
	"github.com/ayumik/jobtrack/internal/repo"
	"github.com/ayumik/jobtrack/internal/schedule"
)

// CalendarInput contains parameters for the Calendar operation.
// Month is zero-based (0 = January), matching the grid computation.
type CalendarInput struct {
	Year  int
	Month int
	Today time.Time
}

// Calendar computes the month grid with interview events bucketed by day.
func Calendar(r *repo.Repository, input CalendarInput) (*schedule.Month, error) {
	if input.Month < 0 || input.Month > 11 {
		return nil, errors.NewInvalidRequest("month must be between 0 and 11")
	}

	companies, err := r.List()
	if err != nil {
		return nil, err
	}

	month := schedule.MonthGrid(companies, input.Year, input.Month, input.Today)
	return &month, nil
}
