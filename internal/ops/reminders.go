package ops

import (
	"time"

	"github.com/ayumik/jobtrack/internal/config"
	"github.com/ayumik/jobtrack/internal/repo"
	"github.com/ayumik/jobtrack/internal/schedule"
)

// RemindersOutput contains the result of the Reminders operation.
type RemindersOutput struct {
	Items      []schedule.Reminder `json:"items"`
	WindowDays int                 `json:"window_days"`
}

// Reminders returns companies whose interview falls inside the configured
// forward-looking window, sorted by date.
func Reminders(r *repo.Repository, cfg *config.Config, today time.Time) (*RemindersOutput, error) {
	companies, err := r.List()
	if err != nil {
		return nil, err
	}

	windowDays := schedule.DefaultReminderWindowDays
	if cfg != nil && cfg.ReminderWindowDays > 0 {
		windowDays = cfg.ReminderWindowDays
	}

	return &RemindersOutput{
		Items:      schedule.Upcoming(companies, today, windowDays),
		WindowDays: windowDays,
	}, nil
}
