// Package ops contains the tracker's operations. The CLI, web UI, and MCP
// surfaces are thin mappers onto these functions.
package ops

import (
	"time"

	"github.com/ayumik/jobtrack/internal/errors"
	"github.com/ayumik/jobtrack/internal/schedule"
)

// validateDate checks an optional YYYY-MM-DD date string. Empty is allowed
// (no interview scheduled).
func validateDate(date string) error {
	if date == "" {
		return nil
	}
	if _, err := time.ParseInLocation(schedule.DateLayout, date, time.Local); err != nil {
		return errors.NewInvalidRequest("date must be YYYY-MM-DD: " + date)
	}
	return nil
}
