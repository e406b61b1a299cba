// Package schedule holds the pure calendar and reminder computations.
// All date math happens at day granularity: dates are YYYY-MM-DD strings
// parsed as local midnight, so time-of-day and timezone drift cannot move
// an interview across a day boundary.
package schedule

import (
	"fmt"
	"time"

	"github.com/ayumik/jobtrack/internal/company"
)

// DateLayout is the calendar date format used throughout the tracker.
const DateLayout = "2006-01-02"

// Day is one cell of the month grid.
type Day struct {
	Day       int               `json:"day"`
	Date      string            `json:"date"` // YYYY-MM-DD
	Weekday   int               `json:"weekday"`
	IsToday   bool              `json:"is_today"`
	Companies []company.Company `json:"companies"`
}

// Month is a computed month grid. Leading is the number of blank cells
// before day 1 when the grid is laid out in weeks starting on Sunday.
type Month struct {
	Year    int   `json:"year"`
	Month   int   `json:"month"` // zero-based, 0 = January
	Leading int   `json:"leading"`
	Days    []Day `json:"days"`
}

// MonthGrid computes the grid for the given zero-based month. Companies are
// bucketed into the day whose date string equals their interview date, in
// input order. The cell matching today (day-truncated) is marked.
func MonthGrid(companies []company.Company, year, month int, today time.Time) Month {
	first := time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.Local)
	// Day zero of the next month is the last day of this one.
	daysInMonth := time.Date(year, time.Month(month+2), 0, 0, 0, 0, 0, time.Local).Day()

	byDate := make(map[string][]company.Company)
	for _, c := range companies {
		if c.InterviewDate != "" {
			byDate[c.InterviewDate] = append(byDate[c.InterviewDate], c)
		}
	}

	todayStr := today.Format(DateLayout)

	days := make([]Day, 0, daysInMonth)
	for d := 1; d <= daysInMonth; d++ {
		date := fmt.Sprintf("%04d-%02d-%02d", year, month+1, d)
		events := byDate[date]
		if events == nil {
			events = []company.Company{}
		}
		days = append(days, Day{
			Day:       d,
			Date:      date,
			Weekday:   (int(first.Weekday()) + d - 1) % 7,
			IsToday:   date == todayStr,
			Companies: events,
		})
	}

	return Month{
		Year:    year,
		Month:   month,
		Leading: int(first.Weekday()),
		Days:    days,
	}
}

// PrevMonth steps one month back, wrapping across the year boundary.
func PrevMonth(year, month int) (int, int) {
	if month == 0 {
		return year - 1, 11
	}
	return year, month - 1
}

// NextMonth steps one month forward, wrapping across the year boundary.
func NextMonth(year, month int) (int, int) {
	if month == 11 {
		return year + 1, 0
	}
	return year, month + 1
}
