package schedule

import (
	"fmt"
	"sort"
	"time"

	"github.com/ayumik/jobtrack/internal/company"
)

// DefaultReminderWindowDays is the forward-looking reminder window.
const DefaultReminderWindowDays = 3

// Reminder is a company whose interview falls inside the reminder window.
type Reminder struct {
	Company     company.Company `json:"company"`
	Date        string          `json:"date"`
	DaysFromNow int             `json:"days_from_now"`
	Label       string          `json:"label"` // 本日 / 明日 / N日後
}

// Upcoming returns companies whose interview date lies in
// [today, today+windowDays], sorted ascending by date. Companies without an
// interview date are excluded. windowDays <= 0 falls back to the default.
func Upcoming(companies []company.Company, today time.Time, windowDays int) []Reminder {
	if windowDays <= 0 {
		windowDays = DefaultReminderWindowDays
	}

	start := truncateToDay(today)
	end := start.AddDate(0, 0, windowDays)

	reminders := make([]Reminder, 0)
	for _, c := range companies {
		if c.InterviewDate == "" {
			continue
		}
		d, err := time.ParseInLocation(DateLayout, c.InterviewDate, time.Local)
		if err != nil {
			continue
		}
		if d.Before(start) || d.After(end) {
			continue
		}
		days := int(d.Sub(start).Hours()/24 + 0.5)
		reminders = append(reminders, Reminder{
			Company:     c,
			Date:        c.InterviewDate,
			DaysFromNow: days,
			Label:       offsetLabel(days),
		})
	}

	sort.SliceStable(reminders, func(i, j int) bool {
		return reminders[i].Date < reminders[j].Date
	})
	return reminders
}

// offsetLabel renders a day offset for display.
func offsetLabel(days int) string {
	switch days {
	case 0:
		return "本日"
	case 1:
		return "明日"
	default:
		return fmt.Sprintf("%d日後", days)
	}
}

// truncateToDay drops the time-of-day component in the local zone.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}
