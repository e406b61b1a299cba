package ops

import (
	"github.com/ayumik/jobtrack/internal/company"
	"github.com/ayumik/jobtrack/internal/repo"
)

// StatusCount is the number of companies at one selection step.
type StatusCount struct {
	Status company.Status `json:"status"`
	Count  int            `json:"count"`
}

// PriorityCount is the number of companies at one priority rank.
type PriorityCount struct {
	Priority company.Priority `json:"priority"`
	Count    int              `json:"count"`
}

// SummaryOutput contains the aggregates behind the progress dashboard.
type SummaryOutput struct {
	Total         int             `json:"total"`
	WithInterview int             `json:"with_interview"`
	ByStatus      []StatusCount   `json:"by_status"`
	ByPriority    []PriorityCount `json:"by_priority"`
}

// Summary computes dashboard aggregates: totals, companies with a scheduled
// interview, and counts per selection step and per priority. Both breakdowns
// keep their canonical order, including zero buckets.
func Summary(r *repo.Repository) (*SummaryOutput, error) {
	companies, err := r.List()
	if err != nil {
		return nil, err
	}

	withInterview := 0
	statusCounts := make(map[company.Status]int)
	priorityCounts := make(map[company.Priority]int)
	for _, c := range companies {
		if c.InterviewDate != "" {
			withInterview++
		}
		statusCounts[c.Status]++
		priorityCounts[c.Priority]++
	}

	byStatus := make([]StatusCount, 0, len(company.Steps()))
	for _, step := range company.Steps() {
		byStatus = append(byStatus, StatusCount{Status: step, Count: statusCounts[step]})
	}

	byPriority := make([]PriorityCount, 0, len(company.Priorities))
	for _, p := range company.Priorities {
		byPriority = append(byPriority, PriorityCount{Priority: p, Count: priorityCounts[p]})
	}

	return &SummaryOutput{
		Total:         len(companies),
		WithInterview: withInterview,
		ByStatus:      byStatus,
		ByPriority:    byPriority,
	}, nil
}
