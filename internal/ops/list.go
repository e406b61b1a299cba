package ops

import (
	"sort"
	"strings"

	"github.com/ayumik/jobtrack/internal/company"
	"github.com/ayumik/jobtrack/internal/repo"
)

// ListInput contains optional filters for the List operation.
type ListInput struct {
	Search   string // case-insensitive substring match on name
	Industry string // exact match
	Priority string // exact match
}

// ListOutput contains the result of the List operation.
type ListOutput struct {
	Items      []company.Company `json:"items"`
	Total      int               `json:"total"`
	Industries []string          `json:"industries"`
}

// List returns companies in stored order, filtered. Industries is the
// sorted distinct industry set of the whole collection, for filter UIs.
func List(r *repo.Repository, input ListInput) (*ListOutput, error) {
	companies, err := r.List()
	if err != nil {
		return nil, err
	}

	industrySet := make(map[string]bool)
	for _, c := range companies {
		industrySet[c.Industry] = true
	}
	industries := make([]string, 0, len(industrySet))
	for ind := range industrySet {
		industries = append(industries, ind)
	}
	sort.Strings(industries)

	search := strings.ToLower(strings.TrimSpace(input.Search))
	items := make([]company.Company, 0, len(companies))
	for _, c := range companies {
		if search != "" && !strings.Contains(strings.ToLower(c.Name), search) {
			continue
		}
		if input.Industry != "" && c.Industry != input.Industry {
			continue
		}
		if input.Priority != "" && string(c.Priority) != input.Priority {
			continue
		}
		items = append(items, c)
	}

	return &ListOutput{
		Items:      items,
		Total:      len(items),
		Industries: industries,
	}, nil
}
