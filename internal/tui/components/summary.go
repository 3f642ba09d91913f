package components

import (
	"fmt"

	"github.com/alexisbeaulieu97/cookieshop/internal/catalog"
)

// SummaryData aggregates counts for the list status line.
type SummaryData struct {
	Section catalog.Category
	Total   int
	Visible int
	Query   string
}

// Summary renders a one-line description of what the list shows.
type Summary struct {
	data SummaryData
}

// NewSummary creates a new Summary component.
func NewSummary(data SummaryData) Summary {
	return Summary{data: data}
}

// View renders the summary.
func (s Summary) View() string {
	noun := string(s.data.Section)
	if s.data.Total == 1 {
		noun = s.data.Section.Singular()
	}

	if s.data.Query == "" {
		return fmt.Sprintf("%d %s", s.data.Total, noun)
	}
	return fmt.Sprintf("%d of %d %s match %q", s.data.Visible, s.data.Total, noun, s.data.Query)
}
