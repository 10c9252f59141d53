// Package filter derives the browsable case list from the full
// collection: a free-text query and three categorical selections, all
// ANDed, preserving input order.
package filter

import (
	"strings"

	"github.com/evidence-for-accountability/ecc-tracker-api/models"
)

// All is the sentinel selection value that matches every case
const All = "All"

// Selection holds the three dropdown filters. Empty values behave like
// All.
type Selection struct {
	Division string
	Type     string
	Status   string
}

// Apply returns the cases matching the query and selection, in their
// input order. No match yields an empty (non-nil) slice.
func Apply(cases []models.Case, query string, sel Selection) []models.Case {
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]models.Case, 0, len(cases))
	for _, c := range cases {
		if !matches(sel.Division, c.Division) ||
			!matches(sel.Type, c.Type) ||
			!matches(sel.Status, c.Enforcement.ImplementationStatus) {
			continue
		}
		if q != "" && !strings.Contains(searchText(c), q) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func matches(selected, value string) bool {
	return selected == "" || selected == All || selected == value
}

// searchText joins the fields the free-text query runs against
func searchText(c models.Case) string {
	return strings.ToLower(strings.Join([]string{
		c.CaseID, c.Title, c.Respondent, c.Subject, c.SiteName, c.Division, c.Type,
	}, " "))
}
