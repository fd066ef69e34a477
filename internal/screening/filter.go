package screening

import (
	"strings"

	"golang.org/x/text/cases"
)

// Criteria describes the optional filter predicates applied to a collection.
// Zero-valued fields impose no constraint.
type Criteria struct {
	Venue         string
	AvailableOnly bool
	Title         string
	Keyword       string
}

var foldCaser = cases.Fold()

// containsFold reports whether substr occurs in s under Unicode case folding.
func containsFold(s, substr string) bool {
	return strings.Contains(foldCaser.String(s), foldCaser.String(substr))
}

// Filter returns the subsequence of items satisfying every supplied criterion,
// preserving input order. Venue matches against both the short code and the
// full name; keyword matches against any tag.
func Filter(items []Screening, c Criteria) []Screening {
	out := make([]Screening, 0, len(items))
	for _, item := range items {
		if c.Venue != "" && !containsFold(item.Venue.ShortName, c.Venue) && !containsFold(item.Venue.Name, c.Venue) {
			continue
		}
		if c.AvailableOnly && !item.Available() {
			continue
		}
		if c.Title != "" && !containsFold(item.Title, c.Title) {
			continue
		}
		if c.Keyword != "" && !keywordMatch(item.Keywords, c.Keyword) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func keywordMatch(keywords []string, query string) bool {
	for _, k := range keywords {
		if containsFold(k, query) {
			return true
		}
	}
	return false
}
