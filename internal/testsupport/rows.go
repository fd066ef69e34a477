package testsupport

import (
	"fmt"
	"strings"
)

// RowSpec describes one screening row as the ticketing site lays it out.
// Zero-valued fields become empty strings in the built row.
type RowSpec struct {
	ID          string
	Title       string
	Time        string
	Day         string
	Month       string
	Year        string
	SalesStatus string
	Available   string
	Seats       string
	Keywords    string
	ArticleURL  string
	VenueID     string
	VenueName   string
	VenueShort  string
	MinPrice    string
	MaxPrice    string
}

// rowWidth matches the column count the live site emits.
const rowWidth = 82

// Build places the fields at the site's fixed column positions.
func (r RowSpec) Build() []any {
	row := make([]any, rowWidth)
	for i := range row {
		row[i] = ""
	}
	row[0] = r.ID
	row[5] = r.Title
	row[8] = r.Time
	row[9] = r.Day
	row[10] = r.Month
	row[11] = r.Year
	row[14] = r.SalesStatus
	row[15] = r.Available
	row[16] = r.Seats
	row[17] = r.Keywords
	row[18] = r.ArticleURL
	row[62] = r.VenueID
	row[63] = r.VenueName
	row[64] = r.VenueShort
	row[80] = r.MinPrice
	row[81] = r.MaxPrice
	return row
}

// Literal renders the row as the site's loosely quoted array literal:
// single-quoted strings with a trailing separator.
func (r RowSpec) Literal() string {
	row := r.Build()
	parts := make([]string, len(row))
	for i, v := range row {
		parts[i] = fmt.Sprintf("'%v'", v)
	}
	return "[" + strings.Join(parts, ",") + ",]"
}

// ListingsPage wraps row literals in markup resembling the site's
// server-rendered search page.
func ListingsPage(rowLiterals ...string) string {
	var b strings.Builder
	b.WriteString("<html><head><title>What's On</title></head><body>\n")
	b.WriteString("<div id=\"results\"></div>\n<script>\nvar articleContext = {\n")
	b.WriteString("    searchResults : [ ")
	b.WriteString(strings.Join(rowLiterals, ", "))
	b.WriteString(" ],\n    searchFilters : [],\n};\n</script>\n</body></html>\n")
	return b.String()
}
