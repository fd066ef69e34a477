package webui

import (
	"fmt"
	"html/template"
	"io"
	"sort"
	"strings"
	"time"

	_ "embed"

	"marquee/internal/screening"
)

//go:embed page.html.tmpl
var pageSource string

var pageTemplate = template.Must(template.New("page").Parse(pageSource))

type pageData struct {
	GeneratedAt string
	Venues      []string
	Groups      []dateGroup
}

type dateGroup struct {
	Date  string
	Items []pageItem
}

type pageItem struct {
	Time              string
	Title             string
	TitleLower        string
	BookingURL        string
	Venue             string
	Keywords          []string
	KeywordsLower     string
	Available         string
	DateTime          string
	AvailabilitySlug  string
	AvailabilityLabel string
}

// Render writes the calendar page for items, which must already be in
// chronological order. bookingBase is the site's online endpoint used for
// booking links; generatedAt is stamped into the header.
func Render(w io.Writer, items []screening.Screening, bookingBase string, generatedAt time.Time) error {
	data := pageData{
		GeneratedAt: generatedAt.Format("02 January 2006 at 15:04"),
		Venues:      venueNames(items),
	}

	for _, item := range items {
		date := item.DateString()
		if n := len(data.Groups); n == 0 || data.Groups[n-1].Date != date {
			data.Groups = append(data.Groups, dateGroup{Date: date})
		}
		group := &data.Groups[len(data.Groups)-1]

		available := "no"
		if item.Available() {
			available = "yes"
		}
		group.Items = append(group.Items, pageItem{
			Time:              item.TimeString(),
			Title:             item.Title,
			TitleLower:        strings.ToLower(item.Title),
			BookingURL:        item.BookingURL(bookingBase),
			Venue:             item.Venue.ShortName,
			Keywords:          item.Keywords,
			KeywordsLower:     strings.ToLower(strings.Join(item.Keywords, ",")),
			Available:         available,
			DateTime:          item.DateTime.Format("2006-01-02T15:04:05"),
			AvailabilitySlug:  item.Availability.Slug(),
			AvailabilityLabel: item.Availability.Label(),
		})
	}

	if err := pageTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}

// venueNames collects the distinct venue short names for the filter dropdown.
func venueNames(items []screening.Screening) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, item := range items {
		name := item.Venue.ShortName
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
