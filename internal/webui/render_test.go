package webui_test

import (
	"strings"
	"testing"
	"time"

	"marquee/internal/screening"
	"marquee/internal/webui"
)

func sampleScreenings() []screening.Screening {
	seats := 12
	return []screening.Screening{
		{
			ID:           "1",
			Title:        "Mulholland Dr.",
			DateTime:     time.Date(2026, time.March, 6, 18, 10, 0, 0, time.Local),
			Venue:        screening.Venue{ID: "v1", Name: "Main Theatre", ShortName: "NFT1"},
			Availability: screening.AvailabilityGood,
			Sales:        screening.SalesOnSale,
			Keywords:     []string{"35mm"},
			ArticlePath:  "article/mulholland",
		},
		{
			ID:             "2",
			Title:          "Alien & Aliens",
			DateTime:       time.Date(2026, time.March, 7, 20, 45, 0, 0, time.Local),
			Venue:          screening.Venue{ID: "v2", Name: "Studio", ShortName: "NFT2"},
			Availability:   screening.AvailabilitySoldOut,
			Sales:          screening.SalesOnSale,
			SeatsAvailable: &seats,
		},
	}
}

func render(t *testing.T, items []screening.Screening) string {
	t.Helper()
	var b strings.Builder
	now := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.Local)
	if err := webui.Render(&b, items, "https://whatson.example.org/Online/", now); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	return b.String()
}

func TestRenderGroupsByDate(t *testing.T) {
	page := render(t, sampleScreenings())

	first := strings.Index(page, "Friday 06 March")
	second := strings.Index(page, "Saturday 07 March")
	if first < 0 || second < 0 {
		t.Fatalf("date headers missing:\n%s", page)
	}
	if first > second {
		t.Fatal("date groups out of order")
	}
	if got := strings.Count(page, `class="date-group"`); got != 2 {
		t.Fatalf("got %d date groups, want 2", got)
	}
}

func TestRenderEscapesAndLinks(t *testing.T) {
	page := render(t, sampleScreenings())

	if !strings.Contains(page, "Alien &amp; Aliens") {
		t.Fatal("title not HTML-escaped")
	}
	if !strings.Contains(page, `href="https://whatson.example.org/Online/article/mulholland"`) {
		t.Fatal("booking link missing")
	}
	if !strings.Contains(page, "https://letterboxd.com/search/Mulholland%20Dr.") {
		t.Fatal("letterboxd link missing or unescaped")
	}
}

func TestRenderFilterAttributes(t *testing.T) {
	page := render(t, sampleScreenings())

	for _, want := range []string{
		`data-title="mulholland dr."`,
		`data-venue="NFT1"`,
		`data-keywords="35mm"`,
		`data-available="yes"`,
		`data-available="no"`,
		`data-datetime="2026-03-06T18:10:00"`,
		`avail-sold_out`,
		`avail-good`,
		"Sold Out",
	} {
		if !strings.Contains(page, want) {
			t.Fatalf("page missing %q", want)
		}
	}
}

func TestRenderVenueDropdown(t *testing.T) {
	items := sampleScreenings()
	// duplicate venue and an unnamed one must not add options
	items = append(items, items[0], screening.Screening{
		ID:       "3",
		Title:    "Mystery Slot",
		DateTime: time.Date(2026, time.March, 8, 12, 0, 0, 0, time.Local),
	})

	page := render(t, items)
	if got := strings.Count(page, `<option value="NFT1">`); got != 1 {
		t.Fatalf("NFT1 option count = %d, want 1", got)
	}
	if !strings.Contains(page, `<option value="NFT2">`) {
		t.Fatal("NFT2 option missing")
	}
	if got := strings.Count(page, "<option"); got != 3 {
		t.Fatalf("got %d options, want 3 (all venues + 2 names)", got)
	}
}

func TestRenderEmptyCatalog(t *testing.T) {
	page := render(t, nil)
	if !strings.Contains(page, "No screenings match your filters.") {
		t.Fatal("empty state missing")
	}
	if strings.Contains(page, `class="date-group"`) {
		t.Fatal("unexpected date group in empty page")
	}
}
