package audienceview_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"marquee/internal/audienceview"
	"marquee/internal/config"
	"marquee/internal/logging"
	"marquee/internal/screening"
	"marquee/internal/testsupport"
)

// newScraper points a Scraper at a test server standing in for the site.
func newScraper(t *testing.T, pages map[string]http.HandlerFunc) *audienceview.Scraper {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		day := r.URL.Query().Get("BOset::WScontent::SearchCriteria::search_from")
		handler, ok := pages[day]
		if !ok {
			t.Errorf("unexpected fetch for %q", day)
			http.NotFound(w, r)
			return
		}
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	cfg := config.Default()
	cfg.Site.BaseURL = server.URL
	client := audienceview.NewClient(&cfg, map[string]string{"cf_clearance": "token"})
	return audienceview.NewScraper(client, logging.NewNop())
}

func servePage(markup string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, markup)
	}
}

func dayRow(id, day, availability string) string {
	spec := testsupport.RowSpec{
		ID: id, Title: "Film " + id, Time: "19:00", Day: day, Month: "0", Year: "2026",
		SalesStatus: "S", Available: availability,
		VenueID: "v1", VenueName: "Main Theatre", VenueShort: "NFT1",
	}
	return spec.Literal()
}

func TestScraperRunDeduplicatesAcrossDays(t *testing.T) {
	// "999" appears on both days with conflicting availability codes
	scraper := newScraper(t, map[string]http.HandlerFunc{
		"2026-01-05": servePage(testsupport.ListingsPage(
			dayRow("999", "5", "G"),
			dayRow("111", "5", "E"),
		)),
		"2026-01-06": servePage(testsupport.ListingsPage(
			dayRow("999", "6", "S"),
		)),
	})

	start := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.Local)
	items, err := scraper.Run(context.Background(), start, 2)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(items) != 2 {
		t.Fatalf("got %d screenings, want 2", len(items))
	}
	byID := make(map[string]screening.Screening, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}
	if byID["999"].Availability != screening.AvailabilityGood {
		t.Fatalf("duplicate must keep the first day's version, got %q", byID["999"].Availability)
	}
}

func TestScraperRunSortsChronologically(t *testing.T) {
	scraper := newScraper(t, map[string]http.HandlerFunc{
		"2026-01-05": servePage(testsupport.ListingsPage(
			dayRow("2", "6", "G"),
			dayRow("1", "5", "G"),
		)),
	})

	start := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.Local)
	items, err := scraper.Run(context.Background(), start, 1)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(items) != 2 || items[0].ID != "1" || items[1].ID != "2" {
		t.Fatalf("unexpected order: %+v", items)
	}
}

func TestScraperRunChallengeAborts(t *testing.T) {
	scraper := newScraper(t, map[string]http.HandlerFunc{
		"2026-01-05": servePage(`<html><div id="cf-browser-verification"></div></html>`),
	})

	start := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.Local)
	if _, err := scraper.Run(context.Background(), start, 2); !errors.Is(err, audienceview.ErrChallenged) {
		t.Fatalf("expected ErrChallenged, got %v", err)
	}
}

func TestScraperRunForbiddenAborts(t *testing.T) {
	scraper := newScraper(t, map[string]http.HandlerFunc{
		"2026-01-05": func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		},
	})

	start := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.Local)
	if _, err := scraper.Run(context.Background(), start, 2); !errors.Is(err, audienceview.ErrChallenged) {
		t.Fatalf("expected ErrChallenged on 403, got %v", err)
	}
}

func TestScraperRunSkipsFailedDay(t *testing.T) {
	scraper := newScraper(t, map[string]http.HandlerFunc{
		"2026-01-05": servePage(testsupport.ListingsPage(dayRow("1", "5", "G"))),
		"2026-01-06": func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		},
		"2026-01-07": servePage(testsupport.ListingsPage(dayRow("3", "7", "G"))),
	})

	start := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.Local)
	items, err := scraper.Run(context.Background(), start, 3)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d screenings, want 2 (failed day skipped)", len(items))
	}
}

func TestScraperRunSkipsPlaceholdersAndBadRows(t *testing.T) {
	placeholder := testsupport.RowSpec{
		ID: "55", Title: "Library Research Session", Time: "10:00", Day: "5", Month: "0", Year: "2026",
		SalesStatus: "S", Available: "G",
	}
	broken := testsupport.RowSpec{
		ID: "66", Title: "Broken Row", Time: "bad", Day: "5", Month: "0", Year: "2026",
		SalesStatus: "S", Available: "G",
	}
	scraper := newScraper(t, map[string]http.HandlerFunc{
		"2026-01-05": servePage(testsupport.ListingsPage(
			placeholder.Literal(),
			broken.Literal(),
			dayRow("1", "5", "G"),
		)),
	})

	start := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.Local)
	items, err := scraper.Run(context.Background(), start, 1)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(items) != 1 || items[0].ID != "1" {
		t.Fatalf("unexpected screenings: %+v", items)
	}
}

func TestScraperRunHonorsContext(t *testing.T) {
	scraper := newScraper(t, map[string]http.HandlerFunc{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := scraper.Run(ctx, time.Now(), 3); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context error, got %v", err)
	}
}
