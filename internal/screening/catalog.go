package screening

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/renameio/v2"
)

// timeLayout is the zone-less ISO-8601 form used in the persisted catalog.
const timeLayout = "2006-01-02T15:04:05"

// Catalog is the persisted fetch result: a timestamp, a count, and the ordered
// screening collection.
type Catalog struct {
	FetchedAt  string         `json:"fetched_at"`
	Count      int            `json:"count"`
	Screenings []catalogEntry `json:"screenings"`
}

type catalogEntry struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	DateTime       string   `json:"datetime"`
	VenueID        string   `json:"venue_id"`
	VenueName      string   `json:"venue_name"`
	VenueShort     string   `json:"venue_short"`
	Availability   string   `json:"availability"`
	SalesStatus    string   `json:"sales_status"`
	SeatsAvailable *int     `json:"seats_available"`
	Keywords       []string `json:"keywords"`
	MinPrice       string   `json:"min_price,omitempty"`
	MaxPrice       string   `json:"max_price,omitempty"`
	ArticleURL     string   `json:"article_url,omitempty"`
}

func toEntry(s Screening) catalogEntry {
	keywords := s.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	return catalogEntry{
		ID:             s.ID,
		Title:          s.Title,
		DateTime:       s.DateTime.Format(timeLayout),
		VenueID:        s.Venue.ID,
		VenueName:      s.Venue.Name,
		VenueShort:     s.Venue.ShortName,
		Availability:   string(s.Availability),
		SalesStatus:    string(s.Sales),
		SeatsAvailable: s.SeatsAvailable,
		Keywords:       keywords,
		MinPrice:       s.MinPrice,
		MaxPrice:       s.MaxPrice,
		ArticleURL:     s.ArticlePath,
	}
}

func (e catalogEntry) toScreening() (Screening, error) {
	dt, err := time.ParseInLocation(timeLayout, e.DateTime, time.Local)
	if err != nil {
		return Screening{}, fmt.Errorf("screening %s: parse datetime %q: %w", e.ID, e.DateTime, err)
	}
	return Screening{
		ID:       e.ID,
		Title:    e.Title,
		DateTime: dt,
		Venue: Venue{
			ID:        e.VenueID,
			Name:      e.VenueName,
			ShortName: NormalizeShortName(e.VenueShort),
		},
		Availability:   AvailabilityFromCode(e.Availability),
		Sales:          SalesStatusFromCode(e.SalesStatus),
		SeatsAvailable: e.SeatsAvailable,
		Keywords:       FilterKeywords(e.Keywords),
		MinPrice:       e.MinPrice,
		MaxPrice:       e.MaxPrice,
		ArticlePath:    e.ArticleURL,
	}, nil
}

// Save writes the screening collection to path atomically, replacing any
// previous catalog. A lock file next to the catalog keeps concurrent runs
// from interleaving writes.
func Save(path string, items []Screening, now time.Time) error {
	entries := make([]catalogEntry, len(items))
	for i, item := range items {
		entries[i] = toEntry(item)
	}
	catalog := Catalog{
		FetchedAt:  now.Format(timeLayout),
		Count:      len(entries),
		Screenings: entries,
	}

	data, err := json.MarshalIndent(catalog, "", "  ")
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}

	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock catalog: %w", err)
	}
	defer func() { _ = lock.Unlock() }()

	if err := renameio.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write catalog %s: %w", path, err)
	}
	return nil
}

// Load reads a previously saved catalog. A missing file yields an empty
// collection, not an error.
func Load(path string) ([]Screening, error) {
	lock := flock.New(path + ".lock")
	if err := lock.RLock(); err != nil {
		return nil, fmt.Errorf("lock catalog: %w", err)
	}
	defer func() { _ = lock.Unlock() }()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	var catalog Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", path, err)
	}

	items := make([]Screening, 0, len(catalog.Screenings))
	for _, entry := range catalog.Screenings {
		item, err := entry.toScreening()
		if err != nil {
			return nil, fmt.Errorf("decode catalog %s: %w", path, err)
		}
		items = append(items, item)
	}
	return items, nil
}
