package audienceview

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"marquee/internal/screening"
)

// Scraper drives the day-by-day fetch loop and folds decoded rows into one
// deduplicated, chronologically ordered collection.
type Scraper struct {
	client *Client
	logger *slog.Logger
}

// NewScraper wires a Scraper over a Client.
func NewScraper(client *Client, logger *slog.Logger) *Scraper {
	return &Scraper{client: client, logger: logger}
}

// Run fetches days sequentially starting at start. A failed day is logged and
// left out of the aggregate; a detected challenge aborts the whole run.
func (s *Scraper) Run(ctx context.Context, start time.Time, days int) ([]screening.Screening, error) {
	logger := s.logger.With("run_id", uuid.NewString()[:8])
	logger.Info("scrape starting", "start", start.Format("2006-01-02"), "days", days)

	agg := screening.NewAggregator()
	for offset := 0; offset < days; offset++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		date := start.AddDate(0, 0, offset)
		dayLogger := logger.With("date", date.Format("2006-01-02"))

		markup, err := s.client.FetchDay(ctx, date)
		if err != nil {
			if errors.Is(err, ErrChallenged) {
				return nil, err
			}
			dayLogger.Warn("day fetch failed, skipping", "error", err)
			continue
		}

		rows, err := ExtractRows(markup, dayLogger)
		if err != nil {
			// only ErrChallenged escapes ExtractRows
			return nil, err
		}

		admitted := 0
		for _, row := range rows {
			item, err := DecodeRow(row)
			if err != nil {
				dayLogger.Warn("row skipped", "error", err)
				continue
			}
			if IsPlaceholder(item) {
				continue
			}
			admitted += agg.Add(item)
		}
		dayLogger.Info("day fetched", "rows", len(rows), "admitted", admitted)
	}

	items := agg.Screenings()
	logger.Info("scrape finished", "total", len(items))
	return items, nil
}
