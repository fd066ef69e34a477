package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"marquee/internal/audienceview"
	"marquee/internal/config"
	"marquee/internal/cookies"
	"marquee/internal/screening"
)

func newFetchCommand(ctx *commandContext) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch upcoming screenings into the local catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			items, err := refreshCatalog(cmd.Context(), cfg, logger, days)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Saved %d screenings to %s\n", len(items), cfg.CatalogPath())
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "Days ahead to fetch (defaults to site.days_ahead)")
	return cmd
}

// refreshCatalog runs a full scrape with browser cookies and persists the
// result. Days at or below zero fall back to the configured horizon.
func refreshCatalog(ctx context.Context, cfg *config.Config, logger *slog.Logger, days int) ([]screening.Screening, error) {
	if days <= 0 {
		days = cfg.Site.DaysAhead
	}

	profileDir, err := cookies.DefaultProfileDir(logger)
	if err != nil {
		return nil, err
	}
	jar, err := cookies.NewStore(profileDir, logger).Load(ctx, cfg.Site.Host)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)

	client := audienceview.NewClient(cfg, jar)
	items, err := audienceview.NewScraper(client, logger).Run(ctx, start, days)
	if err != nil {
		return nil, err
	}

	if err := screening.Save(cfg.CatalogPath(), items, now); err != nil {
		return nil, err
	}
	return items, nil
}

// loadOrRefresh serves commands that prefer the persisted catalog but fall
// back to a live fetch when it is missing or a refresh was requested.
func loadOrRefresh(ctx context.Context, cfg *config.Config, logger *slog.Logger, days int, refresh bool) ([]screening.Screening, error) {
	if !refresh {
		if _, err := os.Stat(cfg.CatalogPath()); err == nil {
			return screening.Load(cfg.CatalogPath())
		}
	}
	return refreshCatalog(ctx, cfg, logger, days)
}
