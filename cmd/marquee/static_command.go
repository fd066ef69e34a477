package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/renameio/v2"
	"github.com/spf13/cobra"

	"marquee/internal/config"
	"marquee/internal/webui"
)

func newStaticCommand(ctx *commandContext) *cobra.Command {
	var (
		output  string
		days    int
		refresh bool
	)

	cmd := &cobra.Command{
		Use:   "static",
		Short: "Generate a static HTML calendar",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			items, err := loadOrRefresh(cmd.Context(), cfg, logger, days, refresh)
			if err != nil {
				return err
			}

			target, err := config.ExpandPath(output)
			if err != nil {
				return err
			}

			now := time.Now()
			upcoming := items[:0:0]
			for _, item := range items {
				if !item.DateTime.Before(now) {
					upcoming = append(upcoming, item)
				}
			}

			var buf bytes.Buffer
			if err := webui.Render(&buf, upcoming, cfg.Site.OnlineBase(), now); err != nil {
				return err
			}

			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}
			if err := renameio.WriteFile(target, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", target, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Generated %s with %d screenings\n", target, len(upcoming))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "marquee.html", "Output file path")
	cmd.Flags().IntVar(&days, "days", 0, "Days ahead when a fetch is needed")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "Fetch fresh data before generating")
	return cmd
}
