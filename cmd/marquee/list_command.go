package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"marquee/internal/screening"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var (
		days          int
		refresh       bool
		venue         string
		title         string
		keyword       string
		availableOnly bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List screenings from the local catalog",
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

			filtered := screening.Filter(items, screening.Criteria{
				Venue:         venue,
				AvailableOnly: availableOnly,
				Title:         title,
				Keyword:       keyword,
			})

			out := cmd.OutOrStdout()
			if len(filtered) == 0 {
				fmt.Fprintln(out, "No screenings found matching your criteria.")
				return nil
			}

			if isTerminal(out) {
				printListingTable(out, filtered)
			} else {
				printListingPlain(out, filtered)
			}
			fmt.Fprintf(out, "\n%d screenings found.\n", len(filtered))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "Days ahead when a fetch is needed")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "Fetch fresh data before listing")
	cmd.Flags().StringVar(&venue, "venue", "", "Only screenings at a matching venue")
	cmd.Flags().StringVar(&title, "title", "", "Only titles containing this text")
	cmd.Flags().StringVar(&keyword, "keyword", "", "Only screenings tagged with this keyword")
	cmd.Flags().BoolVar(&availableOnly, "available-only", false, "Exclude sold out screenings")
	return cmd
}

func printListingTable(out io.Writer, items []screening.Screening) {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			item.DateString(),
			item.TimeString(),
			item.Venue.ShortName,
			strings.TrimSpace(item.Availability.Marker() + " " + item.Availability.Label()),
			item.Title,
		})
	}
	fmt.Fprintln(out, renderTable([]string{"Date", "Time", "Venue", "Availability", "Title"}, rows))
}

func printListingPlain(out io.Writer, items []screening.Screening) {
	currentDate := ""
	for _, item := range items {
		if date := item.DateString(); date != currentDate {
			currentDate = date
			fmt.Fprintf(out, "\n%s\n%s\n", date, strings.Repeat("-", len(date)))
		}
		fmt.Fprintf(out, "  %s  %s %-15s  %-5s  %s\n",
			item.TimeString(), item.Availability.Marker(), item.Availability.Label(),
			item.Venue.ShortName, item.Title)
	}
}
