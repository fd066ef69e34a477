package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"marquee/internal/cookies"
)

func newCookiesCommand(ctx *commandContext) *cobra.Command {
	var diagnose bool

	cmd := &cobra.Command{
		Use:   "cookies",
		Short: "Check Firefox cookie extraction",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			profileDir, err := cookies.DefaultProfileDir(logger)
			if err != nil {
				return err
			}
			store := cookies.NewStore(profileDir, logger)
			out := cmd.OutOrStdout()

			if diagnose {
				match := diagnosisMatch(cfg.Site.Host)
				found, err := store.Diagnose(cmd.Context(), match)
				if err != nil {
					return err
				}
				if len(found) == 0 {
					fmt.Fprintf(out, "No cookies matching %q in %s\n", match, profileDir)
					return nil
				}
				rows := make([][]string, 0, len(found))
				for _, c := range found {
					rows = append(rows, []string{c.Host, c.Name, strconv.FormatBool(c.Secure), truncate(c.Value, 40)})
				}
				fmt.Fprintln(out, renderTable([]string{"Host", "Name", "Secure", "Value"}, rows))
				return nil
			}

			jar, err := store.Load(cmd.Context(), cfg.Site.Host)
			if err != nil {
				return fmt.Errorf("%w (close Firefox completely and retry, or run with --diagnose)", err)
			}

			fmt.Fprintf(out, "Found %d cookies for %s\n", len(jar), cfg.Site.Host)
			for _, name := range []string{"cf_clearance", "__cf_bm"} {
				if value, ok := jar[name]; ok {
					fmt.Fprintf(out, "  %s: %s\n", name, truncate(value, 50))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&diagnose, "diagnose", false, "Dump every cookie whose host matches the site")
	return cmd
}

// diagnosisMatch picks the loosest useful LIKE fragment for the configured
// host: the first label of the registrable domain.
func diagnosisMatch(host string) string {
	domain := cookies.ParentDomain(host)
	if domain == "" {
		domain = host
	}
	if i := strings.IndexByte(domain, '.'); i > 0 {
		return domain[:i]
	}
	return domain
}

func truncate(value string, max int) string {
	if len(value) <= max {
		return value
	}
	return value[:max] + "..."
}
