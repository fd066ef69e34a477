package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"marquee/internal/webui"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	var (
		port    int
		refresh bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the screening calendar over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if refresh {
				if _, err := refreshCatalog(runCtx, cfg, logger, 0); err != nil {
					return err
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Serving on http://localhost:%d\n", port)
			return webui.NewServer(cfg, logger, port).Run(runCtx)
		},
	}

	cmd.Flags().IntVar(&port, "port", 8000, "Port to listen on")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "Fetch fresh data before serving")
	return cmd
}
