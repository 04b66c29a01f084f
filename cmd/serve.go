package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/smallworld/txstats/internal/server"
)

type serveFlags struct {
	Addr string
}

func NewServeCmd(rt *runtime) *cobra.Command {
	flags := &serveFlags{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the queries as a read-only JSON HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := rt.Service(cmd.Context())
			if err != nil {
				return err
			}

			addr := flags.Addr
			if addr == "" {
				addr = rt.cfg.Server.Addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			pterm.Info.Printf("Serving %d transactions on %s\n", svc.Query.Len(), addr)
			return server.Run(ctx, addr, server.New(svc, rt.logger, os.Stderr), rt.logger)
		},
	}

	cmd.Flags().StringVarP(&flags.Addr, "addr", "a", "", "Listen address (defaults to server.addr)")

	return cmd
}
