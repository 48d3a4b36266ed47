package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/finreport/internal/pipeline"
	"github.com/cleared-dev/finreport/internal/server"
)

func newServeCommand(g *globalFlags) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve report generation over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(g, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if addr == "" {
				addr = a.cfg.Server.Addr
			}

			c, err := a.categorizer()
			if err != nil {
				return err
			}
			driver := pipeline.NewDriver(c, a.log, pipeline.WithReadConcurrency(a.cfg.Pipeline.ReadConcurrency))
			srv := server.New(driver, server.Config{
				MaxUploadBytes: a.cfg.Server.MaxUploadBytes,
				RatePerSecond:  a.cfg.Server.RatePerSecond,
				Burst:          a.cfg.Server.Burst,
				CacheTTL:       a.cfg.Server.CacheTTL,
				Report:         a.reportOptions(),
			}, a.log)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")

	return cmd
}
