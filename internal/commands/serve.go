package commands

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"bank-console/internal/config"
	"bank-console/internal/server"

	"github.com/spf13/cobra"
)

func newServeCommand() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the console API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if port != "" {
				cfg.Server.Port = port
			}
			return runServe(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "listen port (overrides SERVER_PORT)")

	return cmd
}

func runServe(ctx context.Context, cfg *config.Config) error {
	logger := newLogger(cfg, os.Stdout)
	slog.SetDefault(logger)

	srv, err := server.New(cfg, logger)
	if err != nil {
		return err
	}
	defer srv.Close()

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.Run(ctx)
}
