package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"bank-console/internal/config"
	"bank-console/internal/database"
	"bank-console/internal/dto"
	"bank-console/internal/models"
	"bank-console/internal/repositories"
	"bank-console/internal/services"

	"github.com/spf13/cobra"
)

type exportOptions struct {
	username string
	password string
	filter   string
	out      string
}

func newExportCommand() *cobra.Command {
	var opts exportOptions

	cmd := &cobra.Command{
		Use:   "export <entity>",
		Short: "Fetch a console list and write it as CSV",
		Long: "Logs in to the banking backend, fetches one list screen and writes the\n" +
			"same CSV the console download produces. The password falls back to\n" +
			"BANK_CONSOLE_PASSWORD.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entity, err := models.ParseEntityType(args[0])
			if err != nil {
				return err
			}
			if opts.password == "" {
				opts.password = os.Getenv("BANK_CONSOLE_PASSWORD")
			}

			cfg := config.Load()
			out := cmd.OutOrStdout()
			if opts.out != "" {
				f, err := os.Create(opts.out)
				if err != nil {
					return fmt.Errorf("creating %s: %w", opts.out, err)
				}
				defer f.Close()
				out = f
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return runExport(ctx, cfg, stderrLogger(cfg), entity, opts, out)
		},
	}

	cmd.Flags().StringVarP(&opts.username, "username", "u", "", "backend username (required)")
	_ = cmd.MarkFlagRequired("username")
	cmd.Flags().StringVarP(&opts.password, "password", "p", "", "backend password")
	cmd.Flags().StringVar(&opts.filter, "filter-username", "", "only repayments of this user")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "output file (default stdout)")

	return cmd
}

func runExport(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	entity models.EntityType,
	opts exportOptions,
	out io.Writer,
) error {
	var audit services.AuditServiceInterface
	if cfg.Database.AuditEnabled && !cfg.Database.IsSQLite() {
		db, err := database.Initialize(cfg)
		if err != nil {
			return fmt.Errorf("open audit store: %w", err)
		}
		defer db.Close()
		audit = services.NewAuditService(repositories.NewAuditLogRepository(db.DB))
	}

	backend := services.NewBackendClient(&cfg.Backend, nil, nil, logger)
	sessions := services.NewSessionService(
		backend,
		services.NewTokenService(),
		repositories.NewMemorySessionRepository(),
		audit,
		nil,
		cfg.Console.SessionTTL,
		logger,
	)

	session, err := sessions.Login(ctx, dto.LoginRequest{Username: opts.username, Password: opts.password})
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	defer func() { _ = sessions.Logout(context.Background(), session.ID) }()

	console := services.NewConsole(session, services.ConsoleDeps{
		Backend:  backend,
		Audit:    audit,
		Logger:   services.NewConsoleLogger(logger),
		PageSize: cfg.Console.PageSize,
		AlertTTL: cfg.Console.AlertTTL,
	})

	if err := console.Orchestrator.Fetch(ctx, entity, dto.FetchRequest{Username: opts.filter}); err != nil {
		return fmt.Errorf("fetch %s: %w", entity, err)
	}

	export, err := console.Orchestrator.Export(ctx, entity)
	if err != nil {
		return fmt.Errorf("export %s: %w", entity, err)
	}

	if _, err := out.Write(export.Data); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	logger.Info("export written", "entity", string(entity), "rows", export.Rows, "file", export.Filename)
	return nil
}
