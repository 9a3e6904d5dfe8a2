package commands

import (
	"fmt"

	"bank-console/internal/config"
	"bank-console/internal/database"

	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the audit trail schema",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrationRunner(func(db *database.DB, mr *database.MigrationRunner) error {
				if mr == nil {
					return db.AutoMigrate()
				}
				return mr.RunMigrations()
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the last migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrationRunner(func(_ *database.DB, mr *database.MigrationRunner) error {
				if mr == nil {
					return fmt.Errorf("rollback is only supported on postgres")
				}
				return mr.RollbackLast()
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Print the current schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrationRunner(func(_ *database.DB, mr *database.MigrationRunner) error {
				if mr == nil {
					fmt.Fprintln(cmd.OutOrStdout(), "sqlite: schema managed by auto-migrate")
					return nil
				}
				version, dirty, err := mr.GetMigrationStatus()
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "version: %d, dirty: %v\n", version, dirty)
				return nil
			})
		},
	})

	return cmd
}

// withMigrationRunner opens the audit store and hands fn a runner. On sqlite
// the runner is nil and the schema is owned by gorm.
func withMigrationRunner(fn func(db *database.DB, mr *database.MigrationRunner) error) error {
	cfg := config.Load()

	db, err := database.New(&cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	if cfg.Database.IsSQLite() {
		return fn(db, nil)
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	return fn(db, database.NewMigrationRunner(sqlDB).WithMigrationsPath(cfg.Database.MigrationsPath))
}
