package system

import (
	"fmt"

	"omnisite/internal/cli"
	"omnisite/internal/migration"
)

// migratable is satisfied by both storage backends
type migratable interface {
	MigrationRunner() (*migration.Runner, error)
}

type MigrateCmd struct{}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	store, ok := ctx.Store.(migratable)
	if !ok {
		return fmt.Errorf("storage backend does not support migrations")
	}

	runner, err := store.MigrationRunner()
	if err != nil {
		return fmt.Errorf("failed to create migration runner: %w", err)
	}

	count, err := runner.ApplyMigrations(func(msg string) {
		fmt.Println(msg)
	})
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	if count == 0 {
		fmt.Println("No migrations to apply. Database is up to date.")
	} else {
		fmt.Printf("\nSuccessfully applied %d migration(s).\n", count)
	}

	return nil
}
