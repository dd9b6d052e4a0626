package system

import (
	"fmt"

	"omnisite/internal/cli"
	"omnisite/internal/constants"
)

type CleanupCmd struct {
	OlderThan int  `help:"Purge soft-deleted rows older than this many days. Defaults to the configured retention."`
	DryRun    bool `help:"Report what would be purged without deleting anything."`
}

func (c *CleanupCmd) Run(ctx *cli.Context) error {
	olderThan := c.OlderThan
	if olderThan <= 0 {
		settings, err := ctx.Store.GetSettings()
		if err == nil && settings.CleanupAfterDays > 0 {
			olderThan = settings.CleanupAfterDays
		} else {
			olderThan = constants.DefaultCleanupAfterDays
		}
	}

	if c.DryRun {
		fmt.Printf("Would purge soft-deleted rows older than %d days.\n", olderThan)
		return nil
	}

	count, err := ctx.Store.PurgeDeleted(olderThan)
	if err != nil {
		return fmt.Errorf("cleanup failed: %w", err)
	}

	if count == 0 {
		fmt.Println("Nothing to purge.")
	} else {
		fmt.Printf("Purged %d soft-deleted row(s) older than %d days.\n", count, olderThan)
	}

	return nil
}
