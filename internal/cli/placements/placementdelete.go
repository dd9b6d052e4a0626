package placements

import (
	"fmt"

	"omnisite/internal/cli"
)

type PlacementDeleteCmd struct {
	ID string `arg:"" help:"Placement ID to delete."`
}

func (c *PlacementDeleteCmd) Run(ctx *cli.Context) error {
	placement, err := ctx.Store.GetPlacement(c.ID)
	if err != nil {
		return fmt.Errorf("failed to find placement with ID %s: %w", c.ID, err)
	}

	if err := ctx.Store.DeletePlacement(c.ID); err != nil {
		return fmt.Errorf("failed to delete placement: %w", err)
	}

	fmt.Printf("Deleted placement: %s on %s (ID: %s)\n", placement.Site, placement.Day, c.ID)
	return nil
}

type PlacementRestoreCmd struct {
	ID string `arg:"" help:"Placement ID to restore."`
}

func (c *PlacementRestoreCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.RestorePlacement(c.ID); err != nil {
		return fmt.Errorf("failed to restore placement: %w", err)
	}

	fmt.Printf("Restored placement with ID: %s\n", c.ID)
	return nil
}
