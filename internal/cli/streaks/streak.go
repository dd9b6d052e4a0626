package streaks

import (
	"fmt"

	"omnisite/internal/cli"
	"omnisite/internal/streak"
)

type StreakCmd struct {
	Site string `short:"s" help:"Limit the streak to one site label."`
}

func (c *StreakCmd) Run(ctx *cli.Context) error {
	placements, err := ctx.Store.GetAllPlacements()
	if err != nil {
		return fmt.Errorf("failed to get placements: %w", err)
	}

	today := ctx.Today()

	var summary streak.Summary
	scope := "overall"
	if c.Site != "" {
		site, err := ctx.ResolveSite(c.Site)
		if err != nil {
			return err
		}
		summary = streak.ComputeForSite(placements, site.Label, today)
		scope = site.Label
	} else {
		summary = streak.Compute(placements, today)
	}

	fmt.Printf("Streak (%s):\n", scope)
	fmt.Printf("  Current:  %d day(s)\n", summary.Current)
	fmt.Printf("  Longest:  %d day(s)\n", summary.Longest)
	fmt.Printf("  Logged:   %d distinct day(s)\n", summary.DistinctDays)
	if summary.LastLogged != "" {
		fmt.Printf("  Last:     %s\n", summary.LastLogged)
	}
	if summary.Current == 0 && summary.DistinctDays > 0 {
		fmt.Println("\nLog a placement today to start a new streak.")
	}

	return nil
}
