package sites

import (
	"fmt"

	"omnisite/internal/cli"
	"omnisite/internal/rotation"
	"omnisite/internal/utils"
)

type SiteListCmd struct {
	All bool `short:"a" help:"Include archived sites."`
}

func (c *SiteListCmd) Run(ctx *cli.Context) error {
	sites, err := ctx.Store.GetAllSites(c.All, false)
	if err != nil {
		return fmt.Errorf("failed to get sites: %w", err)
	}

	if len(sites) == 0 {
		fmt.Println("No sites in the catalogue. Add one with 'omnisite sites add'.")
		return nil
	}

	placements, err := ctx.Store.GetAllPlacements()
	if err != nil {
		return fmt.Errorf("failed to get placements: %w", err)
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	now, err := utils.NowInTimezone(settings.Timezone)
	if err != nil {
		now, _ = utils.NowInTimezone("Local")
	}

	statuses := rotation.Overview(placements, sites, now, ctx.RotationConfig())

	fmt.Printf("Site catalogue (%d sites):\n\n", len(statuses))
	for _, status := range statuses {
		archived := ""
		if status.Site.ArchivedAt != nil {
			archived = "  [archived]"
		}
		fmt.Printf("  %-16s %-10s %-10s %s  last: %s  uses: %d%s\n",
			status.Site.Label,
			status.Site.BodyRegion,
			status.Site.Side,
			cli.FormatStage(status.Stage),
			cli.FormatDaysSince(status.DaysSinceUse),
			status.UseCount,
			archived,
		)
	}

	return nil
}
