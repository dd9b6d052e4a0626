package sites

import (
	"fmt"

	"omnisite/internal/cli"
	"omnisite/internal/rotation"
	"omnisite/internal/utils"
)

type SiteSuggestCmd struct{}

func (c *SiteSuggestCmd) Run(ctx *cli.Context) error {
	sites, err := ctx.Store.GetAllSites(false, false)
	if err != nil {
		return fmt.Errorf("failed to get sites: %w", err)
	}
	if len(sites) == 0 {
		return fmt.Errorf("no sites in the catalogue, run 'omnisite init' or 'omnisite sites add'")
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

	cfg := ctx.RotationConfig()
	site, ok := rotation.Suggest(placements, sites, now, cfg)
	if !ok {
		fmt.Println("No site is fully rested yet.")
		fmt.Println("The least-recently-used sites recover first; check 'omnisite sites list'.")
		return nil
	}

	stage := rotation.Classify(placements, site.Label, now, cfg)
	fmt.Printf("Next site: %s (%s, %s)\n", site.Label, site.BodyRegion, site.Side)
	fmt.Printf("Stage: %s\n", cli.FormatStage(stage))
	fmt.Printf("Log it with: omnisite log %q\n", site.Label)
	return nil
}
