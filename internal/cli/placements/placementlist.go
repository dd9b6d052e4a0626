package placements

import (
	"fmt"

	"omnisite/internal/cli"
	"omnisite/internal/stats"
)

type PlacementListCmd struct {
	Days    int    `short:"d" help:"How many days of history to show. Defaults to the configured window."`
	Site    string `short:"s" help:"Limit to one site label."`
	Deleted bool   `help:"Include soft-deleted placements."`
}

func (c *PlacementListCmd) Run(ctx *cli.Context) error {
	start, end, err := ctx.ResolveRange(c.Days)
	if err != nil {
		return err
	}

	siteFilter := ""
	if c.Site != "" {
		site, err := ctx.ResolveSite(c.Site)
		if err != nil {
			return err
		}
		siteFilter = site.Label
	}

	placements, err := ctx.Store.GetPlacements(start, end, c.Deleted)
	if err != nil {
		return fmt.Errorf("failed to get placements: %w", err)
	}

	var shown int
	fmt.Printf("Placements %s to %s:\n\n", start, end)
	for _, p := range placements {
		if siteFilter != "" && p.Site != siteFilter {
			continue
		}
		deleted := ""
		if p.DeletedAt != nil {
			deleted = "  [deleted]"
		}
		note := ""
		if p.Note != "" {
			note = "  " + p.Note
		}
		fmt.Printf("  %s  %-16s %s%s%s\n", p.Day, p.Site, p.ID, note, deleted)
		shown++
	}

	if shown == 0 {
		fmt.Println("  (none)")
		return nil
	}

	buckets := stats.RecencyBuckets(placements, ctx.Today())
	fmt.Printf("\n%d shown. Recency: today %d, this week %d, this month %d, older %d\n",
		shown,
		buckets[stats.BucketToday],
		buckets[stats.BucketThisWeek],
		buckets[stats.BucketThisMonth],
		buckets[stats.BucketOlder])

	return nil
}
