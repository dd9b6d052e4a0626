package sites

import (
	"fmt"
	"sort"

	"omnisite/internal/cli"
	"omnisite/internal/stats"
	"omnisite/internal/streak"
)

type SiteStatsCmd struct {
	Site string `short:"s" help:"Limit stats to one site label."`
}

func (c *SiteStatsCmd) Run(ctx *cli.Context) error {
	placements, err := ctx.Store.GetAllPlacements()
	if err != nil {
		return fmt.Errorf("failed to get placements: %w", err)
	}

	today := ctx.Today()

	if c.Site != "" {
		site, err := ctx.ResolveSite(c.Site)
		if err != nil {
			return err
		}

		summary := streak.ComputeForSite(placements, site.Label, today)
		ratings, err := ctx.Store.GetRatingsForSite(site.Label)
		if err != nil {
			return fmt.Errorf("failed to get ratings: %w", err)
		}
		averages := stats.AverageRatingBySite(ratings)

		fmt.Printf("Stats for %s:\n", site.Label)
		fmt.Printf("  Logged days:     %d\n", summary.DistinctDays)
		fmt.Printf("  Current streak:  %d\n", summary.Current)
		fmt.Printf("  Longest streak:  %d\n", summary.Longest)
		if summary.LastLogged != "" {
			fmt.Printf("  Last logged:     %s\n", summary.LastLogged)
		}
		if avg, ok := averages[site.Label]; ok {
			fmt.Printf("  Average rating:  %.1f / 5\n", avg)
		}
		return nil
	}

	usage := stats.UsageDistribution(placements)
	if len(usage) == 0 {
		fmt.Println("No placements logged yet.")
		return nil
	}

	buckets := stats.RecencyBuckets(placements, today)

	fmt.Println("Usage distribution:")
	for _, u := range usage {
		fmt.Printf("  %-16s %4d  (%5.1f%%)\n", u.Site, u.Count, u.Percent)
	}

	fmt.Println("\nRecency:")
	order := []stats.RecencyBucket{stats.BucketToday, stats.BucketThisWeek, stats.BucketThisMonth, stats.BucketOlder}
	labels := map[stats.RecencyBucket]string{
		stats.BucketToday:     "today",
		stats.BucketThisWeek:  "this week",
		stats.BucketThisMonth: "this month",
		stats.BucketOlder:     "older",
	}
	for _, b := range order {
		fmt.Printf("  %-12s %d\n", labels[b], buckets[b])
	}

	ratings, err := ctx.Store.GetRatings("0000-01-01", "9999-12-31")
	if err != nil {
		return fmt.Errorf("failed to get ratings: %w", err)
	}
	averages := stats.AverageRatingBySite(ratings)
	if len(averages) > 0 {
		siteNames := make([]string, 0, len(averages))
		for name := range averages {
			siteNames = append(siteNames, name)
		}
		sort.Strings(siteNames)

		fmt.Println("\nAverage ratings:")
		for _, name := range siteNames {
			fmt.Printf("  %-16s %.1f / 5\n", name, averages[name])
		}
	}

	return nil
}
