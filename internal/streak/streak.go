package streak

import (
	"sort"

	"omnisite/internal/models"
	"omnisite/internal/utils"
)

// Summary holds the computed streak figures for a set of placements
type Summary struct {
	Current      int    `json:"current"`
	Longest      int    `json:"longest"`
	LastLogged   string `json:"last_logged,omitempty"`
	DistinctDays int    `json:"distinct_days"`
}

// Compute collapses placements to distinct calendar days and walks
// consecutive-day runs. The current streak is the trailing run, and counts
// only if the most recent logged day is today or yesterday.
func Compute(placements []models.Placement, today string) Summary {
	days := DistinctDays(placements)
	summary := Summary{
		Current:      Current(days, today),
		Longest:      Longest(days),
		DistinctDays: len(days),
	}
	if len(days) > 0 {
		summary.LastLogged = days[len(days)-1]
	}
	return summary
}

// ComputeForSite computes streaks over placements for a single site.
func ComputeForSite(placements []models.Placement, siteLabel, today string) Summary {
	var filtered []models.Placement
	for _, p := range placements {
		if p.Site == siteLabel {
			filtered = append(filtered, p)
		}
	}
	return Compute(filtered, today)
}

// DistinctDays returns the sorted set of calendar days having at least one
// non-deleted placement.
func DistinctDays(placements []models.Placement) []string {
	seen := make(map[string]bool)
	for _, p := range placements {
		if p.DeletedAt != nil {
			continue
		}
		if utils.ValidateDayFormat(p.Day) {
			seen[p.Day] = true
		}
	}

	days := make([]string, 0, len(seen))
	for day := range seen {
		days = append(days, day)
	}
	sort.Strings(days)
	return days
}

// Current returns the length of the trailing consecutive-day run, or 0 if
// the most recent day is older than yesterday. Days must be sorted ascending.
func Current(days []string, today string) int {
	if len(days) == 0 {
		return 0
	}

	last := days[len(days)-1]
	yesterday, err := utils.AddDays(today, -1)
	if err != nil {
		return 0
	}
	if last != today && last != yesterday {
		return 0
	}

	count := 1
	for i := len(days) - 1; i > 0; i-- {
		prev, err := utils.AddDays(days[i], -1)
		if err != nil {
			break
		}
		if days[i-1] != prev {
			break
		}
		count++
	}
	return count
}

// Longest returns the length of the longest consecutive-day run anywhere in
// the history. Days must be sorted ascending.
func Longest(days []string) int {
	if len(days) == 0 {
		return 0
	}

	longest := 1
	run := 1
	for i := 1; i < len(days); i++ {
		prev, err := utils.AddDays(days[i], -1)
		if err != nil {
			run = 1
			continue
		}
		if days[i-1] == prev {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 1
		}
	}
	return longest
}
