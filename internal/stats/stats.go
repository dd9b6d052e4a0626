package stats

import (
	"sort"

	"omnisite/internal/constants"
	"omnisite/internal/models"
	"omnisite/internal/streak"
	"omnisite/internal/utils"
)

// RecencyBucket labels how recently a placement happened relative to today
type RecencyBucket string

const (
	BucketToday     RecencyBucket = "today"
	BucketThisWeek  RecencyBucket = "this_week"
	BucketThisMonth RecencyBucket = "this_month"
	BucketOlder     RecencyBucket = "older"
)

// SiteUsage holds the usage share for a single site
type SiteUsage struct {
	Site    string  `json:"site"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// UsageDistribution returns per-site placement counts and percentages,
// sorted by count descending then label ascending.
func UsageDistribution(placements []models.Placement) []SiteUsage {
	counts := make(map[string]int)
	total := 0
	for _, p := range placements {
		if p.DeletedAt != nil {
			continue
		}
		counts[p.Site]++
		total++
	}

	usage := make([]SiteUsage, 0, len(counts))
	for site, count := range counts {
		entry := SiteUsage{Site: site, Count: count}
		if total > 0 {
			entry.Percent = float64(count) / float64(total) * 100
		}
		usage = append(usage, entry)
	}

	sort.Slice(usage, func(i, j int) bool {
		if usage[i].Count != usage[j].Count {
			return usage[i].Count > usage[j].Count
		}
		return usage[i].Site < usage[j].Site
	})
	return usage
}

// RecencyBuckets groups non-deleted placements by how recently they occurred.
func RecencyBuckets(placements []models.Placement, today string) map[RecencyBucket]int {
	buckets := map[RecencyBucket]int{
		BucketToday:     0,
		BucketThisWeek:  0,
		BucketThisMonth: 0,
		BucketOlder:     0,
	}

	weekAgo, err := utils.AddDays(today, -6)
	if err != nil {
		return buckets
	}
	monthAgo, err := utils.AddDays(today, -29)
	if err != nil {
		return buckets
	}

	for _, p := range placements {
		if p.DeletedAt != nil {
			continue
		}
		switch {
		case p.Day == today:
			buckets[BucketToday]++
		case p.Day >= weekAgo:
			buckets[BucketThisWeek]++
		case p.Day >= monthAgo:
			buckets[BucketThisMonth]++
		default:
			buckets[BucketOlder]++
		}
	}
	return buckets
}

// AverageRatingBySite returns the mean score per site over non-deleted ratings.
func AverageRatingBySite(ratings []models.Rating) map[string]float64 {
	sums := make(map[string]int)
	counts := make(map[string]int)
	for _, r := range ratings {
		if r.DeletedAt != nil {
			continue
		}
		sums[r.Site] += r.Score
		counts[r.Site]++
	}

	averages := make(map[string]float64, len(sums))
	for site, sum := range sums {
		averages[site] = float64(sum) / float64(counts[site])
	}
	return averages
}

// AverageSeverityBySymptom returns the mean severity per symptom label.
func AverageSeverityBySymptom(entries []models.SymptomEntry) map[string]float64 {
	sums := make(map[string]int)
	counts := make(map[string]int)
	for _, e := range entries {
		if e.DeletedAt != nil {
			continue
		}
		sums[e.Symptom] += e.Severity
		counts[e.Symptom]++
	}

	averages := make(map[string]float64, len(sums))
	for symptom, sum := range sums {
		averages[symptom] = float64(sum) / float64(counts[symptom])
	}
	return averages
}

// DoseTotals sums dose amounts per medication within [startDay, endDay].
func DoseTotals(doses []models.Dose, startDay, endDay string) map[string]float64 {
	totals := make(map[string]float64)
	for _, d := range doses {
		if d.DeletedAt != nil {
			continue
		}
		if d.Day < startDay || d.Day > endDay {
			continue
		}
		totals[d.Medication] += d.Amount
	}
	return totals
}

// GoalProgress describes how far along a goal is
type GoalProgress struct {
	Goal     models.Goal `json:"goal"`
	Value    int         `json:"value"`
	Achieved bool        `json:"achieved"`
}

// EvaluateGoal computes the current value for a goal against the record set.
func EvaluateGoal(goal models.Goal, placements []models.Placement, sites []models.Site, today string) GoalProgress {
	progress := GoalProgress{Goal: goal}

	switch goal.Kind {
	case constants.GoalStreakDays:
		progress.Value = streak.Compute(placements, today).Current
	case constants.GoalWeeklyPlacements:
		weekAgo, err := utils.AddDays(today, -6)
		if err != nil {
			break
		}
		for _, p := range placements {
			if p.DeletedAt == nil && p.Day >= weekAgo && p.Day <= today {
				progress.Value++
			}
		}
	case constants.GoalSiteCoverage:
		used := make(map[string]bool)
		for _, p := range placements {
			if p.DeletedAt == nil {
				used[p.Site] = true
			}
		}
		for _, s := range sites {
			if s.ArchivedAt == nil && s.DeletedAt == nil && used[s.Label] {
				progress.Value++
			}
		}
	}

	progress.Achieved = goal.Target > 0 && progress.Value >= goal.Target
	return progress
}
