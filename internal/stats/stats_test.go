package stats

import (
	"math"
	"testing"
	"time"

	"omnisite/internal/constants"
	"omnisite/internal/models"
)

func TestUsageDistribution(t *testing.T) {
	now := time.Now()
	placements := []models.Placement{
		{ID: "1", Site: "left arm", Day: "2026-03-01", CreatedAt: now},
		{ID: "2", Site: "left arm", Day: "2026-03-02", CreatedAt: now},
		{ID: "3", Site: "right arm", Day: "2026-03-03", CreatedAt: now},
		{ID: "4", Site: "abdomen", Day: "2026-03-04", CreatedAt: now},
		{ID: "5", Site: "abdomen", Day: "2026-03-05", CreatedAt: now, DeletedAt: &now},
	}

	usage := UsageDistribution(placements)
	if len(usage) != 3 {
		t.Fatalf("UsageDistribution() returned %d entries, want 3", len(usage))
	}

	if usage[0].Site != "left arm" || usage[0].Count != 2 {
		t.Errorf("top entry = %+v, want left arm with count 2", usage[0])
	}
	if math.Abs(usage[0].Percent-50.0) > 0.001 {
		t.Errorf("top entry percent = %f, want 50", usage[0].Percent)
	}

	// Equal counts fall back to label order
	if usage[1].Site != "abdomen" || usage[2].Site != "right arm" {
		t.Errorf("tie order: %s then %s, want abdomen then right arm", usage[1].Site, usage[2].Site)
	}
}

func TestUsageDistributionEmpty(t *testing.T) {
	usage := UsageDistribution(nil)
	if len(usage) != 0 {
		t.Errorf("UsageDistribution(nil) = %v, want empty", usage)
	}
}

func TestRecencyBuckets(t *testing.T) {
	now := time.Now()
	placements := []models.Placement{
		{ID: "1", Site: "left arm", Day: "2026-03-10", CreatedAt: now},
		{ID: "2", Site: "left arm", Day: "2026-03-08", CreatedAt: now},
		{ID: "3", Site: "right arm", Day: "2026-03-04", CreatedAt: now},
		{ID: "4", Site: "abdomen", Day: "2026-02-15", CreatedAt: now},
		{ID: "5", Site: "abdomen", Day: "2025-12-01", CreatedAt: now},
		{ID: "6", Site: "abdomen", Day: "2026-03-10", CreatedAt: now, DeletedAt: &now},
	}

	buckets := RecencyBuckets(placements, "2026-03-10")
	if buckets[BucketToday] != 1 {
		t.Errorf("today = %d, want 1", buckets[BucketToday])
	}
	if buckets[BucketThisWeek] != 2 {
		t.Errorf("this_week = %d, want 2", buckets[BucketThisWeek])
	}
	if buckets[BucketThisMonth] != 1 {
		t.Errorf("this_month = %d, want 1", buckets[BucketThisMonth])
	}
	if buckets[BucketOlder] != 1 {
		t.Errorf("older = %d, want 1", buckets[BucketOlder])
	}
}

func TestAverageRatingBySite(t *testing.T) {
	now := time.Now()
	ratings := []models.Rating{
		{ID: "1", Site: "left arm", Score: 4, Day: "2026-03-01", CreatedAt: now},
		{ID: "2", Site: "left arm", Score: 2, Day: "2026-03-02", CreatedAt: now},
		{ID: "3", Site: "right arm", Score: 5, Day: "2026-03-03", CreatedAt: now},
		{ID: "4", Site: "right arm", Score: 1, Day: "2026-03-04", CreatedAt: now, DeletedAt: &now},
	}

	averages := AverageRatingBySite(ratings)
	if math.Abs(averages["left arm"]-3.0) > 0.001 {
		t.Errorf("left arm average = %f, want 3", averages["left arm"])
	}
	if math.Abs(averages["right arm"]-5.0) > 0.001 {
		t.Errorf("right arm average = %f, want 5 (deleted rating excluded)", averages["right arm"])
	}
}

func TestAverageSeverityBySymptom(t *testing.T) {
	now := time.Now()
	entries := []models.SymptomEntry{
		{ID: "1", Symptom: "redness", Severity: 2, Day: "2026-03-01", CreatedAt: now},
		{ID: "2", Symptom: "redness", Severity: 4, Day: "2026-03-02", CreatedAt: now},
		{ID: "3", Symptom: "itching", Severity: 1, Day: "2026-03-02", CreatedAt: now},
	}

	averages := AverageSeverityBySymptom(entries)
	if math.Abs(averages["redness"]-3.0) > 0.001 {
		t.Errorf("redness average = %f, want 3", averages["redness"])
	}
	if math.Abs(averages["itching"]-1.0) > 0.001 {
		t.Errorf("itching average = %f, want 1", averages["itching"])
	}
}

func TestDoseTotals(t *testing.T) {
	now := time.Now()
	doses := []models.Dose{
		{ID: "1", Medication: "insulin", Amount: 10, Unit: "IU", Day: "2026-03-01", CreatedAt: now},
		{ID: "2", Medication: "insulin", Amount: 12, Unit: "IU", Day: "2026-03-02", CreatedAt: now},
		{ID: "3", Medication: "insulin", Amount: 8, Unit: "IU", Day: "2026-02-01", CreatedAt: now},
		{ID: "4", Medication: "metformin", Amount: 500, Unit: "mg", Day: "2026-03-01", CreatedAt: now},
	}

	totals := DoseTotals(doses, "2026-03-01", "2026-03-07")
	if math.Abs(totals["insulin"]-22.0) > 0.001 {
		t.Errorf("insulin total = %f, want 22", totals["insulin"])
	}
	if math.Abs(totals["metformin"]-500.0) > 0.001 {
		t.Errorf("metformin total = %f, want 500", totals["metformin"])
	}
}

func TestEvaluateGoal(t *testing.T) {
	now := time.Now()
	sites := []models.Site{
		{ID: "a", Label: "left arm", CreatedAt: now},
		{ID: "b", Label: "right arm", CreatedAt: now},
		{ID: "c", Label: "abdomen", CreatedAt: now},
	}
	placements := []models.Placement{
		{ID: "1", Site: "left arm", Day: "2026-03-09", CreatedAt: now},
		{ID: "2", Site: "right arm", Day: "2026-03-10", CreatedAt: now},
		{ID: "3", Site: "left arm", Day: "2026-03-04", CreatedAt: now},
	}

	t.Run("streak goal", func(t *testing.T) {
		goal := models.Goal{ID: "g1", Kind: constants.GoalStreakDays, Target: 2, CreatedAt: now}
		progress := EvaluateGoal(goal, placements, sites, "2026-03-10")
		if progress.Value != 2 {
			t.Errorf("streak value = %d, want 2", progress.Value)
		}
		if !progress.Achieved {
			t.Error("streak goal should be achieved")
		}
	})

	t.Run("weekly placements goal", func(t *testing.T) {
		goal := models.Goal{ID: "g2", Kind: constants.GoalWeeklyPlacements, Target: 5, CreatedAt: now}
		progress := EvaluateGoal(goal, placements, sites, "2026-03-10")
		if progress.Value != 3 {
			t.Errorf("weekly value = %d, want 3", progress.Value)
		}
		if progress.Achieved {
			t.Error("weekly goal should not be achieved")
		}
	})

	t.Run("site coverage goal", func(t *testing.T) {
		goal := models.Goal{ID: "g3", Kind: constants.GoalSiteCoverage, Target: 3, CreatedAt: now}
		progress := EvaluateGoal(goal, placements, sites, "2026-03-10")
		if progress.Value != 2 {
			t.Errorf("coverage value = %d, want 2", progress.Value)
		}
		if progress.Achieved {
			t.Error("coverage goal should not be achieved")
		}
	})

	t.Run("zero target never achieves", func(t *testing.T) {
		goal := models.Goal{ID: "g4", Kind: constants.GoalWeeklyPlacements, Target: 0, CreatedAt: now}
		progress := EvaluateGoal(goal, placements, sites, "2026-03-10")
		if progress.Achieved {
			t.Error("zero-target goal should not report achieved")
		}
	})
}
