package rotation

import (
	"testing"
	"time"

	"omnisite/internal/constants"
	"omnisite/internal/models"
)

var testConfig = Config{
	ActiveWindowDays:  2,
	HealingWindowDays: 5,
	RestPeriodDays:    7,
}

func dayUTC(day string) time.Time {
	t, err := time.Parse(constants.DateFormat, day)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

func site(label string) models.Site {
	return models.Site{ID: label, Label: label, CreatedAt: time.Now()}
}

func TestStageForElapsed(t *testing.T) {
	tests := []struct {
		name string
		days int
		want constants.RecoveryStage
	}{
		{name: "used today", days: 0, want: constants.StageActive},
		{name: "used yesterday", days: 1, want: constants.StageActive},
		{name: "lower healing bound", days: 2, want: constants.StageHealing},
		{name: "upper healing bound", days: 4, want: constants.StageHealing},
		{name: "lower recovered bound", days: 5, want: constants.StageRecovered},
		{name: "upper recovered bound", days: 6, want: constants.StageRecovered},
		{name: "rest period met", days: 7, want: constants.StageReady},
		{name: "long rested", days: 30, want: constants.StageReady},
		{name: "never used sentinel", days: constants.NeverUsedSentinelDays, want: constants.StageReady},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StageForElapsed(tt.days, testConfig)
			if got != tt.want {
				t.Errorf("StageForElapsed(%d) = %s, want %s", tt.days, got, tt.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	now := dayUTC("2026-03-10")
	placements := []models.Placement{
		{ID: "1", Site: "left arm", Day: "2026-03-10"},
		{ID: "2", Site: "right arm", Day: "2026-03-06"},
		{ID: "3", Site: "left leg", Day: "2026-03-01"},
	}

	tests := []struct {
		name string
		site string
		want constants.RecoveryStage
	}{
		{name: "record today is active", site: "left arm", want: constants.StageActive},
		{name: "four days ago is healing", site: "right arm", want: constants.StageHealing},
		{name: "nine days ago is ready", site: "left leg", want: constants.StageReady},
		{name: "never used is ready", site: "abdomen", want: constants.StageReady},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(placements, tt.site, now, testConfig)
			if got != tt.want {
				t.Errorf("Classify(%q) = %s, want %s", tt.site, got, tt.want)
			}
		})
	}
}

func TestClassifyIgnoresDeleted(t *testing.T) {
	now := dayUTC("2026-03-10")
	deleted := time.Now()
	placements := []models.Placement{
		{ID: "1", Site: "left arm", Day: "2026-03-10", DeletedAt: &deleted},
	}

	got := Classify(placements, "left arm", now, testConfig)
	if got != constants.StageReady {
		t.Errorf("Classify() with only deleted records = %s, want %s", got, constants.StageReady)
	}
}

func TestClassifyUsesMostRecentRecord(t *testing.T) {
	now := dayUTC("2026-03-10")
	placements := []models.Placement{
		{ID: "1", Site: "left arm", Day: "2026-02-01"},
		{ID: "2", Site: "left arm", Day: "2026-03-09"},
		{ID: "3", Site: "left arm", Day: "2026-02-20"},
	}

	got := Classify(placements, "left arm", now, testConfig)
	if got != constants.StageActive {
		t.Errorf("Classify() = %s, want %s (most recent record is yesterday)", got, constants.StageActive)
	}
}

func TestOverview(t *testing.T) {
	now := dayUTC("2026-03-10")
	sites := []models.Site{site("left arm"), site("right arm"), site("abdomen")}
	placements := []models.Placement{
		{ID: "1", Site: "left arm", Day: "2026-03-10"},
		{ID: "2", Site: "left arm", Day: "2026-03-01"},
		{ID: "3", Site: "right arm", Day: "2026-03-04"},
	}

	statuses := Overview(placements, sites, now, testConfig)
	if len(statuses) != 3 {
		t.Fatalf("Overview() returned %d statuses, want 3", len(statuses))
	}

	// Output keeps catalogue order
	if statuses[0].Site.Label != "left arm" || statuses[1].Site.Label != "right arm" || statuses[2].Site.Label != "abdomen" {
		t.Errorf("Overview() order: %s, %s, %s", statuses[0].Site.Label, statuses[1].Site.Label, statuses[2].Site.Label)
	}

	if statuses[0].UseCount != 2 || statuses[0].DaysSinceUse != 0 || statuses[0].Stage != constants.StageActive {
		t.Errorf("left arm status = %+v", statuses[0])
	}
	if statuses[1].UseCount != 1 || statuses[1].DaysSinceUse != 6 || statuses[1].Stage != constants.StageRecovered {
		t.Errorf("right arm status = %+v", statuses[1])
	}
	if statuses[2].UseCount != 0 || statuses[2].DaysSinceUse != constants.NeverUsedSentinelDays || statuses[2].Stage != constants.StageReady {
		t.Errorf("abdomen status = %+v", statuses[2])
	}
	if statuses[2].LastUsedDay != "" {
		t.Errorf("never-used site reported last use %q", statuses[2].LastUsedDay)
	}
}

func TestOverviewIdempotent(t *testing.T) {
	now := dayUTC("2026-03-10")
	sites := []models.Site{site("left arm"), site("right arm")}
	placements := []models.Placement{
		{ID: "1", Site: "left arm", Day: "2026-03-08"},
	}

	first := Overview(placements, sites, now, testConfig)
	second := Overview(placements, sites, now, testConfig)
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Overview() not idempotent at %d: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestSuggest(t *testing.T) {
	now := dayUTC("2026-03-10")

	t.Run("never used site wins", func(t *testing.T) {
		sites := []models.Site{site("left arm"), site("abdomen")}
		placements := []models.Placement{
			{ID: "1", Site: "left arm", Day: "2026-02-01"},
		}

		got, ok := Suggest(placements, sites, now, testConfig)
		if !ok {
			t.Fatal("Suggest() found no ready site")
		}
		if got.Label != "abdomen" {
			t.Errorf("Suggest() = %q, want abdomen", got.Label)
		}
	})

	t.Run("least recently used ready site wins", func(t *testing.T) {
		sites := []models.Site{site("left arm"), site("right arm")}
		placements := []models.Placement{
			{ID: "1", Site: "left arm", Day: "2026-02-01"},
			{ID: "2", Site: "right arm", Day: "2026-02-20"},
		}

		got, ok := Suggest(placements, sites, now, testConfig)
		if !ok {
			t.Fatal("Suggest() found no ready site")
		}
		if got.Label != "left arm" {
			t.Errorf("Suggest() = %q, want left arm", got.Label)
		}
	})

	t.Run("no ready sites", func(t *testing.T) {
		sites := []models.Site{site("left arm")}
		placements := []models.Placement{
			{ID: "1", Site: "left arm", Day: "2026-03-09"},
		}

		_, ok := Suggest(placements, sites, now, testConfig)
		if ok {
			t.Error("Suggest() returned a site with nothing ready")
		}
	})

	t.Run("catalogue order breaks ties", func(t *testing.T) {
		sites := []models.Site{site("abdomen"), site("left leg")}

		got, ok := Suggest(nil, sites, now, testConfig)
		if !ok {
			t.Fatal("Suggest() found no ready site")
		}
		if got.Label != "abdomen" {
			t.Errorf("Suggest() = %q, want abdomen (first in catalogue)", got.Label)
		}
	})
}

func TestConfigFromSettings(t *testing.T) {
	t.Run("zero settings fall back to defaults", func(t *testing.T) {
		cfg := ConfigFromSettings(models.Settings{})
		if cfg.ActiveWindowDays != constants.DefaultActiveWindowDays {
			t.Errorf("ActiveWindowDays = %d", cfg.ActiveWindowDays)
		}
		if cfg.HealingWindowDays != constants.DefaultHealingWindowDays {
			t.Errorf("HealingWindowDays = %d", cfg.HealingWindowDays)
		}
		if cfg.RestPeriodDays != constants.DefaultRestPeriodDays {
			t.Errorf("RestPeriodDays = %d", cfg.RestPeriodDays)
		}
	})

	t.Run("inverted windows are repaired", func(t *testing.T) {
		cfg := ConfigFromSettings(models.Settings{
			ActiveWindowDays:  3,
			HealingWindowDays: 2,
			RestPeriodDays:    1,
		})
		if cfg.HealingWindowDays <= cfg.ActiveWindowDays {
			t.Errorf("HealingWindowDays %d not above ActiveWindowDays %d", cfg.HealingWindowDays, cfg.ActiveWindowDays)
		}
		if cfg.RestPeriodDays <= cfg.HealingWindowDays {
			t.Errorf("RestPeriodDays %d not above HealingWindowDays %d", cfg.RestPeriodDays, cfg.HealingWindowDays)
		}
	})
}
