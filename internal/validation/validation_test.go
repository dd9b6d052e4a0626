package validation

import (
	"strings"
	"testing"
	"time"

	"omnisite/internal/constants"
	"omnisite/internal/models"
)

func site(id, label string) models.Site {
	return models.Site{
		ID:         id,
		Label:      label,
		BodyRegion: constants.RegionAbdomen,
		Side:       constants.SideLeft,
		CreatedAt:  time.Now(),
	}
}

func TestValidateSites(t *testing.T) {
	v := New()

	t.Run("no conflicts", func(t *testing.T) {
		result := v.ValidateSites([]models.Site{
			site("s1", "left abdomen"),
			site("s2", "right abdomen"),
		})
		if result.HasConflicts() {
			t.Errorf("expected no conflicts, got %d", len(result.Conflicts))
		}
	})

	t.Run("duplicate labels", func(t *testing.T) {
		result := v.ValidateSites([]models.Site{
			site("s1", "left abdomen"),
			site("s2", "Left Abdomen"),
		})
		if !result.HasConflicts() {
			t.Fatal("expected duplicate label conflict")
		}
		if result.Conflicts[0].Type != ConflictDuplicateSiteLabel {
			t.Errorf("conflict type = %s, want %s", result.Conflicts[0].Type, ConflictDuplicateSiteLabel)
		}
	})

	t.Run("missing ID", func(t *testing.T) {
		result := v.ValidateSites([]models.Site{site("", "left abdomen")})
		if !result.HasConflicts() {
			t.Fatal("expected missing ID conflict")
		}
		if result.Conflicts[0].Type != ConflictMissingID {
			t.Errorf("conflict type = %s, want %s", result.Conflicts[0].Type, ConflictMissingID)
		}
	})

	t.Run("deleted sites are skipped", func(t *testing.T) {
		now := time.Now()
		dup := site("s2", "left abdomen")
		dup.DeletedAt = &now
		result := v.ValidateSites([]models.Site{site("s1", "left abdomen"), dup})
		if result.HasConflicts() {
			t.Errorf("deleted site should not trigger duplicate conflict, got %d conflicts", len(result.Conflicts))
		}
	})
}

func TestValidatePlacements(t *testing.T) {
	v := New()
	sites := []models.Site{site("s1", "left abdomen")}
	today := "2025-06-15"

	placement := func(id, siteLabel, day string) models.Placement {
		return models.Placement{ID: id, Site: siteLabel, Day: day, CreatedAt: time.Now()}
	}

	t.Run("clean placements", func(t *testing.T) {
		result := v.ValidatePlacements([]models.Placement{
			placement("p1", "left abdomen", "2025-06-14"),
			placement("p2", "left abdomen", "2025-06-15"),
		}, sites, today)
		if result.HasConflicts() {
			t.Errorf("expected no conflicts, got %v", result.Conflicts)
		}
	})

	t.Run("unknown site flagged", func(t *testing.T) {
		result := v.ValidatePlacements([]models.Placement{
			placement("p1", "nowhere", "2025-06-14"),
		}, sites, today)
		if len(result.Conflicts) != 1 || result.Conflicts[0].Type != ConflictUnknownSite {
			t.Errorf("expected one unknown site conflict, got %v", result.Conflicts)
		}
	})

	t.Run("invalid day flagged", func(t *testing.T) {
		result := v.ValidatePlacements([]models.Placement{
			placement("p1", "left abdomen", "15-06-2025"),
		}, sites, today)
		if len(result.Conflicts) != 1 || result.Conflicts[0].Type != ConflictInvalidDay {
			t.Errorf("expected one invalid day conflict, got %v", result.Conflicts)
		}
	})

	t.Run("future day flagged", func(t *testing.T) {
		result := v.ValidatePlacements([]models.Placement{
			placement("p1", "left abdomen", "2025-06-16"),
		}, sites, today)
		found := false
		for _, c := range result.Conflicts {
			if c.Type == ConflictFutureDay {
				found = true
			}
		}
		if !found {
			t.Errorf("expected future day conflict, got %v", result.Conflicts)
		}
	})

	t.Run("deleted placements skipped", func(t *testing.T) {
		now := time.Now()
		p := placement("p1", "nowhere", "2025-06-14")
		p.DeletedAt = &now
		result := v.ValidatePlacements([]models.Placement{p}, sites, today)
		if result.HasConflicts() {
			t.Errorf("deleted placement should be skipped, got %v", result.Conflicts)
		}
	})
}

func TestValidateScore(t *testing.T) {
	for score := constants.MinScore; score <= constants.MaxScore; score++ {
		if err := ValidateScore(score); err != nil {
			t.Errorf("ValidateScore(%d) returned error: %v", score, err)
		}
	}
	if err := ValidateScore(constants.MinScore - 1); err == nil {
		t.Error("ValidateScore below minimum should return error")
	}
	if err := ValidateScore(constants.MaxScore + 1); err == nil {
		t.Error("ValidateScore above maximum should return error")
	}
}

func TestValidateDay(t *testing.T) {
	if err := ValidateDay(""); err != nil {
		t.Errorf("ValidateDay(\"\") should allow empty, got %v", err)
	}
	if err := ValidateDay("2025-06-15"); err != nil {
		t.Errorf("ValidateDay(\"2025-06-15\") returned error: %v", err)
	}
	if err := ValidateDay("junk"); err == nil {
		t.Error("ValidateDay(\"junk\") should return error")
	}
}

func TestValidateSiteLabel(t *testing.T) {
	if err := ValidateSiteLabel("left abdomen"); err != nil {
		t.Errorf("ValidateSiteLabel returned error for valid label: %v", err)
	}
	if err := ValidateSiteLabel("   "); err == nil {
		t.Error("ValidateSiteLabel should reject blank labels")
	}
	if err := ValidateSiteLabel(strings.Repeat("x", 65)); err == nil {
		t.Error("ValidateSiteLabel should reject labels over 64 characters")
	}
}

func TestFormatReport(t *testing.T) {
	var r Result
	if got := r.FormatReport(); got != "No conflicts detected." {
		t.Errorf("FormatReport() = %q for empty result", got)
	}

	r.Conflicts = append(r.Conflicts, Conflict{
		Type:        ConflictUnknownSite,
		Description: "placement p1 uses unknown site \"nowhere\"",
	})
	report := r.FormatReport()
	if !strings.Contains(report, "nowhere") {
		t.Errorf("FormatReport() missing conflict detail: %q", report)
	}
}
