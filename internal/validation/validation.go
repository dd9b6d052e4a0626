package validation

import (
	"fmt"
	"strings"

	"omnisite/internal/constants"
	"omnisite/internal/models"
	"omnisite/internal/utils"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictDuplicateSiteLabel ConflictType = "duplicate_site_label"
	ConflictUnknownSite        ConflictType = "unknown_site"
	ConflictInvalidDay         ConflictType = "invalid_day"
	ConflictFutureDay          ConflictType = "future_day"
	ConflictScoreOutOfRange    ConflictType = "score_out_of_range"
	ConflictMissingID          ConflictType = "missing_id"
)

// Conflict represents a detected inconsistency in stored records
type Conflict struct {
	Type        ConflictType
	Description string
	Day         string   // YYYY-MM-DD format (if applicable)
	Items       []string // Record labels or IDs involved
}

// Result contains all detected conflicts
type Result struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (r *Result) HasConflicts() bool {
	return len(r.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (r *Result) FormatReport() string {
	if !r.HasConflicts() {
		return "No conflicts detected."
	}

	var b strings.Builder
	b.WriteString("Conflicts detected:\n")
	for _, conflict := range r.Conflicts {
		fmt.Fprintf(&b, "- %s\n", conflict.Description)
	}
	return b.String()
}

// Validator validates stored records for consistency
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidateSites checks the site catalogue for duplicate labels and missing IDs.
func (v *Validator) ValidateSites(sites []models.Site) Result {
	var result Result

	seen := make(map[string][]string)
	for _, site := range sites {
		if site.DeletedAt != nil {
			continue
		}
		if site.ID == "" {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictMissingID,
				Description: fmt.Sprintf("site %q has no ID", site.Label),
				Items:       []string{site.Label},
			})
		}
		key := strings.ToLower(strings.TrimSpace(site.Label))
		seen[key] = append(seen[key], site.Label)
	}

	for _, labels := range seen {
		if len(labels) > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateSiteLabel,
				Description: fmt.Sprintf("duplicate site label %q (%d entries)", labels[0], len(labels)),
				Items:       labels,
			})
		}
	}

	return result
}

// ValidatePlacements checks placements against the site catalogue.
// Placements referencing unknown sites are flagged but never rejected, to
// match the free-form site labels accepted at entry time.
func (v *Validator) ValidatePlacements(placements []models.Placement, sites []models.Site, today string) Result {
	var result Result

	known := make(map[string]bool, len(sites))
	for _, site := range sites {
		if site.DeletedAt == nil {
			known[site.Label] = true
		}
	}

	for _, p := range placements {
		if p.DeletedAt != nil {
			continue
		}
		if p.ID == "" {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictMissingID,
				Description: fmt.Sprintf("placement on %s has no ID", p.Day),
				Day:         p.Day,
			})
		}
		if !utils.ValidateDayFormat(p.Day) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidDay,
				Description: fmt.Sprintf("placement %s has invalid day %q", p.ID, p.Day),
				Items:       []string{p.ID},
			})
			continue
		}
		if today != "" && p.Day > today {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictFutureDay,
				Description: fmt.Sprintf("placement %s is dated in the future (%s)", p.ID, p.Day),
				Day:         p.Day,
				Items:       []string{p.ID},
			})
		}
		if !known[p.Site] {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictUnknownSite,
				Description: fmt.Sprintf("placement %s uses unknown site %q", p.ID, p.Site),
				Day:         p.Day,
				Items:       []string{p.Site},
			})
		}
	}

	return result
}

// ValidateScore checks a rating or severity value against the shared bounds.
func ValidateScore(score int) error {
	if score < constants.MinScore || score > constants.MaxScore {
		return fmt.Errorf("score must be between %d and %d", constants.MinScore, constants.MaxScore)
	}
	return nil
}

// ValidateDay checks a date string, allowing empty (meaning "today").
func ValidateDay(day string) error {
	if day == "" {
		return nil
	}
	if !utils.ValidateDayFormat(day) {
		return fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", day)
	}
	return nil
}

// ValidateSiteLabel checks a site label for emptiness and length.
func ValidateSiteLabel(label string) error {
	trimmed := strings.TrimSpace(label)
	if trimmed == "" {
		return fmt.Errorf("site label cannot be empty")
	}
	if len(trimmed) > 64 {
		return fmt.Errorf("site label too long (max 64 characters)")
	}
	return nil
}
