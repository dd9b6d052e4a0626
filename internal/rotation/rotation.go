package rotation

import (
	"sort"
	"time"

	"omnisite/internal/constants"
	"omnisite/internal/models"
	"omnisite/internal/utils"
)

// Config holds the day thresholds for recovery classification. The buckets
// are half-open: a site used earlier today has 0 elapsed days and is active.
type Config struct {
	ActiveWindowDays  int
	HealingWindowDays int
	RestPeriodDays    int
}

// ConfigFromSettings builds a rotation config from stored settings,
// substituting defaults for unset values.
func ConfigFromSettings(settings models.Settings) Config {
	cfg := Config{
		ActiveWindowDays:  settings.ActiveWindowDays,
		HealingWindowDays: settings.HealingWindowDays,
		RestPeriodDays:    settings.RestPeriodDays,
	}
	if cfg.ActiveWindowDays <= 0 {
		cfg.ActiveWindowDays = constants.DefaultActiveWindowDays
	}
	if cfg.HealingWindowDays <= cfg.ActiveWindowDays {
		cfg.HealingWindowDays = constants.DefaultHealingWindowDays
	}
	if cfg.RestPeriodDays <= cfg.HealingWindowDays {
		cfg.RestPeriodDays = constants.DefaultRestPeriodDays
	}
	return cfg
}

// SiteStatus is the computed recovery state for one catalogue site
type SiteStatus struct {
	Site          models.Site             `json:"site"`
	Stage         constants.RecoveryStage `json:"stage"`
	LastUsedDay   string                  `json:"last_used_day,omitempty"`
	DaysSinceUse  int                     `json:"days_since_use"`
	UseCount      int                     `json:"use_count"`
	AverageRating float64                 `json:"average_rating,omitempty"`
}

// StageForElapsed classifies an elapsed day count into a recovery stage.
func StageForElapsed(days int, cfg Config) constants.RecoveryStage {
	switch {
	case days < cfg.ActiveWindowDays:
		return constants.StageActive
	case days < cfg.HealingWindowDays:
		return constants.StageHealing
	case days < cfg.RestPeriodDays:
		return constants.StageRecovered
	default:
		return constants.StageReady
	}
}

// Classify returns the recovery stage for a single site given the full
// placement history. A site with no placements is ready.
func Classify(placements []models.Placement, siteLabel string, now time.Time, cfg Config) constants.RecoveryStage {
	days := daysSinceLastUse(placements, siteLabel, now)
	return StageForElapsed(days, cfg)
}

// Overview computes per-site status for every site in the catalogue.
// Output order follows the catalogue order. Archived and deleted sites are
// the caller's concern; every site passed in gets a status.
func Overview(placements []models.Placement, sites []models.Site, now time.Time, cfg Config) []SiteStatus {
	statuses := make([]SiteStatus, 0, len(sites))
	for _, site := range sites {
		status := SiteStatus{
			Site:         site,
			DaysSinceUse: constants.NeverUsedSentinelDays,
		}
		for _, p := range placements {
			if p.Site != site.Label || p.DeletedAt != nil {
				continue
			}
			status.UseCount++
			if p.Day > status.LastUsedDay {
				status.LastUsedDay = p.Day
			}
		}
		if status.LastUsedDay != "" {
			last, err := utils.ParseDayInLocation(status.LastUsedDay, now.Location())
			if err == nil {
				status.DaysSinceUse = utils.DaysBetween(last, now)
			}
		}
		status.Stage = StageForElapsed(status.DaysSinceUse, cfg)
		statuses = append(statuses, status)
	}
	return statuses
}

// Suggest returns the label of the site that should be used next: the
// least-recently-used ready site, with never-used sites first. Catalogue
// order breaks ties. Returns false when no site is ready.
func Suggest(placements []models.Placement, sites []models.Site, now time.Time, cfg Config) (models.Site, bool) {
	statuses := Overview(placements, sites, now, cfg)

	// Stable sort keeps catalogue order for equal elapsed counts
	sort.SliceStable(statuses, func(i, j int) bool {
		return statuses[i].DaysSinceUse > statuses[j].DaysSinceUse
	})

	for _, status := range statuses {
		if status.Stage == constants.StageReady {
			return status.Site, true
		}
	}
	return models.Site{}, false
}

func daysSinceLastUse(placements []models.Placement, siteLabel string, now time.Time) int {
	lastDay := ""
	for _, p := range placements {
		if p.Site != siteLabel || p.DeletedAt != nil {
			continue
		}
		if p.Day > lastDay {
			lastDay = p.Day
		}
	}
	if lastDay == "" {
		return constants.NeverUsedSentinelDays
	}
	last, err := utils.ParseDayInLocation(lastDay, now.Location())
	if err != nil {
		return constants.NeverUsedSentinelDays
	}
	return utils.DaysBetween(last, now)
}
