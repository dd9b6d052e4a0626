package cli

import (
	"fmt"
	"strings"

	"omnisite/internal/backup"
	"omnisite/internal/constants"
	"omnisite/internal/logger"
	"omnisite/internal/models"
	"omnisite/internal/rotation"
	"omnisite/internal/storage"
	"omnisite/internal/utils"
)

type Context struct {
	Store storage.Provider
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	_, err := mgr.CreateBackup()
	if err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// Today resolves today's day string in the configured timezone. If settings
// cannot be read or the timezone is invalid, the system timezone is used and
// the fallback is logged.
func (c *Context) Today() string {
	settings, err := c.Store.GetSettings()
	if err != nil {
		logger.Warn("Failed to read settings, using system timezone", "error", err)
		day, _ := utils.GetTodayInTimezone("Local")
		return day
	}
	day, err := utils.GetTodayFromSettings(settings)
	if err != nil {
		logger.Warn("Invalid timezone in settings, using system timezone", "timezone", settings.Timezone, "error", err)
		day, _ = utils.GetTodayInTimezone("Local")
	}
	return day
}

// RotationConfig loads rotation windows from settings, falling back to
// defaults when settings are unreadable.
func (c *Context) RotationConfig() rotation.Config {
	settings, err := c.Store.GetSettings()
	if err != nil {
		logger.Warn("Failed to read settings, using default rotation windows", "error", err)
		return rotation.ConfigFromSettings(models.Settings{})
	}
	return rotation.ConfigFromSettings(settings)
}

// ResolveRange turns a --days window into [start, end] day strings ending
// today. days <= 0 falls back to the configured default.
func (c *Context) ResolveRange(days int) (string, string, error) {
	if days <= 0 {
		settings, err := c.Store.GetSettings()
		if err == nil && settings.DefaultLogDays > 0 {
			days = settings.DefaultLogDays
		} else {
			days = constants.DefaultLogDays
		}
	}
	end := c.Today()
	start, err := utils.AddDays(end, -(days - 1))
	if err != nil {
		return "", "", fmt.Errorf("failed to compute range start: %w", err)
	}
	return start, end, nil
}

// ResolveSite looks up a catalogue site by label, case-insensitively.
// Archived sites still resolve so history commands keep working.
func (c *Context) ResolveSite(label string) (models.Site, error) {
	site, err := c.Store.GetSiteByLabel(strings.TrimSpace(strings.ToLower(label)))
	if err != nil {
		return models.Site{}, fmt.Errorf("unknown site %q, see 'omnisite sites list'", label)
	}
	return site, nil
}

// ParseBodyRegion validates a body region flag value
func ParseBodyRegion(s string) (constants.BodyRegion, error) {
	switch constants.BodyRegion(strings.ToLower(strings.TrimSpace(s))) {
	case constants.RegionAbdomen:
		return constants.RegionAbdomen, nil
	case constants.RegionArm:
		return constants.RegionArm, nil
	case constants.RegionLeg:
		return constants.RegionLeg, nil
	case constants.RegionButtock:
		return constants.RegionButtock, nil
	case constants.RegionBack:
		return constants.RegionBack, nil
	default:
		return "", fmt.Errorf("invalid body region: %s (expected abdomen|arm|leg|buttock|back)", s)
	}
}

// ParseSide validates a side flag value
func ParseSide(s string) (constants.Side, error) {
	switch constants.Side(strings.ToLower(strings.TrimSpace(s))) {
	case constants.SideLeft:
		return constants.SideLeft, nil
	case constants.SideRight:
		return constants.SideRight, nil
	case constants.SideCenter:
		return constants.SideCenter, nil
	default:
		return "", fmt.Errorf("invalid side: %s (expected left|right|center)", s)
	}
}

// FormatStage renders a recovery stage with a textual badge for plain output
func FormatStage(stage constants.RecoveryStage) string {
	switch stage {
	case constants.StageActive:
		return "active   (in use)"
	case constants.StageHealing:
		return "healing"
	case constants.StageRecovered:
		return "recovered"
	case constants.StageReady:
		return "ready"
	default:
		return string(stage)
	}
}

// FormatDaysSince renders an elapsed-days count, hiding the never-used sentinel
func FormatDaysSince(days int) string {
	if days >= constants.NeverUsedSentinelDays {
		return "never used"
	}
	if days == 1 {
		return "1 day ago"
	}
	return fmt.Sprintf("%d days ago", days)
}
