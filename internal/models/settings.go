package models

// Settings represents application-wide settings
type Settings struct {
	RestPeriodDays       int    `json:"rest_period_days"`       // days a site must rest before it counts as ready
	ActiveWindowDays     int    `json:"active_window_days"`     // days after use during which a site is "active"
	HealingWindowDays    int    `json:"healing_window_days"`    // days after use during which a site is "healing"
	DefaultLogDays       int    `json:"default_log_days"`       // default history window for list commands
	NotificationsEnabled bool   `json:"notifications_enabled"`  // whether notifications are enabled
	NotifyRotationDue    bool   `json:"notify_rotation_due"`    // whether to notify when every site is ready
	CleanupAfterDays     int    `json:"cleanup_after_days"`     // age at which soft-deleted rows are purged
	Timezone             string `json:"timezone"`               // IANA timezone name, or "Local" for system timezone
}
