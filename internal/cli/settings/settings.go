package settings

import (
	"fmt"

	"omnisite/internal/cli"
	"omnisite/internal/utils"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	RestPeriodDays       *int    `help:"Days a site must rest before it counts as ready."`
	ActiveWindowDays     *int    `help:"Days after use during which a site stays active."`
	HealingWindowDays    *int    `help:"Days after use during which a site is healing."`
	DefaultLogDays       *int    `help:"Default history window for list commands."`
	CleanupAfterDays     *int    `help:"Age in days at which soft-deleted rows are purged."`
	NotificationsEnabled *bool   `help:"Enable or disable notifications."`
	NotifyRotationDue    *bool   `help:"Notify when a rested site is available."`
	Timezone             *string `help:"IANA timezone name, or 'Local' for the system timezone."`
}

func (c *SettingsCmd) Validate() error {
	if c.RestPeriodDays != nil && *c.RestPeriodDays < 1 {
		return fmt.Errorf("rest period must be at least 1 day")
	}
	if c.ActiveWindowDays != nil && *c.ActiveWindowDays < 1 {
		return fmt.Errorf("active window must be at least 1 day")
	}
	if c.HealingWindowDays != nil && *c.HealingWindowDays < 1 {
		return fmt.Errorf("healing window must be at least 1 day")
	}
	if c.Timezone != nil && !utils.ValidateTimezone(*c.Timezone) {
		return fmt.Errorf("invalid timezone: %s", *c.Timezone)
	}
	return nil
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		fmt.Println("Current Settings:")
		fmt.Printf("  Rest Period:           %d days\n", settings.RestPeriodDays)
		fmt.Printf("  Active Window:         %d days\n", settings.ActiveWindowDays)
		fmt.Printf("  Healing Window:        %d days\n", settings.HealingWindowDays)
		fmt.Printf("  Default Log Window:    %d days\n", settings.DefaultLogDays)
		fmt.Printf("  Cleanup After:         %d days\n", settings.CleanupAfterDays)
		fmt.Printf("  Timezone:              %s\n", settings.Timezone)
		fmt.Println("\nNotification Settings:")
		fmt.Printf("  Notifications Enabled: %v\n", settings.NotificationsEnabled)
		fmt.Printf("  Notify Rotation Due:   %v\n", settings.NotifyRotationDue)
		return nil
	}

	updated := false
	if c.RestPeriodDays != nil {
		settings.RestPeriodDays = *c.RestPeriodDays
		updated = true
	}
	if c.ActiveWindowDays != nil {
		settings.ActiveWindowDays = *c.ActiveWindowDays
		updated = true
	}
	if c.HealingWindowDays != nil {
		settings.HealingWindowDays = *c.HealingWindowDays
		updated = true
	}
	if c.DefaultLogDays != nil {
		settings.DefaultLogDays = *c.DefaultLogDays
		updated = true
	}
	if c.CleanupAfterDays != nil {
		settings.CleanupAfterDays = *c.CleanupAfterDays
		updated = true
	}
	if c.NotificationsEnabled != nil {
		settings.NotificationsEnabled = *c.NotificationsEnabled
		updated = true
	}
	if c.NotifyRotationDue != nil {
		settings.NotifyRotationDue = *c.NotifyRotationDue
		updated = true
	}
	if c.Timezone != nil {
		settings.Timezone = *c.Timezone
		updated = true
	}

	if !updated {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
		return nil
	}

	// Windows must stay strictly ordered or classification buckets collapse
	if settings.ActiveWindowDays >= settings.HealingWindowDays {
		return fmt.Errorf("active window (%d) must be shorter than healing window (%d)",
			settings.ActiveWindowDays, settings.HealingWindowDays)
	}
	if settings.HealingWindowDays >= settings.RestPeriodDays {
		return fmt.Errorf("healing window (%d) must be shorter than rest period (%d)",
			settings.HealingWindowDays, settings.RestPeriodDays)
	}

	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	fmt.Println("Settings updated successfully.")

	return nil
}
