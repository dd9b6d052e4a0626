package system

import (
	"fmt"

	"omnisite/internal/cli"
	"omnisite/internal/constants"
	"omnisite/internal/notifier"
	"omnisite/internal/rotation"
	"omnisite/internal/utils"
)

type NotifyCmd struct {
	DryRun bool `help:"Print notifications to stdout instead of sending them."`
}

func (c *NotifyCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if !settings.NotificationsEnabled || !settings.NotifyRotationDue {
		if c.DryRun {
			fmt.Println("Rotation notifications are disabled in settings.")
		}
		return nil
	}

	sites, err := ctx.Store.GetAllSites(false, false)
	if err != nil {
		return fmt.Errorf("failed to get sites: %w", err)
	}
	if len(sites) == 0 {
		return nil
	}
	placements, err := ctx.Store.GetAllPlacements()
	if err != nil {
		return fmt.Errorf("failed to get placements: %w", err)
	}

	now, err := utils.NowInTimezone(settings.Timezone)
	if err != nil {
		now, _ = utils.NowInTimezone("Local")
	}

	// Only nudge once nothing has been logged today and a rested site exists
	today := now.Format(constants.DateFormat)
	for _, p := range placements {
		if p.DeletedAt == nil && p.Day == today {
			if c.DryRun {
				fmt.Println("A placement is already logged today.")
			}
			return nil
		}
	}

	site, ok := rotation.Suggest(placements, sites, now, ctx.RotationConfig())
	if !ok {
		if c.DryRun {
			fmt.Println("No site is rested yet; nothing to suggest.")
		}
		return nil
	}

	msg := fmt.Sprintf("Rotation due: %s is rested and ready", site.Label)
	if c.DryRun {
		fmt.Println("[DryRun] " + msg)
		return nil
	}

	n := notifier.New()
	if err := n.Notify(msg); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	return nil
}
