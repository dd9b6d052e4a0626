package placements

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"omnisite/internal/cli"
	"omnisite/internal/models"
	"omnisite/internal/rotation"
	"omnisite/internal/streak"
	"omnisite/internal/utils"
	"omnisite/internal/validation"
)

type LogCmd struct {
	Site  string `arg:"" help:"Site label to log, e.g. 'left abdomen'."`
	Date  string `short:"d" help:"Day to log (YYYY-MM-DD). Defaults to today."`
	Note  string `short:"n" help:"Optional note."`
	Photo string `short:"p" help:"Optional photo file reference."`
}

func (c *LogCmd) Validate() error {
	if c.Date != "" {
		if err := validation.ValidateDay(c.Date); err != nil {
			return err
		}
	}
	return nil
}

func (c *LogCmd) Run(ctx *cli.Context) error {
	site, err := ctx.ResolveSite(c.Site)
	if err != nil {
		return err
	}
	if site.ArchivedAt != nil {
		return fmt.Errorf("site %s is archived; unarchive it first", site.Label)
	}

	today := ctx.Today()
	day := c.Date
	if day == "" {
		day = today
	}
	if day > today {
		return fmt.Errorf("cannot log a placement in the future (%s)", day)
	}

	placement := models.Placement{
		ID:        uuid.New().String(),
		Site:      site.Label,
		Day:       day,
		Note:      c.Note,
		PhotoRef:  c.Photo,
		CreatedAt: time.Now(),
	}

	if err := ctx.Store.AddPlacement(placement); err != nil {
		return fmt.Errorf("failed to log placement: %w", err)
	}

	fmt.Printf("Logged %s on %s (ID: %s)\n", site.Label, day, placement.ID)

	// Show the updated stage and streak so a quick log doubles as a check-in
	placements, err := ctx.Store.GetAllPlacements()
	if err == nil {
		settings, serr := ctx.Store.GetSettings()
		if serr == nil {
			now, nerr := utils.NowInTimezone(settings.Timezone)
			if nerr != nil {
				now, _ = utils.NowInTimezone("Local")
			}
			stage := rotation.Classify(placements, site.Label, now, ctx.RotationConfig())
			fmt.Printf("%s is now %s\n", site.Label, stage)
		}

		summary := streak.Compute(placements, today)
		if summary.Current > 0 {
			fmt.Printf("Streak: %d day(s)\n", summary.Current)
		}
	}

	return nil
}
