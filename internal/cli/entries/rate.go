package entries

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"omnisite/internal/cli"
	"omnisite/internal/models"
	"omnisite/internal/validation"
)

type RateCmd struct {
	Site  string `arg:"" help:"Site label to rate."`
	Score int    `arg:"" help:"Comfort score from 1 (poor) to 5 (great)."`
	Date  string `short:"d" help:"Day the rating applies to (YYYY-MM-DD). Defaults to today."`
	Note  string `short:"n" help:"Optional note."`
}

func (c *RateCmd) Validate() error {
	if err := validation.ValidateScore(c.Score); err != nil {
		return err
	}
	if c.Date != "" {
		if err := validation.ValidateDay(c.Date); err != nil {
			return err
		}
	}
	return nil
}

func (c *RateCmd) Run(ctx *cli.Context) error {
	site, err := ctx.ResolveSite(c.Site)
	if err != nil {
		return err
	}

	day := c.Date
	if day == "" {
		day = ctx.Today()
	}

	rating := models.Rating{
		ID:        uuid.New().String(),
		Site:      site.Label,
		Score:     c.Score,
		Day:       day,
		Note:      c.Note,
		CreatedAt: time.Now(),
	}

	if err := ctx.Store.AddRating(rating); err != nil {
		return fmt.Errorf("failed to add rating: %w", err)
	}

	fmt.Printf("Rated %s: %d/5 on %s (ID: %s)\n", site.Label, c.Score, day, rating.ID)
	return nil
}

type RatingDeleteCmd struct {
	ID string `arg:"" help:"Rating ID to delete."`
}

func (c *RatingDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.DeleteRating(c.ID); err != nil {
		return fmt.Errorf("failed to delete rating: %w", err)
	}

	fmt.Printf("Deleted rating with ID: %s\n", c.ID)
	return nil
}
