package entries

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"omnisite/internal/cli"
	"omnisite/internal/models"
	"omnisite/internal/validation"
)

type NoteAddCmd struct {
	Body string `arg:"" help:"Note text."`
	Site string `short:"s" help:"Optional site the note relates to."`
	Date string `short:"d" help:"Day the note applies to (YYYY-MM-DD). Defaults to today."`
}

func (c *NoteAddCmd) Validate() error {
	if c.Body == "" {
		return fmt.Errorf("note body must not be empty")
	}
	if c.Date != "" {
		if err := validation.ValidateDay(c.Date); err != nil {
			return err
		}
	}
	return nil
}

func (c *NoteAddCmd) Run(ctx *cli.Context) error {
	siteLabel := ""
	if c.Site != "" {
		site, err := ctx.ResolveSite(c.Site)
		if err != nil {
			return err
		}
		siteLabel = site.Label
	}

	day := c.Date
	if day == "" {
		day = ctx.Today()
	}

	note := models.Note{
		ID:        uuid.New().String(),
		Site:      siteLabel,
		Day:       day,
		Body:      c.Body,
		CreatedAt: time.Now(),
	}

	if err := ctx.Store.AddNote(note); err != nil {
		return fmt.Errorf("failed to add note: %w", err)
	}

	fmt.Printf("Added note on %s (ID: %s)\n", day, note.ID)
	return nil
}

type NoteListCmd struct {
	Days int `short:"d" help:"How many days of history to show. Defaults to the configured window."`
}

func (c *NoteListCmd) Run(ctx *cli.Context) error {
	start, end, err := ctx.ResolveRange(c.Days)
	if err != nil {
		return err
	}

	notes, err := ctx.Store.GetNotes(start, end)
	if err != nil {
		return fmt.Errorf("failed to get notes: %w", err)
	}

	if len(notes) == 0 {
		fmt.Printf("No notes between %s and %s.\n", start, end)
		return nil
	}

	fmt.Printf("Notes %s to %s:\n\n", start, end)
	for _, n := range notes {
		site := ""
		if n.Site != "" {
			site = "  @" + n.Site
		}
		fmt.Printf("  %s%s  %s\n      %s\n", n.Day, site, n.ID, n.Body)
	}

	return nil
}

type NoteDeleteCmd struct {
	ID string `arg:"" help:"Note ID to delete."`
}

func (c *NoteDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.DeleteNote(c.ID); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	fmt.Printf("Deleted note with ID: %s\n", c.ID)
	return nil
}
