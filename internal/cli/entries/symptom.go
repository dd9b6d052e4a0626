package entries

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"omnisite/internal/cli"
	"omnisite/internal/models"
	"omnisite/internal/stats"
	"omnisite/internal/validation"
)

type SymptomAddCmd struct {
	Symptom  string `arg:"" help:"Symptom label, e.g. 'bruising'."`
	Severity int    `arg:"" help:"Severity from 1 (mild) to 5 (severe)."`
	Site     string `short:"s" help:"Optional site the symptom relates to."`
	Date     string `short:"d" help:"Day observed (YYYY-MM-DD). Defaults to today."`
	Note     string `short:"n" help:"Optional note."`
}

func (c *SymptomAddCmd) Validate() error {
	if err := validation.ValidateScore(c.Severity); err != nil {
		return fmt.Errorf("invalid severity: %w", err)
	}
	if c.Date != "" {
		if err := validation.ValidateDay(c.Date); err != nil {
			return err
		}
	}
	return nil
}

func (c *SymptomAddCmd) Run(ctx *cli.Context) error {
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

	entry := models.SymptomEntry{
		ID:        uuid.New().String(),
		Symptom:   c.Symptom,
		Severity:  c.Severity,
		Site:      siteLabel,
		Day:       day,
		Note:      c.Note,
		CreatedAt: time.Now(),
	}

	if err := ctx.Store.AddSymptomEntry(entry); err != nil {
		return fmt.Errorf("failed to add symptom entry: %w", err)
	}

	fmt.Printf("Logged symptom: %s (severity %d) on %s (ID: %s)\n", c.Symptom, c.Severity, day, entry.ID)
	return nil
}

type SymptomListCmd struct {
	Days int `short:"d" help:"How many days of history to show. Defaults to the configured window."`
}

func (c *SymptomListCmd) Run(ctx *cli.Context) error {
	start, end, err := ctx.ResolveRange(c.Days)
	if err != nil {
		return err
	}

	symptoms, err := ctx.Store.GetSymptomEntries(start, end)
	if err != nil {
		return fmt.Errorf("failed to get symptom entries: %w", err)
	}

	if len(symptoms) == 0 {
		fmt.Printf("No symptoms logged between %s and %s.\n", start, end)
		return nil
	}

	fmt.Printf("Symptoms %s to %s:\n\n", start, end)
	for _, s := range symptoms {
		site := ""
		if s.Site != "" {
			site = "  @" + s.Site
		}
		fmt.Printf("  %s  %-16s severity %d%s  %s\n", s.Day, s.Symptom, s.Severity, site, s.ID)
	}

	averages := stats.AverageSeverityBySymptom(symptoms)
	names := make([]string, 0, len(averages))
	for name := range averages {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println("\nAverage severity:")
	for _, name := range names {
		fmt.Printf("  %-16s %.1f / 5\n", name, averages[name])
	}

	return nil
}

type SymptomDeleteCmd struct {
	ID string `arg:"" help:"Symptom entry ID to delete."`
}

func (c *SymptomDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.DeleteSymptomEntry(c.ID); err != nil {
		return fmt.Errorf("failed to delete symptom entry: %w", err)
	}

	fmt.Printf("Deleted symptom entry with ID: %s\n", c.ID)
	return nil
}
