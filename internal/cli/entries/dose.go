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

type DoseAddCmd struct {
	Medication string  `arg:"" help:"Medication name."`
	Amount     float64 `arg:"" help:"Dose amount."`
	Unit       string  `short:"u" help:"Unit, e.g. mg, IU, ml." default:"units"`
	Date       string  `short:"d" help:"Day the dose was taken (YYYY-MM-DD). Defaults to today."`
	Note       string  `short:"n" help:"Optional note."`
}

func (c *DoseAddCmd) Validate() error {
	if c.Amount <= 0 {
		return fmt.Errorf("amount must be greater than zero")
	}
	if c.Date != "" {
		if err := validation.ValidateDay(c.Date); err != nil {
			return err
		}
	}
	return nil
}

func (c *DoseAddCmd) Run(ctx *cli.Context) error {
	day := c.Date
	if day == "" {
		day = ctx.Today()
	}

	dose := models.Dose{
		ID:         uuid.New().String(),
		Medication: c.Medication,
		Amount:     c.Amount,
		Unit:       c.Unit,
		Day:        day,
		Note:       c.Note,
		CreatedAt:  time.Now(),
	}

	if err := ctx.Store.AddDose(dose); err != nil {
		return fmt.Errorf("failed to add dose: %w", err)
	}

	fmt.Printf("Logged dose: %g %s %s on %s (ID: %s)\n", c.Amount, c.Unit, c.Medication, day, dose.ID)
	return nil
}

type DoseListCmd struct {
	Days int `short:"d" help:"How many days of history to show. Defaults to the configured window."`
}

func (c *DoseListCmd) Run(ctx *cli.Context) error {
	start, end, err := ctx.ResolveRange(c.Days)
	if err != nil {
		return err
	}

	doses, err := ctx.Store.GetDoses(start, end)
	if err != nil {
		return fmt.Errorf("failed to get doses: %w", err)
	}

	if len(doses) == 0 {
		fmt.Printf("No doses logged between %s and %s.\n", start, end)
		return nil
	}

	fmt.Printf("Doses %s to %s:\n\n", start, end)
	for _, d := range doses {
		note := ""
		if d.Note != "" {
			note = "  " + d.Note
		}
		fmt.Printf("  %s  %g %s %-16s %s%s\n", d.Day, d.Amount, d.Unit, d.Medication, d.ID, note)
	}

	totals := stats.DoseTotals(doses, start, end)
	meds := make([]string, 0, len(totals))
	for med := range totals {
		meds = append(meds, med)
	}
	sort.Strings(meds)

	fmt.Println("\nTotals:")
	for _, med := range meds {
		fmt.Printf("  %-16s %g\n", med, totals[med])
	}

	return nil
}

type DoseDeleteCmd struct {
	ID string `arg:"" help:"Dose ID to delete."`
}

func (c *DoseDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.DeleteDose(c.ID); err != nil {
		return fmt.Errorf("failed to delete dose: %w", err)
	}

	fmt.Printf("Deleted dose with ID: %s\n", c.ID)
	return nil
}

type DoseRestoreCmd struct {
	ID string `arg:"" help:"Dose ID to restore."`
}

func (c *DoseRestoreCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.RestoreDose(c.ID); err != nil {
		return fmt.Errorf("failed to restore dose: %w", err)
	}

	fmt.Printf("Restored dose with ID: %s\n", c.ID)
	return nil
}
