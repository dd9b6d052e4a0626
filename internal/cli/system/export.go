package system

import (
	"fmt"
	"time"

	"omnisite/internal/cli"
	"omnisite/internal/export"
)

type ExportCmd struct {
	Format string `short:"f" help:"Export format (json|csv)." default:"json"`
	Out    string `short:"o" help:"Output path: a file for json, a directory for csv. Defaults to omnisite-export-<date>."`
}

func (c *ExportCmd) Validate() error {
	if c.Format != "json" && c.Format != "csv" {
		return fmt.Errorf("invalid format: %s (expected json or csv)", c.Format)
	}
	return nil
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	archive, err := export.Collect(ctx.Store)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	out := c.Out
	if out == "" {
		stamp := time.Now().Format("20060102")
		if c.Format == "json" {
			out = fmt.Sprintf("omnisite-export-%s.json", stamp)
		} else {
			out = fmt.Sprintf("omnisite-export-%s", stamp)
		}
	}

	switch c.Format {
	case "json":
		if err := export.WriteJSON(archive, out); err != nil {
			return err
		}
	case "csv":
		if err := export.WriteCSV(archive, out); err != nil {
			return err
		}
	}

	fmt.Printf("Exported %d placements, %d doses, %d symptoms, %d ratings, %d notes, %d goals to %s\n",
		len(archive.Placements), len(archive.Doses), len(archive.Symptoms),
		len(archive.Ratings), len(archive.Notes), len(archive.Goals), out)
	return nil
}
