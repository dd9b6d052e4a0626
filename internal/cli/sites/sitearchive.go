package sites

import (
	"fmt"

	"omnisite/internal/cli"
)

type SiteArchiveCmd struct {
	Label string `arg:"" help:"Site label to archive."`
}

func (c *SiteArchiveCmd) Run(ctx *cli.Context) error {
	site, err := ctx.ResolveSite(c.Label)
	if err != nil {
		return err
	}

	if site.ArchivedAt != nil {
		fmt.Printf("Site %s is already archived.\n", site.Label)
		return nil
	}

	if err := ctx.Store.ArchiveSite(site.ID); err != nil {
		return fmt.Errorf("failed to archive site: %w", err)
	}

	fmt.Printf("Archived site: %s (history is kept, site is hidden from rotation)\n", site.Label)
	return nil
}

type SiteUnarchiveCmd struct {
	Label string `arg:"" help:"Site label to unarchive."`
}

func (c *SiteUnarchiveCmd) Run(ctx *cli.Context) error {
	site, err := ctx.ResolveSite(c.Label)
	if err != nil {
		return err
	}

	if site.ArchivedAt == nil {
		fmt.Printf("Site %s is not archived.\n", site.Label)
		return nil
	}

	if err := ctx.Store.UnarchiveSite(site.ID); err != nil {
		return fmt.Errorf("failed to unarchive site: %w", err)
	}

	fmt.Printf("Unarchived site: %s\n", site.Label)
	return nil
}
