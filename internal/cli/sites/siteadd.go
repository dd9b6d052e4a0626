package sites

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"omnisite/internal/cli"
	"omnisite/internal/models"
	"omnisite/internal/validation"
)

type SiteAddCmd struct {
	Label  string `arg:"" help:"Site label, e.g. 'left calf'."`
	Region string `short:"r" help:"Body region (abdomen|arm|leg|buttock|back)." required:""`
	Side   string `short:"s" help:"Side (left|right|center)." default:"center"`
}

func (c *SiteAddCmd) Validate() error {
	if err := validation.ValidateSiteLabel(c.Label); err != nil {
		return err
	}
	if _, err := cli.ParseBodyRegion(c.Region); err != nil {
		return err
	}
	if _, err := cli.ParseSide(c.Side); err != nil {
		return err
	}
	return nil
}

func (c *SiteAddCmd) Run(ctx *cli.Context) error {
	label := strings.TrimSpace(strings.ToLower(c.Label))

	// Labels are unique across the catalogue
	if _, err := ctx.Store.GetSiteByLabel(label); err == nil {
		return fmt.Errorf("site %q already exists", label)
	}

	region, _ := cli.ParseBodyRegion(c.Region)
	side, _ := cli.ParseSide(c.Side)

	site := models.Site{
		ID:         uuid.New().String(),
		Label:      label,
		BodyRegion: region,
		Side:       side,
		CreatedAt:  time.Now(),
	}

	if err := ctx.Store.AddSite(site); err != nil {
		return fmt.Errorf("failed to add site: %w", err)
	}

	fmt.Printf("Added site: %s (ID: %s)\n", label, site.ID)
	return nil
}
