package system

import (
	"fmt"
	"os"
	"path/filepath"

	"omnisite/internal/cli"
	"omnisite/internal/storage"
)

type InitCmd struct {
	Force  bool   `help:"Force reset by deleting existing database before initialization."`
	Source string `help:"Source database path or connection string to migrate data from."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	// If force flag is provided, delete existing database
	if c.Force {
		dbPath := ctx.Store.GetConfigPath()
		// Don't delete if it's the source (user error protection)
		if c.Source != "" {
			absDbPath, err := filepath.Abs(dbPath)
			if err == nil {
				dbPath = absDbPath
			}
			absSource, err := filepath.Abs(c.Source)
			if err == nil && absSource == dbPath {
				return fmt.Errorf("cannot use --force when source and destination are the same: %s", dbPath)
			}
		}
		if _, err := os.Stat(dbPath); err == nil {
			// Close first to prevent file locking issues
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing database: %w", err)
			}
			if err := os.Remove(dbPath); err != nil {
				return fmt.Errorf("failed to delete existing database: %w", err)
			}
			fmt.Printf("Deleted existing database at: %s\n", dbPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing database: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized omnisite storage at: %s\n", ctx.Store.GetConfigPath())

	if c.Source != "" {
		fmt.Printf("Migrating data from: %s\n", c.Source)
		if err := c.migrateData(ctx, c.Source); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		fmt.Println("Migration completed successfully!")
	}

	return nil
}

func (c *InitCmd) migrateData(ctx *cli.Context, sourcePath string) error {
	var sourceStore storage.Provider
	if storage.IsPostgresConnString(sourcePath) {
		if storage.HasEmbeddedCredentials(sourcePath) {
			return fmt.Errorf("PostgreSQL source connection string contains embedded credentials. Use environment variables or .pgpass instead")
		}
		sourceStore = storage.NewPostgresStore(sourcePath)
	} else {
		sourceStore = storage.NewSQLiteStore(sourcePath)
	}

	if err := sourceStore.Load(); err != nil {
		return fmt.Errorf("failed to load source database: %w", err)
	}
	defer sourceStore.Close()

	fmt.Println("  Migrating settings...")
	settings, err := sourceStore.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings from source: %w", err)
	}
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings to destination: %w", err)
	}

	fmt.Println("  Migrating sites...")
	sites, err := sourceStore.GetAllSites(true, true)
	if err != nil {
		return fmt.Errorf("failed to get sites from source: %w", err)
	}
	for _, site := range sites {
		if err := ctx.Store.UpdateSite(site); err != nil {
			return fmt.Errorf("failed to add site %s: %w", site.ID, err)
		}
	}
	fmt.Printf("    Migrated %d sites\n", len(sites))

	fmt.Println("  Migrating placements...")
	placements, err := sourceStore.GetAllPlacements()
	if err != nil {
		return fmt.Errorf("failed to get placements from source: %w", err)
	}
	for _, placement := range placements {
		if err := ctx.Store.AddPlacement(placement); err != nil {
			return fmt.Errorf("failed to add placement %s: %w", placement.ID, err)
		}
	}
	fmt.Printf("    Migrated %d placements\n", len(placements))

	fmt.Println("  Migrating doses...")
	doses, err := sourceStore.GetDoses("0000-01-01", "9999-12-31")
	if err != nil {
		return fmt.Errorf("failed to get doses from source: %w", err)
	}
	for _, dose := range doses {
		if err := ctx.Store.AddDose(dose); err != nil {
			return fmt.Errorf("failed to add dose %s: %w", dose.ID, err)
		}
	}
	fmt.Printf("    Migrated %d doses\n", len(doses))

	fmt.Println("  Migrating symptom entries...")
	symptoms, err := sourceStore.GetSymptomEntries("0000-01-01", "9999-12-31")
	if err != nil {
		return fmt.Errorf("failed to get symptom entries from source: %w", err)
	}
	for _, entry := range symptoms {
		if err := ctx.Store.AddSymptomEntry(entry); err != nil {
			return fmt.Errorf("failed to add symptom entry %s: %w", entry.ID, err)
		}
	}
	fmt.Printf("    Migrated %d symptom entries\n", len(symptoms))

	fmt.Println("  Migrating ratings...")
	ratings, err := sourceStore.GetRatings("0000-01-01", "9999-12-31")
	if err != nil {
		return fmt.Errorf("failed to get ratings from source: %w", err)
	}
	for _, rating := range ratings {
		if err := ctx.Store.AddRating(rating); err != nil {
			return fmt.Errorf("failed to add rating %s: %w", rating.ID, err)
		}
	}
	fmt.Printf("    Migrated %d ratings\n", len(ratings))

	fmt.Println("  Migrating notes...")
	notes, err := sourceStore.GetNotes("0000-01-01", "9999-12-31")
	if err != nil {
		return fmt.Errorf("failed to get notes from source: %w", err)
	}
	for _, note := range notes {
		if err := ctx.Store.AddNote(note); err != nil {
			return fmt.Errorf("failed to add note %s: %w", note.ID, err)
		}
	}
	fmt.Printf("    Migrated %d notes\n", len(notes))

	fmt.Println("  Migrating goals...")
	goals, err := sourceStore.GetAllGoals(true)
	if err != nil {
		return fmt.Errorf("failed to get goals from source: %w", err)
	}
	for _, goal := range goals {
		if err := ctx.Store.AddGoal(goal); err != nil {
			return fmt.Errorf("failed to add goal %s: %w", goal.ID, err)
		}
	}
	fmt.Printf("    Migrated %d goals\n", len(goals))

	return nil
}
