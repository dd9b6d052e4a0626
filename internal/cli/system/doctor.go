package system

import (
	"database/sql"
	"fmt"
	"time"

	"omnisite/internal/backup"
	"omnisite/internal/cli"
	"omnisite/internal/storage"
	"omnisite/internal/validation"
)

// dbAccessor is satisfied by both storage backends
type dbAccessor interface {
	GetDB() *sql.DB
}

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	dbReachable := false

	// Check 1: DB reachable
	if err := checkDBReachable(ctx); err != nil {
		fmt.Printf("❌ Database reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Database reachable: OK\n")
		dbReachable = true
	}

	// Check 2: Schema version valid
	if dbReachable {
		if err := checkSchemaVersion(ctx); err != nil {
			fmt.Printf("❌ Schema version: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Schema version: OK\n")
		}
	} else {
		fmt.Printf("⊘ Schema version: SKIPPED (database not reachable)\n")
	}

	// Check 3: Migrations complete
	if dbReachable {
		if err := checkMigrationsComplete(ctx); err != nil {
			fmt.Printf("❌ Migrations complete: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Migrations complete: OK\n")
		}
	} else {
		fmt.Printf("⊘ Migrations complete: SKIPPED (database not reachable)\n")
	}

	// Check 4: Backups present (warning only, SQLite only)
	if err := checkBackupsPresent(ctx); err != nil {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Backups present: OK\n")
	}

	// Check 5: Catalogue validation
	if dbReachable {
		if err := checkValidation(ctx); err != nil {
			fmt.Printf("❌ Data validation: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Data validation: OK\n")
		}
	} else {
		fmt.Printf("⊘ Data validation: SKIPPED (database not reachable)\n")
	}

	// Check 6: Clock/timezone sanity
	if err := checkClockTimezone(ctx); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	// Check 7: Date formats
	if dbReachable {
		if err := checkDayFormats(ctx); err != nil {
			fmt.Printf("❌ Date formats: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Date formats: OK\n")
		}
	} else {
		fmt.Printf("⊘ Date formats: SKIPPED (database not reachable)\n")
	}

	// Check 8: Timestamp integrity
	if dbReachable {
		if err := checkTimestampIntegrity(ctx); err != nil {
			fmt.Printf("❌ Timestamp integrity: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Timestamp integrity: OK\n")
		}
	} else {
		fmt.Printf("⊘ Timestamp integrity: SKIPPED (database not reachable)\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkDBReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}

	if accessor, ok := ctx.Store.(dbAccessor); ok {
		db := accessor.GetDB()
		if db == nil {
			return fmt.Errorf("database connection is nil")
		}
		var result int
		if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}

	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	store, ok := ctx.Store.(migratable)
	if !ok {
		return nil
	}

	runner, err := store.MigrationRunner()
	if err != nil {
		return fmt.Errorf("failed to create migration runner: %w", err)
	}

	currentVersion, err := runner.GetCurrentVersion()
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}

	latestVersion, err := runner.GetLatestVersion()
	if err != nil {
		return fmt.Errorf("failed to get latest schema version: %w", err)
	}

	if currentVersion > latestVersion {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d)", currentVersion, latestVersion)
	}

	return nil
}

func checkMigrationsComplete(ctx *cli.Context) error {
	store, ok := ctx.Store.(migratable)
	if !ok {
		return nil
	}

	runner, err := store.MigrationRunner()
	if err != nil {
		return fmt.Errorf("failed to create migration runner: %w", err)
	}

	currentVersion, err := runner.GetCurrentVersion()
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}

	latestVersion, err := runner.GetLatestVersion()
	if err != nil {
		return fmt.Errorf("failed to get latest schema version: %w", err)
	}

	if currentVersion < latestVersion {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d", currentVersion, latestVersion)
	}

	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	if storage.IsPostgresConnString(ctx.Store.GetConfigPath()) {
		// File snapshots only apply to the SQLite backend
		return nil
	}

	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'omnisite backup create'")
	}

	return nil
}

func checkValidation(ctx *cli.Context) error {
	if _, err := ctx.Store.GetSettings(); err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	sites, err := ctx.Store.GetAllSites(true, false)
	if err != nil {
		return fmt.Errorf("failed to get sites: %w", err)
	}
	placements, err := ctx.Store.GetAllPlacements()
	if err != nil {
		return fmt.Errorf("failed to get placements: %w", err)
	}

	v := validation.New()
	if result := v.ValidateSites(sites); result.HasConflicts() {
		return fmt.Errorf("site catalogue conflicts:\n%s", result.FormatReport())
	}
	if result := v.ValidatePlacements(placements, sites, ctx.Today()); result.HasConflicts() {
		return fmt.Errorf("placement conflicts:\n%s", result.FormatReport())
	}

	return nil
}

func checkClockTimezone(ctx *cli.Context) error {
	now := time.Now()

	// Check if time is in a reasonable range (after 2020 and before 2100)
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}

	settings, err := ctx.Store.GetSettings()
	if err == nil && settings.Timezone != "" && settings.Timezone != "Local" {
		if _, err := time.LoadLocation(settings.Timezone); err != nil {
			return fmt.Errorf("configured timezone %q is invalid: %w", settings.Timezone, err)
		}
	}

	return nil
}

func checkDayFormats(ctx *cli.Context) error {
	accessor, ok := ctx.Store.(dbAccessor)
	if !ok {
		return nil
	}
	if storage.IsPostgresConnString(ctx.Store.GetConfigPath()) {
		// GLOB is SQLite-specific
		return nil
	}

	db := accessor.GetDB()
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	for _, table := range []string{"placements", "doses", "symptom_entries", "ratings", "notes"} {
		var invalidCount int
		query := fmt.Sprintf(`
			SELECT COUNT(*)
			FROM %s
			WHERE day NOT GLOB '[0-9][0-9][0-9][0-9]-[0-9][0-9]-[0-9][0-9]'`, table)
		if err := db.QueryRow(query).Scan(&invalidCount); err != nil {
			return fmt.Errorf("failed to check %s dates: %w", table, err)
		}
		if invalidCount > 0 {
			return fmt.Errorf("found %d rows in %s with invalid date format", invalidCount, table)
		}
	}

	return nil
}

func checkTimestampIntegrity(ctx *cli.Context) error {
	accessor, ok := ctx.Store.(dbAccessor)
	if !ok {
		return nil
	}

	db := accessor.GetDB()
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	for _, table := range []string{"sites", "placements", "doses", "symptom_entries", "ratings", "notes", "goals"} {
		var corruptedCount int
		query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE created_at = ''`, table)
		if err := db.QueryRow(query).Scan(&corruptedCount); err != nil {
			return fmt.Errorf("failed to check %s timestamps: %w", table, err)
		}
		if corruptedCount > 0 {
			return fmt.Errorf("found %d rows in %s with corrupted timestamps", corruptedCount, table)
		}
	}

	return nil
}
