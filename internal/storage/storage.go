package storage

import (
	"net/url"
	"strings"

	"omnisite/internal/models"
	"omnisite/internal/storage/postgres"
	"omnisite/internal/storage/sqlite"
)

// Provider is the persistence contract every backend implements.
//
// Concurrency note: providers are not safe for concurrent use by multiple
// goroutines without external synchronization, and running multiple omnisite
// processes against the same SQLite file is not supported.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Sites
	AddSite(models.Site) error
	GetSite(id string) (models.Site, error)
	GetSiteByLabel(label string) (models.Site, error)
	GetAllSites(includeArchived, includeDeleted bool) ([]models.Site, error)
	UpdateSite(models.Site) error
	ArchiveSite(id string) error
	UnarchiveSite(id string) error
	DeleteSite(id string) error
	RestoreSite(id string) error

	// Placements
	AddPlacement(models.Placement) error
	GetPlacement(id string) (models.Placement, error)
	GetPlacementsForDay(day string) ([]models.Placement, error)
	GetPlacements(startDay, endDay string, includeDeleted bool) ([]models.Placement, error)
	GetAllPlacements() ([]models.Placement, error)
	DeletePlacement(id string) error
	RestorePlacement(id string) error

	// Doses
	AddDose(models.Dose) error
	GetDoses(startDay, endDay string) ([]models.Dose, error)
	DeleteDose(id string) error
	RestoreDose(id string) error

	// Symptom entries
	AddSymptomEntry(models.SymptomEntry) error
	GetSymptomEntries(startDay, endDay string) ([]models.SymptomEntry, error)
	DeleteSymptomEntry(id string) error

	// Ratings
	AddRating(models.Rating) error
	GetRatings(startDay, endDay string) ([]models.Rating, error)
	GetRatingsForSite(site string) ([]models.Rating, error)
	DeleteRating(id string) error

	// Notes
	AddNote(models.Note) error
	GetNotes(startDay, endDay string) ([]models.Note, error)
	DeleteNote(id string) error

	// Goals
	AddGoal(models.Goal) error
	GetAllGoals(includeDeleted bool) ([]models.Goal, error)
	UpdateGoal(models.Goal) error
	DeleteGoal(id string) error

	// Maintenance
	PurgeDeleted(olderThanDays int) (int, error)

	// Utils
	GetConfigPath() string
}

// NewSQLiteStore creates a SQLite-backed provider at the given file path.
func NewSQLiteStore(path string) Provider {
	return sqlite.NewStore(path)
}

// NewPostgresStore creates a PostgreSQL-backed provider for the given
// connection string.
func NewPostgresStore(connStr string) Provider {
	return postgres.NewStore(connStr)
}

// IsPostgresConnString reports whether the config value looks like a
// PostgreSQL connection string rather than a file path.
func IsPostgresConnString(config string) bool {
	return strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://")
}

// HasEmbeddedCredentials reports whether a PostgreSQL connection string
// carries a password inline. Those are rejected so credentials stay in the
// OS keyring, environment, or .pgpass.
func HasEmbeddedCredentials(connStr string) bool {
	parsed, err := url.Parse(connStr)
	if err != nil {
		// Unparseable strings are treated as credentialed so they get rejected
		return true
	}
	if parsed.User == nil {
		return false
	}
	_, hasPassword := parsed.User.Password()
	return hasPassword
}
