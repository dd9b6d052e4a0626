package postgres

import (
	"database/sql"
	"fmt"
	"io/fs"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"omnisite/internal/constants"
	"omnisite/internal/migration"
	"omnisite/internal/models"
	"omnisite/migrations"
)

type Store struct {
	connStr string
	db      *sql.DB
}

func NewStore(connStr string) *Store {
	return &Store{
		connStr: connStr,
	}
}

func (s *Store) Init() error {
	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.db.Ping(); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := s.runMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	settings, err := s.GetSettings()
	if err != nil || settings.RestPeriodDays == 0 {
		defaults := models.Settings{
			RestPeriodDays:       constants.DefaultRestPeriodDays,
			ActiveWindowDays:     constants.DefaultActiveWindowDays,
			HealingWindowDays:    constants.DefaultHealingWindowDays,
			DefaultLogDays:       constants.DefaultLogDays,
			CleanupAfterDays:     constants.DefaultCleanupAfterDays,
			NotificationsEnabled: false,
			NotifyRotationDue:    false,
			Timezone:             "Local",
		}
		if err := s.SaveSettings(defaults); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}

	if err := s.seedDefaultSites(); err != nil {
		return fmt.Errorf("failed to seed site catalogue: %w", err)
	}

	return nil
}

func (s *Store) Load() error {
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.db.Ping(); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	return s.validateSchemaVersion()
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// GetConfigPath returns the connection string; backups and the doctor
// command use it to tell SQLite paths from server connections.
func (s *Store) GetConfigPath() string {
	return s.connStr
}

// GetDB exposes the underlying handle for diagnostics and tests
func (s *Store) GetDB() *sql.DB {
	return s.db
}

func (s *Store) tableExists(tableName string) (bool, error) {
	var count int
	row := s.db.QueryRow(
		"SELECT count(*) FROM information_schema.tables WHERE table_schema = 'public' AND table_name = $1", tableName)
	if err := row.Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) newRunner() (*migration.Runner, error) {
	subFS, err := fs.Sub(migrations.FS, "postgres")
	if err != nil {
		return nil, fmt.Errorf("failed to access postgres migrations: %w", err)
	}
	return migration.NewRunner(s.db, subFS, migration.DialectPostgres), nil
}

func (s *Store) runMigrations() error {
	runner, err := s.newRunner()
	if err != nil {
		return err
	}
	_, err = runner.ApplyMigrations(nil)
	return err
}

func (s *Store) validateSchemaVersion() error {
	runner, err := s.newRunner()
	if err != nil {
		return err
	}
	return runner.ValidateVersion()
}

// MigrationRunner returns a runner for the migrate and doctor commands.
func (s *Store) MigrationRunner() (*migration.Runner, error) {
	return s.newRunner()
}

var defaultSites = []struct {
	Label  string
	Region constants.BodyRegion
	Side   constants.Side
}{
	{"left abdomen", constants.RegionAbdomen, constants.SideLeft},
	{"right abdomen", constants.RegionAbdomen, constants.SideRight},
	{"left arm", constants.RegionArm, constants.SideLeft},
	{"right arm", constants.RegionArm, constants.SideRight},
	{"left thigh", constants.RegionLeg, constants.SideLeft},
	{"right thigh", constants.RegionLeg, constants.SideRight},
	{"left buttock", constants.RegionButtock, constants.SideLeft},
	{"right buttock", constants.RegionButtock, constants.SideRight},
}

func (s *Store) seedDefaultSites() error {
	var count int
	if err := s.db.QueryRow("SELECT count(*) FROM sites").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, seed := range defaultSites {
		site := models.Site{
			ID:         uuid.New().String(),
			Label:      seed.Label,
			BodyRegion: seed.Region,
			Side:       seed.Side,
			CreatedAt:  time.Now(),
		}
		if err := s.AddSite(site); err != nil {
			return err
		}
	}
	return nil
}

func nullString(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: t.Format(time.RFC3339), Valid: true}
}

func parseTimestamp(value, column string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", column, err)
	}
	return t, nil
}

func parseNullTimestamp(value sql.NullString, column string) (*time.Time, error) {
	if !value.Valid {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, value.String)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", column, err)
	}
	return &t, nil
}

func requireRowsAffected(result sql.Result, msg string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("%s", msg)
	}
	return nil
}
