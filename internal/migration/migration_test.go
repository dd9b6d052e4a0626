package migration

import (
	"database/sql"
	"path/filepath"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func testFS(files map[string]string) fstest.MapFS {
	fs := fstest.MapFS{}
	for name, content := range files {
		fs[name] = &fstest.MapFile{Data: []byte(content)}
	}
	return fs
}

func TestGetCurrentVersionFreshDatabase(t *testing.T) {
	runner := NewRunner(openTestDB(t), testFS(nil), DialectSQLite)

	version, err := runner.GetCurrentVersion()
	if err != nil {
		t.Fatalf("GetCurrentVersion returned error: %v", err)
	}
	if version != 0 {
		t.Errorf("fresh database version = %d, want 0", version)
	}
}

func TestSetVersion(t *testing.T) {
	runner := NewRunner(openTestDB(t), testFS(nil), DialectSQLite)

	if err := runner.SetVersion(3); err != nil {
		t.Fatalf("SetVersion returned error: %v", err)
	}
	version, err := runner.GetCurrentVersion()
	if err != nil {
		t.Fatalf("GetCurrentVersion returned error: %v", err)
	}
	if version != 3 {
		t.Errorf("version = %d, want 3", version)
	}

	// Setting again replaces rather than accumulates
	if err := runner.SetVersion(5); err != nil {
		t.Fatalf("SetVersion returned error: %v", err)
	}
	version, err = runner.GetCurrentVersion()
	if err != nil {
		t.Fatalf("GetCurrentVersion returned error: %v", err)
	}
	if version != 5 {
		t.Errorf("version = %d, want 5", version)
	}
}

func TestReadMigrationFiles(t *testing.T) {
	t.Run("sorted by version", func(t *testing.T) {
		runner := NewRunner(openTestDB(t), testFS(map[string]string{
			"002_second.sql": "CREATE TABLE b (id INTEGER);",
			"001_first.sql":  "CREATE TABLE a (id INTEGER);",
			"010_tenth.sql":  "CREATE TABLE c (id INTEGER);",
		}), DialectSQLite)

		migrations, err := runner.ReadMigrationFiles()
		if err != nil {
			t.Fatalf("ReadMigrationFiles returned error: %v", err)
		}
		if len(migrations) != 3 {
			t.Fatalf("got %d migrations, want 3", len(migrations))
		}
		wantVersions := []int{1, 2, 10}
		wantNames := []string{"first", "second", "tenth"}
		for i, m := range migrations {
			if m.Version != wantVersions[i] {
				t.Errorf("migration[%d].Version = %d, want %d", i, m.Version, wantVersions[i])
			}
			if m.Name != wantNames[i] {
				t.Errorf("migration[%d].Name = %q, want %q", i, m.Name, wantNames[i])
			}
		}
	})

	t.Run("non-sql files ignored", func(t *testing.T) {
		runner := NewRunner(openTestDB(t), testFS(map[string]string{
			"001_first.sql": "CREATE TABLE a (id INTEGER);",
			"README.md":     "notes",
		}), DialectSQLite)

		migrations, err := runner.ReadMigrationFiles()
		if err != nil {
			t.Fatalf("ReadMigrationFiles returned error: %v", err)
		}
		if len(migrations) != 1 {
			t.Errorf("got %d migrations, want 1", len(migrations))
		}
	})

	t.Run("invalid filename rejected", func(t *testing.T) {
		runner := NewRunner(openTestDB(t), testFS(map[string]string{
			"badname.sql": "CREATE TABLE a (id INTEGER);",
		}), DialectSQLite)

		if _, err := runner.ReadMigrationFiles(); err == nil {
			t.Error("expected error for filename without version prefix")
		}
	})

	t.Run("duplicate version rejected", func(t *testing.T) {
		runner := NewRunner(openTestDB(t), testFS(map[string]string{
			"001_first.sql":  "CREATE TABLE a (id INTEGER);",
			"001_second.sql": "CREATE TABLE b (id INTEGER);",
		}), DialectSQLite)

		if _, err := runner.ReadMigrationFiles(); err == nil {
			t.Error("expected error for duplicate version")
		}
	})
}

func TestApplyMigrations(t *testing.T) {
	db := openTestDB(t)
	runner := NewRunner(db, testFS(map[string]string{
		"001_create.sql": "CREATE TABLE items (id INTEGER PRIMARY KEY, name TEXT);",
		"002_index.sql":  "CREATE INDEX idx_items_name ON items(name);",
	}), DialectSQLite)

	applied, err := runner.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("ApplyMigrations returned error: %v", err)
	}
	if applied != 2 {
		t.Errorf("applied %d migrations, want 2", applied)
	}

	version, err := runner.GetCurrentVersion()
	if err != nil {
		t.Fatalf("GetCurrentVersion returned error: %v", err)
	}
	if version != 2 {
		t.Errorf("version after apply = %d, want 2", version)
	}

	// Applied schema is usable
	if _, err := db.Exec("INSERT INTO items (name) VALUES ('x')"); err != nil {
		t.Errorf("migrated table not usable: %v", err)
	}

	// Re-running applies nothing
	applied, err = runner.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("second ApplyMigrations returned error: %v", err)
	}
	if applied != 0 {
		t.Errorf("second run applied %d migrations, want 0", applied)
	}
}

func TestApplyMigrationsRollbackOnFailure(t *testing.T) {
	db := openTestDB(t)
	runner := NewRunner(db, testFS(map[string]string{
		"001_good.sql": "CREATE TABLE items (id INTEGER PRIMARY KEY);",
		"002_bad.sql":  "THIS IS NOT SQL;",
	}), DialectSQLite)

	applied, err := runner.ApplyMigrations(nil)
	if err == nil {
		t.Fatal("expected error from broken migration")
	}
	if applied != 1 {
		t.Errorf("applied %d migrations before failure, want 1", applied)
	}

	// Version stays at the last successful migration
	version, err := runner.GetCurrentVersion()
	if err != nil {
		t.Fatalf("GetCurrentVersion returned error: %v", err)
	}
	if version != 1 {
		t.Errorf("version after failure = %d, want 1", version)
	}
}

func TestApplyMigrationsNewerDatabase(t *testing.T) {
	runner := NewRunner(openTestDB(t), testFS(map[string]string{
		"001_create.sql": "CREATE TABLE items (id INTEGER PRIMARY KEY);",
	}), DialectSQLite)

	if err := runner.SetVersion(99); err != nil {
		t.Fatalf("SetVersion returned error: %v", err)
	}
	if _, err := runner.ApplyMigrations(nil); err == nil {
		t.Error("expected error when database version is newer than migrations")
	}
}

func TestValidateVersion(t *testing.T) {
	runner := NewRunner(openTestDB(t), testFS(map[string]string{
		"001_create.sql": "CREATE TABLE items (id INTEGER PRIMARY KEY);",
	}), DialectSQLite)

	// Behind latest
	if err := runner.ValidateVersion(); err == nil {
		t.Error("expected error when schema is behind latest")
	}

	if _, err := runner.ApplyMigrations(nil); err != nil {
		t.Fatalf("ApplyMigrations returned error: %v", err)
	}
	if err := runner.ValidateVersion(); err != nil {
		t.Errorf("ValidateVersion returned error for up-to-date schema: %v", err)
	}
}
