package backup

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"omnisite/internal/constants"
)

func setupTestDB(t *testing.T) string {
	t.Helper()

	tempDir := t.TempDir()
	dbPath := filepath.Join(tempDir, "omnisite.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS sites (
		id TEXT PRIMARY KEY,
		label TEXT NOT NULL,
		body_region TEXT NOT NULL
	)`)
	if err != nil {
		t.Fatalf("failed to create test table: %v", err)
	}

	seeds := [][]string{
		{"s1", "Left Abdomen", "abdomen"},
		{"s2", "Right Thigh", "thigh"},
	}
	for _, s := range seeds {
		if _, err := db.Exec("INSERT INTO sites (id, label, body_region) VALUES (?, ?, ?)", s[0], s[1], s[2]); err != nil {
			t.Fatalf("failed to insert test data: %v", err)
		}
	}

	db.Close()
	return dbPath
}

func countSites(t *testing.T, dbPath string) int {
	t.Helper()

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM sites").Scan(&count); err != nil {
		t.Fatalf("failed to query database: %v", err)
	}
	return count
}

func TestCreateBackup(t *testing.T) {
	dbPath := setupTestDB(t)

	mgr := NewManager(dbPath)
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		t.Errorf("backup file was not created: %s", backupPath)
	}

	if got := countSites(t, backupPath); got != 2 {
		t.Errorf("expected 2 rows in backup, got %d", got)
	}
}

func TestBackupRotation(t *testing.T) {
	dbPath := setupTestDB(t)

	mgr := NewManager(dbPath)

	numBackups := constants.MaxBackups + 5
	for i := 0; i < numBackups; i++ {
		if _, err := mgr.CreateBackup(); err != nil {
			t.Fatalf("CreateBackup #%d failed: %v", i, err)
		}
		// Brief sleep so timestamps differ
		time.Sleep(10 * time.Millisecond)
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}

	if len(backups) != constants.MaxBackups {
		t.Errorf("expected %d backups after rotation, got %d", constants.MaxBackups, len(backups))
	}

	for i := 1; i < len(backups); i++ {
		if backups[i].Timestamp.After(backups[i-1].Timestamp) {
			t.Errorf("backups are not sorted newest first at index %d", i)
		}
	}
}

func TestListBackupsEmpty(t *testing.T) {
	dbPath := setupTestDB(t)

	mgr := NewManager(dbPath)

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("expected 0 backups initially, got %d", len(backups))
	}
}

func TestListBackups(t *testing.T) {
	dbPath := setupTestDB(t)

	mgr := NewManager(dbPath)

	numBackups := 3
	for i := 0; i < numBackups; i++ {
		if _, err := mgr.CreateBackup(); err != nil {
			t.Fatalf("CreateBackup #%d failed: %v", i, err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}

	if len(backups) != numBackups {
		t.Errorf("expected %d backups, got %d", numBackups, len(backups))
	}

	for _, b := range backups {
		if b.Path == "" {
			t.Error("backup path is empty")
		}
		if b.Size == 0 {
			t.Error("backup size is 0")
		}
		if b.Timestamp.IsZero() {
			t.Error("backup timestamp is zero")
		}
	}
}

func TestRestoreBackup(t *testing.T) {
	dbPath := setupTestDB(t)

	mgr := NewManager(dbPath)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	// Mutate the live database after taking the backup
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	if _, err := db.Exec("INSERT INTO sites (id, label, body_region) VALUES ('s3', 'Left Arm', 'arm')"); err != nil {
		t.Fatalf("failed to insert data: %v", err)
	}
	db.Close()

	if got := countSites(t, dbPath); got != 3 {
		t.Errorf("expected 3 rows before restore, got %d", got)
	}

	if err := mgr.RestoreBackup(backupPath); err != nil {
		t.Fatalf("RestoreBackup failed: %v", err)
	}

	if got := countSites(t, dbPath); got != 2 {
		t.Errorf("expected 2 rows after restore, got %d", got)
	}
}

func TestRestoreBackupCreatesPreRestoreBackup(t *testing.T) {
	dbPath := setupTestDB(t)

	mgr := NewManager(dbPath)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	initialCount := len(backups)

	if err := mgr.RestoreBackup(backupPath); err != nil {
		t.Fatalf("RestoreBackup failed: %v", err)
	}

	backups, err = mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}

	if len(backups) != initialCount+1 {
		t.Errorf("expected %d backups after restore, got %d", initialCount+1, len(backups))
	}
}

func TestVerifyBackup(t *testing.T) {
	dbPath := setupTestDB(t)

	mgr := NewManager(dbPath)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	if err := mgr.verifyBackup(backupPath); err != nil {
		t.Errorf("verifyBackup failed for valid backup: %v", err)
	}

	invalidPath := filepath.Join(mgr.GetBackupDir(), "invalid.db")
	if err := os.WriteFile(invalidPath, []byte("not a database"), 0600); err != nil {
		t.Fatalf("failed to create invalid file: %v", err)
	}

	if err := mgr.verifyBackup(invalidPath); err == nil {
		t.Error("verifyBackup should fail for invalid backup")
	}
}

func TestUniqueBackupFilenames(t *testing.T) {
	dbPath := setupTestDB(t)

	mgr := NewManager(dbPath)

	paths := make(map[string]bool)
	for i := 0; i < 5; i++ {
		backupPath, err := mgr.CreateBackup()
		if err != nil {
			t.Fatalf("CreateBackup #%d failed: %v", i, err)
		}

		filename := filepath.Base(backupPath)
		if paths[filename] {
			t.Errorf("duplicate backup filename: %s", filename)
		}
		paths[filename] = true
	}
}
