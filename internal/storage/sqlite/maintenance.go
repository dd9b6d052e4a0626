package sqlite

import (
	"fmt"
	"time"
)

// purgeTables lists every table carrying a deleted_at column
var purgeTables = []string{
	"placements",
	"sites",
	"doses",
	"symptom_entries",
	"ratings",
	"notes",
	"goals",
}

// PurgeDeleted permanently removes soft-deleted rows whose deletion is older
// than olderThanDays. Returns the total number of rows removed.
func (s *Store) PurgeDeleted(olderThanDays int) (int, error) {
	if olderThanDays < 0 {
		return 0, fmt.Errorf("olderThanDays must not be negative")
	}

	cutoff := time.Now().AddDate(0, 0, -olderThanDays).Format(time.RFC3339)

	total := 0
	for _, table := range purgeTables {
		result, err := s.db.Exec(
			"DELETE FROM "+table+" WHERE deleted_at IS NOT NULL AND deleted_at < ?", cutoff)
		if err != nil {
			return total, fmt.Errorf("failed to purge %s: %w", table, err)
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return total, err
		}
		total += int(rows)
	}

	return total, nil
}
