package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"omnisite/internal/models"
)

func (s *Store) AddDose(d models.Dose) error {
	_, err := s.db.Exec(`
		INSERT INTO doses (id, medication, amount, unit, day, note, created_at, deleted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		d.ID, d.Medication, d.Amount, d.Unit, d.Day, d.Note,
		d.CreatedAt.Format(time.RFC3339), nullString(d.DeletedAt))
	return err
}

func (s *Store) GetDoses(startDay, endDay string) ([]models.Dose, error) {
	rows, err := s.db.Query(`
		SELECT id, medication, amount, unit, day, note, created_at, deleted_at
		FROM doses
		WHERE day >= ? AND day <= ? AND deleted_at IS NULL
		ORDER BY day DESC, created_at DESC`, startDay, endDay)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var doses []models.Dose
	for rows.Next() {
		var d models.Dose
		var createdAt string
		var deletedAt sql.NullString

		if err := rows.Scan(&d.ID, &d.Medication, &d.Amount, &d.Unit, &d.Day, &d.Note, &createdAt, &deletedAt); err != nil {
			return nil, err
		}

		if d.CreatedAt, err = parseTimestamp(createdAt, "created_at"); err != nil {
			return nil, fmt.Errorf("dose %s: %w", d.ID, err)
		}
		if d.DeletedAt, err = parseNullTimestamp(deletedAt, "deleted_at"); err != nil {
			return nil, fmt.Errorf("dose %s: %w", d.ID, err)
		}

		doses = append(doses, d)
	}

	return doses, rows.Err()
}

func (s *Store) DeleteDose(id string) error {
	result, err := s.db.Exec(`
		UPDATE doses SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL`,
		time.Now().Format(time.RFC3339), id)
	if err != nil {
		return err
	}
	return requireRowsAffected(result, "dose not found or already deleted")
}

func (s *Store) RestoreDose(id string) error {
	result, err := s.db.Exec(`
		UPDATE doses SET deleted_at = NULL WHERE id = ? AND deleted_at IS NOT NULL`,
		id)
	if err != nil {
		return err
	}
	return requireRowsAffected(result, "dose not found or not deleted")
}
