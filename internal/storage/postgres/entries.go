package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"omnisite/internal/models"
)

// Doses

func (s *Store) AddDose(d models.Dose) error {
	_, err := s.db.Exec(`
		INSERT INTO doses (id, medication, amount, unit, day, note, created_at, deleted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		d.ID, d.Medication, d.Amount, d.Unit, d.Day, d.Note,
		d.CreatedAt.Format(time.RFC3339), nullString(d.DeletedAt))
	return err
}

func (s *Store) GetDoses(startDay, endDay string) ([]models.Dose, error) {
	rows, err := s.db.Query(`
		SELECT id, medication, amount, unit, day, note, created_at, deleted_at
		FROM doses
		WHERE day >= $1 AND day <= $2 AND deleted_at IS NULL
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
		UPDATE doses SET deleted_at = $1 WHERE id = $2 AND deleted_at IS NULL`,
		time.Now().Format(time.RFC3339), id)
	if err != nil {
		return err
	}
	return requireRowsAffected(result, "dose not found or already deleted")
}

func (s *Store) RestoreDose(id string) error {
	result, err := s.db.Exec(`
		UPDATE doses SET deleted_at = NULL WHERE id = $1 AND deleted_at IS NOT NULL`,
		id)
	if err != nil {
		return err
	}
	return requireRowsAffected(result, "dose not found or not deleted")
}

// Symptom entries

func (s *Store) AddSymptomEntry(e models.SymptomEntry) error {
	_, err := s.db.Exec(`
		INSERT INTO symptom_entries (id, symptom, severity, site, day, note, created_at, deleted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		e.ID, e.Symptom, e.Severity, e.Site, e.Day, e.Note,
		e.CreatedAt.Format(time.RFC3339), nullString(e.DeletedAt))
	return err
}

func (s *Store) GetSymptomEntries(startDay, endDay string) ([]models.SymptomEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, symptom, severity, site, day, note, created_at, deleted_at
		FROM symptom_entries
		WHERE day >= $1 AND day <= $2 AND deleted_at IS NULL
		ORDER BY day DESC, created_at DESC`, startDay, endDay)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.SymptomEntry
	for rows.Next() {
		var e models.SymptomEntry
		var createdAt string
		var deletedAt sql.NullString

		if err := rows.Scan(&e.ID, &e.Symptom, &e.Severity, &e.Site, &e.Day, &e.Note, &createdAt, &deletedAt); err != nil {
			return nil, err
		}

		if e.CreatedAt, err = parseTimestamp(createdAt, "created_at"); err != nil {
			return nil, fmt.Errorf("symptom entry %s: %w", e.ID, err)
		}
		if e.DeletedAt, err = parseNullTimestamp(deletedAt, "deleted_at"); err != nil {
			return nil, fmt.Errorf("symptom entry %s: %w", e.ID, err)
		}

		entries = append(entries, e)
	}

	return entries, rows.Err()
}

func (s *Store) DeleteSymptomEntry(id string) error {
	result, err := s.db.Exec(`
		UPDATE symptom_entries SET deleted_at = $1 WHERE id = $2 AND deleted_at IS NULL`,
		time.Now().Format(time.RFC3339), id)
	if err != nil {
		return err
	}
	return requireRowsAffected(result, "symptom entry not found or already deleted")
}

// Ratings

func (s *Store) AddRating(r models.Rating) error {
	_, err := s.db.Exec(`
		INSERT INTO ratings (id, site, score, day, note, created_at, deleted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		r.ID, r.Site, r.Score, r.Day, r.Note,
		r.CreatedAt.Format(time.RFC3339), nullString(r.DeletedAt))
	return err
}

func (s *Store) GetRatings(startDay, endDay string) ([]models.Rating, error) {
	return s.queryRatings(`
		SELECT id, site, score, day, note, created_at, deleted_at
		FROM ratings
		WHERE day >= $1 AND day <= $2 AND deleted_at IS NULL
		ORDER BY day DESC, created_at DESC`, startDay, endDay)
}

func (s *Store) GetRatingsForSite(site string) ([]models.Rating, error) {
	return s.queryRatings(`
		SELECT id, site, score, day, note, created_at, deleted_at
		FROM ratings
		WHERE site = $1 AND deleted_at IS NULL
		ORDER BY day DESC`, site)
}

func (s *Store) queryRatings(query string, args ...interface{}) ([]models.Rating, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ratings []models.Rating
	for rows.Next() {
		var r models.Rating
		var createdAt string
		var deletedAt sql.NullString

		if err := rows.Scan(&r.ID, &r.Site, &r.Score, &r.Day, &r.Note, &createdAt, &deletedAt); err != nil {
			return nil, err
		}

		if r.CreatedAt, err = parseTimestamp(createdAt, "created_at"); err != nil {
			return nil, fmt.Errorf("rating %s: %w", r.ID, err)
		}
		if r.DeletedAt, err = parseNullTimestamp(deletedAt, "deleted_at"); err != nil {
			return nil, fmt.Errorf("rating %s: %w", r.ID, err)
		}

		ratings = append(ratings, r)
	}

	return ratings, rows.Err()
}

func (s *Store) DeleteRating(id string) error {
	result, err := s.db.Exec(`
		UPDATE ratings SET deleted_at = $1 WHERE id = $2 AND deleted_at IS NULL`,
		time.Now().Format(time.RFC3339), id)
	if err != nil {
		return err
	}
	return requireRowsAffected(result, "rating not found or already deleted")
}

// Notes

func (s *Store) AddNote(n models.Note) error {
	_, err := s.db.Exec(`
		INSERT INTO notes (id, site, day, body, created_at, deleted_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		n.ID, n.Site, n.Day, n.Body,
		n.CreatedAt.Format(time.RFC3339), nullString(n.DeletedAt))
	return err
}

func (s *Store) GetNotes(startDay, endDay string) ([]models.Note, error) {
	rows, err := s.db.Query(`
		SELECT id, site, day, body, created_at, deleted_at
		FROM notes
		WHERE day >= $1 AND day <= $2 AND deleted_at IS NULL
		ORDER BY day DESC, created_at DESC`, startDay, endDay)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []models.Note
	for rows.Next() {
		var n models.Note
		var createdAt string
		var deletedAt sql.NullString

		if err := rows.Scan(&n.ID, &n.Site, &n.Day, &n.Body, &createdAt, &deletedAt); err != nil {
			return nil, err
		}

		if n.CreatedAt, err = parseTimestamp(createdAt, "created_at"); err != nil {
			return nil, fmt.Errorf("note %s: %w", n.ID, err)
		}
		if n.DeletedAt, err = parseNullTimestamp(deletedAt, "deleted_at"); err != nil {
			return nil, fmt.Errorf("note %s: %w", n.ID, err)
		}

		notes = append(notes, n)
	}

	return notes, rows.Err()
}

func (s *Store) DeleteNote(id string) error {
	result, err := s.db.Exec(`
		UPDATE notes SET deleted_at = $1 WHERE id = $2 AND deleted_at IS NULL`,
		time.Now().Format(time.RFC3339), id)
	if err != nil {
		return err
	}
	return requireRowsAffected(result, "note not found or already deleted")
}

// Goals

func (s *Store) AddGoal(g models.Goal) error {
	return s.UpdateGoal(g)
}

func (s *Store) GetAllGoals(includeDeleted bool) ([]models.Goal, error) {
	query := "SELECT id, kind, target, created_at, achieved_at, deleted_at FROM goals"
	if !includeDeleted {
		query += " WHERE deleted_at IS NULL"
	}
	query += " ORDER BY created_at"

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var goals []models.Goal
	for rows.Next() {
		var g models.Goal
		var createdAt string
		var achievedAt, deletedAt sql.NullString

		if err := rows.Scan(&g.ID, &g.Kind, &g.Target, &createdAt, &achievedAt, &deletedAt); err != nil {
			return nil, err
		}

		if g.CreatedAt, err = parseTimestamp(createdAt, "created_at"); err != nil {
			return nil, fmt.Errorf("goal %s: %w", g.ID, err)
		}
		if g.AchievedAt, err = parseNullTimestamp(achievedAt, "achieved_at"); err != nil {
			return nil, fmt.Errorf("goal %s: %w", g.ID, err)
		}
		if g.DeletedAt, err = parseNullTimestamp(deletedAt, "deleted_at"); err != nil {
			return nil, fmt.Errorf("goal %s: %w", g.ID, err)
		}

		goals = append(goals, g)
	}

	return goals, rows.Err()
}

func (s *Store) UpdateGoal(g models.Goal) error {
	_, err := s.db.Exec(`
		INSERT INTO goals (id, kind, target, created_at, achieved_at, deleted_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT(id) DO UPDATE SET
			kind = excluded.kind,
			target = excluded.target,
			achieved_at = excluded.achieved_at,
			deleted_at = excluded.deleted_at`,
		g.ID, string(g.Kind), g.Target,
		g.CreatedAt.Format(time.RFC3339), nullString(g.AchievedAt), nullString(g.DeletedAt))
	return err
}

func (s *Store) DeleteGoal(id string) error {
	result, err := s.db.Exec(`
		UPDATE goals SET deleted_at = $1 WHERE id = $2 AND deleted_at IS NULL`,
		time.Now().Format(time.RFC3339), id)
	if err != nil {
		return err
	}
	return requireRowsAffected(result, "goal not found or already deleted")
}
