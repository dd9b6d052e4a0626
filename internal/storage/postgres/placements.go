package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"omnisite/internal/models"
)

const placementColumns = "id, site, day, note, photo_ref, created_at, deleted_at"

func (s *Store) AddPlacement(p models.Placement) error {
	_, err := s.db.Exec(`
		INSERT INTO placements (id, site, day, note, photo_ref, created_at, deleted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ID, p.Site, p.Day, p.Note, p.PhotoRef,
		p.CreatedAt.Format(time.RFC3339), nullString(p.DeletedAt))
	return err
}

func (s *Store) GetPlacement(id string) (models.Placement, error) {
	row := s.db.QueryRow(`
		SELECT `+placementColumns+`
		FROM placements WHERE id = $1`, id)

	var p models.Placement
	var createdAt string
	var deletedAt sql.NullString

	err := row.Scan(&p.ID, &p.Site, &p.Day, &p.Note, &p.PhotoRef, &createdAt, &deletedAt)
	if err != nil {
		return models.Placement{}, err
	}

	if p.CreatedAt, err = parseTimestamp(createdAt, "created_at"); err != nil {
		return models.Placement{}, err
	}
	if p.DeletedAt, err = parseNullTimestamp(deletedAt, "deleted_at"); err != nil {
		return models.Placement{}, err
	}

	return p, nil
}

func (s *Store) GetPlacementsForDay(day string) ([]models.Placement, error) {
	return s.queryPlacements(`
		SELECT `+placementColumns+`
		FROM placements WHERE day = $1 AND deleted_at IS NULL
		ORDER BY created_at`, day)
}

func (s *Store) GetPlacements(startDay, endDay string, includeDeleted bool) ([]models.Placement, error) {
	query := "SELECT " + placementColumns + " FROM placements WHERE day >= $1 AND day <= $2"
	if !includeDeleted {
		query += " AND deleted_at IS NULL"
	}
	query += " ORDER BY day DESC, created_at DESC"
	return s.queryPlacements(query, startDay, endDay)
}

func (s *Store) GetAllPlacements() ([]models.Placement, error) {
	exists, err := s.tableExists("placements")
	if err != nil || !exists {
		return []models.Placement{}, nil
	}
	return s.queryPlacements(`
		SELECT ` + placementColumns + `
		FROM placements WHERE deleted_at IS NULL
		ORDER BY day`)
}

func (s *Store) queryPlacements(query string, args ...interface{}) ([]models.Placement, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var placements []models.Placement
	for rows.Next() {
		var p models.Placement
		var createdAt string
		var deletedAt sql.NullString

		if err := rows.Scan(&p.ID, &p.Site, &p.Day, &p.Note, &p.PhotoRef, &createdAt, &deletedAt); err != nil {
			return nil, err
		}

		if p.CreatedAt, err = parseTimestamp(createdAt, "created_at"); err != nil {
			return nil, fmt.Errorf("placement %s: %w", p.ID, err)
		}
		if p.DeletedAt, err = parseNullTimestamp(deletedAt, "deleted_at"); err != nil {
			return nil, fmt.Errorf("placement %s: %w", p.ID, err)
		}

		placements = append(placements, p)
	}

	return placements, rows.Err()
}

func (s *Store) DeletePlacement(id string) error {
	result, err := s.db.Exec(`
		UPDATE placements SET deleted_at = $1 WHERE id = $2 AND deleted_at IS NULL`,
		time.Now().Format(time.RFC3339), id)
	if err != nil {
		return err
	}
	return requireRowsAffected(result, "placement not found or already deleted")
}

func (s *Store) RestorePlacement(id string) error {
	result, err := s.db.Exec(`
		UPDATE placements SET deleted_at = NULL WHERE id = $1 AND deleted_at IS NOT NULL`,
		id)
	if err != nil {
		return err
	}
	return requireRowsAffected(result, "placement not found or not deleted")
}
