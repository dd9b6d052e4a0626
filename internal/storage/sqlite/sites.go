package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"omnisite/internal/models"
)

func (s *Store) AddSite(site models.Site) error {
	return s.UpdateSite(site)
}

func (s *Store) scanSite(row *sql.Row) (models.Site, error) {
	var site models.Site
	var createdAt string
	var archivedAt, deletedAt sql.NullString

	err := row.Scan(&site.ID, &site.Label, &site.BodyRegion, &site.Side, &createdAt, &archivedAt, &deletedAt)
	if err != nil {
		return models.Site{}, err
	}

	if site.CreatedAt, err = parseTimestamp(createdAt, "created_at"); err != nil {
		return models.Site{}, err
	}
	if site.ArchivedAt, err = parseNullTimestamp(archivedAt, "archived_at"); err != nil {
		return models.Site{}, err
	}
	if site.DeletedAt, err = parseNullTimestamp(deletedAt, "deleted_at"); err != nil {
		return models.Site{}, err
	}

	return site, nil
}

func (s *Store) GetSite(id string) (models.Site, error) {
	row := s.db.QueryRow(`
		SELECT id, label, body_region, side, created_at, archived_at, deleted_at
		FROM sites WHERE id = ? AND deleted_at IS NULL`, id)
	return s.scanSite(row)
}

func (s *Store) GetSiteByLabel(label string) (models.Site, error) {
	row := s.db.QueryRow(`
		SELECT id, label, body_region, side, created_at, archived_at, deleted_at
		FROM sites WHERE label = ? AND deleted_at IS NULL`, label)
	return s.scanSite(row)
}

func (s *Store) GetAllSites(includeArchived, includeDeleted bool) ([]models.Site, error) {
	query := "SELECT id, label, body_region, side, created_at, archived_at, deleted_at FROM sites WHERE 1=1"
	if !includeDeleted {
		query += " AND deleted_at IS NULL"
	}
	if !includeArchived {
		query += " AND archived_at IS NULL"
	}
	query += " ORDER BY created_at"

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sites []models.Site
	for rows.Next() {
		var site models.Site
		var createdAt string
		var archivedAt, deletedAt sql.NullString

		if err := rows.Scan(&site.ID, &site.Label, &site.BodyRegion, &site.Side, &createdAt, &archivedAt, &deletedAt); err != nil {
			return nil, err
		}

		if site.CreatedAt, err = parseTimestamp(createdAt, "created_at"); err != nil {
			return nil, fmt.Errorf("site %s: %w", site.ID, err)
		}
		if site.ArchivedAt, err = parseNullTimestamp(archivedAt, "archived_at"); err != nil {
			return nil, fmt.Errorf("site %s: %w", site.ID, err)
		}
		if site.DeletedAt, err = parseNullTimestamp(deletedAt, "deleted_at"); err != nil {
			return nil, fmt.Errorf("site %s: %w", site.ID, err)
		}

		sites = append(sites, site)
	}

	return sites, rows.Err()
}

func (s *Store) UpdateSite(site models.Site) error {
	_, err := s.db.Exec(`
		INSERT INTO sites (id, label, body_region, side, created_at, archived_at, deleted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			label = excluded.label,
			body_region = excluded.body_region,
			side = excluded.side,
			archived_at = excluded.archived_at,
			deleted_at = excluded.deleted_at`,
		site.ID, site.Label, string(site.BodyRegion), string(site.Side),
		site.CreatedAt.Format(time.RFC3339), nullString(site.ArchivedAt), nullString(site.DeletedAt))

	return err
}

func (s *Store) ArchiveSite(id string) error {
	result, err := s.db.Exec(`
		UPDATE sites SET archived_at = ? WHERE id = ? AND deleted_at IS NULL AND archived_at IS NULL`,
		time.Now().Format(time.RFC3339), id)
	if err != nil {
		return err
	}
	return requireRowsAffected(result, "site not found or already archived/deleted")
}

func (s *Store) UnarchiveSite(id string) error {
	result, err := s.db.Exec(`
		UPDATE sites SET archived_at = NULL WHERE id = ? AND deleted_at IS NULL AND archived_at IS NOT NULL`,
		id)
	if err != nil {
		return err
	}
	return requireRowsAffected(result, "site not found or not archived")
}

func (s *Store) DeleteSite(id string) error {
	result, err := s.db.Exec(`
		UPDATE sites SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL`,
		time.Now().Format(time.RFC3339), id)
	if err != nil {
		return err
	}
	return requireRowsAffected(result, "site not found or already deleted")
}

func (s *Store) RestoreSite(id string) error {
	result, err := s.db.Exec(`
		UPDATE sites SET deleted_at = NULL WHERE id = ? AND deleted_at IS NOT NULL`,
		id)
	if err != nil {
		return err
	}
	return requireRowsAffected(result, "site not found or not deleted")
}

// requireRowsAffected converts a zero-row update into a caller-facing error
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
