package postgres

import (
	"fmt"

	"omnisite/internal/models"
)

func (s *Store) GetSettings() (models.Settings, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return models.Settings{}, err
	}
	defer rows.Close()

	settings := models.Settings{}
	count := 0
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Settings{}, err
		}
		switch key {
		case "rest_period_days":
			if _, err := fmt.Sscanf(value, "%d", &settings.RestPeriodDays); err != nil {
				return models.Settings{}, fmt.Errorf("parsing rest_period_days: %w", err)
			}
		case "active_window_days":
			if _, err := fmt.Sscanf(value, "%d", &settings.ActiveWindowDays); err != nil {
				return models.Settings{}, fmt.Errorf("parsing active_window_days: %w", err)
			}
		case "healing_window_days":
			if _, err := fmt.Sscanf(value, "%d", &settings.HealingWindowDays); err != nil {
				return models.Settings{}, fmt.Errorf("parsing healing_window_days: %w", err)
			}
		case "default_log_days":
			if _, err := fmt.Sscanf(value, "%d", &settings.DefaultLogDays); err != nil {
				return models.Settings{}, fmt.Errorf("parsing default_log_days: %w", err)
			}
		case "cleanup_after_days":
			if _, err := fmt.Sscanf(value, "%d", &settings.CleanupAfterDays); err != nil {
				return models.Settings{}, fmt.Errorf("parsing cleanup_after_days: %w", err)
			}
		case "notifications_enabled":
			settings.NotificationsEnabled = value == "true"
		case "notify_rotation_due":
			settings.NotifyRotationDue = value == "true"
		case "timezone":
			settings.Timezone = value
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return models.Settings{}, err
	}

	if count == 0 {
		return models.Settings{}, fmt.Errorf("settings not found")
	}

	return settings, nil
}

func (s *Store) SaveSettings(settings models.Settings) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO settings (key, value) VALUES ($1, $2)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	pairs := []struct {
		key   string
		value string
	}{
		{"rest_period_days", fmt.Sprintf("%d", settings.RestPeriodDays)},
		{"active_window_days", fmt.Sprintf("%d", settings.ActiveWindowDays)},
		{"healing_window_days", fmt.Sprintf("%d", settings.HealingWindowDays)},
		{"default_log_days", fmt.Sprintf("%d", settings.DefaultLogDays)},
		{"cleanup_after_days", fmt.Sprintf("%d", settings.CleanupAfterDays)},
		{"notifications_enabled", fmt.Sprintf("%t", settings.NotificationsEnabled)},
		{"notify_rotation_due", fmt.Sprintf("%t", settings.NotifyRotationDue)},
		{"timezone", settings.Timezone},
	}

	for _, pair := range pairs {
		if _, err := stmt.Exec(pair.key, pair.value); err != nil {
			return err
		}
	}

	return tx.Commit()
}
