package utils

import (
	"fmt"
	"time"

	"omnisite/internal/constants"
	"omnisite/internal/models"
)

// GetTodayInTimezone returns today's date string (YYYY-MM-DD) in the specified timezone.
// This ensures that "today" is determined by the user's configured timezone, not the system timezone.
func GetTodayInTimezone(timezone string) (string, error) {
	now, err := NowInTimezone(timezone)
	if err != nil {
		return "", err
	}
	return now.Format(constants.DateFormat), nil
}

// GetTodayFromSettings returns today's date string (YYYY-MM-DD) using the timezone from settings.
func GetTodayFromSettings(settings models.Settings) (string, error) {
	return GetTodayInTimezone(settings.Timezone)
}

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// NowInTimezone returns the current time in the specified timezone.
func NowInTimezone(timezone string) (time.Time, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return time.Now().In(loc), nil
}

// ParseDay parses a date string in the standard format (YYYY-MM-DD).
func ParseDay(day string) (time.Time, error) {
	return time.Parse(constants.DateFormat, day)
}

// ParseDayInLocation parses a date string (YYYY-MM-DD) at midnight in the specified timezone.
func ParseDayInLocation(day string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, day)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
}

// DaysBetween returns the number of whole calendar days from a to b.
// Both times are truncated to midnight in b's location before subtracting,
// so a placement this morning counts as 0 days ago all day.
func DaysBetween(a, b time.Time) int {
	loc := b.Location()
	aMid := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, loc)
	bMid := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, loc)
	return int(bMid.Sub(aMid).Hours() / 24)
}

// AddDays returns the date string count days after day. Count may be negative.
func AddDays(day string, count int) (string, error) {
	t, err := ParseDay(day)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, count).Format(constants.DateFormat), nil
}

// ValidateDayFormat checks if the string matches the standard date format.
func ValidateDayFormat(day string) bool {
	_, err := ParseDay(day)
	return err == nil
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	if timezone == "" || timezone == "Local" {
		return true
	}
	_, err := time.LoadLocation(timezone)
	return err == nil
}
