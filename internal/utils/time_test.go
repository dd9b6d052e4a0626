package utils

import (
	"testing"
	"time"
)

func TestLoadLocation(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		wantErr  bool
	}{
		{
			name:     "empty string returns local",
			timezone: "",
			wantErr:  false,
		},
		{
			name:     "Local returns local",
			timezone: "Local",
			wantErr:  false,
		},
		{
			name:     "valid timezone UTC",
			timezone: "UTC",
			wantErr:  false,
		},
		{
			name:     "valid timezone America/New_York",
			timezone: "America/New_York",
			wantErr:  false,
		},
		{
			name:     "invalid timezone",
			timezone: "Invalid/Timezone",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := LoadLocation(tt.timezone)
			if (err != nil) != tt.wantErr {
				t.Errorf("LoadLocation(%q) error = %v, wantErr %v", tt.timezone, err, tt.wantErr)
			}
			if !tt.wantErr && loc == nil {
				t.Errorf("LoadLocation(%q) returned nil location", tt.timezone)
			}
		})
	}
}

func TestParseDay(t *testing.T) {
	tests := []struct {
		name    string
		day     string
		wantErr bool
	}{
		{name: "valid day", day: "2025-06-15", wantErr: false},
		{name: "leap day", day: "2024-02-29", wantErr: false},
		{name: "invalid leap day", day: "2025-02-29", wantErr: true},
		{name: "wrong format", day: "15/06/2025", wantErr: true},
		{name: "empty", day: "", wantErr: true},
		{name: "missing leading zero", day: "2025-6-15", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDay(tt.day)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseDay(%q) error = %v, wantErr %v", tt.day, err, tt.wantErr)
			}
		})
	}
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		name  string
		day   string
		count int
		want  string
	}{
		{name: "forward one day", day: "2025-06-15", count: 1, want: "2025-06-16"},
		{name: "backward one day", day: "2025-06-15", count: -1, want: "2025-06-14"},
		{name: "zero days", day: "2025-06-15", count: 0, want: "2025-06-15"},
		{name: "cross month boundary", day: "2025-01-31", count: 1, want: "2025-02-01"},
		{name: "cross year boundary", day: "2024-12-31", count: 1, want: "2025-01-01"},
		{name: "backward across leap day", day: "2024-03-01", count: -1, want: "2024-02-29"},
		{name: "two weeks back", day: "2025-06-15", count: -13, want: "2025-06-02"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AddDays(tt.day, tt.count)
			if err != nil {
				t.Fatalf("AddDays(%q, %d) returned error: %v", tt.day, tt.count, err)
			}
			if got != tt.want {
				t.Errorf("AddDays(%q, %d) = %q, want %q", tt.day, tt.count, got, tt.want)
			}
		})
	}

	t.Run("invalid day", func(t *testing.T) {
		if _, err := AddDays("not-a-day", 1); err == nil {
			t.Error("AddDays with invalid day should return error")
		}
	})
}

func TestDaysBetween(t *testing.T) {
	loc := time.UTC

	tests := []struct {
		name string
		a    time.Time
		b    time.Time
		want int
	}{
		{
			name: "same day different hours",
			a:    time.Date(2025, 6, 15, 8, 0, 0, 0, loc),
			b:    time.Date(2025, 6, 15, 22, 0, 0, 0, loc),
			want: 0,
		},
		{
			name: "consecutive days",
			a:    time.Date(2025, 6, 15, 23, 59, 0, 0, loc),
			b:    time.Date(2025, 6, 16, 0, 1, 0, 0, loc),
			want: 1,
		},
		{
			name: "one week",
			a:    time.Date(2025, 6, 8, 12, 0, 0, 0, loc),
			b:    time.Date(2025, 6, 15, 12, 0, 0, 0, loc),
			want: 7,
		},
		{
			name: "negative when reversed",
			a:    time.Date(2025, 6, 16, 0, 0, 0, 0, loc),
			b:    time.Date(2025, 6, 15, 0, 0, 0, 0, loc),
			want: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DaysBetween(tt.a, tt.b)
			if got != tt.want {
				t.Errorf("DaysBetween() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestValidateDayFormat(t *testing.T) {
	if !ValidateDayFormat("2025-06-15") {
		t.Error("ValidateDayFormat(\"2025-06-15\") = false, want true")
	}
	if ValidateDayFormat("June 15, 2025") {
		t.Error("ValidateDayFormat(\"June 15, 2025\") = true, want false")
	}
	if ValidateDayFormat("") {
		t.Error("ValidateDayFormat(\"\") = true, want false")
	}
}

func TestValidateTimezone(t *testing.T) {
	if !ValidateTimezone("") {
		t.Error("ValidateTimezone(\"\") = false, want true")
	}
	if !ValidateTimezone("Local") {
		t.Error("ValidateTimezone(\"Local\") = false, want true")
	}
	if !ValidateTimezone("Europe/London") {
		t.Error("ValidateTimezone(\"Europe/London\") = false, want true")
	}
	if ValidateTimezone("Not/AZone") {
		t.Error("ValidateTimezone(\"Not/AZone\") = true, want false")
	}
}

func TestGetTodayInTimezone(t *testing.T) {
	day, err := GetTodayInTimezone("UTC")
	if err != nil {
		t.Fatalf("GetTodayInTimezone(UTC) returned error: %v", err)
	}
	if !ValidateDayFormat(day) {
		t.Errorf("GetTodayInTimezone(UTC) = %q, not a valid day string", day)
	}

	if _, err := GetTodayInTimezone("Invalid/Timezone"); err == nil {
		t.Error("GetTodayInTimezone with invalid timezone should return error")
	}
}
