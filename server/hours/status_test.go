package hours

import (
	"testing"
	"time"

	"github.com/opencampus/librarymap/server/timezone"
)

func TestClassifyDay(t *testing.T) {
	session := []Session{{Open: 600, Close: 720}} // 10:00 - 12:00

	tests := []struct {
		name    string
		minutes int
		want    Status
	}{
		{"before open", 599, StatusClosed},
		{"at open", 600, StatusOpen},
		{"sixty one minutes left", 659, StatusOpen},
		{"sixty minutes left is inclusive", 660, StatusClosingSoon},
		{"one minute left", 719, StatusClosingSoon},
		{"close boundary is exclusive", 720, StatusClosed},
		{"after close", 800, StatusClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyDay(session, tt.minutes); got != tt.want {
				t.Errorf("ClassifyDay(%d) = %v, want %v", tt.minutes, got, tt.want)
			}
		})
	}
}

func TestClassifyDayMultipleSessions(t *testing.T) {
	sessions := []Session{
		{Open: 540, Close: 780},  // 9:00 - 13:00
		{Open: 840, Close: 1020}, // 14:00 - 17:00
	}

	tests := []struct {
		name    string
		minutes int
		want    Status
	}{
		{"first session", 600, StatusOpen},
		{"gap between sessions", 800, StatusClosed},
		{"second session", 900, StatusOpen},
		{"second session closing soon", 970, StatusClosingSoon},
		{"after last session", 1020, StatusClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyDay(sessions, tt.minutes); got != tt.want {
				t.Errorf("ClassifyDay(%d) = %v, want %v", tt.minutes, got, tt.want)
			}
		})
	}
}

func TestClassifyDayNoSessions(t *testing.T) {
	if got := ClassifyDay(nil, 600); got != StatusClosed {
		t.Errorf("ClassifyDay(nil) = %v, want %v", got, StatusClosed)
	}
}

func TestClassifyWeek(t *testing.T) {
	// 2025-01-19 is a Sunday.
	week := WeekHours{}
	week[0] = "Open from 11am"
	week[1] = "9am - 5pm"

	eastern := timezone.LocationAmericaNewYork

	tests := []struct {
		name string
		at   time.Time
		want Status
	}{
		{
			name: "sunday late morning",
			at:   time.Date(2025, 1, 19, 11, 30, 0, 0, eastern),
			want: StatusOpen,
		},
		{
			name: "sunday just before late close",
			at:   time.Date(2025, 1, 19, 22, 59, 0, 0, eastern),
			want: StatusClosingSoon, // 1439 - 1379 = 60 minutes left
		},
		{
			name: "monday midnight is a different day",
			at:   time.Date(2025, 1, 20, 0, 0, 0, 0, eastern),
			want: StatusClosed,
		},
		{
			name: "monday during regular hours",
			at:   time.Date(2025, 1, 20, 10, 0, 0, 0, eastern),
			want: StatusOpen,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyWeek(week, tt.at); got != tt.want {
				t.Errorf("ClassifyWeek(%v) = %v, want %v", tt.at, got, tt.want)
			}
		})
	}
}

func TestClassifyWeekResolvesEasternRegardlessOfCallerZone(t *testing.T) {
	week := WeekHours{}
	week[0] = "Open from 11am"

	// 2025-01-19 16:30 UTC is 11:30 Sunday morning in New York.
	utc := time.Date(2025, 1, 19, 16, 30, 0, 0, time.UTC)
	if got := ClassifyWeek(week, utc); got != StatusOpen {
		t.Errorf("ClassifyWeek(UTC instant) = %v, want %v", got, StatusOpen)
	}

	// 2025-01-20 03:00 UTC is still 22:00 Sunday in New York.
	lateUTC := time.Date(2025, 1, 20, 3, 0, 0, 0, time.UTC)
	if got := ClassifyWeek(week, lateUTC); got != StatusOpen {
		t.Errorf("ClassifyWeek(late UTC instant) = %v, want %v", got, StatusOpen)
	}
}
