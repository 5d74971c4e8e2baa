package hours

import (
	"testing"
	"time"

	"github.com/opencampus/librarymap/server/timezone"
)

func TestFormatCompact(t *testing.T) {
	tests := []struct {
		name    string
		dayText string
		want    string
	}{
		{"empty", "", "Closed"},
		{"closed", "Closed", "Closed"},
		{"closed lowercase", "closed", "Closed"},
		{"single session", "9am - 5pm", "9am - 5pm"},
		{"multi session", "9am - 1pm. 2pm - 5pm", "9am - 1pm, 2pm - 5pm"},
		{"already compact is unchanged", "9am - 1pm, 2pm - 5pm", "9am - 1pm, 2pm - 5pm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatCompact(tt.dayText); got != tt.want {
				t.Errorf("FormatCompact(%q) = %q, want %q", tt.dayText, got, tt.want)
			}
		})
	}
}

func TestFormatDetail(t *testing.T) {
	tests := []struct {
		name    string
		dayText string
		want    string
	}{
		{"empty", "", "Closed"},
		{"closed", "Closed", "Closed"},
		{"single session", "9am - 5pm", "9am - 5pm"},
		{"multi session", "9am - 1pm. 2pm - 5pm", "9am - 1pm\n2pm - 5pm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDetail(tt.dayText); got != tt.want {
				t.Errorf("FormatDetail(%q) = %q, want %q", tt.dayText, got, tt.want)
			}
		})
	}
}

func TestFormatIdempotentOnClosed(t *testing.T) {
	// Re-formatting an already rendered "Closed" yields "Closed" unchanged.
	if got := FormatCompact(FormatCompact("")); got != "Closed" {
		t.Errorf("FormatCompact twice = %q, want Closed", got)
	}
	if got := FormatDetail(FormatDetail("Closed")); got != "Closed" {
		t.Errorf("FormatDetail twice = %q, want Closed", got)
	}
}

func TestFormatTodayLabel(t *testing.T) {
	week := WeekHours{}
	week[0] = "9am - 1pm. 2pm - 5pm"
	// Monday (index 1) left empty.

	eastern := timezone.LocationAmericaNewYork
	sunday := time.Date(2025, 1, 19, 12, 0, 0, 0, eastern)
	monday := time.Date(2025, 1, 20, 12, 0, 0, 0, eastern)

	if got := FormatTodayLabel(week, sunday); got != "9am - 1pm, 2pm - 5pm" {
		t.Errorf("FormatTodayLabel(sunday) = %q", got)
	}
	if got := FormatTodayLabel(week, monday); got != "Closed Today" {
		t.Errorf("FormatTodayLabel(monday) = %q, want Closed Today", got)
	}
}

func TestFormatClockTime(t *testing.T) {
	tests := []struct {
		in   ClockTime
		want string
	}{
		{0, "12:00am"},
		{1, "12:01am"},
		{540, "9:00am"},
		{720, "12:00pm"},
		{990, "4:30pm"},
		{1439, "11:59pm"},
		{1440, "12:00am"},
	}

	for _, tt := range tests {
		if got := FormatClockTime(tt.in); got != tt.want {
			t.Errorf("FormatClockTime(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatSessionRoundTrip(t *testing.T) {
	// Rendering a session canonically and re-parsing yields the same pair,
	// excluding the midnight remap asymmetry.
	sessions := []Session{
		{Open: 540, Close: 1020},
		{Open: 510, Close: 1005},
		{Open: 0, Close: 1320},
		{Open: 600, Close: 1439},
	}

	for _, session := range sessions {
		rendered := FormatSession(session)
		parsed := ExtractSessions(rendered)
		if len(parsed) != 1 || parsed[0] != session {
			t.Errorf("round trip of %v via %q = %v", session, rendered, parsed)
		}
	}
}
