package hours

import (
	"fmt"
	"strings"
	"time"

	"github.com/opencampus/librarymap/server/timezone"
)

const (
	closedLabel      = "Closed"
	closedTodayLabel = "Closed Today"
)

// isClosedText reports whether the day text means closed all day, either
// explicitly or by being empty.
func isClosedText(dayText string) bool {
	normalized := strings.ToLower(strings.TrimSpace(dayText))
	return normalized == "" || normalized == "closed"
}

// FormatCompact renders a day text for single-line list views, joining
// multi-session days with ", ". Closed or empty input renders as "Closed".
func FormatCompact(dayText string) string {
	if isClosedText(dayText) {
		return closedLabel
	}
	return strings.ReplaceAll(dayText, fragmentSeparator, ", ")
}

// FormatDetail renders a day text for multi-line detail views, placing each
// session on its own line. Closed or empty input renders as "Closed".
func FormatDetail(dayText string) string {
	if isClosedText(dayText) {
		return closedLabel
	}
	return strings.ReplaceAll(dayText, fragmentSeparator, "\n")
}

// FormatTodayLabel renders the current day's hours using the same zoned
// weekday resolution as classification.
func FormatTodayLabel(week WeekHours, at time.Time) string {
	dayText := week[timezone.DayIndex(at, timezone.LocationAmericaNewYork)]
	if isClosedText(dayText) {
		return closedTodayLabel
	}
	return strings.ReplaceAll(dayText, fragmentSeparator, ", ")
}

// FormatSession renders a session in the canonical "H:MMam - H:MMpm" form.
// Re-parsing the result yields the same session, except that an EndOfDay
// close renders as 12:00am and re-parses through the midnight remap.
func FormatSession(s Session) string {
	return fmt.Sprintf("%s - %s", FormatClockTime(s.Open), FormatClockTime(s.Close))
}

// FormatClockTime renders minutes since midnight as a 12-hour clock token.
func FormatClockTime(t ClockTime) string {
	minutes := int(t) % 1440
	hour24 := minutes / 60
	minute := minutes % 60

	suffix := "am"
	if hour24 >= 12 {
		suffix = "pm"
	}
	hour := hour24 % 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%02d%s", hour, minute, suffix)
}
