package hours

import (
	"time"

	"github.com/opencampus/librarymap/server/timezone"
)

// Status is the three-way open/closed classification.
type Status string

const (
	StatusOpen        Status = "OPEN"
	StatusClosingSoon Status = "CLOSING_SOON"
	StatusClosed      Status = "CLOSED"
)

// ClosingSoonWindow is the number of minutes before close at which an open
// session is reported as closing soon. The threshold is inclusive.
const ClosingSoonWindow = 60

// ClassifyDay classifies the status at minuteOfDay against a day's sessions.
// Sessions are scanned in order; the first one containing the instant
// (close boundary exclusive) is the active session.
func ClassifyDay(sessions []Session, minuteOfDay int) Status {
	now := ClockTime(minuteOfDay)
	for _, session := range sessions {
		if now >= session.Open && now < session.Close {
			if int(session.Close)-minuteOfDay <= ClosingSoonWindow {
				return StatusClosingSoon
			}
			return StatusOpen
		}
	}
	return StatusClosed
}

// ClassifyWeek classifies the status of a week's hours at the given instant.
// The instant is resolved to US Eastern civil time regardless of its own
// location; the zoned weekday selects the day text.
func ClassifyWeek(week WeekHours, at time.Time) Status {
	dayText := week[timezone.DayIndex(at, timezone.LocationAmericaNewYork)]
	minutes := timezone.MinuteOfDay(at, timezone.LocationAmericaNewYork)
	return ClassifyDay(ExtractSessions(dayText), minutes)
}
