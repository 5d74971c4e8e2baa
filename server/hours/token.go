package hours

import (
	"regexp"
	"strconv"
	"strings"
)

// clockTimePattern is the accepted shape of a single clock-time token:
// 1-2 digit hour, optional 2-digit minute, am/pm suffix. The regex shape is
// the only validity gate; hour and minute values are not range-checked.
const clockTimePattern = `(\d{1,2})(?::(\d{2}))?\s*(am|pm)`

var clockTimeRegexp = regexp.MustCompile(`^` + clockTimePattern + `$`)

// ParseClockTime parses a clock-time token such as "10am" or "4:30pm" into
// minutes since midnight. Surrounding whitespace and letter case are ignored.
// Returns false for any token that does not match the accepted shape.
func ParseClockTime(token string) (ClockTime, bool) {
	token = strings.ToLower(strings.TrimSpace(token))
	match := clockTimeRegexp.FindStringSubmatch(token)
	if match == nil {
		return 0, false
	}

	hour, _ := strconv.Atoi(match[1])
	minute := 0
	if match[2] != "" {
		minute, _ = strconv.Atoi(match[2])
	}

	// 12-hour clock: 12am is midnight, 12pm is noon, pm adds 12 otherwise.
	switch match[3] {
	case "pm":
		if hour != 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}

	return ClockTime(hour*60 + minute), true
}
