package hours

import (
	"regexp"
	"strings"
)

// fragmentSeparator splits a day text into session fragments
// ("9am - 1pm. 2pm - 5pm" carries two sessions).
const fragmentSeparator = ". "

var (
	openFromRegexp  = regexp.MustCompile(`(?i)open\s+from\s+(` + clockTimePattern + `)`)
	openUntilRegexp = regexp.MustCompile(`(?i)open\s+until\s+(` + clockTimePattern + `)`)
	sessionRegexp   = regexp.MustCompile(`(?i)(` + clockTimePattern + `)\s*-\s*(` + clockTimePattern + `)`)
)

// ExtractSessions parses one day's raw hours text into zero or more open
// intervals, in the order they appear. Recognized forms, first match wins:
//
//	""            -> no sessions
//	"Closed"      -> no sessions
//	"24 Hours"    -> single session covering the whole day
//	"Open from T" -> single session [T, 23:59]
//	"Open until T"-> single session [midnight, T)
//	otherwise     -> ". "-separated fragments each holding "T - T" somewhere
//
// Fragments with no recognizable range contribute nothing; a completely
// unparseable text yields an empty result, indistinguishable from closed.
func ExtractSessions(dayText string) []Session {
	normalized := strings.ToLower(strings.TrimSpace(dayText))
	if normalized == "" || normalized == "closed" {
		return nil
	}
	if normalized == "24 hours" {
		return []Session{{Open: 0, Close: EndOfDay}}
	}

	if match := openFromRegexp.FindStringSubmatch(dayText); match != nil {
		if open, ok := ParseClockTime(match[1]); ok {
			return []Session{{Open: open, Close: LateClose}}
		}
	}
	if match := openUntilRegexp.FindStringSubmatch(dayText); match != nil {
		if close, ok := ParseClockTime(match[1]); ok {
			return []Session{{Open: 0, Close: close}}
		}
	}

	var sessions []Session
	for _, fragment := range strings.Split(dayText, fragmentSeparator) {
		match := sessionRegexp.FindStringSubmatch(fragment)
		if match == nil {
			continue
		}
		// Submatch 1 is the full open token, 5 the full close token;
		// 2-4 and 6-8 are the digit/suffix groups inside them.
		open, okOpen := ParseClockTime(match[1])
		close, okClose := ParseClockTime(match[5])
		if !okOpen || !okClose {
			continue
		}
		// A close of exactly midnight means end of day, not start of day.
		if close == 0 {
			close = EndOfDay
		}
		sessions = append(sessions, Session{Open: open, Close: close})
	}

	return sessions
}
