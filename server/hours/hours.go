// Package hours parses human-authored "hours of operation" strings and
// classifies open/closed status against an instant in time.
//
// The day text is uncurated natural language ("9am - 1pm. 2pm - 5pm",
// "24 Hours", "Open from 10am", "Gallery 9am - 5pm"). Parsing is best-effort:
// anything unrecognized degrades to "closed" rather than surfacing an error.
//
// All functions are pure. The caller owns the clock and supplies the instant
// explicitly on every evaluation.
package hours

// ClockTime is minutes since midnight, in [0, 1440]. EndOfDay (1440) is a
// valid exclusive upper bound, distinct from 0.
type ClockTime int

const (
	// EndOfDay is the exclusive end-of-day sentinel (24:00).
	EndOfDay ClockTime = 1440

	// LateClose is the close used for open-ended "Open from" hours. It is
	// 11:59pm, not the end-of-day sentinel, so these sessions render as
	// "- 11:59pm" and the final minute of the day counts as closed.
	LateClose ClockTime = 1439
)

// Session is a single contiguous open interval [Open, Close) within a day.
// Invariant: Open < Close. A session ending at midnight is normalized to
// Close = EndOfDay, never 0.
type Session struct {
	Open  ClockTime `json:"open"`
	Close ClockTime `json:"close"`
}

// WeekHours holds one raw day text per weekday, indexed 0=Sunday..6=Saturday.
type WeekHours [7]string
