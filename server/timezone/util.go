// Package timezone provides timezone utilities for the librarymap application.
//
// All open/closed classification is anchored to a single reference timezone
// (US Eastern), so this package pre-loads that location and exposes the
// day-index and minute-of-day arithmetic built on top of it.
package timezone

import (
	"fmt"
	"time"
)

// UTC is the coordinated universal time timezone.
var UTC = time.UTC

// ParseTimezone parses an IANA timezone identifier (e.g., "America/New_York").
// If the timezone is invalid, returns UTC and an error.
func ParseTimezone(tz string) (*time.Location, error) {
	if tz == "" || tz == "UTC" {
		return UTC, nil
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return UTC, fmt.Errorf("invalid timezone %q: %w", tz, err)
	}

	return loc, nil
}

// MustParseTimezone parses a timezone or panics if invalid.
// Use this for constants that are known to be valid at compile time.
// A missing zone database is an environment precondition failure, not a
// condition to degrade around.
func MustParseTimezone(tz string) *time.Location {
	loc, err := ParseTimezone(tz)
	if err != nil {
		panic(err)
	}
	return loc
}

// IsValidTimezone checks if a timezone identifier is valid.
func IsValidTimezone(tz string) bool {
	if tz == "" || tz == "UTC" {
		return true
	}

	_, err := time.LoadLocation(tz)
	return err == nil
}

// Common timezone constants
const (
	// TimezoneUTC is the UTC timezone identifier
	TimezoneUTC = "UTC"

	// TimezoneAmericaNewYork is the Eastern Time timezone, the reference
	// zone for all status classification.
	TimezoneAmericaNewYork = "America/New_York"
)

// LocationAmericaNewYork is the pre-loaded America/New_York location.
// Daylight-saving transitions follow the zone database, not a fixed offset.
var LocationAmericaNewYork = MustParseTimezone(TimezoneAmericaNewYork)

// ToEastern converts an instant to US Eastern civil time.
func ToEastern(t time.Time) time.Time {
	return t.In(LocationAmericaNewYork)
}

// DayIndex returns the weekday index (0=Sunday..6=Saturday) of the instant
// in the given timezone.
func DayIndex(t time.Time, tz *time.Location) int {
	if tz == nil {
		tz = UTC
	}
	return int(t.In(tz).Weekday())
}

// MinuteOfDay returns minutes since midnight of the instant in the given
// timezone. Seconds are discarded.
func MinuteOfDay(t time.Time, tz *time.Location) int {
	if tz == nil {
		tz = UTC
	}
	zoned := t.In(tz)
	return zoned.Hour()*60 + zoned.Minute()
}

// StartOfDay returns the start of the day (00:00:00) in the given timezone.
func StartOfDay(t time.Time, tz *time.Location) time.Time {
	if tz == nil {
		tz = UTC
	}
	return time.Date(t.In(tz).Year(), t.In(tz).Month(), t.In(tz).Day(), 0, 0, 0, 0, tz)
}
