// Package clock supplies calendar-day values in the single reference
// timezone (Europe/London). Both the date string and the weekday index are
// derived from the same instant in that zone, so a task is never evaluated
// against a UTC date but a local weekday.
package clock

import (
	"fmt"
	"time"
)

// DateLayout is the date-only wire format used throughout the store.
const DateLayout = "2006-01-02"

var location = mustLoadLocation()

func mustLoadLocation() *time.Location {
	loc, err := time.LoadLocation("Europe/London")
	if err != nil {
		// tzdata missing on the host; UTC keeps date/weekday consistent
		return time.UTC
	}
	return loc
}

// Day is a calendar date at day granularity.
// Weekday follows time.Weekday numbering: 0=Sunday .. 6=Saturday.
type Day struct {
	Date    string
	Weekday time.Weekday
}

// Clock provides the current instant and the current calendar day.
type Clock interface {
	Now() time.Time
	Today() Day
}

type systemClock struct{}

// System returns a Clock backed by the wall clock in the reference timezone.
func System() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().In(location)
}

func (systemClock) Today() Day {
	return DayOf(time.Now())
}

// DayOf converts an instant to its calendar day in the reference timezone.
func DayOf(t time.Time) Day {
	local := t.In(location)
	return Day{
		Date:    local.Format(DateLayout),
		Weekday: local.Weekday(),
	}
}

// ParseDay parses a date-only string into a Day, deriving its weekday.
func ParseDay(date string) (Day, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return Day{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return Day{Date: date, Weekday: t.Weekday()}, nil
}

// DaysBetween returns the whole calendar days from one date string to
// another (positive when to is later). Malformed dates yield 0, matching
// the store's treatment of unparseable history as "nothing to compare".
func DaysBetween(from, to string) int {
	a, err := time.Parse(DateLayout, from)
	if err != nil {
		return 0
	}
	b, err := time.Parse(DateLayout, to)
	if err != nil {
		return 0
	}
	return int(b.Sub(a).Hours() / 24)
}

// fixedClock pins both the instant and the day, for tests and replay.
type fixedClock struct {
	now time.Time
	day Day
}

// FixedAt returns a Clock frozen at midnight of the given date in the
// reference timezone.
func FixedAt(date string) (Clock, error) {
	day, err := ParseDay(date)
	if err != nil {
		return nil, err
	}
	t, _ := time.ParseInLocation(DateLayout, date, location)
	return fixedClock{now: t, day: day}, nil
}

func (c fixedClock) Now() time.Time { return c.now }
func (c fixedClock) Today() Day     { return c.day }
