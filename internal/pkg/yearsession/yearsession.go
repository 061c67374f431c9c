package yearsession

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"
)

// ErrInvalidFormat is returned when a year session string does not match "YYYY/YYYY"
var ErrInvalidFormat = errors.New("invalid year session format, expected YYYY/YYYY")

// FirstMonth is the month a year session starts on
const FirstMonth = time.September

var sessionPattern = regexp.MustCompile(`^\d{4}/\d{4}$`)

// months lists the academic year cycle starting from September
var months = [12]time.Month{
	time.September,
	time.October,
	time.November,
	time.December,
	time.January,
	time.February,
	time.March,
	time.April,
	time.May,
	time.June,
	time.July,
	time.August,
}

// location is the reference time zone for all session boundary math
var location = time.UTC

// SetLocation overrides the reference time zone. Call once at startup before
// any session conversion happens.
func SetLocation(loc *time.Location) {
	if loc != nil {
		location = loc
	}
}

// Location returns the reference time zone used for session boundary math.
func Location() *time.Location {
	return location
}

// IsValid reports whether s matches the "YYYY/YYYY" session format.
func IsValid(s string) bool {
	return sessionPattern.MatchString(s)
}

// ToYearSession converts an instant to its year session, e.g. "2021/2022".
// Instants from September onwards belong to the session starting that year,
// earlier months belong to the previous session.
func ToYearSession(t time.Time) string {
	local := t.In(location)
	year := local.Year()

	firstYear := year
	secondYear := year + 1
	if local.Month() < FirstMonth {
		firstYear = year - 1
		secondYear = year
	}
	return fmt.Sprintf("%d/%d", firstYear, secondYear)
}

// Current returns the year session containing the current instant.
func Current() string {
	return ToYearSession(time.Now())
}

// NextFromNow returns the year session one year after the current instant.
func NextFromNow() string {
	return ToYearSession(time.Now().AddDate(1, 0, 0))
}

// FirstInstantOf returns midnight of September 1 of the session's start year
// in the reference time zone.
func FirstInstantOf(session string) (time.Time, error) {
	if !IsValid(session) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidFormat, session)
	}
	year, _ := strconv.Atoi(session[:4])
	return time.Date(year, FirstMonth, 1, 0, 0, 0, 0, location), nil
}

// Next returns the session immediately following the given one.
func Next(session string) (string, error) {
	return AddSemesters(session, 2)
}

// AddSemesters shifts a session by n semesters. Two semesters make one year;
// an odd count rounds half-up, away from zero for positive n.
func AddSemesters(session string, n int) (string, error) {
	if !IsValid(session) {
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, session)
	}
	// Half-up rounding: +1 semester adds a year, -1 adds none.
	years := int(math.Floor(float64(n)/2.0 + 0.5))
	firstYear, _ := strconv.Atoi(session[:4])
	secondYear, _ := strconv.Atoi(session[len(session)-4:])
	return fmt.Sprintf("%d/%d", firstYear+years, secondYear+years), nil
}

// IsBefore reports whether session a is not after session b. The comparison is
// lexicographic, which is exact for fixed-width years, and deliberately treats
// equal sessions as "before" to match the existing API contract.
func IsBefore(a, b string) (bool, error) {
	if !IsValid(a) || !IsValid(b) {
		return false, fmt.Errorf("%w: %q or %q", ErrInvalidFormat, a, b)
	}
	return a <= b, nil
}

// Months returns the twelve months of a year session in academic order,
// September through August.
func Months() []time.Month {
	out := make([]time.Month, len(months))
	copy(out, months[:])
	return out
}

// IsBetweenMonth reports whether m falls within [start, end] by calendar order.
func IsBetweenMonth(m, start, end time.Month) bool {
	return m >= start && m <= end
}
