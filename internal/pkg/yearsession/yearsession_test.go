package yearsession

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "ValidSession", input: "2021/2022", want: true},
		{name: "ValidNonConsecutive", input: "2021/2025", want: true},
		{name: "MissingSlash", input: "20212022", want: false},
		{name: "ShortYear", input: "221/2022", want: false},
		{name: "TrailingGarbage", input: "2021/2022x", want: false},
		{name: "Empty", input: "", want: false},
		{name: "Words", input: "this/year", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValid(tt.input))
		})
	}
}

func TestToYearSession(t *testing.T) {
	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{
			name: "SeptemberStartsNewSession",
			t:    time.Date(2021, time.September, 1, 0, 0, 0, 0, time.UTC),
			want: "2021/2022",
		},
		{
			name: "AugustBelongsToPreviousSession",
			t:    time.Date(2021, time.August, 31, 23, 59, 59, 0, time.UTC),
			want: "2020/2021",
		},
		{
			name: "JanuaryBelongsToPreviousStartYear",
			t:    time.Date(2022, time.January, 15, 12, 0, 0, 0, time.UTC),
			want: "2021/2022",
		},
		{
			name: "DecemberBelongsToCurrentStartYear",
			t:    time.Date(2021, time.December, 25, 0, 0, 0, 0, time.UTC),
			want: "2021/2022",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToYearSession(tt.t))
		})
	}
}

func TestFirstInstantOf(t *testing.T) {
	got, err := FirstInstantOf("2021/2022")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2021, time.September, 1, 0, 0, 0, 0, time.UTC), got)

	_, err = FirstInstantOf("garbage")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

// Round-trip: the first instant of t's session is never after t, and t is
// strictly before the first instant of the following session.
func TestSessionRoundTrip(t *testing.T) {
	instants := []time.Time{
		time.Date(2019, time.September, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2020, time.February, 29, 10, 30, 0, 0, time.UTC),
		time.Date(2021, time.August, 31, 23, 59, 59, 0, time.UTC),
		time.Date(2025, time.December, 31, 23, 59, 59, 0, time.UTC),
	}

	for _, instant := range instants {
		session := ToYearSession(instant)

		first, err := FirstInstantOf(session)
		require.NoError(t, err)
		assert.False(t, first.After(instant), "first instant of %s must not be after %s", session, instant)

		next, err := Next(session)
		require.NoError(t, err)
		nextFirst, err := FirstInstantOf(next)
		require.NoError(t, err)
		assert.True(t, instant.Before(nextFirst), "%s must be before first instant of %s", instant, next)
	}
}

func TestNext(t *testing.T) {
	got, err := Next("2021/2022")
	require.NoError(t, err)
	assert.Equal(t, "2022/2023", got)
}

func TestAddSemesters(t *testing.T) {
	tests := []struct {
		name    string
		session string
		n       int
		want    string
	}{
		{name: "TwoSemestersOneYear", session: "2021/2022", n: 2, want: "2022/2023"},
		{name: "OneSemesterRoundsUp", session: "2021/2022", n: 1, want: "2022/2023"},
		{name: "ThreeSemestersRoundsUp", session: "2021/2022", n: 3, want: "2023/2024"},
		{name: "MinusTwoSemesters", session: "2021/2022", n: -2, want: "2020/2021"},
		{name: "MinusOneSemesterRoundsTowardZero", session: "2021/2022", n: -1, want: "2021/2022"},
		{name: "Zero", session: "2021/2022", n: 0, want: "2021/2022"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AddSemesters(tt.session, tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := AddSemesters("21/22", 2)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

// Adding and subtracting an even number of semesters is an exact inverse.
// Odd counts are not invertible because both directions round half-up.
func TestAddSemestersEvenInverse(t *testing.T) {
	for _, n := range []int{2, 4, 6, 10} {
		forward, err := AddSemesters("2021/2022", n)
		require.NoError(t, err)
		back, err := AddSemesters(forward, -n)
		require.NoError(t, err)
		assert.Equal(t, "2021/2022", back, "n=%d", n)
	}
}

// Pins the historical contract: IsBefore treats equal sessions as before.
func TestIsBefore(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{name: "EarlierIsBefore", a: "2020/2021", b: "2021/2022", want: true},
		{name: "EqualCountsAsBefore", a: "2021/2022", b: "2021/2022", want: true},
		{name: "LaterIsNotBefore", a: "2022/2023", b: "2021/2022", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IsBefore(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := IsBefore("2021/2022", "nope")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestMonths(t *testing.T) {
	got := Months()
	require.Len(t, got, 12)
	assert.Equal(t, time.September, got[0])
	assert.Equal(t, time.August, got[11])

	seen := make(map[time.Month]bool)
	for _, m := range got {
		seen[m] = true
	}
	assert.Len(t, seen, 12)
}

func TestIsBetweenMonth(t *testing.T) {
	assert.True(t, IsBetweenMonth(time.March, time.January, time.June))
	assert.True(t, IsBetweenMonth(time.January, time.January, time.June))
	assert.False(t, IsBetweenMonth(time.July, time.January, time.June))
}
