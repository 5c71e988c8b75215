package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseDay_Weekday(t *testing.T) {
	day, err := ParseDay("2024-01-01") // a Monday
	require.NoError(t, err)
	require.Equal(t, time.Monday, day.Weekday)

	day, err = ParseDay("2024-01-07")
	require.NoError(t, err)
	require.Equal(t, time.Sunday, day.Weekday)
}

func TestParseDay_Invalid(t *testing.T) {
	_, err := ParseDay("01/01/2024")
	require.Error(t, err)
}

func TestDaysBetween(t *testing.T) {
	require.Equal(t, 1, DaysBetween("2024-01-01", "2024-01-02"))
	require.Equal(t, 0, DaysBetween("2024-01-01", "2024-01-01"))
	require.Equal(t, 3, DaysBetween("2024-01-01", "2024-01-04"))
	require.Equal(t, -1, DaysBetween("2024-01-02", "2024-01-01"))
	// month and year boundaries
	require.Equal(t, 1, DaysBetween("2024-01-31", "2024-02-01"))
	require.Equal(t, 1, DaysBetween("2023-12-31", "2024-01-01"))
	// malformed input compares as zero distance
	require.Equal(t, 0, DaysBetween("garbage", "2024-01-01"))
}

func TestFixedAt(t *testing.T) {
	clk, err := FixedAt("2024-03-15") // a Friday
	require.NoError(t, err)
	require.Equal(t, "2024-03-15", clk.Today().Date)
	require.Equal(t, time.Friday, clk.Today().Weekday)
	require.Equal(t, "2024-03-15", clk.Now().Format(DateLayout))
}

func TestDayOf_UsesReferenceZone(t *testing.T) {
	// 23:30 UTC on Jun 1 is already Jun 2 in Europe/London (BST, UTC+1)
	instant := time.Date(2024, 6, 1, 23, 30, 0, 0, time.UTC)
	day := DayOf(instant)
	if location != time.UTC {
		require.Equal(t, "2024-06-02", day.Date)
		require.Equal(t, time.Sunday, day.Weekday)
	}
}
