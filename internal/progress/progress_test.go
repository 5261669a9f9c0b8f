package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day, hour, min, sec int) time.Time {
	return time.Date(year, month, day, hour, min, sec, 0, time.UTC)
}

func TestCalculateMidYear(t *testing.T) {
	interval := YearOf(2025, time.UTC)
	stats := Calculate(interval, date(2025, time.July, 2, 12, 0, 0))

	assert.InDelta(t, 50.0, stats.Percentage, 1e-9)
	assert.Equal(t, int64(182), stats.DaysPassed)
	assert.Equal(t, int64(182), stats.DaysLeft)
	assert.Equal(t, int64(12), stats.HoursLeft)
	assert.Equal(t, int64(0), stats.MinutesLeft)
	assert.Equal(t, int64(0), stats.SecondsLeft)
}

func TestCalculateBoundaries(t *testing.T) {
	tests := []struct {
		name       string
		year       int
		now        func(Interval) time.Time
		percentage float64
		daysPassed int64
		daysLeft   int64
	}{
		{
			name:       "start of common year",
			year:       2025,
			now:        func(i Interval) time.Time { return i.Start },
			percentage: 0,
			daysPassed: 0,
			daysLeft:   365,
		},
		{
			name:       "start of leap year",
			year:       2024,
			now:        func(i Interval) time.Time { return i.Start },
			percentage: 0,
			daysPassed: 0,
			daysLeft:   366,
		},
		{
			name:       "end of year",
			year:       2025,
			now:        func(i Interval) time.Time { return i.End },
			percentage: 100,
			daysPassed: 365,
			daysLeft:   0,
		},
		{
			name:       "before start",
			year:       2025,
			now:        func(i Interval) time.Time { return i.Start.Add(-time.Hour) },
			percentage: 0,
			daysPassed: -1,
			daysLeft:   365,
		},
		{
			name:       "after end",
			year:       2025,
			now:        func(i Interval) time.Time { return i.End.Add(time.Hour) },
			percentage: 100,
			daysPassed: 365,
			daysLeft:   -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			interval := YearOf(tt.year, time.UTC)
			stats := Calculate(interval, tt.now(interval))

			assert.Equal(t, tt.percentage, stats.Percentage)
			assert.Equal(t, tt.daysPassed, stats.DaysPassed)
			assert.Equal(t, tt.daysLeft, stats.DaysLeft)
		})
	}
}

func TestCalculateAfterEndHasNoRemainder(t *testing.T) {
	interval := YearOf(2025, time.UTC)
	stats := Calculate(interval, interval.End.Add(90*time.Minute))

	assert.Zero(t, stats.HoursLeft)
	assert.Zero(t, stats.MinutesLeft)
	assert.Zero(t, stats.SecondsLeft)
	assert.Equal(t, "0d 00h 00m 00s", stats.Countdown())
}

func TestCalculatePercentageIsMonotonic(t *testing.T) {
	interval := YearOf(2024, time.UTC)
	previous := -1.0

	for now := interval.Start; !now.After(interval.End); now = now.Add(97 * time.Hour) {
		stats := Calculate(interval, now)
		require.GreaterOrEqual(t, stats.Percentage, previous, "at %s", now)
		require.GreaterOrEqual(t, stats.Percentage, 0.0)
		require.LessOrEqual(t, stats.Percentage, 100.0)
		previous = stats.Percentage
	}

	assert.Equal(t, 100.0, Calculate(interval, interval.End).Percentage)
}

func TestCalculateRemainderDecomposition(t *testing.T) {
	interval := YearOf(2025, time.UTC)
	left := 2*24*time.Hour + 3*time.Hour + 4*time.Minute + 5*time.Second + 600*time.Millisecond
	stats := Calculate(interval, interval.End.Add(-left))

	assert.Equal(t, int64(2), stats.DaysLeft)
	assert.Equal(t, int64(3), stats.HoursLeft)
	assert.Equal(t, int64(4), stats.MinutesLeft)
	assert.Equal(t, int64(5), stats.SecondsLeft)
	assert.Equal(t, "2d 03h 04m 05s", stats.Countdown())
}

func TestStatsFormatting(t *testing.T) {
	stats := Stats{Percentage: 45.123456, DaysPassed: 164, DaysLeft: 201}

	assert.Equal(t, "45.123456%", stats.DisplayPercentage())
	assert.Equal(t, int64(165), stats.DayOfYear())
	assert.InDelta(t, 0.45123456, stats.Fraction(), 1e-12)
	assert.Equal(t, "0.000000%", Stats{}.DisplayPercentage())
}

func TestIntervalLength(t *testing.T) {
	assert.Equal(t, int64(365), YearOf(2025, time.UTC).Length())
	assert.Equal(t, int64(366), YearOf(2024, time.UTC).Length())
	assert.Equal(t, 2024, YearOf(2024, nil).Year())
}

func TestFloorDiv(t *testing.T) {
	assert.Equal(t, int64(2), floorDiv(5, 2))
	assert.Equal(t, int64(-3), floorDiv(-5, 2))
	assert.Equal(t, int64(-1), floorDiv(-1, msPerDay))
	assert.Equal(t, int64(0), floorDiv(0, msPerDay))
	assert.Equal(t, int64(-2), floorDiv(-4, 2))
}
