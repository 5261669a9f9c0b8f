package progress

import (
	"fmt"
	"time"
)

const (
	msPerSecond = int64(1000)
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
	msPerDay    = 24 * msPerHour
)

// Interval is the tracked year. End is always after Start.
type Interval struct {
	Start time.Time
	End   time.Time
}

// YearOf returns the interval from January 1 of year to January 1 of the
// following year, both at midnight in loc.
func YearOf(year int, loc *time.Location) Interval {
	if loc == nil {
		loc = time.Local
	}
	return Interval{
		Start: time.Date(year, time.January, 1, 0, 0, 0, 0, loc),
		End:   time.Date(year+1, time.January, 1, 0, 0, 0, 0, loc),
	}
}

// Year returns the calendar year of the interval start.
func (i Interval) Year() int {
	return i.Start.Year()
}

// Length returns the interval length in whole days.
func (i Interval) Length() int64 {
	return floorDiv(i.End.Sub(i.Start).Milliseconds(), msPerDay)
}

// Stats holds the values derived from one reference instant.
type Stats struct {
	Interval    Interval
	Now         time.Time
	Percentage  float64
	DaysPassed  int64
	DaysLeft    int64
	HoursLeft   int64
	MinutesLeft int64
	SecondsLeft int64
}

// Calculate derives the statistics of interval at now. The percentage is
// clamped to [0, 100]; the day counters are not and go negative outside the
// interval.
func Calculate(interval Interval, now time.Time) Stats {
	total := interval.End.Sub(interval.Start).Milliseconds()
	elapsed := now.Sub(interval.Start).Milliseconds()
	remaining := interval.End.Sub(now).Milliseconds()

	percentage := 0.0
	if total > 0 {
		percentage = float64(elapsed) / float64(total) * 100
	}

	stats := Stats{
		Interval:   interval,
		Now:        now,
		Percentage: clamp(percentage, 0, 100),
		DaysPassed: floorDiv(elapsed, msPerDay),
		DaysLeft:   floorDiv(remaining, msPerDay),
	}

	if remaining > 0 {
		stats.HoursLeft = remaining % msPerDay / msPerHour
		stats.MinutesLeft = remaining % msPerHour / msPerMinute
		stats.SecondsLeft = remaining % msPerMinute / msPerSecond
	}

	return stats
}

// DisplayPercentage renders the percentage with six decimals for on-screen use.
func (s Stats) DisplayPercentage() string {
	return fmt.Sprintf("%.6f%%", s.Percentage)
}

// Fraction returns the percentage scaled to [0, 1].
func (s Stats) Fraction() float64 {
	return s.Percentage / 100
}

// DayOfYear is the 1-based ordinal of the current day within the interval.
func (s Stats) DayOfYear() int64 {
	return s.DaysPassed + 1
}

// Countdown renders the remaining time as "Nd HHh MMm SSs".
func (s Stats) Countdown() string {
	days := s.DaysLeft
	if days < 0 {
		days = 0
	}
	return fmt.Sprintf("%dd %02dh %02dm %02ds", days, s.HoursLeft, s.MinutesLeft, s.SecondsLeft)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
