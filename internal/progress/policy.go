package progress

import "time"

// Policy resolves which year is tracked for a reference instant.
type Policy interface {
	Interval(now time.Time) Interval
}

// CurrentYear tracks the calendar year containing the reference instant, in
// the reference instant's location. It is re-evaluated on every tick so the
// widget rolls over at midnight on New Year's Eve.
type CurrentYear struct{}

func (CurrentYear) Interval(now time.Time) Interval {
	return YearOf(now.Year(), now.Location())
}

// FixedYear always tracks the same calendar year.
type FixedYear struct {
	Year     int
	Location *time.Location
}

func (f FixedYear) Interval(now time.Time) Interval {
	loc := f.Location
	if loc == nil {
		loc = now.Location()
	}
	return YearOf(f.Year, loc)
}

// PolicyFor returns FixedYear when year is non-zero and CurrentYear otherwise.
func PolicyFor(year int) Policy {
	if year == 0 {
		return CurrentYear{}
	}
	return FixedYear{Year: year}
}

// At computes the statistics for now under policy p.
func At(p Policy, now time.Time) Stats {
	return Calculate(p.Interval(now), now)
}
