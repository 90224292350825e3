package engine

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/tartampluch/go-datewheel/internal/config"
	"github.com/tartampluch/go-datewheel/internal/wheel"
)

// Bounds turns a year window into the range of selectable dates and
// previews wheel edits against it.
type Bounds struct {
	Calendar Calendar
	Years    wheel.YearBounds

	// Tolerance widens the range used by IsEditValid only; Clamp is exact.
	Tolerance time.Duration
}

// NewBounds returns Bounds with the default one day preview tolerance.
func NewBounds(cal Calendar, years wheel.YearBounds) Bounds {
	return Bounds{Calendar: cal, Years: years, Tolerance: config.BoundTolerance}
}

// Range returns the first and last selectable instants: January 1st of the
// minimum year and December 31st of the maximum year. Both carry the current
// time-of-day so that comparisons against "now" stay meaningful.
func (b Bounds) Range() (time.Time, time.Time, error) {
	now := b.Calendar.Decompose(b.Calendar.Now())

	minEra, minYear := boundYear(b.Years.MinimumYear)
	minimum, err := b.Calendar.Compose(Fields{
		Era: minEra, Year: minYear, Month: 1, Day: 1,
		Hour: now.Hour, Minute: now.Minute, Second: now.Second,
	})
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("minimum date for year %d: %w", b.Years.MinimumYear, err)
	}

	maxEra, maxYear := boundYear(b.Years.MaximumYear)
	maximum, err := b.Calendar.Compose(Fields{
		Era: maxEra, Year: maxYear, Month: 12, Day: 31,
		Hour: now.Hour, Minute: now.Minute, Second: now.Second,
	})
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("maximum date for year %d: %w", b.Years.MaximumYear, err)
	}

	return minimum, maximum, nil
}

// Clamp pulls t onto the nearest bound when it lies outside the range.
// The boolean reports whether t was moved.
func (b Bounds) Clamp(t time.Time) (time.Time, bool, error) {
	minimum, maximum, err := b.Range()
	if err != nil {
		return time.Time{}, false, err
	}

	clamped := t
	switch {
	case t.After(maximum):
		clamped = maximum
	case t.Before(minimum):
		clamped = minimum
	default:
		return t, false, nil
	}

	slog.Debug(config.MsgDateClamped,
		config.LogKeyComponent, config.CompBounds,
		config.LogKeyOld, t,
		config.LogKeyNew, clamped,
	)
	return clamped, true, nil
}

// IsEditValid reports whether moving one wheel of current to value would
// still give a real date within the range widened by Tolerance. Only the
// date part of current is kept. It is a preview and never changes anything.
func (b Bounds) IsEditValid(current time.Time, c wheel.Component, value int) bool {
	if !c.Valid() {
		return false
	}

	f := b.Calendar.Decompose(current)
	f.Hour, f.Minute, f.Second = 0, 0, 0

	candidate, err := b.Calendar.Compose(ApplyEdit(f, c, value))
	if err != nil {
		return false
	}

	minimum, maximum, err := b.Range()
	if err != nil {
		return false
	}

	if candidate.After(maximum.Add(b.Tolerance)) {
		return false
	}
	if candidate.Before(minimum.Add(-b.Tolerance)) {
		return false
	}
	return true
}

// ApplyEdit substitutes the field driven by wheel c with value. The century
// and sub-century wheels share the year field, so each keeps the other half.
func ApplyEdit(f Fields, c wheel.Component, value int) Fields {
	switch c {
	case wheel.Day:
		f.Day = value + 1
	case wheel.Month:
		f.Month = value + 1
	case wheel.Century:
		f.Year = wheel.YearFrom(value, wheel.SubCenturyOf(f.Year))
	case wheel.SubCentury:
		f.Year = wheel.YearFrom(wheel.CenturyOf(f.Year), value)
	case wheel.Era:
		f.Era = Era(value)
	}
	return f
}

// boundYear maps a signed bound year to its era. Year 0 has no era of its
// own and stands for 1 BC, as in astronomical numbering.
func boundYear(year int) (Era, int) {
	switch {
	case year > 0:
		return AD, year
	case year == 0:
		return BC, 1
	default:
		return BC, -year
	}
}
