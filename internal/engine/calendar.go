package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/tartampluch/go-datewheel/internal/config"
)

// Era is the value of the era wheel.
type Era int

const (
	BC Era = iota
	AD
)

func (e Era) String() string {
	switch e {
	case BC:
		return "BC"
	case AD:
		return "AD"
	default:
		return fmt.Sprintf("Era(%d)", int(e))
	}
}

// Fields is a date split the way the wheels see it. Year counts from 1 within
// its era; Month and Day are 1-based.
type Fields struct {
	Era    Era
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
}

// Calendar converts between instants and Fields.
type Calendar interface {
	// Decompose splits an instant into its fields.
	Decompose(t time.Time) Fields
	// Compose builds the instant named by f. It fails with ErrInvalidDate
	// when f does not name an existing date, e.g. February 30th.
	Compose(f Fields) (time.Time, error)
	// Now returns the current instant.
	Now() time.Time
}

// ErrInvalidDate is returned by Compose for fields that name no date.
var ErrInvalidDate = errors.New(config.ErrInvalidDate)

// Gregorian is the proleptic Gregorian calendar with BC/AD eras, backed by
// Go's astronomical year numbering (1 BC is year 0, 2 BC is year -1).
type Gregorian struct {
	Location *time.Location // Defaults to time.Local.
	Clock    Clock          // Defaults to RealClock.
}

func (g Gregorian) location() *time.Location {
	if g.Location == nil {
		return time.Local
	}
	return g.Location
}

// Now returns the clock's current time in the calendar's location.
func (g Gregorian) Now() time.Time {
	var clock Clock = RealClock{}
	if g.Clock != nil {
		clock = g.Clock
	}
	return clock.Now().In(g.location())
}

// Decompose splits t, viewed in the calendar's location.
func (g Gregorian) Decompose(t time.Time) Fields {
	t = t.In(g.location())
	era, year := eraYear(t.Year())
	return Fields{
		Era:    era,
		Year:   year,
		Month:  int(t.Month()),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
	}
}

// Compose validates every field before building the instant, since
// time.Date would silently normalise overflowing values.
func (g Gregorian) Compose(f Fields) (time.Time, error) {
	if f.Era != BC && f.Era != AD {
		return time.Time{}, fmt.Errorf("%w: era %d", ErrInvalidDate, int(f.Era))
	}
	if f.Year < 1 {
		return time.Time{}, fmt.Errorf("%w: year %d %s", ErrInvalidDate, f.Year, f.Era)
	}
	if f.Month < 1 || f.Month > 12 {
		return time.Time{}, fmt.Errorf("%w: month %d", ErrInvalidDate, f.Month)
	}

	year := astronomicalYear(f.Era, f.Year)
	month := time.Month(f.Month)
	if f.Day < 1 || f.Day > daysInMonth(year, month) {
		return time.Time{}, fmt.Errorf("%w: day %d of %s %d %s", ErrInvalidDate, f.Day, month, f.Year, f.Era)
	}
	if f.Hour < 0 || f.Hour > 23 || f.Minute < 0 || f.Minute > 59 || f.Second < 0 || f.Second > 59 {
		return time.Time{}, fmt.Errorf("%w: time %02d:%02d:%02d", ErrInvalidDate, f.Hour, f.Minute, f.Second)
	}

	return time.Date(year, month, f.Day, f.Hour, f.Minute, f.Second, 0, g.location()), nil
}

func daysInMonth(y int, m time.Month) int {
	// Day 0 of next month is last day of this month.
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func astronomicalYear(era Era, year int) int {
	if era == BC {
		return 1 - year
	}
	return year
}

// eraYear converts an astronomical year to its era and era-relative year.
func eraYear(astronomical int) (Era, int) {
	if astronomical >= 1 {
		return AD, astronomical
	}
	return BC, 1 - astronomical
}
