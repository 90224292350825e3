package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/tartampluch/go-datewheel/internal/config"
	"github.com/tartampluch/go-datewheel/internal/wheel"
)

// PickerDate is the date shown by the wheels.
type PickerDate struct {
	Time time.Time
	Era  Era
}

// Layout holds the selected virtual row of every wheel, in column order.
type Layout [wheel.Count]int

// Options configures a Picker. Zero values select the defaults.
type Options struct {
	Bounds   wheel.YearBounds // Defaults to wheel.DefaultYearBounds.
	Geometry wheel.Geometry   // Defaults to wheel.DefaultGeometry.
	Calendar Calendar         // Defaults to a local Gregorian calendar.
}

// Picker keeps the five wheels consistent with a single date inside the year
// bounds. It is driven from the owning UI thread and is not safe for
// concurrent use.
type Picker struct {
	// OnDateChanged, if set, is called once per settle with the final date,
	// after the picker state has been updated. It may call back into the
	// picker.
	OnDateChanged func(PickerDate)

	cal      Calendar
	geometry wheel.Geometry
	bounds   Bounds
	date     time.Time
	rows     Layout

	// cycles records the real row count each wheel was last selected with.
	cycles [wheel.Count]int
}

// New validates opts and returns a picker showing the current date, clamped
// to the bounds, with every wheel centred.
func New(opts Options) (*Picker, error) {
	years := opts.Bounds
	if years == (wheel.YearBounds{}) {
		years = wheel.DefaultYearBounds()
	}
	if err := years.Validate(); err != nil {
		return nil, err
	}

	geometry := opts.Geometry
	if geometry == (wheel.Geometry{}) {
		geometry = wheel.DefaultGeometry()
	}
	if err := geometry.Validate(); err != nil {
		return nil, err
	}
	if err := geometry.Fits(years); err != nil {
		return nil, err
	}

	cal := opts.Calendar
	if cal == nil {
		cal = Gregorian{}
	}

	p := &Picker{
		cal:      cal,
		geometry: geometry,
		bounds:   NewBounds(cal, years),
	}

	date, _, err := p.bounds.Clamp(cal.Now())
	if err != nil {
		return nil, err
	}
	p.date = date
	p.selectRows(date, false)

	slog.Info(config.MsgPickerReady,
		config.LogKeyComponent, config.CompPicker,
		config.LogKeyMinYear, years.MinimumYear,
		config.LogKeyMaxYear, years.MaximumYear,
		config.LogKeyDate, date,
	)
	return p, nil
}

// Configure replaces the year bounds. Invalid bounds, including windows whose
// century wheel does not fit the row space, are rejected and leave the picker
// untouched. Otherwise the date is clamped into the new range and
// every wheel is re-centred, since the century wheel may change size.
// OnDateChanged fires only if clamping moved the date.
func (p *Picker) Configure(minimumYear, maximumYear int) error {
	years := wheel.YearBounds{MinimumYear: minimumYear, MaximumYear: maximumYear}
	err := years.Validate()
	if err == nil {
		err = p.geometry.Fits(years)
	}
	if err != nil {
		slog.Warn(config.MsgBoundsRejected,
			config.LogKeyComponent, config.CompPicker,
			config.LogKeyMinYear, minimumYear,
			config.LogKeyMaxYear, maximumYear,
			config.LogKeyError, err,
		)
		return err
	}

	next := p.bounds
	next.Years = years
	date, moved, err := next.Clamp(p.date)
	if err != nil {
		return err
	}

	old := p.bounds.Years
	p.bounds = next
	p.date = date
	p.selectRows(date, false)

	slog.Info(config.MsgBoundsUpdated,
		config.LogKeyComponent, config.CompPicker,
		config.LogKeyOld, fmt.Sprintf("%d..%d", old.MinimumYear, old.MaximumYear),
		config.LogKeyNew, fmt.Sprintf("%d..%d", years.MinimumYear, years.MaximumYear),
	)

	if moved {
		p.publish()
	}
	return nil
}

// SetDate moves the picker to t, clamped to the bounds, and centres every
// wheel on it. Calling it twice with the same date gives the same layout.
func (p *Picker) SetDate(t time.Time) (PickerDate, error) {
	date, _, err := p.bounds.Clamp(t)
	if err != nil {
		return p.CurrentDate(), err
	}

	p.date = date
	p.selectRows(date, false)

	slog.Debug(config.MsgDateSet,
		config.LogKeyComponent, config.CompPicker,
		config.LogKeyDate, date,
	)
	return p.publish(), nil
}

// OnWheelEdited settles wheel c on row after a user scroll. The value of the
// row replaces its field in the current date; an edit naming no real date is
// discarded and the wheels return to the current date, otherwise the result
// is clamped to the bounds. Every wheel is then re-selected within the cycle
// it already shows. Rows outside the wheel and unknown components are
// reported as ErrContract without changing anything.
func (p *Picker) OnWheelEdited(c wheel.Component, row int) (PickerDate, error) {
	value, err := p.geometry.RealValue(row, c, p.bounds.Years)
	if err != nil {
		return p.CurrentDate(), err
	}

	date, err := p.cal.Compose(ApplyEdit(p.cal.Decompose(p.date), c, value))
	switch {
	case errors.Is(err, ErrInvalidDate):
		slog.Debug(config.MsgEditDiscarded,
			config.LogKeyComponent, config.CompPicker,
			config.LogKeyWheel, c,
			config.LogKeyValue, value,
			config.LogKeyError, err,
		)
		date = p.date
	case err != nil:
		return p.CurrentDate(), err
	default:
		if date, _, err = p.bounds.Clamp(date); err != nil {
			return p.CurrentDate(), err
		}
	}

	p.rows[c] = row
	p.date = date
	p.selectRows(date, true)

	slog.Debug(config.MsgWheelSettled,
		config.LogKeyComponent, config.CompPicker,
		config.LogKeyWheel, c,
		config.LogKeyRow, row,
		config.LogKeyDate, date,
	)
	return p.publish(), nil
}

// CurrentDate returns the date the wheels show.
func (p *Picker) CurrentDate() PickerDate {
	return PickerDate{Time: p.date, Era: p.cal.Decompose(p.date).Era}
}

// Layout returns the selected row of every wheel.
func (p *Picker) Layout() Layout {
	return p.rows
}

// YearBounds returns the current year window.
func (p *Picker) YearBounds() wheel.YearBounds {
	return p.bounds.Years
}

// Range returns the first and last selectable instants.
func (p *Picker) Range() (time.Time, time.Time, error) {
	return p.bounds.Range()
}

// RealValue reduces a row of wheel c to the value it shows.
func (p *Picker) RealValue(row int, c wheel.Component) (int, error) {
	return p.geometry.RealValue(row, c, p.bounds.Years)
}

// IsEditValid reports whether moving wheel c to value would keep the current
// date valid and in range. Shells use it to grey out rows.
func (p *Picker) IsEditValid(c wheel.Component, value int) bool {
	return p.bounds.IsEditValid(p.date, c, value)
}

// RealRowCount returns the number of distinct values of wheel c.
func (p *Picker) RealRowCount(c wheel.Component) int {
	return wheel.RealRowCount(c, p.bounds.Years)
}

// RowCount returns the number of rows the shell must expose for wheel c.
func (p *Picker) RowCount(c wheel.Component) int {
	return p.geometry.RowCount(c)
}

// selectRows points every wheel at date. Centred selection places each value
// at its absolute row; anchored selection keeps each cyclic wheel within the
// cycle it currently shows, unless its size changed or the row would leave
// the row space.
func (p *Picker) selectRows(date time.Time, anchored bool) {
	values := p.wheelValues(date)
	years := p.bounds.Years

	for _, c := range wheel.All {
		n := wheel.RealRowCount(c, years)
		row := p.geometry.AbsoluteRow(values[c], c)

		if anchored {
			if r, ok := p.geometry.AnchoredRow(p.rows[c], values[c], c, years); ok && p.cycles[c] == n {
				row = r
			} else {
				slog.Debug(config.MsgWheelRecentered,
					config.LogKeyComponent, config.CompPicker,
					config.LogKeyWheel, c,
					config.LogKeyRow, p.rows[c],
				)
			}
		}

		p.rows[c] = row
		p.cycles[c] = n
	}
}

func (p *Picker) wheelValues(date time.Time) [wheel.Count]int {
	f := p.cal.Decompose(date)
	return [wheel.Count]int{
		wheel.Day:        f.Day - 1,
		wheel.Month:      f.Month - 1,
		wheel.Century:    wheel.CenturyOf(f.Year),
		wheel.SubCentury: wheel.SubCenturyOf(f.Year),
		wheel.Era:        int(f.Era),
	}
}

func (p *Picker) publish() PickerDate {
	d := p.CurrentDate()
	if p.OnDateChanged != nil {
		p.OnDateChanged(d)
	}
	return d
}
