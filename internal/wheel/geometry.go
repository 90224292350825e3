package wheel

import (
	"errors"
	"fmt"

	"github.com/tartampluch/go-datewheel/internal/config"
)

// ErrInvalidGeometry is returned for a row space that cannot hold a centred cycle.
var ErrInvalidGeometry = errors.New(config.ErrInvalidGeometry)

// Geometry describes the oversized virtual row space of the cyclic wheels.
// Cyclic wheels expose TotalRows rows and start centred on InitialOffset,
// which maps to real value 0.
type Geometry struct {
	TotalRows     int
	InitialOffset int
}

// DefaultGeometry returns a 20 000 row space centred on row 10 000.
func DefaultGeometry() Geometry {
	return Geometry{TotalRows: config.TotalRows, InitialOffset: config.InitialOffset}
}

// Validate checks that InitialOffset lies inside the row space.
func (g Geometry) Validate() error {
	if g.TotalRows <= 0 || g.InitialOffset < 0 || g.InitialOffset >= g.TotalRows {
		return fmt.Errorf("%w (rows %d, offset %d)", ErrInvalidGeometry, g.TotalRows, g.InitialOffset)
	}
	return nil
}

// Fits checks that every value of the century wheel under b has a row on
// both sides of InitialOffset, so centred and anchored rows stay inside the
// row space.
func (g Geometry) Fits(b YearBounds) error {
	n := RealRowCount(Century, b)
	if n > g.InitialOffset || n > g.TotalRows-g.InitialOffset {
		return fmt.Errorf("%w: %s (%d centuries, rows %d, offset %d)",
			ErrInvalidBounds, config.ErrBoundsTooWide, n, g.TotalRows, g.InitialOffset)
	}
	return nil
}

// RealRowCount is the true cardinality of a wheel, i.e. the row count it would
// have without infinite scrolling. The century wheel grows with the bound
// furthest from year zero and always includes the century of that bound.
// Unknown components have no rows.
func RealRowCount(c Component, b YearBounds) int {
	switch c {
	case Day:
		return config.DaysPerCycle
	case Month:
		return config.MonthsPerCycle
	case Century:
		return b.LargestYear()/config.YearsPerCentury + 1
	case SubCentury:
		return config.SubCenturiesPerCycle
	case Era:
		return config.EraRows
	default:
		return 0
	}
}

// RowCount is the number of rows the shell must expose for a wheel.
func (g Geometry) RowCount(c Component) int {
	switch {
	case c.Cyclic():
		return g.TotalRows
	case c == Era:
		return config.EraRows
	default:
		return 0
	}
}

// RealValue reduces a virtual row to the value it represents.
func (g Geometry) RealValue(row int, c Component, b YearBounds) (int, error) {
	if !c.Valid() {
		return 0, fmt.Errorf("%w: %s %d", ErrContract, config.ErrUnknownComp, int(c))
	}
	if row < 0 || row >= g.RowCount(c) {
		return 0, fmt.Errorf("%w: %s: %s row %d", ErrContract, config.ErrRowRange, c, row)
	}
	if c == Era {
		return row, nil
	}
	return floorMod(row-g.InitialOffset, RealRowCount(c, b)), nil
}

// NearestCycleStart returns, relative to InitialOffset, the first row of the
// cycle holding row. Adding any real value to it stays within that cycle, so
// the wheel moves by less than one cycle when re-selected.
func (g Geometry) NearestCycleStart(row int, c Component, b YearBounds) int {
	n := RealRowCount(c, b)
	if n == 0 {
		return 0
	}
	delta := row - g.InitialOffset
	cycles := abs(delta) / n
	if delta >= 0 {
		return cycles * n
	}
	if abs(delta)%n == 0 {
		return -cycles * n
	}
	return -(cycles + 1) * n
}

// AbsoluteRow is the row of value on a freshly centred wheel.
func (g Geometry) AbsoluteRow(value int, c Component) int {
	if c == Era {
		return value
	}
	return g.InitialOffset + value
}

// AnchoredRow is the row of value within the cycle currently holding row.
// ok is false when that row would leave the row space, in which case the
// caller should fall back to AbsoluteRow.
func (g Geometry) AnchoredRow(row, value int, c Component, b YearBounds) (int, bool) {
	if c == Era {
		return value, true
	}
	anchored := g.InitialOffset + g.NearestCycleStart(row, c, b) + value
	if anchored < 0 || anchored >= g.TotalRows {
		return 0, false
	}
	return anchored, true
}

// floorMod is the mathematical modulo: always in [0, n).
func floorMod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
