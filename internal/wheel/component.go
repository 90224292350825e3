// Package wheel holds the pure arithmetic behind the five picker wheels:
// century/sub-century year splitting, year bounds and the cyclic row mapping
// that fakes infinite scrolling on finite wheels.
package wheel

import (
	"errors"
	"fmt"

	"github.com/tartampluch/go-datewheel/internal/config"
)

// Component identifies one of the picker wheels, in column order.
//
//	Day|Month|Cent|Subc|Era
//	-----------------------
//	 16|March|  13|74  |BC
type Component int

const (
	Day Component = iota
	Month
	Century
	SubCentury
	Era
)

// Count is the number of wheels of the picker.
const Count = 5

// All lists every wheel in column order.
var All = [Count]Component{Day, Month, Century, SubCentury, Era}

var componentNames = [Count]string{"day", "month", "century", "sub_century", "era"}

// ErrContract marks a call the shell should never have made: an unknown
// component or a row outside the wheel.
var ErrContract = errors.New(config.ErrContract)

// Valid reports whether c is one of the five wheels.
func (c Component) Valid() bool {
	return c >= Day && c <= Era
}

// Cyclic reports whether the wheel scrolls "infinitely". Only Era does not.
func (c Component) Cyclic() bool {
	return c.Valid() && c != Era
}

func (c Component) String() string {
	if !c.Valid() {
		return fmt.Sprintf("component(%d)", int(c))
	}
	return componentNames[c]
}

// YearBounds is the selectable year window. Negative years are BC.
type YearBounds struct {
	MinimumYear int
	MaximumYear int
}

// ErrInvalidBounds is returned for a window whose maximum is not above its
// minimum, or whose century wheel does not fit the row space.
var ErrInvalidBounds = errors.New(config.ErrInvalidBounds)

// DefaultYearBounds spans 9999 BC to 9999 AD.
func DefaultYearBounds() YearBounds {
	return YearBounds{MinimumYear: config.DefaultMinimumYear, MaximumYear: config.DefaultMaximumYear}
}

// Validate checks MaximumYear > MinimumYear.
func (b YearBounds) Validate() error {
	if b.MaximumYear <= b.MinimumYear {
		return fmt.Errorf("%w: %s (min %d, max %d)", ErrInvalidBounds, config.ErrBoundsOrder, b.MinimumYear, b.MaximumYear)
	}
	return nil
}

// LargestYear is the magnitude of the bound furthest from year zero.
func (b YearBounds) LargestYear() int {
	return max(abs(b.MinimumYear), abs(b.MaximumYear))
}
