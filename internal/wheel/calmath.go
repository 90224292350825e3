package wheel

import "github.com/tartampluch/go-datewheel/internal/config"

// CenturyOf returns the century wheel value of a year, ignoring its sign.
func CenturyOf(year int) int {
	return abs(year) / config.YearsPerCentury
}

// SubCenturyOf returns the year within its century (0..99), ignoring its sign.
func SubCenturyOf(year int) int {
	return abs(abs(year) - CenturyOf(year)*config.YearsPerCentury)
}

// YearFrom recombines the century and sub-century wheel values into a year.
// YearFrom(CenturyOf(y), SubCenturyOf(y)) == |y| for every y.
func YearFrom(century, subCentury int) int {
	return century*config.YearsPerCentury + subCentury
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
