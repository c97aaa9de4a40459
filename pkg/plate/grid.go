// Package plate defines the immutable 384-well plate geometry, the
// chemistry catalog, and the value types produced by plan computation.
// It must not import any internal packages.
package plate

import (
	"fmt"
	"strconv"
	"strings"
)

// Fixed geometry of a 384-well assay plate.
const (
	RowCount      = 16
	ColumnCount   = 24
	WellsPerPlate = RowCount * ColumnCount
)

// rowLetters holds the sixteen row identifiers in plate order.
const rowLetters = "ABCDEFGHIJKLMNOP"

// RowLetter returns the identifier of the zero-based row index, "A" through "P".
func RowLetter(row int) string {
	if row < 0 || row >= RowCount {
		return ""
	}
	return string(rowLetters[row])
}

// WellID formats a zero-based (row, column) pair as the conventional well
// label, e.g. (0,0) -> "A1" and (15,23) -> "P24".
func WellID(row, column int) string {
	return fmt.Sprintf("%s%d", RowLetter(row), column+1)
}

// PlateID formats a 1-based plate number as its display identifier.
func PlateID(n int) string {
	return fmt.Sprintf("Plate %d", n)
}

// PlateNumber parses the numeric suffix of a plate identifier produced by
// PlateID. Unparseable identifiers sort first as zero.
func PlateNumber(id string) int {
	fields := strings.Fields(id)
	if len(fields) == 0 {
		return 0
	}
	n, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return 0
	}
	return n
}
