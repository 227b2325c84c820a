package board

import (
	"fmt"
	"strconv"
)

// MaxColumns is the widest grid the single-letter column scheme can address.
const MaxColumns = 26

// ColumnLetter maps a zero-based column index to its header letter (0 -> "A").
// Columns beyond MaxColumns have no letter and cause a panic.
func ColumnLetter(col int) string {
	if col < 0 || col >= MaxColumns {
		panic(fmt.Sprintf("board: column index %d outside [0,%d)", col, MaxColumns))
	}
	return string(rune('A' + col))
}

// Label returns the identifier of the interactive cell at the given column
// (zero-based) and row (one-based), e.g. Label(2, 3) == "C3".
func Label(col, row int) string {
	return ColumnLetter(col) + strconv.Itoa(row)
}

// ParseLabel is the inverse of Label.
func ParseLabel(id string) (col, row int, ok bool) {
	if len(id) < 2 {
		return 0, 0, false
	}
	letter := id[0]
	if letter < 'A' || letter > 'Z' {
		return 0, 0, false
	}
	digits := id[1:]
	if digits[0] == '0' || digits[0] == '+' || digits[0] == '-' {
		return 0, 0, false
	}
	row, err := strconv.Atoi(digits)
	if err != nil || row < 1 {
		return 0, 0, false
	}
	return int(letter - 'A'), row, true
}
