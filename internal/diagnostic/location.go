package diagnostic

import (
	"fmt"
	"strconv"
)

// Location is a position in an input file. Line and Column are 1-based;
// zero means unknown.
type Location struct {
	File   string
	Line   int
	Column int
}

// IsZero reports whether no position information is available.
func (l Location) IsZero() bool {
	return l.File == "" && l.Line == 0
}

// Shift returns the location moved by n columns on the same line.
func (l Location) Shift(n int) Location {
	if l.Line == 0 {
		return l
	}

	l.Column += n

	return l
}

// String formats the location as file:line:col, omitting unknown parts.
func (l Location) String() string {
	file := l.File
	if file == "" {
		file = "<input>"
	}

	if l.Line == 0 {
		return file
	}

	if l.Column == 0 {
		return file + ":" + strconv.Itoa(l.Line)
	}

	return fmt.Sprintf("%s:%d:%d", file, l.Line, l.Column)
}
