// Package hexcore is a geometry toolkit for hexagonal grids. The hex package
// holds the coordinate algebra, shape groups coordinates into transformable
// sets and store defines how application containers hold per-cell data.
package hexcore

import "fmt"

// CellState is what a stamping pass records for a single cell.
type CellState int

const (
	Empty    CellState = 0
	Interior CellState = 1
	Boundary CellState = 2
)

var cellStateNames = map[CellState]string{
	Empty:    "empty",
	Interior: "interior",
	Boundary: "boundary",
}

func (s CellState) String() string {
	if name, ok := cellStateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("CellState(%d)", int(s))
}

func (s CellState) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *CellState) UnmarshalText(b []byte) error {
	for st, name := range cellStateNames {
		if name == string(b) {
			*s = st
			return nil
		}
	}
	return fmt.Errorf("unknown cell state %q", string(b))
}
