// Package hex implements coordinate algebra for hexagonal grids: axial, cube
// and offset forms, distance, rings, lines, rotation and pixel mapping.
package hex

import (
	"errors"
	"fmt"

	"github.com/gravitas-015/hexcore/internal/num"
)

// ErrInvalidCoordinate is returned when cube components do not sum to zero.
var ErrInvalidCoordinate = errors.New("hex: cube components must sum to zero")

// Axial represents axial coordinates (q, r). The third cube component is
// implied: s = -q - r.
type Axial struct {
	Q int `json:"q" yaml:"q"`
	R int `json:"r" yaml:"r"`
}

// Cube represents cube coordinates (x, y, z) with x+y+z=0.
// X carries q, Z carries r and Y carries s.
type Cube struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
	Z int `json:"z" yaml:"z"`
}

// Origin is the axial coordinate (0, 0).
var Origin = Axial{}

// NewAxial builds an axial coordinate. Every (q, r) pair is valid.
func NewAxial(q, r int) Axial { return Axial{Q: q, R: r} }

// NewCube validates the zero-sum invariant.
func NewCube(x, y, z int) (Cube, error) {
	if x+y+z != 0 {
		return Cube{}, fmt.Errorf("%w: (%d, %d, %d)", ErrInvalidCoordinate, x, y, z)
	}
	return Cube{X: x, Y: y, Z: z}, nil
}

// Valid reports whether the cube components sum to zero.
func (c Cube) Valid() bool { return c.X+c.Y+c.Z == 0 }

// S returns the implied third component.
func (a Axial) S() int { return -a.Q - a.R }

// Add returns a+b in axial space.
func (a Axial) Add(b Axial) Axial { return Axial{a.Q + b.Q, a.R + b.R} }

// Sub returns a-b in axial space.
func (a Axial) Sub(b Axial) Axial { return Axial{a.Q - b.Q, a.R - b.R} }

// Mul scales an axial vector by k.
func (a Axial) Mul(k int) Axial { return Axial{a.Q * k, a.R * k} }

// Neg returns -a.
func (a Axial) Neg() Axial { return Axial{-a.Q, -a.R} }

// ToCube converts axial to cube.
func (a Axial) ToCube() Cube {
	x := a.Q
	z := a.R
	y := -x - z
	return Cube{X: x, Y: y, Z: z}
}

// ToAxial converts cube to axial.
func (c Cube) ToAxial() Axial { return Axial{Q: c.X, R: c.Z} }

// Compare orders coordinates by q, then r.
func (a Axial) Compare(b Axial) int {
	switch {
	case a.Q < b.Q:
		return -1
	case a.Q > b.Q:
		return 1
	case a.R < b.R:
		return -1
	case a.R > b.R:
		return 1
	}
	return 0
}

// Less reports whether a sorts before b.
func (a Axial) Less(b Axial) bool { return a.Compare(b) < 0 }

func (a Axial) String() string { return fmt.Sprintf("(%d, %d)", a.Q, a.R) }

func (c Cube) String() string { return fmt.Sprintf("(%d, %d, %d)", c.X, c.Y, c.Z) }

// Distance returns the number of unit steps between a and b.
func Distance(a, b Axial) int { return DistanceAxial(a, b) }

// DistanceAxial returns hex distance between two axial coords.
func DistanceAxial(a, b Axial) int {
	return DistanceCube(a.ToCube(), b.ToCube())
}

// DistanceCube returns hex distance between two cube coords.
func DistanceCube(a, b Cube) int {
	dx := num.AbsInt(a.X - b.X)
	dy := num.AbsInt(a.Y - b.Y)
	dz := num.AbsInt(a.Z - b.Z)
	return (dx + dy + dz) / 2
}

// Length is the distance from the origin.
func (a Axial) Length() int { return DistanceAxial(Origin, a) }
