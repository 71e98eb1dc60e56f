package hex

import (
	"fmt"
	"strings"
)

// Axis is one of the three principal axes of symmetry.
type Axis int

const (
	AxisQ Axis = iota
	AxisR
	AxisS
)

func (x Axis) String() string {
	switch x {
	case AxisQ:
		return "q"
	case AxisR:
		return "r"
	case AxisS:
		return "s"
	}
	return fmt.Sprintf("Axis(%d)", int(x))
}

// Valid reports whether x is one of AxisQ, AxisR or AxisS.
func (x Axis) Valid() bool { return x >= AxisQ && x <= AxisS }

// rotations[k] maps (q, r, s) to the cube rotated clockwise by k steps on a
// y-down screen. One step turns Directions[d] into Directions[d-1].
var rotations = [6]func(q, r, s int) (int, int, int){
	func(q, r, s int) (int, int, int) { return q, r, s },
	func(q, r, s int) (int, int, int) { return -r, -s, -q },
	func(q, r, s int) (int, int, int) { return s, q, r },
	func(q, r, s int) (int, int, int) { return -q, -r, -s },
	func(q, r, s int) (int, int, int) { return r, s, q },
	func(q, r, s int) (int, int, int) { return -s, -q, -r },
}

// reflections keep the named component and swap the other two.
var reflections = [3]func(q, r, s int) (int, int, int){
	AxisQ: func(q, r, s int) (int, int, int) { return q, s, r },
	AxisR: func(q, r, s int) (int, int, int) { return s, r, q },
	AxisS: func(q, r, s int) (int, int, int) { return r, q, s },
}

// Rotate turns c clockwise by steps*60 degrees about center. Steps wrap mod 6
// and negative steps turn counter-clockwise.
func Rotate(c, center Axial, steps int) Axial {
	v := c.Sub(center)
	q, r, _ := rotations[Direction(steps).Norm()](v.Q, v.R, v.S())
	return Axial{q, r}.Add(center)
}

// Rotate turns a about the origin.
func (a Axial) Rotate(steps int) Axial { return Rotate(a, Origin, steps) }

// Reflect mirrors c across an axis through the origin.
func Reflect(c Axial, axis Axis) Axial { return ReflectAbout(c, Origin, axis) }

// ReflectAbout mirrors c across an axis through center. It panics if axis is
// not Valid.
func ReflectAbout(c, center Axial, axis Axis) Axial {
	if !axis.Valid() {
		panic(fmt.Sprintf("hex: reflect across unknown %v", axis))
	}
	v := c.Sub(center)
	q, r, _ := reflections[axis](v.Q, v.R, v.S())
	return Axial{q, r}.Add(center)
}

// ParseAxis accepts "q", "r" or "s" in any case.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "q":
		return AxisQ, nil
	case "r":
		return AxisR, nil
	case "s":
		return AxisS, nil
	}
	return AxisQ, fmt.Errorf("unknown axis %q", s)
}

func (x Axis) MarshalText() ([]byte, error) { return []byte(x.String()), nil }

func (x *Axis) UnmarshalText(b []byte) error {
	v, err := ParseAxis(string(b))
	if err != nil {
		return err
	}
	*x = v
	return nil
}
