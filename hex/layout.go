package hex

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gravitas-015/hexcore/internal/num"
)

// ErrInvalidLayout is returned for a non-positive or non-finite hex size or an
// unknown orientation.
var ErrInvalidLayout = errors.New("hex: invalid layout")

// Orientation selects pointy-top or flat-top hexagons.
type Orientation int

const (
	PointyTop Orientation = iota
	FlatTop
)

func (o Orientation) String() string {
	switch o {
	case PointyTop:
		return "pointy"
	case FlatTop:
		return "flat"
	}
	return fmt.Sprintf("Orientation(%d)", int(o))
}

// ParseOrientation accepts "pointy", "pointy-top", "flat" and "flat-top".
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pointy", "pointy-top", "pointy_top", "":
		return PointyTop, nil
	case "flat", "flat-top", "flat_top":
		return FlatTop, nil
	}
	return 0, fmt.Errorf("%w: orientation %q", ErrInvalidLayout, s)
}

// MarshalText implements encoding.TextMarshaler.
func (o Orientation) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Orientation) UnmarshalText(b []byte) error {
	v, err := ParseOrientation(string(b))
	if err != nil {
		return err
	}
	*o = v
	return nil
}

// Point is a position in pixel (world) space.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Layout maps between hex coordinates and pixel space. Size is the hex radius
// (corner to center) in pixels; Origin is the pixel center of (0, 0).
type Layout struct {
	Orientation Orientation
	Size        float64
	Origin      Point
}

// NewLayout validates size.
func NewLayout(o Orientation, size float64) (Layout, error) {
	l := Layout{Orientation: o, Size: size}
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// Validate checks the orientation and size.
func (l Layout) Validate() error {
	if l.Orientation != PointyTop && l.Orientation != FlatTop {
		return fmt.Errorf("%w: orientation %d", ErrInvalidLayout, int(l.Orientation))
	}
	if !num.Finite(l.Size) || l.Size <= 0 {
		return fmt.Errorf("%w: size %v must be positive", ErrInvalidLayout, l.Size)
	}
	return nil
}

// ToPixel returns the pixel center of a.
func (l Layout) ToPixel(a Axial) Point {
	q, r := float64(a.Q), float64(a.R)
	var x, y float64
	switch l.Orientation {
	case FlatTop:
		// flat-top: x = size*3/2*q; y = size*sqrt(3)*(q/2 + r)
		x = l.Size * 1.5 * q
		y = l.Size * num.Sqrt3 * (q/2.0 + r)
	default:
		// pointy-top: x = size*sqrt(3)*(q + r/2); y = size*3/2*r
		x = l.Size * num.Sqrt3 * (q + r/2.0)
		y = l.Size * 1.5 * r
	}
	return Point{X: x + l.Origin.X, Y: y + l.Origin.Y}
}

// FractionalFromPixel inverts ToPixel without rounding.
func (l Layout) FractionalFromPixel(p Point) FractionalHex {
	x := (p.X - l.Origin.X) / l.Size
	y := (p.Y - l.Origin.Y) / l.Size
	var q, r float64
	switch l.Orientation {
	case FlatTop:
		q = 2.0 / 3.0 * x
		r = -1.0/3.0*x + num.Sqrt3/3.0*y
	default:
		q = num.Sqrt3/3.0*x - 1.0/3.0*y
		r = 2.0 / 3.0 * y
	}
	return FractionalHex{Q: q, R: r, S: -q - r}
}

// FromPixel returns the hex containing p.
func (l Layout) FromPixel(p Point) Axial {
	return l.FractionalFromPixel(p).Round()
}

// Corners returns the six polygon corners of a, clockwise in screen space
// starting from the corner at angle 0 (flat) or -30 degrees (pointy).
func (l Layout) Corners(a Axial) [6]Point {
	c := l.ToPixel(a)
	start := -30.0
	if l.Orientation == FlatTop {
		start = 0
	}
	var pts [6]Point
	for i := range pts {
		sin, cos := num.Sincos((start + 60*float64(i)) * num.Pi / 180)
		pts[i] = Point{X: c.X + l.Size*cos, Y: c.Y + l.Size*sin}
	}
	return pts
}

// AxialToPixel converts axial to pixel coordinates for pointy-top layout.
// size is the hex radius (corner to center) in pixels.
func AxialToPixel(a Axial, size float64) (x, y float64) {
	p := Layout{Orientation: PointyTop, Size: size}.ToPixel(a)
	return p.X, p.Y
}
