package shape

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gravitas-015/hexcore/hex"
)

var (
	ErrUnknownStamp = errors.New("unknown stamp")
	ErrNegativeSize = errors.New("negative stamp size")
)

// FromIter drains it into a new shape. The iterator is reset first so a
// partially consumed iterator still contributes every coordinate.
func FromIter(it hex.Iterator) *Shape { return New(hex.Collect(it)...) }

// FromRing builds the ring of the given radius around center.
func FromRing(center hex.Axial, radius int) *Shape { return FromIter(hex.Ring(center, radius)) }

// FromSpiral builds every coordinate within radius of center.
func FromSpiral(center hex.Axial, radius int) *Shape { return FromIter(hex.Spiral(center, radius)) }

// FromLine builds the line from a to b inclusive.
func FromLine(a, b hex.Axial) *Shape { return FromIter(hex.Line(a, b)) }

// Hexagon is the filled hexagon of the given radius, 1+3r(r+1) cells.
func Hexagon(center hex.Axial, radius int) *Shape { return New(hex.Disk(center, radius)...) }

// Rectangle is w columns by h rows in pointy-top layout, anchored at the
// origin. Odd rows are shifted so the outline stays rectangular on screen.
func Rectangle(w, h int) *Shape {
	s := New()
	for r := 0; r < h; r++ {
		off := r >> 1
		for q := -off; q < w-off; q++ {
			s.cells[hex.Axial{Q: q, R: r}] = struct{}{}
		}
	}
	return s
}

// Parallelogram spans q in [0, w) and r in [0, h).
func Parallelogram(w, h int) *Shape {
	s := New()
	for q := 0; q < w; q++ {
		for r := 0; r < h; r++ {
			s.cells[hex.Axial{Q: q, R: r}] = struct{}{}
		}
	}
	return s
}

// Fill returns every coordinate inside the q/r/s bounds spanned by points.
// Points strictly inside the bounds do not change the result.
func Fill(points ...hex.Axial) *Shape {
	b, ok := BoundsOf(points)
	if !ok {
		return New()
	}
	return New(b.Solve()...)
}

// Triangle has its corner at the origin and sides of size+1 cells running
// along directions 0 and 1.
func Triangle(size int) *Shape {
	a := hex.Origin
	return Fill(a, a.Add(hex.Directions[0].Mul(size)), a.Add(hex.Directions[1].Mul(size)))
}

// Rhombus has sides of size+1 cells running along directions rot and rot+1.
func Rhombus(size int, rot hex.Direction) *Shape {
	a := hex.Origin
	b := a.Add(rot.Vector().Mul(size))
	c := a.Add((rot + 1).Vector().Mul(size))
	d := b.Add((rot + 1).Vector().Mul(size))
	return Fill(a, b, c, d)
}

// StampKind names a generator usable from configuration.
type StampKind string

const (
	StampHexagon       StampKind = "hexagon"
	StampRectangle     StampKind = "rectangle"
	StampParallelogram StampKind = "parallelogram"
	StampTriangle      StampKind = "triangle"
	StampRhombus       StampKind = "rhombus"
	StampRing          StampKind = "ring"
	StampLine          StampKind = "line"
)

// StampKinds lists every kind Stamp accepts.
var StampKinds = []StampKind{
	StampHexagon, StampRectangle, StampParallelogram,
	StampTriangle, StampRhombus, StampRing, StampLine,
}

// Stamp builds a shape of the given kind anchored at the origin. Rectangles
// and parallelograms are size by size.
func Stamp(kind StampKind, size int) (*Shape, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeSize, size)
	}
	switch StampKind(strings.ToLower(string(kind))) {
	case StampHexagon:
		return Hexagon(hex.Origin, size), nil
	case StampRectangle:
		return Rectangle(size, size), nil
	case StampParallelogram:
		return Parallelogram(size, size), nil
	case StampTriangle:
		return Triangle(size), nil
	case StampRhombus:
		return Rhombus(size, 0), nil
	case StampRing:
		return FromRing(hex.Origin, size), nil
	case StampLine:
		return FromLine(hex.Origin, hex.Directions[0].Mul(size)), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStamp, string(kind))
}
