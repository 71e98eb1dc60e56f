// Package shape groups hex coordinates into a set that can be translated,
// rotated, reflected and scaled as a unit.
package shape

import (
	"encoding/binary"
	"sort"

	"github.com/cespare/xxhash/v2"

	"github.com/gravitas-015/hexcore/hex"
)

// Shape is a set of coordinates. Duplicates collapse. Operations return new
// shapes and leave their receivers untouched; only Add mutates.
type Shape struct {
	cells map[hex.Axial]struct{}
}

// New builds a shape from explicit coordinates.
func New(coords ...hex.Axial) *Shape {
	s := &Shape{cells: make(map[hex.Axial]struct{}, len(coords))}
	for _, c := range coords {
		s.cells[c] = struct{}{}
	}
	return s
}

// Add inserts coordinates into s.
func (s *Shape) Add(coords ...hex.Axial) {
	if s.cells == nil {
		s.cells = make(map[hex.Axial]struct{}, len(coords))
	}
	for _, c := range coords {
		s.cells[c] = struct{}{}
	}
}

// Len returns the number of members.
func (s *Shape) Len() int {
	if s == nil {
		return 0
	}
	return len(s.cells)
}

// Contains reports membership.
func (s *Shape) Contains(c hex.Axial) bool {
	if s == nil {
		return false
	}
	_, ok := s.cells[c]
	return ok
}

// Coords returns the members sorted by (q, r).
func (s *Shape) Coords() []hex.Axial {
	res := make([]hex.Axial, 0, s.Len())
	if s != nil {
		for c := range s.cells {
			res = append(res, c)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Less(res[j]) })
	return res
}

// Clone returns an independent copy.
func (s *Shape) Clone() *Shape {
	out := &Shape{cells: make(map[hex.Axial]struct{}, s.Len())}
	if s != nil {
		for c := range s.cells {
			out.cells[c] = struct{}{}
		}
	}
	return out
}

// Equal reports whether both shapes hold the same coordinates.
func (s *Shape) Equal(o *Shape) bool {
	if s.Len() != o.Len() {
		return false
	}
	for _, c := range s.Coords() {
		if !o.Contains(c) {
			return false
		}
	}
	return true
}

// Map applies fn to every member and collects the results.
func (s *Shape) Map(fn func(hex.Axial) hex.Axial) *Shape {
	out := &Shape{cells: make(map[hex.Axial]struct{}, s.Len())}
	if s != nil {
		for c := range s.cells {
			out.cells[fn(c)] = struct{}{}
		}
	}
	return out
}

// Boundary returns the members with at least one neighbor outside s.
func (s *Shape) Boundary() *Shape {
	out := New()
	if s == nil {
		return out
	}
	for c := range s.cells {
		for _, n := range c.Neighbors() {
			if !s.Contains(n) {
				out.cells[c] = struct{}{}
				break
			}
		}
	}
	return out
}

// Interior returns the members whose six neighbors are all members.
func (s *Shape) Interior() *Shape {
	return s.Difference(s.Boundary())
}

// Bounds is the tightest system of inequalities qMin <= q <= qMax (and the
// same for r and s) containing a set of coordinates.
type Bounds struct {
	QMin, QMax int
	RMin, RMax int
	SMin, SMax int
}

// BoundsOf computes the bounds of coords. ok is false for an empty input.
func BoundsOf(coords []hex.Axial) (b Bounds, ok bool) {
	if len(coords) == 0 {
		return Bounds{}, false
	}
	c0 := coords[0]
	b = Bounds{c0.Q, c0.Q, c0.R, c0.R, c0.S(), c0.S()}
	for _, c := range coords[1:] {
		b.QMin, b.QMax = min(b.QMin, c.Q), max(b.QMax, c.Q)
		b.RMin, b.RMax = min(b.RMin, c.R), max(b.RMax, c.R)
		b.SMin, b.SMax = min(b.SMin, c.S()), max(b.SMax, c.S())
	}
	return b, true
}

// Contains reports whether c satisfies all six inequalities.
func (b Bounds) Contains(c hex.Axial) bool {
	s := c.S()
	return c.Q >= b.QMin && c.Q <= b.QMax &&
		c.R >= b.RMin && c.R <= b.RMax &&
		s >= b.SMin && s <= b.SMax
}

// Solve enumerates every coordinate inside b.
func (b Bounds) Solve() []hex.Axial {
	var res []hex.Axial
	for q := b.QMin; q <= b.QMax; q++ {
		for r := max(b.RMin, -q-b.SMax); r <= min(b.RMax, -q-b.SMin); r++ {
			res = append(res, hex.Axial{Q: q, R: r})
		}
	}
	return res
}

// Bounds derives the shape's bounds; ok is false when s is empty.
func (s *Shape) Bounds() (Bounds, bool) { return BoundsOf(s.Coords()) }

// Centroid returns the mean position of the members in fractional cube
// space. An empty shape has its centroid at the origin.
func (s *Shape) Centroid() hex.FractionalHex {
	var f hex.FractionalHex
	n := s.Len()
	if n == 0 {
		return f
	}
	for _, c := range s.Coords() {
		f = f.Add(c.Fractional())
	}
	return f.Scale(1 / float64(n))
}

// Fingerprint hashes the sorted members. Equal shapes share a fingerprint.
func (s *Shape) Fingerprint() uint64 {
	d := xxhash.New()
	var buf [16]byte
	for _, c := range s.Coords() {
		binary.LittleEndian.PutUint64(buf[:8], uint64(int64(c.Q)))
		binary.LittleEndian.PutUint64(buf[8:], uint64(int64(c.R)))
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}

// Union returns the members of either shape.
func (s *Shape) Union(o *Shape) *Shape {
	out := s.Clone()
	if o != nil {
		for c := range o.cells {
			out.cells[c] = struct{}{}
		}
	}
	return out
}

// Intersect returns the members of both shapes.
func (s *Shape) Intersect(o *Shape) *Shape {
	out := New()
	if s == nil {
		return out
	}
	for c := range s.cells {
		if o.Contains(c) {
			out.cells[c] = struct{}{}
		}
	}
	return out
}

// Difference returns the members of s that are not in o.
func (s *Shape) Difference(o *Shape) *Shape {
	out := New()
	if s == nil {
		return out
	}
	for c := range s.cells {
		if !o.Contains(c) {
			out.cells[c] = struct{}{}
		}
	}
	return out
}

// SymmetricDifference returns the members of exactly one shape.
func (s *Shape) SymmetricDifference(o *Shape) *Shape {
	return s.Difference(o).Union(o.Difference(s))
}

// Distances returns the sorted multiset of pairwise distances, a cheap
// congruence check between shapes.
func (s *Shape) Distances() []int {
	cs := s.Coords()
	res := make([]int, 0, len(cs)*(len(cs)-1)/2)
	for i := range cs {
		for j := i + 1; j < len(cs); j++ {
			res = append(res, hex.Distance(cs[i], cs[j]))
		}
	}
	sort.Ints(res)
	return res
}
