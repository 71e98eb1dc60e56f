// Package store defines the contract application-owned containers satisfy
// to hold data keyed by hex cell, edge or vertex, and the algorithms that
// work against that contract without knowing the container.
package store

import (
	"errors"
	"fmt"

	"github.com/gravitas-015/hexcore/hex"
	"github.com/gravitas-015/hexcore/shape"
)

// ErrAbsentEntry is returned by lookups that find no value. It is an
// expected outcome, not a failure of the store.
var ErrAbsentEntry = errors.New("store: absent entry")

// ErrInvalidVertex is returned for a vertex whose corner kind no hex owns.
var ErrInvalidVertex = errors.New("store: invalid vertex")

// vertexKey rejects vertices that cannot name a lattice corner.
func vertexKey(v hex.Vertex) (hex.Vertex, error) {
	if !v.Valid() {
		return v, fmt.Errorf("%w: %v", ErrInvalidVertex, v)
	}
	return v, nil
}

// Cells associates values with cell coordinates. Get of a missing cell
// returns ErrAbsentEntry; Remove of a missing cell is not an error.
type Cells[V any] interface {
	Get(c hex.Axial) (V, error)
	Set(c hex.Axial, v V) error
	Remove(c hex.Axial) error
}

// Edges associates values with the sides between cells. Implementations key
// on Edge.Canonical, so every Edge naming a side reaches the same entry.
type Edges[V any] interface {
	GetEdge(e hex.Edge) (V, error)
	SetEdge(e hex.Edge, v V) error
	RemoveEdge(e hex.Edge) error
}

// Vertices associates values with the corners where three cells meet.
// Vertices that are not Valid are rejected with ErrInvalidVertex.
type Vertices[V any] interface {
	GetVertex(v hex.Vertex) (V, error)
	SetVertex(v hex.Vertex, val V) error
	RemoveVertex(v hex.Vertex) error
}

// IsAbsent reports whether err signals a missing entry.
func IsAbsent(err error) bool { return errors.Is(err, ErrAbsentEntry) }

// Stamp writes fn(c) for every member of s, in sorted order.
func Stamp[V any](dst Cells[V], s *shape.Shape, fn func(hex.Axial) V) error {
	for _, c := range s.Coords() {
		if err := dst.Set(c, fn(c)); err != nil {
			return fmt.Errorf("stamp %v: %w", c, err)
		}
	}
	return nil
}

// Fill writes v into every member of s.
func Fill[V any](dst Cells[V], s *shape.Shape, v V) error {
	return Stamp(dst, s, func(hex.Axial) V { return v })
}

// Collect reads every member of s that has a value.
func Collect[V any](src Cells[V], s *shape.Shape) (map[hex.Axial]V, error) {
	out := make(map[hex.Axial]V, s.Len())
	for _, c := range s.Coords() {
		v, err := src.Get(c)
		if IsAbsent(err) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("collect %v: %w", c, err)
		}
		out[c] = v
	}
	return out, nil
}

// Present returns the members of s that have a value in src.
func Present[V any](src Cells[V], s *shape.Shape) (*shape.Shape, error) {
	out := shape.New()
	for _, c := range s.Coords() {
		_, err := src.Get(c)
		if IsAbsent(err) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("present %v: %w", c, err)
		}
		out.Add(c)
	}
	return out, nil
}

// Erase removes every member of s from dst.
func Erase[V any](dst Cells[V], s *shape.Shape) error {
	for _, c := range s.Coords() {
		if err := dst.Remove(c); err != nil {
			return fmt.Errorf("erase %v: %w", c, err)
		}
	}
	return nil
}

// FloodFill spreads value outward from seed over the six neighbors. A cell
// is overwritten when pred(cell value, seed value) holds; absent cells and
// cells failing pred stop the spread. It returns the filled region. An
// absent seed yields ErrAbsentEntry.
func FloodFill[V any](st Cells[V], seed hex.Axial, value V, pred func(cell, target V) bool) (*shape.Shape, error) {
	target, err := st.Get(seed)
	if err != nil {
		return nil, fmt.Errorf("flood fill seed %v: %w", seed, err)
	}

	filled := shape.New()
	seen := map[hex.Axial]bool{seed: true}
	queue := []hex.Axial{seed}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		v, err := st.Get(cur)
		if IsAbsent(err) {
			continue
		}
		if err != nil {
			return filled, fmt.Errorf("flood fill %v: %w", cur, err)
		}
		if !pred(v, target) {
			continue
		}
		if err := st.Set(cur, value); err != nil {
			return filled, fmt.Errorf("flood fill %v: %w", cur, err)
		}
		filled.Add(cur)

		for _, nb := range cur.Neighbors() {
			if !seen[nb] {
				seen[nb] = true
				queue = append(queue, nb)
			}
		}
	}
	return filled, nil
}

// Outline writes v on every edge between a member of s and a non-member.
// It returns the number of edges written.
func Outline[V any](dst Edges[V], s *shape.Shape, v V) (int, error) {
	n := 0
	for _, c := range s.Boundary().Coords() {
		for d := hex.Direction(0); d < 6; d++ {
			if s.Contains(c.Neighbor(d)) {
				continue
			}
			e := hex.EdgeOf(c, d)
			if err := dst.SetEdge(e, v); err != nil {
				return n, fmt.Errorf("outline %v: %w", e, err)
			}
			n++
		}
	}
	return n, nil
}

// Corners writes v on every vertex touching both a member of s and a
// non-member, the polygon corners of the shape's outline. It returns the
// number of vertices written.
func Corners[V any](dst Vertices[V], s *shape.Shape, v V) (int, error) {
	seen := map[hex.Vertex]bool{}
	n := 0
	for _, c := range s.Boundary().Coords() {
		for _, vx := range c.Vertices() {
			if seen[vx] {
				continue
			}
			seen[vx] = true
			hs := vx.Hexes()
			if s.Contains(hs[0]) && s.Contains(hs[1]) && s.Contains(hs[2]) {
				continue
			}
			if err := dst.SetVertex(vx, v); err != nil {
				return n, fmt.Errorf("corners %v: %w", vx, err)
			}
			n++
		}
	}
	return n, nil
}
