package hex

import "fmt"

// Edge is the side shared by Hex and Hex.Neighbor(Dir). Dir is always 0, 1 or
// 2, so every side of the lattice has exactly one Edge value; build edges
// with EdgeOf.
type Edge struct {
	Hex Axial     `json:"hex" yaml:"hex"`
	Dir Direction `json:"dir" yaml:"dir"`
}

// EdgeOf returns the canonical edge on side d of h.
func EdgeOf(h Axial, d Direction) Edge {
	d = d.Norm()
	if d < 3 {
		return Edge{Hex: h, Dir: d}
	}
	return Edge{Hex: h.Neighbor(d), Dir: d - 3}
}

// SharedEdge returns the edge between two neighbors.
func SharedEdge(a, b Axial) (Edge, bool) {
	d, ok := a.DirectionTo(b)
	if !ok {
		return Edge{}, false
	}
	return EdgeOf(a, d), true
}

// Edges returns the six sides of a in direction order.
func (a Axial) Edges() [6]Edge {
	var es [6]Edge
	for d := range es {
		es[d] = EdgeOf(a, Direction(d))
	}
	return es
}

// Hexes returns the two cells sharing e.
func (e Edge) Hexes() [2]Axial {
	return [2]Axial{e.Hex, e.Hex.Neighbor(e.Dir)}
}

// Endpoints returns the two corners of e.
func (e Edge) Endpoints() [2]Vertex {
	return [2]Vertex{CornerOf(e.Hex, e.Dir-1), CornerOf(e.Hex, e.Dir)}
}

// Canonical returns the Edge value naming the same side as e, folding any
// Dir onto 0..2.
func (e Edge) Canonical() Edge { return EdgeOf(e.Hex, e.Dir) }

// Adjacent returns the four edges sharing an endpoint with e.
func (e Edge) Adjacent() []Edge {
	res := make([]Edge, 0, 4)
	for _, v := range e.Endpoints() {
		for _, o := range v.Edges() {
			if o != e {
				res = append(res, o)
			}
		}
	}
	return res
}

func (e Edge) String() string { return fmt.Sprintf("%v|%d", e.Hex, int(e.Dir)) }

// VertexKind distinguishes the two corners each hex owns. Names describe a
// pointy-top layout.
type VertexKind int

const (
	// RightCorner is shared with the neighbors in directions 0 and 1.
	RightCorner VertexKind = iota
	// TopCorner is shared with the neighbors in directions 1 and 2.
	TopCorner
)

// Vertex is a lattice corner, touched by three mutually adjacent hexes. Build
// vertices with CornerOf.
type Vertex struct {
	Hex    Axial      `json:"hex" yaml:"hex"`
	Corner VertexKind `json:"corner" yaml:"corner"`
}

// Valid reports whether v names one of the two corners a hex owns.
func (v Vertex) Valid() bool { return v.Corner == RightCorner || v.Corner == TopCorner }

// cornerOwners maps the corner between directions d and d+1 of a hex to the
// hex owning it and that owner's corner kind.
var cornerOwners = [6]Vertex{
	{Axial{0, 0}, RightCorner},
	{Axial{0, 0}, TopCorner},
	{Axial{-1, 0}, RightCorner},
	{Axial{-1, 1}, TopCorner},
	{Axial{-1, 1}, RightCorner},
	{Axial{0, 1}, TopCorner},
}

// CornerOf returns the corner of h between directions d and d+1.
func CornerOf(h Axial, d Direction) Vertex {
	o := cornerOwners[d.Norm()]
	return Vertex{Hex: h.Add(o.Hex), Corner: o.Corner}
}

// SharedVertex returns the corner touched by three mutually adjacent hexes.
func SharedVertex(a, b, c Axial) (Vertex, bool) {
	d, ok := a.DirectionTo(b)
	if !ok || !a.IsNeighbor(c) || !b.IsNeighbor(c) {
		return Vertex{}, false
	}
	for _, v := range [2]Vertex{CornerOf(a, d), CornerOf(a, d-1)} {
		for _, h := range v.Hexes() {
			if h == c {
				return v, true
			}
		}
	}
	return Vertex{}, false
}

// Vertices returns the six corners of a, corner d lying between directions d
// and d+1.
func (a Axial) Vertices() [6]Vertex {
	var vs [6]Vertex
	for d := range vs {
		vs[d] = CornerOf(a, Direction(d))
	}
	return vs
}

// Hexes returns the three cells touching v.
func (v Vertex) Hexes() [3]Axial {
	if v.Corner == TopCorner {
		return [3]Axial{v.Hex, v.Hex.Neighbor(1), v.Hex.Neighbor(2)}
	}
	return [3]Axial{v.Hex, v.Hex.Neighbor(0), v.Hex.Neighbor(1)}
}

// Edges returns the three edges meeting at v.
func (v Vertex) Edges() [3]Edge {
	h := v.Hexes()
	var es [3]Edge
	for i := range es {
		es[i], _ = SharedEdge(h[i], h[(i+1)%3])
	}
	return es
}

// Adjacent returns the three corners one edge away from v.
func (v Vertex) Adjacent() [3]Vertex {
	var vs [3]Vertex
	for i, e := range v.Edges() {
		ends := e.Endpoints()
		vs[i] = ends[0]
		if ends[0] == v {
			vs[i] = ends[1]
		}
	}
	return vs
}

func (v Vertex) String() string { return fmt.Sprintf("%v^%d", v.Hex, int(v.Corner)) }
