package hex

// Direction indexes Directions. Values outside 0..5 wrap.
type Direction int

// Directions for axial neighbors, in ring-walk order. Rotating clockwise by
// one step turns Directions[d] into Directions[d-1].
var Directions = [6]Axial{
	{+1, 0}, {+1, -1}, {0, -1}, {-1, 0}, {-1, +1}, {0, +1},
}

// Norm wraps d into 0..5.
func (d Direction) Norm() Direction {
	d %= 6
	if d < 0 {
		d += 6
	}
	return d
}

// Opposite is the direction rotated by three steps.
func (d Direction) Opposite() Direction { return (d + 3).Norm() }

// Vector returns the unit vector for d.
func (d Direction) Vector() Axial { return Directions[d.Norm()] }

// Neighbor returns the coordinate one step from c in direction d.
func Neighbor(c Axial, d Direction) Axial { return c.Add(d.Vector()) }

// Neighbor returns the coordinate one step away in direction d.
func (a Axial) Neighbor(d Direction) Axial { return Neighbor(a, d) }

// Neighbors returns all six neighbors in direction order.
func (a Axial) Neighbors() [6]Axial {
	var ns [6]Axial
	for i, d := range Directions {
		ns[i] = a.Add(d)
	}
	return ns
}

// DirectionTo returns the direction leading from a to b when they are
// neighbors.
func (a Axial) DirectionTo(b Axial) (Direction, bool) {
	v := b.Sub(a)
	for i, d := range Directions {
		if d == v {
			return Direction(i), true
		}
	}
	return 0, false
}

// IsNeighbor reports whether b is adjacent to a.
func (a Axial) IsNeighbor(b Axial) bool {
	_, ok := a.DirectionTo(b)
	return ok
}
