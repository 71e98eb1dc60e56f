package hex

// Iterator is a finite, restartable walk over coordinates.
//
//	it := hex.Ring(center, 2)
//	for it.Next() {
//	    use(it.Coord())
//	}
type Iterator interface {
	Next() bool
	Coord() Axial
	Reset()
}

// Collect drains it from the start into a slice.
func Collect(it Iterator) []Axial {
	it.Reset()
	var res []Axial
	if l, ok := it.(interface{ Len() int }); ok {
		res = make([]Axial, 0, l.Len())
	}
	for it.Next() {
		res = append(res, it.Coord())
	}
	return res
}

// RingIter walks the cells at exact distance Radius from Center.
type RingIter struct {
	center Axial
	radius int
	i      int
	cur    Axial
}

// Ring returns the coordinates at exact distance k from center c, starting
// from c + Directions[4]*k and walking the six sides in direction order.
// If k==0, yields only c. Negative k yields nothing.
func Ring(c Axial, k int) *RingIter {
	return &RingIter{center: c, radius: k}
}

// Len is the number of coordinates the ring yields.
func (it *RingIter) Len() int {
	switch {
	case it.radius < 0:
		return 0
	case it.radius == 0:
		return 1
	}
	return 6 * it.radius
}

func (it *RingIter) Next() bool {
	if it.i >= it.Len() {
		return false
	}
	switch {
	case it.i == 0:
		it.cur = it.center.Add(Directions[4].Mul(it.radius))
	default:
		it.cur = it.cur.Add(Directions[(it.i-1)/it.radius])
	}
	it.i++
	return true
}

func (it *RingIter) Coord() Axial { return it.cur }

func (it *RingIter) Reset() { it.i = 0; it.cur = Axial{} }

// SpiralIter walks rings 0..Radius in increasing order.
type SpiralIter struct {
	center Axial
	radius int
	k      int
	ring   *RingIter
}

// Spiral returns the rings 0..radius around c, innermost first.
func Spiral(c Axial, radius int) *SpiralIter {
	return &SpiralIter{center: c, radius: radius, ring: Ring(c, 0)}
}

// Len is the number of coordinates the spiral yields.
func (it *SpiralIter) Len() int {
	if it.radius < 0 {
		return 0
	}
	return 1 + 3*it.radius*(it.radius+1)
}

func (it *SpiralIter) Next() bool {
	for it.k <= it.radius {
		if it.ring.Next() {
			return true
		}
		it.k++
		it.ring = Ring(it.center, it.k)
	}
	return false
}

func (it *SpiralIter) Coord() Axial { return it.ring.Coord() }

func (it *SpiralIter) Reset() {
	it.k = 0
	it.ring = Ring(it.center, 0)
}

// Disk returns all axial coordinates at distance <= r from center c, in
// (q, r) scan order.
func Disk(c Axial, r int) []Axial {
	if r < 0 {
		return nil
	}
	size := 1 + 3*r*(r+1)
	res := make([]Axial, 0, size)
	for q := -r; q <= r; q++ {
		for r2 := max(-r, -q-r); r2 <= min(r, -q+r); r2++ {
			res = append(res, c.Add(Axial{q, r2}))
		}
	}
	return res
}

// RingSide returns the R coordinates visited while the ring walk at distance
// R moves along Directions[side]. The side's starting corner is included; its
// far corner opens the next side. If R<=0, returns [c].
func RingSide(c Axial, R int, side Direction) []Axial {
	if R <= 0 {
		return []Axial{c}
	}
	s := int(side.Norm())
	seg := make([]Axial, 0, R)
	it := Ring(c, R)
	for i := 0; it.Next(); i++ {
		if i/R == s {
			seg = append(seg, it.Coord())
		}
	}
	return seg
}
