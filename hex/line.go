package hex

// lineNudge pushes interpolated points off exact cell boundaries so that
// ties round the same way along the whole line.
var lineNudge = FractionalHex{Q: 1e-6, R: 2e-6, S: -3e-6}

// LineIter walks the cells of a straight segment.
type LineIter struct {
	a, b Axial
	n    int
	i    int
	cur  Axial
}

// Line returns the Distance(a, b)+1 cells approximating the segment from a
// to b. The first and last cells are a and b; consecutive cells are
// neighbors.
func Line(a, b Axial) *LineIter {
	return &LineIter{a: a, b: b, n: Distance(a, b)}
}

// Len is the number of coordinates the line yields.
func (it *LineIter) Len() int { return it.n + 1 }

func (it *LineIter) Next() bool {
	if it.i > it.n {
		return false
	}
	switch it.i {
	case 0:
		it.cur = it.a
	case it.n:
		it.cur = it.b
	default:
		t := float64(it.i) / float64(it.n)
		it.cur = Lerp(it.a, it.b, t).Add(lineNudge).Round()
	}
	it.i++
	return true
}

func (it *LineIter) Coord() Axial { return it.cur }

func (it *LineIter) Reset() { it.i = 0; it.cur = Axial{} }
