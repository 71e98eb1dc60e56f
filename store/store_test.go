package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravitas-015/hexcore/hex"
	"github.com/gravitas-015/hexcore/shape"
)

func givenBackends(t *testing.T) map[string]Cells[int] {
	chunked, err := NewChunkStore[int](4)
	require.NoError(t, err)
	return map[string]Cells[int]{
		"map":   NewMapStore[int](),
		"chunk": chunked,
	}
}

func TestCellsContract(t *testing.T) {
	for name, st := range givenBackends(t) {
		t.Run(name, func(t *testing.T) {
			c := hex.NewAxial(-5, 3)
			_, err := st.Get(c)
			require.True(t, errors.Is(err, ErrAbsentEntry))
			require.True(t, IsAbsent(err))

			require.NoError(t, st.Set(c, 7))
			v, err := st.Get(c)
			require.NoError(t, err)
			assert.Equal(t, 7, v)

			require.NoError(t, st.Set(c, 0))
			v, err = st.Get(c)
			require.NoError(t, err)
			assert.Equal(t, 0, v, "a stored zero is not absent")

			require.NoError(t, st.Remove(c))
			_, err = st.Get(c)
			assert.True(t, IsAbsent(err))
			assert.NoError(t, st.Remove(c))
			assert.NoError(t, st.Remove(hex.NewAxial(100, -100)))
		})
	}
}

func TestStampCollectErase(t *testing.T) {
	for name, st := range givenBackends(t) {
		t.Run(name, func(t *testing.T) {
			h := shape.Hexagon(hex.NewAxial(3, -2), 2)
			require.NoError(t, Stamp(st, h, func(c hex.Axial) int { return c.Q }))

			got, err := Collect(st, h.Union(shape.New(hex.NewAxial(50, 50))))
			require.NoError(t, err)
			require.Len(t, got, h.Len())
			for c, v := range got {
				require.Equal(t, c.Q, v)
			}

			probe := shape.FromLine(hex.NewAxial(3, -2), hex.NewAxial(9, -2))
			present, err := Present(st, probe)
			require.NoError(t, err)
			assert.Equal(t, []hex.Axial{{Q: 3, R: -2}, {Q: 4, R: -2}, {Q: 5, R: -2}}, present.Coords())

			require.NoError(t, Fill(st, shape.New(hex.NewAxial(3, -2)), -1))
			v, err := st.Get(hex.NewAxial(3, -2))
			require.NoError(t, err)
			assert.Equal(t, -1, v)

			require.NoError(t, Erase(st, h))
			present, err = Present(st, h)
			require.NoError(t, err)
			assert.Equal(t, 0, present.Len())
		})
	}
}

func TestFloodFill(t *testing.T) {
	equal := func(cell, target int) bool { return cell == target }

	for name, st := range givenBackends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, Fill(st, shape.Hexagon(hex.Origin, 3), 0))
			require.NoError(t, Fill(st, shape.FromRing(hex.Origin, 2), 1))

			filled, err := FloodFill(st, hex.Origin, 2, equal)
			require.NoError(t, err)
			assert.True(t, filled.Equal(shape.Hexagon(hex.Origin, 1)))

			wall, err := Collect(st, shape.FromRing(hex.Origin, 2))
			require.NoError(t, err)
			for _, v := range wall {
				require.Equal(t, 1, v)
			}
			outside, err := st.Get(hex.NewAxial(3, 0))
			require.NoError(t, err)
			assert.Equal(t, 0, outside)

			// Refilling with the seed's own value terminates.
			again, err := FloodFill(st, hex.NewAxial(3, 0), 0, equal)
			require.NoError(t, err)
			assert.Equal(t, 18, again.Len())
		})
	}
}

func TestFloodFillStopsAtAbsentCells(t *testing.T) {
	st := NewMapStore[string]()
	island := shape.Hexagon(hex.NewAxial(2, 2), 1)
	require.NoError(t, Fill(st, island, "sea"))
	require.NoError(t, Fill(st, shape.Hexagon(hex.NewAxial(10, 10), 1), "sea"))

	filled, err := FloodFill(st, hex.NewAxial(2, 2), "land", func(cell, target string) bool { return cell == target })
	require.NoError(t, err)
	assert.True(t, filled.Equal(island))
	assert.Equal(t, 14, st.Len())

	_, err = FloodFill(st, hex.Origin, "land", func(cell, target string) bool { return true })
	assert.True(t, errors.Is(err, ErrAbsentEntry))
}

func TestOutlineAndCorners(t *testing.T) {
	edges := NewEdgeMap[bool]()
	n, err := Outline[bool](edges, shape.New(hex.Origin), true)
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	assert.Equal(t, 6, edges.Len())
	for _, e := range hex.Origin.Edges() {
		_, err := edges.GetEdge(e)
		require.NoError(t, err)
	}

	edges = NewEdgeMap[bool]()
	n, err = Outline[bool](edges, shape.Hexagon(hex.Origin, 1), true)
	require.NoError(t, err)
	assert.Equal(t, 18, n)
	assert.Len(t, edges.Edges(), 18)
	_, err = edges.GetEdge(hex.EdgeOf(hex.Origin, 0))
	assert.True(t, IsAbsent(err), "inner edges are not part of the outline")

	verts := NewVertexMap[int]()
	n, err = Corners[int](verts, shape.New(hex.Origin), 1)
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	verts = NewVertexMap[int]()
	n, err = Corners[int](verts, shape.Hexagon(hex.Origin, 1), 1)
	require.NoError(t, err)
	assert.Equal(t, 18, n)
	assert.Len(t, verts.Vertices(), 18)
	_, err = verts.GetVertex(hex.CornerOf(hex.Origin, 0))
	assert.True(t, IsAbsent(err))

	require.NoError(t, verts.RemoveVertex(verts.Vertices()[0]))
	assert.Equal(t, 17, verts.Len())
	require.NoError(t, edges.RemoveEdge(edges.Edges()[0]))
	assert.Equal(t, 17, edges.Len())
}

func TestEdgeMapFoldsEquivalentEdges(t *testing.T) {
	edges := NewEdgeMap[string]()
	h := hex.NewAxial(3, -1)
	for d := hex.Direction(0); d < 6; d++ {
		require.NoError(t, edges.SetEdge(hex.Edge{Hex: h, Dir: d}, "wall"))
	}
	assert.Equal(t, 6, edges.Len())

	v, err := edges.GetEdge(hex.EdgeOf(h, 4))
	require.NoError(t, err)
	assert.Equal(t, "wall", v)
	require.NoError(t, edges.SetEdge(hex.EdgeOf(h, 4), "gate"))
	v, err = edges.GetEdge(hex.Edge{Hex: h, Dir: 4})
	require.NoError(t, err)
	assert.Equal(t, "gate", v)
	assert.Equal(t, 6, edges.Len())

	require.NoError(t, edges.RemoveEdge(hex.Edge{Hex: h, Dir: 10}))
	_, err = edges.GetEdge(hex.EdgeOf(h, 4))
	assert.True(t, IsAbsent(err))
	assert.Equal(t, 5, edges.Len())
}

func TestVertexMapRejectsUnknownCorners(t *testing.T) {
	verts := NewVertexMap[int]()
	bad := hex.Vertex{Hex: hex.Origin, Corner: hex.VertexKind(2)}
	assert.True(t, errors.Is(verts.SetVertex(bad, 1), ErrInvalidVertex))
	_, err := verts.GetVertex(bad)
	assert.True(t, errors.Is(err, ErrInvalidVertex))
	assert.False(t, IsAbsent(err))
	assert.True(t, errors.Is(verts.RemoveVertex(bad), ErrInvalidVertex))
	assert.Equal(t, 0, verts.Len())
}

type brokenStore struct{ MapStore[int] }

var errBroken = errors.New("disk on fire")

func (*brokenStore) Set(hex.Axial, int) error { return errBroken }

func TestAlgorithmsPropagateBackendErrors(t *testing.T) {
	st := &brokenStore{}
	err := Fill[int](st, shape.Hexagon(hex.Origin, 1), 3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errBroken))
	assert.Contains(t, err.Error(), "stamp (-1, 0)")
}

func TestMapStoreShape(t *testing.T) {
	st := NewMapStore[int]()
	h := shape.Triangle(3)
	require.NoError(t, Fill[int](st, h, 1))
	assert.True(t, st.Shape().Equal(h))
}
