package hex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRingZeroIsCenter(t *testing.T) {
	c := NewAxial(3, -7)
	assert.Equal(t, []Axial{c}, Collect(Ring(c, 0)))
	assert.Empty(t, Collect(Ring(c, -1)))
}

func TestRingOrder(t *testing.T) {
	want := []Axial{{-1, 1}, {0, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, 0}}
	assert.Equal(t, want, Collect(Ring(Origin, 1)))
}

func TestRingSizeAndDistance(t *testing.T) {
	center := NewAxial(-2, 5)
	for r := 1; r <= 6; r++ {
		ring := Collect(Ring(center, r))
		require.Len(t, ring, 6*r)
		seen := map[Axial]bool{}
		for i, c := range ring {
			require.Equal(t, r, Distance(center, c))
			require.False(t, seen[c], "duplicate %v", c)
			seen[c] = true
			if i > 0 {
				require.True(t, ring[i-1].IsNeighbor(c))
			}
		}
		require.True(t, ring[len(ring)-1].IsNeighbor(ring[0]))
	}
}

func TestRingRestarts(t *testing.T) {
	it := Ring(NewAxial(1, 1), 3)
	first := Collect(it)
	it.Reset()
	var second []Axial
	for it.Next() {
		second = append(second, it.Coord())
	}
	assert.Equal(t, first, second)
	assert.False(t, it.Next())
}

func TestSpiral(t *testing.T) {
	center := NewAxial(2, 2)
	it := Spiral(center, 3)
	got := Collect(it)
	require.Len(t, got, it.Len())
	require.Len(t, got, 37)
	assert.Equal(t, center, got[0])
	for i := 1; i < len(got); i++ {
		require.LessOrEqual(t, Distance(center, got[i-1]), Distance(center, got[i]))
	}
	assert.ElementsMatch(t, Disk(center, 3), got)
	assert.Equal(t, got, Collect(it))
	assert.Empty(t, Collect(Spiral(center, -1)))
}

func TestDisk(t *testing.T) {
	assert.Equal(t, []Axial{Origin}, Disk(Origin, 0))
	assert.Equal(t, []Axial{{-1, 0}, {-1, 1}, {0, -1}, {0, 0}, {0, 1}, {1, -1}, {1, 0}}, Disk(Origin, 1))
	assert.Len(t, Disk(NewAxial(5, 5), 4), 61)
	assert.Nil(t, Disk(Origin, -2))
}

func TestRingSide(t *testing.T) {
	assert.Equal(t, []Axial{{-2, 2}, {-1, 2}}, RingSide(Origin, 2, 0))
	assert.Equal(t, []Axial{{0, 2}, {1, 1}}, RingSide(Origin, 2, 1))
	assert.Equal(t, []Axial{{7, 7}}, RingSide(NewAxial(7, 7), 0, 3))

	var all []Axial
	for s := Direction(0); s < 6; s++ {
		side := RingSide(Origin, 4, s)
		require.Len(t, side, 4)
		all = append(all, side...)
	}
	assert.Equal(t, Collect(Ring(Origin, 4)), all)
}

func TestLine(t *testing.T) {
	assert.Equal(t, []Axial{{0, 0}, {1, 0}, {2, 0}, {3, 0}}, Collect(Line(Origin, NewAxial(3, 0))))
	assert.Equal(t, []Axial{{-1, -1}, {-1, 0}, {-1, 1}}, Collect(Line(NewAxial(-1, -1), NewAxial(-1, 1))))
	assert.Equal(t, []Axial{{4, 4}}, Collect(Line(NewAxial(4, 4), NewAxial(4, 4))))

	ends := []Axial{{0, 0}, {5, -2}, {-3, 7}, {8, 1}, {-6, -1}, {2, 2}}
	for _, a := range ends {
		for _, b := range ends {
			line := Collect(Line(a, b))
			require.Len(t, line, Distance(a, b)+1)
			require.Equal(t, a, line[0])
			require.Equal(t, b, line[len(line)-1])
			for i := 1; i < len(line); i++ {
				require.Equal(t, 1, Distance(line[i-1], line[i]), "line %v -> %v at %d", a, b, i)
			}
		}
	}
}

func TestLerpAndRound(t *testing.T) {
	assert.Equal(t, NewAxial(1, 0), Lerp(Origin, NewAxial(3, 0), 0.3).Round())
	assert.Equal(t, NewAxial(2, 3), FractionalHex{Q: 1.6, R: 3.2, S: -4.8}.Round())
	for _, c := range Disk(NewAxial(-3, 2), 3) {
		require.Equal(t, c, c.Fractional().Round())
	}
}
