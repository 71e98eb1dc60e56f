package hex

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAxialCubeRoundTrip(t *testing.T) {
	for q := -10; q <= 10; q++ {
		for r := -10; r <= 10; r++ {
			a := NewAxial(q, r)
			c := a.ToCube()
			require.True(t, c.Valid(), "cube %v of %v", c, a)
			require.Equal(t, a, c.ToAxial())

			back, err := NewCube(c.X, c.Y, c.Z)
			require.NoError(t, err)
			require.Equal(t, c, back.ToAxial().ToCube())
		}
	}
}

func TestNewCubeRejectsNonZeroSum(t *testing.T) {
	_, err := NewCube(1, 1, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidCoordinate))

	c, err := NewCube(1, 0, -1)
	require.NoError(t, err)
	assert.Equal(t, Axial{Q: 1, R: -1}, c.ToAxial())
}

func TestAxialToCubeScenario(t *testing.T) {
	c := NewAxial(2, -1).ToCube()
	assert.Equal(t, Cube{X: 2, Y: -1, Z: -1}, c)
	assert.Equal(t, -1, NewAxial(2, -1).S())

	origin, err := NewCube(0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, DistanceCube(origin, c))
	assert.Equal(t, 2, Distance(Origin, NewAxial(2, -1)))
}

func TestDistanceLaws(t *testing.T) {
	pts := Disk(Origin, 3)
	for _, a := range pts {
		assert.Equal(t, 0, Distance(a, a))
		for _, b := range pts {
			dab := Distance(a, b)
			require.Equal(t, dab, Distance(b, a))
			for _, m := range []Axial{{0, 0}, {2, -1}, {-3, 3}, {1, 1}} {
				require.LessOrEqual(t, dab, Distance(a, m)+Distance(m, b))
			}
		}
	}
}

func TestDistanceMatchesSteps(t *testing.T) {
	assert.Equal(t, 0, Distance(NewAxial(-1, -1), NewAxial(-1, -1)))
	assert.Equal(t, 2, Distance(NewAxial(-1, -1), NewAxial(1, -1)))
	assert.Equal(t, 2, Distance(NewAxial(-1, -1), NewAxial(-1, 1)))
	assert.Equal(t, 5, Distance(NewAxial(-1, -1), NewAxial(2, 1)))
	assert.Equal(t, 3, NewAxial(3, -3).Length())
}

func TestNeighborsAreOneStepAway(t *testing.T) {
	for _, c := range Disk(NewAxial(4, -2), 2) {
		for d := Direction(0); d < 6; d++ {
			n := Neighbor(c, d)
			require.Equal(t, 1, Distance(c, n))
			back, ok := c.DirectionTo(n)
			require.True(t, ok)
			require.Equal(t, d, back)
			require.Equal(t, c, n.Neighbor(d.Opposite()))
		}
	}
	assert.Equal(t, NewAxial(7, -3), NewAxial(6, -3).Neighbor(0))
	assert.Equal(t, NewAxial(7, -3), NewAxial(6, -3).Neighbor(-6))
	assert.False(t, Origin.IsNeighbor(NewAxial(2, 0)))
	assert.False(t, Origin.IsNeighbor(Origin))
}

func TestOrdering(t *testing.T) {
	assert.True(t, NewAxial(-1, 5).Less(NewAxial(0, -5)))
	assert.True(t, NewAxial(0, -5).Less(NewAxial(0, -4)))
	assert.Equal(t, 0, NewAxial(3, 3).Compare(NewAxial(3, 3)))
	assert.Equal(t, "(2, -1)", NewAxial(2, -1).String())
	assert.Equal(t, "(2, -1, -1)", NewAxial(2, -1).ToCube().String())
}
