package hex

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToPixel(t *testing.T) {
	pointy := Layout{Orientation: PointyTop, Size: 10}
	p := pointy.ToPixel(NewAxial(1, 0))
	assert.InDelta(t, 10*math.Sqrt(3), p.X, 1e-9)
	assert.InDelta(t, 0, p.Y, 1e-9)
	p = pointy.ToPixel(NewAxial(0, 2))
	assert.InDelta(t, 20*math.Sqrt(3), p.X, 1e-9)
	assert.InDelta(t, 30, p.Y, 1e-9)

	flat := Layout{Orientation: FlatTop, Size: 10}
	p = flat.ToPixel(NewAxial(1, 0))
	assert.InDelta(t, 15, p.X, 1e-9)
	assert.InDelta(t, 5*math.Sqrt(3), p.Y, 1e-9)

	x, y := AxialToPixel(NewAxial(0, 2), 10)
	assert.InDelta(t, 20*math.Sqrt(3), x, 1e-9)
	assert.InDelta(t, 30, y, 1e-9)
}

func TestPixelRoundTrip(t *testing.T) {
	layouts := []Layout{
		{Orientation: PointyTop, Size: 10},
		{Orientation: FlatTop, Size: 32},
		{Orientation: PointyTop, Size: 7.5, Origin: Point{X: 100, Y: -40}},
	}
	for _, l := range layouts {
		for _, c := range Disk(NewAxial(3, -6), 5) {
			p := l.ToPixel(c)
			require.Equal(t, c, l.FromPixel(p), "layout %+v", l)
			// A point well inside the cell still maps to it.
			require.Equal(t, c, l.FromPixel(Point{X: p.X + l.Size*0.3, Y: p.Y - l.Size*0.3}))
		}
	}
}

func TestFromPixelPicksNearestCenter(t *testing.T) {
	l := Layout{Orientation: PointyTop, Size: 10}
	for _, p := range []Point{{X: 3, Y: 4}, {X: -11, Y: 9}, {X: 40, Y: -22}, {X: 0.1, Y: 17}} {
		got := l.FromPixel(p)
		best := math.Inf(1)
		for _, c := range Disk(got, 1) {
			q := l.ToPixel(c)
			best = math.Min(best, math.Hypot(q.X-p.X, q.Y-p.Y))
		}
		g := l.ToPixel(got)
		assert.InDelta(t, best, math.Hypot(g.X-p.X, g.Y-p.Y), 1e-9)
	}
}

func TestNewLayoutValidates(t *testing.T) {
	_, err := NewLayout(PointyTop, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidLayout))

	_, err = NewLayout(FlatTop, math.NaN())
	assert.True(t, errors.Is(err, ErrInvalidLayout))

	_, err = NewLayout(Orientation(5), 3)
	assert.True(t, errors.Is(err, ErrInvalidLayout))

	l, err := NewLayout(FlatTop, 12)
	require.NoError(t, err)
	assert.Equal(t, FlatTop, l.Orientation)
}

func TestOrientationText(t *testing.T) {
	var o Orientation
	require.NoError(t, o.UnmarshalText([]byte("flat-top")))
	assert.Equal(t, FlatTop, o)
	require.NoError(t, o.UnmarshalText([]byte("Pointy")))
	assert.Equal(t, PointyTop, o)
	assert.Error(t, o.UnmarshalText([]byte("round")))

	b, err := FlatTop.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "flat", string(b))
}

func TestCorners(t *testing.T) {
	for _, l := range []Layout{{Orientation: PointyTop, Size: 4}, {Orientation: FlatTop, Size: 9}} {
		c := NewAxial(2, -1)
		center := l.ToPixel(c)
		corners := l.Corners(c)
		for _, p := range corners {
			assert.InDelta(t, l.Size, math.Hypot(p.X-center.X, p.Y-center.Y), 1e-9)
		}
		// Corners are shared with the neighbor across each side.
		n := l.Corners(c.Neighbor(0))
		shared := 0
		for _, p := range corners {
			for _, q := range n {
				if math.Hypot(p.X-q.X, p.Y-q.Y) < 1e-9 {
					shared++
				}
			}
		}
		assert.Equal(t, 2, shared)
	}

	p := Layout{Orientation: PointyTop, Size: 1}.Corners(Origin)[0]
	assert.InDelta(t, math.Sqrt(3)/2, p.X, 1e-9)
	assert.InDelta(t, -0.5, p.Y, 1e-9)
}
