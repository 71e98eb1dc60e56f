package hex

import "github.com/gravitas-015/hexcore/internal/num"

// FractionalHex is an unrounded cube position. Q+R+S is zero up to float error.
type FractionalHex struct {
	Q, R, S float64
}

// Fractional lifts an integer coordinate.
func (a Axial) Fractional() FractionalHex {
	return FractionalHex{float64(a.Q), float64(a.R), float64(a.S())}
}

// Scale multiplies every component by k.
func (f FractionalHex) Scale(k float64) FractionalHex {
	return FractionalHex{f.Q * k, f.R * k, f.S * k}
}

// Add returns f+g.
func (f FractionalHex) Add(g FractionalHex) FractionalHex {
	return FractionalHex{f.Q + g.Q, f.R + g.R, f.S + g.S}
}

// Round returns the nearest valid coordinate. Each component is rounded and
// the one with the largest rounding error is recomputed from the other two,
// preferring q, then r, on ties.
func (f FractionalHex) Round() Axial {
	q := num.Round(f.Q)
	r := num.Round(f.R)
	s := num.Round(f.S)

	dq := num.Abs(q - f.Q)
	dr := num.Abs(r - f.R)
	ds := num.Abs(s - f.S)

	switch {
	case dq >= dr && dq >= ds:
		q = -r - s
	case dr >= ds:
		r = -q - s
	}
	return Axial{int(q), int(r)}
}

// Lerp interpolates between a and b in cube space.
func Lerp(a, b Axial, t float64) FractionalHex {
	return FractionalHex{
		Q: num.Lerp(float64(a.Q), float64(b.Q), t),
		R: num.Lerp(float64(a.R), float64(b.R), t),
		S: num.Lerp(float64(a.S()), float64(b.S()), t),
	}
}
