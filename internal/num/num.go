// Package num is the single place the coordinate code reaches for floating
// point helpers. Keeping them here means a constrained build only has to
// swap this package.
package num

import "math"

// Sqrt3 is the square root of three.
const Sqrt3 = 1.7320508075688772935274463415058723669428052538103806

// Round rounds half away from zero.
func Round(x float64) float64 { return math.Round(x) }

// Abs returns |x|.
func Abs(x float64) float64 { return math.Abs(x) }

// Floor returns the greatest integer value <= x.
func Floor(x float64) float64 { return math.Floor(x) }

// Finite reports whether x is neither NaN nor an infinity.
func Finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

// AbsInt returns |x|.
func AbsInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Lerp interpolates linearly from a to b by t.
func Lerp(a, b, t float64) float64 { return a + (b-a)*t }

// Sincos returns sin(x) and cos(x).
func Sincos(x float64) (sin, cos float64) { return math.Sincos(x) }

// Pi is the ratio of a circle's circumference to its diameter.
const Pi = math.Pi
