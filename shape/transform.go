package shape

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gravitas-015/hexcore/hex"
	"github.com/gravitas-015/hexcore/internal/num"
)

var (
	// ErrDegenerateTransform is returned for parameters that would destroy
	// the shape, such as a zero scale factor.
	ErrDegenerateTransform = errors.New("degenerate transform")
	ErrUnknownTransform    = errors.New("unknown transform")
)

// Translate moves every member by delta.
func (s *Shape) Translate(delta hex.Axial) *Shape {
	return s.Map(func(c hex.Axial) hex.Axial { return c.Add(delta) })
}

// Rotate turns the shape by steps*60 degrees about center.
func (s *Shape) Rotate(center hex.Axial, steps int) *Shape {
	return s.Map(func(c hex.Axial) hex.Axial { return hex.Rotate(c, center, steps) })
}

// Reflect mirrors the shape across axis through center. It panics if axis is
// not Valid; Transform.Apply reports the same case as an error.
func (s *Shape) Reflect(center hex.Axial, axis hex.Axis) *Shape {
	return s.Map(func(c hex.Axial) hex.Axial { return hex.ReflectAbout(c, center, axis) })
}

// Scale scales the shape about the origin.
func (s *Shape) Scale(factor float64) (*Shape, error) {
	return s.ScaleAbout(hex.Origin, factor)
}

// ScaleAbout multiplies every member's offset from center by factor.
// Non-lattice results are interpolated over their cell's lattice corners,
// which rounds them to the nearest cell; members landing on the same cell
// collapse. Integer factors are exact.
func (s *Shape) ScaleAbout(center hex.Axial, factor float64) (*Shape, error) {
	if !num.Finite(factor) || factor <= 0 {
		return nil, fmt.Errorf("%w: scale factor %v", ErrDegenerateTransform, factor)
	}
	if k := num.Floor(factor); k == factor && k <= 1<<31-1 {
		return s.scaleInt(center, int(k)), nil
	}
	return s.Map(func(c hex.Axial) hex.Axial {
		return interpolate(c.Sub(center).Fractional().Scale(factor)).Add(center)
	}), nil
}

// ScaleRatio scales about the origin by the rational n/d.
func (s *Shape) ScaleRatio(n, d int) (*Shape, error) {
	if d == 0 || n == 0 || (n < 0) != (d < 0) {
		return nil, fmt.Errorf("%w: scale ratio %d/%d", ErrDegenerateTransform, n, d)
	}
	if n%d == 0 {
		return s.scaleInt(hex.Origin, n/d), nil
	}
	return s.Map(func(c hex.Axial) hex.Axial {
		return interpolate(hex.FractionalHex{
			Q: float64(c.Q*n) / float64(d),
			R: float64(c.R*n) / float64(d),
			S: float64(c.S()*n) / float64(d),
		})
	}), nil
}

func (s *Shape) scaleInt(center hex.Axial, k int) *Shape {
	return s.Map(func(c hex.Axial) hex.Axial { return c.Sub(center).Mul(k).Add(center) })
}

// interpolate reconciles a scaled position with the lattice. Weighting the
// four axial corners of f's cell by the fractional offsets of q and r
// reproduces f exactly, so the bilinear step reduces to cube rounding of f
// with s recomputed from q and r. A lattice point is returned unchanged.
func interpolate(f hex.FractionalHex) hex.Axial {
	return hex.FractionalHex{Q: f.Q, R: f.R, S: -f.Q - f.R}.Round()
}

// Kind selects what a Transform does.
type Kind int

const (
	KindTranslate Kind = iota
	KindRotate
	KindReflect
	KindScale
)

var kindNames = [...]string{
	KindTranslate: "translate",
	KindRotate:    "rotate",
	KindReflect:   "reflect",
	KindScale:     "scale",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTransform, s)
}

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *Kind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// Transform is a stateless description of one operation on a shape. Only the
// fields relevant to Kind are read.
type Transform struct {
	Kind   Kind      `json:"kind" yaml:"kind"`
	Delta  hex.Axial `json:"delta" yaml:"delta,omitempty"`
	Center hex.Axial `json:"center" yaml:"center,omitempty"`
	Steps  int       `json:"steps,omitempty" yaml:"steps,omitempty"`
	Axis   hex.Axis  `json:"axis" yaml:"axis,omitempty"`
	Factor float64   `json:"factor,omitempty" yaml:"factor,omitempty"`
}

func Translation(delta hex.Axial) Transform {
	return Transform{Kind: KindTranslate, Delta: delta}
}

func Rotation(center hex.Axial, steps int) Transform {
	return Transform{Kind: KindRotate, Center: center, Steps: steps}
}

func Reflection(center hex.Axial, axis hex.Axis) Transform {
	return Transform{Kind: KindReflect, Center: center, Axis: axis}
}

func Scaling(center hex.Axial, factor float64) Transform {
	return Transform{Kind: KindScale, Center: center, Factor: factor}
}

// Apply returns a new shape; s is not modified.
func (t Transform) Apply(s *Shape) (*Shape, error) {
	switch t.Kind {
	case KindTranslate:
		return s.Translate(t.Delta), nil
	case KindRotate:
		return s.Rotate(t.Center, t.Steps), nil
	case KindReflect:
		if !t.Axis.Valid() {
			return nil, fmt.Errorf("%w: reflect across %v", ErrUnknownTransform, t.Axis)
		}
		return s.Reflect(t.Center, t.Axis), nil
	case KindScale:
		return s.ScaleAbout(t.Center, t.Factor)
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownTransform, t.Kind)
}

// Inverse returns the transform that undoes t. Scaling is only invertible
// for positive integer factors, whose images sit exactly on the lattice.
func (t Transform) Inverse() (Transform, error) {
	switch t.Kind {
	case KindTranslate:
		return Translation(t.Delta.Neg()), nil
	case KindRotate:
		return Rotation(t.Center, -t.Steps), nil
	case KindReflect:
		if !t.Axis.Valid() {
			return Transform{}, fmt.Errorf("%w: reflect across %v", ErrUnknownTransform, t.Axis)
		}
		return t, nil
	case KindScale:
		if k := num.Floor(t.Factor); k != t.Factor || k < 1 {
			return Transform{}, fmt.Errorf("%w: scale by %v has no exact inverse", ErrDegenerateTransform, t.Factor)
		}
		return Scaling(t.Center, 1/t.Factor), nil
	}
	return Transform{}, fmt.Errorf("%w: %v", ErrUnknownTransform, t.Kind)
}

func (t Transform) String() string {
	switch t.Kind {
	case KindTranslate:
		return fmt.Sprintf("translate %v", t.Delta)
	case KindRotate:
		return fmt.Sprintf("rotate %d about %v", t.Steps, t.Center)
	case KindReflect:
		return fmt.Sprintf("reflect %v about %v", t.Axis, t.Center)
	case KindScale:
		return fmt.Sprintf("scale %v about %v", t.Factor, t.Center)
	}
	return t.Kind.String()
}

// Pipeline applies transforms in order.
type Pipeline []Transform

func (p Pipeline) Apply(s *Shape) (*Shape, error) {
	cur := s
	for i, t := range p {
		next, err := t.Apply(cur)
		if err != nil {
			return nil, fmt.Errorf("transform %d (%v): %w", i, t, err)
		}
		cur = next
	}
	if cur == s {
		cur = s.Clone()
	}
	return cur, nil
}

// Inverse undoes p by applying the inverse of each step in reverse order.
func (p Pipeline) Inverse() (Pipeline, error) {
	inv := make(Pipeline, len(p))
	for i, t := range p {
		it, err := t.Inverse()
		if err != nil {
			return nil, fmt.Errorf("transform %d (%v): %w", i, t, err)
		}
		inv[len(p)-1-i] = it
	}
	return inv, nil
}
