package hex

// OffsetKind selects which rows or columns are shoved in offset coordinates.
type OffsetKind int

const (
	OddR OffsetKind = iota // pointy-top, odd rows shoved right
	EvenR                  // pointy-top, even rows shoved right
	OddQ                   // flat-top, odd columns shoved down
	EvenQ                  // flat-top, even columns shoved down
)

// Offset is a (col, row) position in a rectangular storage layout.
type Offset struct {
	Col int `json:"col" yaml:"col"`
	Row int `json:"row" yaml:"row"`
}

// ToOffset converts a to offset coordinates of the given kind.
func (a Axial) ToOffset(kind OffsetKind) Offset {
	switch kind {
	case EvenR:
		return Offset{Col: a.Q + (a.R+(a.R&1))/2, Row: a.R}
	case OddQ:
		return Offset{Col: a.Q, Row: a.R + (a.Q-(a.Q&1))/2}
	case EvenQ:
		return Offset{Col: a.Q, Row: a.R + (a.Q+(a.Q&1))/2}
	default:
		return Offset{Col: a.Q + (a.R-(a.R&1))/2, Row: a.R}
	}
}

// FromOffset converts offset coordinates of the given kind back to axial.
func FromOffset(o Offset, kind OffsetKind) Axial {
	switch kind {
	case EvenR:
		return Axial{Q: o.Col - (o.Row+(o.Row&1))/2, R: o.Row}
	case OddQ:
		return Axial{Q: o.Col, R: o.Row - (o.Col-(o.Col&1))/2}
	case EvenQ:
		return Axial{Q: o.Col, R: o.Row - (o.Col+(o.Col&1))/2}
	default:
		return Axial{Q: o.Col - (o.Row-(o.Row&1))/2, R: o.Row}
	}
}
