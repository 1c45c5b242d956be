// Package cutter splits geographic geometry along the cut lines of a
// projection's metagraticule: the antimeridian, the pole parallels and any
// projection-specific meridian or parallel segments. Geometry that would
// wrap around an interruption of the projection comes back as separate,
// closed, correctly wound pieces.
package cutter

import "fmt"

// Kind discriminates the two graticule line families geometry can be cut
// against.
type Kind int

const (
	Meridian Kind = iota + 1
	Parallel
)

func (k Kind) String() string {
	switch k {
	case Meridian:
		return "meridian"
	case Parallel:
		return "parallel"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// A CutLine is a bounded segment of a meridian or parallel along which
// geometry is split. Value is the fixed coordinate of the line; From and To
// bound it on the orthogonal axis, so a meridian carries a latitude
// interval and a parallel a longitude interval. A CutLine is immutable once
// constructed.
type CutLine struct {
	Kind  Kind
	Value float64
	From  float64
	To    float64
}

// NewMeridian returns a meridian cut at the given longitude, restricted to
// the latitude interval [from, to].
func NewMeridian(value, from, to float64) (CutLine, error) {
	if from >= to {
		return CutLine{}, fmt.Errorf("meridian %v [%v, %v]: %w", value, from, to, ErrNonMonotonicInterval)
	}
	return CutLine{Kind: Meridian, Value: value, From: from, To: to}, nil
}

// NewParallel returns a parallel cut at the given latitude, restricted to
// the longitude interval [from, to].
func NewParallel(value, from, to float64) (CutLine, error) {
	if from >= to {
		return CutLine{}, fmt.Errorf("parallel %v [%v, %v]: %w", value, from, to, ErrNonMonotonicInterval)
	}
	return CutLine{Kind: Parallel, Value: value, From: from, To: to}, nil
}

// Antimeridian is the cut prepended for non-azimuthal projections: the
// ±180° meridian across the full latitude range.
func Antimeridian() CutLine {
	return CutLine{Kind: Meridian, Value: 180, From: -90, To: 90}
}

// PoleParallel is the full-circle parallel at latitude ±90 used for
// azimuthal projections.
func PoleParallel(lat float64) CutLine {
	return CutLine{Kind: Parallel, Value: lat, From: -180, To: 180}
}

func (l CutLine) validate() error {
	if l.Kind != Meridian && l.Kind != Parallel {
		return fmt.Errorf("cut line at %v: %w", l.Value, ErrInvalidKind)
	}
	if l.From >= l.To {
		return fmt.Errorf("%s %v [%v, %v]: %w", l.Kind, l.Value, l.From, l.To, ErrNonMonotonicInterval)
	}
	return nil
}

// isPole reports whether the line is a full pole parallel, the only case
// the pole handler acts on.
func (l CutLine) isPole() bool {
	return l.Kind == Parallel && (l.Value == 90 || l.Value == -90) &&
		l.From == -180 && l.To == 180
}
