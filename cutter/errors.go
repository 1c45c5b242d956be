package cutter

import "errors"

var (
	// ErrInvalidKind is returned when a cut line carries a kind other
	// than Meridian or Parallel.
	ErrInvalidKind = errors.New("cut line kind must be a meridian or a parallel")

	// ErrNonMonotonicInterval is returned when a cut line interval does
	// not run from low to high.
	ErrNonMonotonicInterval = errors.New("cut line interval must run from low to high")
)

// Diagnostic codes attached to a cut result. These report recoverable
// conditions: the cut still produced usable output.
const (
	DiagUnresolvedHole = "unresolved-hole"
	DiagDegenerate     = "degenerate-geometry"
	DiagSkipped        = "feature-skipped"
)

// A Diagnostic describes a non-fatal condition encountered while cutting.
type Diagnostic struct {
	Code    string
	Message string
}
