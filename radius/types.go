// Package radius provides tunable options, results and error definitions
// for the radius kernels over a grid.Grid[int].
package radius

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ringsum/grid"
)

// Sentinel errors for kernel execution.
var (
	// ErrCenterNotFound is returned when a non-empty grid holds no cell equal
	// to CenterValue (FindFirst returned the out-of-range sentinel).
	ErrCenterNotFound = errors.New("radius: center cell not found")

	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("radius: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("radius: invalid option supplied")
)

const (
	// CenterValue is the cell value marking the center. Input markers such
	// as '@' are mapped to it by grid.DigitsWithMarker.
	CenterValue = 0

	// DefaultRadius is the Sum radius when WithRadius is not given.
	DefaultRadius = 10

	// bestUnset seeds the ring maximum below any real step sum; cell values
	// are non-negative so the first step always replaces it.
	bestUnset = -1
)

// Option configures kernel behavior via functional arguments.
// If an Option is invalid (e.g. negative radius), it is recorded internally
// and surfaced as ErrOptionViolation when the kernel is invoked.
type Option func(*Options)

// Options holds parameters and callbacks for Sum and Rings.
type Options struct {
	// Radius is the fixed Euclidean radius used by Sum.
	Radius int

	// MaxRadius, if > 0, overrides the last Rings step (default Rows()/2).
	MaxRadius int

	// OnCell is called by Sum for every cell that contributes to the total.
	OnCell func(at grid.Coordinate, value int)

	// OnRing is called by Rings after each radius step with the step sum.
	OnRing func(radius, sum int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - Radius = DefaultRadius
//   - MaxRadius = 0 (Rows()/2)
//   - no-op hooks.
func DefaultOptions() Options {
	return Options{
		Radius:    DefaultRadius,
		MaxRadius: 0,
		OnCell:    func(grid.Coordinate, int) {},
		OnRing:    func(int, int) {},
	}
}

// WithRadius sets the Sum radius. r < 0 is an ErrOptionViolation.
func WithRadius(r int) Option {
	return func(o *Options) {
		if r < 0 {
			o.err = fmt.Errorf("%w: Radius cannot be negative (%d)", ErrOptionViolation, r)
			return
		}
		o.Radius = r
	}
}

// WithMaxRadius sets the last Rings step.
//
//	n > 0: steps 1..n
//	n == 0: default, steps 1..Rows()/2
//	n < 0: invalid option → ErrOptionViolation
func WithMaxRadius(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxRadius cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxRadius = n
	}
}

// WithOnCell registers a callback for every cell Sum counts.
func WithOnCell(fn func(at grid.Coordinate, value int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCell = fn
		}
	}
}

// WithOnRing registers a callback invoked after every Rings step.
func WithOnRing(fn func(radius, sum int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRing = fn
		}
	}
}

// gatherOptions applies opts over the defaults and returns the first violation.
func gatherOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// Result holds the outcome of Rings:
//   - BestSum: largest step sum (strictly greater wins; bestUnset when no step ran).
//   - BestRadius: radius of the first step reaching BestSum (0 when no step ran).
//   - Product: BestSum × BestRadius.
//   - StepSums: StepSums[i] is the sum of radius i+1.
//   - Visited: cells counted by any step, plus the center.
type Result struct {
	BestSum    int
	BestRadius int
	Product    int
	StepSums   []int
	Visited    *grid.Grid[bool]
}
