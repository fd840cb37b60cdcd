// Package fp provides the IEEE-754 plumbing shared by the s21 math functions:
// sentinel values, classification, exponent/mantissa manipulation, and a
// small portable lane container used by the batch APIs.
//
// Nothing in this package calls a transcendental function. The only
// standard library dependency is bit reinterpretation (math.Float64bits and
// friends).
//
// Basic usage:
//
//	import "github.com/ajroetker/go-s21math/fp"
//
//	frac, exp := fp.Frexp(12.0) // 0.75, 4
//	x := fp.Ldexp(frac, exp)    // 12
//	inf := fp.Inf(-1)           // -Inf
package fp

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// Vec is a portable vector handle holding up to MaxLanes elements.
//
// Vec instances should not be created directly; use Load or Set instead.
type Vec[T Floats] struct {
	data []T
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns the underlying slice representation of the vector.
// This is primarily for testing and should not be used in performance-critical code.
func (v Vec[T]) Data() []T {
	return v.data
}

// Store writes the vector's data to a slice.
// This is the method form of the fp.Store function.
func (v Vec[T]) Store(dst []T) {
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}
