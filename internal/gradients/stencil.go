package gradients

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Strategy selects the finite-difference stencil placement.
type Strategy string

// Supported stencil strategies.
const (
	// Forward places all shifts at or above the current parameter value.
	Forward Strategy = "forward"
	// Backward places all shifts at or below the current parameter value.
	Backward Strategy = "backward"
	// Center places shifts symmetrically around the current value.
	// Requires an even approximation order.
	Center Strategy = "center"
)

// Stencil is a finite-difference rule: evaluation points (as multiples of
// the step size h) and the linear-combination coefficients recovering the
// n-th derivative, derivative ≈ Σ_i coeff_i · f(x + shift_i·h) / hⁿ.
//
// If the rule contains the zero shift it is stored first, so a single
// unshifted evaluation can be shared across directions (or replaced by a
// caller-provided f0).
type Stencil struct {
	shifts []float64
	coeffs []float64
}

// newStencil derives the rule for the n-th derivative with the given
// approximation order and strategy by solving the Vandermonde system
// A·c = b with A[i][j] = shift_j^i and b[n] = n!.
func newStencil(n, approxOrder int, strategy Strategy) (*Stencil, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: derivative order n=%d must be a positive integer",
			ErrUnsupportedStrategy, n)
	}
	if approxOrder < 1 {
		return nil, fmt.Errorf("%w: approximation order %d must be a positive integer",
			ErrUnsupportedStrategy, approxOrder)
	}

	var shifts []float64
	switch strategy {
	case Forward:
		for i := 0; i < n+approxOrder; i++ {
			shifts = append(shifts, float64(i))
		}
	case Backward:
		for i := 0; i < n+approxOrder; i++ {
			shifts = append(shifts, -float64(i))
		}
	case Center:
		if approxOrder%2 != 0 {
			return nil, fmt.Errorf("%w: centered stencils require an even approximation order, got %d",
				ErrUnsupportedStrategy, approxOrder)
		}
		numPoints := n + approxOrder - 1
		if numPoints%2 == 0 {
			// Symmetric points excluding zero: ±1 .. ±numPoints/2.
			for i := 1; i <= numPoints/2; i++ {
				shifts = append(shifts, float64(i), -float64(i))
			}
		} else {
			// Symmetric points including zero.
			shifts = append(shifts, 0)
			for i := 1; i <= (numPoints-1)/2; i++ {
				shifts = append(shifts, float64(i), -float64(i))
			}
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedStrategy, strategy)
	}

	coeffs, err := solveCoefficients(shifts, n)
	if err != nil {
		return nil, err
	}

	s := &Stencil{shifts: shifts, coeffs: coeffs}
	s.zeroFirst()
	return s, nil
}

// solveCoefficients solves the Vandermonde system for the given shifts.
func solveCoefficients(shifts []float64, n int) ([]float64, error) {
	size := len(shifts)
	a := mat.NewDense(size, size, nil)
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			a.Set(i, j, math.Pow(shifts[j], float64(i)))
		}
	}
	b := mat.NewVecDense(size, nil)
	b.SetVec(n, factorial(n))

	var c mat.VecDense
	if err := c.SolveVec(a, b); err != nil {
		return nil, fmt.Errorf("solving stencil coefficients for shifts %v: %w", shifts, err)
	}
	coeffs := make([]float64, size)
	for i := range coeffs {
		coeffs[i] = c.AtVec(i)
	}
	return coeffs, nil
}

// zeroFirst moves the zero shift (if present) to index 0.
func (s *Stencil) zeroFirst() {
	for i, shift := range s.shifts {
		if shift == 0 && i != 0 {
			s.shifts[0], s.shifts[i] = s.shifts[i], s.shifts[0]
			s.coeffs[0], s.coeffs[i] = s.coeffs[i], s.coeffs[0]
			return
		}
	}
}

// HasZero reports whether the rule contains the unshifted point.
func (s *Stencil) HasZero() bool {
	return len(s.shifts) > 0 && s.shifts[0] == 0
}

// ZeroCoeff returns the coefficient of the unshifted point, or 0 if the
// rule has none.
func (s *Stencil) ZeroCoeff() float64 {
	if s.HasZero() {
		return s.coeffs[0]
	}
	return 0
}

// ShiftedPoints returns the nonzero shifts and their coefficients.
func (s *Stencil) ShiftedPoints() (shifts, coeffs []float64) {
	if s.HasZero() {
		return s.shifts[1:], s.coeffs[1:]
	}
	return s.shifts, s.coeffs
}

// NumShifted returns the number of shifted (nonzero) evaluation points.
func (s *Stencil) NumShifted() int {
	if s.HasZero() {
		return len(s.shifts) - 1
	}
	return len(s.shifts)
}

func factorial(n int) float64 {
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}
	return f
}
