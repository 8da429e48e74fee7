package gradients

import (
	"fmt"
	"math"

	"github.com/spinor-ml/spinor/internal/circuit"
	"github.com/spinor-ml/spinor/internal/tensor"
)

// PostProcess reassembles the flat device results for the plan's tapes
// into the Jacobian. Results must be index-aligned with Plan.Tapes.
//
// Per direction, the stencil coefficients weight the shifted results into
// one directional-derivative estimate (coefficients · results) / hⁿ; the
// estimate is distributed onto the perturbed parameters by the direction
// vector and averaged over directions with weight 1/numDirections. No
// further normalization is applied: with the coordinate sampler the caller
// rescales by numDirections to recover exact finite differences, keeping
// the stochastic estimator's expectation unbiased.
func (p *Plan) PostProcess(results []circuit.Result) (*Jacobian, error) {
	if p.numDirections == 0 {
		// No influential parameters: exact zeros, no device data consumed.
		return newZeroJacobian(p.descs, len(p.trainable)), nil
	}
	if len(results) != len(p.Tapes) {
		return nil, fmt.Errorf("%w: got %d results for %d tapes",
			ErrResultMismatch, len(results), len(p.Tapes))
	}

	offset := 0
	var ref circuit.Result
	if p.stencil.HasZero() {
		if p.f0 != nil {
			ref = p.f0
		} else {
			ref = results[0]
			offset = 1
		}
	}

	jac := newZeroJacobian(p.descs, len(p.trainable))
	column := make(map[int]int, len(p.trainable))
	for pos, idx := range p.trainable {
		column[idx] = pos
	}

	_, coeffs := p.stencil.ShiftedPoints()
	numShifted := p.stencil.NumShifted()
	invH := 1.0 / math.Pow(p.h, float64(p.n))
	dirWeight := 1.0 / float64(p.numDirections)

	for k := 0; k < p.numDirections; k++ {
		group := results[offset+k*numShifted : offset+(k+1)*numShifted]
		for m, desc := range p.descs {
			est, err := directionalEstimate(desc, ref, group, p.stencil.ZeroCoeff(), coeffs, m)
			if err != nil {
				return nil, err
			}
			// Outer product with the direction vector, averaged over
			// directions. Only perturbed parameters receive weight.
			for _, idx := range p.indices {
				w := p.directions[k][idx] * invH * dirWeight
				if w == 0 {
					continue
				}
				if err := jac.entries[m][column[idx]].AddScaled(w, est); err != nil {
					return nil, fmt.Errorf("%w: measurement %d: %v", ErrResultMismatch, m, err)
				}
			}
		}
	}
	return jac, nil
}

// directionalEstimate forms the coefficient-weighted sum of one
// direction's stencil results for measurement m. Integer-valued results
// (e.g. samples) are promoted to float64 before weighting.
func directionalEstimate(
	desc circuit.ResultDesc,
	ref circuit.Result,
	group []circuit.Result,
	zeroCoeff float64,
	coeffs []float64,
	m int,
) (*tensor.Raw, error) {
	est := tensor.Zeros(desc.Shape, tensor.Float64)
	if ref != nil {
		if m >= len(ref) {
			return nil, fmt.Errorf("%w: reference result has %d measurements, want > %d",
				ErrResultMismatch, len(ref), m)
		}
		if err := est.AddScaled(zeroCoeff, ref[m].ToFloat64()); err != nil {
			return nil, fmt.Errorf("%w: reference measurement %d: %v", ErrResultMismatch, m, err)
		}
	}
	for i, c := range coeffs {
		if m >= len(group[i]) {
			return nil, fmt.Errorf("%w: result has %d measurements, want > %d",
				ErrResultMismatch, len(group[i]), m)
		}
		if err := est.AddScaled(c, group[i][m].ToFloat64()); err != nil {
			return nil, fmt.Errorf("%w: measurement %d: %v", ErrResultMismatch, m, err)
		}
	}
	return est, nil
}
