package gradients

import (
	"fmt"

	"github.com/spinor-ml/spinor/internal/circuit"
)

// buildVariants generates the shifted tapes for every direction.
//
// Tape order, which PostProcess relies on: one shared unshifted reference
// tape first (only when the stencil contains the zero shift and no f0 was
// supplied), then direction-major, stencil-point-minor shifted tapes. All
// variants are independent and may be executed in any batching the device
// chooses, but results must come back index-aligned with this order.
func buildVariants(
	tape *circuit.Tape,
	indices []int,
	directions [][]float64,
	stencil *Stencil,
	h float64,
	haveF0 bool,
) ([]*circuit.Tape, error) {
	var tapes []*circuit.Tape
	if stencil.HasZero() && !haveF0 {
		ref, err := tape.WithParams(tape.Params())
		if err != nil {
			return nil, err
		}
		tapes = append(tapes, ref)
	}

	shifts, _ := stencil.ShiftedPoints()
	for k, direction := range directions {
		if len(direction) != tape.NumParams() {
			return nil, fmt.Errorf("%w: direction %d has length %d, tape has %d parameters",
				ErrMalformedSampler, k, len(direction), tape.NumParams())
		}
		for _, shift := range shifts {
			deltas := make(map[int]float64, len(indices))
			for _, idx := range indices {
				deltas[idx] = shift * h * direction[idx]
			}
			variant, err := tape.Shifted(deltas)
			if err != nil {
				return nil, err
			}
			tapes = append(tapes, variant)
		}
	}
	return tapes, nil
}
