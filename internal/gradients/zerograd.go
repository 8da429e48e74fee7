package gradients

import (
	"github.com/spinor-ml/spinor/internal/circuit"
)

// influentialParams returns the subset of candidate flat parameter indices
// whose operations can reach a measured wire through the tape's gate
// structure. Parameters outside the subset provably have zero gradient and
// never need a device execution.
//
// The analysis is conservative: it walks the forward light-cone of the
// parameter's operation wires, treating any gate that shares a wire with
// the cone as spreading influence to all of its wires. It only prunes a
// parameter when the cone is disjoint from every measurement's wire
// support; anything it cannot prove stays in the returned subset.
func influentialParams(tape *circuit.Tape, candidates []int) ([]int, error) {
	measured := make(map[int]bool)
	for _, m := range tape.Measurements() {
		support := m.WireSupport()
		if len(support) == 0 {
			// Measurement observes every wire; nothing can be pruned.
			return append([]int(nil), candidates...), nil
		}
		for _, w := range support {
			measured[w] = true
		}
	}

	ops := tape.Operations()
	influential := make([]int, 0, len(candidates))
	for _, idx := range candidates {
		opIdx, err := tape.ParamOp(idx)
		if err != nil {
			return nil, err
		}
		if reachesMeasurement(ops[opIdx:], measured) {
			influential = append(influential, idx)
		}
	}
	return influential, nil
}

// reachesMeasurement walks the forward light-cone of ops[0]'s wires
// through the remaining operations and reports whether it intersects the
// measured wire set.
func reachesMeasurement(ops []circuit.Operation, measured map[int]bool) bool {
	cone := make(map[int]bool, len(ops[0].Wires))
	for _, w := range ops[0].Wires {
		cone[w] = true
	}
	for _, op := range ops[1:] {
		touches := false
		for _, w := range op.Wires {
			if cone[w] {
				touches = true
				break
			}
		}
		if touches {
			for _, w := range op.Wires {
				cone[w] = true
			}
		}
	}
	for w := range cone {
		if measured[w] {
			return true
		}
	}
	return false
}
