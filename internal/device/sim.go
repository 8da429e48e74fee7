// Package device provides the execution collaborator consumed by the
// gradient core: something that runs a batch of tapes and returns
// index-aligned results. Simulator is a reference statevector
// implementation used by tests, examples and optimizers.
package device

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/spinor-ml/spinor/internal/circuit"
	"github.com/spinor-ml/spinor/internal/parallel"
	"github.com/spinor-ml/spinor/internal/tensor"
)

// Device executes a batch of tapes. Results are index-aligned with the
// input batch; no reordering is permitted.
type Device interface {
	Execute(tapes []*circuit.Tape) ([]circuit.Result, error)
}

// Config controls the simulator.
type Config struct {
	// Wires fixes the register width. 0 derives it per tape.
	Wires int
	// Seed seeds the rng used for Sample measurements. 0 uses a fixed
	// default so simulations are reproducible unless asked otherwise.
	Seed int64
	// Parallel enables chunked parallel execution of analytic batches.
	Parallel bool
}

// Simulator is an analytic statevector simulator over complex128
// amplitudes, with shot-based computational-basis sampling.
type Simulator struct {
	cfg Config
	rng *rand.Rand
}

// New creates a simulator.
func New(cfg Config) *Simulator {
	seed := cfg.Seed
	if seed == 0 {
		seed = 1
	}
	return &Simulator{cfg: cfg, rng: rand.New(rand.NewSource(seed))}
}

// Execute runs every tape and returns results index-aligned with the
// batch. Analytic batches (no shots anywhere) may run in parallel; batches
// containing sampling run sequentially so the rng stream stays
// deterministic.
func (s *Simulator) Execute(tapes []*circuit.Tape) ([]circuit.Result, error) {
	analytic := true
	for _, t := range tapes {
		if t.Shots() > 0 {
			analytic = false
			break
		}
	}

	cfg := parallel.DefaultConfig()
	cfg.Enabled = cfg.Enabled && s.cfg.Parallel && analytic

	return parallel.Map(len(tapes), func(i int) (circuit.Result, error) {
		return s.runTape(tapes[i])
	}, cfg)
}

// runTape simulates one tape and evaluates its measurements in order.
func (s *Simulator) runTape(tape *circuit.Tape) (circuit.Result, error) {
	numWires := tape.NumWires()
	if s.cfg.Wires > numWires {
		numWires = s.cfg.Wires
	}
	if numWires == 0 {
		return nil, fmt.Errorf("tape touches no wires")
	}

	st := newState(numWires)
	for _, op := range tape.Operations() {
		if err := st.apply(op); err != nil {
			return nil, err
		}
	}

	result := make(circuit.Result, len(tape.Measurements()))
	for i, m := range tape.Measurements() {
		v, err := s.measure(st, m, tape.Shots())
		if err != nil {
			return nil, fmt.Errorf("measurement %d (%s): %w", i, m.Kind, err)
		}
		result[i] = v
	}
	return result, nil
}

func (s *Simulator) measure(st *state, m circuit.Measurement, shots int) (*tensor.Raw, error) {
	switch m.Kind {
	case circuit.Expval:
		return tensor.Scalar(expval(st, m.Observable)), nil
	case circuit.Variance:
		e := expval(st, m.Observable)
		e2 := expvalSquared(st, m.Observable)
		return tensor.Scalar(e2 - e*e), nil
	case circuit.Probs:
		wires := m.Wires
		if len(wires) == 0 {
			wires = allWires(st.numWires)
		}
		return tensor.FromFloat64s(probs(st, wires), tensor.Shape{1 << len(wires)})
	case circuit.Sample:
		if shots <= 0 {
			return nil, fmt.Errorf("sample measurement requires a positive shot number, got %d", shots)
		}
		wires := m.Wires
		if len(wires) == 0 {
			wires = allWires(st.numWires)
		}
		return sample(st, wires, shots, s.rng)
	default:
		return nil, fmt.Errorf("unsupported measurement kind %d", m.Kind)
	}
}

// applyObservable applies the Pauli tensor product to a copy of the state.
func applyObservable(st *state, obs circuit.Observable) *state {
	phi := st.clone()
	for _, f := range obs.Factors {
		phi.apply1(pauliMatrix(f.Op), f.Wire)
	}
	return phi
}

// expval computes ⟨ψ|O|ψ⟩ for a Pauli product observable.
func expval(st *state, obs circuit.Observable) float64 {
	phi := applyObservable(st, obs)
	return innerReal(st, phi)
}

// expvalSquared computes ⟨ψ|O²|ψ⟩.
func expvalSquared(st *state, obs circuit.Observable) float64 {
	phi := applyObservable(applyObservable(st, obs), obs)
	return innerReal(st, phi)
}

func innerReal(a, b *state) float64 {
	var sum complex128
	for i := range a.amps {
		// conj(a_i) * b_i
		ai := a.amps[i]
		sum += complex(real(ai), -imag(ai)) * b.amps[i]
	}
	return real(sum)
}

// probs returns the marginal computational-basis distribution over wires,
// in the bit order the wires are listed.
func probs(st *state, wires []int) []float64 {
	out := make([]float64, 1<<len(wires))
	for i, amp := range st.amps {
		p := real(amp)*real(amp) + imag(amp)*imag(amp)
		sub := 0
		for _, w := range wires {
			sub <<= 1
			if i&st.mask(w) != 0 {
				sub |= 1
			}
		}
		out[sub] += p
	}
	return out
}

// sample draws shot basis states and extracts the bits of wires, yielding
// an int64 matrix of shape {shots, len(wires)} with 0/1 entries.
func sample(st *state, wires []int, shots int, rng *rand.Rand) (*tensor.Raw, error) {
	cdf := make([]float64, len(st.amps))
	acc := 0.0
	for i, amp := range st.amps {
		acc += real(amp)*real(amp) + imag(amp)*imag(amp)
		cdf[i] = acc
	}

	data := make([]int64, shots*len(wires))
	for s := 0; s < shots; s++ {
		idx := sort.SearchFloat64s(cdf, rng.Float64())
		if idx >= len(st.amps) {
			idx = len(st.amps) - 1
		}
		for j, w := range wires {
			if idx&st.mask(w) != 0 {
				data[s*len(wires)+j] = 1
			}
		}
	}
	return tensor.FromInt64s(data, tensor.Shape{shots, len(wires)})
}

func allWires(n int) []int {
	wires := make([]int, n)
	for i := range wires {
		wires[i] = i
	}
	return wires
}
