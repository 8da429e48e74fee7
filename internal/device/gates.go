package device

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/spinor-ml/spinor/internal/circuit"
)

// state is a statevector over numWires qubits. Wire 0 is the most
// significant bit of the basis index.
type state struct {
	amps     []complex128
	numWires int
}

func newState(numWires int) *state {
	amps := make([]complex128, 1<<numWires)
	amps[0] = 1
	return &state{amps: amps, numWires: numWires}
}

func (s *state) clone() *state {
	amps := make([]complex128, len(s.amps))
	copy(amps, s.amps)
	return &state{amps: amps, numWires: s.numWires}
}

// mask returns the basis-index bit mask for a wire.
func (s *state) mask(wire int) int {
	return 1 << (s.numWires - 1 - wire)
}

// apply1 applies a single-qubit gate matrix to the target wire.
func (s *state) apply1(m [2][2]complex128, target int) {
	mask := s.mask(target)
	for i := range s.amps {
		if i&mask != 0 {
			continue
		}
		j := i | mask
		a0, a1 := s.amps[i], s.amps[j]
		s.amps[i] = m[0][0]*a0 + m[0][1]*a1
		s.amps[j] = m[1][0]*a0 + m[1][1]*a1
	}
}

// applyCNOT applies a controlled-NOT gate.
func (s *state) applyCNOT(control, target int) {
	cm, tm := s.mask(control), s.mask(target)
	for i := range s.amps {
		if i&cm != 0 && i&tm == 0 {
			j := i | tm
			s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
		}
	}
}

// applyCZ applies a controlled-Z gate.
func (s *state) applyCZ(control, target int) {
	cm, tm := s.mask(control), s.mask(target)
	for i := range s.amps {
		if i&cm != 0 && i&tm != 0 {
			s.amps[i] = -s.amps[i]
		}
	}
}

// applySWAP exchanges two wires.
func (s *state) applySWAP(a, b int) {
	am, bm := s.mask(a), s.mask(b)
	for i := range s.amps {
		if i&am != 0 && i&bm == 0 {
			j := (i &^ am) | bm
			s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
		}
	}
}

// apply dispatches one operation record onto the state.
func (s *state) apply(op circuit.Operation) error {
	if m, ok := singleQubitMatrix(op.Name, op.Params); ok {
		if len(op.Wires) != 1 {
			return fmt.Errorf("gate %s expects 1 wire, got %d", op.Name, len(op.Wires))
		}
		s.apply1(m, op.Wires[0])
		return nil
	}
	switch op.Name {
	case "CNOT", "CZ", "SWAP":
		if len(op.Wires) != 2 {
			return fmt.Errorf("gate %s expects 2 wires, got %d", op.Name, len(op.Wires))
		}
		switch op.Name {
		case "CNOT":
			s.applyCNOT(op.Wires[0], op.Wires[1])
		case "CZ":
			s.applyCZ(op.Wires[0], op.Wires[1])
		case "SWAP":
			s.applySWAP(op.Wires[0], op.Wires[1])
		}
		return nil
	default:
		return fmt.Errorf("unsupported gate %q", op.Name)
	}
}

// singleQubitMatrix returns the 2x2 matrix of a named single-qubit gate.
func singleQubitMatrix(name string, params []float64) ([2][2]complex128, bool) {
	switch name {
	case "RX":
		c, si := rotHalf(params[0])
		return [2][2]complex128{{c, -1i * si}, {-1i * si, c}}, true
	case "RY":
		c, si := rotHalf(params[0])
		return [2][2]complex128{{c, -si}, {si, c}}, true
	case "RZ":
		return rzMatrix(params[0]), true
	case "Rot":
		// RZ(omega) · RY(theta) · RZ(phi)
		phi, theta, omega := params[0], params[1], params[2]
		c, si := rotHalf(theta)
		ry := [2][2]complex128{{c, -si}, {si, c}}
		return mul2(rzMatrix(omega), mul2(ry, rzMatrix(phi))), true
	case "PhaseShift":
		return [2][2]complex128{{1, 0}, {0, cmplx.Exp(complex(0, params[0]))}}, true
	case "H":
		h := complex(1/math.Sqrt2, 0)
		return [2][2]complex128{{h, h}, {h, -h}}, true
	case "X":
		return pauliMatrix(circuit.X), true
	case "Y":
		return pauliMatrix(circuit.Y), true
	case "Z":
		return pauliMatrix(circuit.Z), true
	case "S":
		return [2][2]complex128{{1, 0}, {0, 1i}}, true
	case "T":
		return [2][2]complex128{{1, 0}, {0, cmplx.Exp(complex(0, math.Pi/4))}}, true
	default:
		return [2][2]complex128{}, false
	}
}

func pauliMatrix(p circuit.Pauli) [2][2]complex128 {
	switch p {
	case circuit.X:
		return [2][2]complex128{{0, 1}, {1, 0}}
	case circuit.Y:
		return [2][2]complex128{{0, -1i}, {1i, 0}}
	case circuit.Z:
		return [2][2]complex128{{1, 0}, {0, -1}}
	default:
		panic(fmt.Sprintf("unknown Pauli %q", string(p)))
	}
}

func rzMatrix(theta float64) [2][2]complex128 {
	return [2][2]complex128{
		{cmplx.Exp(complex(0, -theta/2)), 0},
		{0, cmplx.Exp(complex(0, theta/2))},
	}
}

func rotHalf(theta float64) (complex128, complex128) {
	return complex(math.Cos(theta/2), 0), complex(math.Sin(theta/2), 0)
}

func mul2(a, b [2][2]complex128) [2][2]complex128 {
	var out [2][2]complex128
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			out[i][j] = a[i][0]*b[0][j] + a[i][1]*b[1][j]
		}
	}
	return out
}
