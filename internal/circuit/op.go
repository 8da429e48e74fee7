// Package circuit defines the quantum tape data model: immutable records of
// operations and terminal measurements, the trainable-parameter index set,
// and a builder for recording circuits from plain Go functions.
//
// A tape never executes anything itself. Devices consume tapes; the
// gradients package reads parameter values and derives shifted copies.
package circuit

// Operation is a single gate record: an identifier, its continuous
// parameters, and the wires it acts on. Devices interpret the name;
// this package treats it as opaque.
type Operation struct {
	Name   string
	Params []float64
	Wires  []int
}

// clone returns a deep copy of the operation.
func (o Operation) clone() Operation {
	return Operation{
		Name:   o.Name,
		Params: append([]float64(nil), o.Params...),
		Wires:  append([]int(nil), o.Wires...),
	}
}

// Pauli identifies a single-qubit Pauli operator.
type Pauli byte

// Pauli operators usable as observable factors.
const (
	X Pauli = 'X'
	Y Pauli = 'Y'
	Z Pauli = 'Z'
)

// PauliFactor is one Pauli operator acting on one wire.
type PauliFactor struct {
	Op   Pauli
	Wire int
}

// Observable is a tensor product of single-qubit Pauli operators,
// e.g. PauliZ(0).Tensor(PauliX(1)) for Z⊗X on wires 0 and 1.
type Observable struct {
	Factors []PauliFactor
}

// PauliX returns the Pauli-X observable on the given wire.
func PauliX(wire int) Observable {
	return Observable{Factors: []PauliFactor{{Op: X, Wire: wire}}}
}

// PauliY returns the Pauli-Y observable on the given wire.
func PauliY(wire int) Observable {
	return Observable{Factors: []PauliFactor{{Op: Y, Wire: wire}}}
}

// PauliZ returns the Pauli-Z observable on the given wire.
func PauliZ(wire int) Observable {
	return Observable{Factors: []PauliFactor{{Op: Z, Wire: wire}}}
}

// Tensor returns the tensor product of two observables.
func (o Observable) Tensor(other Observable) Observable {
	factors := make([]PauliFactor, 0, len(o.Factors)+len(other.Factors))
	factors = append(factors, o.Factors...)
	factors = append(factors, other.Factors...)
	return Observable{Factors: factors}
}

// Wires returns the wires the observable acts on, in factor order.
func (o Observable) Wires() []int {
	wires := make([]int, len(o.Factors))
	for i, f := range o.Factors {
		wires[i] = f.Wire
	}
	return wires
}
