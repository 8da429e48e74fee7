package circuit

import "fmt"

// Builder collects operation and measurement records while a circuit
// function runs. It replaces implicit construction-time queuing with an
// explicit object handed to the circuit function; Record guarantees the
// builder is finalized when the function exits, normally or not.
type Builder struct {
	ops          []Operation
	measurements []Measurement
	trainable    []int
	shots        int
	done         bool
}

// Record runs fn with a fresh builder and returns the recorded tape.
// The builder is invalidated when Record returns; any later use panics.
func Record(fn func(b *Builder) error) (*Tape, error) {
	b := &Builder{}
	defer func() { b.done = true }()
	if err := fn(b); err != nil {
		return nil, err
	}
	tape := NewTape(b.ops, b.measurements)
	tape.shots = b.shots
	if b.trainable != nil {
		var err error
		tape, err = tape.WithTrainable(b.trainable...)
		if err != nil {
			return nil, err
		}
	}
	return tape, nil
}

func (b *Builder) check() {
	if b.done {
		panic("circuit: builder used after Record returned")
	}
}

// Apply records a gate by name.
func (b *Builder) Apply(name string, params []float64, wires ...int) {
	b.check()
	b.ops = append(b.ops, Operation{
		Name:   name,
		Params: append([]float64(nil), params...),
		Wires:  append([]int(nil), wires...),
	})
}

// RX records an X-rotation gate.
func (b *Builder) RX(theta float64, wire int) { b.Apply("RX", []float64{theta}, wire) }

// RY records a Y-rotation gate.
func (b *Builder) RY(theta float64, wire int) { b.Apply("RY", []float64{theta}, wire) }

// RZ records a Z-rotation gate.
func (b *Builder) RZ(theta float64, wire int) { b.Apply("RZ", []float64{theta}, wire) }

// Rot records the general single-qubit rotation RZ(omega)·RY(theta)·RZ(phi).
func (b *Builder) Rot(phi, theta, omega float64, wire int) {
	b.Apply("Rot", []float64{phi, theta, omega}, wire)
}

// PhaseShift records a phase-shift gate diag(1, e^{i·phi}).
func (b *Builder) PhaseShift(phi float64, wire int) { b.Apply("PhaseShift", []float64{phi}, wire) }

// H records a Hadamard gate.
func (b *Builder) H(wire int) { b.Apply("H", nil, wire) }

// X records a Pauli-X gate.
func (b *Builder) X(wire int) { b.Apply("X", nil, wire) }

// Y records a Pauli-Y gate.
func (b *Builder) Y(wire int) { b.Apply("Y", nil, wire) }

// Z records a Pauli-Z gate.
func (b *Builder) Z(wire int) { b.Apply("Z", nil, wire) }

// S records the S gate.
func (b *Builder) S(wire int) { b.Apply("S", nil, wire) }

// T records the T gate.
func (b *Builder) T(wire int) { b.Apply("T", nil, wire) }

// CNOT records a controlled-NOT gate.
func (b *Builder) CNOT(control, target int) { b.Apply("CNOT", nil, control, target) }

// CZ records a controlled-Z gate.
func (b *Builder) CZ(control, target int) { b.Apply("CZ", nil, control, target) }

// SWAP records a SWAP gate.
func (b *Builder) SWAP(a, c int) { b.Apply("SWAP", nil, a, c) }

// Expval records an expectation-value measurement of the observable.
func (b *Builder) Expval(obs Observable) {
	b.check()
	b.measurements = append(b.measurements, Measurement{Kind: Expval, Observable: obs})
}

// Var records a variance measurement of the observable.
func (b *Builder) Var(obs Observable) {
	b.check()
	b.measurements = append(b.measurements, Measurement{Kind: Variance, Observable: obs})
}

// Probs records a computational-basis probability measurement over wires
// (all wires if none are given).
func (b *Builder) Probs(wires ...int) {
	b.check()
	b.measurements = append(b.measurements, Measurement{Kind: Probs, Wires: wires})
}

// Sample records a shot-based computational-basis sample measurement over
// wires (all wires if none are given). SetShots must be called with a
// positive shot number for the tape to be executable.
func (b *Builder) Sample(wires ...int) {
	b.check()
	b.measurements = append(b.measurements, Measurement{Kind: Sample, Wires: wires})
}

// SetShots sets the tape's shot number (0 = analytic).
func (b *Builder) SetShots(shots int) {
	b.check()
	if shots < 0 {
		panic(fmt.Sprintf("circuit: negative shot number %d", shots))
	}
	b.shots = shots
}

// SetTrainable overrides the default all-parameters-trainable set with the
// given flat parameter indices.
func (b *Builder) SetTrainable(indices ...int) {
	b.check()
	b.trainable = append([]int{}, indices...)
}
