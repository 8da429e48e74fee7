// Copyright 2026 Spinor Quantum Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package circuit provides the public API for building and inspecting
// quantum tapes: immutable records of operations, terminal measurements
// and the trainable-parameter index set.
//
// Circuits are recorded through an explicit builder:
//
//	tape, err := circuit.Record(func(b *circuit.Builder) error {
//	    b.RX(0.543, 0)
//	    b.RY(-0.654, 1)
//	    b.CNOT(0, 1)
//	    b.Expval(circuit.PauliZ(0).Tensor(circuit.PauliX(1)))
//	    return nil
//	})
package circuit

import (
	"github.com/spinor-ml/spinor/internal/circuit"
)

// Tape is an immutable circuit record.
type Tape = circuit.Tape

// Builder collects operation and measurement records during Record.
type Builder = circuit.Builder

// Operation is a single gate record.
type Operation = circuit.Operation

// Observable is a tensor product of single-qubit Pauli operators.
type Observable = circuit.Observable

// Measurement is a terminal measurement record.
type Measurement = circuit.Measurement

// MeasurementKind tags a terminal measurement.
type MeasurementKind = circuit.MeasurementKind

// Measurement kinds.
const (
	Expval   MeasurementKind = circuit.Expval
	Variance MeasurementKind = circuit.Variance
	Probs    MeasurementKind = circuit.Probs
	Sample   MeasurementKind = circuit.Sample
)

// ResultDesc describes the static shape of one measurement's result.
type ResultDesc = circuit.ResultDesc

// Result is the output of executing one tape.
type Result = circuit.Result

// NewTape builds a tape directly from records; most callers use Record.
func NewTape(ops []Operation, measurements []Measurement) *Tape {
	return circuit.NewTape(ops, measurements)
}

// Record runs fn with a fresh builder and returns the recorded tape.
func Record(fn func(b *Builder) error) (*Tape, error) {
	return circuit.Record(fn)
}

// PauliX returns the Pauli-X observable on the given wire.
func PauliX(wire int) Observable { return circuit.PauliX(wire) }

// PauliY returns the Pauli-Y observable on the given wire.
func PauliY(wire int) Observable { return circuit.PauliY(wire) }

// PauliZ returns the Pauli-Z observable on the given wire.
func PauliZ(wire int) Observable { return circuit.PauliZ(wire) }
