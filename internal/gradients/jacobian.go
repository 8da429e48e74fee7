package gradients

import (
	"github.com/spinor-ml/spinor/internal/circuit"
	"github.com/spinor-ml/spinor/internal/tensor"
)

// Jacobian is the estimated derivative of every measurement with respect
// to every trainable parameter. Leaves are Float64 arrays shaped like the
// corresponding measurement's result; parameters proven non-influential
// (or excluded via argnum) hold exact zeros, never nil.
//
// Indexing is [measurement][trainable parameter], aligned with the tape's
// measurement order and its sorted trainable-parameter index set.
type Jacobian struct {
	descs   []circuit.ResultDesc
	entries [][]*tensor.Raw
}

// newZeroJacobian allocates a Jacobian of exact zeros for the given
// measurement descriptors and parameter count.
func newZeroJacobian(descs []circuit.ResultDesc, numParams int) *Jacobian {
	entries := make([][]*tensor.Raw, len(descs))
	for m, desc := range descs {
		entries[m] = make([]*tensor.Raw, numParams)
		for j := range entries[m] {
			entries[m][j] = tensor.Zeros(desc.Shape, tensor.Float64)
		}
	}
	return &Jacobian{descs: descs, entries: entries}
}

// NumMeasurements returns the number of measurement rows.
func (j *Jacobian) NumMeasurements() int {
	return len(j.entries)
}

// NumParams returns the number of trainable-parameter columns.
func (j *Jacobian) NumParams() int {
	if len(j.entries) == 0 {
		return 0
	}
	return len(j.entries[0])
}

// Entry returns the derivative of measurement m with respect to trainable
// parameter p, shaped like that measurement's result.
func (j *Jacobian) Entry(m, p int) *tensor.Raw {
	return j.entries[m][p]
}

// Row returns all parameter derivatives of measurement m.
// The returned slice must not be modified.
func (j *Jacobian) Row(m int) []*tensor.Raw {
	return j.entries[m]
}

// Descs returns the measurement result descriptors the Jacobian mirrors.
func (j *Jacobian) Descs() []circuit.ResultDesc {
	return j.descs
}
