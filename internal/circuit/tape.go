package circuit

import (
	"fmt"
	"sort"
)

// Tape is an immutable ordered record of operations and terminal
// measurements, together with a trainable-parameter index set: the subset
// of indices into the flattened parameter list (the concatenation of every
// operation's Params, in operation order) that participate in
// differentiation.
//
// Tapes are never mutated. WithParams and Shifted return fresh copies.
type Tape struct {
	ops          []Operation
	measurements []Measurement
	trainable    []int // sorted flat parameter indices
	shots        int   // 0 = analytic
}

// NewTape builds a tape from operation and measurement records.
// All parameters are trainable by default; shots defaults to analytic.
// The input slices are deep-copied.
func NewTape(ops []Operation, measurements []Measurement) *Tape {
	t := &Tape{
		ops:          make([]Operation, len(ops)),
		measurements: make([]Measurement, len(measurements)),
	}
	for i, op := range ops {
		t.ops[i] = op.clone()
	}
	for i, m := range measurements {
		t.measurements[i] = m.clone()
	}
	t.trainable = make([]int, t.NumParams())
	for i := range t.trainable {
		t.trainable[i] = i
	}
	return t
}

// Operations returns the tape's operation records.
// The returned slice must not be modified.
func (t *Tape) Operations() []Operation {
	return t.ops
}

// Measurements returns the tape's measurement records.
// The returned slice must not be modified.
func (t *Tape) Measurements() []Measurement {
	return t.measurements
}

// Shots returns the tape's shot number (0 = analytic).
func (t *Tape) Shots() int {
	return t.shots
}

// NumParams returns the length of the flattened parameter list.
func (t *Tape) NumParams() int {
	n := 0
	for _, op := range t.ops {
		n += len(op.Params)
	}
	return n
}

// Params returns the flattened parameter list as a fresh slice.
func (t *Tape) Params() []float64 {
	params := make([]float64, 0, t.NumParams())
	for _, op := range t.ops {
		params = append(params, op.Params...)
	}
	return params
}

// TrainableParams returns the sorted trainable-parameter index set.
// The returned slice must not be modified.
func (t *Tape) TrainableParams() []int {
	return t.trainable
}

// NumWires returns the number of wires the tape touches, assuming wires
// are labeled 0..n-1 (the convention throughout this module).
func (t *Tape) NumWires() int {
	max := -1
	for _, op := range t.ops {
		for _, w := range op.Wires {
			if w > max {
				max = w
			}
		}
	}
	for _, m := range t.measurements {
		for _, w := range m.WireSupport() {
			if w > max {
				max = w
			}
		}
	}
	return max + 1
}

// ResultDescs resolves the static result descriptor of every measurement.
func (t *Tape) ResultDescs() []ResultDesc {
	numWires := t.NumWires()
	descs := make([]ResultDesc, len(t.measurements))
	for i, m := range t.measurements {
		descs[i] = m.Desc(numWires, t.shots)
	}
	return descs
}

// ParamOp returns the operation index owning the given flat parameter
// index, or an error if the index is out of range.
func (t *Tape) ParamOp(index int) (int, error) {
	if index < 0 {
		return 0, fmt.Errorf("parameter index %d out of range", index)
	}
	offset := 0
	for i, op := range t.ops {
		if index < offset+len(op.Params) {
			return i, nil
		}
		offset += len(op.Params)
	}
	return 0, fmt.Errorf("parameter index %d out of range (tape has %d parameters)", index, offset)
}

// WithTrainable returns a copy of the tape with the given flat parameter
// indices marked trainable. Indices are sorted and deduplicated.
func (t *Tape) WithTrainable(indices ...int) (*Tape, error) {
	n := t.NumParams()
	seen := make(map[int]bool, len(indices))
	sorted := make([]int, 0, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= n {
			return nil, fmt.Errorf("trainable parameter index %d out of range (tape has %d parameters)", idx, n)
		}
		if !seen[idx] {
			seen[idx] = true
			sorted = append(sorted, idx)
		}
	}
	sort.Ints(sorted)
	c := t.shallowClone()
	c.trainable = sorted
	return c, nil
}

// WithShots returns a copy of the tape with the given shot number.
func (t *Tape) WithShots(shots int) *Tape {
	c := t.shallowClone()
	c.shots = shots
	return c
}

// WithParams returns a copy of the tape with the flattened parameter list
// replaced by values. The length must match NumParams.
func (t *Tape) WithParams(values []float64) (*Tape, error) {
	if len(values) != t.NumParams() {
		return nil, fmt.Errorf("got %d parameter values, tape has %d parameters",
			len(values), t.NumParams())
	}
	c := t.deepCloneOps()
	offset := 0
	for i := range c.ops {
		n := len(c.ops[i].Params)
		copy(c.ops[i].Params, values[offset:offset+n])
		offset += n
	}
	return c, nil
}

// Shifted returns a copy of the tape with the parameters at the given flat
// indices shifted by the corresponding deltas.
func (t *Tape) Shifted(deltas map[int]float64) (*Tape, error) {
	params := t.Params()
	for idx, d := range deltas {
		if idx < 0 || idx >= len(params) {
			return nil, fmt.Errorf("shift index %d out of range (tape has %d parameters)",
				idx, len(params))
		}
		params[idx] += d
	}
	return t.WithParams(params)
}

// shallowClone copies the tape header, sharing immutable record slices.
func (t *Tape) shallowClone() *Tape {
	return &Tape{
		ops:          t.ops,
		measurements: t.measurements,
		trainable:    append([]int(nil), t.trainable...),
		shots:        t.shots,
	}
}

// deepCloneOps copies the tape including operation parameter storage,
// so the copy's parameters can be rewritten.
func (t *Tape) deepCloneOps() *Tape {
	c := t.shallowClone()
	c.ops = make([]Operation, len(t.ops))
	for i, op := range t.ops {
		c.ops[i] = op.clone()
	}
	return c
}
