package circuit

import (
	"fmt"

	"github.com/spinor-ml/spinor/internal/tensor"
)

// MeasurementKind tags a terminal measurement.
type MeasurementKind int

// Supported measurement kinds.
const (
	// Expval is the expectation value of an observable (scalar, analytic).
	Expval MeasurementKind = iota
	// Variance is the variance of an observable (scalar, analytic).
	Variance
	// Probs is the marginal computational-basis probability distribution
	// over the measurement's wires (vector of length 2^len(wires)).
	Probs
	// Sample is shot-based computational-basis sampling over the
	// measurement's wires (int64 matrix of shape {shots, len(wires)}).
	Sample
)

// String returns a human-readable kind name.
func (k MeasurementKind) String() string {
	switch k {
	case Expval:
		return "expval"
	case Variance:
		return "var"
	case Probs:
		return "probs"
	case Sample:
		return "sample"
	default:
		return "unknown"
	}
}

// Measurement is a terminal measurement record. Observable is set for
// Expval and Variance; Wires is set for Probs and Sample (empty means
// all wires of the tape).
type Measurement struct {
	Kind       MeasurementKind
	Observable Observable
	Wires      []int
}

// WireSupport returns the wires whose state the measurement depends on.
// An empty slice means the measurement observes every wire.
func (m Measurement) WireSupport() []int {
	if m.Kind == Expval || m.Kind == Variance {
		return m.Observable.Wires()
	}
	return append([]int(nil), m.Wires...)
}

// clone returns a deep copy of the measurement.
func (m Measurement) clone() Measurement {
	return Measurement{
		Kind: m.Kind,
		Observable: Observable{
			Factors: append([]PauliFactor(nil), m.Observable.Factors...),
		},
		Wires: append([]int(nil), m.Wires...),
	}
}

// ResultDesc describes the static shape of one measurement's result.
// It is fixed by the tape's measurement records alone, independent of
// parameter values, which is what licenses zero-filling results for
// non-influential parameters without executing a device.
type ResultDesc struct {
	Kind  MeasurementKind
	Shape tensor.Shape
	DType tensor.DataType
}

// Desc resolves the measurement's result descriptor for a tape with the
// given wire count and shot number.
func (m Measurement) Desc(numWires, shots int) ResultDesc {
	switch m.Kind {
	case Expval, Variance:
		return ResultDesc{Kind: m.Kind, Shape: tensor.Shape{}, DType: tensor.Float64}
	case Probs:
		n := len(m.Wires)
		if n == 0 {
			n = numWires
		}
		return ResultDesc{Kind: m.Kind, Shape: tensor.Shape{1 << n}, DType: tensor.Float64}
	case Sample:
		n := len(m.Wires)
		if n == 0 {
			n = numWires
		}
		return ResultDesc{Kind: m.Kind, Shape: tensor.Shape{shots, n}, DType: tensor.Int64}
	default:
		panic(fmt.Sprintf("unknown measurement kind %d", m.Kind))
	}
}

// Result is the output of executing one tape: one value per measurement,
// in measurement order.
type Result []*tensor.Raw
