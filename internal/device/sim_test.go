package device

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spinor-ml/spinor/internal/circuit"
)

func record(t *testing.T, fn func(b *circuit.Builder) error) *circuit.Tape {
	t.Helper()
	tape, err := circuit.Record(fn)
	require.NoError(t, err)
	return tape
}

func execOne(t *testing.T, sim *Simulator, tape *circuit.Tape) circuit.Result {
	t.Helper()
	results, err := sim.Execute([]*circuit.Tape{tape})
	require.NoError(t, err)
	require.Len(t, results, 1)
	return results[0]
}

func TestExpvalRotations(t *testing.T) {
	sim := New(Config{})

	tests := []struct {
		name  string
		theta float64
	}{
		{"zero", 0},
		{"quarter", math.Pi / 4},
		{"half", math.Pi / 2},
		{"arbitrary", 0.543},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tape := record(t, func(b *circuit.Builder) error {
				b.RX(tt.theta, 0)
				b.Expval(circuit.PauliZ(0))
				return nil
			})
			res := execOne(t, sim, tape)
			assert.InDelta(t, math.Cos(tt.theta), res[0].AsFloat64()[0], 1e-12)
		})
	}
}

func TestExpvalTensorProduct(t *testing.T) {
	// <Z(0) ⊗ X(1)> for RX(x) RY(y) CNOT(0,1) is cos(x)sin(y).
	x, y := 0.543, -0.654
	sim := New(Config{})

	tape := record(t, func(b *circuit.Builder) error {
		b.RX(x, 0)
		b.RY(y, 1)
		b.CNOT(0, 1)
		b.Expval(circuit.PauliZ(0).Tensor(circuit.PauliX(1)))
		return nil
	})

	res := execOne(t, sim, tape)
	assert.InDelta(t, math.Cos(x)*math.Sin(y), res[0].AsFloat64()[0], 1e-12)
}

func TestVariance(t *testing.T) {
	theta := 0.8
	sim := New(Config{})

	tape := record(t, func(b *circuit.Builder) error {
		b.RX(theta, 0)
		b.Var(circuit.PauliZ(0))
		return nil
	})

	res := execOne(t, sim, tape)
	want := math.Sin(theta) * math.Sin(theta) // 1 - cos²
	assert.InDelta(t, want, res[0].AsFloat64()[0], 1e-12)
}

func TestRotGate(t *testing.T) {
	phi, theta, omega := 0.3, 0.7, -0.2
	sim := New(Config{})

	tape := record(t, func(b *circuit.Builder) error {
		b.Rot(phi, theta, omega, 0)
		b.Expval(circuit.PauliZ(0))
		return nil
	})

	res := execOne(t, sim, tape)
	// <Z> after Rot on |0> depends only on the RY angle.
	assert.InDelta(t, math.Cos(theta), res[0].AsFloat64()[0], 1e-12)
}

func TestBellProbs(t *testing.T) {
	sim := New(Config{})

	tape := record(t, func(b *circuit.Builder) error {
		b.H(0)
		b.CNOT(0, 1)
		b.Probs(0, 1)
		return nil
	})

	res := execOne(t, sim, tape)
	assert.InDeltaSlice(t, []float64{0.5, 0, 0, 0.5}, res[0].AsFloat64(), 1e-12)
}

func TestMarginalProbs(t *testing.T) {
	sim := New(Config{})

	tape := record(t, func(b *circuit.Builder) error {
		b.H(0)
		b.CNOT(0, 1)
		b.Probs(1)
		return nil
	})

	res := execOne(t, sim, tape)
	assert.InDeltaSlice(t, []float64{0.5, 0.5}, res[0].AsFloat64(), 1e-12)
}

func TestSampleDeterministicState(t *testing.T) {
	sim := New(Config{Seed: 7})

	tape := record(t, func(b *circuit.Builder) error {
		b.X(0)
		b.SetShots(20)
		b.Sample(0, 1)
		return nil
	})

	res := execOne(t, sim, tape)
	data := res[0].AsInt64()
	require.Len(t, data, 40)
	for s := 0; s < 20; s++ {
		assert.Equal(t, int64(1), data[2*s], "wire 0 must read 1")
		assert.Equal(t, int64(0), data[2*s+1], "wire 1 must read 0")
	}
}

func TestSampleReproducible(t *testing.T) {
	run := func() []int64 {
		sim := New(Config{Seed: 42})
		tape := record(t, func(b *circuit.Builder) error {
			b.H(0)
			b.SetShots(50)
			b.Sample(0)
			return nil
		})
		return execOne(t, sim, tape)[0].AsInt64()
	}
	assert.Equal(t, run(), run())
}

func TestUnsupportedGate(t *testing.T) {
	sim := New(Config{})
	tape := record(t, func(b *circuit.Builder) error {
		b.Apply("Toffoli", nil, 0, 1, 2)
		b.Expval(circuit.PauliZ(0))
		return nil
	})
	_, err := sim.Execute([]*circuit.Tape{tape})
	assert.ErrorContains(t, err, "Toffoli")
}

func TestSampleWithoutShots(t *testing.T) {
	sim := New(Config{})
	tape := record(t, func(b *circuit.Builder) error {
		b.H(0)
		b.Sample(0)
		return nil
	})
	_, err := sim.Execute([]*circuit.Tape{tape})
	assert.ErrorContains(t, err, "shot")
}

func TestBatchOrderPreserved(t *testing.T) {
	sim := New(Config{Parallel: true})

	thetas := []float64{0.1, 0.4, 0.9, 1.3, 2.1, 2.9, 0.05, 1.7}
	tapes := make([]*circuit.Tape, len(thetas))
	for i, theta := range thetas {
		theta := theta
		tapes[i] = record(t, func(b *circuit.Builder) error {
			b.RX(theta, 0)
			b.Expval(circuit.PauliZ(0))
			return nil
		})
	}

	results, err := sim.Execute(tapes)
	require.NoError(t, err)
	require.Len(t, results, len(thetas))
	for i, theta := range thetas {
		assert.InDelta(t, math.Cos(theta), results[i][0].AsFloat64()[0], 1e-12,
			"result %d out of order", i)
	}
}
