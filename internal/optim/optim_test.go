package optim

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spinor-ml/spinor/internal/circuit"
	"github.com/spinor-ml/spinor/internal/device"
)

// expvalTape builds RX(theta) with <Z(0)> as objective; the minimum -1
// sits at theta = pi.
func expvalTape(t *testing.T, theta float64) *circuit.Tape {
	t.Helper()
	tape, err := circuit.Record(func(b *circuit.Builder) error {
		b.RX(theta, 0)
		b.Expval(circuit.PauliZ(0))
		return nil
	})
	require.NoError(t, err)
	return tape
}

func TestGradientDescentConverges(t *testing.T) {
	sim := device.New(device.Config{})
	tape := expvalTape(t, 0.5)

	opt, err := NewGradientDescent(tape, sim, GradientDescentConfig{LR: 0.4})
	require.NoError(t, err)

	for i := 0; i < 60; i++ {
		require.NoError(t, opt.Step())
	}

	value, err := opt.Value()
	require.NoError(t, err)
	assert.InDelta(t, -1.0, value, 1e-2)
	assert.InDelta(t, math.Pi, opt.Params()[0], 0.2)
}

func TestGradientDescentDoesNotMutateInput(t *testing.T) {
	sim := device.New(device.Config{})
	tape := expvalTape(t, 0.5)

	opt, err := NewGradientDescent(tape, sim, GradientDescentConfig{})
	require.NoError(t, err)
	require.NoError(t, opt.Step())

	assert.Equal(t, []float64{0.5}, tape.Params())
	assert.NotEqual(t, tape.Params(), opt.Params())
}

func TestSPSAConverges(t *testing.T) {
	sim := device.New(device.Config{})
	tape := expvalTape(t, 0.5)

	opt, err := NewSPSA(tape, sim, SPSAConfig{
		A:   1.0,
		Rng: rand.New(rand.NewSource(17)),
	})
	require.NoError(t, err)

	start, err := opt.Value()
	require.NoError(t, err)

	for i := 0; i < 150; i++ {
		require.NoError(t, opt.Step())
	}
	assert.Equal(t, 150, opt.Iteration())

	end, err := opt.Value()
	require.NoError(t, err)
	assert.Less(t, end, start)
	assert.InDelta(t, -1.0, end, 0.1)
}

func TestScalarObjectiveRequired(t *testing.T) {
	sim := device.New(device.Config{})
	tape, err := circuit.Record(func(b *circuit.Builder) error {
		b.RX(0.5, 0)
		b.Probs(0)
		return nil
	})
	require.NoError(t, err)

	_, err = NewGradientDescent(tape, sim, GradientDescentConfig{})
	assert.ErrorContains(t, err, "scalar objective")

	_, err = NewSPSA(tape, sim, SPSAConfig{})
	assert.ErrorContains(t, err, "scalar objective")
}
