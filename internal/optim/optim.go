// Package optim provides optimizers that drive a tape's trainable
// parameters using SPSA gradient estimates against a device.
//
// The optimizers own a working copy of the tape; Step replaces it with an
// updated copy, so the caller's original tape is never mutated.
package optim

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/spinor-ml/spinor/internal/circuit"
	"github.com/spinor-ml/spinor/internal/device"
	"github.com/spinor-ml/spinor/internal/gradients"
)

// objectiveTape checks that a tape's first measurement is a scalar
// objective an optimizer can descend on.
func objectiveTape(tape *circuit.Tape) error {
	ms := tape.Measurements()
	if len(ms) == 0 {
		return fmt.Errorf("tape has no measurements to optimize")
	}
	if k := ms[0].Kind; k != circuit.Expval && k != circuit.Variance {
		return fmt.Errorf("first measurement must be a scalar objective, got %s", k)
	}
	return nil
}

// GradientDescentConfig holds configuration for GradientDescent.
type GradientDescentConfig struct {
	LR   float64          // Learning rate (default: 0.01)
	Grad gradients.Config // Gradient estimator settings
}

// GradientDescent minimizes a tape's first (scalar) measurement by plain
// gradient descent on SPSA-estimated gradients.
type GradientDescent struct {
	tape *circuit.Tape
	dev  device.Device
	lr   float64
	gcfg gradients.Config
}

// NewGradientDescent creates a gradient-descent optimizer over the tape's
// trainable parameters.
func NewGradientDescent(tape *circuit.Tape, dev device.Device, config GradientDescentConfig) (*GradientDescent, error) {
	if err := objectiveTape(tape); err != nil {
		return nil, err
	}
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &GradientDescent{tape: tape, dev: dev, lr: config.LR, gcfg: config.Grad}, nil
}

// Tape returns the optimizer's current tape.
func (o *GradientDescent) Tape() *circuit.Tape {
	return o.tape
}

// Params returns the current flattened parameter values.
func (o *GradientDescent) Params() []float64 {
	return o.tape.Params()
}

// Value executes the current tape and returns the objective value.
func (o *GradientDescent) Value() (float64, error) {
	results, err := o.dev.Execute([]*circuit.Tape{o.tape})
	if err != nil {
		return 0, err
	}
	return results[0][0].AsFloat64()[0], nil
}

// Step estimates the gradient and applies one descent update.
func (o *GradientDescent) Step() error {
	updated, err := descend(o.tape, o.dev, o.gcfg, o.lr)
	if err != nil {
		return err
	}
	o.tape = updated
	return nil
}

// SPSAConfig holds the gain schedules of the SPSA optimizer.
//
// At iteration k (1-based), the perturbation size is c/k^gamma and the
// step size is a/(k+A)^alpha, the standard Spall schedules.
type SPSAConfig struct {
	A     float64 // Initial step-size numerator (default: 0.05)
	C     float64 // Initial perturbation size (default: 0.2)
	Alpha float64 // Step-size decay exponent (default: 0.602)
	Gamma float64 // Perturbation decay exponent (default: 0.101)
	Stab  float64 // Stability constant added to the iteration count (default: 10)
	Rng   *rand.Rand
}

// SPSA minimizes a tape's first (scalar) measurement with the classic
// simultaneous-perturbation schedule: a single Rademacher direction per
// step and decaying gains, trading per-step accuracy for a device-call
// count independent of the parameter count.
type SPSA struct {
	tape *circuit.Tape
	dev  device.Device
	cfg  SPSAConfig
	k    int // Iteration counter for the gain schedules
}

// NewSPSA creates an SPSA optimizer.
func NewSPSA(tape *circuit.Tape, dev device.Device, config SPSAConfig) (*SPSA, error) {
	if err := objectiveTape(tape); err != nil {
		return nil, err
	}
	if config.A == 0 {
		config.A = 0.05
	}
	if config.C == 0 {
		config.C = 0.2
	}
	if config.Alpha == 0 {
		config.Alpha = 0.602
	}
	if config.Gamma == 0 {
		config.Gamma = 0.101
	}
	if config.Stab == 0 {
		config.Stab = 10
	}
	return &SPSA{tape: tape, dev: dev, cfg: config}, nil
}

// Tape returns the optimizer's current tape.
func (o *SPSA) Tape() *circuit.Tape {
	return o.tape
}

// Params returns the current flattened parameter values.
func (o *SPSA) Params() []float64 {
	return o.tape.Params()
}

// Value executes the current tape and returns the objective value.
func (o *SPSA) Value() (float64, error) {
	results, err := o.dev.Execute([]*circuit.Tape{o.tape})
	if err != nil {
		return 0, err
	}
	return results[0][0].AsFloat64()[0], nil
}

// Iteration returns the number of completed steps.
func (o *SPSA) Iteration() int {
	return o.k
}

// Step performs one SPSA update with the current gains.
func (o *SPSA) Step() error {
	o.k++
	ck := o.cfg.C / math.Pow(float64(o.k), o.cfg.Gamma)
	ak := o.cfg.A / math.Pow(float64(o.k)+o.cfg.Stab, o.cfg.Alpha)

	gcfg := gradients.Config{
		H:             ck,
		NumDirections: 1,
		Rng:           o.cfg.Rng,
	}
	updated, err := descend(o.tape, o.dev, gcfg, ak)
	if err != nil {
		return err
	}
	o.tape = updated
	return nil
}

// descend runs one gradient estimate and returns the updated tape.
func descend(tape *circuit.Tape, dev device.Device, gcfg gradients.Config, lr float64) (*circuit.Tape, error) {
	plan, err := gradients.Grad(tape, gcfg)
	if err != nil {
		return nil, err
	}
	results, err := dev.Execute(plan.Tapes)
	if err != nil {
		return nil, err
	}
	jac, err := plan.PostProcess(results)
	if err != nil {
		return nil, err
	}

	params := tape.Params()
	for pos, idx := range tape.TrainableParams() {
		params[idx] -= lr * jac.Entry(0, pos).AsFloat64()[0]
	}
	return tape.WithParams(params)
}
