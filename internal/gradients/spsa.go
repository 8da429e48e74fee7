// Package gradients implements a parameter-shift-free stochastic gradient
// estimator (SPSA-style finite differences) for quantum tapes.
//
// Grad never executes a device. It returns the batch of shifted tape
// variants to run plus a post-processing step that reassembles the raw,
// index-aligned device results into a Jacobian mirroring the tape's
// measurement structure:
//
//	plan, err := gradients.Grad(tape, gradients.Config{NumDirections: 10})
//	results, err := dev.Execute(plan.Tapes)
//	jac, err := plan.PostProcess(results)
package gradients

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spinor-ml/spinor/internal/circuit"
)

// Config controls the SPSA gradient estimate. The zero value requests the
// defaults: centered second-order stencil, h = 1e-5, first derivative,
// Rademacher directions, one direction per differentiated parameter, and
// strict parameter validation.
type Config struct {
	// Argnum selects which trainable parameters to differentiate, as
	// positions into the tape's sorted trainable-parameter index set.
	// Nil means all trainable parameters. Excluded parameters receive
	// exact zero Jacobian entries.
	Argnum []int
	// H is the finite-difference step size (default 1e-5).
	H float64
	// N is the derivative order (default 1).
	N int
	// ApproxOrder is the accuracy order of the stencil (default 2).
	ApproxOrder int
	// Strategy places the stencil: Forward, Backward or Center (default).
	Strategy Strategy
	// NumDirections is the number of sampled directions averaged into the
	// estimate. Defaults to the number of differentiated parameters.
	NumDirections int
	// Sampler generates direction vectors (default RademacherSampler).
	Sampler Sampler
	// Rng is the randomness handle threaded into the sampler. If nil a
	// time-seeded source is created for this call.
	Rng *rand.Rand
	// F0 is a precomputed unshifted tape result. When the stencil
	// contains the zero shift, supplying F0 saves one device execution.
	F0 circuit.Result
	// SkipValidation disables strict Argnum checking; out-of-range
	// entries are then silently ignored instead of raising an error.
	SkipValidation bool
}

// Plan is the output of Grad: the tape variants to execute, structured
// warnings, and the state PostProcess needs to reassemble results.
type Plan struct {
	// Tapes are the variants to execute, in the order PostProcess
	// expects the results.
	Tapes []*circuit.Tape
	// Warnings are structured diagnostics (e.g. no trainable parameters).
	Warnings []Warning

	descs         []circuit.ResultDesc
	trainable     []int // the tape's full trainable index set
	indices       []int // perturbed flat indices (post filtering)
	directions    [][]float64
	stencil       *Stencil
	h             float64
	n             int
	numDirections int
	f0            circuit.Result
}

// Grad validates the request and generates the SPSA tape variants for the
// given tape. It is synchronous and side-effect free: the input tape is
// never mutated and no device is called.
func Grad(tape *circuit.Tape, cfg Config) (*Plan, error) {
	return grad(tape, cfg, "tape")
}

// GradRecorded records a circuit function into a tape and differentiates
// it. The recorded measurement structure fixes the Jacobian's shape.
func GradRecorded(fn func(b *circuit.Builder) error, cfg Config) (*Plan, error) {
	tape, err := circuit.Record(fn)
	if err != nil {
		return nil, err
	}
	return grad(tape, cfg, "recorded circuit")
}

func grad(tape *circuit.Tape, cfg Config, origin string) (*Plan, error) {
	h := cfg.H
	if h == 0 {
		h = 1e-5
	}
	n := cfg.N
	if n == 0 {
		n = 1
	}
	approxOrder := cfg.ApproxOrder
	if approxOrder == 0 {
		approxOrder = 2
	}
	strategy := cfg.Strategy
	if strategy == "" {
		strategy = Center
	}
	sampler := cfg.Sampler
	if sampler == nil {
		sampler = RademacherSampler{}
	}

	plan := &Plan{
		descs:     tape.ResultDescs(),
		trainable: tape.TrainableParams(),
		h:         h,
		n:         n,
	}

	if len(plan.trainable) == 0 {
		plan.Warnings = append(plan.Warnings, Warning{
			Code: WarnNoTrainableParams,
			Message: fmt.Sprintf(
				"attempted to compute the gradient of a %s with no trainable parameters; returning a zero-shaped result", origin),
		})
		return plan, nil
	}

	candidates, err := resolveArgnum(plan.trainable, cfg.Argnum, cfg.SkipValidation)
	if err != nil {
		return nil, err
	}

	// Stencil validation happens before the zero-gradient shortcut so a
	// bad strategy surfaces regardless of the tape's structure.
	stencil, err := newStencil(n, approxOrder, strategy)
	if err != nil {
		return nil, err
	}

	indices, err := influentialParams(tape, candidates)
	if err != nil {
		return nil, err
	}
	if len(indices) == 0 {
		// Every requested parameter is provably non-influential.
		return plan, nil
	}

	numDirections := cfg.NumDirections
	if numDirections == 0 {
		numDirections = len(candidates)
	}
	if numDirections < 0 {
		return nil, fmt.Errorf("%w: num_directions %d must be positive",
			ErrMalformedSampler, numDirections)
	}

	rng := cfg.Rng
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	numParams := tape.NumParams()
	directions := make([][]float64, numDirections)
	for k := range directions {
		directions[k] = sampler.Sample(rng, indices, numParams, k)
		if len(directions[k]) != numParams {
			return nil, fmt.Errorf("%w: sampler returned a vector of length %d for %d parameters",
				ErrMalformedSampler, len(directions[k]), numParams)
		}
	}

	tapes, err := buildVariants(tape, indices, directions, stencil, h, cfg.F0 != nil)
	if err != nil {
		return nil, err
	}

	plan.Tapes = tapes
	plan.indices = indices
	plan.directions = directions
	plan.stencil = stencil
	plan.numDirections = numDirections
	plan.f0 = cfg.F0
	return plan, nil
}

// resolveArgnum maps argnum positions into flat parameter indices.
func resolveArgnum(trainable, argnum []int, skipValidation bool) ([]int, error) {
	if argnum == nil {
		return append([]int(nil), trainable...), nil
	}
	seen := make(map[int]bool, len(argnum))
	indices := make([]int, 0, len(argnum))
	for _, a := range argnum {
		if a < 0 || a >= len(trainable) {
			if skipValidation {
				continue
			}
			return nil, fmt.Errorf("%w: argnum %d is outside the trainable-parameter set (size %d)",
				ErrInvalidParameterSelection, a, len(trainable))
		}
		idx := trainable[a]
		if !seen[idx] {
			seen[idx] = true
			indices = append(indices, idx)
		}
	}
	return indices, nil
}
