// Copyright 2026 Spinor Quantum Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package gradients provides the public API for SPSA gradient estimation.
//
// Grad turns a tape into a batch of perturbed tapes plus a post-processing
// closure over their results:
//
//	plan, err := gradients.Grad(tape, gradients.Config{NumDirections: 10})
//	results, err := dev.Execute(plan.Tapes)
//	jac, err := plan.PostProcess(results)
package gradients

import (
	"github.com/spinor-ml/spinor/internal/circuit"
	"github.com/spinor-ml/spinor/internal/gradients"
)

// Config controls the SPSA gradient estimate.
type Config = gradients.Config

// Plan holds the generated tapes and the post-processing state.
type Plan = gradients.Plan

// Jacobian is the rectangular measurement-by-parameter derivative grid.
type Jacobian = gradients.Jacobian

// Warning is a non-fatal diagnostic attached to a plan.
type Warning = gradients.Warning

// Strategy selects the finite-difference stencil shape.
type Strategy = gradients.Strategy

// Finite-difference strategies.
const (
	Forward  Strategy = gradients.Forward
	Backward Strategy = gradients.Backward
	Center   Strategy = gradients.Center
)

// Sampler draws perturbation directions.
type Sampler = gradients.Sampler

// RademacherSampler draws uniform ±1 entries, the standard SPSA choice.
type RademacherSampler = gradients.RademacherSampler

// CoordinateSampler cycles through coordinate unit vectors. Estimates built
// with it must be rescaled by the number of directions by the caller.
type CoordinateSampler = gradients.CoordinateSampler

// Warning codes.
const (
	WarnNoTrainableParams = gradients.WarnNoTrainableParams
)

// Sentinel errors returned by Grad and PostProcess.
var (
	ErrInvalidParameterSelection = gradients.ErrInvalidParameterSelection
	ErrUnsupportedStrategy       = gradients.ErrUnsupportedStrategy
	ErrMalformedSampler          = gradients.ErrMalformedSampler
	ErrResultMismatch            = gradients.ErrResultMismatch
)

// Grad builds the SPSA gradient plan for a tape.
func Grad(tape *circuit.Tape, cfg Config) (*Plan, error) {
	return gradients.Grad(tape, cfg)
}

// GradRecorded records a circuit and builds its gradient plan in one call.
func GradRecorded(fn func(b *circuit.Builder) error, cfg Config) (*Plan, error) {
	return gradients.GradRecorded(fn, cfg)
}
