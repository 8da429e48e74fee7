// Copyright 2026 Spinor Quantum Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/spinor-ml/spinor/internal/circuit"
	"github.com/spinor-ml/spinor/internal/device"
	"github.com/spinor-ml/spinor/internal/optim"
)

// GradientDescent minimizes a tape's scalar objective by gradient descent
// on SPSA-estimated gradients.
type GradientDescent = optim.GradientDescent

// GradientDescentConfig contains configuration for GradientDescent.
type GradientDescentConfig = optim.GradientDescentConfig

// NewGradientDescent creates a gradient-descent optimizer.
//
// Example:
//
//	sim := device.New(device.Config{})
//	opt, err := optim.NewGradientDescent(tape, sim, optim.GradientDescentConfig{
//	    LR: 0.1,
//	})
func NewGradientDescent(tape *circuit.Tape, dev device.Device, config GradientDescentConfig) (*GradientDescent, error) {
	return optim.NewGradientDescent(tape, dev, config)
}

// SPSA minimizes a tape's scalar objective with the classic
// simultaneous-perturbation schedule of decaying gains.
type SPSA = optim.SPSA

// SPSAConfig contains the gain schedules for the SPSA optimizer.
type SPSAConfig = optim.SPSAConfig

// NewSPSA creates an SPSA optimizer.
func NewSPSA(tape *circuit.Tape, dev device.Device, config SPSAConfig) (*SPSA, error) {
	return optim.NewSPSA(tape, dev, config)
}
