// Copyright 2026 Spinor Quantum Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package device provides the public API for executing tapes, backed by a
// dense statevector simulator.
package device

import (
	"github.com/spinor-ml/spinor/internal/device"
)

// Device executes batches of tapes.
type Device = device.Device

// Config holds simulator settings.
type Config = device.Config

// Simulator is a dense statevector simulator.
type Simulator = device.Simulator

// New creates a simulator.
func New(cfg Config) *Simulator {
	return device.New(cfg)
}
