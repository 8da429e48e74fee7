// Copyright 2026 Spinor Quantum Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the shaped arrays carried through measurement
// results and Jacobians.
//
// Arrays are dense, row-major and either float64 or int64:
//
//	r, _ := tensor.FromFloat64s([]float64{0.5, 0, 0, 0.5}, tensor.Shape{4})
//	z := tensor.Zeros(tensor.Shape{2, 3}, tensor.Float64)
package tensor

import (
	"github.com/spinor-ml/spinor/internal/tensor"
)

// Shape represents the dimensions of an array; the empty shape is a scalar.
type Shape = tensor.Shape

// DataType represents the element type of an array.
type DataType = tensor.DataType

// Element type constants.
const (
	Float64 DataType = tensor.Float64
	Int64   DataType = tensor.Int64
)

// Raw is a dense, row-major array of measurement or derivative values.
type Raw = tensor.Raw

// Zeros creates a Raw filled with zeros.
func Zeros(shape Shape, dtype DataType) *Raw {
	return tensor.Zeros(shape, dtype)
}

// Scalar creates a zero-dimensional Raw holding a single float64.
func Scalar(v float64) *Raw {
	return tensor.Scalar(v)
}

// FromFloat64s creates a Raw from a float64 slice.
func FromFloat64s(data []float64, shape Shape) (*Raw, error) {
	return tensor.FromFloat64s(data, shape)
}

// FromInt64s creates a Raw from an int64 slice.
func FromInt64s(data []int64, shape Shape) (*Raw, error) {
	return tensor.FromInt64s(data, shape)
}
