package tensor

import "fmt"

// Raw is a dense, row-major array of measurement or derivative values.
//
// Raw arrays are small and short-lived: one leaf per measurement per tape
// execution. They are plain value containers without views or reference
// counting; Clone always copies.
type Raw struct {
	shape Shape
	dtype DataType
	f64   []float64
	i64   []int64
}

// Zeros creates a Raw filled with zeros.
func Zeros(shape Shape, dtype DataType) *Raw {
	r := &Raw{shape: shape.Clone(), dtype: dtype}
	switch dtype {
	case Float64:
		r.f64 = make([]float64, shape.NumElements())
	case Int64:
		r.i64 = make([]int64, shape.NumElements())
	default:
		panic(fmt.Sprintf("unsupported dtype %s", dtype))
	}
	return r
}

// Scalar creates a zero-dimensional Raw holding a single float64.
func Scalar(v float64) *Raw {
	return &Raw{shape: Shape{}, dtype: Float64, f64: []float64{v}}
}

// FromFloat64s creates a Raw from a float64 slice.
// The slice is copied; its length must match the shape.
func FromFloat64s(data []float64, shape Shape) (*Raw, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if len(data) != shape.NumElements() {
		return nil, fmt.Errorf("data length %d does not match shape %v (%d elements)",
			len(data), shape, shape.NumElements())
	}
	r := &Raw{shape: shape.Clone(), dtype: Float64, f64: make([]float64, len(data))}
	copy(r.f64, data)
	return r, nil
}

// FromInt64s creates a Raw from an int64 slice.
// The slice is copied; its length must match the shape.
func FromInt64s(data []int64, shape Shape) (*Raw, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if len(data) != shape.NumElements() {
		return nil, fmt.Errorf("data length %d does not match shape %v (%d elements)",
			len(data), shape, shape.NumElements())
	}
	r := &Raw{shape: shape.Clone(), dtype: Int64, i64: make([]int64, len(data))}
	copy(r.i64, data)
	return r, nil
}

// Shape returns the array's shape.
func (r *Raw) Shape() Shape {
	return r.shape
}

// DType returns the array's element type.
func (r *Raw) DType() DataType {
	return r.dtype
}

// NumElements returns the total number of elements.
func (r *Raw) NumElements() int {
	return r.shape.NumElements()
}

// AsFloat64 returns the underlying float64 data.
// Panics if the dtype is not Float64.
func (r *Raw) AsFloat64() []float64 {
	if r.dtype != Float64 {
		panic(fmt.Sprintf("array dtype is %s, not float64", r.dtype))
	}
	return r.f64
}

// AsInt64 returns the underlying int64 data.
// Panics if the dtype is not Int64.
func (r *Raw) AsInt64() []int64 {
	if r.dtype != Int64 {
		panic(fmt.Sprintf("array dtype is %s, not int64", r.dtype))
	}
	return r.i64
}

// Clone returns a deep copy.
func (r *Raw) Clone() *Raw {
	c := &Raw{shape: r.shape.Clone(), dtype: r.dtype}
	if r.f64 != nil {
		c.f64 = append([]float64(nil), r.f64...)
	}
	if r.i64 != nil {
		c.i64 = append([]int64(nil), r.i64...)
	}
	return c
}

// ToFloat64 returns a Float64 view of the data, promoting Int64 element-wise.
// Already-float arrays are returned unchanged (no copy).
func (r *Raw) ToFloat64() *Raw {
	if r.dtype == Float64 {
		return r
	}
	out := Zeros(r.shape, Float64)
	for i, v := range r.i64 {
		out.f64[i] = float64(v)
	}
	return out
}

// Scale multiplies every element by a and returns a new array.
// Panics if the dtype is not Float64.
func (r *Raw) Scale(a float64) *Raw {
	data := r.AsFloat64()
	out := Zeros(r.shape, Float64)
	for i, v := range data {
		out.f64[i] = a * v
	}
	return out
}

// AddScaled accumulates a*x into r in place (r += a*x).
// Both arrays must be Float64 and share a shape.
func (r *Raw) AddScaled(a float64, x *Raw) error {
	if !r.shape.Equal(x.shape) {
		return fmt.Errorf("shape mismatch: %v vs %v", r.shape, x.shape)
	}
	dst := r.AsFloat64()
	src := x.AsFloat64()
	for i := range dst {
		dst[i] += a * src[i]
	}
	return nil
}
