package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		want  int
	}{
		{"scalar", Shape{}, 1},
		{"vector", Shape{4}, 4},
		{"matrix", Shape{3, 5}, 15},
		{"3d", Shape{2, 3, 4}, 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.shape.NumElements())
		})
	}
}

func TestShapeValidate(t *testing.T) {
	assert.NoError(t, Shape{2, 3}.Validate())
	assert.NoError(t, Shape{}.Validate())
	assert.Error(t, Shape{2, 0}.Validate())
	assert.Error(t, Shape{-1}.Validate())
}

func TestZeros(t *testing.T) {
	r := Zeros(Shape{2, 2}, Float64)
	assert.Equal(t, Shape{2, 2}, r.Shape())
	assert.Equal(t, Float64, r.DType())
	for _, v := range r.AsFloat64() {
		assert.Zero(t, v)
	}

	ri := Zeros(Shape{3}, Int64)
	assert.Equal(t, Int64, ri.DType())
	assert.Len(t, ri.AsInt64(), 3)
}

func TestScalar(t *testing.T) {
	r := Scalar(1.5)
	assert.Equal(t, Shape{}, r.Shape())
	assert.Equal(t, 1, r.NumElements())
	assert.Equal(t, 1.5, r.AsFloat64()[0])
}

func TestFromFloat64s(t *testing.T) {
	r, err := FromFloat64s([]float64{1, 2, 3, 4}, Shape{2, 2})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4}, r.AsFloat64())

	_, err = FromFloat64s([]float64{1, 2, 3}, Shape{2, 2})
	assert.Error(t, err)
}

func TestFromFloat64sCopies(t *testing.T) {
	data := []float64{1, 2}
	r, err := FromFloat64s(data, Shape{2})
	require.NoError(t, err)
	data[0] = 99
	assert.Equal(t, 1.0, r.AsFloat64()[0])
}

func TestAsFloat64PanicsOnInt(t *testing.T) {
	r := Zeros(Shape{2}, Int64)
	assert.Panics(t, func() { r.AsFloat64() })
}

func TestClone(t *testing.T) {
	r, err := FromFloat64s([]float64{1, 2}, Shape{2})
	require.NoError(t, err)
	c := r.Clone()
	c.AsFloat64()[0] = 42
	assert.Equal(t, 1.0, r.AsFloat64()[0])
}

func TestToFloat64Promotion(t *testing.T) {
	r, err := FromInt64s([]int64{1, 0, 1}, Shape{3})
	require.NoError(t, err)
	f := r.ToFloat64()
	assert.Equal(t, Float64, f.DType())
	assert.Equal(t, []float64{1, 0, 1}, f.AsFloat64())

	// No copy for arrays that are already float.
	g := f.ToFloat64()
	assert.Same(t, f, g)
}

func TestScaleAndAddScaled(t *testing.T) {
	r, err := FromFloat64s([]float64{1, -2}, Shape{2})
	require.NoError(t, err)

	s := r.Scale(0.5)
	assert.Equal(t, []float64{0.5, -1}, s.AsFloat64())
	// Scale does not mutate the receiver.
	assert.Equal(t, []float64{1, -2}, r.AsFloat64())

	acc := Zeros(Shape{2}, Float64)
	require.NoError(t, acc.AddScaled(2, r))
	require.NoError(t, acc.AddScaled(1, s))
	assert.Equal(t, []float64{2.5, -5}, acc.AsFloat64())

	bad := Zeros(Shape{3}, Float64)
	assert.Error(t, acc.AddScaled(1, bad))
}
