package gradients

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stencilTable maps each point's shift to its coefficient for comparison
// independent of internal ordering.
func stencilTable(s *Stencil) map[float64]float64 {
	table := make(map[float64]float64, len(s.shifts))
	for i, shift := range s.shifts {
		table[shift] = s.coeffs[i]
	}
	return table
}

func TestStencilKnownRules(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		order    int
		strategy Strategy
		want     map[float64]float64
	}{
		{
			name: "forward first order", n: 1, order: 1, strategy: Forward,
			want: map[float64]float64{0: -1, 1: 1},
		},
		{
			name: "backward first order", n: 1, order: 1, strategy: Backward,
			want: map[float64]float64{0: 1, -1: -1},
		},
		{
			name: "forward second order", n: 1, order: 2, strategy: Forward,
			want: map[float64]float64{0: -1.5, 1: 2, 2: -0.5},
		},
		{
			name: "center second order", n: 1, order: 2, strategy: Center,
			want: map[float64]float64{1: 0.5, -1: -0.5},
		},
		{
			name: "center fourth order", n: 1, order: 4, strategy: Center,
			want: map[float64]float64{1: 2.0 / 3, -1: -2.0 / 3, 2: -1.0 / 12, -2: 1.0 / 12},
		},
		{
			name: "second derivative centered", n: 2, order: 2, strategy: Center,
			want: map[float64]float64{0: -2, 1: 1, -1: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := newStencil(tt.n, tt.order, tt.strategy)
			require.NoError(t, err)

			got := stencilTable(s)
			require.Len(t, got, len(tt.want))
			for shift, coeff := range tt.want {
				assert.InDelta(t, coeff, got[shift], 1e-9, "coefficient at shift %v", shift)
			}
		})
	}
}

func TestStencilZeroShiftFirst(t *testing.T) {
	for _, strategy := range []Strategy{Forward, Backward} {
		s, err := newStencil(1, 3, strategy)
		require.NoError(t, err)
		assert.True(t, s.HasZero())
		assert.Equal(t, 0.0, s.shifts[0])
		assert.Equal(t, len(s.shifts)-1, s.NumShifted())
	}

	s, err := newStencil(1, 2, Center)
	require.NoError(t, err)
	assert.False(t, s.HasZero())
	assert.Zero(t, s.ZeroCoeff())
	assert.Equal(t, 2, s.NumShifted())
}

func TestStencilValidation(t *testing.T) {
	_, err := newStencil(0, 2, Center)
	assert.ErrorIs(t, err, ErrUnsupportedStrategy)

	_, err = newStencil(1, 0, Center)
	assert.ErrorIs(t, err, ErrUnsupportedStrategy)

	_, err = newStencil(1, 3, Center)
	assert.ErrorIs(t, err, ErrUnsupportedStrategy, "centered stencils need an even order")

	_, err = newStencil(1, 2, Strategy("sideways"))
	assert.ErrorIs(t, err, ErrUnsupportedStrategy)
}
