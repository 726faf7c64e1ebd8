package imaging

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGaussianKernel(t *testing.T) {
	t.Run("non-positive sigma yields identity kernel", func(t *testing.T) {
		assert.Equal(t, 0, gaussianKernel(0).radius)
		assert.Equal(t, 0, gaussianKernel(-1.5).radius)
		assert.Empty(t, gaussianKernel(0).weights)
	})

	t.Run("radius is ceil of three sigma", func(t *testing.T) {
		assert.Equal(t, 3, gaussianKernel(1.0).radius)
		assert.Equal(t, 5, gaussianKernel(1.5).radius)
		assert.Equal(t, 9, gaussianKernel(3.0).radius)
	})

	t.Run("weights are normalized and symmetric", func(t *testing.T) {
		k := gaussianKernel(2.0)
		assert.Len(t, k.weights, 2*k.radius+1)

		sum := 0.0
		for _, w := range k.weights {
			assert.GreaterOrEqual(t, w, 0.0)
			sum += w
		}
		assert.InDelta(t, 1.0, sum, 1e-9)

		for i := 0; i <= k.radius; i++ {
			assert.InDelta(t, k.weights[k.radius-i], k.weights[k.radius+i], 1e-12)
		}
	})

	t.Run("center weight is the maximum", func(t *testing.T) {
		k := gaussianKernel(1.0)
		center := k.weights[k.radius]
		for _, w := range k.weights {
			assert.LessOrEqual(t, w, center)
		}
	})

	t.Run("tiny sigma is floored", func(t *testing.T) {
		k := gaussianKernel(1e-9)
		assert.Equal(t, 1, k.radius)
		assert.InDelta(t, 1.0, k.weights[1], 1e-6)
	})
}

func TestRoundingTieBreak(t *testing.T) {
	// The index mapper and integer write-back both rely on halves
	// rounding away from zero: mapping 3 targets onto 4 sources puts the
	// middle target at position 1.5, which resolves to source index 2.
	assert.Equal(t, 2.0, math.Round(1.5))
	assert.Equal(t, 2, mapIndex(1, 3, 4))
}
