package imaging

import "math"

// kernel is a normalized, odd-length Gaussian weight vector with support
// [-radius, radius]. A radius of 0 signals the identity (no-op) kernel.
type kernel struct {
	weights []float64
	radius  int
}

// gaussianKernel derives the discrete kernel for the given sigma. The
// radius is ceil(3*sigma) and the weights sum to 1. A non-positive sigma
// yields the identity kernel.
func gaussianKernel(sigma float64) kernel {
	var k kernel
	if !(sigma > 0) {
		return k
	}

	s := math.Max(0.001, sigma)
	k.radius = max(0, int(math.Ceil(3*s)))
	k.weights = make([]float64, 2*k.radius+1)

	inv2s2 := 1 / (2 * s * s)
	sum := 0.0
	for i := -k.radius; i <= k.radius; i++ {
		v := math.Exp(-float64(i*i) * inv2s2)
		k.weights[i+k.radius] = v
		sum += v
	}
	if sum > 0 {
		for i := range k.weights {
			k.weights[i] /= sum
		}
	}
	return k
}
