package imaging

import "math"

// Blur returns a Gaussian-blurred copy of img with the same size, channel
// count and sample type. Sigma controls the spread; a non-positive sigma
// returns an unmodified copy. Convolution happens in two separable passes
// (horizontal then vertical) accumulating in float64 with clamp-to-edge
// boundary handling, and results are converted back to T on write-back.
func Blur[T Pixel](img *Image[T], sigma float64) *Image[T] {
	if !(sigma > 0) {
		return img.Clone()
	}

	k := gaussianKernel(sigma)
	if k.radius == 0 {
		return img.Clone()
	}

	w, h, ch := img.Width(), img.Height(), img.Channels()
	r := k.radius

	tmp := make([]float64, w*h*ch)
	idx := func(y, x, c int) int {
		return (y*w+x)*ch + c
	}

	// Horizontal pass: img -> tmp
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			for c := 0; c < ch; c++ {
				acc := 0.0
				for d := -r; d <= r; d++ {
					sx := clampInt(x+d, 0, w-1)
					acc += k.weights[d+r] * float64(img.At(y, sx, c))
				}
				tmp[idx(y, x, c)] = acc
			}
		}
	}

	// Vertical pass: tmp -> out
	out := NewImage[T](w, h, ch)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			for c := 0; c < ch; c++ {
				acc := 0.0
				for d := -r; d <= r; d++ {
					sy := clampInt(y+d, 0, h-1)
					acc += k.weights[d+r] * tmp[idx(sy, x, c)]
				}
				out.Set(y, x, c, fromFloat[T](acc))
			}
		}
	}

	return out
}

// BlurColors returns a Gaussian-blurred copy of a color sequence, applying
// a single 1D convolution pass along the sequence index with the same
// boundary and write-back rules as Blur. A non-positive sigma returns an
// unmodified copy; an empty sequence yields an empty result.
func BlurColors[T Pixel](colors []Color[T], sigma float64) []Color[T] {
	if !(sigma > 0) {
		return cloneColors(colors)
	}
	if len(colors) == 0 {
		return []Color[T]{}
	}

	k := gaussianKernel(sigma)
	if k.radius == 0 {
		return cloneColors(colors)
	}

	n := len(colors)
	ch := sequenceChannels(colors)
	r := k.radius

	tmp := make([]float64, n*ch)
	for i := 0; i < n; i++ {
		for c := 0; c < ch; c++ {
			acc := 0.0
			for d := -r; d <= r; d++ {
				si := clampInt(i+d, 0, n-1)
				acc += k.weights[d+r] * float64(colors[si][c])
			}
			tmp[i*ch+c] = acc
		}
	}

	out := make([]Color[T], n)
	for i := 0; i < n; i++ {
		c := make(Color[T], ch)
		for j := 0; j < ch; j++ {
			c[j] = fromFloat[T](tmp[i*ch+j])
		}
		out[i] = c
	}
	return out
}

// fromFloat converts a float64 accumulator back to the sample type:
// 8-bit unsigned samples are clamped to [0, 255] then rounded, other
// integers are rounded without clamping, and floating-point samples keep
// the value as-is. math.Round rounds halves away from zero, matching the
// rounding used by the index mapper.
func fromFloat[T Pixel](v float64) T {
	if isFloat[T]() {
		return T(v)
	}
	if isByte[T]() {
		return T(math.Round(math.Min(255, math.Max(0, v))))
	}
	return T(math.Round(v))
}

// isFloat reports whether T is a floating-point type.
func isFloat[T Pixel]() bool {
	return T(1)/T(2) != T(0)
}

// isByte reports whether T's underlying type is an 8-bit unsigned integer:
// of the unsigned types, only there does incrementing 255 wrap to zero.
// 255 is spelled 85*3 so the constants stay representable across every
// type admitted by Pixel.
func isByte[T Pixel]() bool {
	unsigned := T(0)-T(1) > T(0)
	return unsigned && T(85)*T(3)+T(1) == T(0)
}
