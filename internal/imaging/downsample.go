package imaging

import (
	"fmt"
	"math"
)

// Downsample resamples img to the requested target size by copying, for
// each output pixel, a single source pixel chosen by rounded affine index
// mapping. No interpolation takes place, so samples survive verbatim for
// every sample type. Endpoints are preserved: target index 0 maps to
// source index 0 and the last target index maps to the last source index.
// A target axis of size 1 samples the middle of the source axis. The
// mapping works in both directions, so a target larger than the source is
// valid and duplicates samples. Non-positive target dimensions panic.
func Downsample[T Pixel](img *Image[T], width, height int) *Image[T] {
	if width < 1 || height < 1 {
		panic(fmt.Sprintf("imaging: invalid target size %dx%d", width, height))
	}

	srcW, srcH, ch := img.Width(), img.Height(), img.Channels()
	out := NewImage[T](width, height, ch)

	for y := 0; y < height; y++ {
		sy := srcH / 2
		if height > 1 {
			sy = mapIndex(y, height, srcH)
		}
		for x := 0; x < width; x++ {
			sx := srcW / 2
			if width > 1 {
				sx = mapIndex(x, width, srcW)
			}
			for c := 0; c < ch; c++ {
				out.Set(y, x, c, img.At(sy, sx, c))
			}
		}
	}

	return out
}

// DownsampleColors reduces a color sequence to n elements using the same
// rounded affine index mapping as Downsample. A non-positive n or an empty
// input yields an empty sequence; n greater than or equal to the input
// length returns an unmodified copy (this path never enlarges); n == 1
// returns the middle element.
func DownsampleColors[T Pixel](colors []Color[T], n int) []Color[T] {
	if n <= 0 || len(colors) == 0 {
		return []Color[T]{}
	}

	m := len(colors)
	if n >= m {
		return cloneColors(colors)
	}
	if n == 1 {
		return []Color[T]{colors[m/2].Clone()}
	}

	out := make([]Color[T], n)
	for i := 0; i < n; i++ {
		out[i] = colors[mapIndex(i, n, m)].Clone()
	}
	return out
}

// mapIndex maps target index i in [0, m) onto a source index in [0, n) by
// linear interpolation between the endpoints, rounding halves away from
// zero. Requires m >= 2.
func mapIndex(i, m, n int) int {
	pos := float64(i) * float64(n-1) / float64(m-1)
	return clampInt(int(math.Round(pos)), 0, n-1)
}
