// Package imaging implements the numerical core of raster-tools: generic
// multi-channel image and color containers, a separable Gaussian blur and
// an index-mapped downsampler, all parameterised over the sample type.
package imaging

import (
	"fmt"
	"slices"
)

// Float is a constraint for floating-point sample types.
type Float interface {
	~float32 | ~float64
}

// Signed is a constraint for signed integer sample types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is a constraint for unsigned integer sample types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integer is a constraint for all integer sample types.
type Integer interface {
	Signed | Unsigned
}

// Pixel is a constraint for any type usable as an image sample.
type Pixel interface {
	Integer | Float
}

// Image is a rectangular grid of multi-channel samples backed by
// contiguous row-major storage. The channel count is fixed at
// construction to either 1 (greyscale) or 3 (RGB).
type Image[T Pixel] struct {
	width    int
	height   int
	channels int
	data     []T
}

// NewImage creates a zero-filled image. Width and height must be at
// least 1 and channels must be 1 or 3; anything else is a programming
// error and panics.
func NewImage[T Pixel](width, height, channels int) *Image[T] {
	if width < 1 || height < 1 {
		panic(fmt.Sprintf("imaging: invalid image size %dx%d", width, height))
	}
	if channels != 1 && channels != 3 {
		panic(fmt.Sprintf("imaging: unsupported channel count %d", channels))
	}
	return &Image[T]{
		width:    width,
		height:   height,
		channels: channels,
		data:     make([]T, width*height*channels),
	}
}

func (m *Image[T]) Width() int    { return m.width }
func (m *Image[T]) Height() int   { return m.height }
func (m *Image[T]) Channels() int { return m.channels }

// At returns the sample at (row y, column x, channel c).
func (m *Image[T]) At(y, x, c int) T {
	return m.data[m.offset(y, x, c)]
}

// Set stores a sample at (row y, column x, channel c).
func (m *Image[T]) Set(y, x, c int, v T) {
	m.data[m.offset(y, x, c)] = v
}

// Gray returns the single sample at (row y, column x) of a 1-channel image.
func (m *Image[T]) Gray(y, x int) T {
	return m.At(y, x, 0)
}

// SetGray stores the single sample at (row y, column x) of a 1-channel image.
func (m *Image[T]) SetGray(y, x int, v T) {
	m.Set(y, x, 0, v)
}

// Clone returns a deep copy of the image.
func (m *Image[T]) Clone() *Image[T] {
	return &Image[T]{
		width:    m.width,
		height:   m.height,
		channels: m.channels,
		data:     slices.Clone(m.data),
	}
}

func (m *Image[T]) offset(y, x, c int) int {
	if y < 0 || y >= m.height || x < 0 || x >= m.width || c < 0 || c >= m.channels {
		panic(fmt.Sprintf("imaging: sample index (%d,%d,%d) out of range %dx%dx%d",
			y, x, c, m.height, m.width, m.channels))
	}
	return (y*m.width+x)*m.channels + c
}

// Color is a fixed-arity tuple of 1 (greyscale) or 3 (RGB) channel values.
// Channels are accessed by index.
type Color[T Pixel] []T

// Gray creates a single-channel color.
func Gray[T Pixel](v T) Color[T] {
	return Color[T]{v}
}

// RGB creates a three-channel color.
func RGB[T Pixel](r, g, b T) Color[T] {
	return Color[T]{r, g, b}
}

// Channels returns the arity of the color.
func (c Color[T]) Channels() int {
	return len(c)
}

// Clone returns a copy of the color.
func (c Color[T]) Clone() Color[T] {
	return slices.Clone(c)
}

// cloneColors deep-copies a color sequence.
func cloneColors[T Pixel](colors []Color[T]) []Color[T] {
	out := make([]Color[T], len(colors))
	for i, c := range colors {
		out[i] = c.Clone()
	}
	return out
}

// sequenceChannels validates that every color in the sequence shares a
// supported arity and returns it. The sequence must be non-empty.
func sequenceChannels[T Pixel](colors []Color[T]) int {
	ch := colors[0].Channels()
	if ch != 1 && ch != 3 {
		panic(fmt.Sprintf("imaging: unsupported channel count %d", ch))
	}
	for i, c := range colors {
		if c.Channels() != ch {
			panic(fmt.Sprintf("imaging: color %d has %d channels, expected %d", i, c.Channels(), ch))
		}
	}
	return ch
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
