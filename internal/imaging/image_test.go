package imaging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewImage(t *testing.T) {
	t.Run("valid sizes construct zeroed storage", func(t *testing.T) {
		img := NewImage[uint8](4, 2, 3)
		assert.Equal(t, 4, img.Width())
		assert.Equal(t, 2, img.Height())
		assert.Equal(t, 3, img.Channels())
		assert.Equal(t, uint8(0), img.At(1, 3, 2))
	})

	t.Run("invalid sizes panic", func(t *testing.T) {
		assert.Panics(t, func() { NewImage[uint8](0, 2, 1) })
		assert.Panics(t, func() { NewImage[uint8](2, 0, 1) })
		assert.Panics(t, func() { NewImage[uint8](2, 2, 2) })
		assert.Panics(t, func() { NewImage[uint8](2, 2, 4) })
	})
}

func TestImageAccess(t *testing.T) {
	t.Run("set then get round-trips", func(t *testing.T) {
		img := NewImage[int32](3, 3, 3)
		img.Set(2, 1, 0, -5)
		img.Set(2, 1, 2, 17)
		assert.Equal(t, int32(-5), img.At(2, 1, 0))
		assert.Equal(t, int32(17), img.At(2, 1, 2))
	})

	t.Run("out of range access panics", func(t *testing.T) {
		img := NewImage[uint8](2, 2, 1)
		assert.Panics(t, func() { img.At(2, 0, 0) })
		assert.Panics(t, func() { img.At(0, 2, 0) })
		assert.Panics(t, func() { img.At(0, 0, 1) })
		assert.Panics(t, func() { img.Set(-1, 0, 0, 1) })
	})

	t.Run("clone does not alias the source", func(t *testing.T) {
		img := NewImage[uint8](2, 2, 1)
		img.SetGray(0, 0, 9)

		clone := img.Clone()
		clone.SetGray(0, 0, 42)
		assert.Equal(t, uint8(9), img.Gray(0, 0))
		assert.Equal(t, uint8(42), clone.Gray(0, 0))
	})
}

func TestColor(t *testing.T) {
	t.Run("constructors fix the arity", func(t *testing.T) {
		assert.Equal(t, 1, Gray[uint8](7).Channels())
		assert.Equal(t, 3, RGB[uint8](1, 2, 3).Channels())
	})

	t.Run("channels are indexable", func(t *testing.T) {
		c := RGB[float32](0.1, 0.2, 0.3)
		assert.Equal(t, float32(0.2), c[1])
	})

	t.Run("clone does not alias", func(t *testing.T) {
		c := RGB[uint8](1, 2, 3)
		d := c.Clone()
		d[0] = 99
		assert.Equal(t, uint8(1), c[0])
	})
}
