package png

import (
	"image"
	"image/color"
	"testing"

	"github.com/rm-hull/raster-tools/internal/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanes(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.Set(0, 0, color.NRGBA{10, 20, 30, 255})
	src.Set(1, 0, color.NRGBA{40, 50, 60, 255})
	src.Set(0, 1, color.NRGBA{70, 80, 90, 255})
	src.Set(1, 1, color.NRGBA{0, 0, 0, 0})

	rgb, alpha := Planes(src)
	require.Equal(t, 2, rgb.Width())
	require.Equal(t, 2, rgb.Height())
	require.Equal(t, 3, rgb.Channels())
	require.Equal(t, 1, alpha.Channels())

	assert.Equal(t, uint8(10), rgb.At(0, 0, 0))
	assert.Equal(t, uint8(20), rgb.At(0, 0, 1))
	assert.Equal(t, uint8(30), rgb.At(0, 0, 2))
	assert.Equal(t, uint8(40), rgb.At(0, 1, 0))
	assert.Equal(t, uint8(70), rgb.At(1, 0, 0))
	assert.Equal(t, uint8(255), alpha.Gray(0, 0))
	assert.Equal(t, uint8(0), alpha.Gray(1, 1))
}

func TestMerge(t *testing.T) {
	t.Run("round-trips with Planes", func(t *testing.T) {
		src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
		src.Set(0, 0, color.NRGBA{1, 2, 3, 255})
		src.Set(2, 1, color.NRGBA{200, 100, 50, 255})

		out := Merge(Planes(src))
		assert.Equal(t, src.Bounds(), out.Bounds())
		assert.Equal(t, color.NRGBA{1, 2, 3, 255}, out.NRGBAAt(0, 0))
		assert.Equal(t, color.NRGBA{200, 100, 50, 255}, out.NRGBAAt(2, 1))
	})

	t.Run("mismatched plane sizes panic", func(t *testing.T) {
		rgb := imaging.NewImage[uint8](2, 2, 3)
		alpha := imaging.NewImage[uint8](3, 2, 1)
		assert.Panics(t, func() { Merge(rgb, alpha) })
	})
}
