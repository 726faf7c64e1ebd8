package png

import (
	"image"
	"image/color"

	"github.com/rm-hull/raster-tools/internal/imaging"
)

// Planes splits a decoded image into a 3-channel RGB image and a separate
// 1-channel alpha plane, both 8-bit, so the imaging core (which is fixed
// to 1 or 3 channels) can process real RGBA sources.
func Planes(img image.Image) (rgb, alpha *imaging.Image[uint8]) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	rgb = imaging.NewImage[uint8](w, h, 3)
	alpha = imaging.NewImage[uint8](w, h, 1)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			rgb.Set(y, x, 0, uint8(r>>8))
			rgb.Set(y, x, 1, uint8(g>>8))
			rgb.Set(y, x, 2, uint8(b>>8))
			alpha.SetGray(y, x, uint8(a>>8))
		}
	}
	return rgb, alpha
}

// Merge recombines an RGB image and an alpha plane into an NRGBA image.
// Both planes must have the same size.
func Merge(rgb, alpha *imaging.Image[uint8]) *image.NRGBA {
	if rgb.Width() != alpha.Width() || rgb.Height() != alpha.Height() {
		panic("png: mismatched plane sizes on merge")
	}

	out := image.NewNRGBA(image.Rect(0, 0, rgb.Width(), rgb.Height()))
	for y := 0; y < rgb.Height(); y++ {
		for x := 0; x < rgb.Width(); x++ {
			out.Set(x, y, color.NRGBA{
				R: rgb.At(y, x, 0),
				G: rgb.At(y, x, 1),
				B: rgb.At(y, x, 2),
				A: alpha.Gray(y, x),
			})
		}
	}
	return out
}
