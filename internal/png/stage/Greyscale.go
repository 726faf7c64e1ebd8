package stage

import (
	"image"
	"image/color"
	"math"

	"github.com/rm-hull/raster-tools/internal/imaging"
	"github.com/rm-hull/raster-tools/internal/png"
)

type GreyscaleStage struct{}

// Process converts the image to greyscale using luminance calculation
// Luminance is staged through a single-channel imaging buffer before the
// image is rebuilt, preserving the original alpha channel
func (s *GreyscaleStage) Process(p *png.RasterImage) error {
	w, h := p.Bounds.Dx(), p.Bounds.Dy()
	lum := imaging.NewImage[uint8](w, h, 1)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := p.Img.At(p.Bounds.Min.X+x, p.Bounds.Min.Y+y).RGBA()
			// Calculate luminance using standard coefficients
			// Reference: https://en.wikipedia.org/wiki/Grayscale#Luma_coding_in_video_systems
			lum.SetGray(y, x, uint8(math.Round(0.299*float64(r>>8)+0.587*float64(g>>8)+0.114*float64(b>>8))))
		}
	}

	gs := image.NewNRGBA(p.Bounds)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			_, _, _, a := p.Img.At(p.Bounds.Min.X+x, p.Bounds.Min.Y+y).RGBA()
			v := lum.Gray(y, x)
			gs.Set(p.Bounds.Min.X+x, p.Bounds.Min.Y+y, color.NRGBA{v, v, v, uint8(a >> 8)})
		}
	}

	p.Img = gs
	return nil
}
