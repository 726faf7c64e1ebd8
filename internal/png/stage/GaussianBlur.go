package stage

import (
	"github.com/rm-hull/raster-tools/internal/imaging"
	"github.com/rm-hull/raster-tools/internal/png"
)

type GaussianBlurStage struct {
	Sigma float64
}

// Process applies a separable Gaussian blur to the image using the specified Sigma value
// Higher Sigma values result in a more pronounced blur effect
// The colour and alpha planes are blurred independently so channels never mix
func (s *GaussianBlurStage) Process(p *png.RasterImage) error {
	rgb, alpha := png.Planes(p.Img)
	p.Img = png.Merge(imaging.Blur(rgb, s.Sigma), imaging.Blur(alpha, s.Sigma))
	p.Bounds = p.Img.Bounds()
	return nil
}
