package stage

import (
	"github.com/rm-hull/raster-tools/internal/imaging"
	"github.com/rm-hull/raster-tools/internal/png"
)

type DownsampleStage struct {
	Width  int
	Height int
}

// Process resizes the image by index-selection resampling: every output pixel
// is a verbatim copy of one source pixel, with endpoints preserved along both axes
// A non-positive Width or Height keeps the corresponding source dimension
func (s *DownsampleStage) Process(p *png.RasterImage) error {
	w, h := s.Width, s.Height
	if w <= 0 {
		w = p.Bounds.Dx()
	}
	if h <= 0 {
		h = p.Bounds.Dy()
	}

	rgb, alpha := png.Planes(p.Img)
	p.Img = png.Merge(imaging.Downsample(rgb, w, h), imaging.Downsample(alpha, w, h))
	p.Bounds = p.Img.Bounds()
	return nil
}
