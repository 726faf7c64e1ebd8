package stage

import (
	"github.com/anthonynsimon/bild/effect"
	"github.com/rm-hull/raster-tools/internal/png"
)

type SharpenStage struct{}

// Process applies an unsharp pass to recover edge contrast
// Useful after heavy blurring or aggressive downsampling
func (s *SharpenStage) Process(p *png.RasterImage) error {
	p.Img = effect.Sharpen(p.Img)
	return nil
}
