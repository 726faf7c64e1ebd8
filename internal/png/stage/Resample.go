package stage

import (
	"image"

	"github.com/rm-hull/raster-tools/internal/png"
	"golang.org/x/image/draw"
)

// ResampleStage re-renders the image onto itself with a Catmull-Rom
// kernel. At identical size this acts as a gentle low-pass that softens
// stair-step artifacts left behind by color keying and blurring.
type ResampleStage struct{}

func (s *ResampleStage) Process(p *png.RasterImage) error {
	out := image.NewNRGBA(p.Bounds)
	draw.CatmullRom.Scale(out, p.Bounds, p.Img, p.Bounds, draw.Over, nil)
	p.Img = out
	return nil
}
