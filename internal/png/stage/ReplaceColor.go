package stage

import (
	"image"
	"image/color"
	"math"

	"github.com/rm-hull/raster-tools/internal/png"
)

// ReplaceColorStage fades out pixels near a target color. A pixel exactly
// matching Replace becomes fully transparent; one at the edge of Tolerance
// keeps its original opacity, with alpha scaled linearly in between.
type ReplaceColorStage struct {
	Tolerance float64
	Replace   color.Color
}

func (s *ReplaceColorStage) Process(p *png.RasterImage) error {
	tr, tg, tb, _ := s.Replace.RGBA()
	target := [3]float64{float64(tr >> 8), float64(tg >> 8), float64(tb >> 8)}

	out := image.NewNRGBA(p.Bounds)
	for y := p.Bounds.Min.Y; y < p.Bounds.Max.Y; y++ {
		for x := p.Bounds.Min.X; x < p.Bounds.Max.X; x++ {
			r, g, b, a := p.Img.At(x, y).RGBA()
			px := color.NRGBA{
				R: uint8(r >> 8),
				G: uint8(g >> 8),
				B: uint8(b >> 8),
				A: uint8(a >> 8),
			}

			dist := math.Sqrt(sq(target[0]-float64(px.R)) +
				sq(target[1]-float64(px.G)) +
				sq(target[2]-float64(px.B)))
			if dist < s.Tolerance {
				px.A = uint8(dist / s.Tolerance * float64(px.A))
			}
			out.Set(x, y, px)
		}
	}

	p.Img = out
	return nil
}

func sq(v float64) float64 {
	return v * v
}
