package png

import (
	"fmt"
	"image"
	"image/png"
	"io"
)

// RasterImage carries a decoded PNG through a chain of processing stages.
// Stages replace Img as they run and, when they resize, update Bounds to
// match.
type RasterImage struct {
	Img    image.Image
	Bounds image.Rectangle
}

// PipelineStage transforms a raster image in place.
type PipelineStage interface {
	Process(img *RasterImage) error
}

// NewRasterFromReader decodes a PNG stream into a RasterImage.
func NewRasterFromReader(r io.Reader) (*RasterImage, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode PNG: %w", err)
	}
	return &RasterImage{Img: img, Bounds: img.Bounds()}, nil
}

// Write encodes the current image as a PNG.
func (p *RasterImage) Write(w io.Writer) error {
	return png.Encode(w, p.Img)
}

// Pipeline runs the stages in order, stopping at the first failure.
func (p *RasterImage) Pipeline(stages ...PipelineStage) error {
	for i, stage := range stages {
		if err := stage.Process(p); err != nil {
			return fmt.Errorf("stage %d (%T) failed: %w", i, stage, err)
		}
	}
	return nil
}
