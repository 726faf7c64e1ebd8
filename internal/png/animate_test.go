package png

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFramePNG(t *testing.T, dir, name string, c color.NRGBA) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			img.Set(x, y, c)
		}
	}

	fname := filepath.Join(dir, name)
	f, err := os.Create(fname)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return fname
}

func TestAnimate(t *testing.T) {
	t.Run("streams an APNG for the given frames", func(t *testing.T) {
		dir := t.TempDir()
		files := []string{
			writeFramePNG(t, dir, "0.png", color.NRGBA{255, 0, 0, 255}),
			writeFramePNG(t, dir, "1.png", color.NRGBA{0, 255, 0, 255}),
		}

		var buf bytes.Buffer
		err := Animate(&buf, files, 0.5)
		require.NoError(t, err)
		assert.NotZero(t, buf.Len())

		// The output starts with a regular PNG signature.
		assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, buf.Bytes()[:4])
	})

	t.Run("missing frame file fails with context", func(t *testing.T) {
		var buf bytes.Buffer
		err := Animate(&buf, []string{"does-not-exist.png"}, 1.0)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load frame")
	})
}

func TestDelayFraction(t *testing.T) {
	num, den := delayFraction(0.25)
	assert.Equal(t, uint16(250), num)
	assert.Equal(t, uint16(1000), den)
}

type failingStage struct{}

func (s *failingStage) Process(p *RasterImage) error {
	return errors.New("boom")
}

func TestPipeline(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	p := &RasterImage{Img: img, Bounds: img.Bounds()}

	err := p.Pipeline(&failingStage{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "stage 0")
	assert.Contains(t, err.Error(), "boom")
}
