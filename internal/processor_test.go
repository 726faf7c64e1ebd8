package internal

import (
	"bytes"
	"image"
	"image/color"
	imagepng "image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/rm-hull/raster-tools/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockFeedClient serves an in-memory manifest and image data.
type MockFeedClient struct {
	manifest  *models.ManifestResponse
	imageData []byte
}

func (m *MockFeedClient) GetManifest(feedId string) (*models.ManifestResponse, error) {
	return m.manifest, nil
}

func (m *MockFeedClient) GetImage(feedId, fileId string) (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(m.imageData)), nil
}

func encodeTestPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{uint8(x * 20), uint8(y * 20), 0, 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, imagepng.Encode(&buf, img))
	return buf.Bytes()
}

func TestFetchFeed(t *testing.T) {
	t.Run("processes every manifest entry through its pipeline", func(t *testing.T) {
		outDir := t.TempDir()
		client := &MockFeedClient{
			manifest: &models.ManifestResponse{
				Feed: models.Feed{FeedId: "test-feed", Format: "png"},
				Files: []models.File{
					{FileId: "a", Kind: "thumbnail"},
					{FileId: "b", Kind: "raw"},
				},
			},
			imageData: encodeTestPNG(t, 8, 8),
		}

		err := FetchFeed(client, "test-feed", outDir, 2)
		require.NoError(t, err)

		thumb, err := os.Open(filepath.Join(outDir, "thumbnail", "a.png"))
		require.NoError(t, err)
		defer thumb.Close()

		img, err := imagepng.Decode(thumb)
		require.NoError(t, err)
		assert.Equal(t, 256, img.Bounds().Dx())
		assert.Equal(t, 256, img.Bounds().Dy())

		assert.FileExists(t, filepath.Join(outDir, "raw", "b.png"))
	})

	t.Run("unknown kind is reported as a failure", func(t *testing.T) {
		client := &MockFeedClient{
			manifest: &models.ManifestResponse{
				Files: []models.File{{FileId: "x", Kind: "unsupported"}},
			},
			imageData: encodeTestPNG(t, 4, 4),
		}

		err := FetchFeed(client, "test-feed", t.TempDir(), 1)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no processing pipeline defined")
	})

	t.Run("pool size must be positive", func(t *testing.T) {
		_, err := NewProcessor(t.TempDir(), 0, &MockFeedClient{}, "f")
		assert.Error(t, err)
	})
}
