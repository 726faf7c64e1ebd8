package png

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/kettek/apng"
)

// Animate assembles the given PNG frames into an animated PNG, streamed
// directly to w. Every frame is displayed for frameDelay seconds and the
// animation loops forever.
func Animate(w io.Writer, files []string, frameDelay float64) error {
	anim := apng.APNG{
		Frames:    make([]apng.Frame, 0, len(files)),
		LoopCount: 0,
	}

	num, den := delayFraction(frameDelay)
	for _, fname := range files {
		frame, err := loadFrame(fname)
		if err != nil {
			return fmt.Errorf("failed to load frame %s: %w", fname, err)
		}

		anim.Frames = append(anim.Frames, apng.Frame{
			Image:            frame,
			DelayNumerator:   num,
			DelayDenominator: den,
		})
	}

	return apng.Encode(w, anim)
}

func loadFrame(fname string) (image.Image, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return png.Decode(f)
}

// delayFraction expresses a delay in seconds as the numerator/denominator
// pair used by the APNG frame control chunk.
func delayFraction(seconds float64) (uint16, uint16) {
	return uint16(seconds * 1000), 1000
}
