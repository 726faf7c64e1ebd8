package cmd

import (
	"fmt"
	"os"

	"github.com/rm-hull/raster-tools/internal/png"
)

// Smooth applies the composite white-key, blur and resample pass to a
// single PNG file.
func Smooth(inputFile, outputFile string, tolerance, sigma float64) error {
	in, err := os.Open(inputFile)
	if err != nil {
		return err
	}
	defer func() {
		if err := in.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to close input file %s: %v\n", inputFile, err)
		}
	}()

	out, err := os.Create(outputFile)
	if err != nil {
		return err
	}

	if err := png.Smooth(in, out, tolerance, sigma); err != nil {
		_ = out.Close()
		return fmt.Errorf("failed to smooth %s: %w", inputFile, err)
	}

	return out.Close()
}
