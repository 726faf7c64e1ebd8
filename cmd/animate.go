package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rm-hull/raster-tools/internal/png"
)

// Animate assembles the PNGs in inputDir (in lexical order) into an
// animated PNG written to outputFile.
func Animate(inputDir, outputFile string, frameDelay float64) error {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return err
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".png") {
			continue
		}
		files = append(files, filepath.Join(inputDir, entry.Name()))
	}
	sort.Strings(files)

	if len(files) == 0 {
		return fmt.Errorf("no PNG files found in %s", inputDir)
	}

	out, err := os.Create(outputFile)
	if err != nil {
		return err
	}

	if err := png.Animate(out, files, frameDelay); err != nil {
		_ = out.Close()
		return err
	}

	return out.Close()
}
