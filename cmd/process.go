package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rm-hull/raster-tools/internal"
	"github.com/rm-hull/raster-tools/internal/png"
)

// Process runs every PNG in inputDir through the named pipeline, writing
// results into outputDir under the same filename.
func Process(inputDir, outputDir, pipelineName string) error {
	internal.GitVersion()
	internal.UserInfo()

	pipeline, ok := internal.DefaultPipelines()[pipelineName]
	if !ok {
		return fmt.Errorf("unknown pipeline %q", pipelineName)
	}

	files, err := filepath.Glob(filepath.Join(inputDir, "*.png"))
	if err != nil {
		return fmt.Errorf("failed to list input files: %w", err)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output path: %w", err)
	}

	for _, file := range files {
		if err := processFile(file, outputDir, pipeline); err != nil {
			return fmt.Errorf("failed to process %s: %w", file, err)
		}
	}

	return nil
}

func processFile(file, outputDir string, pipeline []png.PipelineStage) error {
	inFile, err := os.Open(file)
	if err != nil {
		return err
	}
	defer func() {
		if err := inFile.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to close input file %s: %v\n", file, err)
		}
	}()

	img, err := png.NewRasterFromReader(inFile)
	if err != nil {
		return fmt.Errorf("failed to decode PNG: %w", err)
	}

	if err := img.Pipeline(pipeline...); err != nil {
		return fmt.Errorf("failed to process image pipeline: %w", err)
	}

	tmpFile, err := os.CreateTemp(outputDir, "process-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	cleanupTemp := true
	defer func() {
		_ = tmpFile.Close()
		if cleanupTemp {
			_ = os.Remove(tmpFile.Name())
		}
	}()

	if err := img.Write(tmpFile); err != nil {
		return fmt.Errorf("failed to write processed image: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file before rename: %w", err)
	}

	filename := filepath.Join(outputDir, filepath.Base(file))
	if err := os.Rename(tmpFile.Name(), filename); err != nil {
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	cleanupTemp = false
	return nil
}
