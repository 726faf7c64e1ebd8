package internal

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/rm-hull/raster-tools/internal/models"
	"github.com/rm-hull/raster-tools/internal/png"
	"github.com/rm-hull/raster-tools/internal/png/stage"
)

type Processor struct {
	startTime time.Time
	endTime   time.Time
	outDir    string
	poolSize  int
	maxJobs   int
	jobs      chan models.File
	results   chan error
	client    FeedClient
	files     []models.File
	feedId    string
	pipelines map[string][]png.PipelineStage
}

// DefaultPipelines maps a manifest file kind onto the processing stages
// applied to it before it is written out.
func DefaultPipelines() map[string][]png.PipelineStage {
	return map[string][]png.PipelineStage{
		"thumbnail": {
			&stage.DownsampleStage{Width: 256, Height: 256},
			&stage.SharpenStage{},
		},
		"overlay": {
			&stage.ReplaceColorStage{Tolerance: 50, Replace: color.White},
			&stage.GaussianBlurStage{Sigma: 1.0},
			&stage.ResampleStage{},
		},
		"heatmap": {
			&stage.GreyscaleStage{},
			&stage.GaussianBlurStage{Sigma: 1.0},
			&stage.ResampleStage{},
		},
		// NoOp
		"raw": {},
	}
}

func NewProcessor(outDir string, poolSize int, client FeedClient, feedId string) (*Processor, error) {
	if poolSize < 1 {
		return nil, errors.New("pool size must be at least 1")
	}
	startTime := time.Now()
	feedId = url.QueryEscape(feedId)
	resp, err := client.GetManifest(feedId)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve manifest for feed %s: %w", feedId, err)
	}

	log.Printf("Feed %s contains %d files", feedId, len(resp.Files))
	if len(resp.Files) == 0 {
		return nil, errors.New("no files to process")
	}

	return &Processor{
		startTime: startTime,
		outDir:    outDir,
		poolSize:  poolSize,
		maxJobs:   -1,
		jobs:      make(chan models.File),
		results:   make(chan error),
		client:    client,
		files:     resp.Files,
		feedId:    feedId,
		pipelines: DefaultPipelines(),
	}, nil
}

// DispatchJobs sends files to the jobs channel for processing by workers.
// When maxJobs is greater than zero, it limits the number of jobs dispatched,
// hence set to -1 to dispatch all jobs.
func (p *Processor) DispatchJobs() {

	go func() {
		for n, file := range p.files {
			if p.maxJobs > 0 && n >= p.maxJobs {
				break
			}
			p.jobs <- file
		}
		close(p.jobs)
	}()
}

func (p *Processor) StartWorkers() {
	log.Printf("Starting processing files with pool size: %d", p.poolSize)

	for i := 0; i < p.poolSize; i++ {
		go p.worker(i)
	}
}

func (p *Processor) worker(i int) {
	log.Printf("Worker %d started", i)
	for file := range p.jobs {
		p.results <- p.processFile(file)
	}
	log.Printf("Worker %d finished", i)
}

func (p *Processor) processFile(file models.File) error {
	path := filepath.Join(p.outDir, file.Kind)
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("failed to create path: %w", err)
	}

	filename := filepath.Join(path, file.FileId+".png")

	// if the file already exists, skip processing
	if _, err := os.Stat(filename); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}

	pipeline := p.pipelines[file.Kind]
	if pipeline == nil {
		return fmt.Errorf("no processing pipeline defined for file kind %s", file.Kind)
	}

	inFile, err := p.client.GetImage(p.feedId, file.FileId)
	if err != nil {
		return fmt.Errorf("failed to retrieve file %s from feed %s: %w", file.FileId, p.feedId, err)
	}
	defer func() {
		_ = inFile.Close()
	}()

	tmpFile, err := os.CreateTemp(path, "download-*.tmp")
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

	img, err := png.NewRasterFromReader(inFile)
	if err != nil {
		return fmt.Errorf("failed to decode PNG from data file: %w", err)
	}

	if err := img.Pipeline(pipeline...); err != nil {
		return fmt.Errorf("failed to process image pipeline: %w", err)
	}

	if err := img.Write(tmpFile); err != nil {
		return fmt.Errorf("failed to write processed image to temporary file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file before rename: %w", err)
	}

	if err := os.Rename(tmpFile.Name(), filename); err != nil {
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	cleanupTemp = false // Successfully renamed, don't delete
	return nil
}

func (p *Processor) Wait() []error {
	waitFor := p.maxJobs
	if waitFor < 0 {
		waitFor = len(p.files)
	}
	log.Printf("Waiting for %d files to be processed", waitFor)

	errors := make([]error, 0, 10)
	for n := 0; n < waitFor; n++ {
		err := <-p.results
		if err != nil {
			errors = append(errors, err)
		}
	}
	p.endTime = time.Now()
	elapsed := p.endTime.Sub(p.startTime)
	log.Printf("All files processed in %s (errors=%d)", elapsed, len(errors))
	return errors
}

// FetchFeed retrieves every file in the feed's manifest and runs it through
// the pipeline registered for its kind.
func FetchFeed(client FeedClient, feedId, outDir string, poolSize int) error {
	p, err := NewProcessor(outDir, poolSize, client, feedId)
	if err != nil {
		return err
	}

	p.StartWorkers()
	p.DispatchJobs()
	if errs := p.Wait(); len(errs) > 0 {
		return fmt.Errorf("%d of %d files failed: %v", len(errs), len(p.files), errs)
	}
	return nil
}
