package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/rm-hull/raster-tools/internal"
)

// Watch re-runs the named pipeline over inputDir on a cron schedule until
// interrupted.
func Watch(inputDir, outputDir, pipelineName, schedule string) error {
	c, err := internal.StartCron(schedule, func() {
		if err := Process(inputDir, outputDir, pipelineName); err != nil {
			log.Printf("Scheduled processing run failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	ctx := c.Stop()
	<-ctx.Done()
	return nil
}
