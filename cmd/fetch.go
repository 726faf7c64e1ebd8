package cmd

import (
	"errors"
	"os"

	"github.com/rm-hull/raster-tools/internal"
)

// Fetch downloads every file listed in the remote feed manifest and runs it
// through the pipeline registered for its kind, using a worker pool.
func Fetch(outDir string, poolSize int) error {
	internal.GitVersion()
	internal.UserInfo()
	internal.EnvironmentVars()

	baseUrl := os.Getenv("RASTER_FEED_BASE_URL")
	if baseUrl == "" {
		return errors.New("environment variable RASTER_FEED_BASE_URL not set")
	}

	feedId := os.Getenv("RASTER_FEED_ID")
	if feedId == "" {
		return errors.New("environment variable RASTER_FEED_ID not set")
	}

	apiKey := os.Getenv("RASTER_FEED_API_KEY")

	client := internal.NewFeedClient(baseUrl, apiKey)
	return internal.FetchFeed(client, feedId, outDir, poolSize)
}
