package internal

import (
	"fmt"
	"log"

	"github.com/go-co-op/gocron/v2"
)

func NewScheduler(client FeedClient, feedId, outDir string, poolSize int) (gocron.Scheduler, error) {

	if err := FetchFeed(client, feedId, outDir, poolSize); err != nil {
		return nil, fmt.Errorf("initial run of job failed: %w", err)
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(
			gocron.NewAtTime(2, 00, 00),
			gocron.NewAtTime(3, 00, 00),
			gocron.NewAtTime(4, 00, 00),
			gocron.NewAtTime(5, 00, 00),
		)),
		gocron.NewTask(func() {
			if err := FetchFeed(client, feedId, outDir, poolSize); err != nil {
				log.Printf("Scheduled feed refresh failed: %v", err)
			}
		}),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	scheduler.Start()
	return scheduler, nil
}
