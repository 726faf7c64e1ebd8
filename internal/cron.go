package internal

import (
	"log"

	"github.com/robfig/cron/v3"
)

func StartCron(schedule string, job func()) (*cron.Cron, error) {
	c := cron.New()

	log.Printf("Starting CRON job to process files (schedule=%s)", schedule)
	if _, err := c.AddFunc(schedule, job); err != nil {
		return nil, err
	}

	c.Start()
	return c, nil
}
