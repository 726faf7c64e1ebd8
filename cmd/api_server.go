package cmd

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/Depado/ginprom"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/rm-hull/raster-tools/internal"
	healthcheck "github.com/tavsec/gin-healthcheck"
	"github.com/tavsec/gin-healthcheck/checks"
	hc_config "github.com/tavsec/gin-healthcheck/config"
)

func ApiServer(rootDir string, port int, poolSize int, debug bool) {

	baseUrl := os.Getenv("RASTER_FEED_BASE_URL")
	if baseUrl == "" {
		log.Fatal("Error: RASTER_FEED_BASE_URL environment variable not set.")
	}

	feedId := os.Getenv("RASTER_FEED_ID")
	if feedId == "" {
		log.Fatal("Error: RASTER_FEED_ID environment variable not set.")
	}

	client := internal.NewFeedClient(baseUrl, os.Getenv("RASTER_FEED_API_KEY"))
	sched, err := internal.NewScheduler(client, feedId, rootDir, poolSize)
	if err != nil {
		log.Fatal(err)
	}

	r := gin.New()

	prometheus := ginprom.New(
		ginprom.Engine(r),
		ginprom.Path("/metrics"),
		ginprom.Ignore("/healthz"),
	)

	r.Use(
		gin.Recovery(),
		gin.LoggerWithWriter(gin.DefaultWriter, "/healthz", "/metrics"),
		prometheus.Instrument(),
	)

	if debug {
		log.Println("WARNING: pprof endpoints are enabled and exposed. Do not run with this flag in production.")
		pprof.Register(r)
	}

	err = healthcheck.New(r, hc_config.DefaultConfig(), []checks.Check{})
	if err != nil {
		log.Fatalf("failed to initialize healthcheck: %v", err)
	}

	r.Static("/v1/images", rootDir)

	addr := fmt.Sprintf(":%d", port)
	log.Printf("Starting HTTP API Server on port %d...", port)
	if err := r.Run(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("HTTP API Server failed to start on port %d: %v", port, err)
	}

	err = sched.Shutdown()
	if err != nil {
		log.Fatalf("failed to shutdown scheduler: %v", err)
	}
}
