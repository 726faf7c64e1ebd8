package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/rm-hull/raster-tools/cmd"
	"github.com/spf13/cobra"
)

func main() {
	var rootPath string
	var port int
	var poolSize int
	var debug bool
	var inputDir string
	var outputDir string
	var pipelineName string
	var schedule string
	var outputFile string
	var frameDelay float64

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	rootCmd := &cobra.Command{
		Use:  "raster-tools",
		Long: `Smoothing and resampling tools for raster images`,
	}

	processCmd := &cobra.Command{
		Use:   "process [--input <path>] [--output <path>] [--pipeline <name>]",
		Short: "Run a processing pipeline over a directory of PNG files",
		RunE: func(_ *cobra.Command, _ []string) error {
			return cmd.Process(inputDir, outputDir, pipelineName)
		},
	}
	processCmd.Flags().StringVar(&inputDir, "input", ".", "Directory containing source PNG files")
	processCmd.Flags().StringVar(&outputDir, "output", "./data/processed", "Directory to write processed files to")
	processCmd.Flags().StringVar(&pipelineName, "pipeline", "thumbnail", "Pipeline to apply (thumbnail, overlay, heatmap, raw)")

	fetchCmd := &cobra.Command{
		Use:   "fetch [--root <path>] [--pool-size <n>]",
		Short: "Download and process all files in the remote feed manifest",
		RunE: func(_ *cobra.Command, _ []string) error {
			return cmd.Fetch(rootPath, poolSize)
		},
	}
	fetchCmd.Flags().StringVar(&rootPath, "root", "./data/feeds", "Path to root folder")
	fetchCmd.Flags().IntVar(&poolSize, "pool-size", 4, "Number of concurrent workers")

	watchCmd := &cobra.Command{
		Use:   "watch [--input <path>] [--output <path>] [--pipeline <name>] [--schedule <cron>]",
		Short: "Periodically re-run a processing pipeline over a directory",
		RunE: func(_ *cobra.Command, _ []string) error {
			return cmd.Watch(inputDir, outputDir, pipelineName, schedule)
		},
	}
	watchCmd.Flags().StringVar(&inputDir, "input", ".", "Directory containing source PNG files")
	watchCmd.Flags().StringVar(&outputDir, "output", "./data/processed", "Directory to write processed files to")
	watchCmd.Flags().StringVar(&pipelineName, "pipeline", "thumbnail", "Pipeline to apply (thumbnail, overlay, heatmap, raw)")
	watchCmd.Flags().StringVar(&schedule, "schedule", "30 4,5,6 * * *", "CRON schedule expression")

	var inputFile string
	var smoothedFile string
	var tolerance float64
	var sigma float64

	smoothCmd := &cobra.Command{
		Use:   "smooth [--input <file>] [--output <file>] [--tolerance <n>] [--sigma <n>]",
		Short: "Key out near-white pixels and smooth a single PNG file",
		RunE: func(_ *cobra.Command, _ []string) error {
			return cmd.Smooth(inputFile, smoothedFile, tolerance, sigma)
		},
	}
	smoothCmd.Flags().StringVar(&inputFile, "input", "", "Source PNG file")
	smoothCmd.Flags().StringVar(&smoothedFile, "output", "./data/smoothed.png", "Output PNG filename")
	smoothCmd.Flags().Float64Var(&tolerance, "tolerance", 50, "Distance from white below which pixels fade out")
	smoothCmd.Flags().Float64Var(&sigma, "sigma", 1.0, "Gaussian blur strength")
	_ = smoothCmd.MarkFlagRequired("input")

	animateCmd := &cobra.Command{
		Use:   "animate [--input <path>] [--output <file>] [--delay <seconds>]",
		Short: "Assemble a directory of PNG frames into an animated PNG",
		RunE: func(_ *cobra.Command, _ []string) error {
			return cmd.Animate(inputDir, outputFile, frameDelay)
		},
	}
	animateCmd.Flags().StringVar(&inputDir, "input", ".", "Directory containing PNG frames")
	animateCmd.Flags().StringVar(&outputFile, "output", "./data/animation.png", "Output APNG filename")
	animateCmd.Flags().Float64Var(&frameDelay, "delay", 1.0, "Per-frame delay in seconds")

	apiServerCmd := &cobra.Command{
		Use:   "api-server [--root <path>] [--port <port>] [--pool-size <n>] [--debug]",
		Short: "Start HTTP API server",
		Run: func(_ *cobra.Command, _ []string) {
			cmd.ApiServer(rootPath, port, poolSize, debug)
		},
	}
	apiServerCmd.Flags().StringVar(&rootPath, "root", "./data/feeds", "Path to root folder")
	apiServerCmd.Flags().IntVar(&port, "port", 8080, "Port to run HTTP server on")
	apiServerCmd.Flags().IntVar(&poolSize, "pool-size", 4, "Number of concurrent workers")
	apiServerCmd.Flags().BoolVar(&debug, "debug", false, "Enable debugging (pprof) - WARNING: do not enable in production")

	rootCmd.AddCommand(processCmd, fetchCmd, watchCmd, smoothCmd, animateCmd, apiServerCmd)
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
