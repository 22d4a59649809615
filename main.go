package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"keyframes/internal/config"
	"keyframes/internal/keyframe"
	"keyframes/internal/logging"
	"os"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid environment configuration: %v\n", err)
		os.Exit(1)
	}

	var videoPath string
	var outputDir string
	var threshold float64
	var minInterval int
	var maxFrames int
	var logLevel string

	flag.StringVar(&videoPath, "video", "", "Video file")
	flag.StringVar(&outputDir, "output", "", "Output directory for extracted frames")
	flag.Float64Var(&threshold, "threshold", cfg.Threshold, "Difference threshold %")
	flag.IntVar(&minInterval, "min-interval", cfg.MinInterval, "Minimum frames between selected frames")
	flag.IntVar(&maxFrames, "max-frames", cfg.MaxFrames, "Maximum number of frames to extract")
	flag.StringVar(&logLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	flag.Parse()

	if videoPath == "" {
		fmt.Fprintln(os.Stderr, "Error: missing video file option")
		os.Exit(1)
	}
	if outputDir == "" {
		fmt.Fprintln(os.Stderr, "Error: missing output directory option")
		os.Exit(1)
	}

	logger := logging.NewLogger(logLevel)

	extractor, err := keyframe.NewExtractor(keyframe.Policy{
		Threshold:   threshold,
		MinInterval: minInterval,
		MaxFrames:   maxFrames,
	}, logger)
	if err != nil {
		logger.Error("invalid selection policy", "error", err)
		os.Exit(1)
	}

	records, err := extractor.Extract(videoPath, outputDir)
	if err != nil {
		logger.Error("extraction failed", "error", err)
		os.Exit(1)
	}

	payload, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		logger.Error("unable to encode records", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(payload))
}
