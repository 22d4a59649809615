package keyframe

import (
	"fmt"
	"keyframes/internal/frame"
	"keyframes/internal/video"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	uuid "github.com/gofrs/uuid/v5"
	"gocv.io/x/gocv"
)

// Extractor runs keyframe selection against a video file and writes one
// JPEG still per selected frame.
type Extractor struct {
	policy Policy
	logger *slog.Logger
}

func NewExtractor(policy Policy, logger *slog.Logger) (*Extractor, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}

	return &Extractor{policy: policy, logger: logger}, nil
}

// Extract decodes videoPath, stores the selected stills under outputDir
// and returns their records. The capture handle is released before it
// returns, whatever the outcome.
func (e *Extractor) Extract(videoPath string, outputDir string) ([]Record, error) {
	started := time.Now()

	runID, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("unable to generate run id: %w", err)
	}

	logger := e.logger
	if logger != nil {
		logger = logger.With("run_id", runID.String())
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("unable to create output directory: %w", err)
	}

	stream, err := video.NewFileStream(videoPath)
	if err != nil {
		return nil, err
	}
	defer stream.Close()

	fps := stream.Fps()
	if fps <= 0 {
		return nil, fmt.Errorf("unable to get video frame rate from %s", videoPath)
	}

	if logger != nil {
		logger.Info("video opened",
			"path", videoPath,
			"fps", fps,
			"reported_frames", stream.FrameCount())
	}

	selector := NewSelector(e.policy)
	records, err := selector.Run(stream, e.stillWriter(outputDir))
	if err != nil {
		return nil, err
	}

	if logger != nil {
		if len(records) == e.policy.MaxFrames {
			logger.Info("max frames reached", "max_frames", e.policy.MaxFrames)
		}
		logger.Info("extraction complete",
			"frames_decoded", selector.FramesRead(),
			"frames_emitted", len(records),
			"duration_ms", time.Since(started).Milliseconds())
	}

	return records, nil
}

func (e *Extractor) stillWriter(outputDir string) func(*frame.Frame, Record) error {
	return func(f *frame.Frame, record Record) error {
		outputPath := filepath.Join(outputDir, record.Filename)
		if !gocv.IMWrite(outputPath, *f.Mat()) {
			return fmt.Errorf("unable to write image %s", outputPath)
		}
		return nil
	}
}
