package keyframe

import "fmt"

// Record describes one selected frame. Records are emitted in ascending
// frame order and marshal to the JSON payload printed on stdout.
type Record struct {
	FrameNumber int    `json:"frame_number"`
	Timestamp   int    `json:"timestamp"`
	Filename    string `json:"filename"`
	DiffScore   int    `json:"diff_score"`
}

func newRecord(frameIndex int, fps float64, score float64) Record {
	return Record{
		FrameNumber: frameIndex,
		Timestamp:   int(float64(frameIndex) / fps * 1000.0),
		Filename:    frameFilename(frameIndex),
		DiffScore:   int(score),
	}
}

func frameFilename(frameIndex int) string {
	return fmt.Sprintf("frame_%06d.jpg", frameIndex)
}
