package video

import (
	"fmt"
	"keyframes/internal/frame"

	"gocv.io/x/gocv"
)

type Stream struct {
	video *gocv.VideoCapture
}

func NewFileStream(videoPath string) (*Stream, error) {
	video, err := gocv.VideoCaptureFile(videoPath)
	if err != nil {
		return nil, fmt.Errorf("unable to open video file: %w", err)
	}
	return &Stream{video: video}, nil
}

func (s *Stream) Close() {
	s.video.Close()
}

func (s *Stream) Fps() float64 {
	return s.video.Get(gocv.VideoCaptureFPS)
}

// FrameCount reports the frame total declared by the container. Some
// codecs lie, so it is informational only; the decode loop trusts Read.
func (s *Stream) FrameCount() int {
	return int(s.video.Get(gocv.VideoCaptureFrameCount))
}

// Read decodes the next frame. It returns nil once the stream is
// exhausted or the decoder gives up mid-file; either way the frames
// decoded so far remain valid.
func (s *Stream) Read(frameIndex int) *frame.Frame {
	mat := gocv.NewMat()
	if ok := s.video.Read(&mat); !ok || mat.Empty() {
		mat.Close()
		return nil
	}

	f, err := frame.NewFrame(frameIndex, &mat)
	if err != nil {
		mat.Close()
		return nil
	}
	return f
}
