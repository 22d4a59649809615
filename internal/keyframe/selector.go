package keyframe

import (
	"errors"
	"fmt"
	"keyframes/internal/frame"
)

var ErrNoFrames = errors.New("no frames decoded from video")

// Policy fixes the selection parameters for one extraction run.
type Policy struct {
	Threshold   float64
	MinInterval int
	MaxFrames   int
}

func (p Policy) Validate() error {
	if p.Threshold < 0 {
		return fmt.Errorf("threshold must not be negative, got %g", p.Threshold)
	}
	if p.MinInterval < 0 {
		return fmt.Errorf("min interval must not be negative, got %d", p.MinInterval)
	}
	if p.MaxFrames < 1 {
		return fmt.Errorf("max frames must be at least 1, got %d", p.MaxFrames)
	}
	return nil
}

// Source yields decoded frames in presentation order. Read returns nil
// once the source is exhausted; a decoder giving up mid-stream looks the
// same, so the frames selected so far survive.
type Source interface {
	Fps() float64
	Read(frameIndex int) *frame.Frame
}

type Selector struct {
	policy       Policy
	baseline     *frame.Frame
	lastSelected int
	framesRead   int
	records      []Record
}

func NewSelector(policy Policy) *Selector {
	return &Selector{
		policy:       policy,
		lastSelected: -1,
		records:      []Record{}, // marshals to [] rather than null
	}
}

// Run drains src, comparing each frame against the last selected frame
// so that slow drift accumulates until it crosses the threshold. Each
// selection is handed to onSelect before it is recorded; an onSelect
// error aborts the run.
func (s *Selector) Run(src Source, onSelect func(*frame.Frame, Record) error) ([]Record, error) {
	defer s.reset()

	var currentFrame *frame.Frame

	for len(s.records) < s.policy.MaxFrames {
		if currentFrame = src.Read(s.framesRead); currentFrame == nil {
			break
		}

		err := s.consider(currentFrame, src.Fps(), onSelect)
		currentFrame.Close()
		if err != nil {
			return nil, err
		}

		s.framesRead++
	}

	if s.framesRead == 0 {
		return nil, ErrNoFrames
	}

	return s.records, nil
}

// FramesRead reports how many frames the last Run decoded, selected or not.
func (s *Selector) FramesRead() int {
	return s.framesRead
}

func (s *Selector) consider(currentFrame *frame.Frame, fps float64, onSelect func(*frame.Frame, Record) error) error {
	if s.baseline == nil { // First frame anchors the run
		return s.selectFrame(currentFrame, fps, 0, onSelect)
	}

	if currentFrame.FrameIndex()-s.lastSelected < s.policy.MinInterval {
		return nil
	}

	score, err := frame.DiffScore(s.baseline, currentFrame)
	if err != nil {
		return err
	}
	if score < s.policy.Threshold {
		return nil
	}

	return s.selectFrame(currentFrame, fps, score, onSelect)
}

func (s *Selector) selectFrame(currentFrame *frame.Frame, fps float64, score float64, onSelect func(*frame.Frame, Record) error) error {
	record := newRecord(currentFrame.FrameIndex(), fps, score)

	if onSelect != nil {
		if err := onSelect(currentFrame, record); err != nil {
			return err
		}
	}

	baseline, err := currentFrame.Clone()
	if err != nil {
		return err
	}

	if s.baseline != nil {
		s.baseline.Close()
	}
	s.baseline = baseline
	s.lastSelected = currentFrame.FrameIndex()
	s.records = append(s.records, record)

	return nil
}

func (s *Selector) reset() {
	if s.baseline != nil {
		s.baseline.Close()
		s.baseline = nil
	}
}
