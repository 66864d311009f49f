// Package audio handles microphone capture and WAV persistence.
package audio

import (
	"context"
	"errors"
	"fmt"
)

// SampleRate is the fixed mono capture rate in Hz.
const SampleRate = 16000

// ErrEmptyCapture is returned when capture stops before any frame arrived.
var ErrEmptyCapture = errors.New("no audio frames captured")

// Artifact is an immutable mono PCM sample buffer.
type Artifact struct {
	Samples    []float32
	SampleRate int
}

// FrameSource is a push-based microphone stream. Start begins delivery
// on Frames; Stop halts delivery and closes Frames after the last
// in-flight frame, then reports any teardown error.
type FrameSource interface {
	Start(ctx context.Context, sampleRate int) error
	Frames() <-chan []float32
	Stop() error
}

// Recorder turns a FrameSource into captured artifacts.
type Recorder struct {
	source FrameSource
}

// NewRecorder creates a recorder over the given frame source.
func NewRecorder(source FrameSource) *Recorder {
	return &Recorder{source: source}
}

// Capture is one live recording. Frames accumulate in arrival order
// until Stop.
type Capture struct {
	source FrameSource
	frames [][]float32
	done   chan struct{}
}

// Start opens the source and begins accumulating frames in the background.
func (r *Recorder) Start(ctx context.Context) (*Capture, error) {
	if err := r.source.Start(ctx, SampleRate); err != nil {
		return nil, fmt.Errorf("start capture: %w", err)
	}
	c := &Capture{source: r.source, done: make(chan struct{})}
	go c.drain(r.source.Frames())
	return c, nil
}

func (c *Capture) drain(in <-chan []float32) {
	defer close(c.done)
	for frame := range in {
		c.frames = append(c.frames, frame)
	}
}

// Stop ends the capture and concatenates the accumulated frames. The
// source is stopped and the drain goroutine joined before the buffer is
// read, so every delivered frame is accounted for.
func (c *Capture) Stop() (Artifact, error) {
	stopErr := c.source.Stop()
	<-c.done

	if stopErr != nil {
		return Artifact{}, fmt.Errorf("stop capture: %w", stopErr)
	}

	total := 0
	for _, f := range c.frames {
		total += len(f)
	}
	if total == 0 {
		return Artifact{}, ErrEmptyCapture
	}

	samples := make([]float32, 0, total)
	for _, f := range c.frames {
		samples = append(samples, f...)
	}
	return Artifact{Samples: samples, SampleRate: SampleRate}, nil
}
