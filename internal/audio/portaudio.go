package audio

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/gordonklaus/portaudio"
)

const framesPerBuffer = 1024

// PortAudioSource captures mono frames from the default input device.
type PortAudioSource struct {
	mu         sync.Mutex
	stream     *portaudio.Stream
	frames     chan []float32
	cancel     context.CancelFunc
	readerDone chan struct{}
	stopOnce   *sync.Once
	stopErr    error
}

// NewPortAudioSource creates an unstarted portaudio frame source.
func NewPortAudioSource() *PortAudioSource {
	return &PortAudioSource{}
}

// Start initializes portaudio and begins streaming frames from the
// default input device.
func (s *PortAudioSource) Start(ctx context.Context, sampleRate int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stream != nil {
		return errors.New("capture already running")
	}

	if err := portaudio.Initialize(); err != nil {
		return err
	}

	buf := make([]float32, framesPerBuffer)
	stream, err := portaudio.OpenDefaultStream(1, 0, float64(sampleRate), framesPerBuffer, buf)
	if err != nil {
		_ = portaudio.Terminate()
		return err
	}
	if err := stream.Start(); err != nil {
		_ = stream.Close()
		_ = portaudio.Terminate()
		return err
	}

	readerCtx, cancel := context.WithCancel(ctx)
	s.stream = stream
	s.cancel = cancel
	s.frames = make(chan []float32, 64)
	s.readerDone = make(chan struct{})
	s.stopOnce = &sync.Once{}

	go s.readLoop(readerCtx, stream, buf)
	return nil
}

func (s *PortAudioSource) readLoop(ctx context.Context, stream *portaudio.Stream, buf []float32) {
	defer close(s.readerDone)
	defer close(s.frames)

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if err := stream.Read(); err != nil {
			if ctx.Err() == nil {
				slog.Debug("audio read error", "error", err)
			}
			return
		}

		frame := append([]float32(nil), buf...)
		select {
		case s.frames <- frame:
		case <-ctx.Done():
			return
		}
	}
}

// Frames returns the delivery channel for captured frames.
func (s *PortAudioSource) Frames() <-chan []float32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frames
}

// Stop halts the reader, closes the stream and terminates portaudio.
func (s *PortAudioSource) Stop() error {
	s.mu.Lock()
	stream := s.stream
	cancel := s.cancel
	readerDone := s.readerDone
	once := s.stopOnce
	s.mu.Unlock()

	if stream == nil || once == nil {
		return errors.New("capture not running")
	}

	once.Do(func() {
		cancel()
		<-readerDone

		var errs []error
		if err := stream.Stop(); err != nil {
			errs = append(errs, err)
		}
		if err := stream.Close(); err != nil {
			errs = append(errs, err)
		}
		if err := portaudio.Terminate(); err != nil {
			errs = append(errs, err)
		}
		s.stopErr = errors.Join(errs...)

		s.mu.Lock()
		s.stream = nil
		s.cancel = nil
		s.mu.Unlock()
	})
	return s.stopErr
}
