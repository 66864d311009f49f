package audio

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
)

// fakeSource delivers a scripted set of frames and closes the channel
// on Stop, mirroring the FrameSource contract.
type fakeSource struct {
	scripted  [][]float32
	frames    chan []float32
	delivered chan struct{}
	stopErr   error
	stopCalls int
}

func newFakeSource(scripted ...[]float32) *fakeSource {
	return &fakeSource{scripted: scripted}
}

func (f *fakeSource) Start(_ context.Context, _ int) error {
	f.frames = make(chan []float32, len(f.scripted)+1)
	f.delivered = make(chan struct{})
	go func() {
		defer close(f.delivered)
		for _, frame := range f.scripted {
			f.frames <- frame
		}
	}()
	return nil
}

func (f *fakeSource) Frames() <-chan []float32 { return f.frames }

func (f *fakeSource) Stop() error {
	f.stopCalls++
	<-f.delivered
	close(f.frames)
	return f.stopErr
}

func frameOf(n int, value float32) []float32 {
	frame := make([]float32, n)
	for i := range frame {
		frame[i] = value
	}
	return frame
}

func TestCaptureAccumulatesFramesInOrder(t *testing.T) {
	t.Parallel()

	source := newFakeSource(
		frameOf(16000, 0.1),
		frameOf(16000, 0.2),
		frameOf(16000, 0.3),
	)
	recorder := NewRecorder(source)

	capture, err := recorder.Start(context.Background())
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}

	artifact, err := capture.Stop()
	if err != nil {
		t.Fatalf("stop failed: %v", err)
	}

	if len(artifact.Samples) != 48000 {
		t.Fatalf("sample count = %d, want 48000", len(artifact.Samples))
	}
	if artifact.SampleRate != SampleRate {
		t.Fatalf("sample rate = %d, want %d", artifact.SampleRate, SampleRate)
	}
	if artifact.Samples[0] != 0.1 || artifact.Samples[16000] != 0.2 || artifact.Samples[32000] != 0.3 {
		t.Fatalf("frames not concatenated in arrival order")
	}
	if source.stopCalls != 1 {
		t.Fatalf("stopCalls = %d, want 1", source.stopCalls)
	}
}

func TestCaptureEmptyStopFails(t *testing.T) {
	t.Parallel()

	recorder := NewRecorder(newFakeSource())
	capture, err := recorder.Start(context.Background())
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}

	_, err = capture.Stop()
	if !errors.Is(err, ErrEmptyCapture) {
		t.Fatalf("expected ErrEmptyCapture, got %v", err)
	}
}

func TestCaptureStopErrorSurfaces(t *testing.T) {
	t.Parallel()

	source := newFakeSource(frameOf(8, 0.5))
	source.stopErr = errors.New("device gone")
	recorder := NewRecorder(source)

	capture, err := recorder.Start(context.Background())
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}

	_, err = capture.Stop()
	if err == nil || !errors.Is(err, source.stopErr) {
		t.Fatalf("expected stop error, got %v", err)
	}
}

func TestWriteWAVRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, RecordingName("2025-01-02_03-04-05"))
	artifact := Artifact{Samples: frameOf(16000, 0.25), SampleRate: SampleRate}

	if err := WriteWAV(path, artifact); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		t.Fatalf("written file is not a valid WAV")
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(buf.Data) != 16000 {
		t.Fatalf("decoded sample count = %d, want 16000", len(buf.Data))
	}
	if buf.Format.SampleRate != SampleRate || buf.Format.NumChannels != 1 {
		t.Fatalf("unexpected format: %+v", buf.Format)
	}
}

func TestClampSample(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float32
		want int
	}{
		{0, 0},
		{1, 32767},
		{-1, -32767},
		{2.5, 32767},
		{-3, -32767},
	}
	for _, tt := range tests {
		if got := clampSample(tt.in); got != tt.want {
			t.Errorf("clampSample(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestListReturnsSortedWAVs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"recording_b.wav", "recording_a.wav", "transcript_a.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("seed file: %v", err)
		}
	}

	files, err := List(dir)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(files) != 2 || files[0] != "recording_a.wav" || files[1] != "recording_b.wav" {
		t.Fatalf("unexpected listing: %v", files)
	}
}

func TestListMissingDirIsEmpty(t *testing.T) {
	t.Parallel()

	files, err := List(filepath.Join(t.TempDir(), "absent"))
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(files) != 0 {
		t.Fatalf("expected empty listing, got %v", files)
	}
}

func TestIsWAV(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	good := filepath.Join(dir, "good.wav")
	if err := WriteWAV(good, Artifact{Samples: frameOf(64, 0.1), SampleRate: SampleRate}); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	bad := filepath.Join(dir, "bad.wav")
	if err := os.WriteFile(bad, []byte("not a wav"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	if !IsWAV(good) {
		t.Errorf("IsWAV(good) = false, want true")
	}
	if IsWAV(bad) {
		t.Errorf("IsWAV(bad) = true, want false")
	}
}
