package audio

import (
	"fmt"
	"os"
	"sort"
	"strings"

	gaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const wavBitDepth = 16

// RecordingName returns the audio artifact filename for a session timestamp.
func RecordingName(timestamp string) string {
	return "recording_" + timestamp + ".wav"
}

// WriteWAV materializes an artifact as a 16-bit mono PCM WAV file.
func WriteWAV(path string, artifact Artifact) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	enc := wav.NewEncoder(f, artifact.SampleRate, wavBitDepth, 1, 1)
	buf := &gaudio.IntBuffer{
		Format:         &gaudio.Format{NumChannels: 1, SampleRate: artifact.SampleRate},
		Data:           make([]int, len(artifact.Samples)),
		SourceBitDepth: wavBitDepth,
	}
	for i, s := range artifact.Samples {
		buf.Data[i] = clampSample(s)
	}

	if err := enc.Write(buf); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		_ = f.Close()
		return fmt.Errorf("finalize %s: %w", path, err)
	}
	return f.Close()
}

// clampSample converts a [-1, 1] float sample to a 16-bit integer.
func clampSample(s float32) int {
	if s > 1 {
		s = 1
	} else if s < -1 {
		s = -1
	}
	return int(s * 32767)
}

// List returns the sorted basenames of WAV recordings in dir. A missing
// directory yields an empty list.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list recordings %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(e.Name()), ".wav") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}

// IsWAV reports whether path holds a decodable WAV file.
func IsWAV(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()
	return wav.NewDecoder(f).IsValidFile()
}
