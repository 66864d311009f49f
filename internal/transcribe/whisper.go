package transcribe

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// WhisperConfig locates the whisper.cpp binary and model.
type WhisperConfig struct {
	Binary   string
	ModelDir string
	Model    string
}

// Whisper transcribes audio by running the whisper.cpp CLI.
type Whisper struct {
	cfg WhisperConfig
}

// NewWhisper creates a whisper.cpp transcriber.
func NewWhisper(cfg WhisperConfig) *Whisper {
	if cfg.Binary == "" {
		cfg.Binary = "whisper-cli"
	}
	if cfg.ModelDir == "" {
		cfg.ModelDir = "models"
	}
	if cfg.Model == "" {
		cfg.Model = "base"
	}
	return &Whisper{cfg: cfg}
}

// ModelPath returns the ggml model file for the configured size.
func (w *Whisper) ModelPath() string {
	return filepath.Join(w.cfg.ModelDir, "ggml-"+w.cfg.Model+".bin")
}

// Transcribe runs whisper.cpp on the audio file and returns its plain
// text output.
func (w *Whisper) Transcribe(ctx context.Context, audioPath, language string) (string, error) {
	args := []string{
		"-m", w.ModelPath(),
		"-f", audioPath,
		"-nt",
	}
	if language != "" {
		args = append(args, "-l", language)
	}

	cmd := exec.CommandContext(ctx, w.cfg.Binary, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail != "" {
			return "", fmt.Errorf("whisper transcribe: %w: %s", err, detail)
		}
		return "", fmt.Errorf("whisper transcribe: %w", err)
	}

	return strings.TrimSpace(stdout.String()), nil
}
