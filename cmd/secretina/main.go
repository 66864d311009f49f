// Secre-Tina - records meetings or diary entries, transcribes them and
// writes an AI-generated summary next to the recording.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/peder1981/Secre-Tina/internal/audio"
	"github.com/peder1981/Secre-Tina/internal/config"
	"github.com/peder1981/Secre-Tina/internal/session"
)

func main() {
	// Setup structured logging; the interactive surface owns stdout.
	level := slog.LevelInfo
	if os.Getenv("SECRETINA_DEBUG") == "1" {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	store := config.NewStore(config.DefaultPath())
	cfg, err := store.Load()
	if err != nil {
		slog.Error("failed to load settings", "path", store.Path(), "error", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		slog.Error("failed to create output directory", "dir", cfg.OutputDir, "error", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	orch := session.New(session.Deps{
		Input:    os.Stdin,
		Output:   os.Stdout,
		Store:    store,
		Config:   cfg,
		Recorder: audio.NewRecorder(audio.NewPortAudioSource()),
	})

	if err := orch.Run(ctx); err != nil {
		slog.Error("session error", "error", err)
		os.Exit(1)
	}
}
