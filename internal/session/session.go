// Package session drives the interactive capture-to-summary loop.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/peder1981/Secre-Tina/internal/audio"
	"github.com/peder1981/Secre-Tina/internal/config"
	"github.com/peder1981/Secre-Tina/internal/i18n"
	"github.com/peder1981/Secre-Tina/internal/prompt"
	"github.com/peder1981/Secre-Tina/internal/summarize"
	"github.com/peder1981/Secre-Tina/internal/transcribe"
	"github.com/peder1981/Secre-Tina/internal/ui"
)

// timestampLayout is the shared artifact key format.
const timestampLayout = "2006-01-02_15-04-05"

// ErrNoRecordings signals a review request against an empty store. It is
// handled inside the loop and never escapes as a failure.
var ErrNoRecordings = errors.New("no recordings available")

// TranscriberFactory builds a transcriber from the active settings.
type TranscriberFactory func(config.Config) transcribe.Transcriber

// SummarizerFactory builds the backend registry from the active settings.
type SummarizerFactory func(config.Config) *summarize.Router

// Deps carries the orchestrator's collaborators. Nil factories fall back
// to the production whisper.cpp and OpenAI/Ollama implementations.
type Deps struct {
	Input        io.Reader
	Output       io.Writer
	Store        *config.Store
	Config       config.Config
	Recorder     *audio.Recorder
	Transcribers TranscriberFactory
	Summarizers  SummarizerFactory
	Now          func() time.Time
}

// Orchestrator is the interactive session state machine. It owns the
// process-wide app state: settings, presenter and backend registry.
type Orchestrator struct {
	in  *bufio.Scanner
	out io.Writer

	store        *config.Store
	recorder     *audio.Recorder
	transcribers TranscriberFactory
	summarizers  SummarizerFactory
	now          func() time.Time

	cfg         config.Config
	pres        i18n.Presenter
	transcriber transcribe.Transcriber
	router      *summarize.Router
}

// New assembles the orchestrator from its dependencies.
func New(deps Deps) *Orchestrator {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Transcribers == nil {
		deps.Transcribers = func(cfg config.Config) transcribe.Transcriber {
			return transcribe.NewWhisper(transcribe.WhisperConfig{
				Binary:   cfg.WhisperBin,
				ModelDir: cfg.WhisperModelDir,
				Model:    cfg.WhisperModel,
			})
		}
	}
	if deps.Summarizers == nil {
		deps.Summarizers = summarize.Resolve
	}

	o := &Orchestrator{
		in:           bufio.NewScanner(deps.Input),
		out:          deps.Output,
		store:        deps.Store,
		recorder:     deps.Recorder,
		transcribers: deps.Transcribers,
		summarizers:  deps.Summarizers,
		now:          deps.Now,
	}
	o.applyConfig(deps.Config)
	return o
}

// applyConfig installs new settings and rebuilds the derived state.
func (o *Orchestrator) applyConfig(cfg config.Config) {
	o.cfg = cfg
	o.pres = i18n.New(cfg.Language)
	o.transcriber = o.transcribers(cfg)
	o.router = o.summarizers(cfg)
}

// Run drives the main menu until the user exits or input ends.
func (o *Orchestrator) Run(ctx context.Context) error {
	o.println(ui.TitleStyle, o.pres.T(i18n.MsgWelcome))
	o.newline()

	for {
		choice, ok := o.promptLine(o.pres.T(i18n.MsgActionSelect))
		if !ok {
			return nil
		}

		switch choice {
		case "0":
			o.println(ui.InfoStyle, o.pres.T(i18n.MsgGoodbye))
			return nil
		case "1":
			o.report(o.runNewRecording(ctx))
		case "2":
			o.report(o.runReview(ctx))
		case "3":
			o.runSettings()
		default:
			o.println(ui.WarnStyle, o.pres.T(i18n.MsgInvalidSelection))
		}
	}
}

// runNewRecording captures a fresh recording and runs the pipeline on it.
func (o *Orchestrator) runNewRecording(ctx context.Context) error {
	o.println(ui.InfoStyle, o.pres.T(i18n.MsgNewRecording))
	timestamp := o.now().Format(timestampLayout)
	mode := o.selectMode()

	o.println(ui.RecordingStyle, o.pres.T(i18n.MsgRecordingStart))
	capture, err := o.recorder.Start(ctx)
	if err != nil {
		return err
	}
	o.in.Scan() // block until Enter

	artifact, err := capture.Stop()
	if err != nil {
		return err
	}
	o.println(ui.InfoStyle, o.pres.T(i18n.MsgRecordingStop))

	audioPath := filepath.Join(o.cfg.OutputDir, audio.RecordingName(timestamp))
	if err := audio.WriteWAV(audioPath, artifact); err != nil {
		return err
	}
	slog.Info("recording saved", "path", audioPath, "samples", len(artifact.Samples))

	return o.runPipeline(ctx, timestamp, mode, audioPath)
}

// runReview resolves an existing recording and runs the pipeline on it.
func (o *Orchestrator) runReview(ctx context.Context) error {
	o.println(ui.InfoStyle, o.pres.T(i18n.MsgReviewAudio))
	timestamp := o.now().Format(timestampLayout)

	audioPath, err := o.selectRecording()
	if err != nil {
		if errors.Is(err, ErrNoRecordings) {
			o.println(ui.WarnStyle, o.pres.Tf(i18n.MsgAudioNotFound, o.cfg.OutputDir))
			return nil
		}
		return err
	}
	if audioPath == "" {
		return nil // invalid selection already reported
	}

	mode := o.selectMode()
	return o.runPipeline(ctx, timestamp, mode, audioPath)
}

// runPipeline transcribes, summarizes and persists under one timestamp.
func (o *Orchestrator) runPipeline(ctx context.Context, timestamp string, mode prompt.Mode, audioPath string) error {
	o.println(ui.InfoStyle, o.pres.T(i18n.MsgTranscribing))
	transcript, err := o.transcriber.Transcribe(ctx, audioPath, o.cfg.Language)
	if err != nil {
		return fmt.Errorf("transcription: %w", err)
	}

	transcriptPath := filepath.Join(o.cfg.OutputDir, "transcript_"+timestamp+".txt")
	if err := os.WriteFile(transcriptPath, []byte(transcript), 0o644); err != nil {
		return err
	}
	o.println(ui.SuccessStyle, o.pres.Tf(i18n.MsgTranscriptSaved, transcriptPath))

	o.println(ui.InfoStyle, o.pres.T(i18n.MsgSummarizing))
	summary, err := o.router.Summarize(ctx, prompt.Build(mode, o.cfg.Language), transcript)
	if err != nil {
		return err
	}

	summaryPath := filepath.Join(o.cfg.OutputDir, string(mode)+"_"+timestamp+".md")
	if err := os.WriteFile(summaryPath, []byte(summary), 0o644); err != nil {
		return err
	}
	o.println(ui.SuccessStyle, o.pres.Tf(i18n.MsgComplete, summaryPath))
	slog.Info("session complete", "mode", mode, "timestamp", timestamp)
	return nil
}

// selectMode reads the mode choice. Exactly "1" selects Meeting; every
// other input defaults to Diary.
func (o *Orchestrator) selectMode() prompt.Mode {
	choice, _ := o.promptLine(o.pres.T(i18n.MsgModeSelect))
	if choice == "1" {
		o.println(ui.InfoStyle, o.pres.T(i18n.MsgMeetingMode))
		return prompt.ModeMeeting
	}
	o.println(ui.InfoStyle, o.pres.T(i18n.MsgDiaryMode))
	return prompt.ModeDiary
}

// selectRecording lists stored recordings and resolves the user's pick.
// An empty path with nil error means the selection was invalid and has
// been reported.
func (o *Orchestrator) selectRecording() (string, error) {
	files, err := audio.List(o.cfg.OutputDir)
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		return "", ErrNoRecordings
	}

	o.println(ui.MenuStyle, o.pres.Tf(i18n.MsgSelectAudio, o.cfg.OutputDir))
	for i, name := range files {
		o.println(ui.MenuStyle, fmt.Sprintf("%d. %s", i+1, name))
	}

	choice, ok := o.promptLine("> ")
	if !ok {
		return "", nil
	}
	n, err := strconv.Atoi(choice)
	if err != nil || n < 1 || n > len(files) {
		o.println(ui.WarnStyle, o.pres.T(i18n.MsgInvalidSelection))
		return "", nil
	}

	path := filepath.Join(o.cfg.OutputDir, files[n-1])
	if !audio.IsWAV(path) {
		o.println(ui.WarnStyle, o.pres.T(i18n.MsgInvalidSelection))
		return "", nil
	}
	o.println(ui.InfoStyle, o.pres.Tf(i18n.MsgSelectedFile, files[n-1]))
	return path, nil
}

// report renders a pipeline failure and returns control to the menu.
func (o *Orchestrator) report(err error) {
	if err == nil {
		return
	}
	slog.Error("session attempt failed", "error", err)
	if errors.Is(err, summarize.ErrNoBackend) {
		o.println(ui.ErrorStyle, o.pres.Tf(i18n.MsgError, o.pres.T(i18n.MsgNoAI)))
		return
	}
	o.println(ui.ErrorStyle, o.pres.Tf(i18n.MsgError, err.Error()))
}

func (o *Orchestrator) promptLine(message string) (string, bool) {
	fmt.Fprint(o.out, message)
	if !o.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(o.in.Text()), true
}

func (o *Orchestrator) println(style lipgloss.Style, message string) {
	fmt.Fprintln(o.out, style.Render(message))
}

func (o *Orchestrator) newline() {
	fmt.Fprintln(o.out)
}
