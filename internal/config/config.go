// Package config handles the persisted key=value settings store.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Settings keys persisted in the store.
const (
	KeyOpenAIKey    = "OPENAI_API_KEY"
	KeyOllamaURL    = "OLLAMA_URL"
	KeyModel        = "MODEL"
	KeyWhisperModel = "WHISPER_MODEL"
	KeyLanguage     = "LANGUAGE"
	KeyOutputDir    = "OUTPUT_DIR"

	// Optional keys honored when present; never written by the menu.
	KeyWhisperBin      = "WHISPER_BIN"
	KeyWhisperModelDir = "WHISPER_MODEL_DIR"
)

// Defaults substituted for absent keys.
const (
	DefaultOllamaURL       = "http://localhost:11434"
	DefaultModel           = "gpt-3.5-turbo"
	DefaultWhisperModel    = "base"
	DefaultLanguage        = "pt"
	DefaultOutputDir       = "./output"
	DefaultWhisperBin      = "whisper-cli"
	DefaultWhisperModelDir = "models"
)

// SupportedLanguages are the accepted values for LANGUAGE.
var SupportedLanguages = []string{"pt", "en", "es"}

// WhisperModelSizes are the accepted values for WHISPER_MODEL.
var WhisperModelSizes = []string{"tiny", "base", "small", "medium", "large"}

// Config holds the resolved settings for one process run.
type Config struct {
	OpenAIKey       string
	OllamaURL       string
	Model           string
	WhisperModel    string
	Language        string
	OutputDir       string
	WhisperBin      string
	WhisperModelDir string
}

// Value returns the setting for a persisted key, for menu display.
func (c Config) Value(key string) string {
	switch key {
	case KeyOpenAIKey:
		return c.OpenAIKey
	case KeyOllamaURL:
		return c.OllamaURL
	case KeyModel:
		return c.Model
	case KeyWhisperModel:
		return c.WhisperModel
	case KeyLanguage:
		return c.Language
	case KeyOutputDir:
		return c.OutputDir
	default:
		return ""
	}
}

// InvalidValueError reports a rejected settings update.
type InvalidValueError struct {
	Field string
	Value string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value %q for %s", e.Value, e.Field)
}

// Store reads and writes the persisted settings file.
type Store struct {
	path string
}

// NewStore creates a store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// DefaultPath resolves the settings file location. SECRETINA_ENV
// overrides the conventional .env in the working directory.
func DefaultPath() string {
	if p := strings.TrimSpace(os.Getenv("SECRETINA_ENV")); p != "" {
		return p
	}
	return ".env"
}

// Load reads the persisted settings, substituting defaults for absent
// keys. A missing file yields the full default configuration.
func (s *Store) Load() (Config, error) {
	values, err := s.read()
	if err != nil {
		return Config{}, err
	}
	return Config{
		OpenAIKey:       values[KeyOpenAIKey],
		OllamaURL:       valueOrDefault(values, KeyOllamaURL, DefaultOllamaURL),
		Model:           valueOrDefault(values, KeyModel, DefaultModel),
		WhisperModel:    valueOrDefault(values, KeyWhisperModel, DefaultWhisperModel),
		Language:        valueOrDefault(values, KeyLanguage, DefaultLanguage),
		OutputDir:       valueOrDefault(values, KeyOutputDir, DefaultOutputDir),
		WhisperBin:      valueOrDefault(values, KeyWhisperBin, DefaultWhisperBin),
		WhisperModelDir: valueOrDefault(values, KeyWhisperModelDir, DefaultWhisperModelDir),
	}, nil
}

// Update validates the given changes and merges them into the persisted
// store with a read-modify-write cycle. Keys not named in changes,
// including keys unknown to this program, survive untouched.
func (s *Store) Update(changes map[string]string) error {
	for key, value := range changes {
		if err := Validate(key, value); err != nil {
			return err
		}
	}

	values, err := s.read()
	if err != nil {
		return err
	}
	for key, value := range changes {
		values[key] = value
	}
	if err := godotenv.Write(values, s.path); err != nil {
		return fmt.Errorf("write settings %s: %w", s.path, err)
	}
	return nil
}

// Validate checks a single settings value against its domain. Keys
// without a constrained domain accept any value.
func Validate(key, value string) error {
	switch key {
	case KeyLanguage:
		if !contains(SupportedLanguages, value) {
			return &InvalidValueError{Field: key, Value: value}
		}
	case KeyWhisperModel:
		if !contains(WhisperModelSizes, value) {
			return &InvalidValueError{Field: key, Value: value}
		}
	}
	return nil
}

func (s *Store) read() (map[string]string, error) {
	values, err := godotenv.Read(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read settings %s: %w", s.path, err)
	}
	return values, nil
}

func valueOrDefault(values map[string]string, key, def string) string {
	if v, ok := values[key]; ok && strings.TrimSpace(v) != "" {
		return v
	}
	return def
}

func contains(set []string, value string) bool {
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}
