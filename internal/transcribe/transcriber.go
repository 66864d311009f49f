// Package transcribe provides the speech-to-text capability.
package transcribe

import "context"

// Transcriber converts an audio file plus a language hint into text.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath, language string) (string, error)
}
