// Package ai contains the external AI provider clients: the two speech-to-text
// adapters (AssemblyAI and Deepgram) that normalize provider responses into the
// canonical transcript model, and the Gemini client used for summarization.
package ai

import (
	"context"

	"github.com/MeritX-US/meritx-intake/internal/domain/entities"
)

// LanguageAuto is the sentinel language hint that asks the backend to detect
// the spoken language itself.
const LanguageAuto = "auto"

// Transcriber is the capability interface every speech-to-text backend adapter
// implements. The audio is a complete local recording, not a stream. Adapters
// fail with the typed errors in this package; they never return provider SDK
// errors directly.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, language string) (*entities.Transcript, error)
}

// Generator is the capability interface for a generative-text backend. It is a
// single blocking call returning the backend's first text response.
type Generator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}
