package ai

import "fmt"

// ProviderError reports a transport, auth, or provider-side processing failure
// at a transcription backend. Message carries provider detail for server-side
// logs; callers surface only a sanitized message to users.
type ProviderError struct {
	Provider string
	Message  string
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Provider, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// LanguageDetectionError means language auto-detection was requested but the
// backend produced no usable text. Confidence is a percentage in [0,100].
type LanguageDetectionError struct {
	DetectedLanguage string
	Confidence       float64
}

func (e *LanguageDetectionError) Error() string {
	return fmt.Sprintf("language detection produced an empty transcript (detected %q at %.0f%% confidence)",
		e.DetectedLanguage, e.Confidence)
}

// NoSpeechDetectedError means the audio contains no recognizable speech at
// all, regardless of language: the backend returned zero words.
type NoSpeechDetectedError struct{}

func (e *NoSpeechDetectedError) Error() string {
	return "no speech detected in audio"
}
