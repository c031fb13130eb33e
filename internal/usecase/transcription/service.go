package transcription

import (
	"context"
	stdErrors "errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/MeritX-US/meritx-intake/errors"
	"github.com/MeritX-US/meritx-intake/internal/domain/entities"
	"github.com/MeritX-US/meritx-intake/pkg/ai"
)

// Service orchestrates one transcription request: it owns the uploaded
// audio's temporary file, delegates to the configured backend adapter, and
// translates typed adapter failures into sanitized user-facing errors.
type Service interface {
	TranscribeFile(ctx context.Context, path string, language string) (*entities.Transcript, error)
}

type service struct {
	provider ai.Transcriber
	backend  string
	logger   *zap.Logger
}

// NewService constructs the orchestrator. The backend adapter is selected
// once at startup and fixed for the process lifetime.
func NewService(provider ai.Transcriber, backend string, logger *zap.Logger) Service {
	return &service{provider: provider, backend: backend, logger: logger}
}

// TranscribeFile reads the uploaded audio and runs it through the backend.
// The temporary file is deleted on every exit path; a cleanup failure is
// logged but never masks the original error.
func (s *service) TranscribeFile(ctx context.Context, path string, language string) (*entities.Transcript, error) {
	defer func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			if s.logger != nil {
				s.logger.Warn("failed to remove temporary audio file",
					zap.String("path", path),
					zap.Error(err),
				)
			}
		}
	}()

	audio, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.ErrInternal(fmt.Errorf("read uploaded audio: %w", err))
	}

	transcript, err := s.provider.Transcribe(ctx, audio, language)
	if err != nil {
		return nil, s.translate(err)
	}

	if s.logger != nil {
		s.logger.Info("transcription completed",
			zap.String("backend", s.backend),
			zap.String("transcript_id", transcript.ID),
			zap.Int("utterance_count", len(transcript.Utterances)),
			zap.Int("text_length", len(transcript.Text)),
		)
	}
	return transcript, nil
}

// translate maps typed adapter failures onto the user-facing error taxonomy.
// Full provider detail is logged here; only sanitized messages travel on.
func (s *service) translate(err error) error {
	if s.logger != nil {
		s.logger.Error("transcription failed",
			zap.String("backend", s.backend),
			zap.Error(err),
		)
	}

	var ldErr *ai.LanguageDetectionError
	if stdErrors.As(err, &ldErr) {
		return errors.ErrLanguageDetection(ldErr.DetectedLanguage, ldErr.Confidence)
	}

	var nsErr *ai.NoSpeechDetectedError
	if stdErrors.As(err, &nsErr) {
		return errors.ErrNoSpeechDetected()
	}

	var pErr *ai.ProviderError
	if stdErrors.As(err, &pErr) {
		return errors.ErrProvider(pErr.Provider, err)
	}

	return errors.ErrProvider(s.backend, err)
}
