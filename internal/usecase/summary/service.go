package summary

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/MeritX-US/meritx-intake/errors"
	"github.com/MeritX-US/meritx-intake/pkg/ai"
)

// Service turns a consultation transcript into a structured Markdown intake
// summary via a generative-text backend.
type Service interface {
	Summarize(ctx context.Context, transcriptText string) (string, error)
}

type service struct {
	generator ai.Generator
	logger    *zap.Logger
}

// NewService constructs the summarization service
func NewService(generator ai.Generator, logger *zap.Logger) Service {
	return &service{generator: generator, logger: logger}
}

// Summarize validates the transcript text, builds the fixed legal
// consultation prompt, and makes one blocking call to the generative backend.
// Empty or whitespace-only input is rejected before any backend call.
func (s *service) Summarize(ctx context.Context, transcriptText string) (string, error) {
	if strings.TrimSpace(transcriptText) == "" {
		return "", errors.ErrValidation("Transcript contains no text to summarize")
	}

	markdown, err := s.generator.GenerateText(ctx, buildPrompt(transcriptText))
	if err != nil {
		if s.logger != nil {
			s.logger.Error("summarization failed", zap.Error(err))
		}
		return "", errors.ErrSummarization(err)
	}

	if s.logger != nil {
		s.logger.Info("summary generated",
			zap.Int("transcript_length", len(transcriptText)),
			zap.Int("summary_length", len(markdown)),
		)
	}
	return markdown, nil
}
