package transcription

import (
	"context"
	stdErrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/MeritX-US/meritx-intake/errors"
	"github.com/MeritX-US/meritx-intake/internal/domain/entities"
	"github.com/MeritX-US/meritx-intake/pkg/ai"
)

// fakeTranscriber records calls and returns a canned result.
type fakeTranscriber struct {
	calls      int
	gotAudio   []byte
	gotLang    string
	transcript *entities.Transcript
	err        error
}

func (f *fakeTranscriber) Transcribe(ctx context.Context, audio []byte, language string) (*entities.Transcript, error) {
	f.calls++
	f.gotAudio = audio
	f.gotLang = language
	return f.transcript, f.err
}

func writeTempAudio(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "consultation.webm")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write temp audio: %v", err)
	}
	return path
}

func TestTranscribeFile_Success(t *testing.T) {
	fake := &fakeTranscriber{transcript: &entities.Transcript{
		ID:     "t-1",
		Status: entities.TranscriptStatusCompleted,
		Text:   "hello",
	}}
	svc := NewService(fake, "assemblyai", zap.NewNop())
	path := writeTempAudio(t, "fake-audio-bytes")

	got, err := svc.TranscribeFile(context.Background(), path, "en")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "t-1" {
		t.Errorf("transcript id = %q", got.ID)
	}
	if fake.calls != 1 || string(fake.gotAudio) != "fake-audio-bytes" || fake.gotLang != "en" {
		t.Errorf("adapter call wrong: calls=%d audio=%q lang=%q", fake.calls, fake.gotAudio, fake.gotLang)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("temporary file should be removed after success")
	}
}

func TestTranscribeFile_CleansUpOnFailure(t *testing.T) {
	fake := &fakeTranscriber{err: &ai.ProviderError{Provider: "deepgram", Message: "boom"}}
	svc := NewService(fake, "deepgram", zap.NewNop())
	path := writeTempAudio(t, "bytes")

	_, err := svc.TranscribeFile(context.Background(), path, "auto")
	if err == nil {
		t.Fatal("expected error")
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Errorf("temporary file should be removed after failure")
	}
}

func TestTranscribeFile_TranslatesLanguageDetectionError(t *testing.T) {
	fake := &fakeTranscriber{err: &ai.LanguageDetectionError{DetectedLanguage: "cy", Confidence: 42}}
	svc := NewService(fake, "deepgram", zap.NewNop())

	_, err := svc.TranscribeFile(context.Background(), writeTempAudio(t, "bytes"), "auto")

	var appErr errors.AppError
	if !stdErrors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %v", err)
	}
	if appErr.Code != errors.ErrorCode_LANGUAGE_DETECTION {
		t.Errorf("code = %v", appErr.Code)
	}
	if !strings.Contains(appErr.Message, "cy") || !strings.Contains(appErr.Message, "42%") {
		t.Errorf("message should carry detected language and confidence: %q", appErr.Message)
	}
}

func TestTranscribeFile_TranslatesNoSpeechError(t *testing.T) {
	fake := &fakeTranscriber{err: &ai.NoSpeechDetectedError{}}
	svc := NewService(fake, "deepgram", zap.NewNop())

	_, err := svc.TranscribeFile(context.Background(), writeTempAudio(t, "bytes"), "auto")

	var appErr errors.AppError
	if !stdErrors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %v", err)
	}
	if appErr.Code != errors.ErrorCode_NO_SPEECH {
		t.Errorf("code = %v", appErr.Code)
	}
}

func TestTranscribeFile_SanitizesProviderError(t *testing.T) {
	fake := &fakeTranscriber{err: &ai.ProviderError{
		Provider: "assemblyai",
		Message:  "status 401: invalid api key sk-secret",
	}}
	svc := NewService(fake, "assemblyai", zap.NewNop())

	_, err := svc.TranscribeFile(context.Background(), writeTempAudio(t, "bytes"), "en")

	var appErr errors.AppError
	if !stdErrors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %v", err)
	}
	if appErr.Code != errors.ErrorCode_PROVIDER {
		t.Errorf("code = %v", appErr.Code)
	}
	if strings.Contains(appErr.Message, "sk-secret") {
		t.Errorf("provider internals leaked into user-facing message: %q", appErr.Message)
	}
}

func TestTranscribeFile_MissingFile(t *testing.T) {
	fake := &fakeTranscriber{}
	svc := NewService(fake, "assemblyai", zap.NewNop())

	_, err := svc.TranscribeFile(context.Background(), filepath.Join(t.TempDir(), "missing.webm"), "en")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if fake.calls != 0 {
		t.Errorf("adapter should not be called when the file cannot be read")
	}
}
