package summary

import (
	"context"
	stdErrors "errors"
	"fmt"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/MeritX-US/meritx-intake/errors"
)

// fakeGenerator captures the prompt and counts calls so tests can assert the
// backend is never reached for invalid input.
type fakeGenerator struct {
	calls     int
	gotPrompt string
	response  string
	err       error
}

func (f *fakeGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	f.calls++
	f.gotPrompt = prompt
	return f.response, f.err
}

func TestSummarize_ReturnsBackendResponseUnmodified(t *testing.T) {
	fake := &fakeGenerator{response: "## Client Information\n- Jane Doe"}
	svc := NewService(fake, zap.NewNop())

	got, err := svc.Summarize(context.Background(), "Client: I need help with my visa application.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != fake.response {
		t.Errorf("summary modified: %q", got)
	}
	if fake.calls != 1 {
		t.Errorf("expected exactly one backend call, got %d", fake.calls)
	}
}

func TestSummarize_PromptContainsTranscriptVerbatim(t *testing.T) {
	fake := &fakeGenerator{response: "ok"}
	svc := NewService(fake, zap.NewNop())
	transcript := "Speaker A: My landlord kept the deposit.\nSpeaker B: When did you move out?"

	if _, err := svc.Summarize(context.Background(), transcript); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(fake.gotPrompt, transcript) {
		t.Errorf("prompt does not contain transcript verbatim:\n%s", fake.gotPrompt)
	}
	if !strings.HasSuffix(fake.gotPrompt, transcript) {
		t.Errorf("transcript should be appended at the end of the prompt")
	}
	if !strings.Contains(fake.gotPrompt, "Format the response in Markdown.") {
		t.Errorf("prompt missing the Markdown instruction")
	}
}

func TestSummarize_RejectsEmptyInputWithoutBackendCall(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t  \n"} {
		fake := &fakeGenerator{response: "should not be used"}
		svc := NewService(fake, zap.NewNop())

		_, err := svc.Summarize(context.Background(), input)

		var appErr errors.AppError
		if !stdErrors.As(err, &appErr) {
			t.Fatalf("input %q: expected AppError, got %v", input, err)
		}
		if appErr.Code != errors.ErrorCode_VALIDATION {
			t.Errorf("input %q: code = %v", input, appErr.Code)
		}
		if fake.calls != 0 {
			t.Errorf("input %q: backend called %d times, want 0", input, fake.calls)
		}
	}
}

func TestSummarize_BackendFailure(t *testing.T) {
	fake := &fakeGenerator{err: fmt.Errorf("model overloaded")}
	svc := NewService(fake, zap.NewNop())

	_, err := svc.Summarize(context.Background(), "some transcript")

	var appErr errors.AppError
	if !stdErrors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %v", err)
	}
	if appErr.Code != errors.ErrorCode_SUMMARIZATION {
		t.Errorf("code = %v", appErr.Code)
	}
	if appErr.Details["provider_details"] != "model overloaded" {
		t.Errorf("provider details missing: %v", appErr.Details)
	}
}
