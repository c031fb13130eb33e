package ai

import (
	"errors"
	"strings"
	"testing"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"
)

func ptr[T any](v T) *T { return &v }

func aaiWord(text string, start, end int64, confidence float64, speaker string) aai.TranscriptWord {
	return aai.TranscriptWord{
		Text:       ptr(text),
		Start:      ptr(start),
		End:        ptr(end),
		Confidence: ptr(confidence),
		Speaker:    ptr(speaker),
	}
}

func TestNormalizeAssemblyAI_Completed(t *testing.T) {
	source := aai.Transcript{
		ID:     ptr("transcript-123"),
		Status: "completed",
		Text:   ptr("Hello there. Hi."),
		Utterances: []aai.TranscriptUtterance{
			{
				Speaker: ptr("A"),
				Text:    ptr("Hello there."),
				Start:   ptr(int64(0)),
				End:     ptr(int64(1200)),
				Words: []aai.TranscriptWord{
					aaiWord("Hello", 0, 500, 0.99, "A"),
					aaiWord("there.", 600, 1200, 0.97, "A"),
				},
			},
			{
				Speaker: ptr("B"),
				Text:    ptr("Hi."),
				Start:   ptr(int64(1500)),
				End:     ptr(int64(1900)),
				Words: []aai.TranscriptWord{
					aaiWord("Hi.", 1500, 1900, 0.95, "B"),
				},
			},
		},
	}

	got, err := normalizeAssemblyAI(source)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "transcript-123" {
		t.Errorf("id = %q", got.ID)
	}
	if got.Text != "Hello there. Hi." {
		t.Errorf("text = %q", got.Text)
	}
	if len(got.Utterances) != 2 {
		t.Fatalf("expected 2 utterances, got %d", len(got.Utterances))
	}
	first := got.Utterances[0]
	if first.Speaker != "A" || first.Start != 0 || first.End != 1200 {
		t.Errorf("first utterance = %+v", first)
	}
	if len(first.Words) != 2 || first.Words[1].Text != "there." || first.Words[1].End != 1200 {
		t.Errorf("first utterance words = %+v", first.Words)
	}
	// Word speakers mirror the utterance speaker.
	if first.Words[0].Speaker != "A" {
		t.Errorf("word speaker = %q", first.Words[0].Speaker)
	}
}

func TestNormalizeAssemblyAI_TextOnly(t *testing.T) {
	got, err := normalizeAssemblyAI(aai.Transcript{
		ID:     ptr("transcript-9"),
		Status: "completed",
		Text:   ptr("single channel audio"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Utterances != nil {
		t.Errorf("expected nil utterances, got %v", got.Utterances)
	}
}

func TestNormalizeAssemblyAI_ProviderReportedError(t *testing.T) {
	_, err := normalizeAssemblyAI(aai.Transcript{
		ID:     ptr("transcript-0"),
		Status: "error",
		Error:  ptr("audio file is corrupt"),
	})
	var pErr *ProviderError
	if !errors.As(err, &pErr) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
	if !strings.Contains(pErr.Message, "corrupt") {
		t.Errorf("provider message lost: %q", pErr.Message)
	}
}

func TestNormalizeAssemblyAI_MissingField(t *testing.T) {
	_, err := normalizeAssemblyAI(aai.Transcript{
		ID:     ptr("transcript-1"),
		Status: "completed",
		// Text missing.
	})
	var pErr *ProviderError
	if !errors.As(err, &pErr) {
		t.Fatalf("expected ProviderError, got %v", err)
	}

	_, err = normalizeAssemblyAI(aai.Transcript{
		ID:     ptr("transcript-2"),
		Status: "completed",
		Text:   ptr("hello"),
		Utterances: []aai.TranscriptUtterance{
			{Text: ptr("hello")}, // speaker and offsets missing
		},
	})
	if !errors.As(err, &pErr) {
		t.Fatalf("expected ProviderError for missing utterance fields, got %v", err)
	}
}
