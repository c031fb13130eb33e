package ai

import (
	"bytes"
	"context"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"

	"github.com/MeritX-US/meritx-intake/internal/domain/entities"
	"github.com/MeritX-US/meritx-intake/pkg/config"
)

const providerAssemblyAI = "assemblyai"

// assemblyAISpeechModel is the high-accuracy acoustic model requested for
// every job.
const assemblyAISpeechModel = "universal-2"

// assemblyAIRedactionPolicies is the fixed allow-list of PII categories that
// are masked in the transcript. Deliberately restricted to banking and
// national-ID data so redaction does not strip the legal context (names,
// dates, conditions) the summary depends on.
var assemblyAIRedactionPolicies = []aai.PIIPolicy{
	"banking_information",
	"credit_card_number",
	"credit_card_expiration",
	"credit_card_cvv",
	"ssn",
	"us_social_security_number",
}

// AssemblyAIClient adapts the official AssemblyAI SDK to the Transcriber
// interface. AssemblyAI returns turn-key diarization: utterances arrive
// already merged into one record per continuous speaker turn, so no local
// merge step is needed.
type AssemblyAIClient struct {
	client *aai.Client
}

// NewAssemblyAIClient creates an AssemblyAI adapter from the provided config.
func NewAssemblyAIClient(cfg *config.AssemblyAIConfig) *AssemblyAIClient {
	return &AssemblyAIClient{client: aai.NewClient(cfg.APIKey)}
}

// Transcribe uploads the audio and blocks until the transcript reaches a
// terminal status.
func (c *AssemblyAIClient) Transcribe(ctx context.Context, audio []byte, language string) (*entities.Transcript, error) {
	params := &aai.TranscriptOptionalParams{
		SpeakerLabels:     aai.Bool(true),
		SpeechModel:       assemblyAISpeechModel,
		RedactPII:         aai.Bool(true),
		RedactPIIPolicies: assemblyAIRedactionPolicies,
		RedactPIISub:      "entity_name",
	}
	// "auto" is expressed by omitting the language code; the provider then
	// self-detects.
	if language != LanguageAuto {
		params.LanguageCode = aai.TranscriptLanguageCode(language)
	}

	transcript, err := c.client.Transcripts.TranscribeFromReader(ctx, bytes.NewReader(audio), params)
	if err != nil {
		return nil, &ProviderError{Provider: providerAssemblyAI, Message: "transcription request failed", Err: err}
	}

	return normalizeAssemblyAI(transcript)
}

// normalizeAssemblyAI converts the SDK's pointer-heavy response into the
// canonical transcript model. Every expected field is checked; a missing field
// is a ProviderError, never a silent zero value.
func normalizeAssemblyAI(t aai.Transcript) (*entities.Transcript, error) {
	if string(t.Status) == "error" {
		msg := "provider reported an error"
		if t.Error != nil {
			msg = *t.Error
		}
		return nil, &ProviderError{Provider: providerAssemblyAI, Message: msg}
	}
	if t.ID == nil {
		return nil, missingField("id")
	}
	if t.Text == nil {
		return nil, missingField("text")
	}

	out := &entities.Transcript{
		ID:     *t.ID,
		Status: entities.TranscriptStatusCompleted,
		Text:   *t.Text,
	}

	if len(t.Utterances) > 0 {
		out.Utterances = make([]entities.Utterance, 0, len(t.Utterances))
	}
	for _, u := range t.Utterances {
		if u.Speaker == nil || u.Text == nil || u.Start == nil || u.End == nil {
			return nil, missingField("utterances")
		}
		utt := entities.Utterance{
			Speaker: *u.Speaker,
			Text:    *u.Text,
			Start:   *u.Start,
			End:     *u.End,
			Words:   make([]entities.Word, 0, len(u.Words)),
		}
		for _, w := range u.Words {
			if w.Text == nil || w.Start == nil || w.End == nil || w.Confidence == nil {
				return nil, missingField("utterances.words")
			}
			utt.Words = append(utt.Words, entities.Word{
				Text:       *w.Text,
				Start:      *w.Start,
				End:        *w.End,
				Confidence: *w.Confidence,
				Speaker:    utt.Speaker,
			})
		}
		out.Utterances = append(out.Utterances, utt)
	}

	return out, nil
}

func missingField(name string) *ProviderError {
	return &ProviderError{Provider: providerAssemblyAI, Message: "response missing expected field " + name}
}
