package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MeritX-US/meritx-intake/internal/domain/entities"
	"github.com/MeritX-US/meritx-intake/pkg/config"
)

const (
	providerDeepgram   = "deepgram"
	deepgramListenPath = "/v1/listen"

	// deepgramAccurateModel is used when the caller names a language the
	// model supports; deepgramFallbackModel covers everything else,
	// including auto-detection.
	deepgramAccurateModel = "nova-2"
	deepgramFallbackModel = "whisper-large"
)

// deepgramAccurateLanguages is the allow-list of language codes supported by
// the higher-accuracy model.
var deepgramAccurateLanguages = map[string]struct{}{
	"en": {}, "es": {}, "fr": {}, "de": {}, "pt": {}, "ja": {},
	"ko": {}, "zh": {}, "hi": {}, "ru": {}, "it": {}, "nl": {},
}

// deepgramRedactionCategories is the fixed superset of PII categories masked
// in every request: financial, personal-identifier, health-adjacent, and
// contact data.
var deepgramRedactionCategories = []string{
	"pci",
	"ssn",
	"drivers_license",
	"passport_number",
	"healthcare_number",
	"medical_condition",
	"email_address",
	"phone_number",
}

// DeepgramClient is a minimal Deepgram prerecorded-audio client implementing
// the Transcriber interface. Deepgram emits many short, possibly
// speaker-fragmented segments, so the adapter merges consecutive same-speaker
// segments locally before returning the canonical transcript.
type DeepgramClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewDeepgramClient creates a Deepgram adapter using the provided config.
func NewDeepgramClient(cfg *config.DeepgramConfig) *DeepgramClient {
	base := cfg.BaseURL
	if base == "" {
		base = "https://api.deepgram.com"
	}
	return &DeepgramClient{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(base, "/"),
		client:  &http.Client{Timeout: 5 * time.Minute},
	}
}

// deepgramResponse is the subset of the prerecorded /v1/listen response the
// adapter consumes.
type deepgramResponse struct {
	Metadata struct {
		RequestID string `json:"request_id"`
	} `json:"metadata"`
	Results *struct {
		Channels []struct {
			DetectedLanguage   string  `json:"detected_language"`
			LanguageConfidence float64 `json:"language_confidence"`
			Alternatives       []struct {
				Transcript string         `json:"transcript"`
				Confidence float64        `json:"confidence"`
				Words      []deepgramWord `json:"words"`
			} `json:"alternatives"`
		} `json:"channels"`
		Utterances []struct {
			Start      float64        `json:"start"`
			End        float64        `json:"end"`
			Transcript string         `json:"transcript"`
			Speaker    int            `json:"speaker"`
			Words      []deepgramWord `json:"words"`
		} `json:"utterances"`
	} `json:"results"`
}

type deepgramWord struct {
	Word           string  `json:"word"`
	PunctuatedWord string  `json:"punctuated_word"`
	Start          float64 `json:"start"`
	End            float64 `json:"end"`
	Confidence     float64 `json:"confidence"`
	Speaker        int     `json:"speaker"`
}

// Transcribe sends the raw audio to Deepgram and normalizes the segment-
// oriented response into merged speaker turns.
func (c *DeepgramClient) Transcribe(ctx context.Context, audio []byte, language string) (*entities.Transcript, error) {
	autoDetect := language == LanguageAuto

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.requestURL(language), bytes.NewReader(audio))
	if err != nil {
		return nil, &ProviderError{Provider: providerDeepgram, Message: "build request", Err: err}
	}
	req.Header.Set("Authorization", "Token "+c.apiKey)
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &ProviderError{Provider: providerDeepgram, Message: "transcription request failed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &ProviderError{
			Provider: providerDeepgram,
			Message:  fmt.Sprintf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))),
		}
	}

	var dr deepgramResponse
	if err := json.NewDecoder(resp.Body).Decode(&dr); err != nil {
		return nil, &ProviderError{Provider: providerDeepgram, Message: "decode response", Err: err}
	}

	return normalizeDeepgram(&dr, autoDetect)
}

// requestURL builds the /v1/listen URL with the model, redaction, and
// language parameters for this request.
func (c *DeepgramClient) requestURL(language string) string {
	q := url.Values{}
	q.Set("model", deepgramModelFor(language))
	q.Set("punctuate", "true")
	q.Set("smart_format", "true")
	q.Set("diarize", "true")
	q.Set("utterances", "true")
	for _, cat := range deepgramRedactionCategories {
		q.Add("redact", cat)
	}
	if language == LanguageAuto {
		q.Set("detect_language", "true")
	} else {
		q.Set("language", language)
	}
	return c.baseURL + deepgramListenPath + "?" + q.Encode()
}

// deepgramModelFor picks the higher-accuracy model only when the hint names a
// language it supports; auto-detection and everything else fall back to the
// broad-coverage model.
func deepgramModelFor(language string) string {
	if language == LanguageAuto {
		return deepgramFallbackModel
	}
	if _, ok := deepgramAccurateLanguages[language]; ok {
		return deepgramAccurateModel
	}
	return deepgramFallbackModel
}

// normalizeDeepgram validates the response shape, classifies empty results,
// and converts segments into merged canonical utterances.
func normalizeDeepgram(dr *deepgramResponse, autoDetect bool) (*entities.Transcript, error) {
	if dr.Results == nil || len(dr.Results.Channels) == 0 {
		return nil, &ProviderError{Provider: providerDeepgram, Message: "response missing expected field results.channels"}
	}
	channel := dr.Results.Channels[0]
	if len(channel.Alternatives) == 0 {
		return nil, &ProviderError{Provider: providerDeepgram, Message: "response missing expected field channels.alternatives"}
	}
	alt := channel.Alternatives[0]

	if strings.TrimSpace(alt.Transcript) == "" {
		// Zero words means the audio holds no recognizable speech at all;
		// that outranks a language-detection miss.
		if len(alt.Words) == 0 {
			return nil, &NoSpeechDetectedError{}
		}
		if autoDetect {
			return nil, &LanguageDetectionError{
				DetectedLanguage: channel.DetectedLanguage,
				Confidence:       channel.LanguageConfidence * 100,
			}
		}
	}

	out := &entities.Transcript{
		ID:     dr.Metadata.RequestID,
		Status: entities.TranscriptStatusCompleted,
		Text:   alt.Transcript,
	}

	if len(dr.Results.Utterances) > 0 {
		segments := make([]entities.Utterance, 0, len(dr.Results.Utterances))
		for _, seg := range dr.Results.Utterances {
			speaker := entities.SpeakerLabel(seg.Speaker)
			utt := entities.Utterance{
				Speaker: speaker,
				Text:    seg.Transcript,
				Start:   secondsToMillis(seg.Start),
				End:     secondsToMillis(seg.End),
				Words:   make([]entities.Word, 0, len(seg.Words)),
			}
			for _, w := range seg.Words {
				utt.Words = append(utt.Words, entities.Word{
					Text:       wordText(w),
					Start:      secondsToMillis(w.Start),
					End:        secondsToMillis(w.End),
					Confidence: w.Confidence,
					Speaker:    speaker,
				})
			}
			segments = append(segments, utt)
		}
		out.Utterances = MergeUtterances(segments)
	}

	return out, nil
}

// secondsToMillis converts a floating-point seconds offset to integer
// milliseconds by flooring.
func secondsToMillis(seconds float64) int64 {
	return int64(math.Floor(seconds * 1000))
}

// wordText prefers the punctuation-restored form when the provider supplies
// one.
func wordText(w deepgramWord) string {
	if w.PunctuatedWord != "" {
		return w.PunctuatedWord
	}
	return w.Word
}
