package entities

// TranscriptStatus is the terminal state of a transcription request.
type TranscriptStatus string

const (
	TranscriptStatusCompleted TranscriptStatus = "completed"
	TranscriptStatusFailed    TranscriptStatus = "failed"
)

// Word represents a single recognized word with millisecond offsets and the
// speaker label it was attributed to. Words are immutable once produced by a
// backend adapter.
type Word struct {
	Text       string  `json:"text"`
	Start      int64   `json:"start"`
	End        int64   `json:"end"`
	Confidence float64 `json:"confidence"`
	Speaker    string  `json:"speaker"`
}

// Utterance is one continuous speaker turn. Start equals the first word's
// start, End equals the last word's end, and Text is the joined word texts.
type Utterance struct {
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
	Start   int64  `json:"start"`
	End     int64  `json:"end"`
	Words   []Word `json:"words"`
}

// Transcript is the canonical, backend-agnostic transcription result. When
// Utterances is nil the audio was not diarized and Text is the sole
// authoritative content. A Transcript lives for one request/response cycle and
// is never mutated after construction.
type Transcript struct {
	ID         string           `json:"id"`
	Status     TranscriptStatus `json:"status"`
	Text       string           `json:"text"`
	Utterances []Utterance      `json:"utterances,omitempty"`
}

// SpeakerLabel maps a zero-based backend speaker index to a letter label
// ("A", "B", ...). The mapping is stable within a single transcript.
func SpeakerLabel(index int) string {
	return string(rune('A' + index))
}
