package ai

import (
	"unicode"
	"unicode/utf8"

	"github.com/MeritX-US/meritx-intake/internal/domain/entities"
)

// MergeUtterances coalesces adjacent raw segments that share a speaker label
// into single speaker turns. Deepgram emits one record per detected speech
// segment, which can split one continuous turn into several fragments; this
// walks the segment list once, left to right, and never reorders it.
func MergeUtterances(segments []entities.Utterance) []entities.Utterance {
	if len(segments) == 0 {
		return nil
	}

	merged := make([]entities.Utterance, 0, len(segments))
	cur := segments[0]
	cur.Words = append([]entities.Word(nil), segments[0].Words...)

	for _, seg := range segments[1:] {
		if seg.Speaker == cur.Speaker {
			cur.Text = joinTurnText(cur.Text, seg.Text)
			cur.End = seg.End
			cur.Words = append(cur.Words, seg.Words...)
			continue
		}
		merged = append(merged, cur)
		cur = seg
		cur.Words = append([]entities.Word(nil), seg.Words...)
	}

	return append(merged, cur)
}

// joinTurnText concatenates two text fragments, inserting a single space only
// when neither side already carries boundary whitespace. Scripts that are not
// space-delimited therefore never gain spurious spaces.
func joinTurnText(left, right string) string {
	if left == "" || right == "" {
		return left + right
	}
	last, _ := utf8.DecodeLastRuneInString(left)
	first, _ := utf8.DecodeRuneInString(right)
	if unicode.IsSpace(last) || unicode.IsSpace(first) {
		return left + right
	}
	return left + " " + right
}
