package extract

import (
	"fmt"
	"strings"
	"unicode"

	"stencil/internal/model"
)

// RepeatPrefix names variables produced by the repeated-phrase detector
const RepeatPrefix = "REPEATED_PHRASE"

// RepeatDetector finds multi-word sequences that occur more than once and are
// long enough to be meaningful, independent of category. It catches the
// boilerplate the other stages miss: disclaimers, taglines, sign-offs.
type RepeatDetector struct {
	minWords int
	maxWords int
	minChars int
	minCount int
}

// NewRepeatDetector creates a repeat detector from the extraction config
func NewRepeatDetector(cfg model.ExtractionConfig) *RepeatDetector {
	d := &RepeatDetector{
		minWords: cfg.MinPhraseWords,
		maxWords: cfg.MaxPhraseWords,
		minChars: cfg.MinPhraseChars,
		minCount: cfg.MinRepeatCount,
	}
	if d.minWords < 3 {
		d.minWords = 3
	}
	if d.maxWords < d.minWords {
		d.maxWords = d.minWords + 5
	}
	if d.minChars <= 0 {
		d.minChars = 15
	}
	if d.minCount < 2 {
		d.minCount = 2
	}
	return d
}

// Detect scans text with a sliding window of word sequences, longest first at
// each position, and tokenizes every sequence that clears the length and
// repeat-count thresholds. After each replacement the scan restarts on the
// updated text, so phrases are claimed in the order first discovered and
// already-tokenized spans stay opaque.
func (d *RepeatDetector) Detect(text string, existing []model.Variable) (string, []model.Variable) {
	var added []model.Variable

	for {
		candidate, ok := d.nextRepeat(text)
		if !ok {
			break
		}

		var name string
		name, text = nameForPrefix(RepeatPrefix, text, existing, added)

		updated, n := ReplaceValue(text, candidate, "["+name+"]")
		if n < d.minCount {
			// Should not happen: the candidate was counted on this text
			break
		}
		text = updated
		added = append(added, model.Variable{
			Name:        name,
			Value:       candidate,
			Occurrences: n,
			Label:       "Repeated Phrase",
			Description: fmt.Sprintf("Occurs %d times in the source text", n),
			Origin:      model.OriginDetected,
		})
	}

	return text, added
}

// nextRepeat returns the first qualifying repeated sequence in text
func (d *RepeatDetector) nextRepeat(text string) (string, bool) {
	words := wordSpans(text)

	for i := range words {
		for n := d.maxWords; n >= d.minWords; n-- {
			if i+n > len(words) {
				continue
			}
			start := words[i][0]
			end := words[i+n-1][1]
			if !adjacent(text, words[i:i+n]) {
				continue
			}
			candidate := text[start:end]
			if len(candidate) <= d.minChars {
				continue
			}
			if strings.Count(text, candidate) >= d.minCount {
				return candidate, true
			}
		}
	}
	return "", false
}

// adjacent reports whether consecutive words are separated by spaces only, so
// a candidate never spans punctuation, line breaks, or a token boundary
func adjacent(text string, words [][2]int) bool {
	for i := 1; i < len(words); i++ {
		gap := text[words[i-1][1]:words[i][0]]
		for _, r := range gap {
			if r != ' ' {
				return false
			}
		}
	}
	return true
}

// wordSpans returns the byte spans of plain words, skipping anything inside a
// bracketed token
func wordSpans(text string) [][2]int {
	tokens := tokenSpans(text)
	var spans [][2]int
	start := -1
	for i, r := range text {
		isWord := unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\''
		if isWord && start < 0 {
			start = i
		}
		if !isWord && start >= 0 {
			if !overlapsToken(tokens, start, i) {
				spans = append(spans, [2]int{start, i})
			}
			start = -1
		}
	}
	if start >= 0 && !overlapsToken(tokens, start, len(text)) {
		spans = append(spans, [2]int{start, len(text)})
	}
	return spans
}
