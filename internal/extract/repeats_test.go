package extract

import (
	"strings"
	"testing"

	"stencil/internal/model"
)

func defaultRepeatDetector() *RepeatDetector {
	return NewRepeatDetector(model.ExtractionConfig{})
}

func TestRepeatDetector_Basic(t *testing.T) {
	text := "Join our team today. We value growth. Join our team today."

	updated, added := defaultRepeatDetector().Detect(text, nil)

	if len(added) != 1 {
		t.Fatalf("expected 1 variable, got %d: %+v", len(added), added)
	}
	v := added[0]
	if v.Name != "REPEATED_PHRASE" {
		t.Errorf("expected REPEATED_PHRASE, got %s", v.Name)
	}
	if v.Value != "Join our team today" {
		t.Errorf("expected phrase 'Join our team today', got %q", v.Value)
	}
	if v.Occurrences != 2 {
		t.Errorf("expected 2 occurrences, got %d", v.Occurrences)
	}
	if updated != "[REPEATED_PHRASE]. We value growth. [REPEATED_PHRASE]." {
		t.Errorf("unexpected template text: %q", updated)
	}
}

func TestRepeatDetector_TooShort(t *testing.T) {
	// 12 characters, repeated but below the length threshold
	text := "We grow fast. We grow fast."

	updated, added := defaultRepeatDetector().Detect(text, nil)

	if len(added) != 0 {
		t.Errorf("short phrase detected: %+v", added)
	}
	if updated != text {
		t.Errorf("text changed: %q", updated)
	}
}

func TestRepeatDetector_SingleOccurrence(t *testing.T) {
	text := "This sentence appears exactly once in the document and nowhere else."

	_, added := defaultRepeatDetector().Detect(text, nil)

	if len(added) != 0 {
		t.Errorf("unrepeated phrase detected: %+v", added)
	}
}

func TestRepeatDetector_TwoPhrases(t *testing.T) {
	text := "Apply before the deadline passes. Benefits include dental coverage. " +
		"Apply before the deadline passes. Benefits include dental coverage."

	updated, added := defaultRepeatDetector().Detect(text, nil)

	if len(added) != 2 {
		t.Fatalf("expected 2 variables, got %d: %+v", len(added), added)
	}
	if added[0].Name != "REPEATED_PHRASE_1" || added[1].Name != "REPEATED_PHRASE_2" {
		t.Errorf("expected numbered names, got %s/%s", added[0].Name, added[1].Name)
	}
	if added[0].Value != "Apply before the deadline passes" {
		t.Errorf("first phrase: got %q", added[0].Value)
	}
	if added[1].Value != "Benefits include dental coverage" {
		t.Errorf("second phrase: got %q", added[1].Value)
	}
	if strings.Contains(updated, "[REPEATED_PHRASE]") {
		t.Errorf("bare token left behind after rename: %q", updated)
	}
}

func TestRepeatDetector_NoSpanOverPunctuation(t *testing.T) {
	// "growth. We" repeats but crosses a sentence boundary; the detector must
	// not stitch words across punctuation
	text := "We believe in growth. We believe in growth."

	_, added := defaultRepeatDetector().Detect(text, nil)

	for _, v := range added {
		if strings.Contains(v.Value, ".") {
			t.Errorf("phrase spans punctuation: %q", v.Value)
		}
	}
	if len(added) != 1 || added[0].Value != "We believe in growth" {
		t.Fatalf("expected 'We believe in growth', got %+v", added)
	}
}

func TestRepeatDetector_TokensSkipped(t *testing.T) {
	// Words inside existing tokens never seed a phrase
	text := "[COMPANY_NAME] is hiring now. [COMPANY_NAME] is hiring now."

	_, added := defaultRepeatDetector().Detect(text, nil)

	for _, v := range added {
		if strings.Contains(v.Value, "COMPANY_NAME") {
			t.Errorf("phrase reaches into a token: %q", v.Value)
		}
	}
}

func TestRepeatDetector_ConfigThresholds(t *testing.T) {
	d := NewRepeatDetector(model.ExtractionConfig{
		MinPhraseWords: 3,
		MaxPhraseWords: 4,
		MinPhraseChars: 15,
		MinRepeatCount: 3,
	})
	text := "Join our team today. Join our team today."

	_, added := d.Detect(text, nil)

	if len(added) != 0 {
		t.Errorf("phrase below repeat threshold detected: %+v", added)
	}
}
