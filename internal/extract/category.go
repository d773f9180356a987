package extract

import (
	"strings"

	"stencil/internal/model"
)

// Detector runs the ordered category rules against the working text
type Detector struct {
	rules  []Rule
	window int
}

// NewDetector creates a category detector with the given rules and window
// width (characters of context on each side of an anchor)
func NewDetector(rules []Rule, window int) *Detector {
	if window <= 0 {
		window = 30
	}
	return &Detector{rules: rules, window: window}
}

// Detect runs every rule once, in list order, against text. Each anchor hit
// opens a bounded window; a value-shaped match inside that window is escaped,
// replaced globally by its token, and recorded as a new variable. No match is
// a normal outcome: the rule simply contributes nothing.
func (d *Detector) Detect(text string, existing []model.Variable) (string, []model.Variable) {
	var added []model.Variable

	for _, rule := range d.rules {
		seen := make(map[string]bool)
		for _, v := range existing {
			if v.Name == rule.Prefix || strings.HasPrefix(v.Name, rule.Prefix+"_") {
				seen[v.Value] = true
			}
		}

		// Anchors are re-located after every replacement since token
		// substitution shifts byte offsets.
		searchFrom := 0
		for searchFrom < len(text) {
			loc := rule.Anchor.FindStringIndex(text[searchFrom:])
			if loc == nil {
				break
			}
			aStart := searchFrom + loc[0]
			aEnd := searchFrom + loc[1]

			value, ok := d.findValue(text, rule, aStart, aEnd, seen)
			if !ok {
				searchFrom = aEnd
				continue
			}
			seen[value] = true

			var name string
			name, text = nameForPrefix(rule.Prefix, text, existing, added)

			updated, n := ReplaceValue(text, value, "["+name+"]")
			if n == 0 {
				searchFrom = aEnd
				continue
			}
			text = updated
			added = append(added, model.Variable{
				Name:        name,
				Value:       value,
				Occurrences: n,
				Label:       rule.Label,
				Description: rule.Description,
				Origin:      model.OriginDetected,
			})

			// The anchor itself was not replaced; continue past it so one
			// anchor claims at most one value.
			searchFrom = aEnd
		}
	}

	return text, added
}

// findValue searches the window around an anchor for the rule's value shape,
// skipping candidates that overlap the anchor itself, sit inside an existing
// token, or were already claimed for this prefix. Values usually follow
// their anchor ("salary: $90k"), so candidates after the anchor win over
// ones before it.
func (d *Detector) findValue(text string, rule Rule, aStart, aEnd int, seen map[string]bool) (string, bool) {
	lo := aStart - d.window
	if lo < 0 {
		lo = 0
	}
	hi := aEnd + d.window
	if hi > len(text) {
		hi = len(text)
	}
	window := text[lo:hi]
	spans := tokenSpans(text)

	var before string
	for _, m := range rule.Value.FindAllStringIndex(window, -1) {
		vStart := lo + m[0]
		vEnd := lo + m[1]
		if vStart < aEnd && vEnd > aStart {
			continue // the value shape matched the anchor keyword itself
		}
		if overlapsToken(spans, vStart, vEnd) {
			continue
		}
		value := text[vStart:vEnd]
		if seen[value] {
			continue
		}
		if vStart >= aEnd {
			return value, true
		}
		if before == "" {
			before = value
		}
	}
	return before, before != ""
}
