package render

import "regexp"

var tokenRe = regexp.MustCompile(`\[[A-Z][A-Z0-9_]*\]`)

// Highlight wraps every [NAME] token in the given display markers. It is a
// pure, one-way presentation transform: the output is for display only and is
// never read back by the engine.
func Highlight(templateText, open, close string) string {
	if open == "" && close == "" {
		return templateText
	}
	return tokenRe.ReplaceAllStringFunc(templateText, func(tok string) string {
		return open + tok + close
	})
}
