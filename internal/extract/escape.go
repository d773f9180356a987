package extract

import "regexp"

// Escape turns a literal string into a pattern that matches it exactly.
// Every matched value must pass through here before it is embedded in a
// pattern: values routinely contain pattern metacharacters (a salary like
// "$80-$100/hr"), and an unescaped value would silently match the wrong text.
func Escape(literal string) string {
	return regexp.QuoteMeta(literal)
}

// ReplaceValue replaces every occurrence of value in text with the token and
// reports how many replacements were made. The value is escaped before the
// global pattern is built, so the count and the substitution always agree.
func ReplaceValue(text, value, token string) (string, int) {
	if value == "" {
		return text, 0
	}
	re, err := regexp.Compile(Escape(value))
	if err != nil {
		return text, 0
	}
	n := len(re.FindAllStringIndex(text, -1))
	if n == 0 {
		return text, 0
	}
	return re.ReplaceAllLiteralString(text, token), n
}
