package extract

import (
	"strconv"
	"strings"

	"stencil/internal/model"
)

// tokenSpans returns the [start, end) byte spans of every bracketed token in
// text. Detector stages treat these spans as opaque: their contents never
// participate in further matching.
func tokenSpans(text string) [][2]int {
	var spans [][2]int
	for i := 0; i < len(text); {
		open := strings.IndexByte(text[i:], '[')
		if open < 0 {
			break
		}
		open += i
		close := strings.IndexByte(text[open:], ']')
		if close < 0 {
			break
		}
		close += open
		spans = append(spans, [2]int{open, close + 1})
		i = close + 1
	}
	return spans
}

// overlapsToken reports whether [lo, hi) intersects any token span
func overlapsToken(spans [][2]int, lo, hi int) bool {
	for _, s := range spans {
		if lo < s[1] && hi > s[0] {
			return true
		}
	}
	return false
}

// countPrefix counts variables whose name is prefix or prefix_N
func countPrefix(prefix string, sets ...[]model.Variable) int {
	n := 0
	for _, vars := range sets {
		for _, v := range vars {
			if v.Name == prefix || strings.HasPrefix(v.Name, prefix+"_") {
				n++
			}
		}
	}
	return n
}

// nameForPrefix assigns the next name for a prefix: the bare prefix when it is
// unused, otherwise PREFIX_N with N = existing count + 1. When a second value
// arrives for a prefix whose sole holder is the bare name, that holder is
// renamed PREFIX_1 (and its tokens rewritten) so multi-valued prefixes read
// PREFIX_1, PREFIX_2, ...
func nameForPrefix(prefix string, text string, existing []model.Variable, added []model.Variable) (name string, updatedText string) {
	count := countPrefix(prefix, existing, added)
	if count == 0 {
		return prefix, text
	}
	if count == 1 {
		for i := range added {
			if added[i].Name == prefix {
				added[i].Name = prefix + "_1"
				text = strings.ReplaceAll(text, "["+prefix+"]", "["+prefix+"_1]")
			}
		}
	}
	return prefix + "_" + strconv.Itoa(count+1), text
}
