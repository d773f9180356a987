package pipeline

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var collapseWS = regexp.MustCompile(`[ \t]+`)

// LooksLikeHTML reports whether raw input should be stripped to visible text
// before extraction. Pasted posting pages often arrive as full documents.
func LooksLikeHTML(contentType, body string) bool {
	if strings.Contains(contentType, "text/html") {
		return true
	}
	head := strings.ToLower(body)
	if len(head) > 512 {
		head = head[:512]
	}
	return strings.Contains(head, "<html") || strings.Contains(head, "<!doctype html")
}

// VisibleText extracts the rendered text of an HTML document, skipping
// scripts, styles, and other invisible elements. Block elements become line
// breaks so repeated-phrase detection does not glue unrelated lines together.
func VisibleText(htmlContent string) (string, error) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe", "head":
				return
			case "p", "div", "br", "li", "tr", "h1", "h2", "h3", "h4", "h5", "h6":
				buf.WriteString("\n")
			}
		}
		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				buf.WriteString(text)
				buf.WriteString(" ")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	lines := strings.Split(buf.String(), "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(collapseWS.ReplaceAllString(line, " "))
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n"), nil
}
