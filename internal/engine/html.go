package engine

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// parseDocument parses markup leniently. x/net/html recovers from almost any
// malformed input; a nil return means every structural check degrades to "no
// matches found" rather than failing.
func parseDocument(content string) *html.Node {
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return nil
	}
	return doc
}

func walk(n *html.Node, fn func(*html.Node)) {
	if n == nil {
		return
	}
	fn(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

func getAttr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func hasAttr(n *html.Node, name string) bool {
	for _, a := range n.Attr {
		if a.Key == name {
			return true
		}
	}
	return false
}

// nodeText returns the concatenated text content of a node's subtree.
func nodeText(n *html.Node) string {
	var b strings.Builder
	walk(n, func(c *html.Node) {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	})
	return b.String()
}

// describeElement renders a short single-tag description like
// `<img src="x.png">` for use in issue details.
func describeElement(n *html.Node) string {
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(n.Data)
	for _, a := range n.Attr {
		b.WriteString(" ")
		b.WriteString(a.Key)
		b.WriteString(`="`)
		b.WriteString(a.Val)
		b.WriteString(`"`)
	}
	b.WriteString(">")
	return b.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

var (
	tagRe        = regexp.MustCompile(`<[^<]+?>`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// stripTags extracts visible text by removing markup and collapsing
// whitespace. Coarse on purpose: the tone heuristics operate on plain words,
// not on document structure.
func stripTags(content string) string {
	text := tagRe.ReplaceAllString(content, "")
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}
