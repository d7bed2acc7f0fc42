package engine

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

const (
	maxAltTextLength  = 125
	maxLinkTextLength = 80
)

var genericAltText = map[string]bool{
	"image": true, "photo": true, "picture": true, "graphic": true,
}

var genericLinkText = map[string]bool{
	"click here": true, "read more": true, "link": true, "here": true,
}

var (
	textColorRe  = regexp.MustCompile(`color\s*:\s*#[0-9a-fA-F]{3,6}`)
	backgroundRe = regexp.MustCompile(`background(-color)?\s*:\s*#[0-9a-fA-F]{3,6}`)
)

// AccessibilityAnalyzer applies ALT-text quality, heading structure, link
// clarity and a simplified contrast heuristic. The contrast check is a proxy:
// it only notices when text color styling has no background counterpart, it
// never computes a real WCAG ratio.
type AccessibilityAnalyzer struct{}

func NewAccessibilityAnalyzer() *AccessibilityAnalyzer {
	return &AccessibilityAnalyzer{}
}

func (a *AccessibilityAnalyzer) Analyze(emailID, content string, meta Metadata) Analysis {
	doc := parseDocument(content)

	var issues []Issue
	issues = append(issues, a.checkAltTextQuality(doc)...)
	issues = append(issues, a.checkSemanticStructure(doc)...)
	issues = append(issues, a.checkLinkText(doc)...)
	issues = append(issues, a.checkColorContrast(content)...)

	return Analysis{
		Agent:   "accessibility",
		ID:      emailID,
		Issues:  issues,
		Summary: fmt.Sprintf("Found %d accessibility issues", len(issues)),
	}
}

func (a *AccessibilityAnalyzer) checkAltTextQuality(doc *html.Node) []Issue {
	var issues []Issue
	walk(doc, func(n *html.Node) {
		if n.Type != html.ElementNode || n.Data != "img" {
			return
		}
		alt := strings.TrimSpace(getAttr(n, "alt"))
		switch {
		case alt == "":
			issues = append(issues, Issue{
				Rule:        RuleAltTextQuality,
				Description: fmt.Sprintf("Image missing descriptive ALT text: %s...", truncate(describeElement(n), 50)),
				Severity:    SeverityHigh,
				Fields:      map[string]string{"element": describeElement(n)},
			})
		case genericAltText[strings.ToLower(alt)]:
			issues = append(issues, Issue{
				Rule:        RuleAltTextQuality,
				Description: fmt.Sprintf("Image has non-descriptive ALT text: '%s'", alt),
				Severity:    SeverityMedium,
				Fields:      map[string]string{"current_text": alt},
			})
		case len(alt) > maxAltTextLength:
			issues = append(issues, Issue{
				Rule:        RuleAltTextQuality,
				Description: fmt.Sprintf("ALT text is too long (%d chars): '%s...'", len(alt), truncate(alt, 50)),
				Severity:    SeverityLow,
				Fields:      map[string]string{"current_text": alt},
			})
		}
	})
	return issues
}

func (a *AccessibilityAnalyzer) checkSemanticStructure(doc *html.Node) []Issue {
	var headings, h1Count, listItems, listContainers int
	walk(doc, func(n *html.Node) {
		if n.Type != html.ElementNode {
			return
		}
		switch n.Data {
		case "h1":
			headings++
			h1Count++
		case "h2", "h3", "h4", "h5", "h6":
			headings++
		case "li":
			listItems++
		case "ul", "ol":
			listContainers++
		}
	})

	var issues []Issue
	if headings == 0 {
		issues = append(issues, Issue{
			Rule:        RuleSemanticHTML,
			Description: "No heading elements found",
			Severity:    SeverityMedium,
		})
	} else if h1Count == 0 {
		issues = append(issues, Issue{
			Rule:        RuleSemanticHTML,
			Description: "Missing main heading (h1)",
			Severity:    SeverityMedium,
		})
	} else if h1Count > 1 {
		issues = append(issues, Issue{
			Rule:        RuleSemanticHTML,
			Description: "Multiple h1 headings found",
			Severity:    SeverityLow,
		})
	}

	if listItems > 0 && listContainers == 0 {
		issues = append(issues, Issue{
			Rule:        RuleSemanticHTML,
			Description: "List items found without proper list container",
			Severity:    SeverityLow,
		})
	}

	return issues
}

func (a *AccessibilityAnalyzer) checkLinkText(doc *html.Node) []Issue {
	var issues []Issue
	walk(doc, func(n *html.Node) {
		if n.Type != html.ElementNode || n.Data != "a" || !hasAttr(n, "href") {
			return
		}
		text := strings.TrimSpace(nodeText(n))
		switch {
		case text == "":
			issues = append(issues, Issue{
				Rule:        RuleLinkTextClarity,
				Description: fmt.Sprintf("Link with no text content: %s...", truncate(describeElement(n), 50)),
				Severity:    SeverityHigh,
				Fields:      map[string]string{"element": describeElement(n)},
			})
		case genericLinkText[strings.ToLower(text)]:
			issues = append(issues, Issue{
				Rule:        RuleLinkTextClarity,
				Description: fmt.Sprintf("Non-descriptive link text: '%s'", text),
				Severity:    SeverityMedium,
				Fields:      map[string]string{"current_text": text},
			})
		case len(text) > maxLinkTextLength:
			issues = append(issues, Issue{
				Rule:        RuleLinkTextClarity,
				Description: fmt.Sprintf("Link text is too long (%d chars): '%s...'", len(text), truncate(text, 50)),
				Severity:    SeverityLow,
				Fields:      map[string]string{"current_text": text},
			})
		}
	})
	return issues
}

func (a *AccessibilityAnalyzer) checkColorContrast(content string) []Issue {
	if !textColorRe.MatchString(content) || backgroundRe.MatchString(content) {
		return nil
	}
	return []Issue{{
		Rule:        RuleColorContrast,
		Description: "Text color specified without background color - contrast cannot be verified",
		Severity:    SeverityLow,
	}}
}
