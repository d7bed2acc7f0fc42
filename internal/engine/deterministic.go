package engine

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

const longCopyLimit = 200

// RunDeterministicChecks runs the fixed battery of structural and metadata
// checks. Every check reports at least one result (a pass placeholder when
// its subject is absent), so the returned slice is never empty.
func RunDeterministicChecks(content string, meta Metadata) []DeterministicResult {
	doc := parseDocument(content)

	var results []DeterministicResult
	results = append(results, checkAltText(doc)...)
	results = append(results, checkLinks(doc)...)
	results = append(results, checkSubjectLine(meta)...)
	results = append(results, checkPreheader(meta)...)
	results = append(results, checkTemplateMeta(meta)...)
	results = append(results, checkWidth(content)...)
	results = append(results, checkBackgroundColor(content)...)
	results = append(results, checkImageDimensions(doc)...)
	results = append(results, checkLongCopy(doc)...)
	return results
}

// CountFailures returns the number of failing deterministic results.
func CountFailures(results []DeterministicResult) int {
	n := 0
	for _, r := range results {
		if r.Status == CheckFail {
			n++
		}
	}
	return n
}

func checkAltText(doc *html.Node) []DeterministicResult {
	var results []DeterministicResult
	walk(doc, func(n *html.Node) {
		if n.Type != html.ElementNode || n.Data != "img" {
			return
		}
		if strings.TrimSpace(getAttr(n, "alt")) == "" {
			results = append(results, DeterministicResult{
				TestName: RuleAltText,
				Status:   CheckFail,
				Details:  fmt.Sprintf("Image missing ALT text: %s", describeElement(n)),
				Fields:   map[string]string{"element": describeElement(n)},
			})
		} else {
			results = append(results, DeterministicResult{
				TestName: RuleAltText,
				Status:   CheckPass,
				Details:  "ALT text present",
			})
		}
	})
	if len(results) == 0 {
		results = append(results, DeterministicResult{
			TestName: RuleAltText,
			Status:   CheckPass,
			Details:  "No images found, ALT text check passed",
		})
	}
	return results
}

var validLinkPrefixes = []string{"http://", "https://", "mailto:", "#"}

func checkLinks(doc *html.Node) []DeterministicResult {
	var results []DeterministicResult
	walk(doc, func(n *html.Node) {
		if n.Type != html.ElementNode || n.Data != "a" || !hasAttr(n, "href") {
			return
		}
		href := getAttr(n, "href")
		valid := false
		for _, prefix := range validLinkPrefixes {
			if strings.HasPrefix(href, prefix) {
				valid = true
				break
			}
		}
		if valid {
			results = append(results, DeterministicResult{
				TestName: RuleLinks,
				Status:   CheckPass,
				Details:  fmt.Sprintf("Valid link: %s", href),
			})
		} else {
			results = append(results, DeterministicResult{
				TestName: RuleLinks,
				Status:   CheckFail,
				Details:  fmt.Sprintf("Malformed link: %s", href),
				Fields:   map[string]string{"url": href},
			})
		}
	})
	if len(results) == 0 {
		results = append(results, DeterministicResult{
			TestName: RuleLinks,
			Status:   CheckPass,
			Details:  "No links found, link check passed",
		})
	}
	return results
}

func checkSubjectLine(meta Metadata) []DeterministicResult {
	if strings.TrimSpace(meta.Subject) == "" {
		return []DeterministicResult{{
			TestName: RuleSubjectLine,
			Status:   CheckFail,
			Details:  "Missing subject line",
		}}
	}
	return []DeterministicResult{{
		TestName: RuleSubjectLine,
		Status:   CheckPass,
		Details:  fmt.Sprintf("Subject line present: %s", meta.Subject),
	}}
}

func checkPreheader(meta Metadata) []DeterministicResult {
	if strings.TrimSpace(meta.Preheader) == "" {
		return []DeterministicResult{{
			TestName: RulePreheader,
			Status:   CheckFail,
			Details:  "Missing preheader",
		}}
	}
	return []DeterministicResult{{
		TestName: RulePreheader,
		Status:   CheckPass,
		Details:  "Preheader present",
	}}
}

// checkTemplateMeta reports template name and locale independently, so a
// template missing both fails twice.
func checkTemplateMeta(meta Metadata) []DeterministicResult {
	var results []DeterministicResult
	if strings.TrimSpace(meta.TemplateName) == "" {
		results = append(results, DeterministicResult{
			TestName: RuleTemplateMeta,
			Status:   CheckFail,
			Details:  "Missing template name",
			Fields:   map[string]string{"missing_field": "template_name"},
		})
	} else {
		results = append(results, DeterministicResult{
			TestName: RuleTemplateMeta,
			Status:   CheckPass,
			Details:  fmt.Sprintf("Template name present: %s", meta.TemplateName),
		})
	}
	if strings.TrimSpace(meta.Locale) == "" {
		results = append(results, DeterministicResult{
			TestName: RuleTemplateMeta,
			Status:   CheckFail,
			Details:  "Missing locale",
			Fields:   map[string]string{"missing_field": "locale"},
		})
	} else {
		results = append(results, DeterministicResult{
			TestName: RuleTemplateMeta,
			Status:   CheckPass,
			Details:  fmt.Sprintf("Locale present: %s", meta.Locale),
		})
	}
	return results
}

// checkWidth is a coarse structural proxy over the raw markup, not a
// per-element check.
func checkWidth(content string) []DeterministicResult {
	if !strings.Contains(content, "width=") && !strings.Contains(content, "style=") {
		return []DeterministicResult{{
			TestName: RuleWidth,
			Status:   CheckFail,
			Details:  "No width attributes found in email",
		}}
	}
	return []DeterministicResult{{
		TestName: RuleWidth,
		Status:   CheckPass,
		Details:  "Width attributes found",
	}}
}

func checkBackgroundColor(content string) []DeterministicResult {
	if !strings.Contains(content, "background-color:") && !strings.Contains(content, "bgcolor=") {
		return []DeterministicResult{{
			TestName: RuleBackgroundColor,
			Status:   CheckFail,
			Details:  "No background color declarations found",
		}}
	}
	return []DeterministicResult{{
		TestName: RuleBackgroundColor,
		Status:   CheckPass,
		Details:  "Background color declarations found",
	}}
}

func checkImageDimensions(doc *html.Node) []DeterministicResult {
	var results []DeterministicResult
	walk(doc, func(n *html.Node) {
		if n.Type != html.ElementNode || n.Data != "img" {
			return
		}
		if !hasAttr(n, "width") && !hasAttr(n, "height") {
			results = append(results, DeterministicResult{
				TestName: RuleImageDimensions,
				Status:   CheckFail,
				Details:  fmt.Sprintf("Image missing dimensions: %s", describeElement(n)),
				Fields:   map[string]string{"element": describeElement(n)},
			})
		} else {
			results = append(results, DeterministicResult{
				TestName: RuleImageDimensions,
				Status:   CheckPass,
				Details:  "Image dimensions present",
			})
		}
	})
	if len(results) == 0 {
		results = append(results, DeterministicResult{
			TestName: RuleImageDimensions,
			Status:   CheckPass,
			Details:  "No images found, dimension check passed",
		})
	}
	return results
}

func checkLongCopy(doc *html.Node) []DeterministicResult {
	var results []DeterministicResult
	walk(doc, func(n *html.Node) {
		if n.Type != html.TextNode {
			return
		}
		text := strings.TrimSpace(n.Data)
		if len(text) > longCopyLimit {
			results = append(results, DeterministicResult{
				TestName: RuleLongCopy,
				Status:   CheckFail,
				Details:  fmt.Sprintf("Long text line found (%d chars)", len(text)),
			})
		}
	})
	if len(results) == 0 {
		results = append(results, DeterministicResult{
			TestName: RuleLongCopy,
			Status:   CheckPass,
			Details:  "No excessively long text lines found",
		})
	}
	return results
}
