package engine

import (
	"fmt"
	"regexp"
	"sort"
)

var placeholderRe = regexp.MustCompile(`\{([a-z_]+)\}`)

// placeholderDefaults are the safe literals substituted when a template
// references a field the source issue does not carry. Substitution must never
// fail, even when an upstream evaluator omits every optional field.
var placeholderDefaults = map[string]string{
	"element":        "element",
	"url":            "link",
	"missing_field":  "field",
	"expected_font":  "Arial",
	"expected_color": "#0085FF",
	"spacing_rule":   "padding",
	"expected_logo":  "logo",
	"spam_text":      "text",
	"grammar_issue":  "issue",
	"current_text":   "text",
	"description":    "issue",
}

// FixGenerator turns issues into ranked remediation suggestions using
// templated text keyed by rule name.
type FixGenerator struct {
	templates map[Rule]string
}

func NewFixGenerator(cfg Config) *FixGenerator {
	return &FixGenerator{templates: cfg.withDefaults().FixTemplates}
}

// Generate emits one suggestion per failing deterministic result and per
// heuristic issue, then stable-sorts ascending by priority rank so ties keep
// the deterministic, compliance, tone, accessibility encounter order.
func (g *FixGenerator) Generate(results Results, risk RiskResult) []FixSuggestion {
	var fixes []FixSuggestion

	for _, test := range results.Deterministic {
		if test.Status != CheckFail {
			continue
		}
		template, ok := g.templates[test.TestName]
		if !ok {
			template = fmt.Sprintf("Fix %s issue", test.TestName)
		}
		fixes = append(fixes, FixSuggestion{
			Type:        CategoryDeterministic,
			Issue:       test.TestName,
			Description: test.Details,
			Suggestion:  substitute(template, test.Fields, test.Details),
			Priority:    SeverityHigh,
		})
	}

	fixes = append(fixes, g.issueFixes(CategoryCompliance, results.Compliance.Issues, "Fix compliance issue: {description}")...)
	fixes = append(fixes, g.issueFixes(CategoryTone, results.Tone.Issues, "Improve tone/clarity: {description}")...)
	fixes = append(fixes, g.issueFixes(CategoryAccessibility, results.Accessibility.Issues, "Improve accessibility: {description}")...)

	sort.SliceStable(fixes, func(i, j int) bool {
		return priorityRank(fixes[i].Priority) < priorityRank(fixes[j].Priority)
	})

	return fixes
}

func (g *FixGenerator) issueFixes(category Category, issues []Issue, fallback string) []FixSuggestion {
	fixes := make([]FixSuggestion, 0, len(issues))
	for _, issue := range issues {
		template, ok := g.templates[issue.Rule]
		if !ok {
			template = fallback
		}
		fixes = append(fixes, FixSuggestion{
			Type:        category,
			Issue:       issue.Rule,
			Description: issue.Description,
			Suggestion:  substitute(template, issue.Fields, issue.Description),
			Priority:    issue.Severity.normalize(),
		})
	}
	return fixes
}

// substitute replaces every {placeholder} from the issue's fields, from the
// issue description for {description}, or from the safe defaults. Unknown
// placeholders are left verbatim rather than erroring.
func substitute(template string, fields map[string]string, description string) string {
	return placeholderRe.ReplaceAllStringFunc(template, func(match string) string {
		key := match[1 : len(match)-1]
		if v, ok := fields[key]; ok {
			return v
		}
		if key == "description" && description != "" {
			return description
		}
		if v, ok := placeholderDefaults[key]; ok {
			return v
		}
		return match
	})
}
