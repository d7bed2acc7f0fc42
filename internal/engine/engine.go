package engine

import "time"

// Severity is the ordinal severity of a single issue, critical highest.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// normalize maps unrecognized severities to medium so that a misbehaving
// evaluator degrades the score instead of breaking the aggregation.
func (s Severity) normalize() Severity {
	switch s {
	case SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow:
		return s
	default:
		return SeverityMedium
	}
}

// severityRank orders severities for top-issue sorting, critical highest.
func severityRank(s Severity) int {
	switch s {
	case SeverityCritical:
		return 4
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}

// priorityRank orders fix suggestions, critical first.
func priorityRank(s Severity) int {
	switch s {
	case SeverityCritical:
		return 1
	case SeverityHigh:
		return 2
	case SeverityMedium:
		return 3
	case SeverityLow:
		return 4
	default:
		return 3
	}
}

// Category identifies which evaluator produced a result.
type Category string

const (
	CategoryDeterministic Category = "deterministic"
	CategoryCompliance    Category = "compliance"
	CategoryTone          Category = "tone"
	CategoryAccessibility Category = "accessibility"
)

// Rule is the closed set of check identifiers. Weight and fix-template
// lookups key on these, so adding a rule means adding its constant here plus
// entries in the default tables.
type Rule string

// Deterministic test names.
const (
	RuleAltText         Rule = "alt_text"
	RuleLinks           Rule = "links"
	RuleSubjectLine     Rule = "subject_line"
	RulePreheader       Rule = "preheader"
	RuleTemplateMeta    Rule = "template_meta"
	RuleWidth           Rule = "width"
	RuleBackgroundColor Rule = "background_color"
	RuleImageDimensions Rule = "image_dimensions"
	RuleLongCopy        Rule = "long_copy"
)

// Compliance rules.
const (
	RuleFontCompliance     Rule = "font_compliance"
	RuleCTAColorCompliance Rule = "cta_color_compliance"
	RuleSpacingCompliance  Rule = "spacing_compliance"
	RuleLogoPlacement      Rule = "logo_placement"
	RuleHeaderConsistency  Rule = "header_consistency"
	RuleFooterConsistency  Rule = "footer_consistency"
)

// Tone rules.
const (
	RuleSpamIndicators   Rule = "spam_indicators"
	RuleComplexSentences Rule = "complex_sentences"
	RuleClarity          Rule = "clarity"
	RuleGrammar          Rule = "grammar"
)

// Accessibility rules.
const (
	RuleAltTextQuality  Rule = "alt_text_quality"
	RuleSemanticHTML    Rule = "semantic_html"
	RuleLinkTextClarity Rule = "link_text_clarity"
	RuleColorContrast   Rule = "color_contrast"
)

// Metadata carries the recognized email metadata keys. All fields are
// optional; absent keys are treated as empty strings.
type Metadata struct {
	Subject      string `json:"subject"`
	Preheader    string `json:"preheader"`
	TemplateName string `json:"template_name"`
	Locale       string `json:"locale"`
}

// Issue is one flagged problem emitted by a heuristic evaluator. Fields holds
// optional rule-specific values consumed by the fix generator's template
// substitution; absent keys substitute to safe defaults.
type Issue struct {
	Rule        Rule              `json:"rule"`
	Description string            `json:"description"`
	Severity    Severity          `json:"severity"`
	Fields      map[string]string `json:"fields,omitempty"`
}

// CheckStatus is the pass/fail outcome of a deterministic check.
type CheckStatus string

const (
	CheckPass CheckStatus = "pass"
	CheckFail CheckStatus = "fail"
)

// DeterministicResult carries no severity: deterministic failures are treated
// as uniformly high severity downstream.
type DeterministicResult struct {
	TestName Rule              `json:"test_name"`
	Status   CheckStatus       `json:"status"`
	Details  string            `json:"details"`
	Fields   map[string]string `json:"fields,omitempty"`
}

// Analysis is the common output shape of the three heuristic evaluators.
type Analysis struct {
	Agent   string  `json:"agent"`
	ID      string  `json:"email_id"`
	Issues  []Issue `json:"issues"`
	Summary string  `json:"summary"`
}

// Results joins the four upstream evaluator outputs for the aggregator, the
// status decision and the fix generator.
type Results struct {
	Deterministic []DeterministicResult
	Compliance    Analysis
	Tone          Analysis
	Accessibility Analysis
}

// RiskLevel is the coarse three-bucket classification of the risk score.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// CategoryScore is the per-category contribution to the risk score.
type CategoryScore struct {
	Score    float64 `json:"score"`
	Max      float64 `json:"max"`
	RawScore float64 `json:"raw_score"`
	RawMax   float64 `json:"raw_max"`
}

type RiskResult struct {
	Score       float64                    `json:"score"`
	Level       RiskLevel                  `json:"risk_level"`
	IssueCounts map[Severity]int           `json:"issue_counts"`
	Breakdown   map[Category]CategoryScore `json:"breakdown"`
	Reason      string                     `json:"reason"`
}

// OverallStatus is the final verdict for an evaluation.
type OverallStatus string

const (
	StatusPass        OverallStatus = "pass"
	StatusNeedsReview OverallStatus = "needs_review"
	StatusFail        OverallStatus = "fail"
)

type FixSuggestion struct {
	Type        Category `json:"type"`
	Issue       Rule     `json:"issue"`
	Description string   `json:"description"`
	Suggestion  string   `json:"suggestion"`
	Priority    Severity `json:"priority"`
}

type TopIssue struct {
	Type     Category `json:"type"`
	TestName Rule     `json:"test_name"`
	Details  string   `json:"details"`
	Severity Severity `json:"severity"`
}

// Report is the consolidated output of one evaluation. It is a value object:
// built once, never mutated, serializable to a cycle-free tree of primitives.
type Report struct {
	EmailID        string                     `json:"email_id"`
	OverallStatus  OverallStatus              `json:"overall_status"`
	RiskScore      float64                    `json:"risk_score"`
	RiskLevel      RiskLevel                  `json:"risk_level"`
	Compliance     Analysis                   `json:"compliance_analysis"`
	Tone           Analysis                   `json:"tone_analysis"`
	Accessibility  Analysis                   `json:"accessibility_analysis"`
	Deterministic  []DeterministicResult      `json:"deterministic_results"`
	FixSuggestions []FixSuggestion            `json:"fix_suggestions"`
	TopIssues      []TopIssue                 `json:"top_issues"`
	ScoreBreakdown map[Category]CategoryScore `json:"score_breakdown"`
	GeneratedAt    time.Time                  `json:"generated_at"`
}
