package engine

import (
	"fmt"
	"math"
)

// Scorer normalizes heterogeneous issue lists into a single 0-100 risk score.
//
// Per category: each item contributes (rule_weight/100) * severity_weight to
// the raw score, and (rule_weight/100) * worst_case_severity_weight to the raw
// maximum. The worst case is high for deterministic checks (which carry no
// severity of their own) and critical for the heuristic categories. The
// deterministic raw maximum accumulates over every check performed, passes
// included, so a template with many passing checks dilutes its failures.
// Each category is then normalized to its fixed contribution ceiling
// (deterministic 40, compliance 25, tone 15, accessibility 20).
type Scorer struct {
	cfg Config
}

func NewScorer(cfg Config) *Scorer {
	return &Scorer{cfg: cfg.withDefaults()}
}

func (s *Scorer) Calculate(results Results) RiskResult {
	counts := map[Severity]int{}
	breakdown := map[Category]CategoryScore{}

	detScore, detMax := s.scoreDeterministic(results.Deterministic, counts)
	breakdown[CategoryDeterministic] = s.normalized(CategoryDeterministic, detScore, detMax)

	for category, analysis := range map[Category]Analysis{
		CategoryCompliance:    results.Compliance,
		CategoryTone:          results.Tone,
		CategoryAccessibility: results.Accessibility,
	} {
		raw, rawMax := s.scoreIssues(category, analysis.Issues, counts)
		breakdown[category] = s.normalized(category, raw, rawMax)
	}

	total := 0.0
	for _, cs := range breakdown {
		total += cs.Score
	}
	score := math.Min(100, math.Max(0, total))

	level := s.riskLevel(score)

	return RiskResult{
		Score:       math.Round(score*100) / 100,
		Level:       level,
		IssueCounts: counts,
		Breakdown:   breakdown,
		Reason:      riskReason(level, counts),
	}
}

func (s *Scorer) scoreDeterministic(results []DeterministicResult, counts map[Severity]int) (raw, rawMax float64) {
	highWeight := s.cfg.severityWeight(SeverityHigh)
	for _, r := range results {
		w := s.cfg.ruleWeight(r.TestName, CategoryDeterministic) / 100
		rawMax += w * highWeight
		if r.Status == CheckFail {
			raw += w * highWeight
			counts[SeverityHigh]++
		}
	}
	return raw, rawMax
}

func (s *Scorer) scoreIssues(category Category, issues []Issue, counts map[Severity]int) (raw, rawMax float64) {
	criticalWeight := s.cfg.severityWeight(SeverityCritical)
	for _, issue := range issues {
		w := s.cfg.ruleWeight(issue.Rule, category) / 100
		rawMax += w * criticalWeight
		severity := issue.Severity.normalize()
		raw += w * s.cfg.severityWeight(severity)
		counts[severity]++
	}
	return raw, rawMax
}

func (s *Scorer) normalized(category Category, raw, rawMax float64) CategoryScore {
	ceiling := s.cfg.ceiling(category)
	weighted := 0.0
	if rawMax > 0 {
		weighted = raw / math.Max(rawMax, 1) * ceiling
	}
	return CategoryScore{
		Score:    weighted,
		Max:      ceiling,
		RawScore: raw,
		RawMax:   rawMax,
	}
}

func (s *Scorer) riskLevel(score float64) RiskLevel {
	switch {
	case score >= s.cfg.Thresholds.High:
		return RiskHigh
	case score >= s.cfg.Thresholds.Medium:
		return RiskMedium
	default:
		return RiskLow
	}
}

func riskReason(level RiskLevel, counts map[Severity]int) string {
	switch level {
	case RiskHigh:
		return fmt.Sprintf("High risk due to %d critical and %d high severity issues",
			counts[SeverityCritical], counts[SeverityHigh])
	case RiskMedium:
		return fmt.Sprintf("Medium risk due to %d medium severity issues", counts[SeverityMedium])
	default:
		return fmt.Sprintf("Low risk with %d minor issues", counts[SeverityLow])
	}
}
