package engine

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"
)

const maxTopIssues = 10

// Orchestrator is the composition root of the pipeline. It runs the
// deterministic checks and the three heuristic evaluators over the same
// immutable input, joins their outputs, and feeds them to the aggregator, the
// status decision and the fix generator. Every other component is
// independently constructible and testable without it.
type Orchestrator struct {
	compliance    *ComplianceAnalyzer
	tone          *ToneAnalyzer
	accessibility *AccessibilityAnalyzer
	scorer        *Scorer
	fixes         *FixGenerator
}

func NewOrchestrator(cfg Config) *Orchestrator {
	cfg = cfg.withDefaults()
	return &Orchestrator{
		compliance:    NewComplianceAnalyzer(cfg),
		tone:          NewToneAnalyzer(),
		accessibility: NewAccessibilityAnalyzer(),
		scorer:        NewScorer(cfg),
		fixes:         NewFixGenerator(cfg),
	}
}

// Evaluate runs the full pipeline for one email. The four evaluators share no
// mutable state, so they run concurrently; the aggregation stages start only
// after all four have finished.
func (o *Orchestrator) Evaluate(ctx context.Context, emailID, content string, meta Metadata) Report {
	start := time.Now()

	var results Results
	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		results.Deterministic = RunDeterministicChecks(content, meta)
	}()
	go func() {
		defer wg.Done()
		results.Compliance = o.compliance.Analyze(emailID, content, meta)
	}()
	go func() {
		defer wg.Done()
		results.Tone = o.tone.Analyze(emailID, content, meta)
	}()
	go func() {
		defer wg.Done()
		results.Accessibility = o.accessibility.Analyze(emailID, content, meta)
	}()
	wg.Wait()

	risk := o.scorer.Calculate(results)
	status := DecideStatus(results.Deterministic, HasCriticalIssue(results.Compliance.Issues), risk.Level)
	fixes := o.fixes.Generate(results, risk)

	slog.InfoContext(ctx, "email evaluated",
		"email_id", emailID,
		"overall_status", status,
		"risk_score", risk.Score,
		"risk_level", risk.Level,
		"deterministic_failures", CountFailures(results.Deterministic),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return Report{
		EmailID:        emailID,
		OverallStatus:  status,
		RiskScore:      risk.Score,
		RiskLevel:      risk.Level,
		Compliance:     results.Compliance,
		Tone:           results.Tone,
		Accessibility:  results.Accessibility,
		Deterministic:  results.Deterministic,
		FixSuggestions: fixes,
		TopIssues:      topIssues(results),
		ScoreBreakdown: risk.Breakdown,
		GeneratedAt:    time.Now().UTC(),
	}
}

// topIssues concatenates deterministic failures and all heuristic issues in
// category order, stable-sorts descending by severity rank, and keeps at most
// ten entries.
func topIssues(results Results) []TopIssue {
	var issues []TopIssue

	for _, test := range results.Deterministic {
		if test.Status == CheckFail {
			issues = append(issues, TopIssue{
				Type:     CategoryDeterministic,
				TestName: test.TestName,
				Details:  test.Details,
				Severity: SeverityHigh,
			})
		}
	}
	issues = append(issues, analysisTopIssues(CategoryCompliance, results.Compliance)...)
	issues = append(issues, analysisTopIssues(CategoryTone, results.Tone)...)
	issues = append(issues, analysisTopIssues(CategoryAccessibility, results.Accessibility)...)

	sort.SliceStable(issues, func(i, j int) bool {
		return severityRank(issues[i].Severity) > severityRank(issues[j].Severity)
	})

	if len(issues) > maxTopIssues {
		issues = issues[:maxTopIssues]
	}
	return issues
}

func analysisTopIssues(category Category, analysis Analysis) []TopIssue {
	issues := make([]TopIssue, 0, len(analysis.Issues))
	for _, issue := range analysis.Issues {
		issues = append(issues, TopIssue{
			Type:     category,
			TestName: issue.Rule,
			Details:  issue.Description,
			Severity: issue.Severity.normalize(),
		})
	}
	return issues
}
