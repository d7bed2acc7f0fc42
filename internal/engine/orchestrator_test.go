package engine_test

import (
	"context"
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"proofcheck.app/server/internal/engine"
)

var _ = Describe("Orchestrator", func() {
	var orch *engine.Orchestrator

	BeforeEach(func() {
		orch = engine.NewOrchestrator(engine.DefaultConfig())
	})

	Describe("a well-formed on-brand email", func() {
		content := `<html><body style="font-family: Arial; padding: 24px; background-color: #ffffff">` +
			`<header><img src="brandlogo.png" alt="Company logo" width="120" height="40"></header>` +
			`<table width="600"><tr><td>` +
			`<h1>September savings are live</h1>` +
			`<p>Browse our new arrivals before they sell out.</p>` +
			`<a href="https://shop.example.com/new" style="background-color: #0085FF">Browse new arrivals</a>` +
			`</td></tr></table>` +
			`<footer>Example Inc, 1 Main St</footer>` +
			`</body></html>`

		meta := engine.Metadata{
			Subject:      "September savings are live",
			Preheader:    "New arrivals inside",
			TemplateName: "sept-newsletter",
			Locale:       "en-US",
		}

		It("passes with a low risk score", func() {
			report := orch.Evaluate(context.Background(), "email-1", content, meta)

			Expect(report.EmailID).To(Equal("email-1"))
			Expect(report.OverallStatus).To(Equal(engine.StatusPass))
			Expect(report.RiskLevel).To(Equal(engine.RiskLow))
			Expect(report.FixSuggestions).To(BeEmpty())
			Expect(report.TopIssues).To(BeEmpty())
			Expect(report.GeneratedAt).NotTo(BeZero())
		})
	})

	Describe("a problematic email", func() {
		content := `<html><body>` +
			`<p>hello hello world</p>` +
			`<img src="promo.png">` +
			`<a href="javascript:alert(1)">here</a>` +
			`</body></html>`

		meta := engine.Metadata{Subject: "FREE OFFER!!! ACT NOW!!!"}

		It("fails and carries every evaluator's findings", func() {
			report := orch.Evaluate(context.Background(), "email-2", content, meta)

			Expect(report.OverallStatus).To(Equal(engine.StatusFail))
			Expect(report.RiskScore).To(BeNumerically(">", 0))

			Expect(engine.CountFailures(report.Deterministic)).To(BeNumerically(">", 3))
			Expect(issuesFor(report.Tone, engine.RuleSpamIndicators)).To(HaveLen(3))
			Expect(issuesFor(report.Accessibility, engine.RuleLinkTextClarity)).NotTo(BeEmpty())
			Expect(report.Compliance.Issues).NotTo(BeEmpty())
			Expect(report.FixSuggestions).NotTo(BeEmpty())
			Expect(report.ScoreBreakdown).To(HaveLen(4))
		})

		It("caps top issues at ten, sorted worst first", func() {
			report := orch.Evaluate(context.Background(), "email-2", content, meta)

			Expect(report.TopIssues).To(HaveLen(10))
			for i := 1; i < len(report.TopIssues); i++ {
				Expect(severityAtLeast(report.TopIssues[i-1].Severity, report.TopIssues[i].Severity)).To(BeTrue())
			}
		})

		It("produces a JSON-serializable report", func() {
			report := orch.Evaluate(context.Background(), "email-2", content, meta)

			raw, err := json.Marshal(report)
			Expect(err).NotTo(HaveOccurred())

			var decoded map[string]any
			Expect(json.Unmarshal(raw, &decoded)).To(Succeed())
			Expect(decoded).To(HaveKey("overall_status"))
			Expect(decoded).To(HaveKey("risk_score"))
			Expect(decoded).To(HaveKey("fix_suggestions"))
			Expect(decoded).To(HaveKey("top_issues"))
		})
	})

	It("evaluates an empty document without panicking", func() {
		report := orch.Evaluate(context.Background(), "email-3", "", engine.Metadata{})

		Expect(report.OverallStatus).To(Equal(engine.StatusFail))
		Expect(report.Deterministic).NotTo(BeEmpty())
	})
})

func severityAtLeast(a, b engine.Severity) bool {
	rank := map[engine.Severity]int{
		engine.SeverityCritical: 4,
		engine.SeverityHigh:     3,
		engine.SeverityMedium:   2,
		engine.SeverityLow:      1,
	}
	return rank[a] >= rank[b]
}
