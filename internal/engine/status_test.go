package engine_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"proofcheck.app/server/internal/engine"
)

var _ = Describe("Overall status decision", func() {
	It("passes with no failures and low risk", func() {
		status := engine.DecideStatus(detResults(0, 9), false, engine.RiskLow)
		Expect(status).To(Equal(engine.StatusPass))
	})

	It("needs review on any deterministic failure", func() {
		status := engine.DecideStatus(detResults(1, 8), false, engine.RiskLow)
		Expect(status).To(Equal(engine.StatusNeedsReview))
	})

	It("needs review on medium risk alone", func() {
		status := engine.DecideStatus(detResults(0, 9), false, engine.RiskMedium)
		Expect(status).To(Equal(engine.StatusNeedsReview))
	})

	It("tolerates exactly three deterministic failures", func() {
		status := engine.DecideStatus(detResults(3, 6), false, engine.RiskLow)
		Expect(status).To(Equal(engine.StatusNeedsReview))
	})

	It("fails past the deterministic failure limit", func() {
		status := engine.DecideStatus(detResults(4, 5), false, engine.RiskLow)
		Expect(status).To(Equal(engine.StatusFail))
	})

	It("fails on a critical compliance issue regardless of other signals", func() {
		status := engine.DecideStatus(detResults(0, 9), true, engine.RiskLow)
		Expect(status).To(Equal(engine.StatusFail))
	})

	It("fails on high risk", func() {
		status := engine.DecideStatus(nil, false, engine.RiskHigh)
		Expect(status).To(Equal(engine.StatusFail))
	})
})

var _ = Describe("HasCriticalIssue", func() {
	It("finds a critical issue among lesser ones", func() {
		issues := []engine.Issue{
			{Rule: engine.RuleFontCompliance, Severity: engine.SeverityLow},
			{Rule: engine.RuleLogoPlacement, Severity: engine.SeverityCritical},
		}
		Expect(engine.HasCriticalIssue(issues)).To(BeTrue())
	})

	It("is false for an empty or non-critical list", func() {
		Expect(engine.HasCriticalIssue(nil)).To(BeFalse())
		Expect(engine.HasCriticalIssue([]engine.Issue{
			{Rule: engine.RuleFontCompliance, Severity: engine.SeverityHigh},
		})).To(BeFalse())
	})
})
