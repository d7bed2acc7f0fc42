package engine_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"proofcheck.app/server/internal/engine"
)

func detResults(failed, passed int) []engine.DeterministicResult {
	var out []engine.DeterministicResult
	for i := 0; i < failed; i++ {
		out = append(out, engine.DeterministicResult{TestName: engine.RuleLinks, Status: engine.CheckFail})
	}
	for i := 0; i < passed; i++ {
		out = append(out, engine.DeterministicResult{TestName: engine.RuleAltText, Status: engine.CheckPass})
	}
	return out
}

func analysisWith(agent string, severity engine.Severity, n int) engine.Analysis {
	a := engine.Analysis{Agent: agent}
	for i := 0; i < n; i++ {
		a.Issues = append(a.Issues, engine.Issue{Rule: engine.RuleFontCompliance, Severity: severity})
	}
	return a
}

var _ = Describe("Risk scorer", func() {
	var scorer *engine.Scorer

	BeforeEach(func() {
		scorer = engine.NewScorer(engine.DefaultConfig())
	})

	It("returns a zero score and low risk for clean results", func() {
		result := scorer.Calculate(engine.Results{})

		Expect(result.Score).To(BeZero())
		Expect(result.Level).To(Equal(engine.RiskLow))
		Expect(result.Reason).To(Equal("Low risk with 0 minor issues"))
		Expect(result.Breakdown).To(HaveLen(4))
		for _, cs := range result.Breakdown {
			Expect(cs.Score).To(BeZero())
		}
	})

	It("dilutes deterministic failures by the checks performed", func() {
		// 1 failure out of 8 checks: raw 0.25 of rawMax 2.0, against a 40 ceiling.
		result := scorer.Calculate(engine.Results{Deterministic: detResults(1, 7)})

		det := result.Breakdown[engine.CategoryDeterministic]
		Expect(det.RawScore).To(BeNumerically("~", 0.25, 1e-9))
		Expect(det.RawMax).To(BeNumerically("~", 2.0, 1e-9))
		Expect(det.Score).To(BeNumerically("~", 5.0, 1e-9))
		Expect(result.IssueCounts[engine.SeverityHigh]).To(Equal(1))
	})

	It("clamps the normalization denominator at one", func() {
		// A single check gives rawMax 0.25, below the clamp.
		result := scorer.Calculate(engine.Results{Deterministic: detResults(1, 0)})

		det := result.Breakdown[engine.CategoryDeterministic]
		Expect(det.RawMax).To(BeNumerically("~", 0.25, 1e-9))
		Expect(det.Score).To(BeNumerically("~", 10.0, 1e-9))
	})

	It("caps each heuristic category at its ceiling", func() {
		result := scorer.Calculate(engine.Results{
			Compliance: analysisWith("compliance", engine.SeverityCritical, 10),
		})

		comp := result.Breakdown[engine.CategoryCompliance]
		Expect(comp.Score).To(BeNumerically("~", 25.0, 1e-9))
		Expect(comp.Max).To(Equal(25.0))
		Expect(result.IssueCounts[engine.SeverityCritical]).To(Equal(10))
	})

	It("reaches exactly 100 when every category maxes out", func() {
		result := scorer.Calculate(engine.Results{
			Deterministic: detResults(8, 0),
			Compliance:    analysisWith("compliance", engine.SeverityCritical, 10),
			Tone:          analysisWith("tone", engine.SeverityCritical, 10),
			Accessibility: analysisWith("accessibility", engine.SeverityCritical, 10),
		})

		Expect(result.Score).To(Equal(100.0))
		Expect(result.Level).To(Equal(engine.RiskHigh))
		Expect(result.Reason).To(Equal("High risk due to 30 critical and 8 high severity issues"))
	})

	It("weights severities differently within a category", func() {
		low := scorer.Calculate(engine.Results{
			Tone: analysisWith("tone", engine.SeverityLow, 3),
		})
		medium := scorer.Calculate(engine.Results{
			Tone: analysisWith("tone", engine.SeverityMedium, 3),
		})

		Expect(medium.Breakdown[engine.CategoryTone].Score).To(
			BeNumerically(">", low.Breakdown[engine.CategoryTone].Score))
	})

	It("treats an unrecognized severity as medium", func() {
		result := scorer.Calculate(engine.Results{
			Tone: engine.Analysis{Issues: []engine.Issue{{Rule: engine.RuleClarity, Severity: "bogus"}}},
		})

		Expect(result.IssueCounts[engine.SeverityMedium]).To(Equal(1))
	})

	It("selects the risk level from configured thresholds", func() {
		medium := scorer.Calculate(engine.Results{
			Deterministic: detResults(8, 0),
			Tone:          analysisWith("tone", engine.SeverityCritical, 10),
		})
		Expect(medium.Score).To(BeNumerically("~", 55.0, 1e-9))
		Expect(medium.Level).To(Equal(engine.RiskMedium))
		Expect(medium.Reason).To(Equal("Medium risk due to 0 medium severity issues"))
	})

	It("honors custom rule weights from configuration", func() {
		cfg := engine.DefaultConfig()
		cfg.RuleWeights = map[engine.Rule]float64{engine.RuleLinks: 20}
		heavy := engine.NewScorer(cfg)

		result := heavy.Calculate(engine.Results{Deterministic: detResults(1, 0)})
		// 0.2*5 raw over a denominator clamped to 1, against the 40 ceiling.
		Expect(result.Breakdown[engine.CategoryDeterministic].Score).To(
			BeNumerically("~", 40.0, 1e-9))
	})
})
