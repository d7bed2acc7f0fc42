package engine_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"proofcheck.app/server/internal/engine"
)

var _ = Describe("Fix generator", func() {
	var gen *engine.FixGenerator

	BeforeEach(func() {
		gen = engine.NewFixGenerator(engine.DefaultConfig())
	})

	It("produces nothing for a clean evaluation", func() {
		Expect(gen.Generate(engine.Results{}, engine.RiskResult{})).To(BeEmpty())
	})

	It("skips passing deterministic checks", func() {
		results := engine.Results{Deterministic: detResults(0, 5)}
		Expect(gen.Generate(results, engine.RiskResult{})).To(BeEmpty())
	})

	It("substitutes issue fields into the rule template", func() {
		results := engine.Results{
			Deterministic: []engine.DeterministicResult{{
				TestName: engine.RuleLinks,
				Status:   engine.CheckFail,
				Details:  "Malformed link: javascript:alert(1)",
				Fields:   map[string]string{"url": "javascript:alert(1)"},
			}},
		}

		fixes := gen.Generate(results, engine.RiskResult{})
		Expect(fixes).To(HaveLen(1))
		Expect(fixes[0].Type).To(Equal(engine.CategoryDeterministic))
		Expect(fixes[0].Issue).To(Equal(engine.RuleLinks))
		Expect(fixes[0].Suggestion).To(Equal("Fix malformed link: javascript:alert(1)"))
		Expect(fixes[0].Priority).To(Equal(engine.SeverityHigh))
	})

	It("falls back to safe defaults for absent fields", func() {
		results := engine.Results{
			Compliance: engine.Analysis{Issues: []engine.Issue{{
				Rule:        engine.RuleFontCompliance,
				Description: "Font does not match brand guidelines",
				Severity:    engine.SeverityMedium,
			}}},
		}

		fixes := gen.Generate(results, engine.RiskResult{})
		Expect(fixes).To(HaveLen(1))
		Expect(fixes[0].Suggestion).To(Equal("Update font family to brand standard: Arial"))
	})

	It("uses the category fallback and the description for unknown rules", func() {
		results := engine.Results{
			Tone: engine.Analysis{Issues: []engine.Issue{{
				Rule:        engine.Rule("novel_check"),
				Description: "something odd",
				Severity:    engine.SeverityLow,
			}}},
		}

		fixes := gen.Generate(results, engine.RiskResult{})
		Expect(fixes).To(HaveLen(1))
		Expect(fixes[0].Suggestion).To(Equal("Improve tone/clarity: something odd"))
	})

	It("names unknown deterministic checks generically", func() {
		results := engine.Results{
			Deterministic: []engine.DeterministicResult{{
				TestName: engine.Rule("mystery"),
				Status:   engine.CheckFail,
				Details:  "broken",
			}},
		}

		fixes := gen.Generate(results, engine.RiskResult{})
		Expect(fixes[0].Suggestion).To(Equal("Fix mystery issue"))
	})

	It("orders suggestions by priority, keeping encounter order within a tier", func() {
		results := engine.Results{
			Deterministic: []engine.DeterministicResult{{
				TestName: engine.RuleWidth,
				Status:   engine.CheckFail,
				Details:  "No width attributes found in email HTML",
			}},
			Compliance: engine.Analysis{Issues: []engine.Issue{
				{Rule: engine.RuleSpacingCompliance, Severity: engine.SeverityLow},
				{Rule: engine.RuleLogoPlacement, Severity: engine.SeverityCritical},
			}},
			Tone: engine.Analysis{Issues: []engine.Issue{
				{Rule: engine.RuleClarity, Severity: engine.SeverityLow},
			}},
		}

		fixes := gen.Generate(results, engine.RiskResult{})
		Expect(fixes).To(HaveLen(4))
		Expect(fixes[0].Issue).To(Equal(engine.RuleLogoPlacement))
		Expect(fixes[1].Issue).To(Equal(engine.RuleWidth))
		Expect(fixes[2].Issue).To(Equal(engine.RuleSpacingCompliance))
		Expect(fixes[3].Issue).To(Equal(engine.RuleClarity))
	})

	It("normalizes unrecognized priorities to medium", func() {
		results := engine.Results{
			Accessibility: engine.Analysis{Issues: []engine.Issue{{
				Rule:     engine.RuleColorContrast,
				Severity: "weird",
			}}},
		}

		fixes := gen.Generate(results, engine.RiskResult{})
		Expect(fixes[0].Priority).To(Equal(engine.SeverityMedium))
	})
})
