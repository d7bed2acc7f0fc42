package engine

import (
	"fmt"
	"strings"
)

// ComplianceAnalyzer checks the markup against a brand profile. Every check
// is a literal substring match: the brand value complies only when the exact
// token appears in the raw markup.
type ComplianceAnalyzer struct {
	brand BrandProfile
}

func NewComplianceAnalyzer(cfg Config) *ComplianceAnalyzer {
	return &ComplianceAnalyzer{brand: cfg.withDefaults().Brand}
}

func (a *ComplianceAnalyzer) Analyze(emailID, content string, meta Metadata) Analysis {
	var issues []Issue
	issues = append(issues, a.checkFont(content)...)
	issues = append(issues, a.checkCTAColor(content)...)
	issues = append(issues, a.checkSpacing(content)...)
	issues = append(issues, a.checkLogo(content)...)
	issues = append(issues, a.checkHeaderFooter(content)...)

	return Analysis{
		Agent:   "compliance",
		ID:      emailID,
		Issues:  issues,
		Summary: fmt.Sprintf("Found %d compliance issues", len(issues)),
	}
}

func (a *ComplianceAnalyzer) checkFont(content string) []Issue {
	if strings.Contains(content, "font-family: "+a.brand.FontFamily) {
		return nil
	}
	return []Issue{{
		Rule:        RuleFontCompliance,
		Description: fmt.Sprintf("Font does not match brand guidelines. Expected: %s", a.brand.FontFamily),
		Severity:    SeverityMedium,
		Fields:      map[string]string{"expected_font": a.brand.FontFamily},
	}}
}

func (a *ComplianceAnalyzer) checkCTAColor(content string) []Issue {
	if strings.Contains(content, a.brand.CTAColor) {
		return nil
	}
	return []Issue{{
		Rule:        RuleCTAColorCompliance,
		Description: fmt.Sprintf("CTA button color does not match brand guidelines. Expected: %s", a.brand.CTAColor),
		Severity:    SeverityMedium,
		Fields:      map[string]string{"expected_color": a.brand.CTAColor},
	}}
}

func (a *ComplianceAnalyzer) checkSpacing(content string) []Issue {
	var issues []Issue
	if !strings.Contains(content, a.brand.TopPadding) {
		issues = append(issues, Issue{
			Rule:        RuleSpacingCompliance,
			Description: fmt.Sprintf("Top padding does not match brand guidelines. Expected: %s", a.brand.TopPadding),
			Severity:    SeverityLow,
			Fields:      map[string]string{"spacing_rule": "top padding " + a.brand.TopPadding},
		})
	}
	if !strings.Contains(content, a.brand.BottomPadding) {
		issues = append(issues, Issue{
			Rule:        RuleSpacingCompliance,
			Description: fmt.Sprintf("Bottom padding does not match brand guidelines. Expected: %s", a.brand.BottomPadding),
			Severity:    SeverityLow,
			Fields:      map[string]string{"spacing_rule": "bottom padding " + a.brand.BottomPadding},
		})
	}
	return issues
}

func (a *ComplianceAnalyzer) checkLogo(content string) []Issue {
	if strings.Contains(content, a.brand.HeaderLogo) {
		return nil
	}
	return []Issue{{
		Rule:        RuleLogoPlacement,
		Description: fmt.Sprintf("Brand logo not found. Expected: %s", a.brand.HeaderLogo),
		Severity:    SeverityMedium,
		Fields:      map[string]string{"expected_logo": a.brand.HeaderLogo},
	}}
}

func (a *ComplianceAnalyzer) checkHeaderFooter(content string) []Issue {
	lower := strings.ToLower(content)
	var issues []Issue
	if !strings.Contains(lower, "<header") && !strings.Contains(lower, "<div class='header'") {
		issues = append(issues, Issue{
			Rule:        RuleHeaderConsistency,
			Description: "Header section not found or inconsistent",
			Severity:    SeverityLow,
		})
	}
	if !strings.Contains(lower, "<footer") && !strings.Contains(lower, "<div class='footer'") {
		issues = append(issues, Issue{
			Rule:        RuleFooterConsistency,
			Description: "Footer section not found or inconsistent",
			Severity:    SeverityLow,
		})
	}
	return issues
}
