package engine

// BrandProfile holds the brand tokens the compliance evaluator matches
// literally against the markup. Matching is deliberately substring-based, not
// CSS-aware: a value complies only if the exact literal string appears.
type BrandProfile struct {
	FontFamily    string `json:"font_family"`
	CTAColor      string `json:"cta_color"`
	HeaderLogo    string `json:"header_logo"`
	TopPadding    string `json:"top_padding"`
	BottomPadding string `json:"bottom_padding"`
}

// RiskThresholds are the score cutoffs for the three risk levels.
type RiskThresholds struct {
	High   float64 `json:"high"`
	Medium float64 `json:"medium"`
}

// Config is the single immutable configuration value shared by every pipeline
// component. Zero-value fields fall back to the built-in defaults, so a
// partially populated Config (for example one loaded from the rule
// configuration store) is always usable.
type Config struct {
	Brand            BrandProfile
	RuleWeights      map[Rule]float64
	SeverityWeights  map[Severity]float64
	CategoryCeilings map[Category]float64
	Thresholds       RiskThresholds
	FixTemplates     map[Rule]string
}

const (
	defaultDeterministicWeight = 5.0
	defaultHeuristicWeight     = 10.0
)

// DefaultConfig returns the built-in defaults used when no external
// configuration is available.
func DefaultConfig() Config {
	return Config{
		Brand:            defaultBrand(),
		SeverityWeights:  defaultSeverityWeights(),
		CategoryCeilings: defaultCategoryCeilings(),
		Thresholds:       RiskThresholds{High: 80, Medium: 50},
		FixTemplates:     defaultFixTemplates(),
	}
}

func defaultBrand() BrandProfile {
	return BrandProfile{
		FontFamily:    "Arial",
		CTAColor:      "#0085FF",
		HeaderLogo:    "brandlogo.png",
		TopPadding:    "24px",
		BottomPadding: "24px",
	}
}

func defaultSeverityWeights() map[Severity]float64 {
	return map[Severity]float64{
		SeverityCritical: 10,
		SeverityHigh:     5,
		SeverityMedium:   3,
		SeverityLow:      1,
	}
}

func defaultCategoryCeilings() map[Category]float64 {
	return map[Category]float64{
		CategoryDeterministic: 40,
		CategoryCompliance:    25,
		CategoryTone:          15,
		CategoryAccessibility: 20,
	}
}

func defaultFixTemplates() map[Rule]string {
	return map[Rule]string{
		RuleAltText:            "Add descriptive ALT text to image: {element}",
		RuleLinks:              "Fix malformed link: {url}",
		RuleSubjectLine:        "Add a compelling subject line",
		RulePreheader:          "Add a preheader text",
		RuleTemplateMeta:       "Add missing template metadata: {missing_field}",
		RuleWidth:              "Specify width attributes for email elements",
		RuleBackgroundColor:    "Define background colors for all sections",
		RuleImageDimensions:    "Add width and height attributes to image: {element}",
		RuleLongCopy:           "Break up long text block into shorter paragraphs",
		RuleFontCompliance:     "Update font family to brand standard: {expected_font}",
		RuleCTAColorCompliance: "Update CTA button color to brand standard: {expected_color}",
		RuleSpacingCompliance:  "Adjust spacing to brand guidelines: {spacing_rule}",
		RuleLogoPlacement:      "Add brand logo to header: {expected_logo}",
		RuleHeaderConsistency:  "Ensure consistent header structure",
		RuleFooterConsistency:  "Ensure consistent footer structure",
		RuleSpamIndicators:     "Remove or rephrase spammy language: {spam_text}",
		RuleComplexSentences:   "Simplify complex sentence structure",
		RuleClarity:            "Rewrite passive voice to active voice",
		RuleGrammar:            "Fix grammar issue: {grammar_issue}",
		RuleAltTextQuality:     "Improve ALT text descriptiveness: {current_text}",
		RuleSemanticHTML:       "Add proper heading structure",
		RuleLinkTextClarity:    "Make link text more descriptive: {current_text}",
		RuleColorContrast:      "Ensure sufficient color contrast for readability",
	}
}

// withDefaults fills any unset field from the default tables so components
// never need to re-check for missing configuration.
func (c Config) withDefaults() Config {
	defaults := DefaultConfig()
	if c.Brand == (BrandProfile{}) {
		c.Brand = defaults.Brand
	}
	if len(c.SeverityWeights) == 0 {
		c.SeverityWeights = defaults.SeverityWeights
	}
	if len(c.CategoryCeilings) == 0 {
		c.CategoryCeilings = defaults.CategoryCeilings
	}
	if c.Thresholds == (RiskThresholds{}) {
		c.Thresholds = defaults.Thresholds
	}
	if len(c.FixTemplates) == 0 {
		c.FixTemplates = defaults.FixTemplates
	}
	return c
}

// ruleWeight resolves the configured weight for a rule, falling back to the
// per-category default when unconfigured.
func (c Config) ruleWeight(rule Rule, category Category) float64 {
	if w, ok := c.RuleWeights[rule]; ok {
		return w
	}
	if category == CategoryDeterministic {
		return defaultDeterministicWeight
	}
	return defaultHeuristicWeight
}

func (c Config) severityWeight(s Severity) float64 {
	if w, ok := c.SeverityWeights[s.normalize()]; ok {
		return w
	}
	return defaultSeverityWeights()[s.normalize()]
}

func (c Config) ceiling(category Category) float64 {
	if v, ok := c.CategoryCeilings[category]; ok {
		return v
	}
	return defaultCategoryCeilings()[category]
}
