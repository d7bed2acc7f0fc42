package engine

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

const passiveVoiceLimit = 10

var defaultSpamKeywords = []string{
	"urgent", "act now", "limited time", "free", "guarantee",
	"no obligation", "click here", "buy now", "instant", "miracle",
}

var defaultComplexConnectors = []string{
	"however", "nevertheless", "moreover", "furthermore", "consequently",
	"therefore", "thus", "hence", "accordingly", "notwithstanding",
}

var (
	sentenceSplitRe = regexp.MustCompile(`[.!?]+`)
	passiveVoiceRe  = regexp.MustCompile(`(?i)\b\w+ed\b|\bbeen\b|\bbeing\b`)
	wordRe          = regexp.MustCompile(`\w+`)
)

// ToneAnalyzer applies copy-quality heuristics: spam indicators in the
// subject, sentence complexity, a passive-voice proxy and repeated words.
// It is a pattern matcher, not a language model.
type ToneAnalyzer struct {
	spamKeywords      []string
	complexConnectors []string
}

func NewToneAnalyzer() *ToneAnalyzer {
	return &ToneAnalyzer{
		spamKeywords:      defaultSpamKeywords,
		complexConnectors: defaultComplexConnectors,
	}
}

func (a *ToneAnalyzer) Analyze(emailID, content string, meta Metadata) Analysis {
	text := stripTags(content)

	var issues []Issue
	issues = append(issues, a.checkSubject(meta.Subject)...)
	issues = append(issues, a.checkComplexSentences(text)...)
	issues = append(issues, a.checkPassiveVoice(text)...)
	issues = append(issues, a.checkRepeatedWords(text)...)

	return Analysis{
		Agent:   "tone",
		ID:      emailID,
		Issues:  issues,
		Summary: fmt.Sprintf("Found %d tone/clarity issues", len(issues)),
	}
}

func (a *ToneAnalyzer) checkSubject(subject string) []Issue {
	var issues []Issue
	lower := strings.ToLower(subject)

	var found []string
	for _, keyword := range a.spamKeywords {
		if strings.Contains(lower, keyword) {
			found = append(found, keyword)
		}
	}
	if len(found) > 0 {
		issues = append(issues, Issue{
			Rule:        RuleSpamIndicators,
			Description: fmt.Sprintf("Spam keywords detected in subject: %s", strings.Join(found, ", ")),
			Severity:    SeverityHigh,
			Fields:      map[string]string{"spam_text": strings.Join(found, ", ")},
		})
	}

	if strings.Count(subject, "!") > 2 {
		issues = append(issues, Issue{
			Rule:        RuleSpamIndicators,
			Description: "Too many exclamation marks in subject",
			Severity:    SeverityMedium,
			Fields:      map[string]string{"spam_text": subject},
		})
	}

	if len(subject) > 10 && isAllUpper(subject) {
		issues = append(issues, Issue{
			Rule:        RuleSpamIndicators,
			Description: "Subject line is all caps",
			Severity:    SeverityMedium,
			Fields:      map[string]string{"spam_text": subject},
		})
	}

	return issues
}

// isAllUpper mirrors the "is upper" convention: at least one cased letter and
// no lowercase letters.
func isAllUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if r >= 'a' && r <= 'z' {
			return false
		}
		if r >= 'A' && r <= 'Z' {
			hasLetter = true
		}
	}
	return hasLetter
}

func (a *ToneAnalyzer) checkComplexSentences(text string) []Issue {
	var issues []Issue
	for _, sentence := range sentenceSplitRe.Split(text, -1) {
		lower := strings.ToLower(sentence)
		count := 0
		for _, connector := range a.complexConnectors {
			if strings.Contains(lower, connector) {
				count++
			}
		}
		if count > 2 {
			issues = append(issues, Issue{
				Rule:        RuleComplexSentences,
				Description: fmt.Sprintf("Sentence contains too many complex connectors: %s...", truncate(sentence, 50)),
				Severity:    SeverityLow,
			})
		}
	}
	return issues
}

// checkPassiveVoice counts -ed words plus "been"/"being" across the whole
// text as a crude passive-voice proxy.
func (a *ToneAnalyzer) checkPassiveVoice(text string) []Issue {
	if len(passiveVoiceRe.FindAllString(text, -1)) <= passiveVoiceLimit {
		return nil
	}
	return []Issue{{
		Rule:        RuleClarity,
		Description: "Text contains excessive passive voice constructions",
		Severity:    SeverityLow,
	}}
}

// checkRepeatedWords flags immediately-repeated words, case-insensitive, with
// only whitespace between the two occurrences.
func (a *ToneAnalyzer) checkRepeatedWords(text string) []Issue {
	positions := wordRe.FindAllStringIndex(text, -1)
	seen := map[string]bool{}
	for i := 1; i < len(positions); i++ {
		prev := text[positions[i-1][0]:positions[i-1][1]]
		cur := text[positions[i][0]:positions[i][1]]
		gap := text[positions[i-1][1]:positions[i][0]]
		if strings.TrimSpace(gap) == "" && gap != "" && strings.EqualFold(prev, cur) {
			seen[strings.ToLower(cur)] = true
		}
	}
	if len(seen) == 0 {
		return nil
	}

	words := make([]string, 0, len(seen))
	for w := range seen {
		words = append(words, w)
	}
	sort.Strings(words)

	return []Issue{{
		Rule:        RuleGrammar,
		Description: fmt.Sprintf("Repeated words found: %s", strings.Join(words, ", ")),
		Severity:    SeverityLow,
		Fields:      map[string]string{"grammar_issue": "repeated words: " + strings.Join(words, ", ")},
	}}
}
