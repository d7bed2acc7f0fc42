package engine

const maxDeterministicFailures = 3

// DecideStatus maps the evaluation signals to the final verdict. It is
// recomputed fresh each call; there is no state beyond a single evaluation.
func DecideStatus(deterministic []DeterministicResult, criticalCompliance bool, level RiskLevel) OverallStatus {
	failures := CountFailures(deterministic)

	switch {
	case failures > maxDeterministicFailures || criticalCompliance || level == RiskHigh:
		return StatusFail
	case failures > 0 || level == RiskMedium:
		return StatusNeedsReview
	default:
		return StatusPass
	}
}

// HasCriticalIssue reports whether any issue in the list is critical.
func HasCriticalIssue(issues []Issue) bool {
	for _, issue := range issues {
		if issue.Severity == SeverityCritical {
			return true
		}
	}
	return false
}
