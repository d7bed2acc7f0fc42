package queue

type TaskType string

const (
	// TaskTypeEvaluate re-runs the QA pipeline for one template, typically
	// after a rule configuration change invalidates its last report.
	TaskTypeEvaluate TaskType = "evaluate_template"
)
