package queue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// EvaluationMessage asks the worker to re-run the QA pipeline for one
// template. RuleName records which rule configuration change triggered the
// re-evaluation, when there was one.
type EvaluationMessage struct {
	TemplateID int64
	RuleName   string
	TraceID    *string
	Attempt    int
}

type Producer interface {
	Enqueue(ctx context.Context, msg EvaluationMessage) error
	Close() error
}

type redisProducer struct {
	client *redis.Client
	stream string
	logger *slog.Logger
}

func NewRedisProducer(client *redis.Client, stream string, logger *slog.Logger) Producer {
	if logger == nil {
		logger = slog.Default()
	}
	return &redisProducer{
		client: client,
		stream: stream,
		logger: logger,
	}
}

func (p *redisProducer) Enqueue(ctx context.Context, msg EvaluationMessage) error {
	attempt := msg.Attempt
	if attempt <= 0 {
		attempt = 1
	}

	fields := map[string]any{
		"task_type":   string(TaskTypeEvaluate),
		"template_id": msg.TemplateID,
		"attempt":     attempt,
	}

	if msg.RuleName != "" {
		fields["rule_name"] = msg.RuleName
	}
	if msg.TraceID != nil && *msg.TraceID != "" {
		fields["trace_id"] = *msg.TraceID
	}

	if err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: fields,
	}).Err(); err != nil {
		return fmt.Errorf("enqueue evaluation: %w", err)
	}

	p.logger.InfoContext(ctx, "enqueued template evaluation", "template_id", msg.TemplateID, "rule_name", msg.RuleName, "attempt", attempt)
	return nil
}

func (p *redisProducer) Close() error {
	return p.client.Close()
}
