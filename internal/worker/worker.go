package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/trace"

	"proofcheck.app/server/common/logger"
	"proofcheck.app/server/internal/model"
	"proofcheck.app/server/internal/queue"
	"proofcheck.app/server/internal/store"
)

// Evaluator runs the QA pipeline for one template. Mirrors service.QAService's
// Run method - defined here to avoid a wider dependency on the service layer.
type Evaluator interface {
	Run(ctx context.Context, templateID int64) (*model.QAReport, error)
}

type Config struct {
	MaxAttempts int
}

// Worker consumes evaluation messages and re-runs the QA pipeline for each.
type Worker struct {
	consumer  *queue.RedisConsumer
	evaluator Evaluator
	cfg       Config

	stopCh    chan struct{}
	stoppedCh chan struct{}
}

func New(consumer *queue.RedisConsumer, evaluator Evaluator, cfg Config) *Worker {
	return &Worker{
		consumer:  consumer,
		evaluator: evaluator,
		cfg:       cfg,
		stopCh:    make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

func (w *Worker) Run(ctx context.Context) error {
	defer close(w.stoppedCh)

	slog.InfoContext(ctx, "worker started")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.stopCh:
			slog.InfoContext(ctx, "worker stopping")
			return nil
		default:
			if err := w.processOneBatch(ctx); err != nil {
				slog.ErrorContext(ctx, "batch processing error", "error", err)
				// Brief backoff on error
				time.Sleep(time.Second)
			}
		}
	}
}

func (w *Worker) Stop() {
	close(w.stopCh)
	<-w.stoppedCh
}

func (w *Worker) processOneBatch(ctx context.Context) error {
	messages, err := w.consumer.Read(ctx)
	if err != nil {
		return fmt.Errorf("reading from stream: %w", err)
	}

	for _, msg := range messages {
		if err := w.processMessageSafe(ctx, msg); err != nil {
			slog.ErrorContext(ctx, "message processing failed",
				"error", err,
				"message_id", msg.ID,
				"template_id", msg.TemplateID)
			w.handleFailedMessage(ctx, msg, err)
		}
	}

	return nil
}

func (w *Worker) processMessageSafe(ctx context.Context, msg queue.Message) (err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.ErrorContext(ctx, "panic recovered in message processing",
				"panic", r,
				"message_id", msg.ID,
				"template_id", msg.TemplateID)
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return w.ProcessMessage(ctx, msg)
}

// ProcessMessage is exported so it can be reused by the reclaimer.
func (w *Worker) ProcessMessage(ctx context.Context, msg queue.Message) error {
	sc := logger.StartSpanFromTraceID(ctx, msg.TraceID, "worker.evaluate_template",
		trace.WithSpanKind(trace.SpanKindConsumer))
	defer sc.End()
	ctx = sc.Context()

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		TemplateID: logger.Ptr(msg.TemplateID),
		MessageID:  logger.Ptr(msg.ID),
	})

	slog.InfoContext(ctx, "processing evaluation message",
		"rule_name", msg.RuleName,
		"attempt", msg.Attempt)

	report, err := w.evaluator.Run(ctx, msg.TemplateID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Template deleted between enqueue and processing.
			slog.InfoContext(ctx, "template gone, dropping message")
			if ackErr := w.consumer.Ack(ctx, msg); ackErr != nil {
				slog.WarnContext(ctx, "failed to ACK message", "error", ackErr)
			}
			return nil
		}
		sc.RecordError(err)
		return fmt.Errorf("evaluating template: %w", err)
	}

	if err := w.consumer.Ack(ctx, msg); err != nil {
		// Log but don't fail - message will be reclaimed but re-evaluation is idempotent
		slog.WarnContext(ctx, "failed to ACK message", "error", err)
	}

	slog.InfoContext(ctx, "template re-evaluated",
		"report_id", report.ID,
		"overall_status", report.OverallStatus,
		"risk_score", report.RiskScore)
	return nil
}

func (w *Worker) handleFailedMessage(ctx context.Context, msg queue.Message, err error) {
	if msg.Attempt >= w.cfg.MaxAttempts {
		slog.ErrorContext(ctx, "max attempts reached, sending to DLQ",
			"message_id", msg.ID,
			"template_id", msg.TemplateID,
			"attempts", msg.Attempt)
		if dlqErr := w.consumer.SendDLQ(ctx, msg, err.Error()); dlqErr != nil {
			slog.ErrorContext(ctx, "failed to send to DLQ", "error", dlqErr)
		}
		return
	}

	slog.WarnContext(ctx, "requeuing failed message",
		"message_id", msg.ID,
		"template_id", msg.TemplateID,
		"attempt", msg.Attempt)
	if requeueErr := w.consumer.Requeue(ctx, msg, err.Error()); requeueErr != nil {
		slog.ErrorContext(ctx, "failed to requeue message", "error", requeueErr)
	}
}
