package service_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"proofcheck.app/server/internal/model"
	"proofcheck.app/server/internal/queue"
	"proofcheck.app/server/internal/service"
)

var _ = Describe("RuleConfigService", func() {
	var (
		rules     *mockRuleConfigStore
		templates *mockTemplateStore
		producer  *mockProducer
		svc       service.RuleConfigService
	)

	BeforeEach(func() {
		rules = &mockRuleConfigStore{}
		templates = &mockTemplateStore{}
		producer = &mockProducer{}
		svc = service.NewRuleConfigService(rules, templates, producer)
	})

	It("upserts the configuration and assigns an id", func() {
		var upserted *model.RuleConfiguration
		rules.upsertFn = func(_ context.Context, rc *model.RuleConfiguration) error {
			upserted = rc
			return nil
		}

		rc := &model.RuleConfiguration{Name: "font_compliance", Weight: 20, Category: "compliance"}
		updated, err := svc.Update(context.Background(), rc)
		Expect(err).NotTo(HaveOccurred())
		Expect(updated.ID).NotTo(BeZero())
		Expect(upserted).To(BeIdenticalTo(rc))
	})

	It("keeps an existing id", func() {
		rc := &model.RuleConfiguration{ID: 77, Name: "links", Weight: 5}
		updated, err := svc.Update(context.Background(), rc)
		Expect(err).NotTo(HaveOccurred())
		Expect(updated.ID).To(Equal(int64(77)))
	})

	It("enqueues a re-evaluation for every active template", func() {
		var gotStatus model.TemplateStatus
		templates.listByStatusFn = func(_ context.Context, status model.TemplateStatus) ([]model.EmailTemplate, error) {
			gotStatus = status
			return []model.EmailTemplate{{ID: 1}, {ID: 2}, {ID: 3}}, nil
		}

		var enqueued []queue.EvaluationMessage
		producer.enqueueFn = func(_ context.Context, msg queue.EvaluationMessage) error {
			enqueued = append(enqueued, msg)
			return nil
		}

		_, err := svc.Update(context.Background(), &model.RuleConfiguration{Name: "spam_indicators", Weight: 15})
		Expect(err).NotTo(HaveOccurred())

		Expect(gotStatus).To(Equal(model.TemplateStatusActive))
		Expect(enqueued).To(HaveLen(3))
		Expect(enqueued[0].TemplateID).To(Equal(int64(1)))
		Expect(enqueued[0].RuleName).To(Equal("spam_indicators"))
	})

	It("does not fail the update when enqueueing fails", func() {
		templates.listByStatusFn = func(_ context.Context, _ model.TemplateStatus) ([]model.EmailTemplate, error) {
			return []model.EmailTemplate{{ID: 1}}, nil
		}
		producer.enqueueFn = func(_ context.Context, _ queue.EvaluationMessage) error {
			return errors.New("redis down")
		}

		_, err := svc.Update(context.Background(), &model.RuleConfiguration{Name: "links", Weight: 5})
		Expect(err).NotTo(HaveOccurred())
	})

	It("fails the update when the upsert fails", func() {
		rules.upsertFn = func(_ context.Context, _ *model.RuleConfiguration) error {
			return errors.New("db down")
		}

		var enqueued int
		producer.enqueueFn = func(_ context.Context, _ queue.EvaluationMessage) error {
			enqueued++
			return nil
		}

		_, err := svc.Update(context.Background(), &model.RuleConfiguration{Name: "links", Weight: 5})
		Expect(err).To(HaveOccurred())
		Expect(enqueued).To(BeZero())
	})
})
