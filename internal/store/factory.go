package store

import (
	"proofcheck.app/server/core/db"
)

type Stores struct {
	q db.Querier
}

func NewStores(q db.Querier) *Stores {
	return &Stores{q: q}
}

func (s *Stores) Templates() TemplateStore {
	return newTemplateStore(s.q)
}

func (s *Stores) Reports() ReportStore {
	return newReportStore(s.q)
}

func (s *Stores) Uploads() UploadStore {
	return newUploadStore(s.q)
}

func (s *Stores) RuleConfigs() RuleConfigStore {
	return newRuleConfigStore(s.q)
}
