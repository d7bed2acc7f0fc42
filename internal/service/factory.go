package service

import (
	"proofcheck.app/server/internal/connector"
	"proofcheck.app/server/internal/engine"
	"proofcheck.app/server/internal/queue"
	"proofcheck.app/server/internal/store"
)

type ServicesConfig struct {
	Stores      *store.Stores
	TxRunner    TxRunner
	Producer    queue.Producer
	EmailOnAcid *connector.EmailOnAcid
	EngineCfg   engine.Config
}

type Services struct {
	cfg ServicesConfig
}

func NewServices(cfg ServicesConfig) *Services {
	return &Services{cfg: cfg}
}

func (s *Services) Templates() TemplateService {
	return NewTemplateService(s.cfg.Stores.Templates(), s.cfg.TxRunner)
}

func (s *Services) QA() QAService {
	return NewQAService(s.cfg.Stores.Templates(), s.cfg.Stores.Reports(), s.cfg.Stores.RuleConfigs(), s.cfg.EngineCfg)
}

func (s *Services) RuleConfigs() RuleConfigService {
	return NewRuleConfigService(s.cfg.Stores.RuleConfigs(), s.cfg.Stores.Templates(), s.cfg.Producer)
}

func (s *Services) Proofs() ProofService {
	return NewProofService(s.cfg.EmailOnAcid)
}
