package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"proofcheck.app/server/core/db"
	"proofcheck.app/server/internal/model"
)

type ruleConfigStore struct {
	q db.Querier
}

func newRuleConfigStore(q db.Querier) RuleConfigStore {
	return &ruleConfigStore{q: q}
}

const ruleConfigColumns = `id, name, description, weight, priority, override_enabled,
	business_override_text, error_message, category, created_at, updated_at`

func (s *ruleConfigStore) GetByName(ctx context.Context, name string) (*model.RuleConfiguration, error) {
	row := s.q.QueryRow(ctx,
		`SELECT `+ruleConfigColumns+` FROM rule_configurations WHERE name = $1`, name)

	rc, err := scanRuleConfig(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rc, nil
}

// Upsert inserts or replaces the configuration keyed by rule name. Rule names
// are the closed engine rule set, so name is the natural conflict key.
func (s *ruleConfigStore) Upsert(ctx context.Context, rc *model.RuleConfiguration) error {
	row := s.q.QueryRow(ctx,
		`INSERT INTO rule_configurations
		   (id, name, description, weight, priority, override_enabled,
		    business_override_text, error_message, category)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (name) DO UPDATE SET
		   description = EXCLUDED.description,
		   weight = EXCLUDED.weight,
		   priority = EXCLUDED.priority,
		   override_enabled = EXCLUDED.override_enabled,
		   business_override_text = EXCLUDED.business_override_text,
		   error_message = EXCLUDED.error_message,
		   category = EXCLUDED.category,
		   updated_at = NOW()
		 RETURNING id, created_at, updated_at`,
		rc.ID, rc.Name, rc.Description, rc.Weight, rc.Priority, rc.OverrideEnabled,
		rc.BusinessOverrideText, rc.ErrorMessage, rc.Category)

	return row.Scan(&rc.ID, &rc.CreatedAt, &rc.UpdatedAt)
}

func (s *ruleConfigStore) List(ctx context.Context) ([]model.RuleConfiguration, error) {
	rows, err := s.q.Query(ctx,
		`SELECT `+ruleConfigColumns+` FROM rule_configurations ORDER BY category, priority, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.RuleConfiguration
	for rows.Next() {
		rc, err := scanRuleConfig(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rc)
	}
	return out, rows.Err()
}

func scanRuleConfig(row pgx.Row) (*model.RuleConfiguration, error) {
	var rc model.RuleConfiguration
	if err := row.Scan(&rc.ID, &rc.Name, &rc.Description, &rc.Weight, &rc.Priority,
		&rc.OverrideEnabled, &rc.BusinessOverrideText, &rc.ErrorMessage, &rc.Category,
		&rc.CreatedAt, &rc.UpdatedAt); err != nil {
		return nil, err
	}
	return &rc, nil
}
