package connector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"proofcheck.app/server/core/config"
	"proofcheck.app/server/internal/engine"
)

// Proof is one rendered email proof fetched from Email on Acid.
type Proof struct {
	ID          string          `json:"id"`
	Subject     string          `json:"subject,omitempty"`
	HTMLContent string          `json:"html_content,omitempty"`
	Metadata    engine.Metadata `json:"metadata"`
	CreatedAt   string          `json:"created_at,omitempty"`
}

// EmailOnAcid fetches email proofs over the Email on Acid REST API using
// basic auth. When credentials are not configured every call degrades to
// empty results instead of erroring, so the rest of the API keeps working in
// environments without an account.
type EmailOnAcid struct {
	cfg    config.EmailOnAcidConfig
	client *http.Client
}

func NewEmailOnAcid(cfg config.EmailOnAcidConfig) *EmailOnAcid {
	return &EmailOnAcid{
		cfg: cfg,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *EmailOnAcid) Enabled() bool {
	return c.cfg.Enabled()
}

// ListProofs fetches the available email proofs.
func (c *EmailOnAcid) ListProofs(ctx context.Context) ([]Proof, error) {
	if !c.Enabled() {
		slog.DebugContext(ctx, "email on acid not configured, returning empty proof list")
		return []Proof{}, nil
	}

	var proofs []Proof
	if err := c.get(ctx, "/email/tests", &proofs); err != nil {
		return nil, fmt.Errorf("listing proofs: %w", err)
	}
	return proofs, nil
}

// GetProof fetches the full HTML and metadata for one proof.
func (c *EmailOnAcid) GetProof(ctx context.Context, id string) (*Proof, error) {
	if !c.Enabled() {
		slog.DebugContext(ctx, "email on acid not configured, returning empty proof", "proof_id", id)
		return &Proof{ID: id, Metadata: engine.Metadata{Locale: "en-US"}}, nil
	}

	var proof Proof
	if err := c.get(ctx, "/email/tests/"+url.PathEscape(id), &proof); err != nil {
		return nil, fmt.Errorf("fetching proof %s: %w", id, err)
	}
	if proof.ID == "" {
		proof.ID = id
	}
	return &proof, nil
}

func (c *EmailOnAcid) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+path, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.SetBasicAuth(c.cfg.APIKey, c.cfg.Password)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
