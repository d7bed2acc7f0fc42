package service

import (
	"context"
	"fmt"

	"proofcheck.app/server/internal/connector"
)

type ProofService interface {
	List(ctx context.Context) ([]connector.Proof, error)
	Get(ctx context.Context, proofID string) (*connector.Proof, error)
}

type proofService struct {
	eoa *connector.EmailOnAcid
}

func NewProofService(eoa *connector.EmailOnAcid) ProofService {
	return &proofService{eoa: eoa}
}

func (s *proofService) List(ctx context.Context) ([]connector.Proof, error) {
	proofs, err := s.eoa.ListProofs(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing proofs: %w", err)
	}
	return proofs, nil
}

func (s *proofService) Get(ctx context.Context, proofID string) (*connector.Proof, error) {
	proof, err := s.eoa.GetProof(ctx, proofID)
	if err != nil {
		return nil, fmt.Errorf("fetching proof: %w", err)
	}
	return proof, nil
}
