package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"proofcheck.app/server/internal/service"
)

type ProofHandler struct {
	proofService service.ProofService
}

func NewProofHandler(proofService service.ProofService) *ProofHandler {
	return &ProofHandler{proofService: proofService}
}

func (h *ProofHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	proofs, err := h.proofService.List(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list proofs", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to fetch proofs"})
		return
	}

	c.JSON(http.StatusOK, proofs)
}

func (h *ProofHandler) GetByID(c *gin.Context) {
	ctx := c.Request.Context()
	proofID := c.Param("id")

	proof, err := h.proofService.Get(ctx, proofID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to fetch proof", "error", err, "proof_id", proofID)
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to fetch proof"})
		return
	}

	c.JSON(http.StatusOK, proof)
}
