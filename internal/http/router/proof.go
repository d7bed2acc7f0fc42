package router

import (
	"github.com/gin-gonic/gin"

	"proofcheck.app/server/internal/http/handler"
)

func ProofRouter(rg *gin.RouterGroup, h *handler.ProofHandler) {
	rg.GET("", h.List)
	rg.GET("/:id", h.GetByID)
}
