package router

import (
	"github.com/gin-gonic/gin"

	"proofcheck.app/server/internal/http/handler"
)

func ReportRouter(rg *gin.RouterGroup, h *handler.QAHandler) {
	rg.GET("/:id", h.GetReport)
}
