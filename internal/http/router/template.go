package router

import (
	"github.com/gin-gonic/gin"

	"proofcheck.app/server/internal/http/handler"
)

// TemplateRouter sets up template routes, including the per-template QA run
// and latest-report lookups.
func TemplateRouter(rg *gin.RouterGroup, h *handler.TemplateHandler, qa *handler.QAHandler) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.GET("/:id", h.GetByID)
	rg.DELETE("/:id", h.Archive)

	rg.POST("/:id/qa", qa.Run)
	rg.GET("/:id/report", qa.LatestReport)
}
