package router

import (
	"github.com/gin-gonic/gin"

	"proofcheck.app/server/internal/http/handler"
)

func RuleRouter(rg *gin.RouterGroup, h *handler.RuleHandler) {
	rg.GET("", h.List)
	rg.GET("/:name", h.GetByName)
	rg.PUT("/:name", h.Update)
}
