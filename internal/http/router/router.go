package router

import (
	"github.com/gin-gonic/gin"

	"proofcheck.app/server/internal/http/handler"
	"proofcheck.app/server/internal/service"
)

type RouterConfig struct {
	IsProduction bool
}

func SetupRoutes(router *gin.Engine, services *service.Services, cfg RouterConfig) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	{
		templateHandler := handler.NewTemplateHandler(services.Templates())
		qaHandler := handler.NewQAHandler(services.QA())
		TemplateRouter(v1.Group("/templates"), templateHandler, qaHandler)

		ReportRouter(v1.Group("/reports"), qaHandler)

		ruleHandler := handler.NewRuleHandler(services.RuleConfigs())
		RuleRouter(v1.Group("/rules"), ruleHandler)

		proofHandler := handler.NewProofHandler(services.Proofs())
		ProofRouter(v1.Group("/proofs"), proofHandler)
	}
}
