package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"proofcheck.app/server/internal/engine"
	"proofcheck.app/server/internal/http/dto"
	"proofcheck.app/server/internal/model"
	"proofcheck.app/server/internal/service"
	"proofcheck.app/server/internal/store"
)

type RuleHandler struct {
	ruleService service.RuleConfigService
}

func NewRuleHandler(ruleService service.RuleConfigService) *RuleHandler {
	return &RuleHandler{ruleService: ruleService}
}

func (h *RuleHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	configs, err := h.ruleService.List(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list rule configurations", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list rules"})
		return
	}

	c.JSON(http.StatusOK, dto.ToRuleListResponse(configs))
}

func (h *RuleHandler) GetByName(c *gin.Context) {
	ctx := c.Request.Context()
	name := c.Param("name")

	rc, err := h.ruleService.Get(ctx, name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "rule not found"})
			return
		}
		slog.ErrorContext(ctx, "failed to fetch rule configuration", "error", err, "rule_name", name)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch rule"})
		return
	}

	c.JSON(http.StatusOK, dto.ToRuleResponse(rc))
}

// Update upserts the configuration for a known rule name. Unknown names are
// rejected: the rule set is closed, configuration only tunes it.
func (h *RuleHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	name := c.Param("name")

	if !knownRule(name) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown rule name"})
		return
	}

	var req dto.UpdateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rc := &model.RuleConfiguration{
		Name:                 name,
		Description:          req.Description,
		Weight:               req.Weight,
		Priority:             req.Priority,
		OverrideEnabled:      req.OverrideEnabled,
		BusinessOverrideText: req.BusinessOverrideText,
		ErrorMessage:         req.ErrorMessage,
		Category:             req.Category,
	}

	updated, err := h.ruleService.Update(ctx, rc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update rule"})
		return
	}

	c.JSON(http.StatusOK, dto.ToRuleResponse(updated))
}

var ruleNames = func() map[string]bool {
	names := map[string]bool{}
	for _, r := range []engine.Rule{
		engine.RuleAltText, engine.RuleLinks, engine.RuleSubjectLine,
		engine.RulePreheader, engine.RuleTemplateMeta, engine.RuleWidth,
		engine.RuleBackgroundColor, engine.RuleImageDimensions, engine.RuleLongCopy,
		engine.RuleFontCompliance, engine.RuleCTAColorCompliance, engine.RuleSpacingCompliance,
		engine.RuleLogoPlacement, engine.RuleHeaderConsistency, engine.RuleFooterConsistency,
		engine.RuleSpamIndicators, engine.RuleComplexSentences, engine.RuleClarity, engine.RuleGrammar,
		engine.RuleAltTextQuality, engine.RuleSemanticHTML, engine.RuleLinkTextClarity, engine.RuleColorContrast,
	} {
		names[string(r)] = true
	}
	return names
}()

func knownRule(name string) bool {
	return ruleNames[name]
}
