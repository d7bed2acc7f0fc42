package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"proofcheck.app/server/internal/http/dto"
	"proofcheck.app/server/internal/service"
	"proofcheck.app/server/internal/store"
)

type TemplateHandler struct {
	templateService service.TemplateService
}

func NewTemplateHandler(templateService service.TemplateService) *TemplateHandler {
	return &TemplateHandler{templateService: templateService}
}

func (h *TemplateHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tmpl, err := h.templateService.Create(ctx, req.Name, req.HTMLContent, req.Metadata, req.Filename)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create template"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToTemplateDetailResponse(tmpl))
}

func (h *TemplateHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	limit := int32(50)
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = int32(parsed)
	}

	templates, err := h.templateService.List(ctx, limit)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list templates", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list templates"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTemplateListResponse(templates))
}

func (h *TemplateHandler) GetByID(c *gin.Context) {
	ctx := c.Request.Context()

	templateID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid template id"})
		return
	}

	tmpl, err := h.templateService.Get(ctx, templateID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "template not found"})
			return
		}
		slog.ErrorContext(ctx, "failed to fetch template", "error", err, "template_id", templateID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch template"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTemplateDetailResponse(tmpl))
}

func (h *TemplateHandler) Archive(c *gin.Context) {
	ctx := c.Request.Context()

	templateID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid template id"})
		return
	}

	if err := h.templateService.Archive(ctx, templateID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "template not found"})
			return
		}
		slog.ErrorContext(ctx, "failed to archive template", "error", err, "template_id", templateID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to archive template"})
		return
	}

	c.Status(http.StatusNoContent)
}
