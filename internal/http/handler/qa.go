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

type QAHandler struct {
	qaService service.QAService
}

func NewQAHandler(qaService service.QAService) *QAHandler {
	return &QAHandler{qaService: qaService}
}

// Run executes the full evaluation pipeline for a template and returns the
// persisted report.
func (h *QAHandler) Run(c *gin.Context) {
	ctx := c.Request.Context()

	templateID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid template id"})
		return
	}

	report, err := h.qaService.Run(ctx, templateID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "template not found"})
			return
		}
		slog.ErrorContext(ctx, "qa run failed", "error", err, "template_id", templateID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "qa run failed"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToReportResponse(report))
}

func (h *QAHandler) GetReport(c *gin.Context) {
	ctx := c.Request.Context()

	reportID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report id"})
		return
	}

	report, err := h.qaService.GetReport(ctx, reportID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
			return
		}
		slog.ErrorContext(ctx, "failed to fetch report", "error", err, "report_id", reportID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToReportResponse(report))
}

// LatestReport returns the most recent report for a template.
func (h *QAHandler) LatestReport(c *gin.Context) {
	ctx := c.Request.Context()

	templateID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid template id"})
		return
	}

	report, err := h.qaService.LatestReport(ctx, templateID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no report for template"})
			return
		}
		slog.ErrorContext(ctx, "failed to fetch latest report", "error", err, "template_id", templateID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToReportResponse(report))
}
