package controller

import (
	"fmt"

	"gradtrak_backend/internal/service"

	"github.com/gin-gonic/gin"
)

type ExportController struct {
	ExportService *service.ExportService
}

func NewExportController(exportService *service.ExportService) *ExportController {
	return &ExportController{ExportService: exportService}
}

// @Summary Download a student's credit transcript as PDF
// @Tags exports
// @Produce application/pdf
// @Param id path int true "student id"
// @Success 200 {file} binary
// @Router /api/students/{id}/transcript [get]
func (c *ExportController) Transcript(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	data, filename, err := c.ExportService.TranscriptPDF(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(200, "application/pdf", data)
}

// @Summary Download the roster CSV with progress and risk per student
// @Tags exports
// @Produce text/csv
// @Param grade query int false "grade level filter"
// @Param period query int false "trimester 1-3 (default: resolved from today)"
// @Success 200 {file} binary
// @Router /api/exports/roster [get]
func (c *ExportController) Roster(ctx *gin.Context) {
	grade, ok := parseGrade(ctx)
	if !ok {
		return
	}
	period, ok := parsePeriod(ctx)
	if !ok {
		return
	}
	data, filename, err := c.ExportService.RosterCSV(ctx.Request.Context(), grade, period)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(200, "text/csv", data)
}
