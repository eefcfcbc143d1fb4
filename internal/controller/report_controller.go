package controller

import (
	"gradtrak_backend/internal/service"
	"gradtrak_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	ReportService *service.ReportService
}

func NewReportController(reportService *service.ReportService) *ReportController {
	return &ReportController{ReportService: reportService}
}

// @Summary At-risk report for the caseload, highest risk first
// @Tags reports
// @Produce json
// @Param grade query int false "grade level filter"
// @Param period query int false "trimester 1-3 (default: resolved from today)"
// @Success 200 {object} util.Response
// @Router /api/reports/at-risk [get]
func (c *ReportController) AtRisk(ctx *gin.Context) {
	grade, ok := parseGrade(ctx)
	if !ok {
		return
	}
	period, ok := parsePeriod(ctx)
	if !ok {
		return
	}
	report, err := c.ReportService.AtRiskReport(ctx.Request.Context(), grade, period)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, report)
}

// @Summary Dual-credit pathway report
// @Tags reports
// @Produce json
// @Param grade query int false "grade level filter"
// @Success 200 {object} util.Response
// @Router /api/reports/pathways [get]
func (c *ReportController) Pathways(ctx *gin.Context) {
	grade, ok := parseGrade(ctx)
	if !ok {
		return
	}
	report, err := c.ReportService.PathwayReport(ctx.Request.Context(), grade)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, report)
}
