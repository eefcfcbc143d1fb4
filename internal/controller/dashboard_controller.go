package controller

import (
	"gradtrak_backend/internal/service"
	"gradtrak_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardService *service.DashboardService
	MailService      *service.MailService
}

func NewDashboardController(dashboardService *service.DashboardService, mailService *service.MailService) *DashboardController {
	return &DashboardController{
		DashboardService: dashboardService,
		MailService:      mailService,
	}
}

// @Summary Student dashboard with progress, risk standing and recent notes
// @Tags dashboard
// @Produce json
// @Param id path int true "student id"
// @Param period query int false "trimester 1-3 (default: resolved from today)"
// @Success 200 {object} util.Response
// @Router /api/students/{id}/dashboard [get]
func (c *DashboardController) GetStudentDashboard(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	period, ok := parsePeriod(ctx)
	if !ok {
		return
	}
	dashboard, err := c.DashboardService.GetStudentDashboard(id, period)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, dashboard)
}

type emailSummaryRequest struct {
	// recipient selects a stored address; email overrides it
	Recipient string `json:"recipient"` // "student" or "guardian"
	Email     string `json:"email"`
	Name      string `json:"name"`
}

// @Summary Email a student's progress summary
// @Tags dashboard
// @Accept json
// @Produce json
// @Param id path int true "student id"
// @Param body body controller.emailSummaryRequest true "recipient"
// @Success 200 {object} util.Response
// @Router /api/students/{id}/email-summary [post]
func (c *DashboardController) EmailSummary(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	var req emailSummaryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	dashboard, err := c.DashboardService.GetStudentDashboard(id, 0)
	if err != nil {
		respondError(ctx, err)
		return
	}
	student := dashboard.Student

	toName, toEmail := req.Name, req.Email
	if toEmail == "" {
		switch req.Recipient {
		case "guardian":
			toName, toEmail = "Guardian of "+student.FullName(), student.GuardianEmail
		case "student", "":
			toName, toEmail = student.FullName(), student.Email
		default:
			util.BadRequest(ctx, "recipient must be student or guardian")
			return
		}
	}
	if toEmail == "" {
		util.BadRequest(ctx, "no email address on file for the selected recipient")
		return
	}

	err = c.MailService.SendProgressSummary(ctx.Request.Context(), student, dashboard.Summary, dashboard.Risk, toName, toEmail)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"sent": true, "to": toEmail})
}
