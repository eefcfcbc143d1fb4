package controller

import (
	"errors"
	"net/http"
	"strconv"

	"gradtrak_backend/internal/credits"
	"gradtrak_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// respondError maps service sentinel errors onto HTTP statuses. Anything
// unrecognized is logged and returned as a 500.
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrStudentNotFound),
		errors.Is(err, util.ErrCourseNotFound),
		errors.Is(err, util.ErrCategoryNotFound),
		errors.Is(err, util.ErrNoteNotFound):
		util.Error(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, util.ErrCategoryInUse):
		util.Error(ctx, http.StatusConflict, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}

func parseID(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.Atoi(ctx.Param(name))
	if err != nil || id <= 0 {
		util.BadRequest(ctx, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// parsePeriod reads the optional ?period= query. Absent means "resolve from
// today's date" downstream.
func parsePeriod(ctx *gin.Context) (credits.Period, bool) {
	raw := ctx.Query("period")
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > credits.PeriodsPerYear {
		util.BadRequest(ctx, "period must be between 1 and 3")
		return 0, false
	}
	return credits.Period(n), true
}

func parseGrade(ctx *gin.Context) (int, bool) {
	raw := ctx.Query("grade")
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		util.BadRequest(ctx, "invalid grade")
		return 0, false
	}
	return n, true
}
