package controller

import (
	"gradtrak_backend/internal/service"
	"gradtrak_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ImportController struct {
	ImportService *service.ImportService
}

func NewImportController(importService *service.ImportService) *ImportController {
	return &ImportController{ImportService: importService}
}

// @Summary Import courses from a CSV file
// @Tags imports
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "course CSV"
// @Success 200 {object} util.Response
// @Router /api/imports/courses [post]
func (c *ImportController) ImportCourses(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		util.BadRequest(ctx, "unable to read uploaded file")
		return
	}
	defer file.Close()

	result, err := c.ImportService.ImportCourses(ctx.Request.Context(), file)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, result)
}
