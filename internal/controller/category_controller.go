package controller

import (
	"gradtrak_backend/internal/model"
	"gradtrak_backend/internal/service"
	"gradtrak_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	StudentService *service.StudentService
}

func NewCategoryController(studentService *service.StudentService) *CategoryController {
	return &CategoryController{StudentService: studentService}
}

// @Summary List credit categories
// @Tags categories
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/categories [get]
func (c *CategoryController) ListCategories(ctx *gin.Context) {
	categories, err := c.StudentService.ListCategories()
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, categories)
}

// @Summary Create a credit category
// @Tags categories
// @Accept json
// @Produce json
// @Param body body model.CreditCategory true "category"
// @Success 201 {object} util.Response
// @Router /api/categories [post]
func (c *CategoryController) CreateCategory(ctx *gin.Context) {
	var category model.CreditCategory
	if err := ctx.ShouldBindJSON(&category); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if category.Name == "" {
		util.BadRequest(ctx, "name is required")
		return
	}
	if category.RequiredCredits < 0 {
		util.BadRequest(ctx, "requiredCredits must not be negative")
		return
	}
	if err := c.StudentService.CreateCategory(ctx.Request.Context(), &category); err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, category)
}

// @Summary Update a credit category
// @Tags categories
// @Accept json
// @Produce json
// @Param id path int true "category id"
// @Param body body model.CreditCategory true "category"
// @Success 200 {object} util.Response
// @Router /api/categories/{id} [put]
func (c *CategoryController) UpdateCategory(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	existing, err := c.StudentService.GetCategory(id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	var body model.CreditCategory
	if err := ctx.ShouldBindJSON(&body); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if body.RequiredCredits < 0 {
		util.BadRequest(ctx, "requiredCredits must not be negative")
		return
	}
	existing.Name = body.Name
	existing.RequiredCredits = body.RequiredCredits
	existing.DisplayOrder = body.DisplayOrder

	if err := c.StudentService.UpdateCategory(ctx.Request.Context(), existing); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, existing)
}

// @Summary Delete a credit category
// @Tags categories
// @Produce json
// @Param id path int true "category id"
// @Success 200 {object} util.Response
// @Failure 409 {object} util.Response "category still referenced by courses"
// @Router /api/categories/{id} [delete]
func (c *CategoryController) DeleteCategory(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	if err := c.StudentService.DeleteCategory(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}
