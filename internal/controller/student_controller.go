package controller

import (
	"strconv"

	"gradtrak_backend/internal/model"
	"gradtrak_backend/internal/service"
	"gradtrak_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StudentController struct {
	StudentService *service.StudentService
}

func NewStudentController(studentService *service.StudentService) *StudentController {
	return &StudentController{StudentService: studentService}
}

// @Summary Create a student
// @Tags students
// @Accept json
// @Produce json
// @Param body body model.Student true "student"
// @Success 201 {object} util.Response
// @Router /api/students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var student model.Student
	if err := ctx.ShouldBindJSON(&student); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if student.FirstName == "" || student.LastName == "" {
		util.BadRequest(ctx, "firstName and lastName are required")
		return
	}
	if err := c.StudentService.CreateStudent(ctx.Request.Context(), &student); err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, student)
}

// @Summary Get a student with courses
// @Tags students
// @Produce json
// @Param id path int true "student id"
// @Success 200 {object} util.Response
// @Router /api/students/{id} [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	student, err := c.StudentService.GetStudent(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, student)
}

// @Summary List students
// @Tags students
// @Produce json
// @Param grade query int false "grade level filter"
// @Param page query int false "page (default 1)"
// @Param limit query int false "page size (default 20)"
// @Success 200 {object} util.Response
// @Router /api/students [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	grade, ok := parseGrade(ctx)
	if !ok {
		return
	}
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 20
	}

	students, total, err := c.StudentService.ListStudents(grade, page, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: students, Total: total, Page: page, Limit: limit})
}

// @Summary Update a student
// @Tags students
// @Accept json
// @Produce json
// @Param id path int true "student id"
// @Param body body model.Student true "student"
// @Success 200 {object} util.Response
// @Router /api/students/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	existing, err := c.StudentService.GetStudent(id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	var body model.Student
	if err := ctx.ShouldBindJSON(&body); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	existing.FirstName = body.FirstName
	existing.LastName = body.LastName
	existing.Email = body.Email
	existing.GuardianEmail = body.GuardianEmail
	existing.GradeLevel = body.GradeLevel
	existing.GraduationYear = body.GraduationYear
	existing.Counselor = body.Counselor
	existing.Courses = nil

	if err := c.StudentService.UpdateStudent(ctx.Request.Context(), existing); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, existing)
}

// @Summary Delete a student
// @Tags students
// @Produce json
// @Param id path int true "student id"
// @Success 200 {object} util.Response
// @Router /api/students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	if _, err := c.StudentService.GetStudent(id); err != nil {
		respondError(ctx, err)
		return
	}
	if err := c.StudentService.DeleteStudent(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}

// @Summary Recompute a student's progress summary
// @Tags students
// @Produce json
// @Param id path int true "student id"
// @Success 200 {object} util.Response
// @Router /api/students/{id}/summary [get]
func (c *StudentController) GetSummary(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	summary, err := c.StudentService.EvaluateStudent(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, summary)
}

// @Summary Add a course to a student
// @Tags courses
// @Accept json
// @Produce json
// @Param id path int true "student id"
// @Param body body model.Course true "course"
// @Success 201 {object} util.Response
// @Router /api/students/{id}/courses [post]
func (c *StudentController) AddCourse(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	var course model.Course
	if err := ctx.ShouldBindJSON(&course); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if course.Name == "" {
		util.BadRequest(ctx, "course name is required")
		return
	}
	course.StudentID = id
	if err := c.StudentService.AddCourse(ctx.Request.Context(), &course); err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, course)
}

// @Summary Update a course
// @Tags courses
// @Accept json
// @Produce json
// @Param id path int true "course id"
// @Param body body model.Course true "course"
// @Success 200 {object} util.Response
// @Router /api/courses/{id} [put]
func (c *StudentController) UpdateCourse(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	existing, err := c.StudentService.GetCourse(id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	var body model.Course
	if err := ctx.ShouldBindJSON(&body); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	existing.Name = body.Name
	existing.Credits = body.Credits
	existing.CategoryID = body.CategoryID
	existing.Term = body.Term
	existing.Grade = body.Grade
	existing.IsDualCredit = body.IsDualCredit
	existing.DualCreditType = body.DualCreditType

	if err := c.StudentService.UpdateCourse(ctx.Request.Context(), existing); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, existing)
}

// @Summary Delete a course
// @Tags courses
// @Produce json
// @Param id path int true "course id"
// @Success 200 {object} util.Response
// @Router /api/courses/{id} [delete]
func (c *StudentController) DeleteCourse(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	if _, err := c.StudentService.GetCourse(id); err != nil {
		respondError(ctx, err)
		return
	}
	if err := c.StudentService.DeleteCourse(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}
