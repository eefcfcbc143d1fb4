package app

import (
	"gradtrak_backend/docs"
	"gradtrak_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", c.health.Health)

	api := router.Group("/api")
	{
		students := api.Group("/students")
		{
			students.POST("", c.student.CreateStudent)
			students.GET("", c.student.ListStudents)
			students.GET("/:id", c.student.GetStudent)
			students.PUT("/:id", c.student.UpdateStudent)
			students.DELETE("/:id", c.student.DeleteStudent)

			students.GET("/:id/summary", c.student.GetSummary)
			students.GET("/:id/dashboard", c.dashboard.GetStudentDashboard)
			students.POST("/:id/email-summary", c.dashboard.EmailSummary)
			students.GET("/:id/transcript", c.export.Transcript)

			students.POST("/:id/courses", c.student.AddCourse)

			students.GET("/:id/notes", c.note.ListNotes)
			students.POST("/:id/notes", c.note.CreateNote)
		}

		courses := api.Group("/courses")
		{
			courses.PUT("/:id", c.student.UpdateCourse)
			courses.DELETE("/:id", c.student.DeleteCourse)
		}

		categories := api.Group("/categories")
		{
			categories.GET("", c.category.ListCategories)
			categories.POST("", c.category.CreateCategory)
			categories.PUT("/:id", c.category.UpdateCategory)
			categories.DELETE("/:id", c.category.DeleteCategory)
		}

		notes := api.Group("/notes")
		{
			notes.PUT("/:id", c.note.UpdateNote)
			notes.DELETE("/:id", c.note.DeleteNote)
		}

		reports := api.Group("/reports")
		{
			reports.GET("/at-risk", c.report.AtRisk)
			reports.GET("/pathways", c.report.Pathways)
		}

		api.GET("/exports/roster", c.export.Roster)
		api.POST("/imports/courses", c.importer.ImportCourses)
	}
}
