package model

import "gradtrak_backend/internal/credits"

// swagger:model Course
type Course struct {
	BaseModel
	StudentID      uint                   `gorm:"not null;index" json:"studentId"`
	Name           string                 `gorm:"size:200;not null" json:"name"`
	Credits        float64                `gorm:"not null;default:0" json:"credits"`
	CategoryID     *uint                  `gorm:"index" json:"categoryId"` // nil = uncategorized
	Term           string                 `gorm:"size:50" json:"term"`
	Grade          string                 `gorm:"size:5" json:"grade"` // letter grade, informational only
	IsDualCredit   bool                   `gorm:"default:false" json:"isDualCredit"`
	DualCreditType credits.DualCreditType `gorm:"size:20;default:''" json:"dualCreditType"`
}

func (Course) TableName() string {
	return "courses"
}

// Engine converts the persisted record into the evaluator's input shape.
func (c *Course) Engine() credits.Course {
	return credits.Course{
		ID:             c.ID,
		Name:           c.Name,
		Credits:        c.Credits,
		CategoryID:     c.CategoryID,
		Term:           c.Term,
		Grade:          c.Grade,
		IsDualCredit:   c.IsDualCredit,
		DualCreditType: c.DualCreditType,
	}
}

// EngineCourses maps a course list into evaluator inputs.
func EngineCourses(courses []Course) []credits.Course {
	out := make([]credits.Course, len(courses))
	for i := range courses {
		out[i] = courses[i].Engine()
	}
	return out
}
