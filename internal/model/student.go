package model

// swagger:model Student
type Student struct {
	BaseModel
	FirstName      string `gorm:"size:100;not null" json:"firstName"`
	LastName       string `gorm:"size:100;not null" json:"lastName"`
	Email          string `gorm:"size:100" json:"email"`
	GuardianEmail  string `gorm:"size:100" json:"guardianEmail"`
	GradeLevel     int    `gorm:"not null;index" json:"gradeLevel"` // 9-12
	GraduationYear int    `gorm:"not null" json:"graduationYear"`
	Counselor      string `gorm:"size:100" json:"counselor"`

	Courses []Course      `gorm:"foreignKey:StudentID" json:"courses,omitempty"`
	Notes   []ContactNote `gorm:"foreignKey:StudentID" json:"notes,omitempty"`
}

func (Student) TableName() string {
	return "students"
}

func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}
