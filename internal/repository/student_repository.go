package repository

import (
	"errors"

	"gradtrak_backend/internal/model"
	"gradtrak_backend/internal/util"

	"gorm.io/gorm"
)

type StudentRepository struct {
	DB *gorm.DB
}

func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{DB: db}
}

func (r *StudentRepository) Create(student *model.Student) error {
	return r.DB.Create(student).Error
}

func (r *StudentRepository) FindByID(id uint) (*model.Student, error) {
	var student model.Student
	err := r.DB.First(&student, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrStudentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// FindByIDWithCourses preloads the course list, term-sorted for display.
func (r *StudentRepository) FindByIDWithCourses(id uint) (*model.Student, error) {
	var student model.Student
	err := r.DB.
		Preload("Courses", func(db *gorm.DB) *gorm.DB {
			return db.Order("term, name")
		}).
		First(&student, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrStudentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// List returns students, optionally filtered by grade level (0 = all),
// with their courses preloaded for evaluation.
func (r *StudentRepository) List(gradeLevel int) ([]model.Student, error) {
	var students []model.Student
	query := r.DB.Preload("Courses").Order("last_name, first_name")
	if gradeLevel != 0 {
		query = query.Where("grade_level = ?", gradeLevel)
	}
	err := query.Find(&students).Error
	return students, err
}

func (r *StudentRepository) ListPaged(gradeLevel, page, limit int) ([]model.Student, int64, error) {
	var students []model.Student
	var total int64

	query := r.DB.Model(&model.Student{})
	if gradeLevel != 0 {
		query = query.Where("grade_level = ?", gradeLevel)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("last_name, first_name").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&students).Error
	return students, total, err
}

func (r *StudentRepository) Update(student *model.Student) error {
	return r.DB.Save(student).Error
}

func (r *StudentRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Student{}, id).Error
}
