package repository

import (
	"errors"

	"gradtrak_backend/internal/model"
	"gradtrak_backend/internal/util"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) Create(course *model.Course) error {
	return r.DB.Create(course).Error
}

func (r *CourseRepository) FindByID(id uint) (*model.Course, error) {
	var course model.Course
	err := r.DB.First(&course, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCourseNotFound
	}
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *CourseRepository) FindByStudent(studentID uint) ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.
		Where("student_id = ?", studentID).
		Order("term, name").
		Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) Update(course *model.Course) error {
	return r.DB.Save(course).Error
}

func (r *CourseRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Course{}, id).Error
}

// Upsert matches on (student, name, term) so re-importing the same
// spreadsheet updates rows instead of duplicating them.
func (r *CourseRepository) Upsert(course *model.Course) (created bool, err error) {
	var existing model.Course
	err = r.DB.
		Where("student_id = ? AND name = ? AND term = ?", course.StudentID, course.Name, course.Term).
		First(&existing).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return true, r.DB.Create(course).Error
	}
	if err != nil {
		return false, err
	}

	course.ID = existing.ID
	course.CreatedAt = existing.CreatedAt
	return false, r.DB.Save(course).Error
}

func (r *CourseRepository) CountByCategory(categoryID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Course{}).Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}
