package service

import (
	"context"

	"gradtrak_backend/internal/credits"
	"gradtrak_backend/internal/model"
	"gradtrak_backend/internal/repository"
	"gradtrak_backend/internal/util"
)

// StudentService owns student, course and category CRUD. Every mutation
// invalidates the cached reports, since summaries are views over the
// course set.
type StudentService struct {
	StudentRepo  *repository.StudentRepository
	CourseRepo   *repository.CourseRepository
	CategoryRepo *repository.CategoryRepository
	Reports      *ReportService
}

func NewStudentService(
	studentRepo *repository.StudentRepository,
	courseRepo *repository.CourseRepository,
	categoryRepo *repository.CategoryRepository,
	reports *ReportService,
) *StudentService {
	return &StudentService{
		StudentRepo:  studentRepo,
		CourseRepo:   courseRepo,
		CategoryRepo: categoryRepo,
		Reports:      reports,
	}
}

func (s *StudentService) CreateStudent(ctx context.Context, student *model.Student) error {
	err := s.StudentRepo.Create(student)
	if err == nil {
		s.Reports.InvalidateCaches(ctx)
	}
	return err
}

func (s *StudentService) GetStudent(id uint) (*model.Student, error) {
	return s.StudentRepo.FindByIDWithCourses(id)
}

func (s *StudentService) ListStudents(gradeLevel, page, limit int) ([]model.Student, int64, error) {
	return s.StudentRepo.ListPaged(gradeLevel, page, limit)
}

func (s *StudentService) UpdateStudent(ctx context.Context, student *model.Student) error {
	err := s.StudentRepo.Update(student)
	if err == nil {
		s.Reports.InvalidateCaches(ctx)
	}
	return err
}

func (s *StudentService) DeleteStudent(ctx context.Context, id uint) error {
	err := s.StudentRepo.Delete(id)
	if err == nil {
		s.Reports.InvalidateCaches(ctx)
	}
	return err
}

func (s *StudentService) AddCourse(ctx context.Context, course *model.Course) error {
	if _, err := s.StudentRepo.FindByID(course.StudentID); err != nil {
		return err
	}
	// unknown category ids degrade to uncategorized at evaluation time,
	// but reject them at the write boundary where the caller can fix them
	if course.CategoryID != nil {
		if _, err := s.CategoryRepo.FindByID(*course.CategoryID); err != nil {
			return err
		}
	}
	err := s.CourseRepo.Create(course)
	if err == nil {
		s.Reports.InvalidateCaches(ctx)
	}
	return err
}

func (s *StudentService) UpdateCourse(ctx context.Context, course *model.Course) error {
	if course.CategoryID != nil {
		if _, err := s.CategoryRepo.FindByID(*course.CategoryID); err != nil {
			return err
		}
	}
	err := s.CourseRepo.Update(course)
	if err == nil {
		s.Reports.InvalidateCaches(ctx)
	}
	return err
}

func (s *StudentService) GetCourse(id uint) (*model.Course, error) {
	return s.CourseRepo.FindByID(id)
}

func (s *StudentService) DeleteCourse(ctx context.Context, id uint) error {
	err := s.CourseRepo.Delete(id)
	if err == nil {
		s.Reports.InvalidateCaches(ctx)
	}
	return err
}

func (s *StudentService) ListCategories() ([]model.CreditCategory, error) {
	return s.CategoryRepo.ListAll()
}

func (s *StudentService) GetCategory(id uint) (*model.CreditCategory, error) {
	return s.CategoryRepo.FindByID(id)
}

func (s *StudentService) CreateCategory(ctx context.Context, category *model.CreditCategory) error {
	err := s.CategoryRepo.Create(category)
	if err == nil {
		s.Reports.InvalidateCaches(ctx)
	}
	return err
}

func (s *StudentService) UpdateCategory(ctx context.Context, category *model.CreditCategory) error {
	err := s.CategoryRepo.Update(category)
	if err == nil {
		s.Reports.InvalidateCaches(ctx)
	}
	return err
}

// DeleteCategory refuses to drop a category that courses still reference;
// silently orphaning rows would shift credits out of requirement buckets.
func (s *StudentService) DeleteCategory(ctx context.Context, id uint) error {
	count, err := s.CourseRepo.CountByCategory(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return util.ErrCategoryInUse
	}
	err = s.CategoryRepo.Delete(id)
	if err == nil {
		s.Reports.InvalidateCaches(ctx)
	}
	return err
}

// EvaluateStudent recomputes the progress summary for one student against
// the current requirement table.
func (s *StudentService) EvaluateStudent(studentID uint) (credits.ProgressSummary, error) {
	student, err := s.StudentRepo.FindByIDWithCourses(studentID)
	if err != nil {
		return credits.ProgressSummary{}, err
	}
	categories, err := s.CategoryRepo.ListAll()
	if err != nil {
		return credits.ProgressSummary{}, err
	}
	return credits.Evaluate(model.EngineCourses(student.Courses), model.EngineCategories(categories)), nil
}
