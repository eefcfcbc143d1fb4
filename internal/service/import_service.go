package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gradtrak_backend/internal/credits"
	"gradtrak_backend/internal/model"
	"gradtrak_backend/internal/repository"
)

// ImportService loads course spreadsheets exported from the SIS. Rows are
// validated individually; one bad row never aborts the import.
type ImportService struct {
	StudentRepo  *repository.StudentRepository
	CourseRepo   *repository.CourseRepository
	CategoryRepo *repository.CategoryRepository
	Reports      *ReportService
}

func NewImportService(
	studentRepo *repository.StudentRepository,
	courseRepo *repository.CourseRepository,
	categoryRepo *repository.CategoryRepository,
	reports *ReportService,
) *ImportService {
	return &ImportService{
		StudentRepo:  studentRepo,
		CourseRepo:   courseRepo,
		CategoryRepo: categoryRepo,
		Reports:      reports,
	}
}

// courseCSVHeader is the expected column order.
var courseCSVHeader = []string{
	"student_id", "course_name", "credits", "category", "term", "grade", "dual_credit", "dual_credit_type",
}

type RowError struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

type ImportResult struct {
	Created int        `json:"created"`
	Updated int        `json:"updated"`
	Skipped int        `json:"skipped"`
	Errors  []RowError `json:"errors"`
}

// ParseCourseRows reads a course CSV into course records. The category
// column accepts a numeric category id; a non-numeric value falls back to
// legacy case-insensitive name matching, resolved here once rather than at
// evaluation time. Unresolvable categories leave the course uncategorized
// and report a row error.
func ParseCourseRows(r io.Reader, categories []credits.Category) ([]model.Course, []RowError) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	knownCategories := make(map[uint]bool, len(categories))
	for _, cat := range categories {
		knownCategories[cat.ID] = true
	}

	var courses []model.Course
	var rowErrors []RowError
	line := 0

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			rowErrors = append(rowErrors, RowError{Line: line, Message: err.Error()})
			continue
		}

		// header row
		if line == 1 && len(record) > 0 && strings.EqualFold(strings.TrimSpace(record[0]), courseCSVHeader[0]) {
			continue
		}

		if len(record) < len(courseCSVHeader) {
			rowErrors = append(rowErrors, RowError{Line: line,
				Message: fmt.Sprintf("expected %d columns, got %d", len(courseCSVHeader), len(record))})
			continue
		}

		studentID, err := strconv.ParseUint(strings.TrimSpace(record[0]), 10, 32)
		if err != nil {
			rowErrors = append(rowErrors, RowError{Line: line, Message: "invalid student_id"})
			continue
		}

		name := strings.TrimSpace(record[1])
		if name == "" {
			rowErrors = append(rowErrors, RowError{Line: line, Message: "course_name is required"})
			continue
		}

		creditVal, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
		if err != nil {
			rowErrors = append(rowErrors, RowError{Line: line, Message: "invalid credits value"})
			continue
		}

		course := model.Course{
			StudentID: uint(studentID),
			Name:      name,
			Credits:   creditVal,
			Term:      strings.TrimSpace(record[4]),
			Grade:     strings.TrimSpace(record[5]),
		}

		if catField := strings.TrimSpace(record[3]); catField != "" {
			if id, err := strconv.ParseUint(catField, 10, 32); err == nil {
				// numeric ids get the same unknown-category treatment as names
				if catID := uint(id); knownCategories[catID] {
					course.CategoryID = &catID
				} else {
					rowErrors = append(rowErrors, RowError{Line: line,
						Message: fmt.Sprintf("unknown category %q, imported as uncategorized", catField)})
				}
			} else if cat := credits.ResolveCategoryByName(catField, categories); cat != nil {
				course.CategoryID = &cat.ID
			} else {
				rowErrors = append(rowErrors, RowError{Line: line,
					Message: fmt.Sprintf("unknown category %q, imported as uncategorized", catField)})
			}
		}

		course.IsDualCredit = parseBool(record[6])
		if course.IsDualCredit {
			course.DualCreditType = credits.ParseDualCreditType(record[7])
		}

		courses = append(courses, course)
	}

	return courses, rowErrors
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "y":
		return true
	}
	return false
}

// ImportCourses parses and upserts a course CSV. Rows referencing unknown
// students are skipped and reported.
func (s *ImportService) ImportCourses(ctx context.Context, r io.Reader) (*ImportResult, error) {
	categories, err := s.CategoryRepo.ListAll()
	if err != nil {
		return nil, err
	}

	courses, rowErrors := ParseCourseRows(r, model.EngineCategories(categories))

	result := &ImportResult{Errors: rowErrors}
	if result.Errors == nil {
		result.Errors = []RowError{}
	}

	for i := range courses {
		course := &courses[i]
		if _, err := s.StudentRepo.FindByID(course.StudentID); err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, RowError{
				Message: fmt.Sprintf("student %d not found, skipped %q", course.StudentID, course.Name),
			})
			continue
		}

		created, err := s.CourseRepo.Upsert(course)
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, RowError{
				Message: fmt.Sprintf("failed to save %q: %v", course.Name, err),
			})
			continue
		}
		if created {
			result.Created++
		} else {
			result.Updated++
		}
	}

	if result.Created+result.Updated > 0 {
		s.Reports.InvalidateCaches(ctx)
	}
	return result, nil
}
