package service

import (
	"time"

	"gradtrak_backend/internal/credits"
	"gradtrak_backend/internal/model"
	"gradtrak_backend/internal/repository"
	"gradtrak_backend/pkg/monitoring"
)

type DashboardService struct {
	StudentRepo  *repository.StudentRepository
	CategoryRepo *repository.CategoryRepository
	NoteRepo     *repository.NoteRepository
	Calendar     *PeriodResolver
}

func NewDashboardService(
	studentRepo *repository.StudentRepository,
	categoryRepo *repository.CategoryRepository,
	noteRepo *repository.NoteRepository,
	calendar *PeriodResolver,
) *DashboardService {
	return &DashboardService{
		StudentRepo:  studentRepo,
		CategoryRepo: categoryRepo,
		NoteRepo:     noteRepo,
		Calendar:     calendar,
	}
}

// CategoryProgress is a display row for one requirement bucket. Percentage
// is capped at 100 for progress bars; the summary itself is not capped.
type CategoryProgress struct {
	CategoryID uint    `json:"categoryId"`
	Name       string  `json:"name"`
	Earned     float64 `json:"earned"`
	Required   float64 `json:"required"`
	Percentage int     `json:"percentage"`
}

type TermGroup struct {
	Term    string         `json:"term"`
	Courses []model.Course `json:"courses"`
}

type StudentDashboard struct {
	Student          *model.Student          `json:"student"`
	Period           credits.Period          `json:"period"`
	Summary          credits.ProgressSummary `json:"summary"`
	Risk             credits.RiskAssessment  `json:"risk"`
	Alert            bool                    `json:"alert"`
	CategoryProgress []CategoryProgress      `json:"categoryProgress"`
	CoursesByTerm    []TermGroup             `json:"coursesByTerm"`
	RecentNotes      []model.ContactNote     `json:"recentNotes"`
}

// GetStudentDashboard recomputes the progress summary and risk assessment
// from the current course set. Nothing here is persisted; edits to courses
// are reflected on the next read.
func (s *DashboardService) GetStudentDashboard(studentID uint, period credits.Period) (*StudentDashboard, error) {
	student, err := s.StudentRepo.FindByIDWithCourses(studentID)
	if err != nil {
		return nil, err
	}

	categories, err := s.CategoryRepo.ListAll()
	if err != nil {
		return nil, err
	}

	if period == 0 {
		period = s.Calendar.Resolve(time.Now())
	}

	engineCategories := model.EngineCategories(categories)
	summary := credits.Evaluate(model.EngineCourses(student.Courses), engineCategories)
	monitoring.EvaluationCounter.Inc()

	risk := credits.Classify(student.GradeLevel, period, summary, summary.TotalRequired)

	notes, err := s.NoteRepo.ListByStudent(studentID, 5)
	if err != nil {
		return nil, err
	}

	dashboard := &StudentDashboard{
		Student:          student,
		Period:           period,
		Summary:          summary,
		Risk:             risk,
		Alert:            risk.Alert(),
		CategoryProgress: categoryRows(summary, engineCategories),
		CoursesByTerm:    groupByTerm(student.Courses),
		RecentNotes:      notes,
	}

	// avoid duplicating the course list inside the student payload
	dashboard.Student.Courses = nil

	return dashboard, nil
}

func categoryRows(summary credits.ProgressSummary, categories []credits.Category) []CategoryProgress {
	rows := make([]CategoryProgress, 0, len(categories))
	for _, cat := range categories {
		earned := summary.CreditsByCategory[cat.ID]
		pct := 0
		if cat.RequiredCredits > 0 {
			pct = int(earned / cat.RequiredCredits * 100)
			if pct > 100 {
				pct = 100
			}
			if pct < 0 {
				pct = 0
			}
		}
		rows = append(rows, CategoryProgress{
			CategoryID: cat.ID,
			Name:       cat.Name,
			Earned:     earned,
			Required:   cat.RequiredCredits,
			Percentage: pct,
		})
	}
	return rows
}

// groupByTerm keeps the repository's term ordering while bucketing courses
// for display.
func groupByTerm(courses []model.Course) []TermGroup {
	var groups []TermGroup
	index := make(map[string]int)

	for _, course := range courses {
		term := course.Term
		if term == "" {
			term = "Unassigned"
		}
		i, ok := index[term]
		if !ok {
			i = len(groups)
			index[term] = i
			groups = append(groups, TermGroup{Term: term})
		}
		groups[i].Courses = append(groups[i].Courses, course)
	}
	return groups
}
