package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"gradtrak_backend/internal/config"
	"gradtrak_backend/internal/credits"
	"gradtrak_backend/internal/model"
	"gradtrak_backend/internal/repository"
	"gradtrak_backend/pkg/logger"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"
)

type ExportService struct {
	StudentRepo  *repository.StudentRepository
	CategoryRepo *repository.CategoryRepository
	Calendar     *PeriodResolver
	Storage      *StorageService
	School       config.SchoolConfig
}

func NewExportService(
	studentRepo *repository.StudentRepository,
	categoryRepo *repository.CategoryRepository,
	calendar *PeriodResolver,
	storage *StorageService,
	school config.SchoolConfig,
) *ExportService {
	return &ExportService{
		StudentRepo:  studentRepo,
		CategoryRepo: categoryRepo,
		Calendar:     calendar,
		Storage:      storage,
		School:       school,
	}
}

// TranscriptPDF renders a credit transcript for one student and archives a
// copy to storage. Returns the PDF bytes for direct download.
func (s *ExportService) TranscriptPDF(ctx context.Context, studentID uint) ([]byte, string, error) {
	student, err := s.StudentRepo.FindByIDWithCourses(studentID)
	if err != nil {
		return nil, "", err
	}
	categories, err := s.CategoryRepo.ListAll()
	if err != nil {
		return nil, "", err
	}

	engineCategories := model.EngineCategories(categories)
	summary := credits.Evaluate(model.EngineCourses(student.Courses), engineCategories)

	buf, err := buildTranscriptPDF(s.School, student, engineCategories, summary)
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("transcripts/%s.pdf", uuid.New().String())
	s.archive(ctx, filename, buf.Bytes(), "application/pdf")

	download := fmt.Sprintf("transcript_%s_%s.pdf",
		strings.ToLower(student.LastName), strings.ToLower(student.FirstName))
	return buf.Bytes(), download, nil
}

func buildTranscriptPDF(school config.SchoolConfig, student *model.Student, categories []credits.Category, summary credits.ProgressSummary) (*bytes.Buffer, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 8, school.Name)
	pdf.Ln(7)
	if school.District != "" {
		pdf.SetFont("Arial", "", 10)
		pdf.Cell(0, 5, school.District)
		pdf.Ln(5)
	}
	pdf.SetDrawColor(60, 60, 60)
	pdf.SetLineWidth(0.5)
	pdf.Line(10, pdf.GetY(), 200, pdf.GetY())
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 8, "CREDIT TRANSCRIPT")
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 5, fmt.Sprintf("Student: %s", student.FullName()))
	pdf.Ln(5)
	pdf.Cell(0, 5, fmt.Sprintf("Grade level: %d    Class of %d", student.GradeLevel, student.GraduationYear))
	pdf.Ln(5)
	pdf.Cell(0, 5, fmt.Sprintf("Generated: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	// Course table, term-sorted by the repository.
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(70, 6, "Course", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 6, "Term", "1", 0, "L", false, 0, "")
	pdf.CellFormat(20, 6, "Credits", "1", 0, "R", false, 0, "")
	pdf.CellFormat(20, 6, "Grade", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 6, "Dual Credit", "1", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 9)
	for _, course := range student.Courses {
		dual := ""
		if course.IsDualCredit {
			dual = string(course.DualCreditType)
			if dual == "" {
				dual = "yes"
			}
		}
		pdf.CellFormat(70, 6, course.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, course.Term, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 6, fmt.Sprintf("%.1f", course.Credits), "1", 0, "R", false, 0, "")
		pdf.CellFormat(20, 6, course.Grade, "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 6, dual, "1", 1, "C", false, 0, "")
	}
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 6, "Requirement progress")
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 9)
	for _, cat := range categories {
		earned := summary.CreditsByCategory[cat.ID]
		pdf.Cell(0, 5, fmt.Sprintf("%s: %.1f / %.1f", cat.Name, earned, cat.RequiredCredits))
		pdf.Ln(5)
	}
	pdf.Ln(2)
	pdf.SetFont("Arial", "B", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Total: %.1f of %.1f credits (%d%%)",
		summary.TotalEarned, summary.TotalRequired, summary.Percentage))
	pdf.Ln(6)

	if summary.TotalDualCredits > 0 {
		pdf.SetFont("Arial", "", 9)
		pdf.Cell(0, 5, fmt.Sprintf("Dual credit: %.1f total, %.1f associate-eligible, %.1f transfer-eligible",
			summary.TotalDualCredits, summary.AssociateCredits, summary.TransferCredits))
		pdf.Ln(5)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return &buf, nil
}

// RosterRow is one line of the roster CSV export.
type RosterRow struct {
	StudentID      uint
	Name           string
	GradeLevel     int
	GraduationYear int
	TotalEarned    float64
	Percentage     int
	Tier           credits.RiskTier
	CreditsBehind  float64
	Deficiencies   []credits.Deficiency
}

// RosterCSV builds a roster for one grade level (0 = all), one row per
// student with progress and risk standing.
func (s *ExportService) RosterCSV(ctx context.Context, gradeLevel int, period credits.Period) ([]byte, string, error) {
	if period == 0 {
		period = s.Calendar.Resolve(time.Now())
	}

	students, err := s.StudentRepo.List(gradeLevel)
	if err != nil {
		return nil, "", err
	}
	categories, err := s.CategoryRepo.ListAll()
	if err != nil {
		return nil, "", err
	}
	engineCategories := model.EngineCategories(categories)

	rows := make([]RosterRow, 0, len(students))
	for i := range students {
		student := &students[i]
		summary := credits.Evaluate(model.EngineCourses(student.Courses), engineCategories)
		risk := credits.Classify(student.GradeLevel, period, summary, summary.TotalRequired)

		rows = append(rows, RosterRow{
			StudentID:      student.ID,
			Name:           student.FullName(),
			GradeLevel:     student.GradeLevel,
			GraduationYear: student.GraduationYear,
			TotalEarned:    summary.TotalEarned,
			Percentage:     summary.Percentage,
			Tier:           risk.Tier,
			CreditsBehind:  risk.CreditsBehind,
			Deficiencies:   summary.Deficiencies,
		})
	}

	var buf bytes.Buffer
	if err := BuildRosterCSV(&buf, rows); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("rosters/%s.csv", uuid.New().String())
	s.archive(ctx, filename, buf.Bytes(), "text/csv")

	download := "roster.csv"
	if gradeLevel != 0 {
		download = fmt.Sprintf("roster_grade%d.csv", gradeLevel)
	}
	return buf.Bytes(), download, nil
}

// BuildRosterCSV writes roster rows as CSV. Split out so the format is
// testable without a database.
func BuildRosterCSV(w io.Writer, rows []RosterRow) error {
	cw := csv.NewWriter(w)

	header := []string{"student_id", "name", "grade_level", "graduation_year",
		"credits_earned", "percent_complete", "risk_tier", "credits_behind", "deficiencies"}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, row := range rows {
		defs := make([]string, 0, len(row.Deficiencies))
		for _, d := range row.Deficiencies {
			defs = append(defs, fmt.Sprintf("%s needs %.1f", d.CategoryName, d.Needed))
		}
		record := []string{
			fmt.Sprintf("%d", row.StudentID),
			row.Name,
			fmt.Sprintf("%d", row.GradeLevel),
			fmt.Sprintf("%d", row.GraduationYear),
			fmt.Sprintf("%.1f", row.TotalEarned),
			fmt.Sprintf("%d", row.Percentage),
			string(row.Tier),
			fmt.Sprintf("%.1f", row.CreditsBehind),
			strings.Join(defs, "; "),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// archive best-effort stores a copy of the export; failures are logged,
// not surfaced, since the caller already has the bytes.
func (s *ExportService) archive(ctx context.Context, filename string, data []byte, contentType string) {
	if s.Storage == nil {
		return
	}
	_, err := s.Storage.Provider.Upload(ctx, filename, bytes.NewReader(data), int64(len(data)), contentType)
	if err != nil {
		logger.Log.Warn("export archive failed",
			zap.String("filename", filename),
			zap.Error(err),
		)
	}
}
