package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"gradtrak_backend/internal/config"
	"gradtrak_backend/internal/credits"
	"gradtrak_backend/internal/model"
	"gradtrak_backend/internal/repository"
	"gradtrak_backend/pkg/logger"
	"gradtrak_backend/pkg/monitoring"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const reportCacheTTL = 5 * time.Minute

type ReportService struct {
	StudentRepo  *repository.StudentRepository
	CategoryRepo *repository.CategoryRepository
	Calendar     *PeriodResolver
	Redis        *redis.Client
	Pathways     config.PathwaysConfig
}

func NewReportService(
	studentRepo *repository.StudentRepository,
	categoryRepo *repository.CategoryRepository,
	calendar *PeriodResolver,
	rdb *redis.Client,
	pathways config.PathwaysConfig,
) *ReportService {
	return &ReportService{
		StudentRepo:  studentRepo,
		CategoryRepo: categoryRepo,
		Calendar:     calendar,
		Redis:        rdb,
		Pathways:     pathways,
	}
}

// AtRiskEntry is one caseload row in the at-risk report.
type AtRiskEntry struct {
	StudentID      uint                   `json:"studentId"`
	Name           string                 `json:"name"`
	GradeLevel     int                    `json:"gradeLevel"`
	GraduationYear int                    `json:"graduationYear"`
	Counselor      string                 `json:"counselor"`
	Summary        struct {
		TotalEarned float64 `json:"totalEarned"`
		Percentage  int     `json:"percentage"`
	} `json:"summary"`
	Risk         credits.RiskAssessment `json:"risk"`
	Deficiencies []credits.Deficiency   `json:"deficiencies"`
}

type AtRiskReport struct {
	Period        credits.Period           `json:"period"`
	GeneratedAt   time.Time                `json:"generatedAt"`
	TotalStudents int                      `json:"totalStudents"`
	TierCounts    map[credits.RiskTier]int `json:"tierCounts"`
	Students      []AtRiskEntry            `json:"students"`
}

// AtRiskReport evaluates the whole caseload (optionally one grade level) and
// returns students who are behind expectation, highest risk first. Results
// are cached briefly in Redis; course mutations invalidate the cache.
func (s *ReportService) AtRiskReport(ctx context.Context, gradeLevel int, period credits.Period) (*AtRiskReport, error) {
	if period == 0 {
		period = s.Calendar.Resolve(time.Now())
	}

	cacheKey := fmt.Sprintf("report:atrisk:g%d:p%d", gradeLevel, period)
	if cached := s.fromCache(ctx, cacheKey); cached != nil {
		var report AtRiskReport
		if err := json.Unmarshal(cached, &report); err == nil {
			return &report, nil
		}
	}

	students, err := s.StudentRepo.List(gradeLevel)
	if err != nil {
		return nil, err
	}

	categories, err := s.CategoryRepo.ListAll()
	if err != nil {
		return nil, err
	}
	engineCategories := model.EngineCategories(categories)

	report := &AtRiskReport{
		Period:        period,
		GeneratedAt:   time.Now(),
		TotalStudents: len(students),
		TierCounts: map[credits.RiskTier]int{
			credits.TierCritical: 0,
			credits.TierAtRisk:   0,
			credits.TierWatch:    0,
			credits.TierOnTrack:  0,
		},
		Students: []AtRiskEntry{},
	}

	for i := range students {
		student := &students[i]
		summary := credits.Evaluate(model.EngineCourses(student.Courses), engineCategories)
		monitoring.EvaluationCounter.Inc()

		risk := credits.Classify(student.GradeLevel, period, summary, summary.TotalRequired)
		report.TierCounts[risk.Tier]++

		if !risk.Alert() {
			continue
		}

		entry := AtRiskEntry{
			StudentID:      student.ID,
			Name:           student.FullName(),
			GradeLevel:     student.GradeLevel,
			GraduationYear: student.GraduationYear,
			Counselor:      student.Counselor,
			Risk:           risk,
			Deficiencies:   summary.Deficiencies,
		}
		entry.Summary.TotalEarned = summary.TotalEarned
		entry.Summary.Percentage = summary.Percentage
		report.Students = append(report.Students, entry)
	}

	sort.SliceStable(report.Students, func(i, j int) bool {
		a, b := report.Students[i].Risk, report.Students[j].Risk
		if a.Tier.Severity() != b.Tier.Severity() {
			return a.Tier.Severity() > b.Tier.Severity()
		}
		return a.CreditsBehind > b.CreditsBehind
	})

	s.toCache(ctx, cacheKey, report)
	return report, nil
}

// PathwayEntry is one student's dual-credit standing in the CTE report.
type PathwayEntry struct {
	StudentID        uint                    `json:"studentId"`
	Name             string                  `json:"name"`
	GradeLevel       int                     `json:"gradeLevel"`
	TotalDualCredits float64                 `json:"totalDualCredits"`
	Associate        credits.PathwayProgress `json:"associate"`
	Transfer         credits.PathwayProgress `json:"transfer"`
}

type PathwayReport struct {
	GeneratedAt time.Time             `json:"generatedAt"`
	Rules       []credits.PathwayRule `json:"rules"`
	Students    []PathwayEntry        `json:"students"`
}

// PathwayReport lists dual-credit attainment for every student with any
// dual-credit coursework.
func (s *ReportService) PathwayReport(ctx context.Context, gradeLevel int) (*PathwayReport, error) {
	cacheKey := fmt.Sprintf("report:pathways:g%d", gradeLevel)
	if cached := s.fromCache(ctx, cacheKey); cached != nil {
		var report PathwayReport
		if err := json.Unmarshal(cached, &report); err == nil {
			return &report, nil
		}
	}

	students, err := s.StudentRepo.List(gradeLevel)
	if err != nil {
		return nil, err
	}

	associateRule := credits.PathwayRule{Name: "Associate", RequiredCredits: s.Pathways.AssociateCredits}
	transferRule := credits.PathwayRule{Name: "Transfer", RequiredCredits: s.Pathways.TransferCredits}

	report := &PathwayReport{
		GeneratedAt: time.Now(),
		Rules:       []credits.PathwayRule{associateRule, transferRule},
		Students:    []PathwayEntry{},
	}

	for i := range students {
		student := &students[i]
		// categories are irrelevant to dual-credit subtotals
		summary := credits.Evaluate(model.EngineCourses(student.Courses), nil)
		monitoring.EvaluationCounter.Inc()

		if summary.TotalDualCredits == 0 {
			continue
		}

		report.Students = append(report.Students, PathwayEntry{
			StudentID:        student.ID,
			Name:             student.FullName(),
			GradeLevel:       student.GradeLevel,
			TotalDualCredits: summary.TotalDualCredits,
			Associate:        credits.AssessPathway(summary.AssociateCredits, associateRule),
			Transfer:         credits.AssessPathway(summary.TransferCredits, transferRule),
		})
	}

	sort.SliceStable(report.Students, func(i, j int) bool {
		return report.Students[i].TotalDualCredits > report.Students[j].TotalDualCredits
	})

	s.toCache(ctx, cacheKey, report)
	return report, nil
}

// InvalidateCaches drops cached reports after any course, category or
// student mutation. Summaries themselves are never cached; only the
// assembled report payloads are.
func (s *ReportService) InvalidateCaches(ctx context.Context) {
	if s.Redis == nil {
		return
	}
	keys, err := s.Redis.Keys(ctx, "report:*").Result()
	if err != nil || len(keys) == 0 {
		return
	}
	if err := s.Redis.Del(ctx, keys...).Err(); err != nil {
		logger.Log.Warn("report cache invalidation failed", zap.Error(err))
	}
}

func (s *ReportService) fromCache(ctx context.Context, key string) []byte {
	if s.Redis == nil {
		return nil
	}
	data, err := s.Redis.Get(ctx, key).Bytes()
	if err != nil {
		return nil
	}
	return data
}

func (s *ReportService) toCache(ctx context.Context, key string, v interface{}) {
	if s.Redis == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := s.Redis.Set(ctx, key, data, reportCacheTTL).Err(); err != nil {
		logger.Log.Warn("report cache write failed", zap.Error(err))
	}
}
