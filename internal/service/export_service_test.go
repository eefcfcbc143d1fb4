package service

import (
	"bytes"
	"strings"
	"testing"

	"gradtrak_backend/internal/config"
	"gradtrak_backend/internal/credits"
	"gradtrak_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRosterCSV(t *testing.T) {
	rows := []RosterRow{
		{
			StudentID:      12,
			Name:           "Avery Johnson",
			GradeLevel:     11,
			GraduationYear: 2027,
			TotalEarned:    9,
			Percentage:     38,
			Tier:           credits.TierCritical,
			CreditsBehind:  3,
			Deficiencies: []credits.Deficiency{
				{CategoryName: "English", Needed: 1.5},
				{CategoryName: "Science", Needed: 1},
			},
		},
		{
			StudentID:      13,
			Name:           "Sam Lee",
			GradeLevel:     9,
			GraduationYear: 2029,
			TotalEarned:    2,
			Percentage:     8,
			Tier:           credits.TierOnTrack,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, BuildRosterCSV(&buf, rows))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t,
		"student_id,name,grade_level,graduation_year,credits_earned,percent_complete,risk_tier,credits_behind,deficiencies",
		lines[0])
	assert.Equal(t, "12,Avery Johnson,11,2027,9.0,38,critical,3.0,English needs 1.5; Science needs 1.0", lines[1])
	assert.Equal(t, "13,Sam Lee,9,2029,2.0,8,on-track,0.0,", lines[2])
}

func TestBuildRosterCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, BuildRosterCSV(&buf, nil))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 1, "header only")
}

func TestBuildTranscriptPDF(t *testing.T) {
	school := config.SchoolConfig{Name: "Ridgeview High School", District: "Ridgeview USD"}
	catID := uint(1)
	student := &model.Student{
		FirstName:      "Avery",
		LastName:       "Johnson",
		GradeLevel:     11,
		GraduationYear: 2027,
		Courses: []model.Course{
			{Name: "English 9", Credits: 1, CategoryID: &catID, Term: "2024-T1", Grade: "B"},
			{Name: "Comp I", Credits: 1, Term: "2024-T2", IsDualCredit: true, DualCreditType: credits.DualCreditBoth},
		},
	}
	categories := []credits.Category{{ID: 1, Name: "English", RequiredCredits: 4, DisplayOrder: 1}}
	summary := credits.Evaluate(model.EngineCourses(student.Courses), categories)

	buf, err := buildTranscriptPDF(school, student, categories, summary)
	require.NoError(t, err)
	require.NotNil(t, buf)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")), "output should be a PDF document")
	assert.Greater(t, buf.Len(), 500)
}
