package service

import (
	"testing"

	"gradtrak_backend/internal/credits"
	"gradtrak_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestBuildProgressEmail(t *testing.T) {
	student := &model.Student{
		FirstName:      "Avery",
		LastName:       "Johnson",
		GradeLevel:     11,
		GraduationYear: 2027,
	}
	summary := credits.ProgressSummary{
		TotalEarned:   9,
		TotalRequired: 24,
		Percentage:    38,
		Deficiencies: []credits.Deficiency{
			{CategoryName: "English", Earned: 2.5, Required: 4, Needed: 1.5},
		},
		AssociateCredits: 2,
		TransferCredits:  1,
		TotalDualCredits: 2,
	}
	risk := credits.RiskAssessment{
		Tier:               credits.TierCritical,
		CreditsBehind:      3,
		ExpectedCredits:    12,
		ExpectedPercentage: 50,
		ActualCredits:      9,
		Applicable:         true,
	}

	msg := BuildProgressEmail("Ridgeview High School", student, summary, risk)

	assert.Equal(t, "[Ridgeview High School] Credit progress for Avery Johnson", msg.Subject)
	assert.Contains(t, msg.Text, "Avery Johnson (grade 11, class of 2027)")
	assert.Contains(t, msg.Text, "9.0 of 24.0 required (38%)")
	assert.Contains(t, msg.Text, "Standing: critical (3.0 credits behind the 50% expectation)")
	assert.Contains(t, msg.Text, "English: 2.5 of 4.0 (needs 1.5 more)")
	assert.Contains(t, msg.Text, "Dual credit: 2.0 total")
	assert.Contains(t, msg.HTML, "<p>Credits earned: 9.0 of 24.0 required (38%)</p>")
}

func TestBuildProgressEmailOnTrackNoDeficiencies(t *testing.T) {
	student := &model.Student{FirstName: "Sam", LastName: "Lee", GradeLevel: 9, GraduationYear: 2029}
	summary := credits.ProgressSummary{TotalEarned: 2, TotalRequired: 24, Percentage: 8}
	risk := credits.RiskAssessment{Tier: credits.TierOnTrack, Applicable: true}

	msg := BuildProgressEmail("Ridgeview High School", student, summary, risk)

	assert.Contains(t, msg.Text, "Standing: on-track\n")
	assert.Contains(t, msg.Text, "All category requirements are met.")
	assert.NotContains(t, msg.Text, "Dual credit")
}

func TestBuildProgressEmailEscapesHTML(t *testing.T) {
	student := &model.Student{FirstName: "Ann <script>", LastName: "O'Brien & Co", GradeLevel: 10, GraduationYear: 2028}
	summary := credits.ProgressSummary{
		TotalEarned:   5,
		TotalRequired: 24,
		Percentage:    21,
		Deficiencies: []credits.Deficiency{
			{CategoryName: "Arts & CTE", Earned: 0, Required: 1, Needed: 1},
		},
	}
	risk := credits.RiskAssessment{Tier: credits.TierWatch, CreditsBehind: 1, ExpectedPercentage: 25, Applicable: true}

	msg := BuildProgressEmail("Ridgeview High School", student, summary, risk)

	assert.NotContains(t, msg.HTML, "<script>")
	assert.Contains(t, msg.HTML, "Ann &lt;script&gt;")
	assert.Contains(t, msg.HTML, "Arts &amp; CTE")
	// plain-text variant is untouched
	assert.Contains(t, msg.Text, "Ann <script> O'Brien & Co")
	assert.Contains(t, msg.Text, "Arts & CTE")
}

func TestBuildProgressEmailNotApplicableGrade(t *testing.T) {
	student := &model.Student{FirstName: "Pat", LastName: "Quinn", GradeLevel: 8, GraduationYear: 2031}
	summary := credits.ProgressSummary{TotalEarned: 0, TotalRequired: 24}
	risk := credits.RiskAssessment{Tier: credits.TierOnTrack, Applicable: false}

	msg := BuildProgressEmail("Ridgeview High School", student, summary, risk)

	assert.NotContains(t, msg.Text, "Standing:")
}
