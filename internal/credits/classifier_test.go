package credits

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func summaryWithEarned(earned float64) ProgressSummary {
	return ProgressSummary{TotalEarned: earned}
}

func TestClassifyGrade11FirstTrimester(t *testing.T) {
	// Grade 11 T1 expects 50% of 24 = 12 credits; 9 earned is 3 behind.
	a := Classify(11, Trimester1, summaryWithEarned(9), 24)

	assert.True(t, a.Applicable)
	assert.Equal(t, 12.0, a.ExpectedCredits)
	assert.Equal(t, 50, a.ExpectedPercentage)
	assert.Equal(t, 3.0, a.CreditsBehind)
	assert.Equal(t, TierCritical, a.Tier)
	assert.True(t, a.Alert())
}

func TestClassifyFreshmanFirstTrimesterOnTrack(t *testing.T) {
	a := Classify(9, Trimester1, summaryWithEarned(0), 24)

	assert.True(t, a.Applicable)
	assert.Zero(t, a.ExpectedCredits)
	assert.Zero(t, a.CreditsBehind)
	assert.Equal(t, TierOnTrack, a.Tier)
	assert.False(t, a.Alert())
}

func TestClassifyAheadOfScheduleClampsToZero(t *testing.T) {
	a := Classify(10, Trimester2, summaryWithEarned(20), 24)

	assert.Zero(t, a.CreditsBehind)
	assert.Equal(t, TierOnTrack, a.Tier)
	assert.Equal(t, 20.0, a.ActualCredits)
}

func TestTierBoundariesInclusiveLowerBound(t *testing.T) {
	assert.Equal(t, TierCritical, TierFor(3.0))
	assert.Equal(t, TierAtRisk, TierFor(2.99))
	assert.Equal(t, TierAtRisk, TierFor(1.5))
	assert.Equal(t, TierWatch, TierFor(1.49))
	assert.Equal(t, TierWatch, TierFor(0.5))
	assert.Equal(t, TierOnTrack, TierFor(0.49999))
	assert.Equal(t, TierOnTrack, TierFor(0))
}

func TestClassifyMonotonicAcrossPeriods(t *testing.T) {
	// Holding earned credits fixed, later periods never decrease the gap
	// and never move the tier toward on-track.
	for grade := 9; grade <= 12; grade++ {
		prevBehind := -1.0
		prevSeverity := -1
		for period := Trimester1; period <= Trimester3; period++ {
			a := Classify(grade, period, summaryWithEarned(6), 24)
			assert.GreaterOrEqual(t, a.CreditsBehind, prevBehind,
				"grade %d period %d", grade, period)
			assert.GreaterOrEqual(t, a.Tier.Severity(), prevSeverity,
				"grade %d period %d", grade, period)
			prevBehind = a.CreditsBehind
			prevSeverity = a.Tier.Severity()
		}
	}
}

func TestExpectedPercentTableMonotonic(t *testing.T) {
	for grade := 9; grade <= 12; grade++ {
		prev := -1
		for period := Trimester1; period <= Trimester3; period++ {
			pct, ok := ExpectedPercent(grade, period)
			assert.True(t, ok)
			assert.GreaterOrEqual(t, pct, prev)
			prev = pct
		}
	}

	// across grades within a period
	for period := Trimester1; period <= Trimester3; period++ {
		prev := -1
		for grade := 9; grade <= 12; grade++ {
			pct, _ := ExpectedPercent(grade, period)
			assert.GreaterOrEqual(t, pct, prev)
			prev = pct
		}
	}
}

func TestExpectedPercentAnchors(t *testing.T) {
	pct, ok := ExpectedPercent(9, Trimester1)
	assert.True(t, ok)
	assert.Equal(t, 0, pct)

	pct, ok = ExpectedPercent(12, Trimester3)
	assert.True(t, ok)
	assert.Equal(t, 92, pct)
}

func TestClassifyGradeOutsideRangeIsNeutral(t *testing.T) {
	for _, grade := range []int{0, 8, 13, -1} {
		a := Classify(grade, Trimester2, summaryWithEarned(1), 24)
		assert.False(t, a.Applicable, "grade %d", grade)
		assert.Equal(t, TierOnTrack, a.Tier)
		assert.Zero(t, a.CreditsBehind)
		assert.False(t, a.Alert())
	}
}

func TestClassifyUnknownPeriodMostLenient(t *testing.T) {
	for _, period := range []Period{0, 4, -2} {
		a := Classify(12, period, summaryWithEarned(0), 24)
		assert.True(t, a.Applicable)
		assert.Zero(t, a.ExpectedCredits, "period %d", period)
		assert.Equal(t, TierOnTrack, a.Tier)
	}
}

func TestAssessPathway(t *testing.T) {
	rule := PathwayRule{Name: "Associate", RequiredCredits: 15}

	assert.Equal(t, PathwayComplete, AssessPathway(15, rule).Status)
	assert.Equal(t, PathwayComplete, AssessPathway(18, rule).Status)
	assert.Equal(t, PathwayOnTrack, AssessPathway(7.5, rule).Status)
	assert.Equal(t, PathwayStarted, AssessPathway(2, rule).Status)
	assert.Equal(t, PathwayNone, AssessPathway(0, rule).Status)

	p := AssessPathway(9, rule)
	assert.Equal(t, 60, p.Percentage)
	assert.Equal(t, 15.0, p.Required)
	assert.Equal(t, 9.0, p.Earned)
}
