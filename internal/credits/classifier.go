package credits

// Period is a trimester index within the school year, 1-based.
// Date-to-period resolution is a calendar concern and happens outside this
// package; the classifier only ever sees an already-resolved index.
type Period int

const (
	Trimester1 Period = 1
	Trimester2 Period = 2
	Trimester3 Period = 3

	PeriodsPerYear = 3
)

// expectedPercentByGrade is the district policy baseline: the share of total
// graduation credits a student is expected to have earned by the end of each
// trimester, per grade level. Values are non-decreasing within a grade and
// across grades within a period.
var expectedPercentByGrade = map[int][PeriodsPerYear]int{
	9:  {0, 8, 17},
	10: {25, 33, 42},
	11: {50, 58, 67},
	12: {75, 83, 92},
}

// ExpectedPercent returns the baseline for a (grade, period) pair. Grades
// outside 9-12 have no defined baseline and report ok=false. Out-of-range
// periods fall back to the most lenient expectation (0) so that bad period
// data never produces a false critical classification.
func ExpectedPercent(gradeLevel int, period Period) (percent int, ok bool) {
	row, ok := expectedPercentByGrade[gradeLevel]
	if !ok {
		return 0, false
	}
	if period < Trimester1 || period > Trimester3 {
		return 0, true
	}
	return row[period-1], true
}

// Classify compares a student's credit attainment against the expected
// baseline for their grade level and the current period, and buckets the gap
// into a risk tier. The credits-behind model is canonical; percentage-gap
// alerting derives from the tier (see Alert).
//
// totalRequired is the school's full graduation requirement, normally
// summary.TotalRequired; it is a separate parameter so callers can classify
// against a requirement table other than the one the summary was built with.
func Classify(gradeLevel int, period Period, summary ProgressSummary, totalRequired float64) RiskAssessment {
	expectedPct, ok := ExpectedPercent(gradeLevel, period)
	if !ok {
		// No baseline defined: neutral, not an error.
		return RiskAssessment{
			Tier:          TierOnTrack,
			ActualCredits: summary.TotalEarned,
			Applicable:    false,
		}
	}

	expectedCredits := float64(expectedPct) / 100 * totalRequired
	behind := expectedCredits - summary.TotalEarned
	if behind < 0 {
		behind = 0
	}

	return RiskAssessment{
		Tier:               TierFor(behind),
		CreditsBehind:      behind,
		ExpectedCredits:    expectedCredits,
		ExpectedPercentage: expectedPct,
		ActualCredits:      summary.TotalEarned,
		Applicable:         true,
	}
}

// TierFor buckets a credits-behind magnitude. Boundaries are inclusive on
// the lower bound.
func TierFor(creditsBehind float64) RiskTier {
	switch {
	case creditsBehind >= 3.0:
		return TierCritical
	case creditsBehind >= 1.5:
		return TierAtRisk
	case creditsBehind >= 0.5:
		return TierWatch
	default:
		return TierOnTrack
	}
}

// Alert is the coarse percentage-gap style flag used for simple dashboard
// badges, derived from the canonical tier rather than computed separately.
func (a RiskAssessment) Alert() bool {
	return a.Applicable && a.Tier != TierOnTrack
}

// Severity orders tiers for sorting, highest risk first.
func (t RiskTier) Severity() int {
	switch t {
	case TierCritical:
		return 3
	case TierAtRisk:
		return 2
	case TierWatch:
		return 1
	default:
		return 0
	}
}
