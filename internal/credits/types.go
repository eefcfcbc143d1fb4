// Package credits is the shared credit-evaluation and risk-classification
// engine. Every surface that reports on graduation progress (dashboard,
// at-risk report, pathway report, transcript, email summaries) goes through
// this package instead of re-summing credits itself.
//
// All functions here are pure: no I/O, no clocks, no mutation of inputs.
// They may be called concurrently for any number of students.
package credits

import "strings"

// DualCreditType tags a dual-credit course with the college track(s) it
// applies toward.
type DualCreditType string

const (
	DualCreditNone      DualCreditType = ""
	DualCreditAssociate DualCreditType = "associate"
	DualCreditTransfer  DualCreditType = "transfer"
	DualCreditBoth      DualCreditType = "both"
)

// ParseDualCreditType normalizes a loosely-typed flag from upstream data
// (spreadsheet imports, manual entry) into the closed enumeration.
// Unrecognized values degrade to DualCreditNone.
func ParseDualCreditType(s string) DualCreditType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "associate", "aas", "as":
		return DualCreditAssociate
	case "transfer", "aat", "at":
		return DualCreditTransfer
	case "both":
		return DualCreditBoth
	}
	return DualCreditNone
}

// Course is a single completed-or-in-progress academic record.
// CategoryID is nil for uncategorized courses; those count toward the grand
// total but toward no requirement bucket.
type Course struct {
	ID             uint
	Name           string
	Credits        float64
	CategoryID     *uint
	Term           string
	Grade          string
	IsDualCredit   bool
	DualCreditType DualCreditType
}

// Category is a graduation-requirement bucket configured per school.
type Category struct {
	ID              uint
	Name            string
	RequiredCredits float64
	DisplayOrder    int
}

// Deficiency reports a category where earned credits fall short of the
// requirement. Needed is always > 0.
type Deficiency struct {
	CategoryID   uint    `json:"categoryId"`
	CategoryName string  `json:"categoryName"`
	Earned       float64 `json:"earned"`
	Required     float64 `json:"required"`
	Needed       float64 `json:"needed"`
}

// ProgressSummary is the derived view of a student's credit attainment.
// It is recomputed from the course set on every read, never stored.
type ProgressSummary struct {
	CreditsByCategory map[uint]float64 `json:"creditsByCategory"`
	TotalEarned       float64          `json:"totalEarned"`
	TotalRequired     float64          `json:"totalRequired"`
	Percentage        int              `json:"percentage"`
	Deficiencies      []Deficiency     `json:"deficiencies"`
	AssociateCredits  float64          `json:"associateCredits"`
	TransferCredits   float64          `json:"transferCredits"`
	TotalDualCredits  float64          `json:"totalDualCredits"`
}

// RiskTier orders students by how far credit attainment lags the
// grade-and-period expectation.
type RiskTier string

const (
	TierCritical RiskTier = "critical"
	TierAtRisk   RiskTier = "at-risk"
	TierWatch    RiskTier = "watch"
	TierOnTrack  RiskTier = "on-track"
)

// RiskAssessment carries the tier plus the raw figures used to derive it,
// for audit and display.
type RiskAssessment struct {
	Tier               RiskTier `json:"tier"`
	CreditsBehind      float64  `json:"creditsBehind"`
	ExpectedCredits    float64  `json:"expectedCredits"`
	ExpectedPercentage int      `json:"expectedPercentage"`
	ActualCredits      float64  `json:"actualCredits"`
	// Applicable is false when no baseline is defined (grade outside 9-12);
	// the rest of the assessment is then a neutral on-track result.
	Applicable bool `json:"applicable"`
}
