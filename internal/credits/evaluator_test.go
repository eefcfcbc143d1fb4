package credits

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catID(id uint) *uint { return &id }

func stdCategories() []Category {
	return []Category{
		{ID: 1, Name: "English", RequiredCredits: 4, DisplayOrder: 1},
		{ID: 2, Name: "Mathematics", RequiredCredits: 3, DisplayOrder: 2},
		{ID: 3, Name: "Science", RequiredCredits: 3, DisplayOrder: 3},
		{ID: 4, Name: "Electives", RequiredCredits: 6, DisplayOrder: 4},
	}
}

func TestEvaluateCategoryTotalsAndDeficiency(t *testing.T) {
	categories := []Category{{ID: 7, Name: "Mathematics", RequiredCredits: 4, DisplayOrder: 1}}
	courses := []Course{
		{Name: "Algebra I", Credits: 1, CategoryID: catID(7)},
		{Name: "Geometry", Credits: 1, CategoryID: catID(7)},
	}

	s := Evaluate(courses, categories)

	assert.Equal(t, 2.0, s.CreditsByCategory[7])
	assert.Equal(t, 2.0, s.TotalEarned)
	require.Len(t, s.Deficiencies, 1)
	assert.Equal(t, uint(7), s.Deficiencies[0].CategoryID)
	assert.Equal(t, 2.0, s.Deficiencies[0].Needed)
	assert.Equal(t, 2.0, s.Deficiencies[0].Earned)
	assert.Equal(t, 4.0, s.Deficiencies[0].Required)
}

func TestEvaluatePercentageRounding(t *testing.T) {
	// 8 of 24 required = 33.33 -> 33
	courses := []Course{{Name: "Misc", Credits: 8, CategoryID: catID(4)}}
	s := Evaluate(courses, stdCategories())

	assert.Equal(t, 16.0, s.TotalRequired)
	// rebuild with a 24-credit table to match the canonical scenario
	cats := stdCategories()
	cats = append(cats,
		Category{ID: 5, Name: "Social Studies", RequiredCredits: 3, DisplayOrder: 5},
		Category{ID: 6, Name: "PE/Health", RequiredCredits: 2, DisplayOrder: 6},
		Category{ID: 7, Name: "World Language", RequiredCredits: 2, DisplayOrder: 7},
		Category{ID: 8, Name: "Arts/CTE", RequiredCredits: 1, DisplayOrder: 8},
	)
	s = Evaluate(courses, cats)
	assert.Equal(t, 24.0, s.TotalRequired)
	assert.Equal(t, 33, s.Percentage)

	// half-up: 8.52/24 = 35.5% -> 36
	s = Evaluate([]Course{{Credits: 8.52, CategoryID: catID(4)}}, cats)
	assert.Equal(t, 36, s.Percentage)
}

func TestEvaluateEmptyCategoryList(t *testing.T) {
	s := Evaluate([]Course{{Name: "Orphan", Credits: 3}}, nil)

	assert.Equal(t, 3.0, s.TotalEarned)
	assert.Equal(t, 0.0, s.TotalRequired)
	assert.Equal(t, 0, s.Percentage)
	assert.Empty(t, s.Deficiencies)
}

func TestEvaluateUncategorizedAndUnknownCategory(t *testing.T) {
	categories := stdCategories()
	courses := []Course{
		{Name: "Study Hall", Credits: 0.5, CategoryID: nil},
		{Name: "Legacy Row", Credits: 1, CategoryID: catID(999)},
		{Name: "Biology", Credits: 1, CategoryID: catID(3)},
	}

	s := Evaluate(courses, categories)

	assert.Equal(t, 2.5, s.TotalEarned)
	assert.Equal(t, 1.0, s.CreditsByCategory[3])
	_, tracked := s.CreditsByCategory[999]
	assert.False(t, tracked, "unknown category ids are treated as uncategorized")
}

func TestEvaluateNegativeCreditsPassThrough(t *testing.T) {
	categories := []Category{{ID: 1, Name: "English", RequiredCredits: 2, DisplayOrder: 1}}
	courses := []Course{
		{Name: "English 9", Credits: 1, CategoryID: catID(1)},
		{Name: "Correction", Credits: -0.5, CategoryID: catID(1)},
	}

	s := Evaluate(courses, categories)

	assert.Equal(t, 0.5, s.CreditsByCategory[1])
	assert.Equal(t, 0.5, s.TotalEarned)
	require.Len(t, s.Deficiencies, 1)
	assert.Equal(t, 1.5, s.Deficiencies[0].Needed)
}

func TestEvaluateZeroRequirementNeverDeficient(t *testing.T) {
	categories := []Category{{ID: 1, Name: "Optional", RequiredCredits: 0, DisplayOrder: 1}}

	s := Evaluate(nil, categories)
	assert.Empty(t, s.Deficiencies)

	// a lone negative correction row must not surface a deficiency either
	s = Evaluate([]Course{{Name: "Correction", Credits: -0.5, CategoryID: catID(1)}}, categories)
	assert.Empty(t, s.Deficiencies)
}

func TestEvaluatePercentageNeverNegative(t *testing.T) {
	categories := []Category{{ID: 1, Name: "English", RequiredCredits: 4, DisplayOrder: 1}}

	s := Evaluate([]Course{{Name: "Correction", Credits: -2, CategoryID: catID(1)}}, categories)

	assert.Equal(t, -2.0, s.TotalEarned)
	assert.Equal(t, 0, s.Percentage)
}

func TestEvaluateDeficiencyOrderFollowsDisplayOrder(t *testing.T) {
	categories := []Category{
		{ID: 1, Name: "Science", RequiredCredits: 3, DisplayOrder: 3},
		{ID: 2, Name: "English", RequiredCredits: 4, DisplayOrder: 1},
		{ID: 3, Name: "Mathematics", RequiredCredits: 1, DisplayOrder: 2},
	}

	s := Evaluate(nil, categories)

	require.Len(t, s.Deficiencies, 3)
	assert.Equal(t, "English", s.Deficiencies[0].CategoryName)
	assert.Equal(t, "Mathematics", s.Deficiencies[1].CategoryName)
	assert.Equal(t, "Science", s.Deficiencies[2].CategoryName)
}

func TestEvaluateDualCreditSubtotals(t *testing.T) {
	s := Evaluate([]Course{
		{Name: "Comp I", Credits: 1, IsDualCredit: true, DualCreditType: DualCreditBoth},
	}, nil)

	assert.Equal(t, 1.0, s.AssociateCredits)
	assert.Equal(t, 1.0, s.TransferCredits)
	assert.Equal(t, 1.0, s.TotalDualCredits)

	s = Evaluate([]Course{
		{Name: "Welding I", Credits: 2, IsDualCredit: true, DualCreditType: DualCreditAssociate},
		{Name: "Calc I", Credits: 1.5, IsDualCredit: true, DualCreditType: DualCreditTransfer},
		{Name: "Speech", Credits: 1, IsDualCredit: true, DualCreditType: DualCreditBoth},
		{Name: "Untyped DC", Credits: 0.5, IsDualCredit: true},
		{Name: "Regular", Credits: 1},
	}, nil)

	assert.Equal(t, 3.0, s.AssociateCredits)
	assert.Equal(t, 2.5, s.TransferCredits)
	assert.Equal(t, 5.0, s.TotalDualCredits)
	// subtotals double-count "both" but the total counts it once
	assert.GreaterOrEqual(t, s.AssociateCredits+s.TransferCredits, s.TotalDualCredits)
}

func TestEvaluateNoDualCreditCourses(t *testing.T) {
	s := Evaluate([]Course{{Name: "English 9", Credits: 1, CategoryID: catID(1)}}, stdCategories())
	assert.Zero(t, s.AssociateCredits)
	assert.Zero(t, s.TransferCredits)
	assert.Zero(t, s.TotalDualCredits)
}

func TestEvaluateIdempotent(t *testing.T) {
	categories := stdCategories()
	courses := []Course{
		{Name: "English 9", Credits: 1, CategoryID: catID(1)},
		{Name: "Biology", Credits: 1, CategoryID: catID(3), IsDualCredit: true, DualCreditType: DualCreditTransfer},
		{Name: "Study Hall", Credits: 0.5},
	}

	first := Evaluate(courses, categories)
	second := Evaluate(courses, categories)
	assert.Equal(t, first, second)
}

func TestEvaluateTotalEarnedAdditive(t *testing.T) {
	categories := stdCategories()
	setA := []Course{
		{Name: "English 9", Credits: 1, CategoryID: catID(1)},
		{Name: "Algebra I", Credits: 1, CategoryID: catID(2)},
	}
	setB := []Course{
		{Name: "Biology", Credits: 1, CategoryID: catID(3)},
		{Name: "Study Hall", Credits: 0.5},
	}

	union := Evaluate(append(append([]Course{}, setA...), setB...), categories)
	a := Evaluate(setA, categories)
	b := Evaluate(setB, categories)

	assert.Equal(t, a.TotalEarned+b.TotalEarned, union.TotalEarned)
}

func TestEvaluateDoesNotMutateInputs(t *testing.T) {
	categories := []Category{
		{ID: 2, Name: "B", RequiredCredits: 1, DisplayOrder: 2},
		{ID: 1, Name: "A", RequiredCredits: 1, DisplayOrder: 1},
	}
	Evaluate(nil, categories)
	assert.Equal(t, uint(2), categories[0].ID, "input category slice must keep its order")
}

func TestResolveCategoryByName(t *testing.T) {
	categories := stdCategories()

	cat := ResolveCategoryByName("mathematics", categories)
	require.NotNil(t, cat)
	assert.Equal(t, uint(2), cat.ID)

	cat = ResolveCategoryByName("  ENGLISH ", categories)
	require.NotNil(t, cat)
	assert.Equal(t, uint(1), cat.ID)

	assert.Nil(t, ResolveCategoryByName("Underwater Basket Weaving", categories))
	assert.Nil(t, ResolveCategoryByName("", categories))
}

func TestParseDualCreditType(t *testing.T) {
	assert.Equal(t, DualCreditAssociate, ParseDualCreditType("Associate"))
	assert.Equal(t, DualCreditTransfer, ParseDualCreditType(" transfer "))
	assert.Equal(t, DualCreditBoth, ParseDualCreditType("BOTH"))
	assert.Equal(t, DualCreditNone, ParseDualCreditType("sometimes"))
	assert.Equal(t, DualCreditNone, ParseDualCreditType(""))
}
