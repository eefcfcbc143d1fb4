package credits

import (
	"math"
	"sort"
	"strings"
)

// Evaluate computes per-category earned credits, the overall completion
// percentage, dual-credit subtotals and the deficiency list for one student's
// course set against the school's category table.
//
// Courses match categories by exact CategoryID only. A nil or unknown
// CategoryID contributes to TotalEarned but to no category subtotal and
// cannot resolve a deficiency. Negative credit values are passed through
// arithmetically rather than rejected; upstream data entry is expected to be
// occasionally inconsistent and the evaluator is a total function over it.
func Evaluate(courses []Course, categories []Category) ProgressSummary {
	known := make(map[uint]bool, len(categories))
	for _, cat := range categories {
		known[cat.ID] = true
	}

	summary := ProgressSummary{
		CreditsByCategory: make(map[uint]float64, len(categories)),
		Deficiencies:      []Deficiency{},
	}

	for _, course := range courses {
		summary.TotalEarned += course.Credits

		if course.CategoryID != nil && known[*course.CategoryID] {
			summary.CreditsByCategory[*course.CategoryID] += course.Credits
		}

		if course.IsDualCredit {
			summary.TotalDualCredits += course.Credits
			switch course.DualCreditType {
			case DualCreditAssociate:
				summary.AssociateCredits += course.Credits
			case DualCreditTransfer:
				summary.TransferCredits += course.Credits
			case DualCreditBoth:
				summary.AssociateCredits += course.Credits
				summary.TransferCredits += course.Credits
			}
		}
	}

	ordered := make([]Category, len(categories))
	copy(ordered, categories)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].DisplayOrder < ordered[j].DisplayOrder
	})

	for _, cat := range ordered {
		summary.TotalRequired += cat.RequiredCredits

		earned := summary.CreditsByCategory[cat.ID]
		if cat.RequiredCredits > 0 && earned < cat.RequiredCredits {
			summary.Deficiencies = append(summary.Deficiencies, Deficiency{
				CategoryID:   cat.ID,
				CategoryName: cat.Name,
				Earned:       earned,
				Required:     cat.RequiredCredits,
				Needed:       cat.RequiredCredits - earned,
			})
		}
	}

	summary.Percentage = roundPercent(summary.TotalEarned, summary.TotalRequired)
	return summary
}

// roundPercent rounds half-up to an integer percentage; 0 when the
// requirement total is zero (empty category list). Never negative, even
// when corrections push the earned total below zero.
func roundPercent(earned, required float64) int {
	if required == 0 {
		return 0
	}
	pct := int(math.Floor(earned/required*100 + 0.5))
	if pct < 0 {
		return 0
	}
	return pct
}

// ResolveCategoryByName matches a category by case-insensitive name.
// This is the degraded fallback for legacy rows that carry category names
// instead of ids; it belongs at the data-loading boundary (imports) only.
// The canonical evaluation path matches by id.
func ResolveCategoryByName(name string, categories []Category) *Category {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	for i := range categories {
		if strings.EqualFold(categories[i].Name, name) {
			return &categories[i]
		}
	}
	return nil
}
