package model

import "gradtrak_backend/internal/credits"

// CreditCategory is a graduation-requirement bucket. Categories are
// configured once per school; the evaluator treats them as immutable input.
//
// swagger:model CreditCategory
type CreditCategory struct {
	BaseModel
	Name            string  `gorm:"size:100;not null;unique" json:"name"`
	RequiredCredits float64 `gorm:"not null;default:0" json:"requiredCredits"`
	DisplayOrder    int     `gorm:"not null;default:0" json:"displayOrder"`
}

func (CreditCategory) TableName() string {
	return "credit_categories"
}

func (c *CreditCategory) Engine() credits.Category {
	return credits.Category{
		ID:              c.ID,
		Name:            c.Name,
		RequiredCredits: c.RequiredCredits,
		DisplayOrder:    c.DisplayOrder,
	}
}

// EngineCategories maps the category table into evaluator inputs.
func EngineCategories(categories []CreditCategory) []credits.Category {
	out := make([]credits.Category, len(categories))
	for i := range categories {
		out[i] = categories[i].Engine()
	}
	return out
}
