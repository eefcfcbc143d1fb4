package repository

import (
	"errors"

	"gradtrak_backend/internal/model"
	"gradtrak_backend/internal/util"

	"gorm.io/gorm"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) Create(category *model.CreditCategory) error {
	return r.DB.Create(category).Error
}

func (r *CategoryRepository) FindByID(id uint) (*model.CreditCategory, error) {
	var category model.CreditCategory
	err := r.DB.First(&category, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCategoryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// ListAll returns the full requirement table in display order.
func (r *CategoryRepository) ListAll() ([]model.CreditCategory, error) {
	var categories []model.CreditCategory
	err := r.DB.Order("display_order").Find(&categories).Error
	return categories, err
}

func (r *CategoryRepository) Update(category *model.CreditCategory) error {
	return r.DB.Save(category).Error
}

func (r *CategoryRepository) Delete(id uint) error {
	return r.DB.Delete(&model.CreditCategory{}, id).Error
}
