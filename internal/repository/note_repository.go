package repository

import (
	"errors"

	"gradtrak_backend/internal/model"
	"gradtrak_backend/internal/util"

	"gorm.io/gorm"
)

type NoteRepository struct {
	DB *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{DB: db}
}

func (r *NoteRepository) Create(note *model.ContactNote) error {
	return r.DB.Create(note).Error
}

func (r *NoteRepository) FindByID(id uint) (*model.ContactNote, error) {
	var note model.ContactNote
	err := r.DB.First(&note, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrNoteNotFound
	}
	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *NoteRepository) ListByStudent(studentID uint, limit int) ([]model.ContactNote, error) {
	var notes []model.ContactNote
	query := r.DB.
		Where("student_id = ?", studentID).
		Order("contacted_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&notes).Error
	return notes, err
}

func (r *NoteRepository) Update(note *model.ContactNote) error {
	return r.DB.Save(note).Error
}

func (r *NoteRepository) Delete(id uint) error {
	return r.DB.Delete(&model.ContactNote{}, id).Error
}
