package service

import (
	"time"

	"gradtrak_backend/internal/model"
	"gradtrak_backend/internal/repository"
)

type NoteService struct {
	NoteRepo    *repository.NoteRepository
	StudentRepo *repository.StudentRepository
}

func NewNoteService(noteRepo *repository.NoteRepository, studentRepo *repository.StudentRepository) *NoteService {
	return &NoteService{NoteRepo: noteRepo, StudentRepo: studentRepo}
}

func (s *NoteService) CreateNote(note *model.ContactNote) error {
	if _, err := s.StudentRepo.FindByID(note.StudentID); err != nil {
		return err
	}
	if note.ContactedAt.IsZero() {
		note.ContactedAt = time.Now()
	}
	if note.Method == "" {
		note.Method = model.ContactMeeting
	}
	return s.NoteRepo.Create(note)
}

func (s *NoteService) ListNotes(studentID uint, limit int) ([]model.ContactNote, error) {
	if _, err := s.StudentRepo.FindByID(studentID); err != nil {
		return nil, err
	}
	return s.NoteRepo.ListByStudent(studentID, limit)
}

func (s *NoteService) UpdateNote(note *model.ContactNote) error {
	existing, err := s.NoteRepo.FindByID(note.ID)
	if err != nil {
		return err
	}
	existing.Method = note.Method
	existing.Note = note.Note
	existing.Counselor = note.Counselor
	if !note.ContactedAt.IsZero() {
		existing.ContactedAt = note.ContactedAt
	}
	return s.NoteRepo.Update(existing)
}

func (s *NoteService) DeleteNote(id uint) error {
	if _, err := s.NoteRepo.FindByID(id); err != nil {
		return err
	}
	return s.NoteRepo.Delete(id)
}
