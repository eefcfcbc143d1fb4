package util

import "errors"

var (
	ErrStudentNotFound  = errors.New("student not found")
	ErrCourseNotFound   = errors.New("course not found")
	ErrCategoryNotFound = errors.New("credit category not found")
	ErrCategoryInUse    = errors.New("credit category still referenced by courses")
	ErrNoteNotFound     = errors.New("contact note not found")
)
