package controller

import (
	"strconv"

	"gradtrak_backend/internal/model"
	"gradtrak_backend/internal/service"
	"gradtrak_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type NoteController struct {
	NoteService *service.NoteService
}

func NewNoteController(noteService *service.NoteService) *NoteController {
	return &NoteController{NoteService: noteService}
}

// @Summary Log a contact note for a student
// @Tags notes
// @Accept json
// @Produce json
// @Param id path int true "student id"
// @Param body body model.ContactNote true "note"
// @Success 201 {object} util.Response
// @Router /api/students/{id}/notes [post]
func (c *NoteController) CreateNote(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	var note model.ContactNote
	if err := ctx.ShouldBindJSON(&note); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if note.Counselor == "" {
		util.BadRequest(ctx, "counselor is required")
		return
	}
	note.StudentID = id
	if err := c.NoteService.CreateNote(&note); err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, note)
}

// @Summary List contact notes for a student, newest first
// @Tags notes
// @Produce json
// @Param id path int true "student id"
// @Param limit query int false "max rows (default 50)"
// @Success 200 {object} util.Response
// @Router /api/students/{id}/notes [get]
func (c *NoteController) ListNotes(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "50"))
	if limit < 1 || limit > 500 {
		limit = 50
	}
	notes, err := c.NoteService.ListNotes(id, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, notes)
}

// @Summary Update a contact note
// @Tags notes
// @Accept json
// @Produce json
// @Param id path int true "note id"
// @Param body body model.ContactNote true "note"
// @Success 200 {object} util.Response
// @Router /api/notes/{id} [put]
func (c *NoteController) UpdateNote(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	var note model.ContactNote
	if err := ctx.ShouldBindJSON(&note); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	note.ID = id
	if err := c.NoteService.UpdateNote(&note); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"updated": true})
}

// @Summary Delete a contact note
// @Tags notes
// @Produce json
// @Param id path int true "note id"
// @Success 200 {object} util.Response
// @Router /api/notes/{id} [delete]
func (c *NoteController) DeleteNote(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	if err := c.NoteService.DeleteNote(id); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}
