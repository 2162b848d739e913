package note

import (
	"net/http"
	"time"

	"github.com/clinicdesk/calendar/internal/handler"
	"github.com/clinicdesk/calendar/pkg/model"
	"github.com/gin-gonic/gin"
)

func NewHandler(noteService Service, location *time.Location) Handler {
	return Handler{
		noteService: noteService,
		location:    location,
	}
}

type Handler struct {
	noteService Service
	location    *time.Location
}

// NoteRequest is the payload for creating and updating notes. The content is stored as is.
type NoteRequest struct {
	UserID  uint       `json:"userId" binding:"required"`
	Date    model.Date `json:"date" binding:"required"`
	Content string     `json:"content" binding:"required"`
}

func (h Handler) note(r NoteRequest) model.Note {
	return model.Note{
		UserID:  r.UserID,
		Date:    r.Date.In(h.location),
		Content: r.Content,
	}
}

// Create note
func (h Handler) Create(c *gin.Context) {
	// swagger:route POST /notes createNote
	//
	// Create note
	//
	// Create a note for a day. Creating a second note for the same day is allowed.
	//
	// responses:
	//   201: Note
	//   400: Error
	//   415: Error
	var request NoteRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	note, err := h.noteService.Create(c.Request.Context(), h.note(request))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, note)
}

// FindAll notes
func (h Handler) FindAll(c *gin.Context) {
	// swagger:route GET /notes findAllNotes
	//
	// Find all notes
	//
	// Find all notes ordered by id.
	//
	// responses:
	//   200: Notes
	notes, err := h.noteService.FindAll(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, notes)
}

// Find note by id
func (h Handler) Find(c *gin.Context) {
	// swagger:route GET /notes/{id} findNote
	//
	// Find note
	//
	// Find a note by its id.
	//
	// responses:
	//   200: Note
	//   400: Error
	//   404: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	note, err := h.noteService.FindByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, note)
}

// FindByDate finds the note of a day
func (h Handler) FindByDate(c *gin.Context) {
	// swagger:route GET /days/{date}/note findNoteByDate
	//
	// Find note by date
	//
	// Find the note written for the given day. If there are several the one created first is returned.
	//
	// responses:
	//   200: Note
	//   400: Error
	//   404: Error
	date, ok := handler.GetDateParameter(c, "date", h.location)
	if !ok {
		return
	}

	note, err := h.noteService.FindByDate(c.Request.Context(), date)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, note)
}

// FindAllByDate finds every note of a day
func (h Handler) FindAllByDate(c *gin.Context) {
	// swagger:route GET /days/{date}/notes findNotesByDate
	//
	// Find notes by date
	//
	// Find every note written for the given day ordered by id.
	//
	// responses:
	//   200: Notes
	//   400: Error
	date, ok := handler.GetDateParameter(c, "date", h.location)
	if !ok {
		return
	}

	notes, err := h.noteService.FindAllByDate(c.Request.Context(), date)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, notes)
}

// Update note
func (h Handler) Update(c *gin.Context) {
	// swagger:route PUT /notes/{id} updateNote
	//
	// Update note
	//
	// Replace every field of a note but its id.
	//
	// responses:
	//   200: Note
	//   400: Error
	//   404: Error
	//   415: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	var request NoteRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	note, err := h.noteService.Update(c.Request.Context(), id, h.note(request))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, note)
}

// Delete note
func (h Handler) Delete(c *gin.Context) {
	// swagger:route DELETE /notes/{id} deleteNote
	//
	// Delete note
	//
	// Delete a note by its id.
	//
	// responses:
	//   202:
	//   400: Error
	//   404: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	if err := h.noteService.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusAccepted)
}
