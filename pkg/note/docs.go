// Package note stores the free text the practitioner writes for a day.
package note

import "github.com/clinicdesk/calendar/pkg/model"

// swagger:response Note
type _ struct {
	// in: body
	Body model.Note
}

// swagger:response Notes
type _ struct {
	// in: body
	Body []model.Note
}

// swagger:parameters createNote
type _ struct {
	// in: body
	// required: true
	Body NoteRequest
}

// swagger:parameters updateNote
type _ struct {
	// in: path
	// required: true
	ID uint `json:"id"`

	// in: body
	// required: true
	Body NoteRequest
}

// swagger:parameters findNote deleteNote
type _ struct {
	// in: path
	// required: true
	ID uint `json:"id"`
}

// swagger:parameters findNoteByDate findNotesByDate
type _ struct {
	// Calendar day formatted as YYYY-MM-DD
	// in: path
	// required: true
	Date string `json:"date"`
}
