// Package event stores the practitioner's calendar entries.
//
// Events are kept either in process memory or in PostgreSQL. Every change is published to the
// stream broker so open calendars can refresh. Events can be exported to and imported from
// iCalendar documents.
package event

import "github.com/clinicdesk/calendar/pkg/model"

// swagger:response Event
type _ struct {
	// in: body
	Body model.Event
}

// swagger:response Events
type _ struct {
	// in: body
	Body []model.Event
}

// swagger:response ICS
type _ struct {
	// iCalendar document
	// in: body
	Body string
}

// swagger:parameters createEvent
type _ struct {
	// in: body
	// required: true
	Body EventRequest
}

// swagger:parameters updateEvent
type _ struct {
	// in: path
	// required: true
	ID uint `json:"id"`

	// in: body
	// required: true
	Body EventRequest
}

// swagger:parameters findEvent deleteEvent exportEvent
type _ struct {
	// in: path
	// required: true
	ID uint `json:"id"`
}

// swagger:parameters findEventsByDate findDaySchedule
type _ struct {
	// Calendar day formatted as YYYY-MM-DD
	// in: path
	// required: true
	Date string `json:"date"`
}

// swagger:parameters findUpcomingEvents
type _ struct {
	// RFC 3339 instant, defaults to now
	// in: query
	From string `json:"from"`

	// Maximum number of events, defaults to 3
	// in: query
	// minimum: 1
	// maximum: 100
	Limit int `json:"limit"`
}

// swagger:parameters importEvents
type _ struct {
	// Owner of the imported events
	// in: query
	// required: true
	UserID uint `json:"userId"`

	// iCalendar document
	// in: body
	// required: true
	Body string
}

// swagger:response EventTypes
type _ struct {
	// in: body
	Body []model.EventTypeInfo
}
