package event

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/clinicdesk/calendar/internal/errdef"
	"github.com/clinicdesk/calendar/internal/handler"
	"github.com/clinicdesk/calendar/pkg/calendar"
	"github.com/clinicdesk/calendar/pkg/model"
	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
)

// maxUpcomingLimit bounds the number of upcoming events a single request may ask for.
const maxUpcomingLimit = 100

func NewHandler(eventService Service, location *time.Location) Handler {
	return Handler{
		eventService: eventService,
		location:     location,
		now:          time.Now,
	}
}

type Handler struct {
	eventService Service
	location     *time.Location
	now          func() time.Time
}

// EventRequest is the payload for creating and updating events. endTime is not checked against
// startTime.
type EventRequest struct {
	UserID       uint            `json:"userId" binding:"required"`
	Title        string          `json:"title" binding:"required"`
	Description  string          `json:"description"`
	StartTime    time.Time       `json:"startTime" binding:"required"`
	EndTime      time.Time       `json:"endTime" binding:"required"`
	Location     string          `json:"location"`
	EventType    model.EventType `json:"eventType" binding:"required,eventType"`
	Participants string          `json:"participants"`
	HasReminder  bool            `json:"hasReminder"`
}

func (r EventRequest) event() model.Event {
	return model.Event{
		UserID:       r.UserID,
		Title:        r.Title,
		Description:  r.Description,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		Location:     r.Location,
		EventType:    r.EventType,
		Participants: r.Participants,
		HasReminder:  r.HasReminder,
	}
}

// Create event
func (h Handler) Create(c *gin.Context) {
	// swagger:route POST /events createEvent
	//
	// Create event
	//
	// Create an event. The id is assigned by the server.
	//
	// responses:
	//   201: Event
	//   400: Error
	//   415: Error
	var request EventRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	event, err := h.eventService.Create(c.Request.Context(), request.event())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, event)
}

// FindAll events
func (h Handler) FindAll(c *gin.Context) {
	// swagger:route GET /events findAllEvents
	//
	// Find all events
	//
	// Find all events ordered by id.
	//
	// responses:
	//   200: Events
	events, err := h.eventService.FindAll(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, events)
}

// EventTypes lists the event types
func (h Handler) EventTypes(c *gin.Context) {
	// swagger:route GET /event-types findEventTypes
	//
	// Find event types
	//
	// Find all event types with their display label and colour.
	//
	// responses:
	//   200: EventTypes
	catalog, err := model.LoadEventTypeCatalog()
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, catalog)
}

// Find event by id
func (h Handler) Find(c *gin.Context) {
	// swagger:route GET /events/{id} findEvent
	//
	// Find event
	//
	// Find an event by its id.
	//
	// responses:
	//   200: Event
	//   400: Error
	//   404: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	event, err := h.eventService.FindByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// FindByDate finds the events starting on a day
func (h Handler) FindByDate(c *gin.Context) {
	// swagger:route GET /days/{date}/events findEventsByDate
	//
	// Find events by date
	//
	// Find the events starting on the given day ordered by start time.
	//
	// responses:
	//   200: Events
	//   400: Error
	date, ok := handler.GetDateParameter(c, "date", h.location)
	if !ok {
		return
	}

	events, err := h.eventService.FindByDate(c.Request.Context(), date)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, events)
}

// DayScheduleResponse holds the events of a day grouped by the hour they start in.
// swagger:model
type DayScheduleResponse struct {
	Date  model.Date                         `json:"date"`
	Hours []calendar.HourBucket[model.Event] `json:"hours"`
}

// DaySchedule groups the events of a day by hour
func (h Handler) DaySchedule(c *gin.Context) {
	// swagger:route GET /days/{date}/schedule findDaySchedule
	//
	// Day schedule
	//
	// Group the events starting on the given day into one bucket per hour from 8 AM to 6 PM.
	//
	// responses:
	//   200: DayScheduleResponse
	//   400: Error
	date, ok := handler.GetDateParameter(c, "date", h.location)
	if !ok {
		return
	}

	hours, err := h.eventService.DaySchedule(c.Request.Context(), date)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, DayScheduleResponse{Date: date, Hours: hours})
}

// FindUpcoming finds the next events
func (h Handler) FindUpcoming(c *gin.Context) {
	// swagger:route GET /events/upcoming findUpcomingEvents
	//
	// Find upcoming events
	//
	// Find the earliest events starting at or after "from" (default now), at most "limit" (default 3).
	//
	// responses:
	//   200: Events
	//   400: Error
	from, ok := handler.GetQueryTime(c, "from", h.now())
	if !ok {
		return
	}
	limit, ok := handler.GetQueryInt(c, "limit", DefaultUpcomingLimit)
	if !ok {
		return
	}
	if limit < 1 || limit > maxUpcomingLimit {
		_ = c.Error(errdef.NewValidation(
			[]errdef.FieldError{{Field: "limit", Message: fmt.Sprintf("must be between 1 and %d", maxUpcomingLimit)}},
			"invalid limit: %d", limit,
		))
		return
	}

	events, err := h.eventService.FindUpcoming(c.Request.Context(), from, limit)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, events)
}

// Update event
func (h Handler) Update(c *gin.Context) {
	// swagger:route PUT /events/{id} updateEvent
	//
	// Update event
	//
	// Replace every field of an event but its id.
	//
	// responses:
	//   200: Event
	//   400: Error
	//   404: Error
	//   415: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	var request EventRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	event, err := h.eventService.Update(c.Request.Context(), id, request.event())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// Delete event
func (h Handler) Delete(c *gin.Context) {
	// swagger:route DELETE /events/{id} deleteEvent
	//
	// Delete event
	//
	// Delete an event by its id.
	//
	// responses:
	//   202:
	//   400: Error
	//   404: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	if err := h.eventService.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusAccepted)
}

// Export all events as iCalendar
func (h Handler) Export(c *gin.Context) {
	// swagger:route GET /events/export.ics exportEvents
	//
	// Export events
	//
	// Export all events as an iCalendar document.
	//
	// produces:
	//   - text/calendar
	//
	// responses:
	//   200: ICS
	events, err := h.eventService.FindAll(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.writeICS(c, "calendar.ics", events)
}

// ExportEvent exports a single event as iCalendar
func (h Handler) ExportEvent(c *gin.Context) {
	// swagger:route GET /events/{id}/ics exportEvent
	//
	// Export event
	//
	// Export a single event as an iCalendar document.
	//
	// produces:
	//   - text/calendar
	//
	// responses:
	//   200: ICS
	//   400: Error
	//   404: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	event, err := h.eventService.FindByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	filename := slug.Make(event.Title)
	if filename == "" {
		filename = "event-" + strconv.FormatUint(uint64(event.ID), 10)
	}
	h.writeICS(c, filename+".ics", []model.Event{event})
}

func (h Handler) writeICS(c *gin.Context, filename string, events []model.Event) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(EncodeICS(events, h.now())))
}

// Import events from iCalendar
func (h Handler) Import(c *gin.Context) {
	// swagger:route POST /events/import importEvents
	//
	// Import events
	//
	// Create an event for every VEVENT of an iCalendar document. The events are owned by the user
	// given in the "userId" query parameter.
	//
	// consumes:
	//   - text/calendar
	//
	// responses:
	//   201: Events
	//   400: Error
	//   415: Error
	if c.ContentType() != "text/calendar" {
		_ = c.Error(errdef.NewUnsupportedMediaType("%s only accepts content of type text/calendar", c.FullPath()))
		return
	}

	userID, ok := handler.GetQueryInt(c, "userId", 0)
	if !ok {
		return
	}
	if userID < 1 {
		_ = c.Error(errdef.NewValidation(
			[]errdef.FieldError{{Field: "userId", Message: "is required"}},
			"invalid data: userId",
		))
		return
	}

	events, err := DecodeICS(c.Request.Body, uint(userID))
	if err != nil {
		_ = c.Error(err)
		return
	}

	created, err := h.eventService.Import(c.Request.Context(), events)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, created)
}
