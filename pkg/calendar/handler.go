package calendar

import (
	"net/http"
	"slices"
	"time"

	"github.com/clinicdesk/calendar/internal/errdef"
	"github.com/clinicdesk/calendar/internal/handler"
	"github.com/clinicdesk/calendar/pkg/model"
	"github.com/gin-gonic/gin"
)

// maxRangeDays bounds the number of days a single range request may return.
const maxRangeDays = 366

func NewHandler(location *time.Location) Handler {
	return Handler{location: location}
}

// Handler serves calendar layouts in the practice's time zone.
type Handler struct {
	location *time.Location
}

type GridRequest struct {
	Year  int `form:"year" json:"year" binding:"required,gte=1,lte=9999"`
	Month int `form:"month" json:"month" binding:"required,gte=1,lte=12"`
}

// GridResponse holds a month view. Padding cells are null.
// swagger:model
type GridResponse struct {
	Year  int             `json:"year"`
	Month int             `json:"month"`
	Cells []*model.Date   `json:"cells"`
	Weeks [][]*model.Date `json:"weeks"`
}

// Grid returns the 42 cell month view
func (h Handler) Grid(c *gin.Context) {
	// swagger:route GET /calendar/grid calendarGrid
	//
	// Month grid
	//
	// Return the six week grid of a month, Sunday first, with null padding cells.
	//
	// responses:
	//   200: GridResponse
	//   400: Error
	var request GridRequest
	if err := handler.QueryBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	grid := MonthGrid(request.Year, time.Month(request.Month), h.location)

	response := GridResponse{
		Year:  request.Year,
		Month: request.Month,
		Cells: make([]*model.Date, 0, GridSize),
		Weeks: make([][]*model.Date, 0, 6),
	}
	for _, cell := range grid {
		response.Cells = append(response.Cells, toDate(cell))
	}
	for week := range slices.Chunk(response.Cells, 7) {
		response.Weeks = append(response.Weeks, week)
	}

	c.JSON(http.StatusOK, response)
}

type WeekRequest struct {
	Date string `form:"date" json:"date" binding:"required"`
}

// DatesResponse holds an ordered list of days.
// swagger:model
type DatesResponse struct {
	Dates []model.Date `json:"dates"`
}

// Week returns the days of the week containing a date
func (h Handler) Week(c *gin.Context) {
	// swagger:route GET /calendar/week calendarWeek
	//
	// Week dates
	//
	// Return the seven days, Sunday first, of the week containing the given date.
	//
	// responses:
	//   200: DatesResponse
	//   400: Error
	var request WeekRequest
	if err := handler.QueryBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	date, err := h.parseDate("date", request.Date)
	if err != nil {
		_ = c.Error(err)
		return
	}

	week := WeekDates(date.Time)
	c.JSON(http.StatusOK, DatesResponse{Dates: toDates(week[:])})
}

type RangeRequest struct {
	Start string `form:"start" json:"start" binding:"required"`
	End   string `form:"end" json:"end" binding:"required"`
}

// Range returns every day between two dates
func (h Handler) Range(c *gin.Context) {
	// swagger:route GET /calendar/range calendarRange
	//
	// Date range
	//
	// Return every day from start to end inclusive. End must not be before start.
	//
	// responses:
	//   200: DatesResponse
	//   400: Error
	var request RangeRequest
	if err := handler.QueryBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	start, err := h.parseDate("start", request.Start)
	if err != nil {
		_ = c.Error(err)
		return
	}
	end, err := h.parseDate("end", request.End)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if end.Before(start.Time) {
		_ = c.Error(errdef.NewValidation([]errdef.FieldError{{Field: "end", Message: "must not be before start"}}, "invalid data: end"))
		return
	}
	if AddDays(start.Time, maxRangeDays).Before(end.Time) {
		_ = c.Error(errdef.NewValidation([]errdef.FieldError{{Field: "end", Message: "range must not exceed 366 days"}}, "invalid data: end"))
		return
	}

	c.JSON(http.StatusOK, DatesResponse{Dates: toDates(DateRange(start.Time, end.Time))})
}

type SlotsRequest struct {
	Start    *int `form:"start" json:"start" binding:"omitnil,gte=0,lte=24"`
	End      *int `form:"end" json:"end" binding:"omitnil,gte=0,lte=24"`
	Interval *int `form:"interval" json:"interval" binding:"omitnil,gte=1,lte=60"`
}

// SlotsResponse holds the time slot labels of a day view.
// swagger:model
type SlotsResponse struct {
	Slots []string `json:"slots"`
}

// Slots returns the time slot labels of a day view
func (h Handler) Slots(c *gin.Context) {
	// swagger:route GET /calendar/slots calendarSlots
	//
	// Time slots
	//
	// Return "h:mm AM" labels at a fixed interval. Defaults to every 30 minutes from 8 AM to 6 PM.
	//
	// responses:
	//   200: SlotsResponse
	//   400: Error
	var request SlotsRequest
	if err := handler.QueryBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	start := valueOr(request.Start, DefaultStartHour)
	end := valueOr(request.End, DefaultEndHour)
	interval := valueOr(request.Interval, DefaultIntervalMinutes)

	slots := slices.Collect(TimeSlots(start, end, interval))
	if slots == nil {
		slots = []string{}
	}
	c.JSON(http.StatusOK, SlotsResponse{Slots: slots})
}

func (h Handler) parseDate(field, value string) (model.Date, error) {
	date, err := model.ParseDate(value, h.location)
	if err != nil {
		return model.Date{}, errdef.NewValidation([]errdef.FieldError{{Field: field, Message: err.Error()}}, "invalid data: %s", field)
	}
	return date.In(h.location), nil
}

func valueOr(value *int, fallback int) int {
	if value == nil {
		return fallback
	}
	return *value
}

func toDate(t *time.Time) *model.Date {
	if t == nil {
		return nil
	}
	date := model.DateOf(*t)
	return &date
}

func toDates(times []time.Time) []model.Date {
	dates := make([]model.Date, len(times))
	for i, t := range times {
		dates[i] = model.DateOf(t)
	}
	return dates
}
