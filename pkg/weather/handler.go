package weather

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/clinicdesk/calendar/internal/errdef"
	"github.com/gin-gonic/gin"
)

func NewHandler(logger *slog.Logger, provider Provider) Handler {
	return Handler{
		logger:   logger,
		provider: provider,
	}
}

type Handler struct {
	logger   *slog.Logger
	provider Provider
}

// Current weather
func (h Handler) Current(c *gin.Context) {
	// swagger:route GET /weather currentWeather
	//
	// Current weather
	//
	// Return the current weather at the given coordinate.
	//
	// responses:
	//   200: Report
	//   400: Error
	//   502: Error
	//   503: Error
	lat, latErr := coordinate(c, "lat", 90)
	lon, lonErr := coordinate(c, "lon", 180)
	if latErr != nil || lonErr != nil {
		var fields []errdef.FieldError
		for _, err := range []*errdef.FieldError{latErr, lonErr} {
			if err != nil {
				fields = append(fields, *err)
			}
		}
		_ = c.Error(errdef.NewValidation(fields, "Latitude and longitude are required"))
		return
	}

	report, err := h.provider.Current(c.Request.Context(), lat, lon)
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "Weather lookup failed", "error", err)
		if errdef.IsBadGateway(err) {
			err = errdef.NewBadGateway("Failed to fetch weather data")
		}
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func coordinate(c *gin.Context, name string, bound float64) (float64, *errdef.FieldError) {
	value := c.Query(name)
	if value == "" {
		return 0, &errdef.FieldError{Field: name, Message: "is required"}
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, &errdef.FieldError{Field: name, Message: "must be a number"}
	}
	if f < -bound || f > bound {
		return 0, &errdef.FieldError{Field: name, Message: fmt.Sprintf("must be between %g and %g", -bound, bound)}
	}
	return f, nil
}
