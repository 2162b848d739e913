package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/clinicdesk/calendar/pkg/model"
	"github.com/gin-gonic/gin"
)

func GetPathParameter(c *gin.Context, parameter string) (uint, bool) {
	idParam := c.Param(parameter)
	id, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil {
		_ = c.AbortWithError(http.StatusBadRequest, fmt.Errorf("error parsing %q: %v", parameter, err))
		return 0, false
	}
	return uint(id), true
}

// GetDateParameter parses the calendar day in path parameter "parameter" using loc.
func GetDateParameter(c *gin.Context, parameter string, loc *time.Location) (model.Date, bool) {
	date, err := model.ParseDate(c.Param(parameter), loc)
	if err != nil {
		_ = c.AbortWithError(http.StatusBadRequest, fmt.Errorf("error parsing %q: %v", parameter, err))
		return model.Date{}, false
	}
	return date.In(loc), true
}

// GetQueryInt parses the optional integer query parameter "parameter". The fallback is returned if
// the parameter is absent.
func GetQueryInt(c *gin.Context, parameter string, fallback int) (int, bool) {
	value, ok := c.GetQuery(parameter)
	if !ok || value == "" {
		return fallback, true
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		_ = c.AbortWithError(http.StatusBadRequest, fmt.Errorf("error parsing %q: %v", parameter, err))
		return 0, false
	}
	return n, true
}

// GetQueryTime parses the optional RFC 3339 query parameter "parameter". The fallback is returned
// if the parameter is absent.
func GetQueryTime(c *gin.Context, parameter string, fallback time.Time) (time.Time, bool) {
	value, ok := c.GetQuery(parameter)
	if !ok || value == "" {
		return fallback, true
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		_ = c.AbortWithError(http.StatusBadRequest, fmt.Errorf("error parsing %q: %v", parameter, err))
		return time.Time{}, false
	}
	return t, true
}
