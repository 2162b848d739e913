package middleware

import (
	"fmt"
	"net/http"

	"github.com/clinicdesk/calendar/internal/errdef"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body written for every failed request.
type ErrorResponse struct {
	Message string              `json:"message"`
	Errors  []errdef.FieldError `json:"errors,omitempty"`
}

// ErrorHandler translates the last error added to the Gin context into an HTTP response. Handlers
// only need to call c.Error and return.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		err := c.Errors.Last()
		if err == nil || c.Writer.Size() > 0 {
			return
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.JSON(status, ErrorResponse{Message: err.Error()})
			return
		}

		// nolint:gocritic
		if errdef.IsValidation(err) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error(), Errors: errdef.ValidationFields(err)})
		} else if errdef.IsBadRequest(err) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		} else if errdef.IsNotFound(err) {
			c.JSON(http.StatusNotFound, ErrorResponse{Message: err.Error()})
		} else if errdef.IsConflict(err) {
			c.JSON(http.StatusConflict, ErrorResponse{Message: err.Error()})
		} else if errdef.IsUnsupportedMediaType(err) {
			c.JSON(http.StatusUnsupportedMediaType, ErrorResponse{Message: err.Error()})
		} else if errdef.IsTooManyRequests(err) {
			c.JSON(http.StatusTooManyRequests, ErrorResponse{Message: err.Error()})
		} else if errdef.IsBadGateway(err) {
			c.JSON(http.StatusBadGateway, ErrorResponse{Message: err.Error()})
		} else if errdef.IsUnavailable(err) {
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{Message: err.Error()})
		} else {
			id, _ := GetCorrelationID(c.Request.Context())
			message := fmt.Sprintf("something went wrong. We'll look into it if you send us the id %q :)", id)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Message: message})
		}
	}
}
