package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/clinicdesk/calendar/internal/errdef"
	"github.com/clinicdesk/calendar/pkg/model"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Payload struct {
	Field string `binding:"required,oneOf=one two"`
}

func TestRegisterValidation(t *testing.T) {
	err := RegisterValidation()
	require.NoError(t, err)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)

	request, err := http.NewRequest("GET", "/", nil)
	assert.NoError(t, err)
	ctx.Request = request

	err = ctx.ShouldBind(&Payload{Field: "one"})
	assert.NoError(t, err)

	err = ctx.ShouldBind(&Payload{Field: "two"})
	assert.NoError(t, err)

	err = ctx.ShouldBind(&Payload{Field: "oh no"})
	assert.Error(t, err)
	assert.Equal(t, "Key: 'Payload.Field' Error:Field validation for 'Field' failed on the 'oneOf' tag", err.Error())
}

type eventPayload struct {
	UserID    uint            `json:"userId" binding:"required"`
	Title     string          `json:"title" binding:"required"`
	EventType model.EventType `json:"eventType" binding:"required,eventType"`
}

type schedulePayload struct {
	Title     string    `json:"title" binding:"required"`
	StartTime time.Time `json:"startTime" binding:"required"`
}

type notePayload struct {
	Date    model.Date `json:"date" binding:"required"`
	Content string     `json:"content" binding:"required"`
}

func TestDataBinder(t *testing.T) {
	require.NoError(t, RegisterValidation())
	gin.SetMode(gin.TestMode)

	newContext := func(t *testing.T, contentType, body string) *gin.Context {
		ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
		request, err := http.NewRequest(http.MethodPost, "/events", strings.NewReader(body))
		require.NoError(t, err)
		request.Header.Set("Content-Type", contentType)
		ctx.Request = request
		return ctx
	}

	t.Run("Valid", func(t *testing.T) {
		var payload eventPayload
		err := DataBinder(newContext(t, "application/json", `{"userId":1,"title":"Rounds","eventType":"rounds"}`), &payload)

		require.NoError(t, err)
		assert.Equal(t, eventPayload{UserID: 1, Title: "Rounds", EventType: model.EventTypeRounds}, payload)
	})

	t.Run("MissingAndInvalidFields", func(t *testing.T) {
		var payload eventPayload
		err := DataBinder(newContext(t, "application/json", `{"eventType":"party"}`), &payload)

		require.True(t, errdef.IsValidation(err))
		fields := errdef.ValidationFields(err)
		require.Len(t, fields, 3)
		assert.Equal(t, errdef.FieldError{Field: "userId", Message: "is required"}, fields[0])
		assert.Equal(t, errdef.FieldError{Field: "title", Message: "is required"}, fields[1])
		assert.Equal(t, "eventType", fields[2].Field)
		assert.Contains(t, fields[2].Message, "must be one of")
	})

	t.Run("WrongType", func(t *testing.T) {
		var payload eventPayload
		err := DataBinder(newContext(t, "application/json", `{"userId":"one","title":"Rounds","eventType":"rounds"}`), &payload)

		require.True(t, errdef.IsValidation(err))
		assert.Equal(t, "userId", errdef.ValidationFields(err)[0].Field)
	})

	t.Run("ZeroDateIsRequired", func(t *testing.T) {
		var payload notePayload
		err := DataBinder(newContext(t, "application/json", `{"content":"<p>x</p>"}`), &payload)

		require.True(t, errdef.IsValidation(err))
		assert.Equal(t, []errdef.FieldError{{Field: "date", Message: "is required"}}, errdef.ValidationFields(err))
	})

	t.Run("Date", func(t *testing.T) {
		var payload notePayload
		err := DataBinder(newContext(t, "application/json", `{"date":"2024-03-01","content":"<p>x</p>"}`), &payload)

		require.NoError(t, err)
		assert.Equal(t, "2024-03-01", payload.Date.String())
	})

	t.Run("MalformedTime", func(t *testing.T) {
		var payload schedulePayload
		err := DataBinder(newContext(t, "application/json", `{"title":"Rounds","startTime":"tomorrow"}`), &payload)

		require.True(t, errdef.IsValidation(err))
		assert.Equal(t, []errdef.FieldError{{Field: "startTime", Message: "must be an RFC 3339 date-time"}}, errdef.ValidationFields(err))
	})

	t.Run("TimeNotAString", func(t *testing.T) {
		var payload schedulePayload
		err := DataBinder(newContext(t, "application/json", `{"title":"Rounds","startTime":1709280000}`), &payload)

		require.True(t, errdef.IsValidation(err))
		fields := errdef.ValidationFields(err)
		require.Len(t, fields, 1)
		assert.Equal(t, "startTime", fields[0].Field)
	})

	t.Run("MalformedDate", func(t *testing.T) {
		var payload notePayload
		err := DataBinder(newContext(t, "application/json", `{"date":"01/03/2024","content":"<p>x</p>"}`), &payload)

		require.True(t, errdef.IsValidation(err))
		assert.Equal(t, []errdef.FieldError{{Field: "date", Message: "must be a date in the format YYYY-MM-DD"}}, errdef.ValidationFields(err))
	})

	t.Run("EmptyBody", func(t *testing.T) {
		var payload eventPayload
		err := DataBinder(newContext(t, "application/json", ``), &payload)

		assert.True(t, errdef.IsBadRequest(err))
	})

	t.Run("MalformedJSON", func(t *testing.T) {
		var payload eventPayload
		err := DataBinder(newContext(t, "application/json", `{"userId":`), &payload)

		assert.Error(t, err)
		assert.False(t, errdef.IsUnsupportedMediaType(err))
	})

	t.Run("UnsupportedMediaType", func(t *testing.T) {
		var payload eventPayload
		err := DataBinder(newContext(t, "text/plain", `{}`), &payload)

		assert.True(t, errdef.IsUnsupportedMediaType(err))
	})
}
