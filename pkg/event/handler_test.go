package event_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/clinicdesk/calendar/internal/middleware"
	"github.com/clinicdesk/calendar/pkg/event"
	"github.com/clinicdesk/calendar/pkg/inttest"
	"github.com/clinicdesk/calendar/pkg/model"
	"github.com/clinicdesk/calendar/pkg/stream"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventHandler(t *testing.T) {
	t.Parallel()

	client := inttest.SetupHTTPServer(t, func(engine *gin.Engine) {
		service := event.NewService(event.NewMemoryRepository(), stream.NewBroker())
		event.Routes(engine, event.NewHandler(service, time.UTC))
	})

	t.Run("CreateRounds", func(t *testing.T) {
		body := strings.NewReader(`{
			"userId": 1,
			"title": "Rounds",
			"startTime": "2024-03-01T16:00:00Z",
			"endTime": "2024-03-01T17:30:00Z",
			"eventType": "rounds"
		}`)

		var created model.Event
		client.PostJSON(t, "/events", body, &created)

		assert.Equal(t, uint(1), created.ID)
		assert.Equal(t, "Rounds", created.Title)
		assert.Equal(t, model.EventTypeRounds, created.EventType)

		var events []model.Event
		client.GetJSON(t, "/days/2024-03-01/events", &events)
		require.Len(t, events, 1)
		assert.Equal(t, created.ID, events[0].ID)

		var found model.Event
		client.GetJSON(t, "/events/1", &found)
		assert.Equal(t, created, found)
	})

	t.Run("EventTypes", func(t *testing.T) {
		var catalog []model.EventTypeInfo
		client.GetJSON(t, "/event-types", &catalog)

		require.Len(t, catalog, len(model.EventTypes()))
		assert.Equal(t, model.EventTypeMeeting, catalog[0].Type)
		assert.Equal(t, "Meeting", catalog[0].Label)
	})

	t.Run("CreateValidationError", func(t *testing.T) {
		body := client.Do(t, http.MethodPost, "/events", strings.NewReader(`{"title":"","eventType":"party"}`), http.StatusBadRequest, inttest.WithHeader("Content-Type", "application/json"))

		var response middleware.ErrorResponse
		require.NoError(t, unmarshal(body, &response))
		var fields []string
		for _, field := range response.Errors {
			fields = append(fields, field.Field)
		}
		assert.ElementsMatch(t, []string{"userId", "title", "startTime", "endTime", "eventType"}, fields)

		var events []model.Event
		client.GetJSON(t, "/events", &events)
		assert.Len(t, events, 1, "invalid payload must not reach the store")
	})

	t.Run("EndBeforeStartIsAccepted", func(t *testing.T) {
		body := strings.NewReader(`{"userId":1,"title":"Backwards","startTime":"2024-03-02T10:00:00Z","endTime":"2024-03-02T09:00:00Z","eventType":"other"}`)

		var created model.Event
		client.PostJSON(t, "/events", body, &created)

		assert.Negative(t, created.Duration())
		client.Delete(t, fmt.Sprintf("/events/%d", created.ID))
	})

	t.Run("UnsupportedMediaType", func(t *testing.T) {
		client.Do(t, http.MethodPost, "/events", strings.NewReader(`{}`), http.StatusUnsupportedMediaType, inttest.WithHeader("Content-Type", "text/plain"))
	})

	t.Run("FindNotFound", func(t *testing.T) {
		client.Do(t, http.MethodGet, "/events/999", nil, http.StatusNotFound)
	})

	t.Run("CreateMalformedStartTime", func(t *testing.T) {
		body := client.Do(t, http.MethodPost, "/events", strings.NewReader(`{
			"userId": 1,
			"title": "Rounds",
			"startTime": "tomorrow",
			"endTime": "2024-03-01T17:00:00Z",
			"eventType": "rounds"
		}`), http.StatusBadRequest, inttest.WithHeader("Content-Type", "application/json"))

		var response middleware.ErrorResponse
		require.NoError(t, unmarshal(body, &response))
		require.Len(t, response.Errors, 1)
		assert.Equal(t, "startTime", response.Errors[0].Field)
		assert.Equal(t, "must be an RFC 3339 date-time", response.Errors[0].Message)
	})

	t.Run("FindInvalidID", func(t *testing.T) {
		client.Do(t, http.MethodGet, "/events/abc", nil, http.StatusBadRequest)
	})

	t.Run("FindByInvalidDate", func(t *testing.T) {
		client.Do(t, http.MethodGet, "/days/March-1st/events", nil, http.StatusBadRequest)
	})

	t.Run("Update", func(t *testing.T) {
		body := strings.NewReader(`{
			"userId": 1,
			"title": "Rounds (ICU)",
			"startTime": "2024-03-01T15:00:00Z",
			"endTime": "2024-03-01T16:00:00Z",
			"location": "ICU",
			"eventType": "rounds",
			"hasReminder": true
		}`)

		var updated model.Event
		client.PutJSON(t, "/events/1", body, &updated)

		assert.Equal(t, uint(1), updated.ID)
		assert.Equal(t, "Rounds (ICU)", updated.Title)
		assert.Equal(t, "ICU", updated.Location)
		assert.True(t, updated.HasReminder)
	})

	t.Run("PatchIsFullReplace", func(t *testing.T) {
		body := strings.NewReader(`{"userId":1,"title":"Rounds","startTime":"2024-03-01T16:00:00Z","endTime":"2024-03-01T17:30:00Z","eventType":"rounds"}`)

		var updated model.Event
		client.PatchJSON(t, "/events/1", body, &updated)

		assert.Empty(t, updated.Location)
		assert.False(t, updated.HasReminder)
	})

	t.Run("UpdateNotFound", func(t *testing.T) {
		body := strings.NewReader(`{"userId":1,"title":"Ghost","startTime":"2024-03-01T16:00:00Z","endTime":"2024-03-01T17:00:00Z","eventType":"other"}`)

		client.Do(t, http.MethodPut, "/events/999", body, http.StatusNotFound, inttest.WithHeader("Content-Type", "application/json"))
	})

	t.Run("DeleteNotFound", func(t *testing.T) {
		body := client.Do(t, http.MethodDelete, "/events/999", nil, http.StatusNotFound)

		assert.Contains(t, string(body), "event not found by id: 999")
	})

	t.Run("Schedule", func(t *testing.T) {
		var schedule event.DayScheduleResponse
		client.GetJSON(t, "/days/2024-03-01/schedule", &schedule)

		assert.Equal(t, "2024-03-01", schedule.Date.String())
		require.Len(t, schedule.Hours, 11)
		require.Len(t, schedule.Hours[8].Items, 1)
		assert.Equal(t, "Rounds", schedule.Hours[8].Items[0].Title)
	})

	t.Run("ExportEvent", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, client.ServerURL+"/events/1/ics", nil)
		require.NoError(t, err)
		res, err := client.Client.Do(req)
		require.NoError(t, err)
		defer res.Body.Close()

		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Equal(t, "text/calendar; charset=utf-8", res.Header.Get("Content-Type"))
		assert.Equal(t, `attachment; filename="rounds.ics"`, res.Header.Get("Content-Disposition"))
	})

	t.Run("Import", func(t *testing.T) {
		document := client.Get(t, "/events/export.ics")

		var imported []model.Event
		body := client.Post(t, "/events/import?userId=2", strings.NewReader(string(document)), inttest.WithHeader("Content-Type", "text/calendar"))
		require.NoError(t, unmarshal(body, &imported))

		require.Len(t, imported, 1)
		assert.Greater(t, imported[0].ID, uint(1))
		assert.Equal(t, uint(2), imported[0].UserID)
		assert.Equal(t, "Rounds", imported[0].Title)
	})

	t.Run("ImportWithoutUser", func(t *testing.T) {
		client.Do(t, http.MethodPost, "/events/import", strings.NewReader("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n"), http.StatusBadRequest, inttest.WithHeader("Content-Type", "text/calendar"))
	})
}

func TestEventHandler_Upcoming(t *testing.T) {
	t.Parallel()

	client := inttest.SetupHTTPServer(t, func(engine *gin.Engine) {
		service := event.NewService(event.NewMemoryRepository(), stream.NewBroker())
		event.Routes(engine, event.NewHandler(service, time.UTC))
	})
	for _, day := range []int{14, 11, 15, 12, 13} {
		body := fmt.Sprintf(`{"userId":1,"title":"Consultation %d","startTime":"2030-01-%dT09:00:00Z","endTime":"2030-01-%dT10:00:00Z","eventType":"consultation"}`, day, day, day)
		client.Post(t, "/events", strings.NewReader(body), inttest.WithHeader("Content-Type", "application/json"))
	}

	t.Run("DefaultLimit", func(t *testing.T) {
		var events []model.Event
		client.GetJSON(t, "/events/upcoming?from=2030-01-01T00:00:00Z", &events)

		require.Len(t, events, 3)
		assert.Equal(t, "Consultation 11", events[0].Title)
		assert.Equal(t, "Consultation 12", events[1].Title)
		assert.Equal(t, "Consultation 13", events[2].Title)
	})

	t.Run("Limit", func(t *testing.T) {
		var events []model.Event
		client.GetJSON(t, "/events/upcoming?from=2030-01-12T09:00:00Z&limit=10", &events)

		require.Len(t, events, 4)
		assert.Equal(t, "Consultation 12", events[0].Title)
	})

	t.Run("InvalidLimit", func(t *testing.T) {
		body := client.Do(t, http.MethodGet, "/events/upcoming?limit=0", nil, http.StatusBadRequest)

		assert.Contains(t, string(body), `"field":"limit"`)
	})

	t.Run("InvalidFrom", func(t *testing.T) {
		client.Do(t, http.MethodGet, "/events/upcoming?from=tomorrow", nil, http.StatusBadRequest)
	})
}
