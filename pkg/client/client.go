// Package client talks to a running calendar service over HTTP.
package client

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/clinicdesk/calendar/internal/errdef"
	"github.com/clinicdesk/calendar/internal/middleware"
	"github.com/clinicdesk/calendar/pkg/event"
	"github.com/clinicdesk/calendar/pkg/model"
	"github.com/go-resty/resty/v2"
)

type calendarClient struct {
	client *resty.Client
}

// New returns a client for the service whose API is served below baseURL, including the base
// path. For example http://localhost:8080/api.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func New(baseURL string) *calendarClient {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetTimeout(30 * time.Second)

	return &calendarClient{client: c}
}

func (c calendarClient) DaySchedule(ctx context.Context, date model.Date) (event.DayScheduleResponse, error) {
	var schedule event.DayScheduleResponse
	err := c.get(ctx, "/days/{date}/schedule", map[string]string{"date": date.String()}, nil, &schedule)
	return schedule, err
}

func (c calendarClient) FindUpcoming(ctx context.Context, limit int) ([]model.Event, error) {
	var events []model.Event
	err := c.get(ctx, "/events/upcoming", nil, map[string]string{"limit": strconv.Itoa(limit)}, &events)
	return events, err
}

// FindNoteByDate returns the first note of date. An errdef not found error is returned if the day
// has no note.
func (c calendarClient) FindNoteByDate(ctx context.Context, date model.Date) (model.Note, error) {
	var note model.Note
	err := c.get(ctx, "/days/{date}/note", map[string]string{"date": date.String()}, nil, &note)
	return note, err
}

func (c calendarClient) CreateEvent(ctx context.Context, request event.EventRequest) (model.Event, error) {
	var created model.Event
	var failure middleware.ErrorResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(request).
		SetResult(&created).
		SetError(&failure).
		Post("/events")
	if err := responseError(resp, err, &failure); err != nil {
		return model.Event{}, err
	}
	return created, nil
}

func (c calendarClient) get(ctx context.Context, path string, pathParams, queryParams map[string]string, result any) error {
	var failure middleware.ErrorResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParams(pathParams).
		SetQueryParams(queryParams).
		SetResult(result).
		SetError(&failure).
		Get(path)
	return responseError(resp, err, &failure)
}

func responseError(resp *resty.Response, err error, failure *middleware.ErrorResponse) error {
	if err != nil {
		return err
	}
	if !resp.IsError() {
		return nil
	}

	message := failure.Message
	if message == "" {
		message = resp.Status()
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		if len(failure.Errors) > 0 {
			return errdef.NewValidation(failure.Errors, "%s", message)
		}
		return errdef.NewBadRequest("%s", message)
	case http.StatusNotFound:
		return errdef.NewNotFound("%s", message)
	case http.StatusTooManyRequests:
		return errdef.NewTooManyRequests("%s", message)
	case http.StatusServiceUnavailable:
		return errdef.NewUnavailable("%s", message)
	}
	return errors.New(message)
}
