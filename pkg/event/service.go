package event

import (
	"context"
	"time"

	"github.com/clinicdesk/calendar/pkg/calendar"
	"github.com/clinicdesk/calendar/pkg/model"
	"github.com/clinicdesk/calendar/pkg/stream"
)

// DefaultUpcomingLimit is the number of upcoming events returned if the caller does not ask for a
// specific number.
const DefaultUpcomingLimit = 3

const (
	MessageCreated = "event.created"
	MessageUpdated = "event.updated"
	MessageDeleted = "event.deleted"
)

func NewService(repository Repository, publisher publisher) Service {
	return Service{
		repository: repository,
		publisher:  publisher,
	}
}

type publisher interface {
	Publish(message stream.Message) int
}

type Service struct {
	repository Repository
	publisher  publisher
}

// DeletedEvent is published when an event is deleted.
type DeletedEvent struct {
	ID uint `json:"id"`
}

func (s Service) FindAll(ctx context.Context) ([]model.Event, error) {
	return s.repository.FindAll(ctx)
}

func (s Service) FindByID(ctx context.Context, id uint) (model.Event, error) {
	return s.repository.FindByID(ctx, id)
}

func (s Service) FindByDate(ctx context.Context, date model.Date) ([]model.Event, error) {
	return s.repository.FindByDate(ctx, date)
}

// FindUpcoming returns the limit earliest events starting at or after from. DefaultUpcomingLimit
// applies if limit is not positive.
func (s Service) FindUpcoming(ctx context.Context, from time.Time, limit int) ([]model.Event, error) {
	if limit <= 0 {
		limit = DefaultUpcomingLimit
	}
	return s.repository.FindUpcoming(ctx, from, limit)
}

// FindReminders returns the events with a reminder starting within [from, to).
func (s Service) FindReminders(ctx context.Context, from, to time.Time) ([]model.Event, error) {
	events, err := s.repository.FindStartingBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	reminders := events[:0]
	for _, event := range events {
		if event.HasReminder {
			reminders = append(reminders, event)
		}
	}
	return reminders, nil
}

// DaySchedule groups the events starting on date by the hour they start in, one bucket for every
// hour of the working day.
func (s Service) DaySchedule(ctx context.Context, date model.Date) ([]calendar.HourBucket[model.Event], error) {
	events, err := s.repository.FindByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	loc := date.Location()
	startOf := func(e model.Event) time.Time { return e.StartTime.In(loc) }
	return calendar.BucketByHour(events, startOf, calendar.DefaultStartHour, calendar.DefaultEndHour), nil
}

func (s Service) Create(ctx context.Context, event model.Event) (model.Event, error) {
	event.ID = 0
	if err := s.repository.Create(ctx, &event); err != nil {
		return model.Event{}, err
	}

	s.publisher.Publish(stream.Message{Type: MessageCreated, Data: event})
	return event, nil
}

// Import creates all given events in order. Either every event is created or, on failure, none.
func (s Service) Import(ctx context.Context, events []model.Event) ([]model.Event, error) {
	created := make([]model.Event, len(events))
	for i, event := range events {
		event.ID = 0
		created[i] = event
	}

	if err := s.repository.CreateAll(ctx, created); err != nil {
		return nil, err
	}

	for _, event := range created {
		s.publisher.Publish(stream.Message{Type: MessageCreated, Data: event})
	}
	return created, nil
}

func (s Service) Update(ctx context.Context, id uint, event model.Event) (model.Event, error) {
	updated, err := s.repository.Update(ctx, id, event)
	if err != nil {
		return model.Event{}, err
	}

	s.publisher.Publish(stream.Message{Type: MessageUpdated, Data: updated})
	return updated, nil
}

func (s Service) Delete(ctx context.Context, id uint) error {
	if err := s.repository.Delete(ctx, id); err != nil {
		return err
	}

	s.publisher.Publish(stream.Message{Type: MessageDeleted, Data: DeletedEvent{ID: id}})
	return nil
}
