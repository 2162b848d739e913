package event

import (
	"context"
	"slices"
	"time"

	"github.com/clinicdesk/calendar/internal/errdef"
	"github.com/clinicdesk/calendar/pkg/calendar"
	"github.com/clinicdesk/calendar/pkg/model"
	"github.com/clinicdesk/calendar/pkg/storage"
)

// NewMemoryRepository returns a Repository keeping events in process memory. Events are lost on
// restart.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func NewMemoryRepository() *memoryRepository {
	return &memoryRepository{
		table: storage.NewMemoryTable(func(e *model.Event, id uint) { e.ID = id }),
	}
}

type memoryRepository struct {
	table *storage.MemoryTable[model.Event]
}

func (r *memoryRepository) FindAll(_ context.Context) ([]model.Event, error) {
	return r.table.List(), nil
}

func (r *memoryRepository) FindByID(_ context.Context, id uint) (model.Event, error) {
	event, ok := r.table.Get(id)
	if !ok {
		return model.Event{}, errdef.NewNotFound("event not found by id: %d", id)
	}
	return event, nil
}

func (r *memoryRepository) FindByDate(_ context.Context, date model.Date) ([]model.Event, error) {
	events := r.table.Filter(func(e model.Event) bool {
		return calendar.IsSameDay(date.Time, e.StartTime)
	})
	return byStartTime(events), nil
}

func (r *memoryRepository) FindUpcoming(_ context.Context, from time.Time, limit int) ([]model.Event, error) {
	events := byStartTime(r.table.Filter(func(e model.Event) bool {
		return !e.StartTime.Before(from)
	}))
	if limit > 0 && len(events) > limit {
		events = events[:limit]
	}
	return events, nil
}

func (r *memoryRepository) FindStartingBetween(_ context.Context, from, to time.Time) ([]model.Event, error) {
	events := r.table.Filter(func(e model.Event) bool {
		return !e.StartTime.Before(from) && e.StartTime.Before(to)
	})
	return byStartTime(events), nil
}

func (r *memoryRepository) Create(_ context.Context, event *model.Event) error {
	*event = r.table.Insert(*event)
	return nil
}

func (r *memoryRepository) CreateAll(_ context.Context, events []model.Event) error {
	copy(events, r.table.InsertAll(events))
	return nil
}

func (r *memoryRepository) Update(_ context.Context, id uint, event model.Event) (model.Event, error) {
	updated, ok := r.table.Replace(id, event)
	if !ok {
		return model.Event{}, errdef.NewNotFound("event not found by id: %d", id)
	}
	return updated, nil
}

func (r *memoryRepository) Delete(_ context.Context, id uint) error {
	if !r.table.Delete(id) {
		return errdef.NewNotFound("event not found by id: %d", id)
	}
	return nil
}

// byStartTime sorts events ordered by id by their start time. Events starting at the same instant
// stay ordered by id.
func byStartTime(events []model.Event) []model.Event {
	slices.SortStableFunc(events, func(a, b model.Event) int {
		return a.StartTime.Compare(b.StartTime)
	})
	return events
}
