package event

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clinicdesk/calendar/internal/errdef"
	"github.com/clinicdesk/calendar/pkg/model"
	"gorm.io/gorm"
)

// Repository stores events. Implementations must assign ids starting at 1 that are never reused.
type Repository interface {
	FindAll(ctx context.Context) ([]model.Event, error)
	FindByID(ctx context.Context, id uint) (model.Event, error)
	// FindByDate returns the events starting on date, interpreted in date's location, ordered by
	// start time.
	FindByDate(ctx context.Context, date model.Date) ([]model.Event, error)
	// FindUpcoming returns at most limit events starting at or after from, ordered by start time.
	// All matching events are returned if limit is not positive.
	FindUpcoming(ctx context.Context, from time.Time, limit int) ([]model.Event, error)
	// FindStartingBetween returns the events starting within [from, to) ordered by start time.
	FindStartingBetween(ctx context.Context, from, to time.Time) ([]model.Event, error)
	Create(ctx context.Context, event *model.Event) error
	// CreateAll creates every event or none of them. Assigned ids are written back into events.
	CreateAll(ctx context.Context, events []model.Event) error
	// Update replaces every field but the id of the event with given id.
	Update(ctx context.Context, id uint, event model.Event) (model.Event, error)
	Delete(ctx context.Context, id uint) error
}

//goland:noinspection GoExportedFuncWithUnexportedType
func NewRepository(db *gorm.DB) *repository {
	return &repository{db}
}

type repository struct {
	db *gorm.DB
}

func (r repository) FindAll(ctx context.Context) ([]model.Event, error) {
	var events []model.Event
	err := r.db.
		WithContext(ctx).
		Order("id").
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find events: %v", err)
	}
	return events, nil
}

func (r repository) FindByID(ctx context.Context, id uint) (model.Event, error) {
	var event model.Event
	err := r.db.
		WithContext(ctx).
		First(&event, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Event{}, errdef.NewNotFound("event not found by id: %d", id)
	}
	if err != nil {
		return model.Event{}, fmt.Errorf("failed to find event: %v", err)
	}
	return event, nil
}

func (r repository) FindByDate(ctx context.Context, date model.Date) ([]model.Event, error) {
	return r.FindStartingBetween(ctx, date.Time, date.AddDate(0, 0, 1))
}

func (r repository) FindUpcoming(ctx context.Context, from time.Time, limit int) ([]model.Event, error) {
	query := r.db.
		WithContext(ctx).
		Where("start_time >= ?", from).
		Order("start_time, id")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var events []model.Event
	if err := query.Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to find upcoming events: %v", err)
	}
	return events, nil
}

func (r repository) FindStartingBetween(ctx context.Context, from, to time.Time) ([]model.Event, error) {
	var events []model.Event
	err := r.db.
		WithContext(ctx).
		Where("start_time >= ? AND start_time < ?", from, to).
		Order("start_time, id").
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find events between %s and %s: %v", from.Format(time.RFC3339), to.Format(time.RFC3339), err)
	}
	return events, nil
}

func (r repository) Create(ctx context.Context, event *model.Event) error {
	// only use ctx for values (logging) and not cancellation signals on cud operations for now. ctx
	// cancellation can lead to rollbacks which we should decide individually.
	ctx = context.WithoutCancel(ctx)

	return r.db.WithContext(ctx).Create(event).Error
}

func (r repository) CreateAll(ctx context.Context, events []model.Event) error {
	if len(events) == 0 {
		return nil
	}

	// only use ctx for values (logging) and not cancellation signals on cud operations for now. ctx
	// cancellation can lead to rollbacks which we should decide individually.
	ctx = context.WithoutCancel(ctx)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&events).Error; err != nil {
			return fmt.Errorf("failed to create %d events: %v", len(events), err)
		}
		return nil
	})
}

func (r repository) Update(ctx context.Context, id uint, event model.Event) (model.Event, error) {
	// only use ctx for values (logging) and not cancellation signals on cud operations for now. ctx
	// cancellation can lead to rollbacks which we should decide individually.
	ctx = context.WithoutCancel(ctx)

	event.ID = id
	db := r.db.
		WithContext(ctx).
		Model(&model.Event{ID: id}).
		Select("*").
		Omit("id").
		Updates(&event)
	if db.Error != nil {
		return model.Event{}, fmt.Errorf("failed to update event: %v", db.Error)
	}
	if db.RowsAffected < 1 {
		return model.Event{}, errdef.NewNotFound("event not found by id: %d", id)
	}

	return event, nil
}

func (r repository) Delete(ctx context.Context, id uint) error {
	// only use ctx for values (logging) and not cancellation signals on cud operations for now. ctx
	// cancellation can lead to rollbacks which we should decide individually.
	ctx = context.WithoutCancel(ctx)

	db := r.db.WithContext(ctx).Delete(&model.Event{}, id)
	if db.Error != nil {
		return fmt.Errorf("failed to delete event: %v", db.Error)
	}
	if db.RowsAffected < 1 {
		return errdef.NewNotFound("event not found by id: %d", id)
	}

	return nil
}
