package note

import (
	"context"
	"errors"
	"fmt"

	"github.com/clinicdesk/calendar/internal/errdef"
	"github.com/clinicdesk/calendar/pkg/model"
	"gorm.io/gorm"
)

// Repository stores notes. Implementations must assign ids starting at 1 that are never reused.
type Repository interface {
	FindAll(ctx context.Context) ([]model.Note, error)
	FindByID(ctx context.Context, id uint) (model.Note, error)
	// FindByDate returns the notes written for date ordered by id. More than one note may exist
	// for the same day.
	FindByDate(ctx context.Context, date model.Date) ([]model.Note, error)
	Create(ctx context.Context, note *model.Note) error
	// Update replaces every field but the id of the note with given id.
	Update(ctx context.Context, id uint, note model.Note) (model.Note, error)
	Delete(ctx context.Context, id uint) error
}

//goland:noinspection GoExportedFuncWithUnexportedType
func NewRepository(db *gorm.DB) *repository {
	return &repository{db}
}

type repository struct {
	db *gorm.DB
}

func (r repository) FindAll(ctx context.Context) ([]model.Note, error) {
	var notes []model.Note
	err := r.db.
		WithContext(ctx).
		Order("id").
		Find(&notes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find notes: %v", err)
	}
	return notes, nil
}

func (r repository) FindByID(ctx context.Context, id uint) (model.Note, error) {
	var note model.Note
	err := r.db.
		WithContext(ctx).
		First(&note, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Note{}, errdef.NewNotFound("note not found by id: %d", id)
	}
	if err != nil {
		return model.Note{}, fmt.Errorf("failed to find note: %v", err)
	}
	return note, nil
}

func (r repository) FindByDate(ctx context.Context, date model.Date) ([]model.Note, error) {
	var notes []model.Note
	err := r.db.
		WithContext(ctx).
		Where("date = ?", date).
		Order("id").
		Find(&notes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find notes by date %s: %v", date, err)
	}
	return notes, nil
}

func (r repository) Create(ctx context.Context, note *model.Note) error {
	// only use ctx for values (logging) and not cancellation signals on cud operations for now. ctx
	// cancellation can lead to rollbacks which we should decide individually.
	ctx = context.WithoutCancel(ctx)

	return r.db.WithContext(ctx).Create(note).Error
}

func (r repository) Update(ctx context.Context, id uint, note model.Note) (model.Note, error) {
	// only use ctx for values (logging) and not cancellation signals on cud operations for now. ctx
	// cancellation can lead to rollbacks which we should decide individually.
	ctx = context.WithoutCancel(ctx)

	note.ID = id
	db := r.db.
		WithContext(ctx).
		Model(&model.Note{ID: id}).
		Select("*").
		Omit("id").
		Updates(&note)
	if db.Error != nil {
		return model.Note{}, fmt.Errorf("failed to update note: %v", db.Error)
	}
	if db.RowsAffected < 1 {
		return model.Note{}, errdef.NewNotFound("note not found by id: %d", id)
	}

	return note, nil
}

func (r repository) Delete(ctx context.Context, id uint) error {
	// only use ctx for values (logging) and not cancellation signals on cud operations for now. ctx
	// cancellation can lead to rollbacks which we should decide individually.
	ctx = context.WithoutCancel(ctx)

	db := r.db.WithContext(ctx).Delete(&model.Note{}, id)
	if db.Error != nil {
		return fmt.Errorf("failed to delete note: %v", db.Error)
	}
	if db.RowsAffected < 1 {
		return errdef.NewNotFound("note not found by id: %d", id)
	}

	return nil
}
