package note

import (
	"context"

	"github.com/clinicdesk/calendar/internal/errdef"
	"github.com/clinicdesk/calendar/pkg/model"
	"github.com/clinicdesk/calendar/pkg/storage"
)

// NewMemoryRepository returns a Repository keeping notes in process memory. Notes are lost on
// restart.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func NewMemoryRepository() *memoryRepository {
	return &memoryRepository{
		table: storage.NewMemoryTable(func(n *model.Note, id uint) { n.ID = id }),
	}
}

type memoryRepository struct {
	table *storage.MemoryTable[model.Note]
}

func (r *memoryRepository) FindAll(_ context.Context) ([]model.Note, error) {
	return r.table.List(), nil
}

func (r *memoryRepository) FindByID(_ context.Context, id uint) (model.Note, error) {
	note, ok := r.table.Get(id)
	if !ok {
		return model.Note{}, errdef.NewNotFound("note not found by id: %d", id)
	}
	return note, nil
}

func (r *memoryRepository) FindByDate(_ context.Context, date model.Date) ([]model.Note, error) {
	return r.table.Filter(func(n model.Note) bool { return n.Date.Equal(date) }), nil
}

func (r *memoryRepository) Create(_ context.Context, note *model.Note) error {
	*note = r.table.Insert(*note)
	return nil
}

func (r *memoryRepository) Update(_ context.Context, id uint, note model.Note) (model.Note, error) {
	updated, ok := r.table.Replace(id, note)
	if !ok {
		return model.Note{}, errdef.NewNotFound("note not found by id: %d", id)
	}
	return updated, nil
}

func (r *memoryRepository) Delete(_ context.Context, id uint) error {
	if !r.table.Delete(id) {
		return errdef.NewNotFound("note not found by id: %d", id)
	}
	return nil
}
